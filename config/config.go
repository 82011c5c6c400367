/*
 *  Copyright (c) 2025, WSO2 LLC. (http://www.wso2.org) All Rights Reserved.
 *
 *  Licensed under the Apache License, Version 2.0 (the "License");
 *  you may not use this file except in compliance with the License.
 *  You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 *  Unless required by applicable law or agreed to in writing, software
 *  distributed under the License is distributed on an "AS IS" BASIS,
 *  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *  See the License for the specific language governing permissions and
 *  limitations under the License.
 *
 */

package config

import (
	"fmt"
	"sync"

	"github.com/kelseyhightower/envconfig"
)

// Server holds the configuration parameters for the application.
type Server struct {
	LogLevel string `envconfig:"LOG_LEVEL" default:"DEBUG"`

	// Server configurations
	Port string `envconfig:"PORT" default:"8080"`

	// Certificate store configurations
	Database Database `envconfig:"DATABASE"`

	// Dashboard behavior configurations
	Dashboard Dashboard `envconfig:"DASHBOARD"`

	// Server-side result cache configurations
	Cache Cache `envconfig:"CACHE"`
}

// Database holds the MongoDB certificate store configuration.
// The collection is populated by an external scanner and is read-only
// from the dashboard's perspective.
type Database struct {
	URI            string `envconfig:"URI" default:"mongodb://localhost:27017"`
	Name           string `envconfig:"NAME" default:"latest-pk-domains"`
	Collection     string `envconfig:"COLLECTION" default:"certificates"`
	ConnectTimeout int    `envconfig:"CONNECT_TIMEOUT" default:"10"` // seconds
	QueryTimeout   int    `envconfig:"QUERY_TIMEOUT" default:"30"`   // seconds
	MaxPoolSize    uint64 `envconfig:"MAX_POOL_SIZE" default:"25"`

	// EnsureIndexes controls whether the secondary indexes the aggregation
	// pipelines rely on are created at startup. Set to false when the DB user
	// lacks index-creation privileges on the scanner's database.
	EnsureIndexes bool `envconfig:"ENSURE_INDEXES" default:"true"`
}

// Dashboard holds tunables for the analytics view models.
type Dashboard struct {
	// ExpiringSoonDays is the forward window for the EXPIRING_SOON status.
	ExpiringSoonDays int `envconfig:"EXPIRING_SOON_DAYS" default:"30"`
	DefaultPageSize  int `envconfig:"DEFAULT_PAGE_SIZE" default:"10"`
	MaxPageSize      int `envconfig:"MAX_PAGE_SIZE" default:"100"`
	// TopLimit is the default entry count for top-N distributions.
	TopLimit int `envconfig:"TOP_LIMIT" default:"10"`
}

// Cache holds TTLs (in seconds) for the per-namespace result cache.
// Derived view models are ephemeral; these only bound staleness.
type Cache struct {
	Enabled    bool `envconfig:"ENABLED" default:"true"`
	MaxEntries int  `envconfig:"MAX_ENTRIES" default:"1024"`

	MetricsTTL           int `envconfig:"METRICS_TTL" default:"300"`
	CertificatesTTL      int `envconfig:"CERTIFICATES_TTL" default:"300"`
	CertificatesPage1TTL int `envconfig:"CERTIFICATES_PAGE1_TTL" default:"900"`
	CAAnalyticsTTL       int `envconfig:"CA_ANALYTICS_TTL" default:"480"`
	EncryptionTTL        int `envconfig:"ENCRYPTION_TTL" default:"480"`
	GeographicTTL        int `envconfig:"GEOGRAPHIC_TTL" default:"480"`
	ValidityTrendsTTL    int `envconfig:"VALIDITY_TRENDS_TTL" default:"480"`
	ValidityStatsTTL     int `envconfig:"VALIDITY_STATS_TTL" default:"300"`
	FutureRiskTTL        int `envconfig:"FUTURE_RISK_TTL" default:"480"`
	NotificationsTTL     int `envconfig:"NOTIFICATIONS_TTL" default:"120"`
	UniqueFiltersTTL     int `envconfig:"UNIQUE_FILTERS_TTL" default:"480"`
	SignatureStatsTTL    int `envconfig:"SIGNATURE_STATS_TTL" default:"480"`
	HashTrendsTTL        int `envconfig:"HASH_TRENDS_TTL" default:"600"`
	IssuerMatrixTTL      int `envconfig:"ISSUER_MATRIX_TTL" default:"600"`
	SANTTL               int `envconfig:"SAN_TTL" default:"600"`
	SANTLDTTL            int `envconfig:"SAN_TLD_TTL" default:"900"`
}

// package-level variable and mutex for thread safety
var (
	processOnce     sync.Once
	settingInstance *Server
)

// GetConfig initializes and returns a singleton instance of the Server struct.
// It uses sync.Once to ensure that the initialization logic is executed only
// once, making it safe for concurrent use. If there is an error during the
// initialization, the function will panic.
func GetConfig() *Server {
	var err error
	processOnce.Do(func() {
		settingInstance = &Server{}
		err = envconfig.Process("", settingInstance)
		if err == nil {
			err = validateConfig(settingInstance)
		}
	})
	if err != nil {
		panic(err)
	}
	return settingInstance
}

// validateConfig checks the handful of values that would otherwise fail
// deep inside a request.
func validateConfig(cfg *Server) error {
	if cfg.Database.URI == "" {
		return fmt.Errorf("certificate store URI is not configured (DATABASE_URI)")
	}
	if cfg.Database.Name == "" || cfg.Database.Collection == "" {
		return fmt.Errorf("certificate store database/collection is not configured")
	}
	if cfg.Dashboard.ExpiringSoonDays <= 0 {
		return fmt.Errorf("DASHBOARD_EXPIRING_SOON_DAYS must be positive")
	}
	if cfg.Dashboard.MaxPageSize <= 0 || cfg.Dashboard.DefaultPageSize <= 0 {
		return fmt.Errorf("dashboard page sizes must be positive")
	}
	if cfg.Dashboard.DefaultPageSize > cfg.Dashboard.MaxPageSize {
		return fmt.Errorf("DASHBOARD_DEFAULT_PAGE_SIZE exceeds DASHBOARD_MAX_PAGE_SIZE")
	}
	return nil
}
