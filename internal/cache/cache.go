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

// Package cache provides an in-process result cache for aggregation-backed
// endpoints. Results are cached per namespace, with each namespace carrying
// its own TTL so cheap queries refresh faster than heavy pipelines.
package cache

import (
	"sync"
	"time"

	"ssl-guardian/src/config"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Cache namespaces. Each maps to a TTL from configuration.
const (
	NamespaceMetrics           = "metrics"
	NamespaceCertificates      = "certificates"
	NamespaceCertificatesPage1 = "certificates_page1"
	NamespaceCAAnalytics       = "ca_analytics"
	NamespaceEncryption        = "encryption"
	NamespaceGeographic        = "geographic"
	NamespaceValidityTrends    = "validity_trends"
	NamespaceValidityStats     = "validity_stats"
	NamespaceFutureRisk        = "future_risk"
	NamespaceNotifications     = "notifications"
	NamespaceUniqueFilters     = "unique_filters"
	NamespaceSignatureStats    = "signature_stats"
	NamespaceHashTrends        = "hash_trends"
	NamespaceIssuerMatrix      = "issuer_matrix"
	NamespaceSANStats          = "san_stats"
	NamespaceSANDistribution   = "san_distribution"
	NamespaceSANTLD            = "san_tld"
	NamespaceSANWildcard       = "san_wildcard"
)

// ResultCache is a set of per-namespace expirable LRU caches.
type ResultCache struct {
	mu         sync.Mutex
	enabled    bool
	maxEntries int
	ttls       map[string]time.Duration
	caches     map[string]*expirable.LRU[string, any]
}

// New builds a result cache from configuration. When caching is disabled the
// returned cache is still safe to use; every lookup simply misses.
func New(cfg *config.Cache) *ResultCache {
	ttls := map[string]time.Duration{
		NamespaceMetrics:           seconds(cfg.MetricsTTL),
		NamespaceCertificates:      seconds(cfg.CertificatesTTL),
		NamespaceCertificatesPage1: seconds(cfg.CertificatesPage1TTL),
		NamespaceCAAnalytics:       seconds(cfg.CAAnalyticsTTL),
		NamespaceEncryption:        seconds(cfg.EncryptionTTL),
		NamespaceGeographic:        seconds(cfg.GeographicTTL),
		NamespaceValidityTrends:    seconds(cfg.ValidityTrendsTTL),
		NamespaceValidityStats:     seconds(cfg.ValidityStatsTTL),
		NamespaceFutureRisk:        seconds(cfg.FutureRiskTTL),
		NamespaceNotifications:     seconds(cfg.NotificationsTTL),
		NamespaceUniqueFilters:     seconds(cfg.UniqueFiltersTTL),
		NamespaceSignatureStats:    seconds(cfg.SignatureStatsTTL),
		NamespaceHashTrends:        seconds(cfg.HashTrendsTTL),
		NamespaceIssuerMatrix:      seconds(cfg.IssuerMatrixTTL),
		NamespaceSANStats:          seconds(cfg.SANTTL),
		NamespaceSANDistribution:   seconds(cfg.SANTTL),
		NamespaceSANTLD:            seconds(cfg.SANTLDTTL),
		NamespaceSANWildcard:       seconds(cfg.SANTTL),
	}
	return &ResultCache{
		enabled:    cfg.Enabled,
		maxEntries: cfg.MaxEntries,
		ttls:       ttls,
		caches:     make(map[string]*expirable.LRU[string, any]),
	}
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}

func (c *ResultCache) cacheFor(namespace string) *expirable.LRU[string, any] {
	c.mu.Lock()
	defer c.mu.Unlock()
	if lru, ok := c.caches[namespace]; ok {
		return lru
	}
	ttl, ok := c.ttls[namespace]
	if !ok {
		ttl = 5 * time.Minute
	}
	lru := expirable.NewLRU[string, any](c.maxEntries, nil, ttl)
	c.caches[namespace] = lru
	return lru
}

// Get returns the cached value for key in namespace, if present and fresh.
func (c *ResultCache) Get(namespace, key string) (any, bool) {
	if !c.enabled {
		return nil, false
	}
	return c.cacheFor(namespace).Get(key)
}

// Set stores value under key in namespace with the namespace TTL.
func (c *ResultCache) Set(namespace, key string, value any) {
	if !c.enabled {
		return
	}
	c.cacheFor(namespace).Add(key, value)
}

// Purge drops every cached entry across all namespaces.
func (c *ResultCache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, lru := range c.caches {
		lru.Purge()
	}
}
