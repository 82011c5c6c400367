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

// Package repository implements read-only data access against the scanner's
// certificate store. Every method accepts the caller's filter set and reduces
// it to a match stage shared by all pipelines.
package repository

import (
	"context"
	"time"

	"ssl-guardian/src/internal/dto"
	"ssl-guardian/src/internal/model"
)

// Bucket is a generic group-and-count aggregation row.
type Bucket struct {
	Key   string `bson:"_id"`
	Count int64  `bson:"count"`
}

// RangeBucket is a $bucket aggregation row keyed by its lower boundary.
type RangeBucket struct {
	Lower int   `bson:"_id"`
	Count int64 `bson:"count"`
}

// KeyLengthBucket groups certificates by key algorithm and key length.
type KeyLengthBucket struct {
	Algorithm string `bson:"algorithm"`
	Length    int    `bson:"length"`
	Count     int64  `bson:"count"`
}

// StrengthBucket groups certificates by the three inputs of the strength
// score so the mean score can be computed without streaming documents.
type StrengthBucket struct {
	KeyAlgorithm       string `bson:"keyAlgorithm"`
	KeyLength          int    `bson:"keyLength"`
	SignatureAlgorithm string `bson:"signatureAlgorithm"`
	Count              int64  `bson:"count"`
}

// HashTrendBucket is a per-quarter count for one signature algorithm.
type HashTrendBucket struct {
	Year      int    `bson:"year"`
	Quarter   int    `bson:"quarter"`
	Algorithm string `bson:"algorithm"`
	Count     int64  `bson:"count"`
}

// MatrixCellAgg is one issuer/algorithm pairing with its certificate count.
type MatrixCellAgg struct {
	Issuer    string `bson:"issuer"`
	Algorithm string `bson:"algorithm"`
	Count     int64  `bson:"count"`
}

// StatusCounts carries the dashboard's headline counters.
type StatusCounts struct {
	Total        int64
	Active       int64
	ExpiringSoon int64
	Expired      int64
	Vulnerable   int64
}

// ValidityLengthStats summarises certificate lifetimes in days.
type ValidityLengthStats struct {
	Total       int64   `bson:"total"`
	AverageDays float64 `bson:"averageDays"`
	MinDays     float64 `bson:"minDays"`
	MaxDays     float64 `bson:"maxDays"`
	Compliant   int64   `bson:"compliant"`
}

// SANStatsAgg summarises subject alternative name usage.
type SANStatsAgg struct {
	Total        int64   `bson:"total"`
	AverageSANs  float64 `bson:"averageSans"`
	MaxSANs      int     `bson:"maxSans"`
	SingleDomain int64   `bson:"singleDomain"`
	Wildcard     int64   `bson:"wildcard"`
}

// NotificationCounts carries the alert-feed counters, gathered in one pass.
type NotificationCounts struct {
	ExpiringTwoDays   int64
	ExpiringSevenDays int64
	Vulnerable        int64
	WeakKeys          int64
	NewlyExpired      int64
}

// CertificateRepository is the read surface over the certificate store.
type CertificateRepository interface {
	List(ctx context.Context, filter *dto.CertificateFilter, page, pageSize int) ([]model.Certificate, int64, error)
	GetByID(ctx context.Context, id string) (*model.Certificate, error)
	Count(ctx context.Context, filter *dto.CertificateFilter) (int64, error)
	StatusCounts(ctx context.Context, filter *dto.CertificateFilter) (*StatusCounts, error)

	EncryptionBuckets(ctx context.Context, filter *dto.CertificateFilter) ([]Bucket, error)
	IssuerBuckets(ctx context.Context, filter *dto.CertificateFilter, limit int) ([]Bucket, error)
	TLDBuckets(ctx context.Context, filter *dto.CertificateFilter) ([]Bucket, error)

	ExpiringWithin(ctx context.Context, filter *dto.CertificateFilter, from time.Time, days int) (int64, error)
	ExpiryCountInRange(ctx context.Context, filter *dto.CertificateFilter, start, end time.Time) (int64, error)
	IssuedCountInRange(ctx context.Context, filter *dto.CertificateFilter, start, end time.Time) (int64, error)

	ValidityLengthStats(ctx context.Context, filter *dto.CertificateFilter) (*ValidityLengthStats, error)
	ValidityBuckets(ctx context.Context, filter *dto.CertificateFilter) ([]RangeBucket, error)

	SignatureAlgorithmBuckets(ctx context.Context, filter *dto.CertificateFilter) ([]Bucket, error)
	KeySizeBuckets(ctx context.Context, filter *dto.CertificateFilter) ([]KeyLengthBucket, error)
	StrengthBuckets(ctx context.Context, filter *dto.CertificateFilter) ([]StrengthBucket, error)
	SelfSignedCount(ctx context.Context, filter *dto.CertificateFilter) (int64, error)
	HashTrendBuckets(ctx context.Context, filter *dto.CertificateFilter) ([]HashTrendBucket, error)
	IssuerAlgorithmMatrix(ctx context.Context, filter *dto.CertificateFilter, topIssuers int) ([]MatrixCellAgg, error)

	SANStats(ctx context.Context, filter *dto.CertificateFilter) (*SANStatsAgg, error)
	SANCountBuckets(ctx context.Context, filter *dto.CertificateFilter) ([]RangeBucket, error)
	SANTLDBuckets(ctx context.Context, filter *dto.CertificateFilter, limit int) ([]Bucket, error)
	WildcardIssuerBuckets(ctx context.Context, filter *dto.CertificateFilter, limit int) ([]Bucket, error)

	UniqueIssuers(ctx context.Context, limit int) ([]string, error)
	UniqueDomains(ctx context.Context, limit int) ([]string, error)
	NotificationCounts(ctx context.Context, now time.Time) (*NotificationCounts, error)
}
