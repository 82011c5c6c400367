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

package service

import (
	"context"
	"time"

	"ssl-guardian/src/config"
	"ssl-guardian/src/internal/cache"
	"ssl-guardian/src/internal/dto"
	"ssl-guardian/src/internal/model"
	"ssl-guardian/src/internal/repository"
)

// mockRepo implements CertificateRepository with overridable functions.
// Unset methods return empty results.
type mockRepo struct {
	listFn           func(f *dto.CertificateFilter, page, pageSize int) ([]model.Certificate, int64, error)
	getByIDFn        func(id string) (*model.Certificate, error)
	countFn          func(f *dto.CertificateFilter) (int64, error)
	statusCountsFn   func(f *dto.CertificateFilter) (*repository.StatusCounts, error)
	encryptionFn     func(f *dto.CertificateFilter) ([]repository.Bucket, error)
	issuerFn         func(f *dto.CertificateFilter, limit int) ([]repository.Bucket, error)
	tldFn            func(f *dto.CertificateFilter) ([]repository.Bucket, error)
	expiringWithinFn func(f *dto.CertificateFilter, from time.Time, days int) (int64, error)
	expiryRangeFn    func(f *dto.CertificateFilter, start, end time.Time) (int64, error)
	issuedRangeFn    func(f *dto.CertificateFilter, start, end time.Time) (int64, error)
	validityStatsFn  func(f *dto.CertificateFilter) (*repository.ValidityLengthStats, error)
	validityBktFn    func(f *dto.CertificateFilter) ([]repository.RangeBucket, error)
	sigAlgFn         func(f *dto.CertificateFilter) ([]repository.Bucket, error)
	keySizeFn        func(f *dto.CertificateFilter) ([]repository.KeyLengthBucket, error)
	strengthFn       func(f *dto.CertificateFilter) ([]repository.StrengthBucket, error)
	selfSignedFn     func(f *dto.CertificateFilter) (int64, error)
	hashTrendFn      func(f *dto.CertificateFilter) ([]repository.HashTrendBucket, error)
	matrixFn         func(f *dto.CertificateFilter, topIssuers int) ([]repository.MatrixCellAgg, error)
	sanStatsFn       func(f *dto.CertificateFilter) (*repository.SANStatsAgg, error)
	sanCountFn       func(f *dto.CertificateFilter) ([]repository.RangeBucket, error)
	sanTLDFn         func(f *dto.CertificateFilter, limit int) ([]repository.Bucket, error)
	wildcardFn       func(f *dto.CertificateFilter, limit int) ([]repository.Bucket, error)
	uniqueIssuersFn  func(limit int) ([]string, error)
	uniqueDomainsFn  func(limit int) ([]string, error)
	notifCountsFn    func(now time.Time) (*repository.NotificationCounts, error)
}

func (m *mockRepo) List(_ context.Context, f *dto.CertificateFilter, page, pageSize int) ([]model.Certificate, int64, error) {
	if m.listFn != nil {
		return m.listFn(f, page, pageSize)
	}
	return nil, 0, nil
}

func (m *mockRepo) GetByID(_ context.Context, id string) (*model.Certificate, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(id)
	}
	return &model.Certificate{}, nil
}

func (m *mockRepo) Count(_ context.Context, f *dto.CertificateFilter) (int64, error) {
	if m.countFn != nil {
		return m.countFn(f)
	}
	return 0, nil
}

func (m *mockRepo) StatusCounts(_ context.Context, f *dto.CertificateFilter) (*repository.StatusCounts, error) {
	if m.statusCountsFn != nil {
		return m.statusCountsFn(f)
	}
	return &repository.StatusCounts{}, nil
}

func (m *mockRepo) EncryptionBuckets(_ context.Context, f *dto.CertificateFilter) ([]repository.Bucket, error) {
	if m.encryptionFn != nil {
		return m.encryptionFn(f)
	}
	return nil, nil
}

func (m *mockRepo) IssuerBuckets(_ context.Context, f *dto.CertificateFilter, limit int) ([]repository.Bucket, error) {
	if m.issuerFn != nil {
		return m.issuerFn(f, limit)
	}
	return nil, nil
}

func (m *mockRepo) TLDBuckets(_ context.Context, f *dto.CertificateFilter) ([]repository.Bucket, error) {
	if m.tldFn != nil {
		return m.tldFn(f)
	}
	return nil, nil
}

func (m *mockRepo) ExpiringWithin(_ context.Context, f *dto.CertificateFilter, from time.Time, days int) (int64, error) {
	if m.expiringWithinFn != nil {
		return m.expiringWithinFn(f, from, days)
	}
	return 0, nil
}

func (m *mockRepo) ExpiryCountInRange(_ context.Context, f *dto.CertificateFilter, start, end time.Time) (int64, error) {
	if m.expiryRangeFn != nil {
		return m.expiryRangeFn(f, start, end)
	}
	return 0, nil
}

func (m *mockRepo) IssuedCountInRange(_ context.Context, f *dto.CertificateFilter, start, end time.Time) (int64, error) {
	if m.issuedRangeFn != nil {
		return m.issuedRangeFn(f, start, end)
	}
	return 0, nil
}

func (m *mockRepo) ValidityLengthStats(_ context.Context, f *dto.CertificateFilter) (*repository.ValidityLengthStats, error) {
	if m.validityStatsFn != nil {
		return m.validityStatsFn(f)
	}
	return &repository.ValidityLengthStats{}, nil
}

func (m *mockRepo) ValidityBuckets(_ context.Context, f *dto.CertificateFilter) ([]repository.RangeBucket, error) {
	if m.validityBktFn != nil {
		return m.validityBktFn(f)
	}
	return nil, nil
}

func (m *mockRepo) SignatureAlgorithmBuckets(_ context.Context, f *dto.CertificateFilter) ([]repository.Bucket, error) {
	if m.sigAlgFn != nil {
		return m.sigAlgFn(f)
	}
	return nil, nil
}

func (m *mockRepo) KeySizeBuckets(_ context.Context, f *dto.CertificateFilter) ([]repository.KeyLengthBucket, error) {
	if m.keySizeFn != nil {
		return m.keySizeFn(f)
	}
	return nil, nil
}

func (m *mockRepo) StrengthBuckets(_ context.Context, f *dto.CertificateFilter) ([]repository.StrengthBucket, error) {
	if m.strengthFn != nil {
		return m.strengthFn(f)
	}
	return nil, nil
}

func (m *mockRepo) SelfSignedCount(_ context.Context, f *dto.CertificateFilter) (int64, error) {
	if m.selfSignedFn != nil {
		return m.selfSignedFn(f)
	}
	return 0, nil
}

func (m *mockRepo) HashTrendBuckets(_ context.Context, f *dto.CertificateFilter) ([]repository.HashTrendBucket, error) {
	if m.hashTrendFn != nil {
		return m.hashTrendFn(f)
	}
	return nil, nil
}

func (m *mockRepo) IssuerAlgorithmMatrix(_ context.Context, f *dto.CertificateFilter, topIssuers int) ([]repository.MatrixCellAgg, error) {
	if m.matrixFn != nil {
		return m.matrixFn(f, topIssuers)
	}
	return nil, nil
}

func (m *mockRepo) SANStats(_ context.Context, f *dto.CertificateFilter) (*repository.SANStatsAgg, error) {
	if m.sanStatsFn != nil {
		return m.sanStatsFn(f)
	}
	return &repository.SANStatsAgg{}, nil
}

func (m *mockRepo) SANCountBuckets(_ context.Context, f *dto.CertificateFilter) ([]repository.RangeBucket, error) {
	if m.sanCountFn != nil {
		return m.sanCountFn(f)
	}
	return nil, nil
}

func (m *mockRepo) SANTLDBuckets(_ context.Context, f *dto.CertificateFilter, limit int) ([]repository.Bucket, error) {
	if m.sanTLDFn != nil {
		return m.sanTLDFn(f, limit)
	}
	return nil, nil
}

func (m *mockRepo) WildcardIssuerBuckets(_ context.Context, f *dto.CertificateFilter, limit int) ([]repository.Bucket, error) {
	if m.wildcardFn != nil {
		return m.wildcardFn(f, limit)
	}
	return nil, nil
}

func (m *mockRepo) UniqueIssuers(_ context.Context, limit int) ([]string, error) {
	if m.uniqueIssuersFn != nil {
		return m.uniqueIssuersFn(limit)
	}
	return nil, nil
}

func (m *mockRepo) UniqueDomains(_ context.Context, limit int) ([]string, error) {
	if m.uniqueDomainsFn != nil {
		return m.uniqueDomainsFn(limit)
	}
	return nil, nil
}

func (m *mockRepo) NotificationCounts(_ context.Context, now time.Time) (*repository.NotificationCounts, error) {
	if m.notifCountsFn != nil {
		return m.notifCountsFn(now)
	}
	return &repository.NotificationCounts{}, nil
}

// testConfig returns service configuration with caching disabled so every
// test call reaches the mock.
func testConfig() *config.Server {
	return &config.Server{
		Dashboard: config.Dashboard{
			ExpiringSoonDays: 30,
			DefaultPageSize:  10,
			MaxPageSize:      100,
			TopLimit:         10,
		},
		Cache: config.Cache{Enabled: false, MaxEntries: 8},
	}
}

func testCache() *cache.ResultCache {
	cfg := testConfig()
	return cache.New(&cfg.Cache)
}
