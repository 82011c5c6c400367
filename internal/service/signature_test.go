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
	"errors"
	"testing"
	"time"

	"ssl-guardian/src/internal/constants"
	"ssl-guardian/src/internal/dto"
	"ssl-guardian/src/internal/insights"
	"ssl-guardian/src/internal/repository"
)

func newSignatureService(repo *mockRepo) *SignatureService {
	s := NewSignatureService(repo, testCache(), testConfig())
	s.now = func() time.Time { return fixedNow }
	return s
}

func TestSignatureStats(t *testing.T) {
	svc := newSignatureService(&mockRepo{
		sigAlgFn: func(_ *dto.CertificateFilter) ([]repository.Bucket, error) {
			return []repository.Bucket{
				{Key: "SHA256-RSA", Count: 70},
				{Key: "SHA1-RSA", Count: 20},
				{Key: "MD5WithRSA", Count: 10},
			}, nil
		},
		keySizeFn: func(_ *dto.CertificateFilter) ([]repository.KeyLengthBucket, error) {
			return []repository.KeyLengthBucket{
				{Algorithm: "RSA", Length: 2048, Count: 90},
				{Algorithm: "RSA", Length: 1024, Count: 10},
			}, nil
		},
		strengthFn: func(_ *dto.CertificateFilter) ([]repository.StrengthBucket, error) {
			return []repository.StrengthBucket{
				{KeyAlgorithm: "RSA", KeyLength: 2048, SignatureAlgorithm: "SHA256-RSA", Count: 3},
				{KeyAlgorithm: "RSA", KeyLength: 1024, SignatureAlgorithm: "SHA1-RSA", Count: 1},
			}, nil
		},
		selfSignedFn: func(_ *dto.CertificateFilter) (int64, error) {
			return 4, nil
		},
	})

	stats, err := svc.Stats(context.Background(), nil)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}

	if stats.TotalCertificates != 100 {
		t.Errorf("TotalCertificates = %d", stats.TotalCertificates)
	}
	if stats.WeakHashCount != 30 {
		t.Errorf("WeakHashCount = %d, want 30 (SHA-1 + MD5)", stats.WeakHashCount)
	}
	if stats.ComplianceRate != 70.0 {
		t.Errorf("ComplianceRate = %.1f, want 70.0", stats.ComplianceRate)
	}
	// (3*82 + 1*36) / 4 = 70.5, rounded to 71.
	if stats.AverageStrengthScore != 71 {
		t.Errorf("AverageStrengthScore = %d, want 71", stats.AverageStrengthScore)
	}
	if stats.SelfSignedCount != 4 {
		t.Errorf("SelfSignedCount = %d", stats.SelfSignedCount)
	}

	if len(stats.AlgorithmDistribution) != 3 {
		t.Fatalf("AlgorithmDistribution has %d entries", len(stats.AlgorithmDistribution))
	}
	if stats.AlgorithmDistribution[0].Weak {
		t.Error("SHA256-RSA flagged weak")
	}
	if !stats.AlgorithmDistribution[1].Weak || !stats.AlgorithmDistribution[2].Weak {
		t.Error("SHA-1/MD5 algorithms not flagged weak")
	}

	if len(stats.HashDistribution) != 3 {
		t.Fatalf("HashDistribution has %d entries", len(stats.HashDistribution))
	}
	if stats.HashDistribution[0].Name != insights.HashSHA256 || stats.HashDistribution[0].Count != 70 {
		t.Errorf("top hash = %+v", stats.HashDistribution[0])
	}

	if len(stats.KeySizeDistribution) != 2 || stats.KeySizeDistribution[0].Name != "RSA 2048" {
		t.Errorf("KeySizeDistribution = %+v", stats.KeySizeDistribution)
	}
}

func TestHashTrendsQuarterly(t *testing.T) {
	buckets := []repository.HashTrendBucket{
		{Year: 2024, Quarter: 3, Algorithm: "SHA256-RSA", Count: 50},
		{Year: 2024, Quarter: 3, Algorithm: "SHA1-RSA", Count: 10},
		{Year: 2025, Quarter: 1, Algorithm: "SHA256-RSA", Count: 80},
	}
	svc := newSignatureService(&mockRepo{
		hashTrendFn: func(_ *dto.CertificateFilter) ([]repository.HashTrendBucket, error) {
			return buckets, nil
		},
	})

	trends, err := svc.HashTrends(context.Background(), nil, "")
	if err != nil {
		t.Fatalf("HashTrends: %v", err)
	}
	if trends.Granularity != constants.GranularityQuarterly {
		t.Errorf("Granularity = %q", trends.Granularity)
	}
	if len(trends.Periods) != 2 {
		t.Fatalf("got %d periods, want 2", len(trends.Periods))
	}
	first := trends.Periods[0]
	if first.Period != "2024 Q3" || first.Total != 60 {
		t.Errorf("first period = %+v", first)
	}
	if first.Counts[insights.HashSHA256] != 50 || first.Counts[insights.HashSHA1] != 10 {
		t.Errorf("first period counts = %v", first.Counts)
	}
	if first.WeakPercentage != 16.7 {
		t.Errorf("WeakPercentage = %.1f, want 16.7", first.WeakPercentage)
	}
	if trends.Periods[1].Period != "2025 Q1" {
		t.Errorf("second period = %q", trends.Periods[1].Period)
	}
}

func TestHashTrendsYearlyFoldsQuarters(t *testing.T) {
	svc := newSignatureService(&mockRepo{
		hashTrendFn: func(_ *dto.CertificateFilter) ([]repository.HashTrendBucket, error) {
			return []repository.HashTrendBucket{
				{Year: 2024, Quarter: 1, Algorithm: "SHA256-RSA", Count: 30},
				{Year: 2024, Quarter: 4, Algorithm: "SHA256-RSA", Count: 20},
				{Year: 2025, Quarter: 2, Algorithm: "SHA256-RSA", Count: 10},
			}, nil
		},
	})
	trends, err := svc.HashTrends(context.Background(), nil, constants.GranularityYearly)
	if err != nil {
		t.Fatalf("HashTrends: %v", err)
	}
	if len(trends.Periods) != 2 {
		t.Fatalf("got %d periods, want 2", len(trends.Periods))
	}
	if trends.Periods[0].Period != "2024" || trends.Periods[0].Total != 50 {
		t.Errorf("2024 period = %+v", trends.Periods[0])
	}
	if trends.Periods[1].Period != "2025" || trends.Periods[1].Total != 10 {
		t.Errorf("2025 period = %+v", trends.Periods[1])
	}
}

func TestHashTrendsRejectsUnknownGranularity(t *testing.T) {
	svc := newSignatureService(&mockRepo{})
	_, err := svc.HashTrends(context.Background(), nil, "daily")
	if !errors.Is(err, constants.ErrInvalidParameter) {
		t.Errorf("err = %v, want ErrInvalidParameter", err)
	}
}

func TestIssuerAlgorithmMatrix(t *testing.T) {
	svc := newSignatureService(&mockRepo{
		matrixFn: func(_ *dto.CertificateFilter, topIssuers int) ([]repository.MatrixCellAgg, error) {
			if topIssuers != 10 {
				t.Errorf("topIssuers = %d, want 10", topIssuers)
			}
			return []repository.MatrixCellAgg{
				{Issuer: "DigiCert Inc", Algorithm: "SHA256-RSA", Count: 40},
				{Issuer: "Let's Encrypt", Algorithm: "SHA256-RSA", Count: 90},
				{Issuer: "Let's Encrypt", Algorithm: "ECDSA-SHA384", Count: 30},
			}, nil
		},
	})

	matrix, err := svc.IssuerAlgorithmMatrix(context.Background(), nil)
	if err != nil {
		t.Fatalf("IssuerAlgorithmMatrix: %v", err)
	}
	if len(matrix.Issuers) != 2 || matrix.Issuers[0] != "Let's Encrypt" {
		t.Errorf("Issuers = %v, want Let's Encrypt first (120 certs)", matrix.Issuers)
	}
	if len(matrix.Algorithms) != 2 || matrix.Algorithms[0] != "SHA256-RSA" {
		t.Errorf("Algorithms = %v, want SHA256-RSA first", matrix.Algorithms)
	}
	if len(matrix.Cells) != 3 {
		t.Errorf("got %d cells, want 3", len(matrix.Cells))
	}
}
