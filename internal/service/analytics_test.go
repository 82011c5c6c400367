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
	"fmt"
	"testing"
	"time"

	"ssl-guardian/src/internal/constants"
	"ssl-guardian/src/internal/dto"
	"ssl-guardian/src/internal/repository"
)

func newAnalyticsService(repo *mockRepo) *AnalyticsService {
	s := NewAnalyticsService(repo, testCache(), testConfig())
	s.now = func() time.Time { return fixedNow }
	return s
}

func TestCAAnalyticsOthersBucket(t *testing.T) {
	// 12 issuers against a top limit of 10: the last two fold into Others.
	buckets := make([]repository.Bucket, 0, 12)
	var total int64
	for i := 0; i < 12; i++ {
		count := int64(120 - 10*i)
		buckets = append(buckets, repository.Bucket{Key: fmt.Sprintf("CA %02d", i), Count: count})
		total += count
	}

	svc := newAnalyticsService(&mockRepo{
		issuerFn: func(_ *dto.CertificateFilter, limit int) ([]repository.Bucket, error) {
			if limit != 0 {
				t.Errorf("issuer limit = %d, want 0 (full distribution)", limit)
			}
			return buckets, nil
		},
	})

	slices, err := svc.CAAnalytics(context.Background(), nil)
	if err != nil {
		t.Fatalf("CAAnalytics: %v", err)
	}
	if len(slices) != 11 {
		t.Fatalf("got %d slices, want 10 + Others", len(slices))
	}

	last := slices[len(slices)-1]
	if !last.IsOthers || last.Name != constants.IssuerOthers {
		t.Errorf("last slice = %+v, want the Others bucket", last)
	}
	if last.Count != 20+10 {
		t.Errorf("Others count = %d, want 30", last.Count)
	}

	var sum int64
	var pct float64
	for _, s := range slices {
		sum += s.Count
		pct += s.Percentage
		if s.MaxCount != 120 {
			t.Errorf("slice %q MaxCount = %d, want 120", s.Name, s.MaxCount)
		}
	}
	if sum != total {
		t.Errorf("slice counts sum to %d, want %d", sum, total)
	}
	if pct < 99.0 || pct > 101.0 {
		t.Errorf("percentages sum to %.1f, want ~100", pct)
	}
}

func TestCAAnalyticsNoOthersWhenSmall(t *testing.T) {
	svc := newAnalyticsService(&mockRepo{
		issuerFn: func(_ *dto.CertificateFilter, _ int) ([]repository.Bucket, error) {
			return []repository.Bucket{
				{Key: "Let's Encrypt", Count: 70},
				{Key: "DigiCert Inc", Count: 30},
			}, nil
		},
	})
	slices, err := svc.CAAnalytics(context.Background(), nil)
	if err != nil {
		t.Fatalf("CAAnalytics: %v", err)
	}
	if len(slices) != 2 {
		t.Fatalf("got %d slices, want 2 with no Others", len(slices))
	}
	if slices[0].Percentage != 70.0 || slices[1].Percentage != 30.0 {
		t.Errorf("percentages = %.1f/%.1f", slices[0].Percentage, slices[1].Percentage)
	}
}

func TestGeographicDistributionDropsUnknown(t *testing.T) {
	svc := newAnalyticsService(&mockRepo{
		tldFn: func(_ *dto.CertificateFilter) ([]repository.Bucket, error) {
			return []repository.Bucket{
				{Key: "pk", Count: 50},
				{Key: "de", Count: 30},
				{Key: "xyz", Count: 20}, // unmapped TLD
			}, nil
		},
	})
	slices, err := svc.GeographicDistribution(context.Background(), nil)
	if err != nil {
		t.Fatalf("GeographicDistribution: %v", err)
	}
	if len(slices) != 2 {
		t.Fatalf("got %d slices, want 2 (unknown TLD dropped)", len(slices))
	}
	if slices[0].Country != "Pakistan" || slices[1].Country != "Germany" {
		t.Errorf("countries = %q, %q", slices[0].Country, slices[1].Country)
	}
	// Percentages are against the mappable total of 80, not 100.
	if slices[0].Percentage != 62.5 || slices[1].Percentage != 37.5 {
		t.Errorf("percentages = %.1f/%.1f, want 62.5/37.5", slices[0].Percentage, slices[1].Percentage)
	}
}

func TestEncryptionStrength(t *testing.T) {
	svc := newAnalyticsService(&mockRepo{
		keySizeFn: func(_ *dto.CertificateFilter) ([]repository.KeyLengthBucket, error) {
			return []repository.KeyLengthBucket{
				{Algorithm: "RSA", Length: 2048, Count: 60},
				{Algorithm: "ECDSA", Length: 256, Count: 40},
			}, nil
		},
	})
	slices, err := svc.EncryptionStrength(context.Background(), nil)
	if err != nil {
		t.Fatalf("EncryptionStrength: %v", err)
	}
	if len(slices) != 2 {
		t.Fatalf("got %d slices", len(slices))
	}
	if slices[0].Name != "RSA 2048" || slices[0].Type != "Standard" {
		t.Errorf("first slice = %+v", slices[0])
	}
	if slices[1].Name != "ECDSA 256" || slices[1].Type != "Modern" {
		t.Errorf("second slice = %+v", slices[1])
	}
	if slices[0].Percentage != 60.0 || slices[1].Percentage != 40.0 {
		t.Errorf("percentages = %.1f/%.1f", slices[0].Percentage, slices[1].Percentage)
	}
	if slices[0].ID != "rsa-2048" {
		t.Errorf("ID = %q, want rsa-2048", slices[0].ID)
	}
}

func TestValidityDistributionStableBands(t *testing.T) {
	svc := newAnalyticsService(&mockRepo{
		validityBktFn: func(_ *dto.CertificateFilter) ([]repository.RangeBucket, error) {
			return []repository.RangeBucket{
				{Lower: 0, Count: 75},
				{Lower: 365, Count: 25},
			}, nil
		},
	})
	buckets, err := svc.ValidityDistribution(context.Background(), nil)
	if err != nil {
		t.Fatalf("ValidityDistribution: %v", err)
	}
	if len(buckets) != 4 {
		t.Fatalf("got %d bands, want all 4", len(buckets))
	}
	wantRanges := []string{"< 90 Days", "90 Days - 1 Year", "1 - 2 Years", "> 2 Years"}
	wantCounts := []int64{75, 0, 25, 0}
	for i := range buckets {
		if buckets[i].Range != wantRanges[i] || buckets[i].Count != wantCounts[i] {
			t.Errorf("band %d = %q/%d, want %q/%d", i, buckets[i].Range, buckets[i].Count, wantRanges[i], wantCounts[i])
		}
	}
}

func TestValidityStats(t *testing.T) {
	svc := newAnalyticsService(&mockRepo{
		validityStatsFn: func(_ *dto.CertificateFilter) (*repository.ValidityLengthStats, error) {
			return &repository.ValidityLengthStats{
				Total:       1000,
				AverageDays: 234.6,
				MinDays:     89.5,
				MaxDays:     825.0,
				Compliant:   940,
			}, nil
		},
		expiringWithinFn: func(_ *dto.CertificateFilter, _ time.Time, days int) (int64, error) {
			return int64(days), nil
		},
	})
	stats, err := svc.ValidityStats(context.Background(), nil)
	if err != nil {
		t.Fatalf("ValidityStats: %v", err)
	}
	if stats.AverageValidityDays != 235 || stats.ShortestValidityDays != 90 || stats.LongestValidityDays != 825 {
		t.Errorf("day stats = %d/%d/%d", stats.AverageValidityDays, stats.ShortestValidityDays, stats.LongestValidityDays)
	}
	if stats.Expiring30Days != 30 || stats.Expiring60Days != 60 || stats.Expiring90Days != 90 {
		t.Errorf("expiring = %d/%d/%d", stats.Expiring30Days, stats.Expiring60Days, stats.Expiring90Days)
	}
	if stats.ComplianceRate != 94.0 {
		t.Errorf("ComplianceRate = %.1f, want 94.0", stats.ComplianceRate)
	}
}

func TestValidityTrendsGranularities(t *testing.T) {
	// fixedNow is Sat Aug 15 2026; its Monday-anchored week is Aug 10-16.
	tests := []struct {
		granularity string
		wantPoints  int
		wantFirst   string
		wantCurrent int
	}{
		{constants.GranularityMonthly, 9, "Apr 2026", 4},
		{constants.GranularityWeekly, 33, "Apr 20-26", 16},
		{constants.GranularityQuarterly, 4, "Aug-Oct 2026", 0},
		{"", 9, "Apr 2026", 4}, // defaults to monthly
	}
	for _, tt := range tests {
		t.Run("granularity "+tt.granularity, func(t *testing.T) {
			svc := newAnalyticsService(&mockRepo{
				expiryRangeFn: func(_ *dto.CertificateFilter, _, _ time.Time) (int64, error) {
					return 7, nil
				},
			})
			points, err := svc.ValidityTrends(context.Background(), nil, tt.granularity, 4, 4)
			if err != nil {
				t.Fatalf("ValidityTrends: %v", err)
			}
			if len(points) != tt.wantPoints {
				t.Fatalf("got %d points, want %d", len(points), tt.wantPoints)
			}
			if points[0].Month != tt.wantFirst {
				t.Errorf("first label = %q, want %q", points[0].Month, tt.wantFirst)
			}
			for i := range points {
				if points[i].IsCurrent != (i == tt.wantCurrent) {
					t.Errorf("point %d IsCurrent = %v, want current index %d", i, points[i].IsCurrent, tt.wantCurrent)
				}
			}
		})
	}
}

func TestValidityTrendsWindowParams(t *testing.T) {
	svc := newAnalyticsService(&mockRepo{
		expiryRangeFn: func(_ *dto.CertificateFilter, _, _ time.Time) (int64, error) {
			return 1, nil
		},
	})
	points, err := svc.ValidityTrends(context.Background(), nil, constants.GranularityMonthly, 1, 2)
	if err != nil {
		t.Fatalf("ValidityTrends: %v", err)
	}
	if len(points) != 4 {
		t.Fatalf("got %d points, want 4", len(points))
	}
	if points[0].Month != "Jul 2026" || points[3].Month != "Oct 2026" {
		t.Errorf("window = %q .. %q, want Jul 2026 .. Oct 2026", points[0].Month, points[3].Month)
	}
	if !points[1].IsCurrent {
		t.Error("current month not marked")
	}
}

func TestValidityTrendsMonthEndAnchoring(t *testing.T) {
	// Queried from Jan 31 the series must still walk consecutive calendar
	// months instead of skipping short ones.
	svc := newAnalyticsService(&mockRepo{
		expiryRangeFn: func(_ *dto.CertificateFilter, _, _ time.Time) (int64, error) {
			return 1, nil
		},
	})
	svc.now = func() time.Time { return time.Date(2026, 1, 31, 10, 0, 0, 0, time.UTC) }

	points, err := svc.ValidityTrends(context.Background(), nil, constants.GranularityMonthly, 4, 4)
	if err != nil {
		t.Fatalf("ValidityTrends: %v", err)
	}
	want := []string{
		"Sep 2025", "Oct 2025", "Nov 2025", "Dec 2025", "Jan 2026",
		"Feb 2026", "Mar 2026", "Apr 2026", "May 2026",
	}
	if len(points) != len(want) {
		t.Fatalf("got %d points, want %d", len(points), len(want))
	}
	for i := range want {
		if points[i].Month != want[i] {
			t.Errorf("point %d = %q, want %q", i, points[i].Month, want[i])
		}
	}
}

func TestValidityTrendsRejectsUnknownGranularity(t *testing.T) {
	svc := newAnalyticsService(&mockRepo{})
	_, err := svc.ValidityTrends(context.Background(), nil, "hourly", 4, 4)
	if !errors.Is(err, constants.ErrInvalidParameter) {
		t.Errorf("err = %v, want ErrInvalidParameter", err)
	}
}

func TestIssuanceTimeline(t *testing.T) {
	svc := newAnalyticsService(&mockRepo{
		issuedRangeFn: func(_ *dto.CertificateFilter, _, _ time.Time) (int64, error) {
			return 5, nil
		},
		expiryRangeFn: func(_ *dto.CertificateFilter, _, _ time.Time) (int64, error) {
			return 3, nil
		},
	})
	points, err := svc.IssuanceTimeline(context.Background(), nil, 12)
	if err != nil {
		t.Fatalf("IssuanceTimeline: %v", err)
	}
	if len(points) != 12 {
		t.Fatalf("got %d points, want 12", len(points))
	}
	if points[0].Month != "Sep '25" {
		t.Errorf("first label = %q, want Sep '25", points[0].Month)
	}
	if points[len(points)-1].Month != "Aug '26" {
		t.Errorf("last label = %q, want Aug '26", points[len(points)-1].Month)
	}
	for _, p := range points {
		if p.Issued != 5 || p.Expiring != 3 {
			t.Errorf("point %q = issued %d / expiring %d", p.Month, p.Issued, p.Expiring)
		}
	}
}

func TestIssuanceTimelineSpanParam(t *testing.T) {
	svc := newAnalyticsService(&mockRepo{
		issuedRangeFn: func(_ *dto.CertificateFilter, _, _ time.Time) (int64, error) {
			return 2, nil
		},
		expiryRangeFn: func(_ *dto.CertificateFilter, _, _ time.Time) (int64, error) {
			return 1, nil
		},
	})
	points, err := svc.IssuanceTimeline(context.Background(), nil, 6)
	if err != nil {
		t.Fatalf("IssuanceTimeline: %v", err)
	}
	if len(points) != 6 {
		t.Fatalf("got %d points, want 6", len(points))
	}
	if points[0].Month != "Mar '26" || points[5].Month != "Aug '26" {
		t.Errorf("window = %q .. %q, want Mar '26 .. Aug '26", points[0].Month, points[5].Month)
	}
}
