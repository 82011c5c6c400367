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
	"math"
	"time"

	"ssl-guardian/src/config"
	"ssl-guardian/src/internal/cache"
	"ssl-guardian/src/internal/dto"
	"ssl-guardian/src/internal/insights"
	"ssl-guardian/src/internal/repository"
)

// SANService serves the subject-alternative-name analytics page.
type SANService struct {
	repo  repository.CertificateRepository
	cache *cache.ResultCache
	cfg   *config.Server
	now   func() time.Time
}

// NewSANService creates a new SAN service.
func NewSANService(repo repository.CertificateRepository, rc *cache.ResultCache, cfg *config.Server) *SANService {
	return &SANService{repo: repo, cache: rc, cfg: cfg, now: time.Now}
}

// Stats aggregates the SAN page cards.
func (s *SANService) Stats(ctx context.Context, f *dto.CertificateFilter) (*dto.SANStats, error) {
	key := cacheKey(f)
	if cached, ok := s.cache.Get(cache.NamespaceSANStats, key); ok {
		if stats, ok := cached.(*dto.SANStats); ok {
			return stats, nil
		}
	}

	agg, err := s.repo.SANStats(ctx, f)
	if err != nil {
		return nil, err
	}

	stats := &dto.SANStats{
		TotalCertificates:  agg.Total,
		AverageSANCount:    math.Round(agg.AverageSANs*10) / 10,
		MaxSANCount:        int64(agg.MaxSANs),
		SingleDomainCount:  agg.SingleDomain,
		WildcardCount:      agg.Wildcard,
		WildcardPercentage: insights.Percentage(agg.Wildcard, agg.Total),
	}

	s.cache.Set(cache.NamespaceSANStats, key, stats)
	return stats, nil
}

// sanBucketOrder fixes the chart ordering of the SAN-count bands.
var sanBucketOrder = []int{0, 2, 6, 11, 26, 51}

// Distribution returns the SAN-count band chart.
func (s *SANService) Distribution(ctx context.Context, f *dto.CertificateFilter) ([]dto.SANBucket, error) {
	key := cacheKey(f)
	if cached, ok := s.cache.Get(cache.NamespaceSANDistribution, key); ok {
		if buckets, ok := cached.([]dto.SANBucket); ok {
			return buckets, nil
		}
	}

	rows, err := s.repo.SANCountBuckets(ctx, f)
	if err != nil {
		return nil, err
	}

	counts := make(map[int]int64, len(rows))
	var total int64
	for _, row := range rows {
		counts[row.Lower] = row.Count
		total += row.Count
	}

	buckets := make([]dto.SANBucket, 0, len(sanBucketOrder))
	for _, lower := range sanBucketOrder {
		meta := sanBucketMeta[lower]
		buckets = append(buckets, dto.SANBucket{
			Range:      meta.Label,
			Count:      counts[lower],
			Percentage: insights.Percentage(counts[lower], total),
			Color:      meta.Color,
		})
	}

	s.cache.Set(cache.NamespaceSANDistribution, key, buckets)
	return buckets, nil
}

// TLDBreakdown counts subject alternative names by TLD, most common first.
func (s *SANService) TLDBreakdown(ctx context.Context, f *dto.CertificateFilter) ([]dto.SANTLDEntry, error) {
	key := cacheKey(f)
	if cached, ok := s.cache.Get(cache.NamespaceSANTLD, key); ok {
		if entries, ok := cached.([]dto.SANTLDEntry); ok {
			return entries, nil
		}
	}

	buckets, err := s.repo.SANTLDBuckets(ctx, f, 0)
	if err != nil {
		return nil, err
	}

	// Percentages use the grand total across every TLD, not just the
	// displayed slice.
	var total int64
	for _, b := range buckets {
		total += b.Count
	}
	if limit := s.cfg.Dashboard.TopLimit; limit > 0 && len(buckets) > limit {
		buckets = buckets[:limit]
	}

	entries := make([]dto.SANTLDEntry, 0, len(buckets))
	for i, b := range buckets {
		entries = append(entries, dto.SANTLDEntry{
			TLD:        "." + b.Key,
			Count:      b.Count,
			Percentage: insights.Percentage(b.Count, total),
			Color:      geoColor(i),
		})
	}

	s.cache.Set(cache.NamespaceSANTLD, key, entries)
	return entries, nil
}

// WildcardBreakdown splits the inventory into wildcard and standard
// certificates and names the CAs issuing the most wildcards.
func (s *SANService) WildcardBreakdown(ctx context.Context, f *dto.CertificateFilter) (*dto.SANWildcardBreakdown, error) {
	key := cacheKey(f)
	if cached, ok := s.cache.Get(cache.NamespaceSANWildcard, key); ok {
		if breakdown, ok := cached.(*dto.SANWildcardBreakdown); ok {
			return breakdown, nil
		}
	}

	agg, err := s.repo.SANStats(ctx, f)
	if err != nil {
		return nil, err
	}

	standard := agg.Total - agg.Wildcard
	breakdown := &dto.SANWildcardBreakdown{
		Distribution: []dto.SANWildcardEntry{
			{
				Name:       "Wildcard",
				Count:      agg.Wildcard,
				Percentage: insights.Percentage(agg.Wildcard, agg.Total),
				Color:      "#8b5cf6",
			},
			{
				Name:       "Standard",
				Count:      standard,
				Percentage: insights.Percentage(standard, agg.Total),
				Color:      "#3b82f6",
			},
		},
	}

	issuers, err := s.repo.WildcardIssuerBuckets(ctx, f, s.cfg.Dashboard.TopLimit)
	if err != nil {
		return nil, err
	}
	for i, b := range issuers {
		breakdown.TopWildcardIssuers = append(breakdown.TopWildcardIssuers, dto.SANWildcardEntry{
			Name:       b.Key,
			Count:      b.Count,
			Percentage: insights.Percentage(b.Count, agg.Wildcard),
			Color:      caColor(i),
		})
	}

	s.cache.Set(cache.NamespaceSANWildcard, key, breakdown)
	return breakdown, nil
}
