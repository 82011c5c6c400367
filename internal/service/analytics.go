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
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"ssl-guardian/src/config"
	"ssl-guardian/src/internal/cache"
	"ssl-guardian/src/internal/constants"
	"ssl-guardian/src/internal/dto"
	"ssl-guardian/src/internal/insights"
	"ssl-guardian/src/internal/repository"
	"ssl-guardian/src/internal/utils"
)

// AnalyticsService computes the distribution and trend charts.
type AnalyticsService struct {
	repo  repository.CertificateRepository
	cache *cache.ResultCache
	cfg   *config.Server
	now   func() time.Time
}

// NewAnalyticsService creates a new analytics service.
func NewAnalyticsService(repo repository.CertificateRepository, rc *cache.ResultCache, cfg *config.Server) *AnalyticsService {
	return &AnalyticsService{repo: repo, cache: rc, cfg: cfg, now: time.Now}
}

func slug(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "-")
}

// EncryptionStrength returns the key algorithm/size distribution.
// Percentages are computed against the full filtered total, so the slices of
// a truncated list still describe the whole inventory.
func (s *AnalyticsService) EncryptionStrength(ctx context.Context, f *dto.CertificateFilter) ([]dto.EncryptionSlice, error) {
	key := cacheKey(f)
	if cached, ok := s.cache.Get(cache.NamespaceEncryption, key); ok {
		if slices, ok := cached.([]dto.EncryptionSlice); ok {
			return slices, nil
		}
	}

	buckets, err := s.repo.KeySizeBuckets(ctx, f)
	if err != nil {
		return nil, err
	}

	var total int64
	for _, b := range buckets {
		total += b.Count
	}

	limit := s.cfg.Dashboard.TopLimit
	if len(buckets) > limit {
		buckets = buckets[:limit]
	}

	slices := make([]dto.EncryptionSlice, 0, len(buckets))
	for _, b := range buckets {
		name := encryptionTypeName(b.Algorithm, b.Length)
		slices = append(slices, dto.EncryptionSlice{
			ID:         slug(name),
			Name:       name,
			Type:       encryptionTypeLabel(b.Algorithm),
			Count:      b.Count,
			Percentage: insights.Percentage(b.Count, total),
			Color:      encryptionColor(b.Algorithm),
		})
	}

	s.cache.Set(cache.NamespaceEncryption, key, slices)
	return slices, nil
}

// CAAnalytics returns the certificate-authority leaderboard: the top CAs
// plus an "Others" bucket closing the gap so the percentages sum to 100.
func (s *AnalyticsService) CAAnalytics(ctx context.Context, f *dto.CertificateFilter) ([]dto.CASlice, error) {
	key := cacheKey(f)
	if cached, ok := s.cache.Get(cache.NamespaceCAAnalytics, key); ok {
		if slices, ok := cached.([]dto.CASlice); ok {
			return slices, nil
		}
	}

	buckets, err := s.repo.IssuerBuckets(ctx, f, 0)
	if err != nil {
		return nil, err
	}

	var total int64
	for _, b := range buckets {
		total += b.Count
	}

	limit := s.cfg.Dashboard.TopLimit
	top := buckets
	if len(top) > limit {
		top = top[:limit]
	}

	var maxCount int64
	if len(top) > 0 {
		maxCount = top[0].Count
	}

	slices := make([]dto.CASlice, 0, len(top)+1)
	var topTotal int64
	for i, b := range top {
		topTotal += b.Count
		slices = append(slices, dto.CASlice{
			ID:         slug(b.Key),
			Name:       b.Key,
			Count:      b.Count,
			MaxCount:   maxCount,
			Percentage: insights.Percentage(b.Count, total),
			Color:      caColor(i),
		})
	}

	if others := total - topTotal; others > 0 {
		slices = append(slices, dto.CASlice{
			ID:         slug(constants.IssuerOthers),
			Name:       constants.IssuerOthers,
			Count:      others,
			MaxCount:   maxCount,
			Percentage: insights.Percentage(others, total),
			Color:      defaultColor,
			IsOthers:   true,
		})
	}

	s.cache.Set(cache.NamespaceCAAnalytics, key, slices)
	return slices, nil
}

// GeographicDistribution maps domain TLDs onto countries. Unmappable TLDs
// are dropped rather than shown as a misleading "Unknown" country.
func (s *AnalyticsService) GeographicDistribution(ctx context.Context, f *dto.CertificateFilter) ([]dto.GeoSlice, error) {
	key := cacheKey(f)
	if cached, ok := s.cache.Get(cache.NamespaceGeographic, key); ok {
		if slices, ok := cached.([]dto.GeoSlice); ok {
			return slices, nil
		}
	}

	buckets, err := s.repo.TLDBuckets(ctx, f)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64)
	var total int64
	for _, b := range buckets {
		country := insights.CountryForTLD(b.Key)
		if country == insights.CountryUnknown {
			continue
		}
		counts[country] += b.Count
		total += b.Count
	}

	countries := make([]string, 0, len(counts))
	for country := range counts {
		countries = append(countries, country)
	}
	sort.Slice(countries, func(i, j int) bool {
		if counts[countries[i]] != counts[countries[j]] {
			return counts[countries[i]] > counts[countries[j]]
		}
		return countries[i] < countries[j]
	})

	var maxCount int64
	if len(countries) > 0 {
		maxCount = counts[countries[0]]
	}

	slices := make([]dto.GeoSlice, 0, len(countries))
	for i, country := range countries {
		slices = append(slices, dto.GeoSlice{
			ID:         slug(country),
			Country:    country,
			Count:      counts[country],
			MaxCount:   maxCount,
			Percentage: insights.Percentage(counts[country], total),
			Color:      geoColor(i),
		})
	}

	s.cache.Set(cache.NamespaceGeographic, key, slices)
	return slices, nil
}

// defaultTrendMonths sizes the validity-trend window on each side of now
// when the caller does not say otherwise.
const defaultTrendMonths = 4

// defaultTimelineMonths is the trailing issuance-timeline span.
const defaultTimelineMonths = 12

// monthAnchor returns the first instant of now's month. Stepping months
// from here avoids AddDate day normalization on month-end dates.
func monthAnchor(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// ValidityTrends returns the expiration series around now. Supported
// granularities: monthly, weekly, quarterly. monthsBefore and monthsAfter
// size the monthly and weekly windows on each side of the current period.
func (s *AnalyticsService) ValidityTrends(ctx context.Context, f *dto.CertificateFilter, granularity string, monthsBefore, monthsAfter int) ([]dto.TrendPoint, error) {
	if granularity == "" {
		granularity = constants.GranularityMonthly
	}
	if monthsBefore < 0 {
		monthsBefore = defaultTrendMonths
	}
	if monthsAfter < 0 {
		monthsAfter = defaultTrendMonths
	}

	key := cacheKey(f, granularity, fmt.Sprintf("%d:%d", monthsBefore, monthsAfter))
	if cached, ok := s.cache.Get(cache.NamespaceValidityTrends, key); ok {
		if points, ok := cached.([]dto.TrendPoint); ok {
			return points, nil
		}
	}

	var points []dto.TrendPoint
	var err error
	switch granularity {
	case constants.GranularityWeekly:
		points, err = s.weeklyTrend(ctx, f, monthsBefore, monthsAfter)
	case constants.GranularityQuarterly:
		points, err = s.quarterlyTrend(ctx, f)
	case constants.GranularityMonthly:
		points, err = s.monthlyTrend(ctx, f, monthsBefore, monthsAfter)
	default:
		return nil, fmt.Errorf("%w: unsupported granularity %q", constants.ErrInvalidParameter, granularity)
	}
	if err != nil {
		return nil, err
	}

	s.cache.Set(cache.NamespaceValidityTrends, key, points)
	return points, nil
}

func (s *AnalyticsService) monthlyTrend(ctx context.Context, f *dto.CertificateFilter, before, after int) ([]dto.TrendPoint, error) {
	anchor := monthAnchor(s.now().UTC())
	points := make([]dto.TrendPoint, 0, before+after+1)
	for i := -before; i <= after; i++ {
		month := anchor.AddDate(0, i, 0)
		start, end := utils.MonthBounds(month.Year(), int(month.Month()))
		count, err := s.repo.ExpiryCountInRange(ctx, f, start, end)
		if err != nil {
			return nil, err
		}
		points = append(points, dto.TrendPoint{
			Month:       month.Format("Jan 2006"),
			Expirations: count,
			Year:        month.Year(),
			MonthNum:    int(month.Month()),
			IsCurrent:   i == 0,
			Granularity: constants.GranularityMonthly,
		})
	}
	return points, nil
}

func (s *AnalyticsService) weeklyTrend(ctx context.Context, f *dto.CertificateFilter, before, after int) ([]dto.TrendPoint, error) {
	now := s.now().UTC()
	weeksBefore, weeksAfter := before*4, after*4
	points := make([]dto.TrendPoint, 0, weeksBefore+weeksAfter+1)
	for i := -weeksBefore; i <= weeksAfter; i++ {
		day := now.AddDate(0, 0, 7*i)
		weekStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
		// back up to Monday
		weekStart = weekStart.AddDate(0, 0, -((int(weekStart.Weekday()) + 6) % 7))
		weekEnd := weekStart.AddDate(0, 0, 7).Add(-time.Second)
		count, err := s.repo.ExpiryCountInRange(ctx, f, weekStart, weekEnd)
		if err != nil {
			return nil, err
		}
		_, isoWeek := weekStart.ISOWeek()
		points = append(points, dto.TrendPoint{
			Month:       fmt.Sprintf("%s-%s", weekStart.Format("Jan 02"), weekEnd.Format("02")),
			Expirations: count,
			Year:        weekStart.Year(),
			MonthNum:    int(weekStart.Month()),
			WeekNum:     isoWeek,
			WeekStart:   utils.FormatISO(weekStart),
			WeekEnd:     utils.FormatISO(weekEnd),
			IsCurrent:   !now.Before(weekStart) && !now.After(weekEnd),
			Granularity: constants.GranularityWeekly,
		})
	}
	return points, nil
}

func (s *AnalyticsService) quarterlyTrend(ctx context.Context, f *dto.CertificateFilter) ([]dto.TrendPoint, error) {
	anchor := monthAnchor(s.now().UTC())
	points := make([]dto.TrendPoint, 0, 4)
	for i := 0; i < 4; i++ {
		first := anchor.AddDate(0, 3*i, 0)
		qStart, _ := utils.MonthBounds(first.Year(), int(first.Month()))
		last := first.AddDate(0, 2, 0)
		_, qEnd := utils.MonthBounds(last.Year(), int(last.Month()))
		count, err := s.repo.ExpiryCountInRange(ctx, f, qStart, qEnd)
		if err != nil {
			return nil, err
		}
		points = append(points, dto.TrendPoint{
			Month:       fmt.Sprintf("%s-%s", first.Format("Jan"), last.Format("Jan 2006")),
			Expirations: count,
			Year:        first.Year(),
			MonthNum:    int(first.Month()),
			IsCurrent:   i == 0,
			Granularity: constants.GranularityQuarterly,
		})
	}
	return points, nil
}

// ValidityStats summarises certificate lifetimes and the upcoming expiry
// load.
func (s *AnalyticsService) ValidityStats(ctx context.Context, f *dto.CertificateFilter) (*dto.ValidityStats, error) {
	key := cacheKey(f)
	if cached, ok := s.cache.Get(cache.NamespaceValidityStats, key); ok {
		if stats, ok := cached.(*dto.ValidityStats); ok {
			return stats, nil
		}
	}

	agg, err := s.repo.ValidityLengthStats(ctx, f)
	if err != nil {
		return nil, err
	}

	now := s.now()
	var expiring [3]int64
	for i, days := range []int{30, 60, 90} {
		count, err := s.repo.ExpiringWithin(ctx, f, now, days)
		if err != nil {
			return nil, err
		}
		expiring[i] = count
	}

	stats := &dto.ValidityStats{
		AverageValidityDays:  int(math.Round(agg.AverageDays)),
		ShortestValidityDays: int(math.Round(agg.MinDays)),
		LongestValidityDays:  int(math.Round(agg.MaxDays)),
		Expiring30Days:       expiring[0],
		Expiring60Days:       expiring[1],
		Expiring90Days:       expiring[2],
		ComplianceRate:       insights.Percentage(agg.Compliant, agg.Total),
		TotalCertificates:    agg.Total,
	}

	s.cache.Set(cache.NamespaceValidityStats, key, stats)
	return stats, nil
}

// validityBucketOrder fixes the chart ordering of the lifetime bands.
var validityBucketOrder = []int{0, 90, 365, 730}

// ValidityDistribution returns the lifetime-band chart. Every band is
// present even at zero so the chart axes stay stable.
func (s *AnalyticsService) ValidityDistribution(ctx context.Context, f *dto.CertificateFilter) ([]dto.ValidityBucket, error) {
	key := cacheKey(f, "distribution")
	if cached, ok := s.cache.Get(cache.NamespaceValidityTrends, key); ok {
		if buckets, ok := cached.([]dto.ValidityBucket); ok {
			return buckets, nil
		}
	}

	rows, err := s.repo.ValidityBuckets(ctx, f)
	if err != nil {
		return nil, err
	}

	counts := make(map[int]int64, len(rows))
	var total int64
	for _, row := range rows {
		counts[row.Lower] = row.Count
		total += row.Count
	}

	buckets := make([]dto.ValidityBucket, 0, len(validityBucketOrder))
	for _, lower := range validityBucketOrder {
		meta := validityBucketMeta[lower]
		buckets = append(buckets, dto.ValidityBucket{
			Range:      meta.Label,
			Count:      counts[lower],
			Percentage: insights.Percentage(counts[lower], total),
			Color:      meta.Color,
		})
	}

	s.cache.Set(cache.NamespaceValidityTrends, key, buckets)
	return buckets, nil
}

// IssuanceTimeline returns issued-versus-expiring counts per month over the
// trailing window, current month included.
func (s *AnalyticsService) IssuanceTimeline(ctx context.Context, f *dto.CertificateFilter, months int) ([]dto.TimelinePoint, error) {
	if months <= 0 {
		months = defaultTimelineMonths
	}

	key := cacheKey(f, "timeline", fmt.Sprintf("%d", months))
	if cached, ok := s.cache.Get(cache.NamespaceValidityTrends, key); ok {
		if points, ok := cached.([]dto.TimelinePoint); ok {
			return points, nil
		}
	}

	anchor := monthAnchor(s.now().UTC())
	points := make([]dto.TimelinePoint, 0, months)
	for offset := -(months - 1); offset <= 0; offset++ {
		month := anchor.AddDate(0, offset, 0)
		start, end := utils.MonthBounds(month.Year(), int(month.Month()))
		issued, err := s.repo.IssuedCountInRange(ctx, f, start, end)
		if err != nil {
			return nil, err
		}
		expiring, err := s.repo.ExpiryCountInRange(ctx, f, start, end)
		if err != nil {
			return nil, err
		}
		points = append(points, dto.TimelinePoint{
			Month:    month.Format("Jan '06"),
			Year:     month.Year(),
			MonthNum: int(month.Month()),
			Issued:   issued,
			Expiring: expiring,
		})
	}

	s.cache.Set(cache.NamespaceValidityTrends, key, points)
	return points, nil
}
