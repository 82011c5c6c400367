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
	"sort"
	"time"

	"ssl-guardian/src/config"
	"ssl-guardian/src/internal/cache"
	"ssl-guardian/src/internal/constants"
	"ssl-guardian/src/internal/dto"
	"ssl-guardian/src/internal/insights"
	"ssl-guardian/src/internal/repository"
	"ssl-guardian/src/internal/utils"
)

// expiringActionThreshold is the expiring-soon count above which the card
// flags that action is needed.
const expiringActionThreshold = 100

// DashboardService serves the top-line dashboard cards.
type DashboardService struct {
	repo  repository.CertificateRepository
	cache *cache.ResultCache
	cfg   *config.Server
	now   func() time.Time
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(repo repository.CertificateRepository, rc *cache.ResultCache, cfg *config.Server) *DashboardService {
	return &DashboardService{repo: repo, cache: rc, cfg: cfg, now: time.Now}
}

// GlobalHealth computes the headline cards from one pass over the filtered
// inventory.
func (s *DashboardService) GlobalHealth(ctx context.Context, f *dto.CertificateFilter) (*dto.GlobalHealthResponse, error) {
	key := cacheKey(f)
	if cached, ok := s.cache.Get(cache.NamespaceMetrics, key); ok {
		if resp, ok := cached.(*dto.GlobalHealthResponse); ok {
			return resp, nil
		}
	}

	counts, err := s.repo.StatusCounts(ctx, f)
	if err != nil {
		return nil, err
	}

	score := insights.HealthScore(counts.Active, counts.Total, counts.Vulnerable)
	resp := &dto.GlobalHealthResponse{
		GlobalHealth: dto.GlobalHealth{
			Score:       score,
			MaxScore:    100,
			Status:      insights.HealthStatus(score),
			LastUpdated: utils.FormatISO(s.now().UTC()),
		},
		ActiveCertificates: dto.ActiveCertificates{
			Count: counts.Active,
			Total: counts.Total,
		},
		ExpiringSoon: dto.ExpiringSoon{
			Count:         counts.ExpiringSoon,
			DaysThreshold: s.cfg.Dashboard.ExpiringSoonDays,
			ActionNeeded:  counts.ExpiringSoon > expiringActionThreshold,
		},
		CriticalVulnerabilities: dto.CriticalVulnerabilities{
			Count: counts.Vulnerable,
			New:   counts.Vulnerable / 10,
		},
		ExpiredCertificates: dto.ExpiredCertificates{
			Count: counts.Expired,
		},
	}

	s.cache.Set(cache.NamespaceMetrics, key, resp)
	return resp, nil
}

// FutureRisk projects the near-term risk level from the current
// vulnerability and expiry load.
func (s *DashboardService) FutureRisk(ctx context.Context, f *dto.CertificateFilter) (*dto.FutureRisk, error) {
	key := cacheKey(f)
	if cached, ok := s.cache.Get(cache.NamespaceFutureRisk, key); ok {
		if risk, ok := cached.(*dto.FutureRisk); ok {
			return risk, nil
		}
	}

	counts, err := s.repo.StatusCounts(ctx, f)
	if err != nil {
		return nil, err
	}
	expiring, err := s.repo.ExpiringWithin(ctx, f, s.now(), 30)
	if err != nil {
		return nil, err
	}

	risk := &dto.FutureRisk{}
	switch {
	case counts.Vulnerable > 5 || expiring > 20:
		risk.RiskLevel = "High"
		risk.ConfidenceLevel = 92
	case counts.Vulnerable > 2 || expiring > 10:
		risk.RiskLevel = "Medium"
		risk.ConfidenceLevel = 78
	default:
		risk.RiskLevel = "Low"
		risk.ConfidenceLevel = 65
	}

	if expiring > 0 {
		risk.ProjectedThreats = append(risk.ProjectedThreats, dto.FutureRiskThreat{
			ID:          "expiry-wave",
			Title:       "Certificate expiry wave",
			Description: fmt.Sprintf("%d certificates expire within 30 days", expiring),
			Timeframe:   "Next 30 days",
			Icon:        "clock",
		})
	}
	if counts.Vulnerable > 0 {
		risk.ProjectedThreats = append(risk.ProjectedThreats, dto.FutureRiskThreat{
			ID:          "lint-exposure",
			Title:       "Standards violations in live certificates",
			Description: fmt.Sprintf("%d certificates carry critical lint findings", counts.Vulnerable),
			Timeframe:   "Ongoing",
			Icon:        "shield",
		})
	}

	s.cache.Set(cache.NamespaceFutureRisk, key, risk)
	return risk, nil
}

// gradeOptions is the fixed grade vocabulary, best first.
var gradeOptions = []string{"A+", "A", "A-", "B+", "B", "C", "F"}

// UniqueFilters enumerates the filter dropdown options. Issuers, domains
// and countries come from the live inventory; the rest are fixed
// vocabularies.
func (s *DashboardService) UniqueFilters(ctx context.Context) (*dto.UniqueFilters, error) {
	key := "all"
	if cached, ok := s.cache.Get(cache.NamespaceUniqueFilters, key); ok {
		if filters, ok := cached.(*dto.UniqueFilters); ok {
			return filters, nil
		}
	}

	issuers, err := s.repo.UniqueIssuers(ctx, 50)
	if err != nil {
		return nil, err
	}

	domains, err := s.repo.UniqueDomains(ctx, 100)
	if err != nil {
		return nil, err
	}

	tlds, err := s.repo.TLDBuckets(ctx, nil)
	if err != nil {
		return nil, err
	}
	countrySet := make(map[string]struct{})
	for _, b := range tlds {
		if country := insights.CountryForTLD(b.Key); country != insights.CountryUnknown {
			countrySet[country] = struct{}{}
		}
	}
	countries := make([]string, 0, len(countrySet))
	for country := range countrySet {
		countries = append(countries, country)
	}
	sort.Strings(countries)

	filters := &dto.UniqueFilters{
		Issuers:   issuers,
		Domains:   domains,
		Countries: countries,
		Statuses: []string{
			constants.StatusValid,
			constants.StatusExpiringSoon,
			constants.StatusExpired,
			constants.StatusUnknown,
		},
		Grades: gradeOptions,
		ValidationLevels: []string{
			constants.ValidationDV,
			constants.ValidationOV,
			constants.ValidationEV,
		},
	}

	s.cache.Set(cache.NamespaceUniqueFilters, key, filters)
	return filters, nil
}
