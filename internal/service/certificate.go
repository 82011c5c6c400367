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

// Package service computes the dashboard payloads from repository
// aggregates. Heavy results are cached per namespace; every method returns
// fully-shaped DTOs so handlers only translate parameters and render JSON.
package service

import (
	"context"
	"fmt"
	"time"

	"ssl-guardian/src/config"
	"ssl-guardian/src/internal/cache"
	"ssl-guardian/src/internal/dto"
	"ssl-guardian/src/internal/repository"
)

// cacheKey renders a deterministic key from the filter plus extras such as
// page numbers.
func cacheKey(f *dto.CertificateFilter, extra ...any) string {
	key := "all"
	if f != nil {
		key = fmt.Sprintf("%+v", *f)
	}
	for _, e := range extra {
		key += fmt.Sprintf("|%v", e)
	}
	return key
}

// CertificateService serves the certificate table and detail drawer.
type CertificateService struct {
	repo  repository.CertificateRepository
	cache *cache.ResultCache
	cfg   *config.Server
	now   func() time.Time
}

// NewCertificateService creates a new certificate service.
func NewCertificateService(repo repository.CertificateRepository, rc *cache.ResultCache, cfg *config.Server) *CertificateService {
	return &CertificateService{repo: repo, cache: rc, cfg: cfg, now: time.Now}
}

func (s *CertificateService) window() time.Duration {
	return time.Duration(s.cfg.Dashboard.ExpiringSoonDays) * 24 * time.Hour
}

func (s *CertificateService) clampPage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = s.cfg.Dashboard.DefaultPageSize
	}
	if pageSize > s.cfg.Dashboard.MaxPageSize {
		pageSize = s.cfg.Dashboard.MaxPageSize
	}
	return page, pageSize
}

func paginate(page, pageSize int, total int64) dto.Pagination {
	totalPages := 0
	if total > 0 {
		totalPages = int((total + int64(pageSize) - 1) / int64(pageSize))
	}
	return dto.Pagination{Page: page, PageSize: pageSize, Total: total, TotalPages: totalPages}
}

// List returns one page of the certificate table. The first page of the
// unfiltered table is the dashboard's landing query, so it caches in its own
// longer-lived namespace.
func (s *CertificateService) List(ctx context.Context, f *dto.CertificateFilter, page, pageSize int) (*dto.CertificateList, error) {
	page, pageSize = s.clampPage(page, pageSize)

	namespace := cache.NamespaceCertificates
	if page == 1 && (f == nil || cacheKey(f) == cacheKey(&dto.CertificateFilter{})) {
		namespace = cache.NamespaceCertificatesPage1
	}
	key := cacheKey(f, page, pageSize)
	if cached, ok := s.cache.Get(namespace, key); ok {
		if list, ok := cached.(*dto.CertificateList); ok {
			return list, nil
		}
	}

	certs, total, err := s.repo.List(ctx, f, page, pageSize)
	if err != nil {
		return nil, err
	}

	now := s.now()
	window := s.window()
	summaries := make([]dto.CertificateSummary, 0, len(certs))
	for i := range certs {
		summaries = append(summaries, toSummary(&certs[i], now, window))
	}

	list := &dto.CertificateList{
		Certificates: summaries,
		Pagination:   paginate(page, pageSize, total),
	}
	s.cache.Set(namespace, key, list)
	return list, nil
}

// GetByID returns one certificate with its failing lint checks. Never
// cached: the detail drawer is where operators expect fresh data.
func (s *CertificateService) GetByID(ctx context.Context, id string) (*dto.CertificateSummary, error) {
	cert, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	detail := toDetail(cert, s.now(), s.window())
	return &detail, nil
}

// Vulnerabilities lists certificates carrying lint findings, with a
// severity summary over the whole filtered set.
func (s *CertificateService) Vulnerabilities(ctx context.Context, f *dto.CertificateFilter, page, pageSize int) (*dto.VulnerabilityReport, error) {
	page, pageSize = s.clampPage(page, pageSize)

	flagged := dto.CertificateFilter{}
	if f != nil {
		flagged = *f
	}
	flagged.HasFindings = true

	certs, total, err := s.repo.List(ctx, &flagged, page, pageSize)
	if err != nil {
		return nil, err
	}

	critical := flagged
	critical.HasFindings = false
	critical.HasVulnerabilities = true
	criticalCount, err := s.repo.Count(ctx, &critical)
	if err != nil {
		return nil, err
	}

	now := s.now()
	window := s.window()
	summaries := make([]dto.CertificateSummary, 0, len(certs))
	for i := range certs {
		summaries = append(summaries, toSummary(&certs[i], now, window))
	}

	return &dto.VulnerabilityReport{
		Certificates: summaries,
		Summary: dto.VulnerabilitySummary{
			Critical: int(criticalCount),
			Warning:  int(total - criticalCount),
			Total:    int(total),
		},
		Pagination: paginate(page, pageSize, total),
	}, nil
}
