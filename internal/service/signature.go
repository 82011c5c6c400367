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
	"time"

	"ssl-guardian/src/config"
	"ssl-guardian/src/internal/cache"
	"ssl-guardian/src/internal/constants"
	"ssl-guardian/src/internal/dto"
	"ssl-guardian/src/internal/insights"
	"ssl-guardian/src/internal/repository"
)

// SignatureService serves the signatures-and-hashes page.
type SignatureService struct {
	repo  repository.CertificateRepository
	cache *cache.ResultCache
	cfg   *config.Server
	now   func() time.Time
}

// NewSignatureService creates a new signature service.
func NewSignatureService(repo repository.CertificateRepository, rc *cache.ResultCache, cfg *config.Server) *SignatureService {
	return &SignatureService{repo: repo, cache: rc, cfg: cfg, now: time.Now}
}

// Stats aggregates the signature page cards: algorithm, hash family and key
// size distributions plus the weak-digest compliance rate and the mean
// strength score.
func (s *SignatureService) Stats(ctx context.Context, f *dto.CertificateFilter) (*dto.SignatureStats, error) {
	key := cacheKey(f)
	if cached, ok := s.cache.Get(cache.NamespaceSignatureStats, key); ok {
		if stats, ok := cached.(*dto.SignatureStats); ok {
			return stats, nil
		}
	}

	algBuckets, err := s.repo.SignatureAlgorithmBuckets(ctx, f)
	if err != nil {
		return nil, err
	}

	var total, weakCount int64
	hashCounts := make(map[string]int64)
	for _, b := range algBuckets {
		total += b.Count
		hashCounts[insights.HashType(b.Key)] += b.Count
		if insights.IsWeakHash(b.Key) {
			weakCount += b.Count
		}
	}

	limit := s.cfg.Dashboard.TopLimit
	topAlgs := algBuckets
	if len(topAlgs) > limit {
		topAlgs = topAlgs[:limit]
	}
	algorithms := make([]dto.AlgorithmSlice, 0, len(topAlgs))
	for _, b := range topAlgs {
		algorithms = append(algorithms, dto.AlgorithmSlice{
			Name:       b.Key,
			Count:      b.Count,
			Percentage: insights.Percentage(b.Count, total),
			Weak:       insights.IsWeakHash(b.Key),
			Color:      hashColor(insights.HashType(b.Key)),
		})
	}

	hashNames := make([]string, 0, len(hashCounts))
	for name := range hashCounts {
		hashNames = append(hashNames, name)
	}
	sort.Slice(hashNames, func(i, j int) bool {
		if hashCounts[hashNames[i]] != hashCounts[hashNames[j]] {
			return hashCounts[hashNames[i]] > hashCounts[hashNames[j]]
		}
		return hashNames[i] < hashNames[j]
	})
	hashes := make([]dto.AlgorithmSlice, 0, len(hashNames))
	for _, name := range hashNames {
		hashes = append(hashes, dto.AlgorithmSlice{
			Name:       name,
			Count:      hashCounts[name],
			Percentage: insights.Percentage(hashCounts[name], total),
			Weak:       name == insights.HashSHA1 || name == insights.HashMD5,
			Color:      hashColor(name),
		})
	}

	keyBuckets, err := s.repo.KeySizeBuckets(ctx, f)
	if err != nil {
		return nil, err
	}
	topKeys := keyBuckets
	if len(topKeys) > limit {
		topKeys = topKeys[:limit]
	}
	keySizes := make([]dto.KeySizeSlice, 0, len(topKeys))
	for _, b := range topKeys {
		keySizes = append(keySizes, dto.KeySizeSlice{
			Name:       encryptionTypeName(b.Algorithm, b.Length),
			Count:      b.Count,
			Percentage: insights.Percentage(b.Count, total),
			Color:      encryptionColor(b.Algorithm),
		})
	}

	strengthBuckets, err := s.repo.StrengthBuckets(ctx, f)
	if err != nil {
		return nil, err
	}
	var weightedScore float64
	var scored int64
	for _, b := range strengthBuckets {
		weightedScore += float64(b.Count) * float64(insights.StrengthScore(b.KeyAlgorithm, b.KeyLength, b.SignatureAlgorithm))
		scored += b.Count
	}
	averageScore := 0
	if scored > 0 {
		averageScore = int(math.Round(weightedScore / float64(scored)))
	}

	selfSigned, err := s.repo.SelfSignedCount(ctx, f)
	if err != nil {
		return nil, err
	}

	stats := &dto.SignatureStats{
		TotalCertificates:     total,
		AlgorithmDistribution: algorithms,
		HashDistribution:      hashes,
		KeySizeDistribution:   keySizes,
		WeakHashCount:         weakCount,
		ComplianceRate:        insights.Percentage(total-weakCount, total),
		AverageStrengthScore:  averageScore,
		SelfSignedCount:       selfSigned,
	}

	s.cache.Set(cache.NamespaceSignatureStats, key, stats)
	return stats, nil
}

// HashTrends returns hash-family adoption per issuance period. Quarterly by
// default; yearly folds the quarters together.
func (s *SignatureService) HashTrends(ctx context.Context, f *dto.CertificateFilter, granularity string) (*dto.HashTrends, error) {
	if granularity == "" {
		granularity = constants.GranularityQuarterly
	}
	if granularity != constants.GranularityQuarterly && granularity != constants.GranularityYearly {
		return nil, fmt.Errorf("%w: unsupported granularity %q", constants.ErrInvalidParameter, granularity)
	}

	key := cacheKey(f, granularity)
	if cached, ok := s.cache.Get(cache.NamespaceHashTrends, key); ok {
		if trends, ok := cached.(*dto.HashTrends); ok {
			return trends, nil
		}
	}

	buckets, err := s.repo.HashTrendBuckets(ctx, f)
	if err != nil {
		return nil, err
	}

	type periodKey struct {
		year    int
		quarter int
	}
	counts := make(map[periodKey]map[string]int64)
	for _, b := range buckets {
		pk := periodKey{year: b.Year, quarter: b.Quarter}
		if granularity == constants.GranularityYearly {
			pk.quarter = 0
		}
		if counts[pk] == nil {
			counts[pk] = make(map[string]int64)
		}
		counts[pk][insights.HashType(b.Algorithm)] += b.Count
	}

	keys := make([]periodKey, 0, len(counts))
	for pk := range counts {
		keys = append(keys, pk)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].quarter < keys[j].quarter
	})

	periods := make([]dto.HashTrendPoint, 0, len(keys))
	for _, pk := range keys {
		var total, weak int64
		for hash, count := range counts[pk] {
			total += count
			if hash == insights.HashSHA1 || hash == insights.HashMD5 {
				weak += count
			}
		}
		label := fmt.Sprintf("%d", pk.year)
		if pk.quarter > 0 {
			label = fmt.Sprintf("%d Q%d", pk.year, pk.quarter)
		}
		periods = append(periods, dto.HashTrendPoint{
			Period:         label,
			Year:           pk.year,
			Counts:         counts[pk],
			Total:          total,
			WeakPercentage: insights.Percentage(weak, total),
		})
	}

	trends := &dto.HashTrends{Granularity: granularity, Periods: periods}
	s.cache.Set(cache.NamespaceHashTrends, key, trends)
	return trends, nil
}

// IssuerAlgorithmMatrix returns the CA-versus-signature-algorithm heatmap
// over the top issuers.
func (s *SignatureService) IssuerAlgorithmMatrix(ctx context.Context, f *dto.CertificateFilter) (*dto.IssuerAlgorithmMatrix, error) {
	key := cacheKey(f)
	if cached, ok := s.cache.Get(cache.NamespaceIssuerMatrix, key); ok {
		if matrix, ok := cached.(*dto.IssuerAlgorithmMatrix); ok {
			return matrix, nil
		}
	}

	cells, err := s.repo.IssuerAlgorithmMatrix(ctx, f, s.cfg.Dashboard.TopLimit)
	if err != nil {
		return nil, err
	}

	issuerTotals := make(map[string]int64)
	algorithmTotals := make(map[string]int64)
	for _, cell := range cells {
		issuerTotals[cell.Issuer] += cell.Count
		algorithmTotals[cell.Algorithm] += cell.Count
	}

	rank := func(totals map[string]int64) []string {
		names := make([]string, 0, len(totals))
		for name := range totals {
			names = append(names, name)
		}
		sort.Slice(names, func(i, j int) bool {
			if totals[names[i]] != totals[names[j]] {
				return totals[names[i]] > totals[names[j]]
			}
			return names[i] < names[j]
		})
		return names
	}

	matrix := &dto.IssuerAlgorithmMatrix{
		Issuers:    rank(issuerTotals),
		Algorithms: rank(algorithmTotals),
		Cells:      make([]dto.MatrixCell, 0, len(cells)),
	}
	for _, cell := range cells {
		matrix.Cells = append(matrix.Cells, dto.MatrixCell{
			Issuer:    cell.Issuer,
			Algorithm: cell.Algorithm,
			Count:     cell.Count,
		})
	}

	s.cache.Set(cache.NamespaceIssuerMatrix, key, matrix)
	return matrix, nil
}
