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

package dto

// EncryptionSlice is one entry of the encryption-strength distribution.
// Percentage is computed against the full filtered total.
type EncryptionSlice struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"` // e.g. "RSA 2048"
	Type       string  `json:"type"` // Standard / Modern / Deprecated
	Count      int64   `json:"count"`
	Percentage float64 `json:"percentage"`
	Color      string  `json:"color"`
}

// CASlice is one entry of the certificate-authority leaderboard. The final
// entry may be the aggregated "Others" bucket closing the gap to 100%.
type CASlice struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Count      int64   `json:"count"`
	MaxCount   int64   `json:"maxCount"`
	Percentage float64 `json:"percentage"`
	Color      string  `json:"color"`
	IsOthers   bool    `json:"isOthers,omitempty"`
}

// GeoSlice is one entry of the geographic distribution. Countries derive
// from domain TLDs and are a best-effort heuristic, not geolocation.
type GeoSlice struct {
	ID         string  `json:"id"`
	Country    string  `json:"country"`
	Count      int64   `json:"count"`
	MaxCount   int64   `json:"maxCount"`
	Percentage float64 `json:"percentage"`
	Color      string  `json:"color"`
}

// TrendPoint is one calendar bucket of the expiration trend chart. The
// month key also carries the weekly label when granularity is weekly.
type TrendPoint struct {
	Month       string `json:"month"`
	Expirations int64  `json:"expirations"`
	Year        int    `json:"year"`
	MonthNum    int    `json:"monthNum"`
	WeekNum     int    `json:"weekNum,omitempty"`
	WeekStart   string `json:"weekStart,omitempty"`
	WeekEnd     string `json:"weekEnd,omitempty"`
	IsCurrent   bool   `json:"isCurrent"`
	Granularity string `json:"granularity"`
}

// ValidityStats aggregates certificate-lifetime statistics.
type ValidityStats struct {
	AverageValidityDays  int     `json:"averageValidityDays"`
	ShortestValidityDays int     `json:"shortestValidityDays"`
	LongestValidityDays  int     `json:"longestValidityDays"`
	Expiring30Days       int64   `json:"expiring30Days"`
	Expiring60Days       int64   `json:"expiring60Days"`
	Expiring90Days       int64   `json:"expiring90Days"`
	ComplianceRate       float64 `json:"complianceRate"` // % with validity <= 398 days
	TotalCertificates    int64   `json:"totalCertificates"`
}

// ValidityBucket is one lifetime-duration bucket of the validity
// distribution chart.
type ValidityBucket struct {
	Range      string  `json:"range"`
	Count      int64   `json:"count"`
	Percentage float64 `json:"percentage"`
	Color      string  `json:"color"`
}

// TimelinePoint is one month of the issuance/expiration timeline.
type TimelinePoint struct {
	Month    string `json:"month"`
	Year     int    `json:"year"`
	MonthNum int    `json:"monthNum"`
	Issued   int64  `json:"issued"`
	Expiring int64  `json:"expiring"`
}
