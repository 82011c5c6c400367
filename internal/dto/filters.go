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

// CertificateFilter is the typed form of every list/analytics query
// parameter. It doubles as the filter vocabulary chart click handlers emit,
// so table content after a chart click matches the segment clicked.
type CertificateFilter struct {
	// Row-level filters
	Status             string `json:"status,omitempty"`
	Country            string `json:"country,omitempty"`
	Issuer             string `json:"issuer,omitempty"` // "Others" selects outside the top CAs
	Search             string `json:"search,omitempty"`
	EncryptionType     string `json:"encryption_type,omitempty"` // e.g. "RSA 2048"
	HasVulnerabilities bool   `json:"has_vulnerabilities,omitempty"`
	HasFindings        bool   `json:"-"` // errors or warnings; vulnerability report only
	WeakHash           bool   `json:"weak_hash,omitempty"`
	SelfSigned         bool   `json:"self_signed,omitempty"`
	SignatureAlgorithm string `json:"signature_algorithm,omitempty"`
	HashType           string `json:"hash_type,omitempty"`
	KeySize            int    `json:"key_size,omitempty"`

	// Chart drill-down filters
	ExpiringDays   int    `json:"expiring_days,omitempty"`
	ExpiringMonth  int    `json:"expiring_month,omitempty"`
	ExpiringYear   int    `json:"expiring_year,omitempty"`
	IssuedMonth    int    `json:"issued_month,omitempty"`
	IssuedYear     int    `json:"issued_year,omitempty"`
	ValidityBucket string `json:"validity_bucket,omitempty"` // "0-90", "90-365", "365-730", "730+"

	// SAN drill-down filters
	SANTLD      string `json:"san_tld,omitempty"`
	SANCountMin int    `json:"san_count_min,omitempty"`
	SANCountMax int    `json:"san_count_max,omitempty"`

	// Global filters shared by every card and chart
	StartDate        string   `json:"start_date,omitempty"`
	EndDate          string   `json:"end_date,omitempty"`
	Countries        []string `json:"countries,omitempty"`
	Issuers          []string `json:"issuers,omitempty"`
	Statuses         []string `json:"statuses,omitempty"`
	ValidationLevels []string `json:"validation_levels,omitempty"`
}

// HasGlobalFilters reports whether any of the shared dashboard filters are
// active.
func (f *CertificateFilter) HasGlobalFilters() bool {
	return f.StartDate != "" || f.EndDate != "" ||
		len(f.Countries) > 0 || len(f.Issuers) > 0 ||
		len(f.Statuses) > 0 || len(f.ValidationLevels) > 0
}
