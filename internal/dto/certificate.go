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

import "ssl-guardian/src/internal/model"

// CertificateSummary is the row shape consumed by the certificate table and
// the detail drawer. Field names are part of the frontend contract.
type CertificateSummary struct {
	ID                 string                      `json:"id"`
	Domain             string                      `json:"domain"`
	Issuer             string                      `json:"issuer"`
	IssuerDN           string                      `json:"issuerDn,omitempty"`
	ValidFrom          string                      `json:"validFrom"`
	ValidTo            string                      `json:"validTo"`
	Status             string                      `json:"status"`
	Grade              string                      `json:"grade"`
	EncryptionType     string                      `json:"encryptionType"`
	KeyLength          int                         `json:"keyLength"`
	SignatureAlgorithm string                      `json:"signatureAlgorithm"`
	Vulnerabilities    string                      `json:"vulnerabilities"`
	VulnerabilityCount VulnerabilityCount          `json:"vulnerabilityCount"`
	SAN                []string                    `json:"san"`
	Country            string                      `json:"country"`
	ScanDate           string                      `json:"scanDate"`
	ValidationLevel    string                      `json:"validationLevel"`
	SelfSigned         bool                        `json:"selfSigned"`
	StrengthScore      int                         `json:"strengthScore"`
	ZlintDetails       map[string]model.LintResult `json:"zlintDetails,omitempty"`
}

// VulnerabilityCount breaks lint findings down by severity.
type VulnerabilityCount struct {
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
}

// Pagination describes one page of a partitioned result set.
// TotalPages is ceil(Total / PageSize).
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// CertificateList is the paginated list envelope.
type CertificateList struct {
	Certificates []CertificateSummary `json:"certificates"`
	Pagination   Pagination           `json:"pagination"`
}

// VulnerabilitySummary tops the vulnerability report table.
type VulnerabilitySummary struct {
	Critical int `json:"critical"`
	Warning  int `json:"warning"`
	Total    int `json:"total"`
}

// VulnerabilityReport lists certificates with lint findings.
type VulnerabilityReport struct {
	Certificates []CertificateSummary `json:"certificates"`
	Summary      VulnerabilitySummary `json:"summary"`
	Pagination   Pagination           `json:"pagination"`
}
