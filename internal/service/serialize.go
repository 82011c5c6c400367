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
	"fmt"
	"time"

	"ssl-guardian/src/internal/dto"
	"ssl-guardian/src/internal/insights"
	"ssl-guardian/src/internal/model"
	"ssl-guardian/src/internal/utils"
)

// encryptionTypeName renders the key description shown in the table, e.g.
// "RSA 2048" or just "ECDSA" when the length is unknown.
func encryptionTypeName(algorithm string, bits int) string {
	if bits <= 0 {
		return algorithm
	}
	return fmt.Sprintf("%s %d", algorithm, bits)
}

// toSummary flattens one store document into the table row shape. now and
// window anchor the status classification so every row in a response agrees
// on what counts as expiring.
func toSummary(cert *model.Certificate, now time.Time, window time.Duration) dto.CertificateSummary {
	errors, warnings := insights.CountLintFindings(cert.Zlint)
	domain := cert.DomainName()

	scanDate := ""
	if !cert.ID.IsZero() {
		scanDate = utils.FormatISO(cert.ID.Timestamp().UTC())
	}

	return dto.CertificateSummary{
		ID:                 cert.ID.Hex(),
		Domain:             domain,
		Issuer:             cert.IssuerOrganization(),
		IssuerDN:           cert.Parsed.IssuerDN,
		ValidFrom:          cert.Parsed.Validity.Start,
		ValidTo:            cert.Parsed.Validity.End,
		Status:             insights.Status(cert.Parsed.Validity.End, now, window),
		Grade:              insights.GradeFromLints(cert.Zlint),
		EncryptionType:     encryptionTypeName(cert.KeyAlgorithmName(), cert.KeyLength()),
		KeyLength:          cert.KeyLength(),
		SignatureAlgorithm: cert.SignatureAlgorithmName(),
		Vulnerabilities:    insights.FormatFindings(cert.Zlint),
		VulnerabilityCount: dto.VulnerabilityCount{Errors: errors, Warnings: warnings},
		SAN:                sanList(cert.Parsed.Names),
		Country:            insights.CountryForDomain(domain),
		ScanDate:           scanDate,
		ValidationLevel:    insights.ValidationLevel(cert.Parsed.Extensions.CertificatePolicies, cert.HasSubjectOrganization()),
		SelfSigned:         cert.Parsed.Signature.SelfSigned,
		StrengthScore:      insights.StrengthScore(cert.KeyAlgorithmName(), cert.KeyLength(), cert.SignatureAlgorithmName()),
	}
}

// toDetail is toSummary plus the failing lint checks, for the detail drawer.
func toDetail(cert *model.Certificate, now time.Time, window time.Duration) dto.CertificateSummary {
	summary := toSummary(cert, now, window)
	if len(cert.Zlint.Lints) == 0 {
		return summary
	}
	details := make(map[string]model.LintResult)
	for name, lint := range cert.Zlint.Lints {
		switch lint.Result {
		case "error", "warn", "warning", "fatal":
			details[name] = lint
		}
	}
	if len(details) > 0 {
		summary.ZlintDetails = details
	}
	return summary
}

func sanList(names []string) []string {
	if names == nil {
		return []string{}
	}
	return names
}
