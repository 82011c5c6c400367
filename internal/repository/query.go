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

package repository

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"ssl-guardian/src/internal/constants"
	"ssl-guardian/src/internal/dto"
	"ssl-guardian/src/internal/insights"
	"ssl-guardian/src/internal/utils"

	"go.mongodb.org/mongo-driver/bson"
)

const (
	fieldValidityEnd    = "parsed.validity.end"
	fieldValidityStart  = "parsed.validity.start"
	fieldValidityLength = "parsed.validity.length"
	fieldIssuerOrg      = "parsed.issuer.organization"
	fieldSubjectOrg     = "parsed.subject.organization"
	fieldCommonName     = "parsed.subject.common_name"
	fieldKeyAlgorithm   = "parsed.subject_key_info.key_algorithm.name"
	fieldRSALength      = "parsed.subject_key_info.rsa_public_key.length"
	fieldECDSALength    = "parsed.subject_key_info.ecdsa_public_key.length"
	fieldSigAlgorithm   = "parsed.signature_algorithm.name"
	fieldSelfSigned     = "parsed.signature.self_signed"
	fieldNames          = "parsed.names"
	fieldPolicies       = "parsed.extensions.certificate_policies"
	fieldZlintErrors    = "zlint.errors_present"
	fieldZlintWarnings  = "zlint.warnings_present"
	fieldDomain         = "domain"
)

const secondsPerDay = 86400

// weakHashPattern matches MD5 and SHA-1 signature algorithm names without
// catching SHA-1xx style names. The store mixes dashed and undashed forms.
const weakHashPattern = `MD5|SHA-?1(?![0-9])`

// hashTypePatterns maps the hash_type filter vocabulary to signature
// algorithm name patterns.
var hashTypePatterns = map[string]string{
	"SHA-256": `SHA-?256`,
	"SHA-384": `SHA-?384`,
	"SHA-512": `SHA-?512`,
	"SHA-1":   `SHA-?1(?![0-9])`,
	"MD5":     `MD5`,
}

// validityBucketBounds maps the validity_bucket filter vocabulary to lifetime
// bounds in days. A max of 0 means unbounded.
var validityBucketBounds = map[string][2]int{
	"0-90":    {0, 90},
	"90-365":  {90, 365},
	"365-730": {365, 730},
	"730+":    {730, 0},
}

func ciRegex(pattern string) bson.M {
	return bson.M{"$regex": pattern, "$options": "i"}
}

func ciExact(value string) bson.M {
	return ciRegex("^" + regexp.QuoteMeta(value) + "$")
}

// statusClause returns the match clause selecting certificates in the given
// lifecycle state at instant now. Validity ends are ISO strings, so the
// comparisons are lexicographic.
func statusClause(status string, now time.Time, window time.Duration) bson.M {
	nowISO := utils.FormatISO(now)
	horizonISO := utils.FormatISO(now.Add(window))
	switch status {
	case constants.StatusExpired:
		return bson.M{fieldValidityEnd: bson.M{"$gt": "", "$lte": nowISO}}
	case constants.StatusExpiringSoon:
		return bson.M{fieldValidityEnd: bson.M{"$gt": nowISO, "$lte": horizonISO}}
	case constants.StatusValid:
		return bson.M{fieldValidityEnd: bson.M{"$gt": horizonISO}}
	case constants.StatusUnknown:
		return bson.M{"$or": []bson.M{
			{fieldValidityEnd: bson.M{"$exists": false}},
			{fieldValidityEnd: ""},
		}}
	}
	return bson.M{}
}

// statusActiveClause selects unexpired certificates: valid plus expiring
// soon.
func statusActiveClause(now time.Time) bson.M {
	return bson.M{fieldValidityEnd: bson.M{"$gt": utils.FormatISO(now)}}
}

// expiryRangeClause selects validity ends inside (start, end] or, with
// closedStart, [start, end].
func expiryRangeClause(start, end time.Time, closedStart bool) bson.M {
	clause := bson.M{"$lte": utils.FormatISO(end)}
	if closedStart {
		clause["$gte"] = utils.FormatISO(start)
	} else {
		clause["$gt"] = utils.FormatISO(start)
	}
	return bson.M{fieldValidityEnd: clause}
}

// issuedRangeClause selects validity starts inside [start, end].
func issuedRangeClause(start, end time.Time) bson.M {
	return bson.M{fieldValidityStart: bson.M{
		"$gte": utils.FormatISO(start),
		"$lte": utils.FormatISO(end),
	}}
}

// countryClause matches domains whose TLD maps to the given country. Unknown
// countries match nothing rather than everything.
func countryClause(country string) bson.M {
	tlds := insights.TLDsForCountry(country)
	if len(tlds) == 0 {
		return bson.M{fieldDomain: bson.M{"$in": []string{}}}
	}
	escaped := make([]string, len(tlds))
	for i, tld := range tlds {
		escaped[i] = regexp.QuoteMeta(tld)
	}
	return bson.M{fieldDomain: ciRegex(`\.(` + strings.Join(escaped, "|") + `)$`)}
}

// validationLevelClause approximates a validation-level match in the store.
// EV and DV rely on the policy table; OV additionally accepts a populated
// subject organization, mirroring the fallback applied at read time.
func validationLevelClause(level string) bson.M {
	evPolicies := insights.PoliciesForLevel(constants.ValidationEV)
	switch level {
	case constants.ValidationEV:
		return bson.M{fieldPolicies: bson.M{"$in": evPolicies}}
	case constants.ValidationOV:
		return bson.M{"$and": []bson.M{
			{fieldPolicies: bson.M{"$nin": evPolicies}},
			{"$or": []bson.M{
				{fieldPolicies: bson.M{"$in": insights.PoliciesForLevel(constants.ValidationOV)}},
				{fieldSubjectOrg + ".0": bson.M{"$exists": true}},
			}},
		}}
	case constants.ValidationDV:
		return bson.M{"$and": []bson.M{
			{fieldPolicies: bson.M{"$nin": append(evPolicies, insights.PoliciesForLevel(constants.ValidationOV)...)}},
			{fieldSubjectOrg + ".0": bson.M{"$exists": false}},
		}}
	}
	return bson.M{}
}

// encryptionTypeClause matches an encryption type label such as "RSA" or
// "RSA 2048": the algorithm name, plus the key length when present.
func encryptionTypeClause(encType string) []bson.M {
	parts := strings.Fields(encType)
	if len(parts) == 0 {
		return nil
	}
	clauses := []bson.M{{fieldKeyAlgorithm: ciExact(parts[0])}}
	if len(parts) < 2 {
		return clauses
	}
	var size int
	if _, err := fmt.Sscanf(parts[1], "%d", &size); err != nil || size <= 0 {
		return clauses
	}
	clauses = append(clauses, keySizeClause(size))
	return clauses
}

func keySizeClause(size int) bson.M {
	return bson.M{"$or": []bson.M{
		{fieldRSALength: size},
		{fieldECDSALength: size},
	}}
}

// BuildQuery reduces a filter set to a store match document. now anchors
// every time-relative clause so one request's clauses agree with each other;
// window is the expiring-soon horizon. topCAs is the current top-CA list,
// needed only when the issuer filter selects the "Others" slice.
func BuildQuery(f *dto.CertificateFilter, now time.Time, window time.Duration, topCAs []string) bson.M {
	var clauses []bson.M

	if f == nil {
		return bson.M{}
	}

	if f.Search != "" {
		pattern := regexp.QuoteMeta(f.Search)
		clauses = append(clauses, bson.M{"$or": []bson.M{
			{fieldDomain: ciRegex(pattern)},
			{fieldCommonName: ciRegex(pattern)},
		}})
	}

	if f.Status != "" {
		if c := statusClause(strings.ToUpper(f.Status), now, window); len(c) > 0 {
			clauses = append(clauses, c)
		}
	}

	if f.Country != "" {
		clauses = append(clauses, countryClause(f.Country))
	}

	if f.Issuer != "" {
		if f.Issuer == constants.IssuerOthers {
			clauses = append(clauses, bson.M{fieldIssuerOrg: bson.M{"$nin": topCAs}})
		} else {
			clauses = append(clauses, bson.M{fieldIssuerOrg: ciExact(f.Issuer)})
		}
	}

	if f.EncryptionType != "" {
		clauses = append(clauses, encryptionTypeClause(f.EncryptionType)...)
	}

	if f.HasVulnerabilities {
		clauses = append(clauses, bson.M{fieldZlintErrors: true})
	}

	if f.HasFindings {
		clauses = append(clauses, bson.M{"$or": []bson.M{
			{fieldZlintErrors: true},
			{fieldZlintWarnings: true},
		}})
	}

	if f.WeakHash {
		clauses = append(clauses, bson.M{fieldSigAlgorithm: ciRegex(weakHashPattern)})
	}

	if f.SelfSigned {
		clauses = append(clauses, bson.M{fieldSelfSigned: true})
	}

	if f.SignatureAlgorithm != "" {
		clauses = append(clauses, bson.M{fieldSigAlgorithm: ciExact(f.SignatureAlgorithm)})
	}

	if f.HashType != "" {
		if pattern, ok := hashTypePatterns[strings.ToUpper(f.HashType)]; ok {
			clauses = append(clauses, bson.M{fieldSigAlgorithm: ciRegex(pattern)})
		}
	}

	if f.KeySize > 0 {
		clauses = append(clauses, keySizeClause(f.KeySize))
	}

	if f.ExpiringDays > 0 {
		target := now.AddDate(0, 0, f.ExpiringDays)
		clauses = append(clauses, bson.M{fieldValidityEnd: bson.M{
			"$gt":  utils.FormatISO(now),
			"$lte": utils.FormatISO(target),
		}})
	}

	if f.ExpiringYear > 0 && f.ExpiringMonth >= 1 && f.ExpiringMonth <= 12 {
		start, end := utils.MonthBounds(f.ExpiringYear, f.ExpiringMonth)
		clauses = append(clauses, bson.M{fieldValidityEnd: bson.M{
			"$gte": utils.FormatISO(start),
			"$lte": utils.FormatISO(end),
		}})
	}

	if f.IssuedYear > 0 && f.IssuedMonth >= 1 && f.IssuedMonth <= 12 {
		start, end := utils.MonthBounds(f.IssuedYear, f.IssuedMonth)
		clauses = append(clauses, bson.M{fieldValidityStart: bson.M{
			"$gte": utils.FormatISO(start),
			"$lte": utils.FormatISO(end),
		}})
	}

	if f.ValidityBucket != "" {
		if bounds, ok := validityBucketBounds[f.ValidityBucket]; ok {
			length := bson.M{"$gte": bounds[0] * secondsPerDay}
			if bounds[1] > 0 {
				length["$lt"] = bounds[1] * secondsPerDay
			}
			clauses = append(clauses, bson.M{fieldValidityLength: length})
		}
	}

	if f.SANTLD != "" {
		clauses = append(clauses, bson.M{fieldNames: ciRegex(`\.` + regexp.QuoteMeta(f.SANTLD) + `$`)})
	}

	if f.SANCountMin > 0 || f.SANCountMax > 0 {
		sanCount := bson.M{"$size": bson.M{"$ifNull": bson.A{"$" + fieldNames, bson.A{}}}}
		var exprs []bson.M
		if f.SANCountMin > 0 {
			exprs = append(exprs, bson.M{"$gte": bson.A{sanCount, f.SANCountMin}})
		}
		if f.SANCountMax > 0 {
			exprs = append(exprs, bson.M{"$lte": bson.A{sanCount, f.SANCountMax}})
		}
		clauses = append(clauses, bson.M{"$expr": bson.M{"$and": exprs}})
	}

	clauses = append(clauses, globalClauses(f, now, window)...)

	switch len(clauses) {
	case 0:
		return bson.M{}
	case 1:
		return clauses[0]
	default:
		return bson.M{"$and": clauses}
	}
}

// globalClauses builds the shared dashboard filter clauses. These combine
// with row-level filters so a chart click inside a filtered dashboard stays
// inside it.
func globalClauses(f *dto.CertificateFilter, now time.Time, window time.Duration) []bson.M {
	var clauses []bson.M

	if f.StartDate != "" || f.EndDate != "" {
		rangeClause := bson.M{}
		if f.StartDate != "" {
			rangeClause["$gte"] = f.StartDate
		}
		if f.EndDate != "" {
			rangeClause["$lte"] = f.EndDate
		}
		clauses = append(clauses, bson.M{fieldValidityEnd: rangeClause})
	}

	if len(f.Countries) > 0 {
		ors := make([]bson.M, 0, len(f.Countries))
		for _, country := range f.Countries {
			ors = append(ors, countryClause(country))
		}
		clauses = append(clauses, bson.M{"$or": ors})
	}

	if len(f.Issuers) > 0 {
		ors := make([]bson.M, 0, len(f.Issuers))
		for _, issuer := range f.Issuers {
			ors = append(ors, bson.M{fieldIssuerOrg: ciExact(issuer)})
		}
		clauses = append(clauses, bson.M{"$or": ors})
	}

	if len(f.Statuses) > 0 {
		ors := make([]bson.M, 0, len(f.Statuses))
		for _, status := range f.Statuses {
			if c := statusClause(strings.ToUpper(status), now, window); len(c) > 0 {
				ors = append(ors, c)
			}
		}
		if len(ors) > 0 {
			clauses = append(clauses, bson.M{"$or": ors})
		}
	}

	if len(f.ValidationLevels) > 0 {
		ors := make([]bson.M, 0, len(f.ValidationLevels))
		for _, level := range f.ValidationLevels {
			if c := validationLevelClause(strings.ToUpper(level)); len(c) > 0 {
				ors = append(ors, c)
			}
		}
		if len(ors) > 0 {
			clauses = append(clauses, bson.M{"$or": ors})
		}
	}

	return clauses
}
