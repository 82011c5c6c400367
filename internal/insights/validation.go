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

package insights

import (
	"sort"
	"strings"

	"ssl-guardian/src/internal/constants"
)

// policyLevels maps certificate-policy identifiers to validation levels.
// This is an explicit lookup table, not an inference: extend it with further
// OIDs as scanners surface them. The CA/Browser Forum reserved arcs come
// first, followed by the major commercial CAs' EV arcs and the descriptive
// policy names some scanner versions emit instead of OIDs.
var policyLevels = map[string]string{
	// CA/Browser Forum reserved policy identifiers
	"2.23.140.1.1":   constants.ValidationEV,
	"2.23.140.1.2.1": constants.ValidationDV,
	"2.23.140.1.2.2": constants.ValidationOV,
	"2.23.140.1.2.3": constants.ValidationOV, // individual-validated

	// Vendor EV arcs
	"2.16.840.1.114412.2.1":        constants.ValidationEV, // DigiCert
	"1.3.6.1.4.1.6449.1.2.1.5.1":   constants.ValidationEV, // Sectigo/Comodo
	"2.16.840.1.114414.1.7.23.3":   constants.ValidationEV, // Starfield
	"2.16.756.1.89.1.2.1.1":        constants.ValidationEV, // SwissSign
	"1.3.6.1.4.1.34697.2.1":        constants.ValidationEV, // AffirmTrust
	"2.16.840.1.114028.10.1.2":     constants.ValidationEV, // Entrust
	"1.3.6.1.4.1.14370.1.6":        constants.ValidationEV, // GeoTrust
	"1.3.6.1.4.1.4146.1.1":         constants.ValidationEV, // GlobalSign
	"2.16.840.1.113733.1.7.48.1":   constants.ValidationEV, // Thawte
	"2.16.840.1.113733.1.7.23.6":   constants.ValidationEV, // VeriSign/Symantec

	// Descriptive names seen in scanner output
	"extended-validation":     constants.ValidationEV,
	"ev-ssl":                  constants.ValidationEV,
	"organization-validation": constants.ValidationOV,
	"ov-ssl":                  constants.ValidationOV,
	"domain-validation":       constants.ValidationDV,
	"dv-ssl":                  constants.ValidationDV,
}

// PoliciesForLevel returns every known policy identifier that maps to the
// given validation level, in stable order. Query builders use it to push
// level filtering into the store.
func PoliciesForLevel(level string) []string {
	policies := make([]string, 0, len(policyLevels))
	for policy, mapped := range policyLevels {
		if mapped == level {
			policies = append(policies, policy)
		}
	}
	sort.Strings(policies)
	return policies
}

// ValidationLevel resolves a certificate's issuance trust tier from its
// policy identifiers. EV wins over OV; with no recognized policy, a subject
// organization reads as OV and everything else as DV.
func ValidationLevel(certificatePolicies []string, hasSubjectOrganization bool) string {
	level := ""
	for _, policy := range certificatePolicies {
		mapped, ok := policyLevels[strings.ToLower(strings.TrimSpace(policy))]
		if !ok {
			continue
		}
		if mapped == constants.ValidationEV {
			return constants.ValidationEV
		}
		if level == "" || mapped == constants.ValidationOV {
			level = mapped
		}
	}
	if level != "" {
		return level
	}
	if hasSubjectOrganization {
		return constants.ValidationOV
	}
	return constants.ValidationDV
}
