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

// SANStats aggregates the subject-alternative-name page cards.
type SANStats struct {
	TotalCertificates  int64   `json:"totalCertificates"`
	AverageSANCount    float64 `json:"averageSanCount"`
	MaxSANCount        int64   `json:"maxSanCount"`
	SingleDomainCount  int64   `json:"singleDomainCount"`
	WildcardCount      int64   `json:"wildcardCount"`
	WildcardPercentage float64 `json:"wildcardPercentage"`
}

// SANBucket is one SAN-count range of the distribution chart.
type SANBucket struct {
	Range      string  `json:"range"`
	Count      int64   `json:"count"`
	Percentage float64 `json:"percentage"`
	Color      string  `json:"color"`
}

// SANTLDEntry is one TLD of the SAN TLD breakdown.
type SANTLDEntry struct {
	TLD        string  `json:"tld"`
	Count      int64   `json:"count"`
	Percentage float64 `json:"percentage"`
	Color      string  `json:"color"`
}

// SANWildcardEntry is one slice of the wildcard-versus-regular breakdown.
type SANWildcardEntry struct {
	Name       string  `json:"name"`
	Count      int64   `json:"count"`
	Percentage float64 `json:"percentage"`
	Color      string  `json:"color"`
}

// SANWildcardBreakdown pairs the wildcard split with the CAs issuing the
// most wildcard certificates.
type SANWildcardBreakdown struct {
	Distribution       []SANWildcardEntry `json:"distribution"`
	TopWildcardIssuers []SANWildcardEntry `json:"topWildcardIssuers"`
}
