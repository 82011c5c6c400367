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

package constants

// Certificate status values, classified at query time from parsed.validity.end.
const (
	StatusValid        = "VALID"
	StatusExpired      = "EXPIRED"
	StatusExpiringSoon = "EXPIRING_SOON"
	StatusUnknown      = "UNKNOWN"
)

// Validation levels (certificate issuance trust tiers).
const (
	ValidationDV = "DV"
	ValidationOV = "OV"
	ValidationEV = "EV"
)

// Global health bands.
const (
	HealthSecure   = "SECURE"
	HealthAtRisk   = "AT_RISK"
	HealthCritical = "CRITICAL"
)

// Trend granularities accepted by the trend endpoints.
const (
	GranularityMonthly   = "monthly"
	GranularityWeekly    = "weekly"
	GranularityQuarterly = "quarterly"
	GranularityYearly    = "yearly"
)

// IssuerOthers is the pseudo issuer filter selecting everything outside the
// top-N certificate authorities.
const IssuerOthers = "Others"
