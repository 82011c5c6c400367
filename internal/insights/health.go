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

import "ssl-guardian/src/internal/constants"

// HealthScore derives the 0-100 global health score: the active percentage
// minus a vulnerability penalty capped at 20 points. An empty inventory
// scores zero.
func HealthScore(active, total, criticalVulnerabilities int64) int {
	if total <= 0 {
		return 0
	}
	activePct := float64(active) / float64(total) * 100
	vulnPenalty := float64(criticalVulnerabilities) / float64(total) * 100
	if vulnPenalty > 20 {
		vulnPenalty = 20
	}
	score := activePct - vulnPenalty
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return int(score)
}

// HealthStatus maps a health score onto its dashboard band.
func HealthStatus(score int) string {
	switch {
	case score >= 80:
		return constants.HealthSecure
	case score >= 50:
		return constants.HealthAtRisk
	default:
		return constants.HealthCritical
	}
}

// Percentage computes a display percentage of count against total, rounded
// to one decimal. Always computed against the full filtered total, never a
// truncated top-N sum, so exhaustive breakdowns sum to 100.
func Percentage(count, total int64) float64 {
	if total <= 0 {
		return 0
	}
	return float64(int64(float64(count)/float64(total)*1000+0.5)) / 10
}
