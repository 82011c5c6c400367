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

// GlobalHealth is the headline score card.
type GlobalHealth struct {
	Score       int    `json:"score"`
	MaxScore    int    `json:"maxScore"`
	Status      string `json:"status"`
	LastUpdated string `json:"lastUpdated"`
}

// ActiveCertificates is the active-count card.
type ActiveCertificates struct {
	Count int64 `json:"count"`
	Total int64 `json:"total"`
}

// ExpiringSoon is the expiring-window card.
type ExpiringSoon struct {
	Count         int64 `json:"count"`
	DaysThreshold int   `json:"daysThreshold"`
	ActionNeeded  bool  `json:"actionNeeded"`
}

// CriticalVulnerabilities is the lint-error card.
type CriticalVulnerabilities struct {
	Count int64 `json:"count"`
	New   int64 `json:"new"`
}

// ExpiredCertificates is the expired-count card.
type ExpiredCertificates struct {
	Count int64 `json:"count"`
}

// GlobalHealthResponse aggregates the dashboard's top-line cards.
type GlobalHealthResponse struct {
	GlobalHealth            GlobalHealth            `json:"globalHealth"`
	ActiveCertificates      ActiveCertificates      `json:"activeCertificates"`
	ExpiringSoon            ExpiringSoon            `json:"expiringSoon"`
	CriticalVulnerabilities CriticalVulnerabilities `json:"criticalVulnerabilities"`
	ExpiredCertificates     ExpiredCertificates     `json:"expiredCertificates"`
}

// FutureRiskThreat is one projected-threat row on the risk card.
type FutureRiskThreat struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Timeframe   string `json:"timeframe"`
	Icon        string `json:"icon"`
}

// FutureRisk is the forward-looking risk card.
type FutureRisk struct {
	ConfidenceLevel  int                `json:"confidenceLevel"`
	RiskLevel        string             `json:"riskLevel"`
	ProjectedThreats []FutureRiskThreat `json:"projectedThreats"`
}

// UniqueFilters enumerates the filter dropdown options.
type UniqueFilters struct {
	Issuers          []string `json:"issuers"`
	Domains          []string `json:"domains"`
	Countries        []string `json:"countries"`
	Statuses         []string `json:"statuses"`
	Grades           []string `json:"grades"`
	ValidationLevels []string `json:"validationLevels"`
}
