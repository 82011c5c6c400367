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

// AlgorithmSlice is one signature-algorithm or hash-family distribution
// entry on the signatures page.
type AlgorithmSlice struct {
	Name       string  `json:"name"`
	Count      int64   `json:"count"`
	Percentage float64 `json:"percentage"`
	Weak       bool    `json:"weak"`
	Color      string  `json:"color"`
}

// KeySizeSlice is one public-key size distribution entry.
type KeySizeSlice struct {
	Name       string  `json:"name"` // e.g. "RSA 2048"
	Count      int64   `json:"count"`
	Percentage float64 `json:"percentage"`
	Color      string  `json:"color"`
}

// SignatureStats aggregates the signatures-and-hashes page cards.
// ComplianceRate is the share of certificates not using a weak digest.
type SignatureStats struct {
	TotalCertificates     int64            `json:"totalCertificates"`
	AlgorithmDistribution []AlgorithmSlice `json:"algorithmDistribution"`
	HashDistribution      []AlgorithmSlice `json:"hashDistribution"`
	KeySizeDistribution   []KeySizeSlice   `json:"keySizeDistribution"`
	WeakHashCount         int64            `json:"weakHashCount"`
	ComplianceRate        float64          `json:"complianceRate"`
	AverageStrengthScore  int              `json:"averageStrengthScore"`
	SelfSignedCount       int64            `json:"selfSignedCount"`
}

// HashTrendPoint is one period of the hash-adoption trend. Counts is keyed
// by hash family ("SHA-256", "SHA-1", ...).
type HashTrendPoint struct {
	Period         string           `json:"period"` // "2024 Q3" or "2024"
	Year           int              `json:"year"`
	Counts         map[string]int64 `json:"counts"`
	Total          int64            `json:"total"`
	WeakPercentage float64          `json:"weakPercentage"`
}

// HashTrends is the hash-adoption trend series.
type HashTrends struct {
	Granularity string           `json:"granularity"`
	Periods     []HashTrendPoint `json:"periods"`
}

// MatrixCell is one issuer x algorithm intersection.
type MatrixCell struct {
	Issuer    string `json:"issuer"`
	Algorithm string `json:"algorithm"`
	Count     int64  `json:"count"`
}

// IssuerAlgorithmMatrix is the CA-versus-algorithm heatmap payload.
type IssuerAlgorithmMatrix struct {
	Issuers    []string     `json:"issuers"`
	Algorithms []string     `json:"algorithms"`
	Cells      []MatrixCell `json:"cells"`
}
