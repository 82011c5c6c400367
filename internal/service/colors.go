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

import "strings"

// Chart colors and labels are part of the API payloads so every client
// renders the same dashboard. Values are Tailwind palette hexes.

const defaultColor = "#6b7280"

var encryptionColors = map[string]string{
	"RSA":   "#3b82f6",
	"ECDSA": "#10b981",
	"EC":    "#10b981",
	"DSA":   "#ef4444",
}

var encryptionTypeLabels = map[string]string{
	"RSA":   "Standard",
	"ECDSA": "Modern",
	"EC":    "Modern",
	"DSA":   "Deprecated",
}

func encryptionColor(algorithm string) string {
	if color, ok := encryptionColors[strings.ToUpper(algorithm)]; ok {
		return color
	}
	return defaultColor
}

func encryptionTypeLabel(algorithm string) string {
	if label, ok := encryptionTypeLabels[strings.ToUpper(algorithm)]; ok {
		return label
	}
	return "Standard"
}

// caPalette colors the CA leaderboard in rank order; the "Others" bucket
// always takes defaultColor.
var caPalette = []string{
	"#10b981", "#3b82f6", "#8b5cf6", "#f59e0b", "#ef4444", "#06b6d4",
	"#14b8a6", "#6366f1", "#ec4899", "#84cc16", "#f97316", "#a855f7",
	"#22c55e", "#0ea5e9", "#d946ef", "#eab308",
}

func caColor(rank int) string {
	if rank >= 0 && rank < len(caPalette) {
		return caPalette[rank]
	}
	return defaultColor
}

var geoPalette = []string{
	"#3b82f6", "#10b981", "#8b5cf6", "#f59e0b", "#ef4444", "#06b6d4", defaultColor,
}

func geoColor(rank int) string {
	return geoPalette[rank%len(geoPalette)]
}

// validityBucketMeta labels the lifetime bands by their lower boundary in
// days. Order matches the $bucket boundaries.
var validityBucketMeta = map[int]struct {
	Label string
	Color string
}{
	0:   {"< 90 Days", "#3b82f6"},
	90:  {"90 Days - 1 Year", "#10b981"},
	365: {"1 - 2 Years", "#8b5cf6"},
	730: {"> 2 Years", "#f59e0b"},
}

// sanBucketMeta labels the SAN-count bands by their lower boundary.
var sanBucketMeta = map[int]struct {
	Label string
	Color string
}{
	0:  {"1", "#3b82f6"},
	2:  {"2-5", "#10b981"},
	6:  {"6-10", "#8b5cf6"},
	11: {"11-25", "#f59e0b"},
	26: {"26-50", "#ef4444"},
	51: {"50+", "#06b6d4"},
}

var hashColors = map[string]string{
	"SHA-256": "#10b981",
	"SHA-384": "#3b82f6",
	"SHA-512": "#8b5cf6",
	"SHA-1":   "#ef4444",
	"MD5":     "#dc2626",
}

func hashColor(hashType string) string {
	if color, ok := hashColors[hashType]; ok {
		return color
	}
	return defaultColor
}
