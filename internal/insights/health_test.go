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
	"testing"

	"ssl-guardian/src/internal/constants"
)

func TestHealthScore(t *testing.T) {
	tests := []struct {
		name     string
		active   int64
		total    int64
		critical int64
		want     int
	}{
		{"empty inventory", 0, 0, 0, 0},
		{"all active no findings", 100, 100, 0, 100},
		{"all expired", 0, 100, 0, 0},
		{"penalty proportional below cap", 90, 100, 10, 80},
		{"penalty capped at twenty", 100, 100, 90, 80},
		{"typical inventory", 5707, 5810, 103, 96},
		{"penalty cannot go negative", 10, 100, 95, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HealthScore(tt.active, tt.total, tt.critical); got != tt.want {
				t.Errorf("HealthScore(%d, %d, %d) = %d, want %d", tt.active, tt.total, tt.critical, got, tt.want)
			}
		})
	}
}

func TestHealthStatus(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{100, constants.HealthSecure},
		{80, constants.HealthSecure},
		{79, constants.HealthAtRisk},
		{50, constants.HealthAtRisk},
		{49, constants.HealthCritical},
		{0, constants.HealthCritical},
	}

	for _, tt := range tests {
		if got := HealthStatus(tt.score); got != tt.want {
			t.Errorf("HealthStatus(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		name  string
		count int64
		total int64
		want  float64
	}{
		{"zero total", 5, 0, 0},
		{"zero count", 0, 100, 0},
		{"whole", 100, 100, 100},
		{"half", 1, 2, 50},
		{"rounds to one decimal", 1, 3, 33.3},
		{"rounds up", 2, 3, 66.7},
		{"small share", 1, 1000, 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Percentage(tt.count, tt.total); got != tt.want {
				t.Errorf("Percentage(%d, %d) = %v, want %v", tt.count, tt.total, got, tt.want)
			}
		})
	}
}
