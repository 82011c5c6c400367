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

package utils

import (
	"testing"
	"time"
)

func TestFormatISO(t *testing.T) {
	ts := time.Date(2026, 8, 31, 12, 30, 45, 0, time.UTC)
	if got := FormatISO(ts); got != "2026-08-31T12:30:45Z" {
		t.Errorf("FormatISO = %q", got)
	}
}

func TestParseISO(t *testing.T) {
	ts, err := ParseISO("2026-08-31T12:30:45Z")
	if err != nil {
		t.Fatalf("ParseISO: %v", err)
	}
	if ts.Year() != 2026 || ts.Month() != time.August || ts.Day() != 31 {
		t.Errorf("ParseISO returned %v", ts)
	}

	if _, err := ParseISO("not-a-date"); err == nil {
		t.Error("expected error for invalid input")
	}
}

func TestFormatParseOrderingAgreement(t *testing.T) {
	// Store queries compare ISO strings lexicographically; that only works
	// if string order matches time order.
	earlier := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	later := time.Date(2026, 11, 5, 0, 0, 0, 0, time.UTC)
	if !(FormatISO(earlier) < FormatISO(later)) {
		t.Error("ISO string ordering disagrees with time ordering")
	}
}

func TestMonthBounds(t *testing.T) {
	tests := []struct {
		year      int
		month     int
		wantStart string
		wantEnd   string
	}{
		{2026, 1, "2026-01-01T00:00:00Z", "2026-01-31T23:59:59Z"},
		{2026, 2, "2026-02-01T00:00:00Z", "2026-02-28T23:59:59Z"},
		{2024, 2, "2024-02-01T00:00:00Z", "2024-02-29T23:59:59Z"},
		{2026, 12, "2026-12-01T00:00:00Z", "2026-12-31T23:59:59Z"},
	}

	for _, tt := range tests {
		start, end := MonthBounds(tt.year, tt.month)
		if got := FormatISO(start); got != tt.wantStart {
			t.Errorf("MonthBounds(%d, %d) start = %q, want %q", tt.year, tt.month, got, tt.wantStart)
		}
		if got := FormatISO(end); got != tt.wantEnd {
			t.Errorf("MonthBounds(%d, %d) end = %q, want %q", tt.year, tt.month, got, tt.wantEnd)
		}
	}
}
