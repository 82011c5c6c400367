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

import "time"

// ISOFormat is the timestamp layout the scanner writes into
// parsed.validity.start/end. The store compares these lexicographically,
// which is only sound because the layout is fixed-width UTC.
const ISOFormat = "2006-01-02T15:04:05Z"

// FormatISO renders a time in the store's timestamp layout.
func FormatISO(t time.Time) string {
	return t.UTC().Format(ISOFormat)
}

// ParseISO parses a store timestamp. It tolerates the offset form some
// scanner versions emit ("+00:00" instead of "Z").
func ParseISO(s string) (time.Time, error) {
	if t, err := time.Parse(ISOFormat, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// MonthBounds returns the first and last instant of a calendar month in UTC.
func MonthBounds(year, month int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Second)
	return start, end
}
