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

// Package insights holds the pure classification functions behind the
// dashboard metrics: status windowing, TLD geography, hash strength, lint
// grading and validation levels. Everything here is a deterministic function
// of its inputs; the database is never touched.
package insights

import (
	"time"

	"ssl-guardian/src/internal/constants"
	"ssl-guardian/src/internal/utils"
)

// Status classifies a certificate at the given instant.
//
// The boundary is closed on the past side: a certificate whose validity.end
// equals now is already EXPIRED. EXPIRING_SOON covers (now, now+window].
// An absent or unparsable end date is UNKNOWN, never VALID.
func Status(validityEnd string, now time.Time, window time.Duration) string {
	if validityEnd == "" {
		return constants.StatusUnknown
	}
	end, err := utils.ParseISO(validityEnd)
	if err != nil {
		return constants.StatusUnknown
	}
	if !end.After(now) {
		return constants.StatusExpired
	}
	if !end.After(now.Add(window)) {
		return constants.StatusExpiringSoon
	}
	return constants.StatusValid
}
