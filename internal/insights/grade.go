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
	"fmt"

	"ssl-guardian/src/internal/model"
)

// CountLintFindings tallies error and warn results in a zlint map.
func CountLintFindings(z model.Zlint) (errors, warnings int) {
	for _, lint := range z.Lints {
		switch lint.Result {
		case "error":
			errors++
		case "warn":
			warnings++
		}
	}
	return errors, warnings
}

// GradeFromLints maps lint findings onto the dashboard's letter grade.
// No lint data at all reads as a clean A.
func GradeFromLints(z model.Zlint) string {
	if len(z.Lints) == 0 {
		return "A"
	}
	errors, warnings := CountLintFindings(z)
	switch {
	case errors >= 3:
		return "F"
	case errors >= 2:
		return "C"
	case errors >= 1:
		return "B"
	case warnings >= 3:
		return "B+"
	case warnings >= 1:
		return "A-"
	default:
		return "A+"
	}
}

// FormatFindings renders the vulnerability cell text for the table view.
func FormatFindings(z model.Zlint) string {
	errors, warnings := CountLintFindings(z)
	if errors > 0 {
		return fmt.Sprintf("%d Critical", errors)
	}
	if warnings > 0 {
		return fmt.Sprintf("%d Warning", warnings)
	}
	return "0 Found"
}
