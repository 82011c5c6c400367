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

import "strings"

// Hash family labels produced by HashType.
const (
	HashSHA256  = "SHA-256"
	HashSHA384  = "SHA-384"
	HashSHA512  = "SHA-512"
	HashSHA1    = "SHA-1"
	HashMD5     = "MD5"
	HashUnknown = "Unknown"
)

// IsWeakHash reports whether a signature algorithm name uses a deprecated
// digest. True iff the name contains MD5 or SHA1 (case-insensitive, dash
// tolerated). A pure predicate: the answer never depends on which page or
// limit was requested.
func IsWeakHash(signatureAlgorithm string) bool {
	norm := strings.ReplaceAll(strings.ToUpper(signatureAlgorithm), "-", "")
	return strings.Contains(norm, "MD5") || strings.Contains(norm, "SHA1")
}

// HashType extracts the digest family from a signature algorithm name such
// as "SHA256-RSA" or "ECDSA-SHA384".
func HashType(signatureAlgorithm string) string {
	norm := strings.ReplaceAll(strings.ToUpper(signatureAlgorithm), "-", "")
	switch {
	case strings.Contains(norm, "SHA256"):
		return HashSHA256
	case strings.Contains(norm, "SHA384"):
		return HashSHA384
	case strings.Contains(norm, "SHA512"):
		return HashSHA512
	case strings.Contains(norm, "SHA1"):
		return HashSHA1
	case strings.Contains(norm, "MD5"):
		return HashMD5
	default:
		return HashUnknown
	}
}
