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
	"math"
	"strings"
)

// Signature-strength scoring. These are lookup tables combined with fixed
// weights, configuration data rather than an algorithm; tune them here.
const (
	weightKeySize = 0.4
	weightHash    = 0.4
	weightKeyType = 0.2
)

func keySizeSubScore(keyAlgorithm string, bits int) float64 {
	switch strings.ToUpper(keyAlgorithm) {
	case "RSA":
		switch {
		case bits >= 4096:
			return 100
		case bits >= 3072:
			return 90
		case bits >= 2048:
			return 75
		case bits > 0:
			return 30
		}
	case "ECDSA", "EC":
		switch {
		case bits >= 384:
			return 100
		case bits >= 256:
			return 90
		case bits > 0:
			return 50
		}
	}
	return 40
}

func hashSubScore(hashType string) float64 {
	switch hashType {
	case HashSHA512:
		return 100
	case HashSHA384:
		return 95
	case HashSHA256:
		return 90
	case HashSHA1:
		return 20
	case HashMD5:
		return 5
	default:
		return 40
	}
}

func keyTypeSubScore(keyAlgorithm string) float64 {
	switch strings.ToUpper(keyAlgorithm) {
	case "ECDSA", "EC":
		return 100
	case "RSA":
		return 80
	case "DSA":
		return 30
	default:
		return 40
	}
}

// StrengthScore computes the 0-100 composite signature-strength score as a
// weighted sum of key-size, digest and key-type sub-scores (0.4/0.4/0.2).
func StrengthScore(keyAlgorithm string, keyBits int, signatureAlgorithm string) int {
	score := weightKeySize*keySizeSubScore(keyAlgorithm, keyBits) +
		weightHash*hashSubScore(HashType(signatureAlgorithm)) +
		weightKeyType*keyTypeSubScore(keyAlgorithm)
	return int(math.Round(score))
}
