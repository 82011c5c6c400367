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

import "testing"

func TestIsWeakHash(t *testing.T) {
	tests := []struct {
		algorithm string
		want      bool
	}{
		{"SHA256-RSA", false},
		{"SHA-256-RSA", false},
		{"ECDSA-SHA384", false},
		{"SHA512-RSA", false},
		{"SHA1-RSA", true},
		{"sha1WithRSAEncryption", true},
		{"SHA-1-RSA", true},
		{"MD5-RSA", true},
		{"md5WithRSAEncryption", true},
		{"", false},
		{"Unknown", false},
	}

	for _, tt := range tests {
		t.Run(tt.algorithm, func(t *testing.T) {
			if got := IsWeakHash(tt.algorithm); got != tt.want {
				t.Errorf("IsWeakHash(%q) = %v, want %v", tt.algorithm, got, tt.want)
			}
		})
	}
}

func TestHashType(t *testing.T) {
	tests := []struct {
		algorithm string
		want      string
	}{
		{"SHA256-RSA", HashSHA256},
		{"sha256WithRSAEncryption", HashSHA256},
		{"ECDSA-SHA384", HashSHA384},
		{"SHA-512-RSA", HashSHA512},
		{"SHA1-RSA", HashSHA1},
		{"MD5-RSA", HashMD5},
		{"", HashUnknown},
		{"ED25519", HashUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.algorithm, func(t *testing.T) {
			if got := HashType(tt.algorithm); got != tt.want {
				t.Errorf("HashType(%q) = %q, want %q", tt.algorithm, got, tt.want)
			}
		})
	}
}

func TestStrengthScore(t *testing.T) {
	tests := []struct {
		name      string
		keyAlg    string
		keyBits   int
		sigAlg    string
		want      int
	}{
		// 0.4*75 + 0.4*90 + 0.2*80 = 82
		{"rsa 2048 sha256", "RSA", 2048, "SHA256-RSA", 82},
		// 0.4*100 + 0.4*90 + 0.2*80 = 92
		{"rsa 4096 sha256", "RSA", 4096, "SHA256-RSA", 92},
		// 0.4*90 + 0.4*90 + 0.2*100 = 92
		{"ecdsa 256 sha256", "ECDSA", 256, "ECDSA-SHA256", 92},
		// 0.4*100 + 0.4*95 + 0.2*100 = 98
		{"ecdsa 384 sha384", "ECDSA", 384, "ECDSA-SHA384", 98},
		// 0.4*30 + 0.4*20 + 0.2*80 = 36
		{"rsa 1024 sha1", "RSA", 1024, "SHA1-RSA", 36},
		// 0.4*40 + 0.4*40 + 0.2*40 = 40
		{"unknown everything", "", 0, "", 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StrengthScore(tt.keyAlg, tt.keyBits, tt.sigAlg); got != tt.want {
				t.Errorf("StrengthScore(%q, %d, %q) = %d, want %d", tt.keyAlg, tt.keyBits, tt.sigAlg, got, tt.want)
			}
		})
	}
}
