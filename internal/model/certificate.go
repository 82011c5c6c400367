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

package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Certificate mirrors one scanner document in the certificates collection.
// Every nested field is optional: the scanner omits what it could not parse,
// and absence always means "unknown", never zero or false.
type Certificate struct {
	ID     primitive.ObjectID `bson:"_id,omitempty"`
	Domain string             `bson:"domain,omitempty"`
	Parsed Parsed             `bson:"parsed,omitempty"`
	Zlint  Zlint              `bson:"zlint,omitempty"`
}

// Parsed carries the X.509 fields extracted by the scanner.
type Parsed struct {
	IssuerDN           string     `bson:"issuer_dn,omitempty"`
	Subject            Name       `bson:"subject,omitempty"`
	Issuer             Name       `bson:"issuer,omitempty"`
	Validity           Validity   `bson:"validity,omitempty"`
	SubjectKeyInfo     KeyInfo    `bson:"subject_key_info,omitempty"`
	SignatureAlgorithm Algorithm  `bson:"signature_algorithm,omitempty"`
	Signature          Signature  `bson:"signature,omitempty"`
	Names              []string   `bson:"names,omitempty"` // SAN list
	Extensions         Extensions `bson:"extensions,omitempty"`
}

// Name is a distinguished-name fragment; the scanner stores every attribute
// as a string array even when a single value is expected.
type Name struct {
	CommonName   []string `bson:"common_name,omitempty"`
	Organization []string `bson:"organization,omitempty"`
	Country      []string `bson:"country,omitempty"`
}

// Validity holds the certificate lifetime. Start and End are ISO-8601
// strings; Length is the precomputed duration in seconds.
type Validity struct {
	Start  string `bson:"start,omitempty"`
	End    string `bson:"end,omitempty"`
	Length int64  `bson:"length,omitempty"`
}

// KeyInfo describes the subject public key.
type KeyInfo struct {
	KeyAlgorithm   Algorithm  `bson:"key_algorithm,omitempty"`
	RSAPublicKey   *RSAKey    `bson:"rsa_public_key,omitempty"`
	ECDSAPublicKey *ECDSAKey  `bson:"ecdsa_public_key,omitempty"`
}

type Algorithm struct {
	Name string `bson:"name,omitempty"`
}

type RSAKey struct {
	Length int `bson:"length,omitempty"`
}

type ECDSAKey struct {
	Length int    `bson:"length,omitempty"`
	Curve  string `bson:"curve,omitempty"`
}

type Signature struct {
	SelfSigned bool `bson:"self_signed,omitempty"`
}

type Extensions struct {
	CertificatePolicies []string `bson:"certificate_policies,omitempty"`
}

// Zlint holds the lint results attached by the scanner. ErrorsPresent and
// WarningsPresent are denormalized flags kept in sync by the scanner so that
// vulnerability counts never need to unwind the lint map.
type Zlint struct {
	ErrorsPresent   bool                  `bson:"errors_present,omitempty"`
	WarningsPresent bool                  `bson:"warnings_present,omitempty"`
	Lints           map[string]LintResult `bson:"lints,omitempty"`
}

// LintResult is one named zlint check outcome.
type LintResult struct {
	Result  string `bson:"result,omitempty" json:"result"`
	Details string `bson:"details,omitempty" json:"details,omitempty"`
}

// DomainName returns the scanned domain, falling back to the subject common
// name when the scanner did not record one.
func (c *Certificate) DomainName() string {
	if c.Domain != "" {
		return c.Domain
	}
	if len(c.Parsed.Subject.CommonName) > 0 && c.Parsed.Subject.CommonName[0] != "" {
		return c.Parsed.Subject.CommonName[0]
	}
	return "Unknown"
}

// IssuerOrganization returns the first issuer organization, or "Unknown".
func (c *Certificate) IssuerOrganization() string {
	if len(c.Parsed.Issuer.Organization) > 0 && c.Parsed.Issuer.Organization[0] != "" {
		return c.Parsed.Issuer.Organization[0]
	}
	return "Unknown"
}

// KeyAlgorithmName returns the public-key algorithm name, or "Unknown".
func (c *Certificate) KeyAlgorithmName() string {
	if c.Parsed.SubjectKeyInfo.KeyAlgorithm.Name != "" {
		return c.Parsed.SubjectKeyInfo.KeyAlgorithm.Name
	}
	return "Unknown"
}

// KeyLength returns the public key length in bits, or 0 when unknown.
func (c *Certificate) KeyLength() int {
	if k := c.Parsed.SubjectKeyInfo.RSAPublicKey; k != nil && k.Length > 0 {
		return k.Length
	}
	if k := c.Parsed.SubjectKeyInfo.ECDSAPublicKey; k != nil && k.Length > 0 {
		return k.Length
	}
	return 0
}

// SignatureAlgorithmName returns the signature algorithm name, or "Unknown".
func (c *Certificate) SignatureAlgorithmName() string {
	if c.Parsed.SignatureAlgorithm.Name != "" {
		return c.Parsed.SignatureAlgorithm.Name
	}
	return "Unknown"
}

// HasSubjectOrganization reports whether the subject carries an organization,
// which distinguishes OV from DV issuance when policy OIDs are absent.
func (c *Certificate) HasSubjectOrganization() bool {
	for _, org := range c.Parsed.Subject.Organization {
		if org != "" {
			return true
		}
	}
	return false
}
