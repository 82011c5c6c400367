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
	"sort"
	"strings"
)

// CountryUnknown is returned for domains whose TLD is not in the table.
const CountryUnknown = "Unknown"

// tldCountries maps top-level domains to countries. Best-effort heuristic
// only: generic TLDs default to one country, which is not necessarily the
// domain owner's actual location.
var tldCountries = map[string]string{
	"pk":    "Pakistan",
	"us":    "United States",
	"com":   "United States",
	"uk":    "United Kingdom",
	"co.uk": "United Kingdom",
	"de":    "Germany",
	"fr":    "France",
	"jp":    "Japan",
	"ca":    "Canada",
	"au":    "Australia",
	"nl":    "Netherlands",
	"in":    "India",
	"cn":    "China",
	"br":    "Brazil",
	"kr":    "South Korea",
	"sg":    "Singapore",
	"ie":    "Ireland",
	"se":    "Sweden",
	"ch":    "Switzerland",
	"it":    "Italy",
	"es":    "Spain",
	"ru":    "Russia",
	"mx":    "Mexico",
	"za":    "South Africa",
	"nz":    "New Zealand",
	"org":   "International",
	"net":   "International",
	"io":    "International",
	"dev":   "International",
}

// CountryForDomain derives a country from a domain's TLD. Two-label TLDs
// (e.g. co.uk) take precedence over the final label.
func CountryForDomain(domain string) string {
	if domain == "" {
		return CountryUnknown
	}
	parts := strings.Split(strings.ToLower(domain), ".")
	if len(parts) < 2 {
		return CountryUnknown
	}
	if country, ok := tldCountries[strings.Join(parts[len(parts)-2:], ".")]; ok {
		return country
	}
	if country, ok := tldCountries[parts[len(parts)-1]]; ok {
		return country
	}
	return CountryUnknown
}

// CountryForTLD maps a bare TLD label (no dots unless two-label) to a country.
func CountryForTLD(tld string) string {
	if country, ok := tldCountries[strings.ToLower(tld)]; ok {
		return country
	}
	return CountryUnknown
}

// TLDsForCountry returns every TLD label mapping to the given country.
// Used to translate a country filter back into a domain-suffix match.
func TLDsForCountry(country string) []string {
	var tlds []string
	for tld, c := range tldCountries {
		if c == country {
			tlds = append(tlds, tld)
		}
	}
	sort.Strings(tlds)
	return tlds
}

// KnownCountries returns the sorted-insensitive set of countries the table
// can produce, for the filter dropdown.
func KnownCountries() map[string]struct{} {
	set := make(map[string]struct{}, len(tldCountries))
	for _, c := range tldCountries {
		set[c] = struct{}{}
	}
	return set
}
