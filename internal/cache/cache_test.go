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

package cache

import (
	"testing"

	"ssl-guardian/src/config"
)

func testConfig(enabled bool) *config.Cache {
	return &config.Cache{
		Enabled:              enabled,
		MaxEntries:           8,
		MetricsTTL:           300,
		CertificatesTTL:      300,
		CertificatesPage1TTL: 900,
		CAAnalyticsTTL:       480,
		EncryptionTTL:        480,
		GeographicTTL:        480,
		ValidityTrendsTTL:    480,
		ValidityStatsTTL:     300,
		FutureRiskTTL:        480,
		NotificationsTTL:     120,
		UniqueFiltersTTL:     480,
		SignatureStatsTTL:    480,
		HashTrendsTTL:        600,
		IssuerMatrixTTL:      600,
		SANTTL:               600,
		SANTLDTTL:            900,
	}
}

func TestCacheRoundTrip(t *testing.T) {
	c := New(testConfig(true))

	if _, ok := c.Get(NamespaceMetrics, "all"); ok {
		t.Fatal("empty cache should miss")
	}

	c.Set(NamespaceMetrics, "all", 42)
	value, ok := c.Get(NamespaceMetrics, "all")
	if !ok {
		t.Fatal("expected a hit after Set")
	}
	if value.(int) != 42 {
		t.Errorf("got %v, want 42", value)
	}
}

func TestCacheNamespacesAreIsolated(t *testing.T) {
	c := New(testConfig(true))

	c.Set(NamespaceMetrics, "all", "metrics")
	c.Set(NamespaceCAAnalytics, "all", "ca")

	if value, _ := c.Get(NamespaceMetrics, "all"); value != "metrics" {
		t.Errorf("metrics namespace returned %v", value)
	}
	if value, _ := c.Get(NamespaceCAAnalytics, "all"); value != "ca" {
		t.Errorf("ca namespace returned %v", value)
	}
	if _, ok := c.Get(NamespaceGeographic, "all"); ok {
		t.Error("untouched namespace should miss")
	}
}

func TestCacheDisabled(t *testing.T) {
	c := New(testConfig(false))

	c.Set(NamespaceMetrics, "all", 1)
	if _, ok := c.Get(NamespaceMetrics, "all"); ok {
		t.Error("disabled cache should always miss")
	}
}

func TestCachePurge(t *testing.T) {
	c := New(testConfig(true))

	c.Set(NamespaceMetrics, "all", 1)
	c.Set(NamespaceNotifications, "all", 2)
	c.Purge()

	if _, ok := c.Get(NamespaceMetrics, "all"); ok {
		t.Error("purged cache should miss")
	}
	if _, ok := c.Get(NamespaceNotifications, "all"); ok {
		t.Error("purged cache should miss")
	}
}
