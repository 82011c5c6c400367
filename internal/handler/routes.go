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

package handler

import "github.com/gin-gonic/gin"

// Handlers groups the route handlers for registration.
type Handlers struct {
	Certificate  *CertificateHandler
	Dashboard    *DashboardHandler
	Analytics    *AnalyticsHandler
	Signature    *SignatureHandler
	SAN          *SANHandler
	Notification *NotificationHandler
}

// RegisterRoutes wires every API route. /api/metrics and
// /api/ca-distribution are aliases kept for older dashboard builds.
func RegisterRoutes(r *gin.Engine, h *Handlers) {
	api := r.Group("/api")
	{
		api.GET("/certificates", h.Certificate.List)
		api.GET("/certificates/:id", h.Certificate.Get)
		api.GET("/vulnerabilities", h.Certificate.Vulnerabilities)

		api.GET("/dashboard/global-health", h.Dashboard.GlobalHealth)
		api.GET("/metrics", h.Dashboard.GlobalHealth)
		api.GET("/future-risk", h.Dashboard.FutureRisk)
		api.GET("/unique-filters", h.Dashboard.UniqueFilters)

		api.GET("/encryption-strength", h.Analytics.EncryptionStrength)
		api.GET("/ca-analytics", h.Analytics.CAAnalytics)
		api.GET("/ca-distribution", h.Analytics.CAAnalytics)
		api.GET("/geographic-distribution", h.Analytics.GeographicDistribution)
		api.GET("/validity-trends", h.Analytics.ValidityTrends)
		api.GET("/validity-stats", h.Analytics.ValidityStats)
		api.GET("/validity-distribution", h.Analytics.ValidityDistribution)
		api.GET("/issuance-timeline", h.Analytics.IssuanceTimeline)

		api.GET("/signature-stats", h.Signature.Stats)
		api.GET("/hash-trends", h.Signature.HashTrends)
		api.GET("/issuer-algorithm-matrix", h.Signature.IssuerAlgorithmMatrix)

		api.GET("/san-stats", h.SAN.Stats)
		api.GET("/san-distribution", h.SAN.Distribution)
		api.GET("/san-tld-breakdown", h.SAN.TLDBreakdown)
		api.GET("/san-wildcard-breakdown", h.SAN.WildcardBreakdown)

		api.GET("/notifications", h.Notification.List)
	}
}
