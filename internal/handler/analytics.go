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

import (
	"net/http"

	"ssl-guardian/src/internal/service"

	"github.com/gin-gonic/gin"
)

// AnalyticsHandler serves the distribution and trend chart endpoints.
type AnalyticsHandler struct {
	service *service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler.
func NewAnalyticsHandler(svc *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: svc}
}

// EncryptionStrength handles GET /api/encryption-strength
func (h *AnalyticsHandler) EncryptionStrength(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		respondError(c, err)
		return
	}

	slices, err := h.service.EncryptionStrength(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, slices)
}

// CAAnalytics handles GET /api/ca-analytics and its
// GET /api/ca-distribution alias.
func (h *AnalyticsHandler) CAAnalytics(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		respondError(c, err)
		return
	}

	slices, err := h.service.CAAnalytics(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, slices)
}

// GeographicDistribution handles GET /api/geographic-distribution
func (h *AnalyticsHandler) GeographicDistribution(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		respondError(c, err)
		return
	}

	slices, err := h.service.GeographicDistribution(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, slices)
}

// ValidityTrends handles GET /api/validity-trends
func (h *AnalyticsHandler) ValidityTrends(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		respondError(c, err)
		return
	}

	monthsBefore, err := intQuery(c, "months_before", 4)
	if err != nil {
		respondError(c, err)
		return
	}
	monthsAfter, err := intQuery(c, "months_after", 4)
	if err != nil {
		respondError(c, err)
		return
	}

	points, err := h.service.ValidityTrends(c.Request.Context(), filter, c.Query("granularity"), monthsBefore, monthsAfter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, points)
}

// ValidityStats handles GET /api/validity-stats
func (h *AnalyticsHandler) ValidityStats(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		respondError(c, err)
		return
	}

	stats, err := h.service.ValidityStats(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ValidityDistribution handles GET /api/validity-distribution
func (h *AnalyticsHandler) ValidityDistribution(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		respondError(c, err)
		return
	}

	buckets, err := h.service.ValidityDistribution(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, buckets)
}

// IssuanceTimeline handles GET /api/issuance-timeline
func (h *AnalyticsHandler) IssuanceTimeline(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		respondError(c, err)
		return
	}

	months, err := intQuery(c, "months", 12)
	if err != nil {
		respondError(c, err)
		return
	}

	points, err := h.service.IssuanceTimeline(c.Request.Context(), filter, months)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, points)
}
