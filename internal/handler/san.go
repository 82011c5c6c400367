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

// SANHandler serves the subject-alternative-name analytics endpoints.
type SANHandler struct {
	service *service.SANService
}

// NewSANHandler creates a new SAN handler.
func NewSANHandler(svc *service.SANService) *SANHandler {
	return &SANHandler{service: svc}
}

// Stats handles GET /api/san-stats
func (h *SANHandler) Stats(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		respondError(c, err)
		return
	}

	stats, err := h.service.Stats(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Distribution handles GET /api/san-distribution
func (h *SANHandler) Distribution(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		respondError(c, err)
		return
	}

	buckets, err := h.service.Distribution(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, buckets)
}

// TLDBreakdown handles GET /api/san-tld-breakdown
func (h *SANHandler) TLDBreakdown(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		respondError(c, err)
		return
	}

	entries, err := h.service.TLDBreakdown(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// WildcardBreakdown handles GET /api/san-wildcard-breakdown
func (h *SANHandler) WildcardBreakdown(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		respondError(c, err)
		return
	}

	breakdown, err := h.service.WildcardBreakdown(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, breakdown)
}
