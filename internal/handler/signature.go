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

// SignatureHandler serves the signatures-and-hashes page endpoints.
type SignatureHandler struct {
	service *service.SignatureService
}

// NewSignatureHandler creates a new signature handler.
func NewSignatureHandler(svc *service.SignatureService) *SignatureHandler {
	return &SignatureHandler{service: svc}
}

// Stats handles GET /api/signature-stats
func (h *SignatureHandler) Stats(c *gin.Context) {
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

// HashTrends handles GET /api/hash-trends
func (h *SignatureHandler) HashTrends(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		respondError(c, err)
		return
	}

	trends, err := h.service.HashTrends(c.Request.Context(), filter, c.Query("granularity"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, trends)
}

// IssuerAlgorithmMatrix handles GET /api/issuer-algorithm-matrix
func (h *SignatureHandler) IssuerAlgorithmMatrix(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		respondError(c, err)
		return
	}

	matrix, err := h.service.IssuerAlgorithmMatrix(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, matrix)
}
