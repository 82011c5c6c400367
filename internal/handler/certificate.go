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

// CertificateHandler serves the certificate table and detail endpoints.
type CertificateHandler struct {
	service *service.CertificateService
}

// NewCertificateHandler creates a new certificate handler.
func NewCertificateHandler(svc *service.CertificateService) *CertificateHandler {
	return &CertificateHandler{service: svc}
}

// List handles GET /api/certificates
func (h *CertificateHandler) List(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		respondError(c, err)
		return
	}
	page, pageSize, err := parsePage(c)
	if err != nil {
		respondError(c, err)
		return
	}

	list, err := h.service.List(c.Request.Context(), filter, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Get handles GET /api/certificates/:id
func (h *CertificateHandler) Get(c *gin.Context) {
	cert, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cert)
}

// Vulnerabilities handles GET /api/vulnerabilities
func (h *CertificateHandler) Vulnerabilities(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		respondError(c, err)
		return
	}
	page, pageSize, err := parsePage(c)
	if err != nil {
		respondError(c, err)
		return
	}

	report, err := h.service.Vulnerabilities(c.Request.Context(), filter, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
