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

// Package handler translates HTTP requests into service calls. Handlers
// parse and validate parameters, invoke the service and render JSON; all
// computation lives below.
package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"ssl-guardian/src/internal/constants"
	"ssl-guardian/src/internal/dto"
	"ssl-guardian/src/internal/utils"

	"github.com/gin-gonic/gin"
)

// intQuery parses an optional integer query parameter.
func intQuery(c *gin.Context, name string, fallback int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", constants.ErrInvalidParameter, name)
	}
	return value, nil
}

// boolQuery reports whether an optional boolean query parameter is "true".
func boolQuery(c *gin.Context, name string) bool {
	return strings.EqualFold(c.Query(name), "true")
}

// listQuery parses a comma-separated multi-select query parameter.
func listQuery(c *gin.Context, name string) []string {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	var values []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			values = append(values, part)
		}
	}
	return values
}

// parseFilter reads the full filter vocabulary from the query string. Every
// endpoint shares this so a chart click's filter params mean the same thing
// everywhere.
func parseFilter(c *gin.Context) (*dto.CertificateFilter, error) {
	f := &dto.CertificateFilter{
		Status:             c.Query("status"),
		Country:            c.Query("country"),
		Issuer:             c.Query("issuer"),
		Search:             c.Query("search"),
		EncryptionType:     c.Query("encryption_type"),
		HasVulnerabilities: boolQuery(c, "has_vulnerabilities"),
		WeakHash:           boolQuery(c, "weak_hash"),
		SelfSigned:         boolQuery(c, "self_signed"),
		SignatureAlgorithm: c.Query("signature_algorithm"),
		HashType:           c.Query("hash_type"),
		ValidityBucket:     c.Query("validity_bucket"),
		SANTLD:             c.Query("san_tld"),
		StartDate:          c.Query("start_date"),
		EndDate:            c.Query("end_date"),
		Countries:          listQuery(c, "countries"),
		Issuers:            listQuery(c, "issuers"),
		Statuses:           listQuery(c, "statuses"),
		ValidationLevels:   listQuery(c, "validation_levels"),
	}

	var err error
	if f.KeySize, err = intQuery(c, "key_size", 0); err != nil {
		return nil, err
	}
	if f.ExpiringDays, err = intQuery(c, "expiring_days", 0); err != nil {
		return nil, err
	}
	if f.ExpiringMonth, err = intQuery(c, "expiring_month", 0); err != nil {
		return nil, err
	}
	if f.ExpiringYear, err = intQuery(c, "expiring_year", 0); err != nil {
		return nil, err
	}
	if f.IssuedMonth, err = intQuery(c, "issued_month", 0); err != nil {
		return nil, err
	}
	if f.IssuedYear, err = intQuery(c, "issued_year", 0); err != nil {
		return nil, err
	}
	if f.SANCountMin, err = intQuery(c, "san_count_min", 0); err != nil {
		return nil, err
	}
	if f.SANCountMax, err = intQuery(c, "san_count_max", 0); err != nil {
		return nil, err
	}
	return f, nil
}

// parsePage reads the pagination parameters; the service clamps them.
func parsePage(c *gin.Context) (page, pageSize int, err error) {
	if page, err = intQuery(c, "page", 1); err != nil {
		return 0, 0, err
	}
	if pageSize, err = intQuery(c, "page_size", 0); err != nil {
		return 0, 0, err
	}
	return page, pageSize, nil
}

// respondError maps service errors onto HTTP statuses. Unknown errors read
// as store failures, never as client mistakes.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, constants.ErrCertificateNotFound):
		c.JSON(http.StatusNotFound, utils.NewErrorResponse("Certificate not found"))
	case errors.Is(err, constants.ErrInvalidCertificateID):
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Invalid certificate id"))
	case errors.Is(err, constants.ErrInvalidParameter):
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Invalid request parameter", err.Error()))
	default:
		utils.LogError("Request failed", err)
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Certificate store unavailable"))
	}
}
