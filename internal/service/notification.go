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

package service

import (
	"context"
	"fmt"
	"time"

	"ssl-guardian/src/internal/cache"
	"ssl-guardian/src/internal/constants"
	"ssl-guardian/src/internal/dto"
	"ssl-guardian/src/internal/repository"
	"ssl-guardian/src/internal/utils"
)

// NotificationService derives the alert feed from the live inventory. Alerts
// are recomputed per request; the server keeps no notification state, so IDs
// are stable strings the client can mark read locally.
type NotificationService struct {
	repo  repository.CertificateRepository
	cache *cache.ResultCache
	now   func() time.Time
}

// NewNotificationService creates a new notification service.
func NewNotificationService(repo repository.CertificateRepository, rc *cache.ResultCache) *NotificationService {
	return &NotificationService{repo: repo, cache: rc, now: time.Now}
}

// List builds the alert feed. Only alert kinds with a non-zero count are
// emitted.
func (s *NotificationService) List(ctx context.Context) (*dto.NotificationList, error) {
	key := "all"
	if cached, ok := s.cache.Get(cache.NamespaceNotifications, key); ok {
		if list, ok := cached.(*dto.NotificationList); ok {
			return list, nil
		}
	}

	now := s.now().UTC()
	counts, err := s.repo.NotificationCounts(ctx, now)
	if err != nil {
		return nil, err
	}

	timestamp := utils.FormatISO(now)
	var notifications []dto.Notification

	if counts.ExpiringTwoDays > 0 {
		notifications = append(notifications, dto.Notification{
			ID:           "expiring-critical",
			Type:         "error",
			Category:     "expiration",
			Title:        "Certificates expiring within 48 hours",
			Description:  fmt.Sprintf("%d certificates expire in the next 2 days", counts.ExpiringTwoDays),
			Count:        counts.ExpiringTwoDays,
			FilterParams: dto.CertificateFilter{ExpiringDays: 2},
			Timestamp:    timestamp,
		})
	}

	if counts.ExpiringSevenDays > 0 {
		notifications = append(notifications, dto.Notification{
			ID:           "expiring-warning",
			Type:         "warning",
			Category:     "expiration",
			Title:        "Certificates expiring this week",
			Description:  fmt.Sprintf("%d certificates expire within 7 days", counts.ExpiringSevenDays),
			Count:        counts.ExpiringSevenDays,
			FilterParams: dto.CertificateFilter{ExpiringDays: 7},
			Timestamp:    timestamp,
		})
	}

	if counts.Vulnerable > 0 {
		notifications = append(notifications, dto.Notification{
			ID:           "lint-errors",
			Type:         "error",
			Category:     "security",
			Title:        "Certificates with critical findings",
			Description:  fmt.Sprintf("%d active certificates carry critical lint findings", counts.Vulnerable),
			Count:        counts.Vulnerable,
			FilterParams: dto.CertificateFilter{HasVulnerabilities: true},
			Timestamp:    timestamp,
		})
	}

	if counts.WeakKeys > 0 {
		notifications = append(notifications, dto.Notification{
			ID:           "weak-keys",
			Type:         "warning",
			Category:     "security",
			Title:        "Certificates with undersized RSA keys",
			Description:  fmt.Sprintf("%d active certificates use RSA keys below 2048 bits", counts.WeakKeys),
			Count:        counts.WeakKeys,
			FilterParams: dto.CertificateFilter{EncryptionType: "RSA 1024"},
			Timestamp:    timestamp,
		})
	}

	if counts.NewlyExpired > 0 {
		notifications = append(notifications, dto.Notification{
			ID:           "newly-expired",
			Type:         "error",
			Category:     "expiration",
			Title:        "Certificates expired in the last 24 hours",
			Description:  fmt.Sprintf("%d certificates expired in the last day", counts.NewlyExpired),
			Count:        counts.NewlyExpired,
			FilterParams: dto.CertificateFilter{Status: constants.StatusExpired},
			Timestamp:    timestamp,
		})
	}

	list := &dto.NotificationList{
		Notifications: notifications,
		UnreadCount:   len(notifications),
		TotalCount:    len(notifications),
	}

	s.cache.Set(cache.NamespaceNotifications, key, list)
	return list, nil
}
