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
	"testing"
	"time"

	"ssl-guardian/src/internal/constants"
	"ssl-guardian/src/internal/repository"
	"ssl-guardian/src/internal/utils"
)

func newNotificationService(repo *mockRepo) *NotificationService {
	s := NewNotificationService(repo, testCache())
	s.now = func() time.Time { return fixedNow }
	return s
}

func TestNotificationsOnlyNonZeroCounts(t *testing.T) {
	svc := newNotificationService(&mockRepo{
		notifCountsFn: func(now time.Time) (*repository.NotificationCounts, error) {
			if !now.Equal(fixedNow) {
				t.Errorf("now = %v, want %v", now, fixedNow)
			}
			return &repository.NotificationCounts{
				ExpiringTwoDays:   2,
				ExpiringSevenDays: 0,
				Vulnerable:        5,
				WeakKeys:          0,
				NewlyExpired:      1,
			}, nil
		},
	})

	list, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list.Notifications) != 3 {
		t.Fatalf("got %d notifications, want 3", len(list.Notifications))
	}

	wantIDs := []string{"expiring-critical", "lint-errors", "newly-expired"}
	for i, want := range wantIDs {
		if list.Notifications[i].ID != want {
			t.Errorf("notification %d ID = %q, want %q", i, list.Notifications[i].ID, want)
		}
	}
	if list.UnreadCount != 3 || list.TotalCount != 3 {
		t.Errorf("counts = %d/%d, want 3/3", list.UnreadCount, list.TotalCount)
	}

	wantTS := utils.FormatISO(fixedNow)
	for _, n := range list.Notifications {
		if n.Timestamp != wantTS {
			t.Errorf("notification %q timestamp = %q, want %q", n.ID, n.Timestamp, wantTS)
		}
		if n.Count <= 0 {
			t.Errorf("notification %q emitted with count %d", n.ID, n.Count)
		}
	}
}

func TestNotificationFilterParams(t *testing.T) {
	svc := newNotificationService(&mockRepo{
		notifCountsFn: func(_ time.Time) (*repository.NotificationCounts, error) {
			return &repository.NotificationCounts{
				ExpiringTwoDays:   1,
				ExpiringSevenDays: 4,
				Vulnerable:        2,
				WeakKeys:          3,
				NewlyExpired:      1,
			}, nil
		},
	})

	list, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list.Notifications) != 5 {
		t.Fatalf("got %d notifications, want all 5", len(list.Notifications))
	}

	byID := make(map[string]int)
	for i, n := range list.Notifications {
		byID[n.ID] = i
	}
	if p := list.Notifications[byID["expiring-critical"]].FilterParams; p.ExpiringDays != 2 {
		t.Errorf("expiring-critical filter = %+v", p)
	}
	if p := list.Notifications[byID["expiring-warning"]].FilterParams; p.ExpiringDays != 7 {
		t.Errorf("expiring-warning filter = %+v", p)
	}
	if p := list.Notifications[byID["lint-errors"]].FilterParams; !p.HasVulnerabilities {
		t.Errorf("lint-errors filter = %+v", p)
	}
	if p := list.Notifications[byID["weak-keys"]].FilterParams; p.EncryptionType != "RSA 1024" {
		t.Errorf("weak-keys filter = %+v", p)
	}
	if p := list.Notifications[byID["newly-expired"]].FilterParams; p.Status != constants.StatusExpired {
		t.Errorf("newly-expired filter = %+v", p)
	}
}

func TestNotificationsEmptyStore(t *testing.T) {
	svc := newNotificationService(&mockRepo{})
	list, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list.Notifications) != 0 {
		t.Errorf("got %d notifications, want none", len(list.Notifications))
	}
	if list.UnreadCount != 0 || list.TotalCount != 0 {
		t.Errorf("counts = %d/%d", list.UnreadCount, list.TotalCount)
	}
}
