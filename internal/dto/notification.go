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

package dto

// Notification is one derived alert. IDs are stable per alert kind so the
// client can track read state locally; the server keeps none.
type Notification struct {
	ID           string            `json:"id"`
	Type         string            `json:"type"` // error / warning
	Category     string            `json:"category"`
	Title        string            `json:"title"`
	Description  string            `json:"description"`
	Count        int64             `json:"count"`
	FilterParams CertificateFilter `json:"filterParams"`
	Timestamp    string            `json:"timestamp"`
	Read         bool              `json:"read"`
}

// NotificationList is the alert feed payload.
type NotificationList struct {
	Notifications []Notification `json:"notifications"`
	UnreadCount   int            `json:"unreadCount"`
	TotalCount    int            `json:"totalCount"`
}
