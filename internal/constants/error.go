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

package constants

import "errors"

var (
	// ErrStoreUnavailable wraps any failure to reach the certificate store.
	// Surfaced as HTTP 500; the operation is idempotent so the caller may retry.
	ErrStoreUnavailable = errors.New("certificate store unavailable")

	ErrCertificateNotFound  = errors.New("certificate not found")
	ErrInvalidCertificateID = errors.New("invalid certificate id")
	ErrInvalidParameter     = errors.New("invalid query parameter")
)
