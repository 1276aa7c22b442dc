/*
 * Copyright 2026 Pathsync Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package swis

import "errors"

var (
	errMissingConnectionSettings = errors.New("host, username and password are required")
	errMissingCustomProperty     = errors.New("a custom property name is required")
	errQueryFailed               = errors.New("inventory query failed")
	errUnexpectedStatusCode      = errors.New("unexpected status code from inventory query")
	errDecode                    = errors.New("failed to decode inventory query result")
)
