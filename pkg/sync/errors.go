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

package sync

import "errors"

var (
	errNilMonitorClient   = errors.New("a monitor service client is required")
	errNilInventoryClient = errors.New("an inventory client is required")
	errNilLogger          = errors.New("a logger is required")

	errMonitorUnavailable   = errors.New("monitor service API is not available")
	errInventoryUnavailable = errors.New("inventory API is not available")

	errCreateRejected = errors.New("monitor service rejected the test creation")
	errDeleteRejected = errors.New("monitor service rejected the test deletion")

	// Settings validation.
	errMissingCustomProperty = errors.New("custom_property is required")
	errMissingTestProtocol   = errors.New("test_protocol is required")
	errMissingTestPort       = errors.New("test_port is required")
	errMissingTestInterval   = errors.New("test_interval is required")
	errMissingTestPrefix     = errors.New("test_prefix is required")
)
