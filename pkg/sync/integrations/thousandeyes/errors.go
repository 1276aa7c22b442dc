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

package thousandeyes

import "errors"

var (
	errMissingConnectionSettings = errors.New("endpoint, auth email and auth token are required")

	// Status code taxonomy reported by the monitor service.
	errMalformedRequest        = errors.New("monitor service reports a malformed request")
	errBadAuth                 = errors.New("monitor service reports bad authentication")
	errInsufficientPermissions = errors.New("monitor service reports insufficient permissions for this request")
	errNotFound                = errors.New("monitor service reports that the requested endpoint does not exist")
	errMethodNotAllowed        = errors.New("monitor service endpoint does not accept this request method")
	errContentTypeMismatch     = errors.New("monitor service reports the content type does not match the accept header")
	errUnsupportedPayload      = errors.New("monitor service reports the posted data is in an unsupported format")
	errRateLimited             = errors.New("monitor service reports too many requests within the rate limit window")
	errServerError             = errors.New("monitor service reports an internal server error")
	errMaintenanceMode         = errors.New("monitor service is currently in maintenance mode")
	errUnexpectedStatusCode    = errors.New("unexpected status code")

	// Transport failures below the HTTP layer.
	errConnectionFailed = errors.New("error connecting to the monitor service")
	errRequestTimeout   = errors.New("connection to the monitor service timed out")
	errTooManyRedirects = errors.New("connection to the monitor service saw too many redirects")

	errDecode = errors.New("failed to decode monitor service payload")
)
