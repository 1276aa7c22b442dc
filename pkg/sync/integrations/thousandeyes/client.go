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

// Package thousandeyes provides the client for the path-monitoring
// service that hosts agents and network tests.
package thousandeyes

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pathsynchq/pathsync/pkg/logger"
)

const defaultTimeout = 30 * time.Second

// Config holds the connection settings for the monitor service API.
type Config struct {
	Endpoint  string `json:"endpoint"`
	AuthEmail string `json:"auth_email"`
	AuthToken string `json:"auth_token"`
}

// Validate reports whether all required connection settings are present.
func (c *Config) Validate() error {
	if c.Endpoint == "" || c.AuthEmail == "" || c.AuthToken == "" {
		return errMissingConnectionSettings
	}

	return nil
}

// Client talks to the monitor service API. Every request carries the
// configured email/token credentials as basic auth.
type Client struct {
	config     Config
	httpClient HTTPClient
	logger     logger.Logger
}

// NewClient creates a monitor service client. Missing connection settings
// are a construction error, raised before any network activity.
func NewClient(config Config, log logger.Logger) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Client{
		config:     config,
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     log,
	}, nil
}

// SetHTTPClient replaces the underlying transport.
func (c *Client) SetHTTPClient(h HTTPClient) {
	c.httpClient = h
}

// Status reports whether the monitor service API is up: true iff the
// health endpoint answers 200.
func (c *Client) Status(ctx context.Context) (bool, error) {
	resp, err := c.do(ctx, http.MethodGet, "/status.json", nil)
	if err != nil {
		return false, err
	}
	defer c.closeBody(resp)

	if err := c.checkStatus(http.MethodGet, resp.StatusCode); err != nil {
		return false, err
	}

	return resp.StatusCode == http.StatusOK, nil
}

// GetAgents fetches the current list of agents.
func (c *Client) GetAgents(ctx context.Context) ([]Agent, error) {
	resp, err := c.do(ctx, http.MethodGet, "/agents.json", nil)
	if err != nil {
		return nil, err
	}
	defer c.closeBody(resp)

	if err := c.checkStatus(http.MethodGet, resp.StatusCode); err != nil {
		return nil, err
	}

	var wrapper struct {
		Agents []json.RawMessage `json:"agents"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&wrapper); err != nil {
		return nil, fmt.Errorf("%w: agent list: %v", errDecode, err)
	}

	agents := make([]Agent, 0, len(wrapper.Agents))

	for _, record := range wrapper.Agents {
		var agent Agent
		if err := agent.FromWire(record); err != nil {
			return nil, err
		}

		agents = append(agents, agent)
	}

	return agents, nil
}

// GetNetworkTests fetches the current list of network tests.
func (c *Client) GetNetworkTests(ctx context.Context) ([]NetworkTest, error) {
	resp, err := c.do(ctx, http.MethodGet, "/tests/network.json", nil)
	if err != nil {
		return nil, err
	}
	defer c.closeBody(resp)

	if err := c.checkStatus(http.MethodGet, resp.StatusCode); err != nil {
		return nil, err
	}

	var wrapper struct {
		Test []json.RawMessage `json:"test"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&wrapper); err != nil {
		return nil, fmt.Errorf("%w: test list: %v", errDecode, err)
	}

	tests := make([]NetworkTest, 0, len(wrapper.Test))

	for _, record := range wrapper.Test {
		test := NewNetworkTest()
		if err := test.FromWire(record); err != nil {
			return nil, err
		}

		tests = append(tests, *test)
	}

	return tests, nil
}

// CreateNetworkTest creates a new network test: true iff the service
// answered 201.
func (c *Client) CreateNetworkTest(ctx context.Context, test *NetworkTest) (bool, error) {
	payload, err := test.ToWire()
	if err != nil {
		return false, err
	}

	resp, err := c.do(ctx, http.MethodPost, "/tests/network/new.json", payload)
	if err != nil {
		return false, err
	}
	defer c.closeBody(resp)

	if err := c.checkStatus(http.MethodPost, resp.StatusCode); err != nil {
		return false, err
	}

	return resp.StatusCode == http.StatusCreated, nil
}

// DeleteNetworkTest deletes the test with the given id: true iff the
// service answered 204. A 404 also counts as success: the test is already
// gone, and the delete is idempotent.
func (c *Client) DeleteNetworkTest(ctx context.Context, id int) (bool, error) {
	resp, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/tests/network/%d/delete.json", id), nil)
	if err != nil {
		return false, err
	}
	defer c.closeBody(resp)

	if resp.StatusCode == http.StatusNotFound {
		return true, nil
	}

	if err := c.checkStatus(http.MethodDelete, resp.StatusCode); err != nil {
		return false, err
	}

	return resp.StatusCode == http.StatusNoContent, nil
}

func (c *Client) do(ctx context.Context, method, path string, body []byte) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.config.Endpoint+path, reader)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errConnectionFailed, err)
	}

	req.SetBasicAuth(c.config.AuthEmail, c.config.AuthToken)
	req.Header.Set("Accept", "application/json")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, classifyTransportError(err)
	}

	return resp, nil
}

func (c *Client) closeBody(resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		c.logger.Warn().Err(err).Msg("Failed to close response body")
	}
}

// checkStatus maps the service's error status codes onto the taxonomy in
// errors.go. A 404 is only tolerated by DeleteNetworkTest, which handles
// it before calling here.
func (c *Client) checkStatus(method string, code int) error {
	if code < http.StatusBadRequest {
		return nil
	}

	switch code {
	case http.StatusBadRequest:
		return fmt.Errorf("%w (status %d)", errMalformedRequest, code)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w (status %d)", errBadAuth, code)
	case http.StatusForbidden:
		return fmt.Errorf("%w (status %d)", errInsufficientPermissions, code)
	case http.StatusNotFound:
		return fmt.Errorf("%w (status %d)", errNotFound, code)
	case http.StatusMethodNotAllowed:
		return fmt.Errorf("%w: %s (status %d)", errMethodNotAllowed, method, code)
	case http.StatusNotAcceptable:
		return fmt.Errorf("%w (status %d)", errContentTypeMismatch, code)
	case http.StatusUnsupportedMediaType:
		return fmt.Errorf("%w (status %d)", errUnsupportedPayload, code)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w (status %d)", errRateLimited, code)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w (status %d)", errServerError, code)
	case http.StatusServiceUnavailable:
		return fmt.Errorf("%w (status %d)", errMaintenanceMode, code)
	default:
		return fmt.Errorf("%w: %d", errUnexpectedStatusCode, code)
	}
}

func classifyTransportError(err error) error {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %v", errRequestTimeout, err)
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) && strings.Contains(urlErr.Err.Error(), "redirects") {
		return fmt.Errorf("%w: %v", errTooManyRedirects, err)
	}

	return fmt.Errorf("%w: %v", errConnectionFailed, err)
}
