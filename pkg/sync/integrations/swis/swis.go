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

// Package swis queries the inventory server over its Information Service
// JSON endpoint. The inventory is the source of truth for which endpoints
// should have a monitoring test.
package swis

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/pathsynchq/pathsync/pkg/logger"
)

const (
	// The information service listens on a fixed port on the inventory host.
	queryPort = 17778
	queryPath = "/SolarWinds/InformationService/v3/Json/Query"

	defaultTimeout = 30 * time.Second
)

// Config holds the connection settings for the inventory query API.
// Inventory servers commonly run with a self-signed certificate, hence
// the InsecureSkipVerify knob.
type Config struct {
	Host               string `json:"host"`
	Username           string `json:"username"`
	Password           string `json:"password"`
	InsecureSkipVerify bool   `json:"insecure_skip_verify"`
}

// Validate reports whether all required connection settings are present.
func (c *Config) Validate() error {
	if c.Host == "" || c.Username == "" || c.Password == "" {
		return errMissingConnectionSettings
	}

	return nil
}

// Client issues structured queries against the inventory server.
type Client struct {
	config     Config
	queryURL   string
	httpClient HTTPClient
	logger     logger.Logger
}

// HTTPClient defines the interface for making HTTP requests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// NewClient creates an inventory client. Missing connection settings are
// a construction error, raised before any network activity.
func NewClient(config Config, log logger.Logger) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	//nolint:gosec // self-signed inventory certs are the common case
	transport := &http.Transport{
		TLSClientConfig: &tls.Config{InsecureSkipVerify: config.InsecureSkipVerify},
	}

	return &Client{
		config:     config,
		queryURL:   fmt.Sprintf("https://%s:%d%s", config.Host, queryPort, queryPath),
		httpClient: &http.Client{Timeout: defaultTimeout, Transport: transport},
		logger:     log,
	}, nil
}

// SetHTTPClient replaces the underlying transport.
func (c *Client) SetHTTPClient(h HTTPClient) {
	c.httpClient = h
}

// SetQueryURL overrides the derived query URL. Intended for tests.
func (c *Client) SetQueryURL(url string) {
	c.queryURL = url
}

type queryRequest struct {
	Query      string                 `json:"query"`
	Parameters map[string]interface{} `json:"parameters"`
}

type queryResponse struct {
	Results []json.RawMessage `json:"results"`
}

// Status reports whether the inventory query API is reachable. The server
// has no health endpoint, so a minimal one-row query acts as the probe.
func (c *Client) Status(ctx context.Context) (bool, error) {
	_, err := c.query(ctx, "SELECT TOP 1 NodeID FROM Orion.Nodes", nil)
	if err != nil {
		return false, err
	}

	return true, nil
}

// GetFlaggedEndpoints returns the endpoints whose configured custom
// boolean property is set, as a display-name-by-address mapping. A later
// row for the same address wins; rows without an address are skipped.
func (c *Client) GetFlaggedEndpoints(ctx context.Context, customProperty string) (map[string]string, error) {
	if customProperty == "" {
		return nil, errMissingCustomProperty
	}

	// Column names cannot be parameterized, so the property name is part
	// of the query text.
	query := fmt.Sprintf(
		"SELECT Caption, IPAddress FROM Orion.Nodes WHERE Nodes.CustomProperties.%s = TRUE",
		customProperty)

	resp, err := c.query(ctx, query, nil)
	if err != nil {
		return nil, err
	}

	endpoints := make(map[string]string, len(resp.Results))

	for _, record := range resp.Results {
		var row struct {
			Caption   string `json:"Caption"`
			IPAddress string `json:"IPAddress"`
		}

		if err := json.Unmarshal(record, &row); err != nil {
			return nil, fmt.Errorf("%w: %v", errDecode, err)
		}

		if row.IPAddress == "" {
			c.logger.Debug().Str("caption", row.Caption).Msg("Skipping flagged endpoint without an address")
			continue
		}

		endpoints[row.IPAddress] = row.Caption
	}

	return endpoints, nil
}

func (c *Client) query(ctx context.Context, query string, parameters map[string]interface{}) (*queryResponse, error) {
	if parameters == nil {
		parameters = map[string]interface{}{}
	}

	body, err := json.Marshal(queryRequest{Query: query, Parameters: parameters})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errQueryFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.queryURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errQueryFailed, err)
	}

	req.SetBasicAuth(c.config.Username, c.config.Password)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errQueryFailed, err)
	}
	defer c.closeBody(resp)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", errUnexpectedStatusCode, resp.StatusCode)
	}

	var decoded queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("%w: %v", errDecode, err)
	}

	return &decoded, nil
}

func (c *Client) closeBody(resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		c.logger.Warn().Err(err).Msg("Failed to close response body")
	}
}
