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

import (
	"github.com/pathsynchq/pathsync/pkg/logger"
	"github.com/pathsynchq/pathsync/pkg/sync/integrations/swis"
	"github.com/pathsynchq/pathsync/pkg/sync/integrations/thousandeyes"
)

// Settings are the reconciliation defaults applied to every test this
// tool creates. All fields are required; a missing field is fatal at
// startup.
type Settings struct {
	// CustomProperty names the inventory's custom boolean attribute that
	// flags an endpoint for monitoring.
	CustomProperty string `json:"custom_property"`
	TestProtocol   string `json:"test_protocol"`
	TestPort       int    `json:"test_port"`
	TestInterval   int    `json:"test_interval"`
	TestAlerts     bool   `json:"test_alerts"`
	// TestPrefix is the ownership marker: every test this tool manages is
	// named "<prefix> <endpoint name>", and only tests whose name starts
	// with the prefix are ever touched.
	TestPrefix string `json:"test_prefix"`
}

// Validate reports the first missing required setting.
func (s *Settings) Validate() error {
	switch {
	case s.CustomProperty == "":
		return errMissingCustomProperty
	case s.TestProtocol == "":
		return errMissingTestProtocol
	case s.TestPort == 0:
		return errMissingTestPort
	case s.TestInterval == 0:
		return errMissingTestInterval
	case s.TestPrefix == "":
		return errMissingTestPrefix
	}

	return nil
}

// Config is the full configuration file for the pathsync binary.
type Config struct {
	Logging   logger.Config       `json:"logging"`
	Monitor   thousandeyes.Config `json:"monitor"`
	Inventory swis.Config         `json:"inventory"`
	Sync      Settings            `json:"sync"`
}

// Validate checks every section; the first missing required field wins.
func (c *Config) Validate() error {
	if err := c.Monitor.Validate(); err != nil {
		return err
	}

	if err := c.Inventory.Validate(); err != nil {
		return err
	}

	return c.Sync.Validate()
}
