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

// Package sync reconciles endpoints flagged in the inventory with network
// tests on the monitor service: one pass per invocation, no local state.
package sync

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pathsynchq/pathsync/pkg/logger"
	"github.com/pathsynchq/pathsync/pkg/sync/integrations/thousandeyes"
)

const agentTypeEnterprise = "Enterprise"

// Syncer performs one reconciliation pass between the inventory and the
// monitor service.
type Syncer struct {
	monitor   MonitorAPI
	inventory InventoryAPI
	settings  Settings
	logger    logger.Logger

	// agentIDs caches the eligible agent list for the duration of a single
	// pass; it is reset at the start of every Sync call so agent changes
	// are picked up on the next run.
	agentIDs []int
}

// Result holds the per-item outcome counts of one pass. Item failures are
// isolated: they are counted here and logged, but do not fail the pass.
type Result struct {
	Deleted      int
	Created      int
	DeleteFailed int
	CreateFailed int
}

// NewSyncer wires the two API clients and the reconciliation settings
// together. Missing collaborators or settings are construction errors,
// raised before any network activity.
func NewSyncer(monitor MonitorAPI, inventory InventoryAPI, settings Settings, log logger.Logger) (*Syncer, error) {
	if monitor == nil {
		return nil, errNilMonitorClient
	}

	if inventory == nil {
		return nil, errNilInventoryClient
	}

	if log == nil {
		return nil, errNilLogger
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return &Syncer{
		monitor:   monitor,
		inventory: inventory,
		settings:  settings,
		logger:    log,
	}, nil
}

// Sync runs one reconciliation pass: preflight both APIs, delete owned
// tests whose endpoint is no longer flagged, create tests for flagged
// endpoints that have none. The returned error covers preflight and
// gather failures only; per-item failures are reported via the Result.
func (s *Syncer) Sync(ctx context.Context) (*Result, error) {
	runLog := s.logger.With().Str("run_id", uuid.New().String()).Logger()

	s.agentIDs = nil

	if err := s.checkAPIs(ctx); err != nil {
		runLog.Error().Err(err).Msg("Preflight failed, aborting run")
		return nil, err
	}

	tests, err := s.monitor.GetNetworkTests(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch network tests: %w", err)
	}

	owned := s.ownedTests(tests)

	desired, err := s.inventory.GetFlaggedEndpoints(ctx, s.settings.CustomProperty)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch flagged endpoints: %w", err)
	}

	runLog.Debug().
		Int("owned_tests", len(owned)).
		Int("flagged_endpoints", len(desired)).
		Msg("Gathered current state")

	result := &Result{}
	covered := make(map[string]bool, len(owned))

	s.pruneOrphans(ctx, &runLog, owned, desired, covered, result)
	s.createMissing(ctx, &runLog, desired, covered, result)

	runLog.Info().
		Int("created", result.Created).
		Int("deleted", result.Deleted).
		Int("create_failed", result.CreateFailed).
		Int("delete_failed", result.DeleteFailed).
		Msg("Reconciliation pass complete")

	return result, nil
}

// checkAPIs verifies both APIs are available before touching anything.
// The monitor service is probed first; an unavailable monitor means the
// inventory is never queried.
func (s *Syncer) checkAPIs(ctx context.Context) error {
	up, err := s.monitor.Status(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", errMonitorUnavailable, err)
	}

	if !up {
		return errMonitorUnavailable
	}

	up, err = s.inventory.Status(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", errInventoryUnavailable, err)
	}

	if !up {
		return errInventoryUnavailable
	}

	return nil
}

// ownedTests filters a test list down to the tests this tool manages:
// those whose name carries the configured prefix. Everything else belongs
// to other tooling and is never touched.
func (s *Syncer) ownedTests(tests []thousandeyes.NetworkTest) []thousandeyes.NetworkTest {
	owned := make([]thousandeyes.NetworkTest, 0, len(tests))

	for _, test := range tests {
		if strings.HasPrefix(test.Name, s.settings.TestPrefix) {
			owned = append(owned, test)
		}
	}

	return owned
}

// pruneOrphans deletes owned tests whose server is no longer flagged in
// the inventory. Servers that are still flagged are recorded in covered
// so the creation batch skips them. One failed deletion does not stop
// the rest of the batch.
func (s *Syncer) pruneOrphans(
	ctx context.Context,
	runLog *zerolog.Logger,
	owned []thousandeyes.NetworkTest,
	desired map[string]string,
	covered map[string]bool,
	result *Result,
) {
	for _, test := range owned {
		if _, flagged := desired[test.Server]; flagged {
			covered[test.Server] = true
			continue
		}

		if err := s.deleteTest(ctx, test.ID); err != nil {
			result.DeleteFailed++
			runLog.Error().Err(err).
				Int("test_id", test.ID).
				Str("test_name", test.Name).
				Str("server", test.Server).
				Msg("Failed to delete orphaned test")

			continue
		}

		result.Deleted++
		runLog.Info().
			Int("test_id", test.ID).
			Str("test_name", test.Name).
			Str("server", test.Server).
			Msg("Deleted orphaned test")
	}
}

// createMissing creates a test for every flagged endpoint that has no
// owned test yet. One failed creation does not stop the rest of the
// batch.
func (s *Syncer) createMissing(
	ctx context.Context,
	runLog *zerolog.Logger,
	desired map[string]string,
	covered map[string]bool,
	result *Result,
) {
	for address, name := range desired {
		if covered[address] {
			continue
		}

		if err := s.createTest(ctx, name, address); err != nil {
			result.CreateFailed++
			runLog.Error().Err(err).
				Str("endpoint", name).
				Str("server", address).
				Msg("Failed to create test")

			continue
		}

		result.Created++
		runLog.Info().
			Str("endpoint", name).
			Str("server", address).
			Msg("Created test")
	}
}

func (s *Syncer) deleteTest(ctx context.Context, id int) error {
	ok, err := s.monitor.DeleteNetworkTest(ctx, id)
	if err != nil {
		return err
	}

	if !ok {
		return errDeleteRejected
	}

	return nil
}

// createTest builds a test from the settings defaults plus the endpoint's
// name and address, fans it out to every currently eligible agent, and
// creates it on the monitor service.
func (s *Syncer) createTest(ctx context.Context, name, server string) error {
	agentIDs, err := s.eligibleAgentIDs(ctx)
	if err != nil {
		return err
	}

	test := thousandeyes.NewNetworkTest()
	test.Name = s.settings.TestPrefix + " " + name
	test.Server = server
	test.AlertsEnabled = s.settings.TestAlerts
	test.BandwidthMeasurements = false
	test.MTUMeasurements = true
	test.NetworkMeasurements = true
	test.BGPMeasurements = true
	test.Protocol = s.settings.TestProtocol
	test.Port = s.settings.TestPort
	test.Interval = s.settings.TestInterval

	for _, id := range agentIDs {
		test.Agents = append(test.Agents, thousandeyes.AgentRef{AgentID: id})
	}

	ok, err := s.monitor.CreateNetworkTest(ctx, test)
	if err != nil {
		return err
	}

	if !ok {
		return errCreateRejected
	}

	return nil
}

// eligibleAgentIDs resolves the agents new tests fan out to, fetching the
// agent list at most once per pass.
func (s *Syncer) eligibleAgentIDs(ctx context.Context) ([]int, error) {
	if s.agentIDs != nil {
		return s.agentIDs, nil
	}

	agents, err := s.monitor.GetAgents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch agents: %w", err)
	}

	s.agentIDs = eligibleAgentIDs(agents)

	return s.agentIDs, nil
}

// eligibleAgentIDs returns the ids of the agents new tests may be
// assigned to, preserving the order in which they were listed.
func eligibleAgentIDs(agents []thousandeyes.Agent) []int {
	ids := make([]int, 0, len(agents))

	for _, agent := range agents {
		if agent.Type == agentTypeEnterprise {
			ids = append(ids, agent.ID)
		}
	}

	return ids
}
