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

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNetworkTestDefaults(t *testing.T) {
	test := NewNetworkTest()

	assert.Equal(t, "TCP", test.Protocol)
	assert.Equal(t, 80, test.Port)
	assert.False(t, test.AlertsEnabled)
	assert.False(t, test.BandwidthMeasurements)
	assert.False(t, test.MTUMeasurements)
	assert.False(t, test.NetworkMeasurements)
	assert.False(t, test.BGPMeasurements)
	assert.Empty(t, test.Agents)
}

func TestNetworkTestFromWire(t *testing.T) {
	record := `{
		"testId": 1234,
		"testName": "SE core-router-1",
		"enabled": 1,
		"alertsEnabled": 0,
		"protocol": "TCP",
		"port": 443,
		"savedEvent": 0,
		"server": "10.1.2.3:443",
		"bandwidthMeasurements": 0,
		"mtuMeasurements": 1,
		"networkMeasurements": 1,
		"bgpMeasurements": 1,
		"interval": 300,
		"liveShare": 0,
		"createdDate": "2016-03-01 09:30:00",
		"createdBy": "Path Sync",
		"modifiedDate": "2016-03-02 10:00:00",
		"modifiedBy": "Path Sync"
	}`

	test := NewNetworkTest()
	require.NoError(t, test.FromWire([]byte(record)))

	assert.Equal(t, 1234, test.ID)
	assert.Equal(t, "SE core-router-1", test.Name)
	assert.True(t, test.Enabled)
	assert.False(t, test.AlertsEnabled)
	assert.Equal(t, "TCP", test.Protocol)
	assert.Equal(t, 443, test.Port)
	assert.Equal(t, "10.1.2.3", test.Server, "server keeps only the host part")
	assert.False(t, test.BandwidthMeasurements)
	assert.True(t, test.MTUMeasurements)
	assert.True(t, test.NetworkMeasurements)
	assert.True(t, test.BGPMeasurements)
	assert.Equal(t, 300, test.Interval)
	assert.Equal(t, time.Date(2016, 3, 1, 9, 30, 0, 0, time.UTC), test.CreatedDate)
	assert.Equal(t, "Path Sync", test.CreatedBy)
}

func TestNetworkTestFromWirePartialRecord(t *testing.T) {
	test := NewNetworkTest()
	test.Name = "existing"
	test.Server = "10.0.0.1"
	test.Interval = 120

	// A record carrying only an id must not null out the other fields.
	require.NoError(t, test.FromWire([]byte(`{"testId": 99}`)))

	assert.Equal(t, 99, test.ID)
	assert.Equal(t, "existing", test.Name)
	assert.Equal(t, "10.0.0.1", test.Server)
	assert.Equal(t, 120, test.Interval)
	assert.Equal(t, "TCP", test.Protocol)
	assert.Equal(t, 80, test.Port)
}

func TestNetworkTestFromWireBadTimestamp(t *testing.T) {
	test := NewNetworkTest()

	err := test.FromWire([]byte(`{"createdDate": "03/01/2016 09:30"}`))
	require.ErrorIs(t, err, errDecode)
}

func TestNetworkTestFromWireBadValueType(t *testing.T) {
	test := NewNetworkTest()

	err := test.FromWire([]byte(`{"port": "not-a-number"}`))
	require.ErrorIs(t, err, errDecode)
}

func TestToWirePortQuirk(t *testing.T) {
	t.Run("TCP includes port", func(t *testing.T) {
		test := NewNetworkTest()
		test.Name = "SE edge-1"
		test.Server = "192.0.2.10"
		test.Protocol = "TCP"
		test.Port = 443

		data, err := test.ToWire()
		require.NoError(t, err)

		var payload map[string]interface{}
		require.NoError(t, json.Unmarshal(data, &payload))
		assert.InDelta(t, 443, payload["port"], 0)
	})

	t.Run("UDP omits port entirely", func(t *testing.T) {
		test := NewNetworkTest()
		test.Name = "SE edge-1"
		test.Server = "192.0.2.10"
		test.Protocol = "UDP"
		test.Port = 443

		data, err := test.ToWire()
		require.NoError(t, err)

		var payload map[string]interface{}
		require.NoError(t, json.Unmarshal(data, &payload))
		_, present := payload["port"]
		assert.False(t, present)
	})
}

func TestToWireFlagEncoding(t *testing.T) {
	test := NewNetworkTest()
	test.Name = "SE edge-1"
	test.Server = "192.0.2.10"
	test.AlertsEnabled = true
	test.MTUMeasurements = true
	test.BGPMeasurements = true
	test.Agents = []AgentRef{{AgentID: 5}, {AgentID: 9}}

	data, err := test.ToWire()
	require.NoError(t, err)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &payload))

	assert.InDelta(t, 1, payload["alertsEnabled"], 0)
	assert.InDelta(t, 0, payload["bandwidthMeasurements"], 0)
	assert.InDelta(t, 1, payload["mtuMeasurements"], 0)
	assert.InDelta(t, 1, payload["bgpMeasurements"], 0)

	// The create contract has no networkMeasurements key.
	_, present := payload["networkMeasurements"]
	assert.False(t, present)

	assert.Equal(t, "SE edge-1", payload["testName"])
	assert.Len(t, payload["agents"], 2)
}

func TestNetworkTestWireRoundTrip(t *testing.T) {
	original := NewNetworkTest()
	original.Name = "SE dns-resolver"
	original.Server = "198.51.100.53"
	original.Protocol = "TCP"
	original.Port = 53
	original.Interval = 600
	original.AlertsEnabled = true
	original.MTUMeasurements = true
	original.BGPMeasurements = true
	original.Agents = []AgentRef{{AgentID: 11}}

	data, err := original.ToWire()
	require.NoError(t, err)

	restored := NewNetworkTest()
	require.NoError(t, restored.FromWire(data))

	assert.Equal(t, original.Name, restored.Name)
	assert.Equal(t, original.Server, restored.Server)
	assert.Equal(t, original.Protocol, restored.Protocol)
	assert.Equal(t, original.Port, restored.Port, "port survives the trip for TCP tests")
	assert.Equal(t, original.Interval, restored.Interval)
	assert.Equal(t, original.AlertsEnabled, restored.AlertsEnabled)
	assert.Equal(t, original.BandwidthMeasurements, restored.BandwidthMeasurements)
	assert.Equal(t, original.MTUMeasurements, restored.MTUMeasurements)
	assert.Equal(t, original.BGPMeasurements, restored.BGPMeasurements)
	assert.Equal(t, original.Agents, restored.Agents)
}

func TestAgentFromWire(t *testing.T) {
	record := `{
		"agentId": 42,
		"agentName": "lon-dc1",
		"agentType": "Enterprise",
		"countryId": "GB",
		"location": "London, England",
		"enabled": true,
		"network": "AS65000",
		"lastSeen": "2016-03-05 17:45:10",
		"agentState": "Online",
		"utilization": 25,
		"verifySslCertificates": 1,
		"keepBrowserCache": 0,
		"ipAddresses": ["10.9.8.7"],
		"publicIpAddresses": ["203.0.113.9", "203.0.113.10"]
	}`

	var agent Agent
	require.NoError(t, agent.FromWire([]byte(record)))

	assert.Equal(t, 42, agent.ID)
	assert.Equal(t, "lon-dc1", agent.Name)
	assert.Equal(t, "Enterprise", agent.Type)
	assert.Equal(t, "GB", agent.CountryID)
	assert.True(t, agent.Enabled)
	assert.Equal(t, time.Date(2016, 3, 5, 17, 45, 10, 0, time.UTC), agent.LastSeen)
	assert.Equal(t, "Online", agent.State)
	assert.Equal(t, 25, agent.Utilization)
	assert.True(t, agent.VerifySSLCerts)
	assert.False(t, agent.KeepBrowserCache)
	assert.Equal(t, []string{"10.9.8.7"}, agent.IPAddresses)
	assert.Equal(t, []string{"203.0.113.9", "203.0.113.10"}, agent.PublicIPAddresses)
}

func TestAgentFromWirePartialRecord(t *testing.T) {
	agent := Agent{Name: "keep-me", IPAddresses: []string{"10.0.0.1"}}

	require.NoError(t, agent.FromWire([]byte(`{"agentId": 7}`)))

	assert.Equal(t, 7, agent.ID)
	assert.Equal(t, "keep-me", agent.Name)
	assert.Equal(t, []string{"10.0.0.1"}, agent.IPAddresses)
}

func TestAgentFromWireReplacesListFields(t *testing.T) {
	agent := Agent{IPAddresses: []string{"10.0.0.1"}}

	require.NoError(t, agent.FromWire([]byte(`{"ipAddresses": ["10.0.0.2"]}`)))

	// List-valued fields land in fresh containers, not appended to stale ones.
	assert.Equal(t, []string{"10.0.0.2"}, agent.IPAddresses)
}
