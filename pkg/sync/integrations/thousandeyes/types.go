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
	"fmt"
	"strings"
	"time"
)

// wireTimeLayout is the timestamp format used by the monitor service API.
const wireTimeLayout = "2006-01-02 15:04:05"

const protocolTCP = "TCP"

// wireTime parses the API's "YYYY-MM-DD HH:MM:SS" timestamps.
type wireTime struct {
	time.Time
}

func (t *wireTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	parsed, err := time.Parse(wireTimeLayout, s)
	if err != nil {
		return err
	}

	t.Time = parsed

	return nil
}

func (t wireTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Format(wireTimeLayout))
}

// wireBool accepts both JSON booleans and the API's 0/1 integer flags.
type wireBool bool

func (b *wireBool) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case "true":
		*b = true
	case "false":
		*b = false
	default:
		var n int
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}

		*b = n != 0
	}

	return nil
}

// AgentRef references an agent by id when assigning it to a test.
type AgentRef struct {
	AgentID int `json:"agentId"`
}

// NetworkTest is an agent-to-server network test on the monitor service.
type NetworkTest struct {
	ID                    int
	Name                  string
	Enabled               bool
	AlertsEnabled         bool
	Protocol              string
	Port                  int
	SavedEvent            int
	Server                string
	URL                   string
	BandwidthMeasurements bool
	MTUMeasurements       bool
	NetworkMeasurements   bool
	BGPMeasurements       bool
	Interval              int
	LiveShare             int
	ModifiedDate          time.Time
	ModifiedBy            string
	CreatedDate           time.Time
	CreatedBy             string
	Agents                []AgentRef
}

// NewNetworkTest returns a test with the documented defaults: TCP on port
// 80, all measurement flags off, no agents assigned.
func NewNetworkTest() *NetworkTest {
	return &NetworkTest{
		Protocol: protocolTCP,
		Port:     80,
	}
}

// networkTestWire mirrors the API record with pointer fields so that
// partial records only overwrite the fields they carry.
type networkTestWire struct {
	TestID                *int       `json:"testId"`
	TestName              *string    `json:"testName"`
	Enabled               *wireBool  `json:"enabled"`
	AlertsEnabled         *wireBool  `json:"alertsEnabled"`
	Protocol              *string    `json:"protocol"`
	Port                  *int       `json:"port"`
	SavedEvent            *int       `json:"savedEvent"`
	Server                *string    `json:"server"`
	URL                   *string    `json:"url"`
	BandwidthMeasurements *wireBool  `json:"bandwidthMeasurements"`
	MTUMeasurements       *wireBool  `json:"mtuMeasurements"`
	NetworkMeasurements   *wireBool  `json:"networkMeasurements"`
	BGPMeasurements       *wireBool  `json:"bgpMeasurements"`
	Interval              *int       `json:"interval"`
	LiveShare             *int       `json:"liveShare"`
	ModifiedDate          *wireTime  `json:"modifiedDate"`
	ModifiedBy            *string    `json:"modifiedBy"`
	CreatedDate           *wireTime  `json:"createdDate"`
	CreatedBy             *string    `json:"createdBy"`
	Agents                []AgentRef `json:"agents"`
}

func (w *networkTestWire) apply(t *NetworkTest) {
	if w.TestID != nil {
		t.ID = *w.TestID
	}

	if w.TestName != nil {
		t.Name = *w.TestName
	}

	if w.Enabled != nil {
		t.Enabled = bool(*w.Enabled)
	}

	if w.AlertsEnabled != nil {
		t.AlertsEnabled = bool(*w.AlertsEnabled)
	}

	if w.Protocol != nil {
		t.Protocol = *w.Protocol
	}

	if w.Port != nil {
		t.Port = *w.Port
	}

	if w.SavedEvent != nil {
		t.SavedEvent = *w.SavedEvent
	}

	if w.Server != nil {
		// The API reports targets as "host:port"; only the host part is
		// the reconciliation key.
		host, _, _ := strings.Cut(*w.Server, ":")
		t.Server = host
	}

	if w.URL != nil {
		t.URL = *w.URL
	}

	if w.BandwidthMeasurements != nil {
		t.BandwidthMeasurements = bool(*w.BandwidthMeasurements)
	}

	if w.MTUMeasurements != nil {
		t.MTUMeasurements = bool(*w.MTUMeasurements)
	}

	if w.NetworkMeasurements != nil {
		t.NetworkMeasurements = bool(*w.NetworkMeasurements)
	}

	if w.BGPMeasurements != nil {
		t.BGPMeasurements = bool(*w.BGPMeasurements)
	}

	if w.Interval != nil {
		t.Interval = *w.Interval
	}

	if w.LiveShare != nil {
		t.LiveShare = *w.LiveShare
	}

	if w.ModifiedDate != nil {
		t.ModifiedDate = w.ModifiedDate.Time
	}

	if w.ModifiedBy != nil {
		t.ModifiedBy = *w.ModifiedBy
	}

	if w.CreatedDate != nil {
		t.CreatedDate = w.CreatedDate.Time
	}

	if w.CreatedBy != nil {
		t.CreatedBy = *w.CreatedBy
	}

	if w.Agents != nil {
		t.Agents = append([]AgentRef(nil), w.Agents...)
	}
}

// FromWire populates the test from an API record. Fields absent from the
// record keep their current values.
func (t *NetworkTest) FromWire(data []byte) error {
	var w networkTestWire
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("%w: network test: %v", errDecode, err)
	}

	w.apply(t)

	return nil
}

// createPayload is the subset of fields the create endpoint accepts.
// Boolean flags go over the wire as 0/1 integers, and port is only sent
// for TCP tests; the create endpoint rejects a port on other protocols.
type createPayload struct {
	TestName              string     `json:"testName"`
	Server                string     `json:"server"`
	Interval              int        `json:"interval"`
	AlertsEnabled         int        `json:"alertsEnabled"`
	BandwidthMeasurements int        `json:"bandwidthMeasurements"`
	BGPMeasurements       int        `json:"bgpMeasurements"`
	MTUMeasurements       int        `json:"mtuMeasurements"`
	Protocol              string     `json:"protocol"`
	Agents                []AgentRef `json:"agents"`
	Port                  *int       `json:"port,omitempty"`
}

func boolToFlag(b bool) int {
	if b {
		return 1
	}

	return 0
}

// ToWire encodes the test for the create endpoint.
func (t *NetworkTest) ToWire() ([]byte, error) {
	payload := createPayload{
		TestName:              t.Name,
		Server:                t.Server,
		Interval:              t.Interval,
		AlertsEnabled:         boolToFlag(t.AlertsEnabled),
		BandwidthMeasurements: boolToFlag(t.BandwidthMeasurements),
		BGPMeasurements:       boolToFlag(t.BGPMeasurements),
		MTUMeasurements:       boolToFlag(t.MTUMeasurements),
		Protocol:              t.Protocol,
		Agents:                t.Agents,
	}

	if t.Protocol == protocolTCP {
		port := t.Port
		payload.Port = &port
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: network test: %v", errDecode, err)
	}

	return data, nil
}

// Agent is a monitoring agent on the monitor service.
type Agent struct {
	ID                int
	Name              string
	Type              string
	CountryID         string
	Location          string
	Prefix            string
	Enabled           bool
	Network           string
	LastSeen          time.Time
	State             string
	Utilization       int
	VerifySSLCerts    bool
	KeepBrowserCache  bool
	IPAddresses       []string
	PublicIPAddresses []string
}

type agentWire struct {
	AgentID               *int      `json:"agentId"`
	AgentName             *string   `json:"agentName"`
	AgentType             *string   `json:"agentType"`
	CountryID             *string   `json:"countryId"`
	Location              *string   `json:"location"`
	Prefix                *string   `json:"prefix"`
	Enabled               *wireBool `json:"enabled"`
	Network               *string   `json:"network"`
	LastSeen              *wireTime `json:"lastSeen"`
	AgentState            *string   `json:"agentState"`
	Utilization           *int      `json:"utilization"`
	VerifySSLCertificates *wireBool `json:"verifySslCertificates"`
	KeepBrowserCache      *wireBool `json:"keepBrowserCache"`
	IPAddresses           []string  `json:"ipAddresses"`
	PublicIPAddresses     []string  `json:"publicIpAddresses"`
}

func (w *agentWire) apply(a *Agent) {
	if w.AgentID != nil {
		a.ID = *w.AgentID
	}

	if w.AgentName != nil {
		a.Name = *w.AgentName
	}

	if w.AgentType != nil {
		a.Type = *w.AgentType
	}

	if w.CountryID != nil {
		a.CountryID = *w.CountryID
	}

	if w.Location != nil {
		a.Location = *w.Location
	}

	if w.Prefix != nil {
		a.Prefix = *w.Prefix
	}

	if w.Enabled != nil {
		a.Enabled = bool(*w.Enabled)
	}

	if w.Network != nil {
		a.Network = *w.Network
	}

	if w.LastSeen != nil {
		a.LastSeen = w.LastSeen.Time
	}

	if w.AgentState != nil {
		a.State = *w.AgentState
	}

	if w.Utilization != nil {
		a.Utilization = *w.Utilization
	}

	if w.VerifySSLCertificates != nil {
		a.VerifySSLCerts = bool(*w.VerifySSLCertificates)
	}

	if w.KeepBrowserCache != nil {
		a.KeepBrowserCache = bool(*w.KeepBrowserCache)
	}

	if w.IPAddresses != nil {
		a.IPAddresses = append([]string(nil), w.IPAddresses...)
	}

	if w.PublicIPAddresses != nil {
		a.PublicIPAddresses = append([]string(nil), w.PublicIPAddresses...)
	}
}

// FromWire populates the agent from an API record. Fields absent from the
// record keep their current values.
func (a *Agent) FromWire(data []byte) error {
	var w agentWire
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("%w: agent: %v", errDecode, err)
	}

	w.apply(a)

	return nil
}
