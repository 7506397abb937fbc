package cbcloud

import (
	"encoding/json"
	"time"
)

// AlertType classifies an alert record and determines which fields are
// present or absent in cross-version mapping.
type AlertType string

const (
	AlertTypeCBAnalytics       AlertType = "CB_ANALYTICS"
	AlertTypeWatchlist         AlertType = "WATCHLIST"
	AlertTypeDeviceControl     AlertType = "DEVICE_CONTROL"
	AlertTypeContainerRuntime  AlertType = "CONTAINER_RUNTIME"
	AlertTypeHostBasedFirewall AlertType = "HBFW"
)

// WorkflowStatus represents the v7 workflow status of an alert.
type WorkflowStatus string

const (
	WorkflowOpen       WorkflowStatus = "OPEN"
	WorkflowInProgress WorkflowStatus = "IN_PROGRESS"
	WorkflowClosed     WorkflowStatus = "CLOSED"
)

// Workflow is the v7 workflow block of an alert.
type Workflow struct {
	ChangeTimestamp time.Time      `json:"change_timestamp,omitzero"`
	ChangedBy       string         `json:"changed_by,omitempty"`
	ChangedByType   string         `json:"changed_by_type,omitempty"`
	ClosureReason   string         `json:"closure_reason,omitempty"`
	Status          WorkflowStatus `json:"status,omitempty"`
}

// Alert represents a v7 alert record. Commonly used fields are typed;
// the complete JSON document as returned by the API is retained and can be
// read with Raw or projected to the legacy v6 shape with ToLegacyJSON.
type Alert struct {
	ID           string    `json:"id"`
	OrgKey       string    `json:"org_key,omitempty"`
	Type         AlertType `json:"type,omitempty"`
	Severity     int       `json:"severity,omitempty"`
	ThreatID     string    `json:"threat_id,omitempty"`
	Reason       string    `json:"reason,omitempty"`
	RunState     string    `json:"run_state,omitempty"`
	DeviceID     int       `json:"device_id,omitempty"`
	DeviceName   string    `json:"device_name,omitempty"`
	DeviceOS     string    `json:"device_os,omitempty"`
	DevicePolicy string    `json:"device_policy,omitempty"`
	ProcessName  string    `json:"process_name,omitempty"`

	BackendTimestamp       time.Time `json:"backend_timestamp,omitzero"`
	BackendUpdateTimestamp time.Time `json:"backend_update_timestamp,omitzero"`
	FirstEventTimestamp    time.Time `json:"first_event_timestamp,omitzero"`
	LastEventTimestamp     time.Time `json:"last_event_timestamp,omitzero"`

	Workflow *Workflow `json:"workflow,omitempty"`

	raw map[string]any
}

// UnmarshalJSON decodes the typed fields and retains the full document.
func (a *Alert) UnmarshalJSON(data []byte) error {
	type alias Alert
	var aux alias
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	raw := make(map[string]any)
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*a = Alert(aux)
	a.raw = raw
	return nil
}

// Raw returns the alert as a JSON document. For alerts decoded from an API
// response this is the untouched v7 payload, including fields the Alert
// struct does not model; for alerts constructed in code it is derived from
// the typed fields.
func (a *Alert) Raw() map[string]any {
	if a.raw != nil {
		return a.raw
	}
	type alias Alert
	data, err := json.Marshal((*alias)(a))
	if err != nil {
		return nil
	}
	doc := make(map[string]any)
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil
	}
	return doc
}

// ToLegacyJSON projects the v7 alert document into the deprecated v6 shape.
// See ToLegacyAlert for the mapping rules.
func (a *Alert) ToLegacyJSON() (map[string]any, error) {
	return ToLegacyAlert(a.Raw())
}

// PageOptions configures pagination for search requests.
type PageOptions struct {
	Start int `json:"start"`
	Rows  int `json:"rows,omitempty"`
}

// AlertPage represents a page of alert search results.
type AlertPage struct {
	Results  []*Alert `json:"results"`
	NumFound int      `json:"num_found"`
}

// Device represents an endpoint registered with the platform.
type Device struct {
	ID              int       `json:"id"`
	Name            string    `json:"name,omitempty"`
	OS              string    `json:"os,omitempty"`
	OSVersion       string    `json:"os_version,omitempty"`
	PolicyID        int       `json:"policy_id,omitempty"`
	PolicyName      string    `json:"policy_name,omitempty"`
	Status          string    `json:"status,omitempty"`
	TargetPriority  string    `json:"target_priority,omitempty"`
	LastContactTime time.Time `json:"last_contact_time,omitzero"`
}

// DevicePage represents a page of device search results.
type DevicePage struct {
	Results  []*Device `json:"results"`
	NumFound int       `json:"num_found"`
}

// Observation represents one observation record from the investigate API.
type Observation struct {
	ObservationID   string    `json:"observation_id"`
	ObservationType string    `json:"observation_type,omitempty"`
	AlertID         []string  `json:"alert_id,omitempty"`
	DeviceID        int       `json:"device_id,omitempty"`
	DeviceName      string    `json:"device_name,omitempty"`
	ProcessName     string    `json:"process_name,omitempty"`
	ProcessGUID     string    `json:"process_guid,omitempty"`
	ProcessPID      []int     `json:"process_pid,omitempty"`
	RuleID          string    `json:"rule_id,omitempty"`
	BackendTimestamp time.Time `json:"backend_timestamp,omitzero"`
}
