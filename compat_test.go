package cbcloud_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cbcgo/cbcloud"
)

// v7AlertDoc builds a representative v7 alert document. Callers mutate the
// result to shape per-type fixtures.
func v7AlertDoc(alertType string) map[string]any {
	return map[string]any{
		"id":                       "6f1173f5-f921-8e11-2160-edf42b799333",
		"org_key":                  "ABCD1234",
		"type":                     alertType,
		"severity":                 float64(7),
		"threat_id":                "B0RG",
		"reason":                   "A known virus was detected running.",
		"run_state":                "RAN",
		"backend_timestamp":        "2023-09-19T21:00:00.000Z",
		"backend_update_timestamp": "2023-09-19T21:30:00.000Z",
		"first_event_timestamp":    "2023-09-19T20:59:00.000Z",
		"last_event_timestamp":     "2023-09-19T20:59:30.000Z",
		"device_id":                float64(123),
		"device_name":              "WIN-HOST-01",
		"device_os":                "WINDOWS",
		"device_policy":            "Standard",
		"device_policy_id":         float64(42),
		"device_target_value":      "MEDIUM",
		"process_name":             `c:\windows\system32\svchost.exe`,
		"process_sha256":           "aa11bb22",
		"process_reputation":       "KNOWN_MALWARE",
		"primary_event_id":         "evt-1",
		"alert_notes_present":      false,
		"workflow": map[string]any{
			"change_timestamp": "2023-09-19T21:00:00.000Z",
			"changed_by":       "ALERT_CREATION",
			"changed_by_type":  "SYSTEM",
			"closure_reason":   "NO_REASON",
			"status":           "OPEN",
		},
	}
}

func TestToLegacyAlert_Renames(t *testing.T) {
	legacy, err := cbcloud.ToLegacyAlert(v7AlertDoc("CB_ANALYTICS"))
	require.NoError(t, err)

	renames := map[string]string{
		"backend_timestamp":        "create_time",
		"backend_update_timestamp": "last_update_time",
		"first_event_timestamp":    "first_event_time",
		"last_event_timestamp":     "last_event_time",
		"device_policy":            "policy_name",
		"device_policy_id":         "policy_id",
		"device_target_value":      "target_value",
		"process_sha256":           "threat_cause_actor_sha256",
		"process_reputation":       "threat_cause_reputation",
		"primary_event_id":         "created_by_event_id",
		"alert_notes_present":      "notes_present",
	}

	source := v7AlertDoc("CB_ANALYTICS")
	for v7Name, v6Name := range renames {
		assert.NotContains(t, legacy, v7Name)
		require.Contains(t, legacy, v6Name)
		assert.Equal(t, source[v7Name], legacy[v6Name], "value for %s", v6Name)
	}
}

func TestToLegacyAlert_PreservesUnmappedValues(t *testing.T) {
	legacy, err := cbcloud.ToLegacyAlert(v7AlertDoc("CB_ANALYTICS"))
	require.NoError(t, err)

	source := v7AlertDoc("CB_ANALYTICS")
	for _, key := range []string{"id", "org_key", "type", "severity", "threat_id", "reason", "run_state", "device_id", "device_name", "device_os"} {
		assert.Equal(t, source[key], legacy[key], "value for %s", key)
	}
}

func TestToLegacyAlert_LegacyAlertID(t *testing.T) {
	legacy, err := cbcloud.ToLegacyAlert(v7AlertDoc("WATCHLIST"))
	require.NoError(t, err)

	assert.Equal(t, "6f1173f5-f921-8e11-2160-edf42b799333", legacy["id"])
	assert.Equal(t, "6f1173f5-f921-8e11-2160-edf42b799333", legacy["legacy_alert_id"])
}

func TestToLegacyAlert_DropSets(t *testing.T) {
	baseDrops := []string{
		"alert_classification",
		"category",
		"comment",
		"group_details",
		"threat_activity_c2",
		"threat_cause_threat_category",
		"threat_cause_actor_process_pid",
	}
	perType := map[string][]string{
		"CB_ANALYTICS": {
			"blocked_threat_category",
			"kill_chain_status",
			"not_blocked_threat_category",
			"threat_activity_c2",
			"threat_activity_dlp",
			"threat_activity_phish",
			"threat_cause_vector",
		},
		"DEVICE_CONTROL":    {"threat_cause_vector"},
		"CONTAINER_RUNTIME": {"workload_id", "target_value"},
		"WATCHLIST":         {"count", "document_guid", "threat_cause_vector", "threat_indicators"},
	}

	for alertType, drops := range perType {
		t.Run(alertType, func(t *testing.T) {
			doc := v7AlertDoc(alertType)
			// Inject every dropped field to verify the projection removes
			// them rather than relying on the server omitting them.
			for _, field := range append(append([]string{}, baseDrops...), drops...) {
				doc[field] = "stale"
			}

			legacy, err := cbcloud.ToLegacyAlert(doc)
			require.NoError(t, err)

			for _, field := range baseDrops {
				assert.NotContains(t, legacy, field, "base drop %s", field)
			}
			for _, field := range drops {
				assert.NotContains(t, legacy, field, "%s drop %s", alertType, field)
			}
		})
	}
}

func TestToLegacyAlert_DropSetsApplyOnlyToMatchingType(t *testing.T) {
	// kill_chain_status is only dropped for CB_ANALYTICS; a watchlist alert
	// carrying it keeps it.
	doc := v7AlertDoc("WATCHLIST")
	doc["kill_chain_status"] = []any{"INSTALL_RUN"}

	legacy, err := cbcloud.ToLegacyAlert(doc)
	require.NoError(t, err)
	assert.Equal(t, []any{"INSTALL_RUN"}, legacy["kill_chain_status"])
}

func TestToLegacyAlert_ContainerRuntimeTargetValue(t *testing.T) {
	// device_target_value renames to target_value, which container runtime
	// alerts then drop: the field must not survive under either name.
	doc := v7AlertDoc("CONTAINER_RUNTIME")

	legacy, err := cbcloud.ToLegacyAlert(doc)
	require.NoError(t, err)
	assert.NotContains(t, legacy, "target_value")
	assert.NotContains(t, legacy, "device_target_value")
}

func TestToLegacyAlert_HBFWPureCopy(t *testing.T) {
	doc := v7AlertDoc("HBFW")
	doc["rule_group_name"] = "Default Rule Group"

	legacy, err := cbcloud.ToLegacyAlert(doc)
	require.NoError(t, err)

	assert.Equal(t, "Default Rule Group", legacy["rule_group_name"])
	assert.Equal(t, "HBFW", legacy["type"])
	// base drops still apply
	doc2 := v7AlertDoc("HBFW")
	doc2["category"] = "THREAT"
	legacy2, err := cbcloud.ToLegacyAlert(doc2)
	require.NoError(t, err)
	assert.NotContains(t, legacy2, "category")
}

func TestToLegacyAlert_ProcessNameShims(t *testing.T) {
	t.Run("windows path reduced to file name", func(t *testing.T) {
		legacy, err := cbcloud.ToLegacyAlert(v7AlertDoc("CB_ANALYTICS"))
		require.NoError(t, err)
		assert.Equal(t, "svchost.exe", legacy["process_name"])
	})

	t.Run("unix path reduced to file name", func(t *testing.T) {
		doc := v7AlertDoc("CB_ANALYTICS")
		doc["process_name"] = "/usr/bin/curl"
		legacy, err := cbcloud.ToLegacyAlert(doc)
		require.NoError(t, err)
		assert.Equal(t, "curl", legacy["process_name"])
	})

	t.Run("actor name truncated", func(t *testing.T) {
		doc := v7AlertDoc("CB_ANALYTICS")
		doc["process_name"] = `c:\program files\` + strings.Repeat("verylongsegment/", 8) + "tool.exe"
		legacy, err := cbcloud.ToLegacyAlert(doc)
		require.NoError(t, err)

		actor, ok := legacy["threat_cause_actor_name"].(string)
		require.True(t, ok)
		assert.Len(t, []rune(actor), 64)
		assert.True(t, strings.HasPrefix(doc["process_name"].(string), actor))
	})

	t.Run("short actor name kept whole", func(t *testing.T) {
		doc := v7AlertDoc("CB_ANALYTICS")
		doc["process_name"] = "/usr/bin/curl"
		legacy, err := cbcloud.ToLegacyAlert(doc)
		require.NoError(t, err)
		assert.Equal(t, "/usr/bin/curl", legacy["threat_cause_actor_name"])
	})
}

func TestToLegacyAlert_Workflow(t *testing.T) {
	tests := []struct {
		status    string
		wantState string
	}{
		{"OPEN", "OPEN"},
		{"IN_PROGRESS", "OPEN"},
		{"CLOSED", "DISMISSED"},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			doc := v7AlertDoc("CB_ANALYTICS")
			doc["workflow"] = map[string]any{
				"change_timestamp": "2023-09-19T21:00:00.000Z",
				"changed_by":       "admin@example.com",
				"changed_by_type":  "USER",
				"closure_reason":   "RESOLVED",
				"status":           tt.status,
			}

			legacy, err := cbcloud.ToLegacyAlert(doc)
			require.NoError(t, err)

			wf, ok := legacy["workflow"].(map[string]any)
			require.True(t, ok, "workflow should be an object")
			assert.Equal(t, tt.wantState, wf["state"])
			assert.Equal(t, "RESOLVED", wf["remediation"])
			assert.Equal(t, "2023-09-19T21:00:00.000Z", wf["last_update_time"])
			assert.Equal(t, "admin@example.com", wf["changed_by"])
			assert.NotContains(t, wf, "status")
			assert.NotContains(t, wf, "change_timestamp")
			assert.NotContains(t, wf, "closure_reason")
		})
	}
}

func TestToLegacyAlert_NestedObjects(t *testing.T) {
	doc := v7AlertDoc("CB_ANALYTICS")
	doc["netconn_info"] = map[string]any{
		"netconn_remote_ip": "1.2.3.4",
		"comment":           "stale",
	}

	legacy, err := cbcloud.ToLegacyAlert(doc)
	require.NoError(t, err)

	nested, ok := legacy["netconn_info"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "1.2.3.4", nested["remote_ip"])
	assert.NotContains(t, nested, "netconn_remote_ip")
	assert.NotContains(t, nested, "comment")
}

func TestToLegacyAlert_UnknownTypePassthrough(t *testing.T) {
	doc := v7AlertDoc("INTRUSION_DETECTION_SYSTEM")
	doc["category"] = "stale"         // base drop still applies
	doc["kill_chain_status"] = "keep" // per-type drops do not

	legacy, err := cbcloud.ToLegacyAlert(doc)
	require.NoError(t, err)

	assert.Equal(t, "INTRUSION_DETECTION_SYSTEM", legacy["type"])
	assert.NotContains(t, legacy, "category")
	assert.Equal(t, "keep", legacy["kill_chain_status"])
	assert.Contains(t, legacy, "create_time", "renames still apply")
	assert.NotContains(t, legacy, "backend_timestamp")
}

func TestToLegacyAlert_MissingDiscriminator(t *testing.T) {
	t.Run("absent type", func(t *testing.T) {
		doc := v7AlertDoc("CB_ANALYTICS")
		delete(doc, "type")

		_, err := cbcloud.ToLegacyAlert(doc)
		require.Error(t, err)

		var typeErr *cbcloud.UnsupportedAlertTypeError
		require.ErrorAs(t, err, &typeErr)
	})

	t.Run("non-string type", func(t *testing.T) {
		doc := v7AlertDoc("CB_ANALYTICS")
		doc["type"] = float64(3)

		_, err := cbcloud.ToLegacyAlert(doc)
		require.Error(t, err)

		var typeErr *cbcloud.UnsupportedAlertTypeError
		require.ErrorAs(t, err, &typeErr)
	})
}

func TestToLegacyAlert_Deterministic(t *testing.T) {
	doc := v7AlertDoc("CONTAINER_RUNTIME")
	doc["k8s_cluster"] = "prod:cluster-1"
	doc["k8s_namespace"] = "default"

	first, err := cbcloud.ToLegacyAlert(doc)
	require.NoError(t, err)
	second, err := cbcloud.ToLegacyAlert(doc)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestToLegacyAlert_ContainerRuntimeRenames(t *testing.T) {
	doc := v7AlertDoc("CONTAINER_RUNTIME")
	doc["k8s_cluster"] = "prod:cluster-1"
	doc["k8s_namespace"] = "default"
	doc["k8s_kind"] = "Deployment"
	doc["k8s_workload_name"] = "api-server"
	doc["k8s_pod_name"] = "api-server-5d8f"
	doc["k8s_rule_id"] = "rule-1"
	doc["k8s_rule"] = "Port scan detected"
	doc["netconn_local_port"] = float64(443)
	doc["netconn_protocol"] = "TCP"
	doc["remote_k8s_namespace"] = "kube-system"

	legacy, err := cbcloud.ToLegacyAlert(doc)
	require.NoError(t, err)

	assert.Equal(t, "prod:cluster-1", legacy["cluster_name"])
	assert.Equal(t, "default", legacy["namespace"])
	assert.Equal(t, "Deployment", legacy["workload_kind"])
	assert.Equal(t, "api-server", legacy["workload_name"])
	assert.Equal(t, "api-server-5d8f", legacy["replica_id"])
	assert.Equal(t, "rule-1", legacy["rule_id"])
	assert.Equal(t, "Port scan detected", legacy["rule_name"])
	assert.Equal(t, float64(443), legacy["port"])
	assert.Equal(t, "TCP", legacy["protocol"])
	assert.Equal(t, "kube-system", legacy["remote_namespace"])
}

func TestAlert_ToLegacyJSON(t *testing.T) {
	t.Run("from decoded response", func(t *testing.T) {
		data, err := json.Marshal(v7AlertDoc("DEVICE_CONTROL"))
		require.NoError(t, err)

		var alert cbcloud.Alert
		require.NoError(t, json.Unmarshal(data, &alert))

		legacy, err := alert.ToLegacyJSON()
		require.NoError(t, err)
		assert.Equal(t, "DEVICE_CONTROL", legacy["type"])
		assert.Equal(t, alert.ID, legacy["legacy_alert_id"])
		assert.Contains(t, legacy, "create_time")
	})

	t.Run("from typed fields", func(t *testing.T) {
		alert := &cbcloud.Alert{
			ID:   "abc-123",
			Type: cbcloud.AlertTypeHostBasedFirewall,
		}

		legacy, err := alert.ToLegacyJSON()
		require.NoError(t, err)
		assert.Equal(t, "abc-123", legacy["id"])
		assert.Equal(t, "abc-123", legacy["legacy_alert_id"])
	})

	t.Run("missing type fails", func(t *testing.T) {
		alert := &cbcloud.Alert{ID: "abc-123"}

		_, err := alert.ToLegacyJSON()
		var typeErr *cbcloud.UnsupportedAlertTypeError
		require.ErrorAs(t, err, &typeErr)
	})
}
