package cbcloud

import "strings"

// The v6 alert schema capped the actor name field; the projection truncates
// to this many runes to stay inside it.
const legacyActorNameMax = 64

// renamedV7ToV6 maps v7 field names to the v6 names callers written against
// the old schema expect. Fields not listed keep their name.
var renamedV7ToV6 = map[string]string{
	"alert_notes_present":      "notes_present",
	"backend_timestamp":        "create_time",
	"backend_update_timestamp": "last_update_time",
	"device_policy":            "policy_name",
	"device_policy_id":         "policy_id",
	"device_target_value":      "target_value",
	"first_event_timestamp":    "first_event_time",
	"k8s_cluster":              "cluster_name",
	"k8s_kind":                 "workload_kind",
	"k8s_namespace":            "namespace",
	"k8s_pod_name":             "replica_id",
	"k8s_rule":                 "rule_name",
	"k8s_rule_id":              "rule_id",
	"k8s_workload_name":        "workload_name",
	"last_event_timestamp":     "last_event_time",
	"netconn_local_port":       "port",
	"netconn_protocol":         "protocol",
	"netconn_remote_domain":    "remote_domain",
	"netconn_remote_ip":        "remote_ip",
	"parent_guid":              "threat_cause_parent_guid",
	"primary_event_id":         "created_by_event_id",
	"process_issuer":           "threat_cause_actor_certificate_authority",
	"process_md5":              "threat_cause_md5",
	"process_publisher":        "threat_cause_actor_publisher",
	"process_reputation":       "threat_cause_reputation",
	"process_sha256":           "threat_cause_actor_sha256",
	"remote_k8s_kind":          "remote_workload_kind",
	"remote_k8s_namespace":     "remote_namespace",
	"remote_k8s_pod_name":      "remote_replica_id",
	"remote_k8s_workload_name": "remote_workload_name",
}

// legacyBaseDrops lists v6 base-alert fields with no v7 source. They are
// removed from every projection so stale or fabricated values cannot leak.
var legacyBaseDrops = []string{
	"alert_classification",
	"category",
	"comment",
	"group_details",
	"threat_activity_c2",
	"threat_cause_threat_category",
	"threat_cause_actor_process_pid",
}

// legacyDropsByType lists, per alert type, the additional v6 fields with no
// v7 source. HBFW is absent: no fields were removed for host based firewall
// alerts. Unknown types get no per-type drops either.
var legacyDropsByType = map[AlertType][]string{
	AlertTypeCBAnalytics: {
		"blocked_threat_category",
		"kill_chain_status",
		"not_blocked_threat_category",
		"threat_activity_c2",
		"threat_activity_dlp",
		"threat_activity_phish",
		"threat_cause_vector",
	},
	AlertTypeDeviceControl: {
		"threat_cause_vector",
	},
	AlertTypeContainerRuntime: {
		"workload_id",
		"target_value",
	},
	AlertTypeWatchlist: {
		"count",
		"document_guid",
		"threat_cause_vector",
		"threat_indicators",
	},
}

// ToLegacyAlert projects a v7 alert document into the v6 shape:
//
//   - every field is copied under its v6 name (identity or renamed), with
//     the alert ID also mirrored to legacy_alert_id
//   - fields the v6 schema carried for this alert's type but that have no
//     v7 source are removed, even if present in the input
//   - two lossy, best-effort shims: threat_cause_actor_name is the v7
//     process name truncated to the old field cap, and process_name is
//     reduced from a full path to just the file name
//   - nested objects recurse with the same rules; the workflow block is
//     rebuilt in its v6 shape
//
// The projection is pure and deterministic. Documents with an unrecognized
// type are projected with base drops only; a missing or non-string type
// yields an UnsupportedAlertTypeError.
func ToLegacyAlert(doc map[string]any) (map[string]any, error) {
	typeTag, ok := doc["type"].(string)
	if !ok || typeTag == "" {
		return nil, &UnsupportedAlertTypeError{}
	}
	return projectLegacy(doc, AlertType(typeTag)), nil
}

func projectLegacy(obj map[string]any, alertType AlertType) map[string]any {
	out := make(map[string]any, len(obj)+2)
	for key, value := range obj {
		switch key {
		case "id":
			out["id"] = value
			out["legacy_alert_id"] = value
			continue
		case "process_name":
			if name, ok := value.(string); ok {
				out["process_name"] = baseName(name)
				out["threat_cause_actor_name"] = truncateRunes(name, legacyActorNameMax)
				continue
			}
		case "workflow":
			if wf, ok := value.(map[string]any); ok {
				out["workflow"] = legacyWorkflow(wf)
				continue
			}
		}

		name := key
		if renamed, ok := renamedV7ToV6[key]; ok {
			name = renamed
		}
		if nested, ok := value.(map[string]any); ok {
			value = projectLegacy(nested, alertType)
		}
		out[name] = value
	}

	for _, field := range legacyBaseDrops {
		delete(out, field)
	}
	for _, field := range legacyDropsByType[alertType] {
		delete(out, field)
	}
	return out
}

// legacyWorkflow rebuilds the v7 workflow block in its v6 shape. The v6
// state field only knew OPEN and DISMISSED; both OPEN and IN_PROGRESS map
// to OPEN.
func legacyWorkflow(wf map[string]any) map[string]any {
	out := make(map[string]any, len(wf))
	if v, ok := wf["changed_by"]; ok {
		out["changed_by"] = v
	}
	if v, ok := wf["change_timestamp"]; ok {
		out["last_update_time"] = v
	}
	if v, ok := wf["closure_reason"]; ok {
		out["remediation"] = v
	}
	if status, ok := wf["status"].(string); ok {
		if status == string(WorkflowClosed) {
			out["state"] = "DISMISSED"
		} else {
			out["state"] = "OPEN"
		}
	}
	return out
}

// baseName strips the directory part of a process path. Alert records carry
// both Unix and Windows paths, so both separators count.
func baseName(path string) string {
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		return path[i+1:]
	}
	return path
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
