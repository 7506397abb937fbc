package cbcloud

import "time"

// Legacy criteria setters carried over from the v6 alert search API. Each
// one is a thin facade that stores its values under the fixed v7 criteria
// key the old field name maps to; no validation is performed beyond integer
// coercion, the server remains the authority on values. Calling a setter
// twice replaces the earlier values.
//
// New code should call AddCriteria with the v7 field names directly.

// SetAlertIDs restricts the search to the given alert IDs.
//
// Deprecated: use AddCriteria("id", ...).
func (q *Query) SetAlertIDs(ids ...string) *Query {
	return q.AddCriteria("id", ids...)
}

// SetLegacyAlertIDs restricts the search to the given legacy alert IDs,
// which the v7 API folds into the id criteria field.
//
// Deprecated: use AddCriteria("id", ...).
func (q *Query) SetLegacyAlertIDs(ids ...string) *Query {
	return q.AddCriteria("id", ids...)
}

// SetCreateTime bounds the search by alert creation time.
//
// Deprecated: use SetTimeRange.
func (q *Query) SetCreateTime(start, end time.Time) *Query {
	return q.SetTimeRange(start, end)
}

// SetDeviceIDs restricts the search to alerts from the given device IDs.
//
// Deprecated: use AddCriteriaInts("device_id", ...).
func (q *Query) SetDeviceIDs(ids ...int) *Query {
	return q.AddCriteriaInts("device_id", ids...)
}

// SetExternalDeviceIDs restricts the search by external device ID. These
// were string-typed in v6 and are passed through without coercion.
//
// Deprecated: use AddCriteria("device_id", ...).
func (q *Query) SetExternalDeviceIDs(ids ...string) *Query {
	return q.AddCriteria("device_id", ids...)
}

// SetDeviceNames restricts the search by device name.
//
// Deprecated: use AddCriteria("device_name", ...).
func (q *Query) SetDeviceNames(names ...string) *Query {
	return q.AddCriteria("device_name", names...)
}

// SetDeviceOS restricts the search by device operating system
// (e.g. "WINDOWS", "LINUX", "MAC").
//
// Deprecated: use AddCriteria("device_os", ...).
func (q *Query) SetDeviceOS(os ...string) *Query {
	return q.AddCriteria("device_os", os...)
}

// SetDeviceOSVersions restricts the search by device OS version.
//
// Deprecated: use AddCriteria("device_os_version", ...).
func (q *Query) SetDeviceOSVersions(versions ...string) *Query {
	return q.AddCriteria("device_os_version", versions...)
}

// SetDeviceUsernames restricts the search by the user logged in on the
// device.
//
// Deprecated: use AddCriteria("device_username", ...).
func (q *Query) SetDeviceUsernames(usernames ...string) *Query {
	return q.AddCriteria("device_username", usernames...)
}

// SetPolicyIDs restricts the search by device policy ID.
//
// Deprecated: use AddCriteriaInts("device_policy_id", ...).
func (q *Query) SetPolicyIDs(ids ...int) *Query {
	return q.AddCriteriaInts("device_policy_id", ids...)
}

// SetPolicyNames restricts the search by device policy name.
//
// Deprecated: use AddCriteria("device_policy", ...).
func (q *Query) SetPolicyNames(names ...string) *Query {
	return q.AddCriteria("device_policy", names...)
}

// SetProcessNames restricts the search by process name.
//
// Deprecated: use AddCriteria("process_name", ...).
func (q *Query) SetProcessNames(names ...string) *Query {
	return q.AddCriteria("process_name", names...)
}

// SetProcessSHA256 restricts the search by process SHA-256 hash.
//
// Deprecated: use AddCriteria("process_sha256", ...).
func (q *Query) SetProcessSHA256(hashes ...string) *Query {
	return q.AddCriteria("process_sha256", hashes...)
}

// SetReputations restricts the search by process reputation
// (e.g. "PUP", "KNOWN_MALWARE").
//
// Deprecated: use AddCriteria("process_reputation", ...).
func (q *Query) SetReputations(reputations ...string) *Query {
	return q.AddCriteria("process_reputation", reputations...)
}

// SetTags restricts the search by alert tag.
//
// Deprecated: use AddCriteria("tags", ...).
func (q *Query) SetTags(tags ...string) *Query {
	return q.AddCriteria("tags", tags...)
}

// SetTargetPriorities restricts the search by device target value
// (e.g. "LOW", "MEDIUM", "HIGH", "MISSION_CRITICAL").
//
// Deprecated: use AddCriteria("device_target_value", ...).
func (q *Query) SetTargetPriorities(priorities ...string) *Query {
	return q.AddCriteria("device_target_value", priorities...)
}

// SetTypes restricts the search by alert type.
//
// Deprecated: use AddCriteria("type", ...).
func (q *Query) SetTypes(types ...string) *Query {
	return q.AddCriteria("type", types...)
}

// SetWorkflows restricts the search by workflow state.
//
// Deprecated: use AddCriteria("workflow", ...).
func (q *Query) SetWorkflows(states ...string) *Query {
	return q.AddCriteria("workflow", states...)
}

// SetMinimumSeverity restricts the search to alerts at or above the given
// severity.
//
// Deprecated: set the minimum_severity criteria field directly.
func (q *Query) SetMinimumSeverity(severity int) *Query {
	q.setCriteria("minimum_severity", severity)
	return q
}

// SetPorts restricts the search by local network connection port.
//
// Deprecated: use AddCriteriaInts("netconn_local_port", ...).
func (q *Query) SetPorts(ports ...int) *Query {
	return q.AddCriteriaInts("netconn_local_port", ports...)
}

// SetProtocols restricts the search by network connection protocol.
//
// Deprecated: use AddCriteria("netconn_protocol", ...).
func (q *Query) SetProtocols(protocols ...string) *Query {
	return q.AddCriteria("netconn_protocol", protocols...)
}

// SetRemoteDomains restricts the search by remote domain.
//
// Deprecated: use AddCriteria("netconn_remote_domain", ...).
func (q *Query) SetRemoteDomains(domains ...string) *Query {
	return q.AddCriteria("netconn_remote_domain", domains...)
}

// SetRemoteIPs restricts the search by remote IP address.
//
// Deprecated: use AddCriteria("netconn_remote_ip", ...).
func (q *Query) SetRemoteIPs(ips ...string) *Query {
	return q.AddCriteria("netconn_remote_ip", ips...)
}

// SetClusterNames restricts the search by Kubernetes cluster name.
//
// Deprecated: use AddCriteria("k8s_cluster", ...).
func (q *Query) SetClusterNames(names ...string) *Query {
	return q.AddCriteria("k8s_cluster", names...)
}

// SetNamespaces restricts the search by Kubernetes namespace.
//
// Deprecated: use AddCriteria("k8s_namespace", ...).
func (q *Query) SetNamespaces(namespaces ...string) *Query {
	return q.AddCriteria("k8s_namespace", namespaces...)
}

// SetWorkloadKinds restricts the search by Kubernetes workload kind.
//
// Deprecated: use AddCriteria("k8s_kind", ...).
func (q *Query) SetWorkloadKinds(kinds ...string) *Query {
	return q.AddCriteria("k8s_kind", kinds...)
}

// SetWorkloadNames restricts the search by Kubernetes workload name.
//
// Deprecated: use AddCriteria("k8s_workload_name", ...).
func (q *Query) SetWorkloadNames(names ...string) *Query {
	return q.AddCriteria("k8s_workload_name", names...)
}

// SetReplicaIDs restricts the search by Kubernetes pod name, which the old
// API called the replica ID.
//
// Deprecated: use AddCriteria("k8s_pod_name", ...).
func (q *Query) SetReplicaIDs(ids ...string) *Query {
	return q.AddCriteria("k8s_pod_name", ids...)
}

// SetRuleIDs restricts the search by rule ID. The legacy method predates
// rule IDs on anything but container runtime alerts, so it maps to
// k8s_rule_id; use AddCriteria("rule_id", ...) for other alert types.
//
// Deprecated: use AddCriteria("k8s_rule_id", ...) or
// AddCriteria("rule_id", ...).
func (q *Query) SetRuleIDs(ids ...string) *Query {
	return q.AddCriteria("k8s_rule_id", ids...)
}

// SetRuleNames restricts the search by container runtime rule name.
//
// Deprecated: use AddCriteria("k8s_rule", ...).
func (q *Query) SetRuleNames(names ...string) *Query {
	return q.AddCriteria("k8s_rule", names...)
}
