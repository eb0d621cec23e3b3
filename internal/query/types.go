package query

// Intent is the closed category of question a query belongs to.
type Intent string

const (
	IntentCountPods         Intent = "count_pods"
	IntentListPods          Intent = "list_pods"
	IntentPodStatus         Intent = "pod_status"
	IntentCountNodes        Intent = "count_nodes"
	IntentPodsForDeployment Intent = "pods_for_deployment"
	IntentPodLogs           Intent = "pod_logs"
	IntentAPIServerHealth   Intent = "api_server_health"
	IntentUnknown           Intent = "unknown"
)

// KnownIntents lists every dispatchable intent, used to validate gateway
// output and to describe the closed set in the classification prompt.
var KnownIntents = []Intent{
	IntentCountPods,
	IntentListPods,
	IntentPodStatus,
	IntentCountNodes,
	IntentPodsForDeployment,
	IntentPodLogs,
	IntentAPIServerHealth,
}

// Valid reports whether i is a member of the closed intent set.
func (i Intent) Valid() bool {
	if i == IntentUnknown {
		return true
	}
	for _, known := range KnownIntents {
		if i == known {
			return true
		}
	}
	return false
}

// Slot names extracted from query text.
const (
	SlotNamespace      = "namespace"
	SlotPodName        = "pod_name"
	SlotDeploymentName = "deployment_name"
	SlotTailLines      = "tail_lines"
)

// Slots maps slot names to the values extracted from the query text.
// A relevant subset is filled depending on the intent.
type Slots map[string]string

// QueryInput is the input for answering a natural-language query.
type QueryInput struct {
	Query string
}

// QueryOutput pairs the original query with its answer sentence.
type QueryOutput struct {
	Query  string
	Answer string
	Intent Intent
}

// Result is the typed, intent-specific value returned by the cluster
// accessor. The concrete types below are the only implementations.
type Result interface {
	isResult()
}

// CountResult carries a pod or node count.
type CountResult struct {
	Count int
}

// StatusResult carries a single pod's status phase.
type StatusResult struct {
	PodName string
	Status  string
}

// PodListResult carries a set of pod names.
type PodListResult struct {
	Names []string
}

// LogsResult carries the tail of a pod's log output.
type LogsResult struct {
	PodName   string
	TailLines int
	Lines     []string
}

// HealthResult carries the API server reachability check outcome.
type HealthResult struct {
	Accessible bool
}

func (CountResult) isResult()   {}
func (StatusResult) isResult()  {}
func (PodListResult) isResult() {}
func (LogsResult) isResult()    {}
func (HealthResult) isResult()  {}
