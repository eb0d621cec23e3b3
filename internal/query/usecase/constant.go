package usecase

// Defaults applied during dispatch.
const (
	DefaultNamespace = "default"

	// DefaultLogTailLines bounds log answers to the last N lines.
	DefaultLogTailLines = 50
)

// Answer sentence templates, one per intent. Deterministic given the same
// structured result.
const (
	AnswerCountPods           = "There are %d pods in the %s namespace."
	AnswerNoPods              = "There are no pods in the %s namespace."
	AnswerPodStatus           = "The status of the pod '%s' is '%s'."
	AnswerCountNodes          = "There are %d nodes in the cluster."
	AnswerPodsForDeployment   = "The pod(s) spawned by deployment '%s' are: %s."
	AnswerNoPodsForDeployment = "No pods found for deployment '%s'."
	AnswerPodLogsHeader       = "Last %d log lines of pod '%s':"
	AnswerAPIServerUp         = "Yes, the API server is accessible."
	AnswerAPIServerDown       = "No, the API server is not accessible."
)

// Fixed clarification and error sentences. Kept clearly distinct from the
// templates above so a failed lookup never reads like a real answer.
const (
	AnswerUnknownIntent      = "I'm sorry, I couldn't determine the action for this query."
	AnswerUnable             = "I'm sorry, I was unable to answer this query."
	AnswerMissingSlot        = "I need the %s to answer that. Please include it in your question."
	AnswerPodNotFound        = "The pod '%s' was not found in the '%s' namespace."
	AnswerDeploymentNotFound = "The deployment '%s' was not found in the '%s' namespace."
	AnswerClusterFailure     = "An error occurred while talking to the cluster. Please try again later."
)

// ClassificationPrompt instructs the gateway model to map a query onto the
// closed intent set. The model's output is treated as untrusted text.
const ClassificationPrompt = `You are a Kubernetes assistant. Classify the user query into exactly one of these intents and extract the slot values:

- count_pods: count pods in a namespace. Slots: namespace
- list_pods: list the pod names in a namespace. Slots: namespace
- pod_status: report the status of a named pod. Slots: namespace, pod_name
- count_nodes: count the nodes in the cluster. Slots: none
- pods_for_deployment: list the pods owned by a deployment. Slots: namespace, deployment_name
- pod_logs: fetch the logs of a named pod. Slots: namespace, pod_name, tail_lines
- api_server_health: check whether the API server is accessible. Slots: none
- unknown: none of the above

Examples:
- "How many pods are in the default namespace?" -> count_pods
- "List all pods in the default namespace." -> list_pods
- "What is the status of the pod named 'example-pod'?" -> pod_status
- "How many nodes are there in the cluster?" -> count_nodes
- "Which pod is spawned by my-deployment?" -> pods_for_deployment
- "Is the API server accessible?" -> api_server_health

Respond with ONLY a JSON object of the form {"intent": "...", "slots": {"name": "value"}}. No markdown, no code blocks, no explanation.

Query: %q`
