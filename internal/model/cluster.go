package model

// PodSummary is the read-only view of a pod used to answer queries.
type PodSummary struct {
	Name      string
	Namespace string
	Status    string // pod phase: Pending, Running, Succeeded, Failed, Unknown

	// Owner reference, when the pod is managed by a workload controller.
	OwnerKind string // e.g. "ReplicaSet"
	OwnerName string
}

// NodeSummary is the read-only view of a cluster node.
type NodeSummary struct {
	Name  string
	Ready bool
}
