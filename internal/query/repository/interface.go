package repository

import (
	"context"

	"kube-query-agent/internal/model"
)

// ClusterRepository exposes the read-only cluster operations the query
// domain needs. Implementations must be safe for concurrent use and must
// not cache results between calls: cluster state changes between requests.
type ClusterRepository interface {
	// ListPods returns summaries of all pods in the namespace.
	ListPods(ctx context.Context, namespace string) ([]model.PodSummary, error)

	// GetPod returns the named pod. Returns *NotFoundError when absent.
	GetPod(ctx context.Context, namespace, name string) (model.PodSummary, error)

	// ListNodes returns summaries of all cluster nodes.
	ListNodes(ctx context.Context) ([]model.NodeSummary, error)

	// ListDeploymentPods resolves the pods owned by a deployment via its
	// label selector. Returns *NotFoundError when the deployment is absent.
	ListDeploymentPods(ctx context.Context, namespace, name string) ([]model.PodSummary, error)

	// GetPodLogs returns the last tailLines lines of the pod's log output.
	GetPodLogs(ctx context.Context, namespace, name string, tailLines int) ([]string, error)

	// Ping checks that the API server is reachable.
	Ping(ctx context.Context) error
}
