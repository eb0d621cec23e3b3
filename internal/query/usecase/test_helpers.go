package usecase

import (
	"context"

	"kube-query-agent/internal/model"
	"kube-query-agent/internal/query/repository"
	"kube-query-agent/pkg/llmprovider"
	"kube-query-agent/pkg/mistral"
)

// Mock logger for testing.
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockClusterRepo implements repository.ClusterRepository with overridable
// function fields.
type mockClusterRepo struct {
	listPodsFunc           func(namespace string) ([]model.PodSummary, error)
	getPodFunc             func(namespace, name string) (model.PodSummary, error)
	listNodesFunc          func() ([]model.NodeSummary, error)
	listDeploymentPodsFunc func(namespace, name string) ([]model.PodSummary, error)
	getPodLogsFunc         func(namespace, name string, tailLines int) ([]string, error)
	pingFunc               func() error

	calls int
}

func (m *mockClusterRepo) ListPods(ctx context.Context, namespace string) ([]model.PodSummary, error) {
	m.calls++
	if m.listPodsFunc != nil {
		return m.listPodsFunc(namespace)
	}
	return nil, nil
}

func (m *mockClusterRepo) GetPod(ctx context.Context, namespace, name string) (model.PodSummary, error) {
	m.calls++
	if m.getPodFunc != nil {
		return m.getPodFunc(namespace, name)
	}
	return model.PodSummary{}, &repository.NotFoundError{Kind: "pod", Name: name, Namespace: namespace}
}

func (m *mockClusterRepo) ListNodes(ctx context.Context) ([]model.NodeSummary, error) {
	m.calls++
	if m.listNodesFunc != nil {
		return m.listNodesFunc()
	}
	return nil, nil
}

func (m *mockClusterRepo) ListDeploymentPods(ctx context.Context, namespace, name string) ([]model.PodSummary, error) {
	m.calls++
	if m.listDeploymentPodsFunc != nil {
		return m.listDeploymentPodsFunc(namespace, name)
	}
	return nil, &repository.NotFoundError{Kind: "deployment", Name: name, Namespace: namespace}
}

func (m *mockClusterRepo) GetPodLogs(ctx context.Context, namespace, name string, tailLines int) ([]string, error) {
	m.calls++
	if m.getPodLogsFunc != nil {
		return m.getPodLogsFunc(namespace, name, tailLines)
	}
	return nil, nil
}

func (m *mockClusterRepo) Ping(ctx context.Context) error {
	m.calls++
	if m.pingFunc != nil {
		return m.pingFunc()
	}
	return nil
}

// newFixtureRepo returns a mock accessor with the conformance state:
// 5 pods in default, pod 'example-pod' Running, 2 nodes, and
// my-deployment owning my-deployment-abc123.
func newFixtureRepo() *mockClusterRepo {
	defaultPods := []model.PodSummary{
		{Name: "example-pod", Namespace: "default", Status: "Running"},
		{Name: "my-deployment-abc123", Namespace: "default", Status: "Running", OwnerKind: "ReplicaSet", OwnerName: "my-deployment-abc"},
		{Name: "web-0", Namespace: "default", Status: "Running"},
		{Name: "web-1", Namespace: "default", Status: "Pending"},
		{Name: "worker-xyz", Namespace: "default", Status: "Running"},
	}

	return &mockClusterRepo{
		listPodsFunc: func(namespace string) ([]model.PodSummary, error) {
			if namespace == "default" {
				return defaultPods, nil
			}
			return nil, nil
		},
		getPodFunc: func(namespace, name string) (model.PodSummary, error) {
			for _, pod := range defaultPods {
				if namespace == pod.Namespace && name == pod.Name {
					return pod, nil
				}
			}
			return model.PodSummary{}, &repository.NotFoundError{Kind: "pod", Name: name, Namespace: namespace}
		},
		listNodesFunc: func() ([]model.NodeSummary, error) {
			return []model.NodeSummary{
				{Name: "node-1", Ready: true},
				{Name: "node-2", Ready: true},
			}, nil
		},
		listDeploymentPodsFunc: func(namespace, name string) ([]model.PodSummary, error) {
			if namespace == "default" && name == "my-deployment" {
				return []model.PodSummary{defaultPods[1]}, nil
			}
			return nil, &repository.NotFoundError{Kind: "deployment", Name: name, Namespace: namespace}
		},
		getPodLogsFunc: func(namespace, name string, tailLines int) ([]string, error) {
			if namespace == "default" && name == "example-pod" {
				return []string{"line one", "line two"}, nil
			}
			return nil, &repository.NotFoundError{Kind: "pod", Name: name, Namespace: namespace}
		},
	}
}

// newGatewayManager builds a single-provider manager backed by a Mistral
// client pointed at a test server.
func newGatewayManager(baseURL string) *llmprovider.Manager {
	client, _ := mistral.New(mistral.Config{APIKey: "test-key", BaseURL: baseURL})
	return llmprovider.NewManager(
		[]llmprovider.Provider{llmprovider.NewMistralAdapter(client)},
		&llmprovider.Config{FallbackEnabled: false, RetryAttempts: 1},
		&mockLogger{},
	)
}
