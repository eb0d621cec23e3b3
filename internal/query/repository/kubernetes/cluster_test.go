package kubernetes

import (
	"context"
	"testing"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes/fake"

	"kube-query-agent/internal/query/repository"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, arg ...any)                    {}
func (nopLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) Info(ctx context.Context, arg ...any)                     {}
func (nopLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (nopLogger) Warn(ctx context.Context, arg ...any)                     {}
func (nopLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (nopLogger) Error(ctx context.Context, arg ...any)                    {}
func (nopLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (nopLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (nopLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (nopLogger) Panic(ctx context.Context, arg ...any)                    {}
func (nopLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

func newPod(namespace, name string, phase corev1.PodPhase, labels map[string]string) *corev1.Pod {
	return &corev1.Pod{
		ObjectMeta: metav1.ObjectMeta{
			Name:      name,
			Namespace: namespace,
			Labels:    labels,
		},
		Status: corev1.PodStatus{Phase: phase},
	}
}

func TestListPods(t *testing.T) {
	client := fake.NewSimpleClientset(
		newPod("default", "pod-a", corev1.PodRunning, nil),
		newPod("default", "pod-b", corev1.PodPending, nil),
		newPod("kube-system", "pod-c", corev1.PodRunning, nil),
	)
	repo := New(client, nopLogger{})

	pods, err := repo.ListPods(context.Background(), "default")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pods) != 2 {
		t.Errorf("expected 2 pods in default, got %d", len(pods))
	}
}

func TestGetPod(t *testing.T) {
	client := fake.NewSimpleClientset(newPod("default", "example-pod", corev1.PodRunning, nil))
	repo := New(client, nopLogger{})

	pod, err := repo.GetPod(context.Background(), "default", "example-pod")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pod.Status != "Running" {
		t.Errorf("expected Running, got %q", pod.Status)
	}
}

func TestGetPodNotFound(t *testing.T) {
	repo := New(fake.NewSimpleClientset(), nopLogger{})

	_, err := repo.GetPod(context.Background(), "default", "ghost")
	if !repository.IsNotFound(err) {
		t.Errorf("expected NotFoundError, got %v", err)
	}
}

func TestListNodes(t *testing.T) {
	client := fake.NewSimpleClientset(
		&corev1.Node{
			ObjectMeta: metav1.ObjectMeta{Name: "node-1"},
			Status: corev1.NodeStatus{Conditions: []corev1.NodeCondition{
				{Type: corev1.NodeReady, Status: corev1.ConditionTrue},
			}},
		},
		&corev1.Node{
			ObjectMeta: metav1.ObjectMeta{Name: "node-2"},
			Status: corev1.NodeStatus{Conditions: []corev1.NodeCondition{
				{Type: corev1.NodeReady, Status: corev1.ConditionFalse},
			}},
		},
	)
	repo := New(client, nopLogger{})

	nodes, err := repo.ListNodes(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(nodes) != 2 {
		t.Fatalf("expected 2 nodes, got %d", len(nodes))
	}
	if !nodes[0].Ready || nodes[1].Ready {
		t.Errorf("unexpected readiness: %+v", nodes)
	}
}

func TestListDeploymentPods(t *testing.T) {
	labels := map[string]string{"app": "my-deployment"}
	deployment := &appsv1.Deployment{
		ObjectMeta: metav1.ObjectMeta{Name: "my-deployment", Namespace: "default"},
		Spec: appsv1.DeploymentSpec{
			Selector: &metav1.LabelSelector{MatchLabels: labels},
		},
	}
	client := fake.NewSimpleClientset(
		deployment,
		newPod("default", "my-deployment-abc123", corev1.PodRunning, labels),
		newPod("default", "unrelated-pod", corev1.PodRunning, map[string]string{"app": "other"}),
	)
	repo := New(client, nopLogger{})

	pods, err := repo.ListDeploymentPods(context.Background(), "default", "my-deployment")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pods) != 1 {
		t.Fatalf("expected 1 pod, got %d", len(pods))
	}
	if pods[0].Name != "my-deployment-abc123" {
		t.Errorf("unexpected pod name: %q", pods[0].Name)
	}
}

func TestListDeploymentPodsNotFound(t *testing.T) {
	repo := New(fake.NewSimpleClientset(), nopLogger{})

	_, err := repo.ListDeploymentPods(context.Background(), "default", "ghost")
	if !repository.IsNotFound(err) {
		t.Errorf("expected NotFoundError, got %v", err)
	}
}

func TestGetPodLogs(t *testing.T) {
	client := fake.NewSimpleClientset(newPod("default", "example-pod", corev1.PodRunning, nil))
	repo := New(client, nopLogger{})

	lines, err := repo.GetPodLogs(context.Background(), "default", "example-pod", 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// The fake clientset serves a fixed log body; only shape is asserted.
	if len(lines) == 0 {
		t.Error("expected at least one log line")
	}
}

func TestPing(t *testing.T) {
	repo := New(fake.NewSimpleClientset(), nopLogger{})

	if err := repo.Ping(context.Background()); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
