package kubernetes

import (
	"context"
	"fmt"
	"strings"

	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"kube-query-agent/internal/model"
	"kube-query-agent/internal/query/repository"
)

// ListPods returns summaries of all pods in the namespace.
func (r *clusterRepo) ListPods(ctx context.Context, namespace string) ([]model.PodSummary, error) {
	pods, err := r.client.CoreV1().Pods(namespace).List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to list pods in namespace %q: %w", namespace, err)
	}

	summaries := make([]model.PodSummary, 0, len(pods.Items))
	for _, pod := range pods.Items {
		summaries = append(summaries, toPodSummary(pod))
	}
	return summaries, nil
}

// GetPod returns the named pod.
func (r *clusterRepo) GetPod(ctx context.Context, namespace, name string) (model.PodSummary, error) {
	pod, err := r.client.CoreV1().Pods(namespace).Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		if apierrors.IsNotFound(err) {
			return model.PodSummary{}, &repository.NotFoundError{Kind: "pod", Name: name, Namespace: namespace}
		}
		return model.PodSummary{}, fmt.Errorf("failed to get pod %q: %w", name, err)
	}
	return toPodSummary(*pod), nil
}

// ListNodes returns summaries of all cluster nodes.
func (r *clusterRepo) ListNodes(ctx context.Context) ([]model.NodeSummary, error) {
	nodes, err := r.client.CoreV1().Nodes().List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to list nodes: %w", err)
	}

	summaries := make([]model.NodeSummary, 0, len(nodes.Items))
	for _, node := range nodes.Items {
		summaries = append(summaries, model.NodeSummary{
			Name:  node.Name,
			Ready: nodeReady(node),
		})
	}
	return summaries, nil
}

// ListDeploymentPods resolves a deployment's pods via its label selector.
func (r *clusterRepo) ListDeploymentPods(ctx context.Context, namespace, name string) ([]model.PodSummary, error) {
	deployment, err := r.client.AppsV1().Deployments(namespace).Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		if apierrors.IsNotFound(err) {
			return nil, &repository.NotFoundError{Kind: "deployment", Name: name, Namespace: namespace}
		}
		return nil, fmt.Errorf("failed to get deployment %q: %w", name, err)
	}

	selector, err := metav1.LabelSelectorAsSelector(deployment.Spec.Selector)
	if err != nil {
		return nil, fmt.Errorf("invalid selector on deployment %q: %w", name, err)
	}

	pods, err := r.client.CoreV1().Pods(namespace).List(ctx, metav1.ListOptions{LabelSelector: selector.String()})
	if err != nil {
		return nil, fmt.Errorf("failed to list pods for deployment %q: %w", name, err)
	}

	summaries := make([]model.PodSummary, 0, len(pods.Items))
	for _, pod := range pods.Items {
		summaries = append(summaries, toPodSummary(pod))
	}
	return summaries, nil
}

// GetPodLogs returns the last tailLines lines of the pod's log output.
func (r *clusterRepo) GetPodLogs(ctx context.Context, namespace, name string, tailLines int) ([]string, error) {
	tail := int64(tailLines)
	raw, err := r.client.CoreV1().Pods(namespace).GetLogs(name, &corev1.PodLogOptions{
		TailLines: &tail,
	}).Do(ctx).Raw()
	if err != nil {
		if apierrors.IsNotFound(err) {
			return nil, &repository.NotFoundError{Kind: "pod", Name: name, Namespace: namespace}
		}
		return nil, fmt.Errorf("failed to get logs for pod %q: %w", name, err)
	}

	text := strings.TrimRight(string(raw), "\n")
	if text == "" {
		return nil, nil
	}
	return strings.Split(text, "\n"), nil
}

// Ping checks that the API server is reachable.
func (r *clusterRepo) Ping(ctx context.Context) error {
	if _, err := r.client.Discovery().ServerVersion(); err != nil {
		return fmt.Errorf("API server not accessible: %w", err)
	}
	return nil
}

func toPodSummary(pod corev1.Pod) model.PodSummary {
	summary := model.PodSummary{
		Name:      pod.Name,
		Namespace: pod.Namespace,
		Status:    string(pod.Status.Phase),
	}
	for _, ref := range pod.OwnerReferences {
		if ref.Controller != nil && *ref.Controller {
			summary.OwnerKind = ref.Kind
			summary.OwnerName = ref.Name
			break
		}
	}
	return summary
}

func nodeReady(node corev1.Node) bool {
	for _, cond := range node.Status.Conditions {
		if cond.Type == corev1.NodeReady {
			return cond.Status == corev1.ConditionTrue
		}
	}
	return false
}
