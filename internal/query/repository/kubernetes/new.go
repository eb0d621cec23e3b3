package kubernetes

import (
	"fmt"
	"time"

	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"

	"kube-query-agent/config"
	pkgLog "kube-query-agent/pkg/log"
)

type clusterRepo struct {
	client kubernetes.Interface
	l      pkgLog.Logger
}

// New creates a cluster repository backed by the given clientset.
// Tests pass the fake clientset here.
func New(client kubernetes.Interface, l pkgLog.Logger) *clusterRepo {
	return &clusterRepo{
		client: client,
		l:      l,
	}
}

// NewFromConfig builds a clientset from kubeconfig or in-cluster config and
// wraps it in a cluster repository.
func NewFromConfig(cfg config.KubernetesConfig, l pkgLog.Logger) (*clusterRepo, error) {
	restCfg, err := buildRESTConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build cluster config: %w", err)
	}

	if cfg.RequestTimeout != "" {
		if timeout, err := time.ParseDuration(cfg.RequestTimeout); err == nil {
			restCfg.Timeout = timeout
		}
	}

	client, err := kubernetes.NewForConfig(restCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create clientset: %w", err)
	}

	return New(client, l), nil
}

// buildRESTConfig prefers an explicit kubeconfig path, then the default
// loading rules (~/.kube/config, KUBECONFIG), then in-cluster config.
func buildRESTConfig(cfg config.KubernetesConfig) (*rest.Config, error) {
	loadingRules := clientcmd.NewDefaultClientConfigLoadingRules()
	if cfg.Kubeconfig != "" {
		loadingRules.ExplicitPath = cfg.Kubeconfig
	}

	overrides := &clientcmd.ConfigOverrides{}
	if cfg.Context != "" {
		overrides.CurrentContext = cfg.Context
	}

	restCfg, err := clientcmd.NewNonInteractiveDeferredLoadingClientConfig(loadingRules, overrides).ClientConfig()
	if err == nil {
		return restCfg, nil
	}

	if inCluster, inErr := rest.InClusterConfig(); inErr == nil {
		return inCluster, nil
	}

	return nil, err
}
