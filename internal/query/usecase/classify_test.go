package usecase

import (
	"context"
	"testing"

	"kube-query-agent/internal/query"
)

func TestClassifyByRules(t *testing.T) {
	uc := New(&mockLogger{}, &mockClusterRepo{}, nil, "default")

	tests := []struct {
		name      string
		query     string
		intent    query.Intent
		slots     query.Slots
	}{
		{
			name:   "count pods default namespace",
			query:  "How many pods are in the default namespace?",
			intent: query.IntentCountPods,
			slots:  query.Slots{query.SlotNamespace: "default"},
		},
		{
			name:   "count pods explicit namespace",
			query:  "How many pods are in the kube-system namespace?",
			intent: query.IntentCountPods,
			slots:  query.Slots{query.SlotNamespace: "kube-system"},
		},
		{
			name:   "count pods no namespace falls back to default",
			query:  "How many pods are running?",
			intent: query.IntentCountPods,
			slots:  query.Slots{query.SlotNamespace: "default"},
		},
		{
			name:   "list pods",
			query:  "List all pods in the default namespace.",
			intent: query.IntentListPods,
			slots:  query.Slots{query.SlotNamespace: "default"},
		},
		{
			name:   "pod status quoted name",
			query:  "What is the status of the pod named 'example-pod'?",
			intent: query.IntentPodStatus,
			slots:  query.Slots{query.SlotNamespace: "default", query.SlotPodName: "example-pod"},
		},
		{
			name:   "pod status bare name",
			query:  "What is the status of the pod named example-pod?",
			intent: query.IntentPodStatus,
			slots:  query.Slots{query.SlotNamespace: "default", query.SlotPodName: "example-pod"},
		},
		{
			name:   "pod status without name",
			query:  "What is the status of the pod?",
			intent: query.IntentPodStatus,
			slots:  query.Slots{query.SlotNamespace: "default"},
		},
		{
			name:   "count nodes",
			query:  "How many nodes are there in the cluster?",
			intent: query.IntentCountNodes,
			slots:  query.Slots{},
		},
		{
			name:   "pods for deployment",
			query:  "Which pod is spawned by my-deployment?",
			intent: query.IntentPodsForDeployment,
			slots:  query.Slots{query.SlotNamespace: "default", query.SlotDeploymentName: "my-deployment"},
		},
		{
			name:   "pods owned by deployment",
			query:  "Show the pods owned by api-server-v2",
			intent: query.IntentPodsForDeployment,
			slots:  query.Slots{query.SlotNamespace: "default", query.SlotDeploymentName: "api-server-v2"},
		},
		{
			name:   "pod logs",
			query:  "Show me the logs of the pod named 'example-pod'",
			intent: query.IntentPodLogs,
			slots:  query.Slots{query.SlotNamespace: "default", query.SlotPodName: "example-pod"},
		},
		{
			name:   "pod logs with tail lines",
			query:  "Show the last 10 lines of logs from the pod named 'example-pod'",
			intent: query.IntentPodLogs,
			slots:  query.Slots{query.SlotNamespace: "default", query.SlotPodName: "example-pod", query.SlotTailLines: "10"},
		},
		{
			name:   "api server",
			query:  "Is the API server accessible?",
			intent: query.IntentAPIServerHealth,
			slots:  query.Slots{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent, slots, ok := uc.classifyByRules(tt.query)
			if !ok {
				t.Fatalf("expected a pattern rule to match %q", tt.query)
			}
			if intent != tt.intent {
				t.Errorf("intent mismatch: got %s, want %s", intent, tt.intent)
			}
			if len(slots) != len(tt.slots) {
				t.Errorf("slots mismatch: got %v, want %v", slots, tt.slots)
			}
			for k, want := range tt.slots {
				if slots[k] != want {
					t.Errorf("slot %s: got %q, want %q", k, slots[k], want)
				}
			}
		})
	}
}

func TestClassifyByRulesNoMatch(t *testing.T) {
	uc := New(&mockLogger{}, &mockClusterRepo{}, nil, "default")

	_, _, ok := uc.classifyByRules("What's the weather like today?")
	if ok {
		t.Error("expected no pattern rule to match")
	}
}

func TestClassifyDeterministic(t *testing.T) {
	uc := New(&mockLogger{}, &mockClusterRepo{}, nil, "default")

	const q = "How many pods are in the default namespace?"
	i1, s1 := uc.classify(context.Background(), q)
	i2, s2 := uc.classify(context.Background(), q)

	if i1 != i2 {
		t.Errorf("intent differs across calls: %s vs %s", i1, i2)
	}
	if s1[query.SlotNamespace] != s2[query.SlotNamespace] {
		t.Errorf("slots differ across calls: %v vs %v", s1, s2)
	}
}

func TestParseGatewayResponse(t *testing.T) {
	uc := New(&mockLogger{}, &mockClusterRepo{}, nil, "default")
	ctx := context.Background()

	t.Run("plain JSON", func(t *testing.T) {
		intent, slots := uc.parseGatewayResponse(ctx, `{"intent": "pod_status", "slots": {"pod_name": "example-pod"}}`)
		if intent != query.IntentPodStatus {
			t.Errorf("unexpected intent: %s", intent)
		}
		if slots[query.SlotPodName] != "example-pod" {
			t.Errorf("unexpected slots: %v", slots)
		}
		if slots[query.SlotNamespace] != "default" {
			t.Errorf("expected namespace default applied, got %v", slots)
		}
	})

	t.Run("fenced JSON", func(t *testing.T) {
		intent, _ := uc.parseGatewayResponse(ctx, "```json\n{\"intent\": \"count_nodes\", \"slots\": {}}\n```")
		if intent != query.IntentCountNodes {
			t.Errorf("unexpected intent: %s", intent)
		}
	})

	t.Run("out-of-set intent", func(t *testing.T) {
		intent, _ := uc.parseGatewayResponse(ctx, `{"intent": "delete_pods", "slots": {}}`)
		if intent != query.IntentUnknown {
			t.Errorf("out-of-set intent must degrade to unknown, got %s", intent)
		}
	})

	t.Run("not JSON", func(t *testing.T) {
		intent, _ := uc.parseGatewayResponse(ctx, "I think you want to count pods")
		if intent != query.IntentUnknown {
			t.Errorf("non-JSON must degrade to unknown, got %s", intent)
		}
	})
}
