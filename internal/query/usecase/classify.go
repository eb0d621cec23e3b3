package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"kube-query-agent/internal/query"
	"kube-query-agent/pkg/llmprovider"
)

// Pattern rules cover the documented query shapes with zero latency and no
// external dependency. They take priority over the gateway.
var (
	reCountPods  = regexp.MustCompile(`(?i)how many pods`)
	reListPods   = regexp.MustCompile(`(?i)list (?:all )?(?:the )?pods`)
	rePodStatus  = regexp.MustCompile(`(?i)status of (?:the )?pod`)
	reCountNodes = regexp.MustCompile(`(?i)how many nodes`)
	rePodLogs    = regexp.MustCompile(`(?i)\blogs?\b.*\bpod\b|\bpod\b.*\blogs?\b`)
	reDeployment = regexp.MustCompile(`(?i)(?:spawned|owned|created|managed) by`)
	reAPIServer  = regexp.MustCompile(`(?i)api ?server`)

	// Slot extraction. Names are captured verbatim; surrounding quotes are
	// part of the pattern, not the value.
	reNamespace      = regexp.MustCompile(`(?i)in (?:the )?['"]?([\w-]+)['"]? namespace`)
	reNamedPod       = regexp.MustCompile(`(?i)named\s+['"]?([\w.-]+)['"]?`)
	reQuotedPod      = regexp.MustCompile(`(?i)pod\s+['"]([\w.-]+)['"]`)
	reOfPod          = regexp.MustCompile(`(?i)(?:of|for|from)\s+(?:the\s+)?pod\s+['"]?([\w.-]+)['"]?`)
	reDeploymentName = regexp.MustCompile(`(?i)by\s+(?:the\s+)?(?:deployment\s+)?['"]?([\w.-]+)['"]?`)
	reTailLines      = regexp.MustCompile(`(?i)last\s+(\d+)\s+(?:log\s+)?lines`)
)

// classify maps free text to an intent plus extracted slots. The pattern
// path is deterministic; the gateway path is best effort and degrades to
// IntentUnknown on any failure.
func (uc *implUseCase) classify(ctx context.Context, text string) (query.Intent, query.Slots) {
	if intent, slots, ok := uc.classifyByRules(text); ok {
		return intent, slots
	}
	return uc.classifyByGateway(ctx, text)
}

// classifyByRules applies the deterministic keyword rules.
func (uc *implUseCase) classifyByRules(text string) (query.Intent, query.Slots, bool) {
	switch {
	case reCountPods.MatchString(text):
		return query.IntentCountPods, uc.namespaceSlots(text), true

	case reListPods.MatchString(text):
		return query.IntentListPods, uc.namespaceSlots(text), true

	case rePodStatus.MatchString(text):
		slots := uc.namespaceSlots(text)
		if name := extractPodName(text); name != "" {
			slots[query.SlotPodName] = name
		}
		return query.IntentPodStatus, slots, true

	case reCountNodes.MatchString(text):
		return query.IntentCountNodes, query.Slots{}, true

	case rePodLogs.MatchString(text):
		slots := uc.namespaceSlots(text)
		if name := extractPodName(text); name != "" {
			slots[query.SlotPodName] = name
		}
		if m := reTailLines.FindStringSubmatch(text); m != nil {
			slots[query.SlotTailLines] = m[1]
		}
		return query.IntentPodLogs, slots, true

	case reDeployment.MatchString(text):
		slots := uc.namespaceSlots(text)
		if m := reDeploymentName.FindStringSubmatch(text); m != nil {
			slots[query.SlotDeploymentName] = m[1]
		}
		return query.IntentPodsForDeployment, slots, true

	case reAPIServer.MatchString(text):
		return query.IntentAPIServerHealth, query.Slots{}, true
	}

	return query.IntentUnknown, nil, false
}

// classifyByGateway asks the LLM gateway to classify the query. The response
// is untrusted: any transport failure, non-JSON payload, or out-of-set
// intent degrades to IntentUnknown.
func (uc *implUseCase) classifyByGateway(ctx context.Context, text string) (query.Intent, query.Slots) {
	if uc.llm == nil {
		return query.IntentUnknown, query.Slots{}
	}

	key := normalizeQuery(text)
	if cached, ok := uc.gatewayCache.Get(key); ok {
		return cached.intent, cloneSlots(cached.slots)
	}

	resp, err := uc.llm.Complete(ctx, &llmprovider.Request{
		Messages: []llmprovider.Message{
			{Role: "user", Content: fmt.Sprintf(ClassificationPrompt, text)},
		},
		Temperature: 0.1,
		MaxTokens:   200,
	})
	if err != nil {
		uc.l.Warnf(ctx, "gateway classification failed, falling back to unknown: %v", err)
		return query.IntentUnknown, query.Slots{}
	}

	intent, slots := uc.parseGatewayResponse(ctx, resp.Content)
	if intent != query.IntentUnknown {
		uc.gatewayCache.Add(key, classification{intent: intent, slots: cloneSlots(slots)})
	}
	return intent, slots
}

// parseGatewayResponse defensively parses the model output.
func (uc *implUseCase) parseGatewayResponse(ctx context.Context, content string) (query.Intent, query.Slots) {
	payload := extractJSONObject(content)
	if payload == "" {
		uc.l.Warnf(ctx, "gateway returned no JSON object: %q", content)
		return query.IntentUnknown, query.Slots{}
	}

	var parsed struct {
		Intent string            `json:"intent"`
		Slots  map[string]string `json:"slots"`
	}
	if err := json.Unmarshal([]byte(payload), &parsed); err != nil {
		uc.l.Warnf(ctx, "gateway returned malformed JSON: %v", err)
		return query.IntentUnknown, query.Slots{}
	}

	intent := query.Intent(parsed.Intent)
	if !intent.Valid() {
		uc.l.Warnf(ctx, "gateway returned out-of-set intent %q", parsed.Intent)
		return query.IntentUnknown, query.Slots{}
	}

	slots := query.Slots{}
	for k, v := range parsed.Slots {
		if v != "" {
			slots[k] = v
		}
	}
	if needsNamespace(intent) && slots[query.SlotNamespace] == "" {
		slots[query.SlotNamespace] = uc.defaultNamespace
	}

	return intent, slots
}

// namespaceSlots extracts the namespace or falls back to the default.
func (uc *implUseCase) namespaceSlots(text string) query.Slots {
	slots := query.Slots{}
	if m := reNamespace.FindStringSubmatch(text); m != nil {
		slots[query.SlotNamespace] = m[1]
	} else {
		slots[query.SlotNamespace] = uc.defaultNamespace
	}
	return slots
}

func extractPodName(text string) string {
	for _, re := range []*regexp.Regexp{reNamedPod, reQuotedPod, reOfPod} {
		if m := re.FindStringSubmatch(text); m != nil {
			return m[1]
		}
	}
	return ""
}

func needsNamespace(intent query.Intent) bool {
	switch intent {
	case query.IntentCountPods, query.IntentListPods, query.IntentPodStatus,
		query.IntentPodsForDeployment, query.IntentPodLogs:
		return true
	}
	return false
}

// extractJSONObject returns the outermost {...} span, tolerating markdown
// fences and prose around the payload.
func extractJSONObject(s string) string {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return ""
	}
	return s[start : end+1]
}

func normalizeQuery(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

func cloneSlots(slots query.Slots) query.Slots {
	out := make(query.Slots, len(slots))
	for k, v := range slots {
		out[k] = v
	}
	return out
}
