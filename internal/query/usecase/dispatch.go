package usecase

import (
	"context"
	"strconv"

	"kube-query-agent/internal/query"
)

// dispatch routes an intent to the matching cluster read. Exactly one
// logical cluster read per intent; retries, if any, belong to the accessor.
func (uc *implUseCase) dispatch(ctx context.Context, intent query.Intent, slots query.Slots) (query.Result, error) {
	if intent == query.IntentUnknown {
		// Short-circuit: no accessor call for unrecognized queries.
		return nil, nil
	}

	if err := validateSlots(intent, slots); err != nil {
		return nil, err
	}

	switch intent {
	case query.IntentCountPods:
		pods, err := uc.repo.ListPods(ctx, slots[query.SlotNamespace])
		if err != nil {
			return nil, err
		}
		return query.CountResult{Count: len(pods)}, nil

	case query.IntentListPods:
		pods, err := uc.repo.ListPods(ctx, slots[query.SlotNamespace])
		if err != nil {
			return nil, err
		}
		names := make([]string, len(pods))
		for i, pod := range pods {
			names[i] = pod.Name
		}
		return query.PodListResult{Names: names}, nil

	case query.IntentPodStatus:
		pod, err := uc.repo.GetPod(ctx, slots[query.SlotNamespace], slots[query.SlotPodName])
		if err != nil {
			return nil, err
		}
		return query.StatusResult{PodName: pod.Name, Status: pod.Status}, nil

	case query.IntentCountNodes:
		nodes, err := uc.repo.ListNodes(ctx)
		if err != nil {
			return nil, err
		}
		return query.CountResult{Count: len(nodes)}, nil

	case query.IntentPodsForDeployment:
		pods, err := uc.repo.ListDeploymentPods(ctx, slots[query.SlotNamespace], slots[query.SlotDeploymentName])
		if err != nil {
			return nil, err
		}
		names := make([]string, len(pods))
		for i, pod := range pods {
			names[i] = pod.Name
		}
		return query.PodListResult{Names: names}, nil

	case query.IntentPodLogs:
		tail := tailLines(slots)
		lines, err := uc.repo.GetPodLogs(ctx, slots[query.SlotNamespace], slots[query.SlotPodName], tail)
		if err != nil {
			return nil, err
		}
		return query.LogsResult{PodName: slots[query.SlotPodName], TailLines: tail, Lines: lines}, nil

	case query.IntentAPIServerHealth:
		if err := uc.repo.Ping(ctx); err != nil {
			uc.l.Warnf(ctx, "API server ping failed: %v", err)
			return query.HealthResult{Accessible: false}, nil
		}
		return query.HealthResult{Accessible: true}, nil
	}

	return nil, nil
}

// requiredSlots lists the slots each intent cannot be dispatched without.
var requiredSlots = map[query.Intent][]string{
	query.IntentCountPods:         {query.SlotNamespace},
	query.IntentListPods:          {query.SlotNamespace},
	query.IntentPodStatus:         {query.SlotNamespace, query.SlotPodName},
	query.IntentPodsForDeployment: {query.SlotNamespace, query.SlotDeploymentName},
	query.IntentPodLogs:           {query.SlotNamespace, query.SlotPodName},
}

func validateSlots(intent query.Intent, slots query.Slots) error {
	for _, slot := range requiredSlots[intent] {
		if slots[slot] == "" {
			return &query.MissingSlotError{Intent: intent, Slot: slot}
		}
	}
	return nil
}

func tailLines(slots query.Slots) int {
	if raw, ok := slots[query.SlotTailLines]; ok {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			return n
		}
	}
	return DefaultLogTailLines
}
