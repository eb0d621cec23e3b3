package usecase

import (
	"fmt"
	"strings"

	"kube-query-agent/internal/query"
)

// format converts a structured accessor result into the answer sentence for
// its intent. Pure and total: every (intent, result) pairing produces a
// non-empty string, and unexpected shapes degrade to a generic sentence
// rather than panicking.
func format(intent query.Intent, slots query.Slots, result query.Result) string {
	switch intent {
	case query.IntentCountPods:
		if r, ok := result.(query.CountResult); ok {
			return fmt.Sprintf(AnswerCountPods, r.Count, slots[query.SlotNamespace])
		}

	case query.IntentListPods:
		if r, ok := result.(query.PodListResult); ok {
			if len(r.Names) == 0 {
				return fmt.Sprintf(AnswerNoPods, slots[query.SlotNamespace])
			}
			return strings.Join(r.Names, ", ")
		}

	case query.IntentPodStatus:
		if r, ok := result.(query.StatusResult); ok {
			return fmt.Sprintf(AnswerPodStatus, r.PodName, r.Status)
		}

	case query.IntentCountNodes:
		if r, ok := result.(query.CountResult); ok {
			return fmt.Sprintf(AnswerCountNodes, r.Count)
		}

	case query.IntentPodsForDeployment:
		if r, ok := result.(query.PodListResult); ok {
			if len(r.Names) == 0 {
				return fmt.Sprintf(AnswerNoPodsForDeployment, slots[query.SlotDeploymentName])
			}
			return fmt.Sprintf(AnswerPodsForDeployment, slots[query.SlotDeploymentName], strings.Join(r.Names, ", "))
		}

	case query.IntentPodLogs:
		if r, ok := result.(query.LogsResult); ok {
			header := fmt.Sprintf(AnswerPodLogsHeader, r.TailLines, r.PodName)
			if len(r.Lines) == 0 {
				return header + " (no log output)"
			}
			return header + "\n" + strings.Join(r.Lines, "\n")
		}

	case query.IntentAPIServerHealth:
		if r, ok := result.(query.HealthResult); ok {
			if r.Accessible {
				return AnswerAPIServerUp
			}
			return AnswerAPIServerDown
		}

	case query.IntentUnknown:
		return AnswerUnknownIntent
	}

	return AnswerUnable
}
