package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"kube-query-agent/internal/query"
	"kube-query-agent/internal/query/repository"
)

// Answer runs the linear pipeline: classify, dispatch, format. Any step's
// failure is converted into a user-facing sentence; the only error returned
// is ErrEmptyQuery for blank input.
func (uc *implUseCase) Answer(ctx context.Context, input query.QueryInput) (query.QueryOutput, error) {
	text := strings.TrimSpace(input.Query)
	if text == "" {
		return query.QueryOutput{}, query.ErrEmptyQuery
	}

	intent, slots := uc.classify(ctx, text)
	uc.l.Infof(ctx, "classified query %q as intent=%s slots=%v", text, intent, slots)

	result, err := uc.dispatch(ctx, intent, slots)
	if err != nil {
		return query.QueryOutput{
			Query:  input.Query,
			Answer: uc.answerForError(ctx, intent, slots, err),
			Intent: intent,
		}, nil
	}

	return query.QueryOutput{
		Query:  input.Query,
		Answer: format(intent, slots, result),
		Intent: intent,
	}, nil
}

// answerForError translates dispatch failures into fixed sentences. Full
// error detail goes to the log, never to the caller.
func (uc *implUseCase) answerForError(ctx context.Context, intent query.Intent, slots query.Slots, err error) string {
	var missing *query.MissingSlotError
	if errors.As(err, &missing) {
		uc.l.Infof(ctx, "clarification needed: %v", err)
		return formatMissingSlot(missing.Slot)
	}

	var notFound *repository.NotFoundError
	if errors.As(err, &notFound) {
		uc.l.Infof(ctx, "resource not found: %v", err)
		return formatNotFound(notFound)
	}

	uc.l.Errorf(ctx, "cluster accessor failed: intent=%s slots=%v err=%v", intent, slots, err)
	return AnswerClusterFailure
}

func formatMissingSlot(slot string) string {
	names := map[string]string{
		query.SlotNamespace:      "namespace",
		query.SlotPodName:        "pod name",
		query.SlotDeploymentName: "deployment name",
	}
	name, ok := names[slot]
	if !ok {
		name = slot
	}
	return fmt.Sprintf(AnswerMissingSlot, name)
}

func formatNotFound(nf *repository.NotFoundError) string {
	if nf.Kind == "deployment" {
		return fmt.Sprintf(AnswerDeploymentNotFound, nf.Name, nf.Namespace)
	}
	return fmt.Sprintf(AnswerPodNotFound, nf.Name, nf.Namespace)
}
