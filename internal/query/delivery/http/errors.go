package http

import (
	"errors"

	"kube-query-agent/internal/query"
)

// mapError translates domain errors into messages safe to return to the
// caller. Anything unrecognized gets a generic message so internal detail
// stays in the log.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, query.ErrEmptyQuery):
		return query.ErrEmptyQuery
	default:
		return errors.New("invalid request")
	}
}
