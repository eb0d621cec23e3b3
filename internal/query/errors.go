package query

import (
	"errors"
	"fmt"
)

// Domain-specific errors for the query package.
var (
	ErrEmptyQuery = errors.New("query text is empty")
)

// MissingSlotError indicates a required slot could not be extracted from the
// query. It is recovered into a clarification answer, never surfaced raw.
type MissingSlotError struct {
	Intent Intent
	Slot   string
}

func (e *MissingSlotError) Error() string {
	return fmt.Sprintf("intent %s: required slot %q is missing", e.Intent, e.Slot)
}
