package query

import "context"

// UseCase defines the business logic interface for the query domain.
type UseCase interface {
	// Answer classifies a natural-language query, reads the cluster, and
	// returns a deterministic sentence. Every query produces exactly one
	// answer: classification failures, missing slots, and accessor errors
	// are all converted into user-facing sentences. The only error returned
	// is ErrEmptyQuery for blank input.
	Answer(ctx context.Context, input QueryInput) (QueryOutput, error)
}
