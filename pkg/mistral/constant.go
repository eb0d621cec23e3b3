package mistral

import "time"

const (
	// DefaultBaseURL is the Mistral API endpoint.
	DefaultBaseURL = "https://api.mistral.ai"

	// DefaultModel is used when no model is configured.
	DefaultModel = "mistral-small-latest"

	// DefaultTimeout bounds a single API call.
	DefaultTimeout = 15 * time.Second
)
