package gemini

import "time"

const (
	// DefaultAPIURL is the Gemini Generative Language API endpoint.
	DefaultAPIURL = "https://generativelanguage.googleapis.com/v1"

	// DefaultModel is used when no model is configured.
	DefaultModel = "gemini-1.5-flash"

	// DefaultTimeout bounds a single API call.
	DefaultTimeout = 15 * time.Second
)
