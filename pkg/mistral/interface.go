package mistral

import "context"

// IMistral defines the interface for the Mistral API client.
// Implementations are safe for concurrent use.
type IMistral interface {
	// ChatCompletion sends a chat completion request to the Mistral API.
	ChatCompletion(ctx context.Context, req *Request) (*Response, error)

	// Model returns the model being used.
	Model() string
}

// New creates a new Mistral client with the given configuration.
func New(cfg Config) (IMistral, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newMistralImpl(cfg), nil
}
