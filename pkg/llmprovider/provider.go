package llmprovider

import "context"

// Provider defines the interface for LLM providers.
type Provider interface {
	// Complete sends a text completion request and returns a response.
	Complete(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name (e.g., "mistral", "gemini").
	Name() string

	// Model returns the model being used.
	Model() string
}

// Request represents a normalized LLM completion request.
type Request struct {
	SystemInstruction string
	Messages          []Message
	Temperature       float64
	MaxTokens         int
}

// Message represents a conversation message.
type Message struct {
	Role    string // "user", "assistant", "system"
	Content string
}

// Response represents a normalized LLM completion response.
type Response struct {
	Content      string
	ProviderName string
	ModelName    string
	Usage        *Usage
}

// Usage tracks token consumption.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
