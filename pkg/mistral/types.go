package mistral

import (
	"errors"
	"net/http"
	"time"
)

// Config configures the Mistral client.
type Config struct {
	APIKey     string
	Model      string        // defaults to DefaultModel
	BaseURL    string        // defaults to DefaultBaseURL
	Timeout    time.Duration // defaults to DefaultTimeout
	HTTPClient *http.Client  // optional, mainly for tests
}

// Validate checks required config fields.
func (c Config) Validate() error {
	if c.APIKey == "" {
		return errors.New("mistral: API key is required")
	}
	return nil
}

// Request is a normalized chat completion request.
type Request struct {
	Messages    []Message
	Temperature float64
	MaxTokens   int
}

// Message is a single chat message.
type Message struct {
	Role    string // "system", "user", "assistant"
	Content string
}

// Response is a normalized chat completion response.
type Response struct {
	Content string
	Usage   Usage
}

// Usage tracks token consumption reported by the API.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// --- Wire types (Mistral chat completions API) ---

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature,omitempty"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []chatChoice `json:"choices"`
	Usage   chatUsage    `json:"usage"`
}

type chatChoice struct {
	Message chatMessage `json:"message"`
}

type chatUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}
