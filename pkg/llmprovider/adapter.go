package llmprovider

import (
	"context"

	"kube-query-agent/pkg/gemini"
	"kube-query-agent/pkg/mistral"
)

// MistralAdapter adapts pkg/mistral to the Provider interface.
type MistralAdapter struct {
	client mistral.IMistral
}

// NewMistralAdapter creates a new Mistral adapter.
func NewMistralAdapter(client mistral.IMistral) *MistralAdapter {
	return &MistralAdapter{client: client}
}

// Complete implements the Provider interface.
func (a *MistralAdapter) Complete(ctx context.Context, req *Request) (*Response, error) {
	// Mistral has no dedicated system-instruction field; prepend a system message.
	messages := make([]mistral.Message, 0, len(req.Messages)+1)
	if req.SystemInstruction != "" {
		messages = append(messages, mistral.Message{Role: "system", Content: req.SystemInstruction})
	}
	for _, msg := range req.Messages {
		messages = append(messages, mistral.Message{Role: msg.Role, Content: msg.Content})
	}

	resp, err := a.client.ChatCompletion(ctx, &mistral.Request{
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return nil, err
	}

	return &Response{
		Content:      resp.Content,
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns the provider name.
func (a *MistralAdapter) Name() string { return "mistral" }

// Model returns the model name.
func (a *MistralAdapter) Model() string { return a.client.Model() }

// GeminiAdapter adapts pkg/gemini to the Provider interface.
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter.
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// Complete implements the Provider interface.
func (a *GeminiAdapter) Complete(ctx context.Context, req *Request) (*Response, error) {
	messages := make([]gemini.Message, len(req.Messages))
	for i, msg := range req.Messages {
		role := msg.Role
		if role == "assistant" {
			role = "model"
		}
		messages[i] = gemini.Message{Role: role, Content: msg.Content}
	}

	resp, err := a.client.GenerateContent(ctx, &gemini.Request{
		SystemInstruction: req.SystemInstruction,
		Messages:          messages,
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	})
	if err != nil {
		return nil, err
	}

	return &Response{
		Content:      resp.Content,
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns the provider name.
func (a *GeminiAdapter) Name() string { return "gemini" }

// Model returns the model name.
func (a *GeminiAdapter) Model() string { return a.client.Model() }
