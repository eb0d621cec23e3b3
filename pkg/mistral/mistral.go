package mistral

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

type mistralImpl struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// newMistralImpl creates a new Mistral implementation.
func newMistralImpl(cfg Config) *mistralImpl {
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &mistralImpl{
		apiKey:     cfg.APIKey,
		model:      model,
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// ChatCompletion sends a chat completion request to the Mistral API.
func (m *mistralImpl) ChatCompletion(ctx context.Context, req *Request) (*Response, error) {
	wireReq := m.transformRequest(req)
	wireResp, err := m.callAPI(ctx, wireReq)
	if err != nil {
		return nil, err
	}
	return transformResponse(wireResp)
}

// Model returns the model being used.
func (m *mistralImpl) Model() string {
	return m.model
}

// callAPI sends a request to the Mistral chat completions endpoint.
func (m *mistralImpl) callAPI(ctx context.Context, req chatRequest) (*chatResponse, error) {
	url := fmt.Sprintf("%s/v1/chat/completions", m.baseURL)

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("mistral: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("mistral: failed to create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+m.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := m.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("mistral: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("mistral: API error %d: %s", resp.StatusCode, string(raw))
	}

	var result chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("mistral: failed to decode response: %w", err)
	}

	return &result, nil
}

// transformRequest converts the normalized request to the wire format.
func (m *mistralImpl) transformRequest(req *Request) chatRequest {
	messages := make([]chatMessage, len(req.Messages))
	for i, msg := range req.Messages {
		messages[i] = chatMessage{Role: msg.Role, Content: msg.Content}
	}
	return chatRequest{
		Model:       m.model,
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
}

// transformResponse converts the wire response back to the normalized form.
func transformResponse(resp *chatResponse) (*Response, error) {
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("mistral: response has no choices")
	}
	return &Response{
		Content: strings.TrimSpace(resp.Choices[0].Message.Content),
		Usage: Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}
