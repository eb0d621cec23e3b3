package llmprovider_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"kube-query-agent/pkg/llmprovider"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type mockProvider struct {
	name  string
	resp  *llmprovider.Response
	err   error
	calls int
}

func (m *mockProvider) Complete(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.calls++
	return m.resp, m.err
}

func (m *mockProvider) Name() string  { return m.name }
func (m *mockProvider) Model() string { return m.name + "-model" }

func TestManagerNoProviders(t *testing.T) {
	m := llmprovider.NewManager(nil, &llmprovider.Config{RetryAttempts: 1}, &mockLogger{})

	_, err := m.Complete(context.Background(), &llmprovider.Request{})
	if !errors.Is(err, llmprovider.ErrNoProvidersConfigured) {
		t.Errorf("expected ErrNoProvidersConfigured, got %v", err)
	}
}

func TestManagerFirstProviderSucceeds(t *testing.T) {
	primary := &mockProvider{name: "mistral", resp: &llmprovider.Response{Content: "count pods"}}
	fallback := &mockProvider{name: "gemini", resp: &llmprovider.Response{Content: "unused"}}

	m := llmprovider.NewManager(
		[]llmprovider.Provider{primary, fallback},
		&llmprovider.Config{FallbackEnabled: true, RetryAttempts: 1},
		&mockLogger{},
	)

	resp, err := m.Complete(context.Background(), &llmprovider.Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Content != "count pods" {
		t.Errorf("unexpected content: %q", resp.Content)
	}
	if fallback.calls != 0 {
		t.Errorf("fallback should not be called, got %d calls", fallback.calls)
	}
}

func TestManagerFallsBackOnFailure(t *testing.T) {
	primary := &mockProvider{name: "mistral", err: errors.New("rate limited")}
	fallback := &mockProvider{name: "gemini", resp: &llmprovider.Response{Content: "ok"}}

	m := llmprovider.NewManager(
		[]llmprovider.Provider{primary, fallback},
		&llmprovider.Config{FallbackEnabled: true, RetryAttempts: 2, RetryDelay: time.Millisecond},
		&mockLogger{},
	)

	resp, err := m.Complete(context.Background(), &llmprovider.Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Content != "ok" {
		t.Errorf("unexpected content: %q", resp.Content)
	}
	if primary.calls != 2 {
		t.Errorf("expected 2 retry attempts on primary, got %d", primary.calls)
	}
}

func TestManagerFallbackDisabled(t *testing.T) {
	primary := &mockProvider{name: "mistral", err: errors.New("boom")}
	fallback := &mockProvider{name: "gemini", resp: &llmprovider.Response{Content: "ok"}}

	m := llmprovider.NewManager(
		[]llmprovider.Provider{primary, fallback},
		&llmprovider.Config{FallbackEnabled: false, RetryAttempts: 1},
		&mockLogger{},
	)

	_, err := m.Complete(context.Background(), &llmprovider.Request{})
	if !errors.Is(err, llmprovider.ErrAllProvidersFailed) {
		t.Errorf("expected ErrAllProvidersFailed, got %v", err)
	}
	if fallback.calls != 0 {
		t.Errorf("fallback should not be called when disabled, got %d calls", fallback.calls)
	}
}

func TestManagerAllProvidersFail(t *testing.T) {
	a := &mockProvider{name: "mistral", err: errors.New("down")}
	b := &mockProvider{name: "gemini", err: errors.New("also down")}

	m := llmprovider.NewManager(
		[]llmprovider.Provider{a, b},
		&llmprovider.Config{FallbackEnabled: true, RetryAttempts: 1},
		&mockLogger{},
	)

	_, err := m.Complete(context.Background(), &llmprovider.Request{})
	if !errors.Is(err, llmprovider.ErrAllProvidersFailed) {
		t.Errorf("expected ErrAllProvidersFailed, got %v", err)
	}
}
