package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"kube-query-agent/internal/query"
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

type mockUseCase struct {
	answerFunc func(ctx context.Context, input query.QueryInput) (query.QueryOutput, error)
}

func (m *mockUseCase) Answer(ctx context.Context, input query.QueryInput) (query.QueryOutput, error) {
	if m.answerFunc != nil {
		return m.answerFunc(ctx, input)
	}
	return query.QueryOutput{Query: input.Query, Answer: "ok"}, nil
}

func newTestRouter(uc query.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := New(&mockLogger{}, uc)
	r.POST("/api/v1/query", h.Answer)
	return r
}

func postQuery(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/query", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAnswerHandler(t *testing.T) {
	uc := &mockUseCase{
		answerFunc: func(ctx context.Context, input query.QueryInput) (query.QueryOutput, error) {
			return query.QueryOutput{
				Query:  input.Query,
				Answer: "There are 2 nodes in the cluster.",
			}, nil
		},
	}

	w := postQuery(t, newTestRouter(uc), `{"query": "How many nodes are there in the cluster?"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		Data answerResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Data.Answer != "There are 2 nodes in the cluster." {
		t.Errorf("unexpected answer: %q", resp.Data.Answer)
	}
	if resp.Data.Query != "How many nodes are there in the cluster?" {
		t.Errorf("expected query echoed back, got %q", resp.Data.Query)
	}
}

func TestAnswerHandlerEmptyQuery(t *testing.T) {
	r := newTestRouter(&mockUseCase{})

	for _, body := range []string{`{}`, `{"query": ""}`, `{"query": "   "}`} {
		w := postQuery(t, r, body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("body %s: expected 400, got %d", body, w.Code)
		}
	}
}

func TestAnswerHandlerMalformedBody(t *testing.T) {
	w := postQuery(t, newTestRouter(&mockUseCase{}), `not json`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestAnswerHandlerUseCaseError(t *testing.T) {
	uc := &mockUseCase{
		answerFunc: func(ctx context.Context, input query.QueryInput) (query.QueryOutput, error) {
			return query.QueryOutput{}, query.ErrEmptyQuery
		},
	}

	w := postQuery(t, newTestRouter(uc), `{"query": "x"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}
