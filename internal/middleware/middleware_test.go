package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, arg ...any)                    {}
func (nopLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) Info(ctx context.Context, arg ...any)                     {}
func (nopLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (nopLogger) Warn(ctx context.Context, arg ...any)                     {}
func (nopLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (nopLogger) Error(ctx context.Context, arg ...any)                    {}
func (nopLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (nopLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (nopLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (nopLogger) Panic(ctx context.Context, arg ...any)                    {}
func (nopLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

func newTestRouter(mw Middleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw.RequestID(), mw.Logging())
	r.GET("/ping", mw.RateLimit(), func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return r
}

func get(r *gin.Engine, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequestIDGenerated(t *testing.T) {
	r := newTestRouter(New(nopLogger{}, 0))

	w := get(r, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", w.Code)
	}
	if w.Header().Get(HeaderRequestID) == "" {
		t.Error("expected a generated request id on the response")
	}
}

func TestRequestIDPreserved(t *testing.T) {
	r := newTestRouter(New(nopLogger{}, 0))

	w := get(r, map[string]string{HeaderRequestID: "caller-id-1"})
	if got := w.Header().Get(HeaderRequestID); got != "caller-id-1" {
		t.Errorf("expected caller request id echoed back, got %q", got)
	}
}

func TestRateLimitExhaustion(t *testing.T) {
	// Burst of 2 per minute: third immediate request must be rejected.
	r := newTestRouter(New(nopLogger{}, 2))

	if w := get(r, nil); w.Code != http.StatusOK {
		t.Fatalf("first request: unexpected status %d", w.Code)
	}
	if w := get(r, nil); w.Code != http.StatusOK {
		t.Fatalf("second request: unexpected status %d", w.Code)
	}
	if w := get(r, nil); w.Code != http.StatusTooManyRequests {
		t.Errorf("third request: expected 429, got %d", w.Code)
	}
}

func TestRateLimitDisabled(t *testing.T) {
	r := newTestRouter(New(nopLogger{}, 0))

	for i := 0; i < 10; i++ {
		if w := get(r, nil); w.Code != http.StatusOK {
			t.Fatalf("request %d: unexpected status %d", i, w.Code)
		}
	}
}
