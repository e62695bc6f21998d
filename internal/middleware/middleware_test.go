package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"pet-health/internal/platform/logger"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestAPIToken(t *testing.T) {
	h := APIToken("s3cret", "/health")(okHandler)

	cases := []struct {
		name   string
		path   string
		header string
		want   int
	}{
		{"missing", "/visits", "", http.StatusUnauthorized},
		{"wrong", "/visits", "Bearer nope", http.StatusUnauthorized},
		{"wrong scheme", "/visits", "Basic s3cret", http.StatusUnauthorized},
		{"ok", "/visits", "Bearer s3cret", http.StatusOK},
		{"lowercase scheme", "/visits", "bearer s3cret", http.StatusOK},
		{"query token", "/ws?access_token=s3cret", "", http.StatusOK},
		{"exempt", "/health", "", http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)
			if rr.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, rr.Code)
			}
		})
	}
}

func TestAPIToken_DisabledWhenEmpty(t *testing.T) {
	rr := httptest.NewRecorder()
	APIToken("")(okHandler).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/visits", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 without token configured, got %d", rr.Code)
	}
}

func TestRecover_LogsAndReturns500(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	h := chimw.RequestID(Recover(logger.FromZap(zap.New(core)))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/visits", nil))
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rr.Code)
	}
	entries := logs.FilterMessage("panic recovered").All()
	if len(entries) != 1 || entries[0].ContextMap()["request_id"] == "" {
		t.Fatalf("expected one panic log with request id, got %+v", entries)
	}
}

func TestRequestLog(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	h := chimw.RequestID(RequestLog(logger.FromZap(zap.New(core)))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	})))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/pets/rex/drinks", nil))

	entries := logs.FilterMessage("request failed").All()
	if len(entries) != 1 {
		t.Fatalf("expected one warn entry, got %d", logs.Len())
	}
	fields := entries[0].ContextMap()
	if fields["status"] != int64(http.StatusServiceUnavailable) || fields["path"] != "/pets/rex/drinks" {
		t.Fatalf("unexpected fields %v", fields)
	}
}
