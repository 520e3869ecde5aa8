package middleware

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nicolas2456/Escaleras-Ferre/pkg/logging"
)

func TestRecovererConvertsPanicToJSON(t *testing.T) {
	logger := logging.NewWithWriter("error", io.Discard)
	mw := Recoverer(logger, "contacta al 3008611868")

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	mw(handler).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/chat", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response not JSON: %v", err)
	}
	if body["error"] != "Error interno del servidor" {
		t.Fatalf("unexpected error field %q", body["error"])
	}
	if body["response"] != "contacta al 3008611868" {
		t.Fatalf("unexpected response field %q", body["response"])
	}
}

func TestRecovererPassthrough(t *testing.T) {
	mw := Recoverer(nil, "")
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	mw(handler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusTeapot {
		t.Fatalf("status = %d, want passthrough 418", rec.Code)
	}
}
