package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"eblog_backend/internal/handler"
)

func newTestRouter() http.Handler {
	return NewRouter(RouterConfig{
		AuthHandler: &handler.AuthHandler{},
		PostHandler: &handler.PostHandler{},
		JWTSecret:   "test-secret",
	})
}

func TestRouter_Welcome(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1", nil)
	rec := httptest.NewRecorder()

	newTestRouter().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["message"] != "Welcome to Eblog API!" {
		t.Errorf("message = %q, want the welcome message", body["message"])
	}
}

func TestRouter_Health(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	newTestRouter().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestRouter_CreatePostRequiresToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/post/create-post", nil)
	rec := httptest.NewRecorder()

	newTestRouter().ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}
