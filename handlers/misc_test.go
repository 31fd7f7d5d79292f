package handlers

import (
	"net/http"
	"testing"
)

func TestHealth(t *testing.T) {
	ts := setupTestServer(t)

	status, _ := doJSON(t, ts, http.MethodGet, "/health/", "", nil)
	if status != http.StatusOK {
		t.Errorf("expected status 200, got %d", status)
	}
}

func TestCsrf(t *testing.T) {
	ts := setupTestServer(t)

	status, body := doJSON(t, ts, http.MethodGet, "/csrf/", "", nil)
	if status != http.StatusOK {
		t.Fatalf("expected status 200, got %d", status)
	}
	token, ok := body["csrfToken"].(string)
	if !ok || token == "" {
		t.Errorf("expected a csrfToken, got %v", body)
	}

	_, second := doJSON(t, ts, http.MethodGet, "/csrf/", "", nil)
	if second["csrfToken"] == token {
		t.Error("expected a fresh token per request")
	}
}
