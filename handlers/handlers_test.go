package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"postboard/auth"
	"postboard/config"
	"postboard/db"
	"postboard/models"

	"github.com/gin-gonic/gin"
)

// Setup a test server with a fresh temp database
func setupTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tmpFile, err := os.CreateTemp("", "postboard-test-*.db")
	if err != nil {
		t.Fatal(err)
	}
	tmpFile.Close()
	t.Cleanup(func() { os.Remove(tmpFile.Name()) })

	config.MYSQL_DSN = ""
	config.SQLITE_FILE = tmpFile.Name()
	config.JWT_SECRET = "test-secret"
	config.GOOGLE_CLIENT_ID = "test-client-id"
	config.ACCESS_TOKEN_MINUTES = 5
	config.REFRESH_TOKEN_HOURS = 24
	db.Init()
	models.Init()
	auth.Init()

	router := gin.New()
	Routes(router)
	ts := httptest.NewServer(router)
	t.Cleanup(ts.Close)
	return ts
}

// Helper: perform a JSON request, return status and decoded body
func doJSON(t *testing.T, ts *httptest.Server, method, path, token string, body interface{}) (int, map[string]interface{}) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, ts.URL+path, reader)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)
	decoded := map[string]interface{}{}
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &decoded)
	}
	return resp.StatusCode, decoded
}

// Same as doJSON but for endpoints returning a JSON array
func doJSONList(t *testing.T, ts *httptest.Server, method, path, token string) (int, []map[string]interface{}) {
	t.Helper()
	req, err := http.NewRequest(method, ts.URL+path, nil)
	if err != nil {
		t.Fatal(err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)
	decoded := []map[string]interface{}{}
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &decoded)
	}
	return resp.StatusCode, decoded
}

// Helper: register a user and return its access token
func registerUser(t *testing.T, ts *httptest.Server, username string) string {
	t.Helper()
	status, body := doJSON(t, ts, http.MethodPost, "/auth/register/", "", map[string]string{
		"username": username,
		"email":    username + "@example.com",
		"password": "secret123",
	})
	if status != http.StatusCreated {
		t.Fatalf("register %q: expected status 201, got %d (%v)", username, status, body)
	}
	access, ok := body["access"].(string)
	if !ok || access == "" {
		t.Fatalf("register %q: no access token in response: %v", username, body)
	}
	return access
}
