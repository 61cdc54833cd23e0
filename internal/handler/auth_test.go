package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRegisterEndpoint(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"first_name": "Alice",
		"last_name":  "Doe",
		"email":      "alice@example.com",
		"password":   "secret123",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Message string `json:"message"`
	}
	decodeBody(t, rec, &resp)
	if resp.Message != "Successfully created user" {
		t.Errorf("unexpected message: %s", resp.Message)
	}
}

func TestRegisterEndpoint_Failures(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	// Taken email
	first := map[string]string{"email": "alice@example.com", "password": "secret123"}
	if rec := doRequest(t, router, http.MethodPost, "/api/v1/auth/register", "", first); rec.Code != http.StatusCreated {
		t.Fatalf("seed register failed: %d", rec.Code)
	}

	tests := []struct {
		name     string
		body     any
		wantCode int
		wantErr  string
	}{
		{"duplicate email", first, http.StatusConflict, "ALREADY_REGISTERED"},
		{"missing password", map[string]string{"email": "bob@example.com"}, http.StatusBadRequest, "MISSING_FIELD"},
		{"missing email", map[string]string{"password": "secret123"}, http.StatusBadRequest, "MISSING_FIELD"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			rec := doRequest(t, router, http.MethodPost, "/api/v1/auth/register", "", test.body)
			if rec.Code != test.wantCode {
				t.Errorf("expected %d, got %d: %s", test.wantCode, rec.Code, rec.Body.String())
			}
			var resp struct {
				Code string `json:"code"`
			}
			decodeBody(t, rec, &resp)
			if resp.Code != test.wantErr {
				t.Errorf("expected code %s, got %s", test.wantErr, resp.Code)
			}
		})
	}
}

func TestRegisterEndpoint_InvalidJSON(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestLoginEndpoint(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	token := registerAndLogin(t, router, "alice@example.com", "secret123")
	if token == "" {
		t.Fatal("expected token")
	}

	tests := []struct {
		name string
		body map[string]string
	}{
		{"wrong password", map[string]string{"email": "alice@example.com", "password": "wrong"}},
		{"unknown email", map[string]string{"email": "ghost@example.com", "password": "secret123"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			rec := doRequest(t, router, http.MethodPost, "/api/v1/auth/login", "", test.body)
			if rec.Code != http.StatusUnauthorized {
				t.Errorf("expected 401, got %d: %s", rec.Code, rec.Body.String())
			}
			var resp struct {
				Code string `json:"code"`
			}
			decodeBody(t, rec, &resp)
			if resp.Code != "INVALID_CREDENTIALS" {
				t.Errorf("expected INVALID_CREDENTIALS, got %s", resp.Code)
			}
		})
	}
}

func TestLogoutEndpoint(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	token := registerAndLogin(t, router, "alice@example.com", "secret123")

	rec := doRequest(t, router, http.MethodPost, "/api/v1/auth/logout", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Message string `json:"message"`
	}
	decodeBody(t, rec, &resp)
	if resp.Message != "Successfully logged out" {
		t.Errorf("unexpected message: %s", resp.Message)
	}

	// Without a token the endpoint is unreachable
	rec = doRequest(t, router, http.MethodPost, "/api/v1/auth/logout", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without token, got %d", rec.Code)
	}
}

func TestResetPasswordEndpoint(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	token := registerAndLogin(t, router, "alice@example.com", "old-secret")

	rec := doRequest(t, router, http.MethodPost, "/api/v1/auth/reset-password", token, map[string]string{
		"email":        "alice@example.com",
		"password":     "old-secret",
		"new_password": "new-secret",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	// Old credentials no longer work, new ones do
	rec = doRequest(t, router, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email": "alice@example.com", "password": "old-secret",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("old password should be rejected, got %d", rec.Code)
	}

	rec = doRequest(t, router, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email": "alice@example.com", "password": "new-secret",
	})
	if rec.Code != http.StatusOK {
		t.Errorf("new password should work, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestResetPasswordEndpoint_Failures(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	token := registerAndLogin(t, router, "alice@example.com", "old-secret")

	tests := []struct {
		name     string
		body     map[string]string
		wantCode int
	}{
		{
			"wrong old password",
			map[string]string{"email": "alice@example.com", "password": "wrong", "new_password": "new-secret"},
			http.StatusUnauthorized,
		},
		{
			"missing new password",
			map[string]string{"email": "alice@example.com", "password": "old-secret"},
			http.StatusBadRequest,
		},
		{
			"missing email",
			map[string]string{"password": "old-secret", "new_password": "new-secret"},
			http.StatusBadRequest,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			rec := doRequest(t, router, http.MethodPost, "/api/v1/auth/reset-password", token, test.body)
			if rec.Code != test.wantCode {
				t.Errorf("expected %d, got %d: %s", test.wantCode, rec.Code, rec.Body.String())
			}
		})
	}
}
