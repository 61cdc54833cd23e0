package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/weconnect/weconnect/internal/auth"
	"github.com/weconnect/weconnect/internal/metrics"
	"github.com/weconnect/weconnect/internal/middleware"
	"github.com/weconnect/weconnect/internal/repository"
	"github.com/weconnect/weconnect/internal/service"
)

// newTestRouter wires the API routes the way the server does, backed by
// a fresh in-memory store. Logout runs without a cache, so tokens are
// not revoked in these tests.
func newTestRouter(t *testing.T) chi.Router {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.NewDirectory(repository.New(), metrics.NewNoop())
	tokens := auth.NewTokenManager("test-secret", time.Hour)

	authHandler := NewAuthHandler(svc, tokens, nil, logger)
	businessHandler := NewBusinessHandler(svc, logger)
	base := New()

	requireAuth := middleware.Auth(middleware.AuthConfig{
		Logger: logger,
		Tokens: tokens,
	})

	r := chi.NewRouter()
	r.Get("/", base.Hello)
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Post("/auth/logout", authHandler.Logout)
			r.Post("/auth/reset-password", authHandler.ResetPassword)

			r.Route("/businesses", func(r chi.Router) {
				r.Get("/", businessHandler.List)
				r.Post("/", businessHandler.Create)
				r.Get("/{businessID}", businessHandler.Get)
				r.Put("/{businessID}", businessHandler.Update)
				r.Delete("/{businessID}", businessHandler.Delete)
				r.Get("/{businessID}/reviews", businessHandler.ListReviews)
				r.Post("/{businessID}/reviews", businessHandler.AddReview)
			})
		})
	})
	r.NotFound(base.NotFound)
	r.MethodNotAllowed(base.MethodNotAllowed)

	return r
}

// doRequest performs a JSON request against the router.
func doRequest(t *testing.T, router http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// decodeBody decodes a JSON response body into out.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

// registerAndLogin creates a user and returns a valid access token.
func registerAndLogin(t *testing.T, router http.Handler, email, password string) string {
	t.Helper()

	rec := doRequest(t, router, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"first_name": "Test",
		"last_name":  "User",
		"email":      email,
		"password":   password,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doRequest(t, router, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    email,
		"password": password,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		AccessToken string `json:"access_token"`
	}
	decodeBody(t, rec, &resp)
	if resp.AccessToken == "" {
		t.Fatal("expected a non-empty access token")
	}
	return resp.AccessToken
}

// createBusiness creates a business through the API and returns its id.
func createBusiness(t *testing.T, router http.Handler, token, name string) string {
	t.Helper()

	rec := doRequest(t, router, http.MethodPost, "/api/v1/businesses", token, map[string]string{
		"name":        name,
		"location":    "Town",
		"category":    "Retail",
		"description": "A place",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create business: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Business struct {
			ID string `json:"id"`
		} `json:"business"`
	}
	decodeBody(t, rec, &resp)
	if resp.Business.ID == "" {
		t.Fatal("expected a business id")
	}
	return resp.Business.ID
}
