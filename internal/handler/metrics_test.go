package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/weconnect/weconnect/internal/metrics"
)

func TestMetricsEndpoint(t *testing.T) {
	t.Parallel()

	rec := metrics.NewInMemory()
	rec.IncUserRegistered()
	rec.IncLoginSucceeded()
	rec.IncLoginFailed()
	rec.IncReviewAdded()

	h := NewMetricsHandler(rec)
	w := httptest.NewRecorder()
	h.Metrics(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("expected text/plain content type, got %s", ct)
	}

	body := w.Body.String()
	for _, want := range []string{
		"weconnect_users_registered_total 1",
		`weconnect_logins_total{status="success"} 1`,
		`weconnect_logins_total{status="failure"} 1`,
		"weconnect_reviews_added_total 1",
		"weconnect_businesses_created_total 0",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("missing %q in body:\n%s", want, body)
		}
	}
}

func TestMetricsEndpoint_NoSnapshotter(t *testing.T) {
	t.Parallel()

	h := NewMetricsHandler(nil)
	w := httptest.NewRecorder()
	h.Metrics(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", w.Code)
	}
}
