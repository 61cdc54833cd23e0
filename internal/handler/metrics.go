package handler

import (
	"fmt"
	"net/http"

	"github.com/weconnect/weconnect/internal/metrics"
)

// MetricsHandler exposes in-memory metrics.
type MetricsHandler struct {
	snapshotter metrics.Snapshotter
}

// NewMetricsHandler creates a new MetricsHandler.
func NewMetricsHandler(snapshotter metrics.Snapshotter) *MetricsHandler {
	return &MetricsHandler{snapshotter: snapshotter}
}

// Metrics returns metrics in Prometheus exposition format.
func (h *MetricsHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	if h.snapshotter == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	snap := h.snapshotter.Snapshot()

	w.Header().Set("Content-Type", "text/plain; version=0.0.4")

	writeMetric(w, "weconnect_users_registered_total %d\n", snap.UsersRegistered)
	writeMetric(w, "weconnect_logins_total{status=\"success\"} %d\n", snap.LoginsSucceeded)
	writeMetric(w, "weconnect_logins_total{status=\"failure\"} %d\n", snap.LoginsFailed)
	writeMetric(w, "weconnect_passwords_reset_total %d\n", snap.PasswordsReset)

	writeMetric(w, "weconnect_businesses_created_total %d\n", snap.BusinessesCreated)
	writeMetric(w, "weconnect_businesses_updated_total %d\n", snap.BusinessesUpdated)
	writeMetric(w, "weconnect_businesses_deleted_total %d\n", snap.BusinessesDeleted)

	writeMetric(w, "weconnect_reviews_added_total %d\n", snap.ReviewsAdded)
}

func writeMetric(w http.ResponseWriter, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
