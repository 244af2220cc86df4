package handler

import (
	"fmt"
	"net/http"

	"github.com/recadario/recadario/internal/metrics"
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
//
// GET /metricas
func (h *MetricsHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	if h.snapshotter == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	snap := h.snapshotter.Snapshot()

	w.Header().Set("Content-Type", "text/plain; version=0.0.4")

	writeMetric(w, "recadario_accounts_created_total %d\n", snap.AccountsCreated)
	writeMetric(w, "recadario_logins_total{status=\"success\"} %d\n", snap.LoginsSucceeded)
	writeMetric(w, "recadario_logins_total{status=\"failed\"} %d\n", snap.LoginsFailed)

	writeMetric(w, "recadario_recados_created_total %d\n", snap.RecadosCreated)
	writeMetric(w, "recadario_recados_updated_total %d\n", snap.RecadosUpdated)
	writeMetric(w, "recadario_recados_deleted_total %d\n", snap.RecadosDeleted)
}

func writeMetric(w http.ResponseWriter, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
