package handler

import (
	"net/http"
	"strconv"

	"github.com/recadario/recadario/internal/store"
)

// HealthHandler manages health check endpoints.
type HealthHandler struct {
	store *store.Store
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(st *store.Store) *HealthHandler {
	return &HealthHandler{store: st}
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// Healthz is a liveness probe endpoint. It returns 200 if the server is
// running; no dependency checks.
//
// GET /healthz
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// Readyz is a readiness probe endpoint. The store is in-process, so
// readiness reduces to it being constructed; entity counts are reported
// for operator visibility.
//
// GET /readyz
func (h *HealthHandler) Readyz(w http.ResponseWriter, r *http.Request) {
	checks := make(map[string]string)

	if h.store == nil {
		checks["store"] = "not configured"
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status: "unhealthy",
			Checks: checks,
		})
		return
	}

	users, recados := h.store.Counts()
	checks["store"] = "ok"
	checks["users"] = strconv.Itoa(users)
	checks["recados"] = strconv.Itoa(recados)

	writeJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
		Checks: checks,
	})
}
