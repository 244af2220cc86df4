package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/recadario/recadario/internal/auth"
	"github.com/recadario/recadario/internal/metrics"
	"github.com/recadario/recadario/internal/service"
	"github.com/recadario/recadario/internal/store"
)

// testEnv wires a full router against a fresh in-memory store,
// mirroring the route table in cmd/api.
type testEnv struct {
	router   *chi.Mux
	store    *store.Store
	recorder *metrics.InMemoryRecorder
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	st := store.New()
	recorder := metrics.NewInMemory()
	logger := newTestLogger()

	hasher := auth.NewHasher(bcrypt.MinCost)
	accountService := service.NewAccountService(st, hasher, recorder)
	recadoService := service.NewRecadoService(st, recorder)

	h := New()
	accountHandler := NewAccountHandler(accountService, logger)
	recadoHandler := NewRecadoHandler(recadoService, logger)
	healthHandler := NewHealthHandler(st)
	metricsHandler := NewMetricsHandler(recorder)

	r := chi.NewRouter()
	r.Get("/healthz", healthHandler.Healthz)
	r.Get("/readyz", healthHandler.Readyz)
	r.Get("/", h.Hello)
	r.Post("/criar-conta", accountHandler.Create)
	r.Post("/login", accountHandler.Login)
	r.Route("/recados", func(r chi.Router) {
		r.Post("/", recadoHandler.Create)
		r.Get("/{usuarioId}", recadoHandler.List)
		r.Put("/{id}", recadoHandler.Update)
		r.Delete("/{id}", recadoHandler.Delete)
	})
	r.Get("/metricas", metricsHandler.Metrics)
	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	return &testEnv{
		router:   r,
		store:    st,
		recorder: recorder,
	}
}

// do performs a request against the router and returns the recorder.
func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	e.router.ServeHTTP(rec, req)
	return rec
}

// newRawRequest builds a request with a verbatim body, for malformed
// payload cases.
func newRawRequest(method, path, body string) (*http.Request, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req, httptest.NewRecorder()
}

// decode decodes a JSON response body into dst.
func decode(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()

	if err := json.NewDecoder(rec.Body).Decode(dst); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func checkStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()

	if rec.Code != want {
		t.Fatalf("status = %d, want %d (body: %s)", rec.Code, want, rec.Body.String())
	}
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
