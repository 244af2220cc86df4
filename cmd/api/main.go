// Package main is the entrypoint for the Recadário API server.
package main

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/recadario/recadario/internal/auth"
	"github.com/recadario/recadario/internal/config"
	"github.com/recadario/recadario/internal/handler"
	"github.com/recadario/recadario/internal/metrics"
	"github.com/recadario/recadario/internal/middleware"
	"github.com/recadario/recadario/internal/server"
	"github.com/recadario/recadario/internal/service"
	"github.com/recadario/recadario/internal/store"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Initialize logger
	logger := initLogger(cfg)

	// Initialize the in-memory store. It is constructed here, owned by
	// main, and handed to the services; nothing else may hold state.
	st := store.New()
	logger.Info("store initialized")

	// Initialize services
	recorder := metrics.NewInMemory()
	hasher := auth.NewHasher(cfg.BcryptCost)
	accountService := service.NewAccountService(st, hasher, recorder)
	recadoService := service.NewRecadoService(st, recorder)

	// Initialize handlers
	h := handler.New()
	healthHandler := handler.NewHealthHandler(st)
	accountHandler := handler.NewAccountHandler(accountService, logger)
	recadoHandler := handler.NewRecadoHandler(recadoService, logger)
	metricsHandler := handler.NewMetricsHandler(recorder)

	// Setup router
	r := setupRouter(h, healthHandler, accountHandler, recadoHandler, metricsHandler, cfg, logger)

	// Create and run server
	srv := server.New(
		r,
		cfg.AppPort,
		cfg.ReadTimeout,
		cfg.WriteTimeout,
		cfg.ShutdownTimeout,
		logger,
	)

	logger.Info("starting server",
		"port", cfg.AppPort,
		"env", cfg.AppEnv,
	)

	if err := srv.Run(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// initLogger initializes the slog logger based on configuration.
func initLogger(cfg *config.Config) *slog.Logger {
	var h slog.Handler

	opts := &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}

	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(h)
	slog.SetDefault(logger)

	return logger
}

// parseLogLevel converts string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// setupRouter configures the chi router with all routes and middleware.
func setupRouter(
	h *handler.Handler,
	healthHandler *handler.HealthHandler,
	accountHandler *handler.AccountHandler,
	recadoHandler *handler.RecadoHandler,
	metricsHandler *handler.MetricsHandler,
	cfg *config.Config,
	logger *slog.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recoverer(logger))
	r.Use(middleware.Security(middleware.SecurityConfig{
		IsDevelopment:      cfg.IsDevelopment(),
		MaxRequestBodySize: cfg.MaxRequestBodySize,
	}))
	r.Use(middleware.MaxBodySize(cfg.MaxRequestBodySize))

	if origins := cfg.GetCORSAllowedOrigins(); len(origins) > 0 {
		corsCfg := middleware.DefaultCORSConfig()
		corsCfg.AllowedOrigins = origins
		r.Use(middleware.CORS(corsCfg))
	}

	r.Use(middleware.RateLimit(middleware.RateLimitConfig{
		Enabled:  cfg.RateLimitEnabled,
		Requests: cfg.RateLimitRequests,
		Window:   cfg.RateLimitWindow,
	}))

	// Health endpoints
	r.Get("/healthz", healthHandler.Healthz)
	r.Get("/readyz", healthHandler.Readyz)

	// Root info endpoint
	r.Get("/", h.Hello)

	// Account endpoints
	r.Post("/criar-conta", accountHandler.Create)
	r.Post("/login", accountHandler.Login)

	// Recado endpoints. Unauthenticated by contract; the authorization
	// decision lives in the recado service, not here.
	r.Route("/recados", func(r chi.Router) {
		r.Post("/", recadoHandler.Create)
		r.Get("/{usuarioId}", recadoHandler.List)
		r.Put("/{id}", recadoHandler.Update)
		r.Delete("/{id}", recadoHandler.Delete)
	})

	// Debug metrics, development only
	if cfg.IsDevelopment() {
		r.Get("/metricas", metricsHandler.Metrics)
	}

	// 404 and 405 handlers
	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	return r
}
