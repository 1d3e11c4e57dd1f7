package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/walletapp/walletd/internal/adapter/http/handler"
	"github.com/walletapp/walletd/internal/adapter/http/middleware"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	AccountHandler   *handler.AccountHandler
	OperationHandler *handler.OperationHandler
	TransferHandler  *handler.TransferHandler
	HealthHandler    *handler.HealthHandler
	RateLimiter      *middleware.RateLimiter
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(log.Logger).Wrap)
	r.Use(middleware.Recovery)
	r.Use(middleware.Metrics)

	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	// Health and metrics endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Wallets
		r.Route("/wallets", func(r chi.Router) {
			r.Post("/", cfg.AccountHandler.Create)
			r.Get("/", cfg.AccountHandler.List)
			r.Get("/{id}", cfg.AccountHandler.Get)
			r.Get("/{id}/balance", cfg.AccountHandler.GetBalance)
			r.Get("/{id}/balance/history", cfg.OperationHandler.GetHistoricalBalance)
			r.Get("/{id}/operations", cfg.OperationHandler.ListOperations)
			r.Post("/{id}/deposit", cfg.OperationHandler.Deposit)
			r.Post("/{id}/withdraw", cfg.OperationHandler.Withdraw)
		})

		// Transfers
		r.Route("/transfers", func(r chi.Router) {
			r.Post("/", cfg.TransferHandler.Create)
		})
	})

	return r
}
