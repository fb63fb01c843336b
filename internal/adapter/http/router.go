package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/iho/caribank/internal/adapter/http/handler"
	"github.com/iho/caribank/internal/adapter/http/middleware"
	"github.com/iho/caribank/internal/infrastructure/auth"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	AuthHandler        *handler.AuthHandler
	SessionHandler     *handler.SessionHandler
	CertificateHandler *handler.CertificateHandler
	HealthHandler      *handler.HealthHandler
	JWTManager         *auth.JWTManager
	Logger             zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Metrics)
	r.Use(middleware.Recovery)

	// Operational endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", cfg.AuthHandler.Register)
			r.Post("/login", cfg.AuthHandler.Login)

			r.Group(func(r chi.Router) {
				r.Use(middleware.AuthMiddleware(cfg.JWTManager))
				r.Post("/logout", cfg.AuthHandler.Logout)
			})
		})

		// Session operations require a token
		r.Route("/session", func(r chi.Router) {
			r.Use(middleware.AuthMiddleware(cfg.JWTManager))

			r.Get("/", cfg.SessionHandler.Get)
			r.Post("/deposits", cfg.SessionHandler.Deposit)
			r.Post("/withdrawals", cfg.SessionHandler.Withdraw)
			r.Post("/transfers", cfg.SessionHandler.Transfer)
			r.Get("/transactions", cfg.SessionHandler.History)
			r.Get("/certificate", cfg.CertificateHandler.Issue)
		})
	})

	return r
}
