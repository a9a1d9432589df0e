package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/janisto/dashboard-api/internal/http/api/routes"
	"github.com/janisto/dashboard-api/internal/http/health"
	"github.com/janisto/dashboard-api/internal/platform/auth"
	"github.com/janisto/dashboard-api/internal/platform/config"
	applog "github.com/janisto/dashboard-api/internal/platform/logging"
	"github.com/janisto/dashboard-api/internal/platform/metrics"
	appmiddleware "github.com/janisto/dashboard-api/internal/platform/middleware"
	"github.com/janisto/dashboard-api/internal/platform/respond"
	profilesvc "github.com/janisto/dashboard-api/internal/service/profile"
)

const (
	authPathPrefix = "/api/auth/"
	msgRateLimited = "Too many requests"
	apiTitle       = "Dashboard API"
)

func newRouter(cfg *config.Config, profiles profilesvc.Service, authenticator auth.Authenticator) http.Handler {
	respond.Install()

	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	// Unsupported methods on known paths are reported as unknown routes.
	router.MethodNotAllowed(respond.NotFoundHandler())

	// Base middleware stack
	router.Use(
		appmiddleware.Security(routes.DocsPath),
		appmiddleware.Vary(),
		appmiddleware.CORS(cfg.CORSOrigins),
		appmiddleware.RequestID(),
		// RealIP extracts client IP from X-Real-IP or X-Forwarded-For headers.
		// SECURITY: Only use behind a trusted reverse proxy (e.g., Cloud Run, nginx).
		// Without a trusted proxy, clients can spoof their IP address.
		chimiddleware.RealIP,
		chimiddleware.RequestSize(cfg.MaxBodyBytes),
		applog.RequestLogger(),
		applog.AccessLogger(),
		appmiddleware.Metrics(),
		respond.Recoverer(),
		appmiddleware.ForPathPrefix(authPathPrefix, appmiddleware.RateLimitByIP(
			cfg.AuthRateLimit,
			cfg.AuthRateWindow,
			func(w http.ResponseWriter, r *http.Request) {
				respond.WriteError(w, r, http.StatusTooManyRequests, msgRateLimited)
			},
		)),
	)

	router.Get("/api/health", health.Handler)
	router.Handle("/metrics", metrics.Handler())

	api := routes.NewAPI(router, apiTitle, Version)
	routes.Register(api, profiles, authenticator)
	return router
}
