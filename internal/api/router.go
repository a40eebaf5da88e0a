// SSG Advisor - Static Site Generator Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ssgadvisor

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/ssgadvisor/internal/middleware"
)

// RouterConfig holds routing and middleware settings.
type RouterConfig struct {
	// CORSAllowedOrigins lists origins allowed by the CORS middleware.
	CORSAllowedOrigins []string

	// RateLimitPerMinute bounds requests per client IP on API routes.
	RateLimitPerMinute int
}

// NewRouter configures all HTTP routes.
func NewRouter(handler *Handler, cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to all routes in order.
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	// Health endpoints: permissive rate limiting for monitoring probes.
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(httprate.LimitByIP(1000, time.Minute))
		r.Get("/", handler.Health)
		r.Get("/live", handler.HealthLive)
		r.Get("/ready", handler.HealthReady)
	})

	// Core API endpoints.
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(httprate.LimitByIP(cfg.RateLimitPerMinute, time.Minute))
		r.Use(middleware.PrometheusMetrics)

		r.Post("/analyses", handler.UpsertAnalysis)
		r.Get("/analyses/{id}", handler.GetAnalysis)

		r.Get("/recommendation", handler.Recommend)

		r.Route("/users/{userID}/preferences", func(r chi.Router) {
			r.Get("/", handler.GetPreferences)
			r.Patch("/", handler.UpdatePreferences)
			r.Post("/usage", handler.RecordUsage)
		})
	})

	// Prometheus metrics endpoint.
	r.Handle("/metrics", promhttp.Handler())

	return r
}
