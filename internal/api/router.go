// GatorGuide - Campus Guided Recommendation Engine
// Copyright 2026 GatorGuide Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gatorguide/gatorguide

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gatorguide/gatorguide/internal/config"
	"github.com/gatorguide/gatorguide/internal/metrics"
	"github.com/gatorguide/gatorguide/internal/middleware"
)

// NewRouter builds the chi router with the full middleware stack and all
// API routes.
func NewRouter(handler *Handler, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to every route in order.
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.PrometheusMetrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.API.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID", "ETag"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Health endpoints get a permissive limit so monitoring can poll
	// frequently without tripping the standard budget.
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(rateLimit(1000, time.Minute))
		r.Get("/live", handler.HealthLive)
		r.Get("/ready", handler.HealthReady)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(rateLimit(cfg.API.RateLimitReqs, cfg.API.RateLimitWindow))
		r.Post("/menu", handler.Menu)
		r.Get("/domains", handler.Domains)
	})

	// Admin routes keep a deliberately tight budget; the reload handler
	// additionally enforces its own cooldown.
	r.Route("/api/v1/admin", func(r chi.Router) {
		r.Use(rateLimit(10, time.Minute))
		r.Post("/reload", handler.Reload)
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}

// rateLimit builds a per-IP limiter that reports rejections to metrics and
// answers them in the API's error envelope.
func rateLimit(requests int, window time.Duration) func(http.Handler) http.Handler {
	return httprate.Limit(requests, window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			metrics.APIRateLimitHits.WithLabelValues(r.URL.Path).Inc()
			respondError(w, http.StatusTooManyRequests, "RATE_LIMIT_EXCEEDED", "too many requests", nil)
		}),
	)
}
