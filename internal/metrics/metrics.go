// GatorGuide - Campus Guided Recommendation Engine
// Copyright 2026 GatorGuide Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gatorguide/gatorguide

package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus instrumentation for:
// - API endpoint latency and throughput
// - Menu resolution performance per domain and shape
// - Response cache efficiency
// - Knowledge store reloads and load failures

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Menu Resolution Metrics
	MenuResolutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "menu_resolutions_total",
			Help: "Total number of menu path resolutions",
		},
		[]string{"domain", "shape", "outcome"}, // outcome: "question", "terminal", "error"
	)

	MenuResolveDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "menu_resolve_duration_seconds",
			Help:    "Menu path resolution duration in seconds",
			Buckets: []float64{0.00005, 0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01},
		},
		[]string{"domain", "shape"},
	)

	// Response Cache Metrics
	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "menu_cache_hits_total",
			Help: "Total number of menu response cache hits",
		},
	)

	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "menu_cache_misses_total",
			Help: "Total number of menu response cache misses",
		},
	)

	CachePurges = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "menu_cache_purges_total",
			Help: "Total number of whole-cache purges (store reloads)",
		},
	)

	// Knowledge Store Metrics
	StoreReloads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_reloads_total",
			Help: "Total number of knowledge store reloads",
		},
		[]string{"trigger", "result"}, // trigger: "startup", "watcher", "admin"
	)

	StoreDomainsLoaded = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "store_domains_loaded",
			Help: "Number of domains currently served by the store",
		},
	)

	StoreDomainsWithheld = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "store_domains_withheld",
			Help: "Number of domains withheld due to content errors",
		},
	)
)

// RecordAPIRequest records a completed API request.
func RecordAPIRequest(method, endpoint string, statusCode int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(statusCode)).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordResolution records one menu resolution with its outcome.
func RecordResolution(domain, shape, outcome string, duration time.Duration) {
	MenuResolutions.WithLabelValues(domain, shape, outcome).Inc()
	if outcome != "error" {
		MenuResolveDuration.WithLabelValues(domain, shape).Observe(duration.Seconds())
	}
}

// RecordReload records a store reload and updates the domain gauges.
func RecordReload(trigger string, loaded, withheld int, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	StoreReloads.WithLabelValues(trigger, result).Inc()
	if err == nil {
		StoreDomainsLoaded.Set(float64(loaded))
		StoreDomainsWithheld.Set(float64(withheld))
	}
}

// TrackActiveRequest adjusts the in-flight request gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}
