// SSG Advisor - Static Site Generator Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ssgadvisor

// Package metrics provides Prometheus instrumentation for production
// observability: recommendation throughput and latency, preference overlay
// outcomes, knowledge store operation timing, circuit breaker state and HTTP
// endpoint metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Recommendation Metrics
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ssgadvisor_recommendations_total",
			Help: "Total number of recommendation requests by outcome",
		},
		[]string{"outcome"}, // "ok", "not_found", "invalid_analysis", "error"
	)

	RecommendationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ssgadvisor_recommendation_duration_seconds",
			Help:    "End-to-end recommend call duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	RecommendedSSG = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ssgadvisor_recommended_ssg_total",
			Help: "Total recommendations per generator",
		},
		[]string{"ssg"},
	)

	// Preference Overlay Metrics
	PreferenceOverlayTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ssgadvisor_preference_overlay_total",
			Help: "Preference overlay outcomes",
		},
		[]string{"action"}, // "pass_through", "matched", "overridden", "degraded"
	)

	// Knowledge Store Metrics
	StoreOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ssgadvisor_store_operation_duration_seconds",
			Help:    "Duration of knowledge store operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"}, // "upsert_analysis", "get_analysis", "get_profile", "save_profile"
	)

	StoreOperationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ssgadvisor_store_operation_errors_total",
			Help: "Total knowledge store operation errors",
		},
		[]string{"operation"},
	)

	// Circuit Breaker Metrics (profile resolution path)
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "ssgadvisor_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ssgadvisor_circuit_breaker_requests_total",
			Help: "Circuit breaker request outcomes",
		},
		[]string{"name", "result"}, // "success", "failure", "rejected"
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ssgadvisor_api_requests_total",
			Help: "Total API requests by endpoint, method and status",
		},
		[]string{"endpoint", "method", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ssgadvisor_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint", "method"},
	)
)

// ObserveStoreOperation records timing and error state for one store call.
func ObserveStoreOperation(operation string, start time.Time, err error) {
	StoreOperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	if err != nil {
		StoreOperationErrors.WithLabelValues(operation).Inc()
	}
}

// ObserveAPIRequest records one completed HTTP request.
func ObserveAPIRequest(endpoint, method string, status int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(endpoint, method, strconv.Itoa(status)).Inc()
	APIRequestDuration.WithLabelValues(endpoint, method).Observe(duration.Seconds())
}
