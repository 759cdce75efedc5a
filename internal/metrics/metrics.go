// ReelMatch - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package metrics holds the Prometheus instrumentation for ReelMatch.
//
// All collectors are registered with the default registry via promauto and
// exposed by the API router at /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Database Metrics
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "reelmatch_db_query_duration_seconds",
			Help:    "Duration of catalog store queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reelmatch_db_query_errors_total",
			Help: "Total number of catalog store query errors",
		},
		[]string{"operation"},
	)

	DBRowsReturned = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "reelmatch_db_rows_returned",
			Help:    "Number of rows returned by catalog store queries",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10), // 1 .. 262144
		},
		[]string{"operation"},
	)

	DBSessionsOpen = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "reelmatch_db_sessions_open",
			Help: "Current number of per-request store sessions holding a connection",
		},
	)

	CatalogTitles = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "reelmatch_catalog_titles",
			Help: "Number of titles in the catalog, refreshed by the catalog monitor",
		},
	)

	CatalogUp = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "reelmatch_catalog_up",
			Help: "1 when the last catalog probe succeeded, 0 otherwise",
		},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reelmatch_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "reelmatch_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "reelmatch_api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Recommendation Engine Metrics
	RecommendRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reelmatch_recommend_requests_total",
			Help: "Total number of recommendation requests by outcome",
		},
		[]string{"outcome"}, // ok, invalid_argument, not_found, no_recommendations, internal
	)

	RecommendDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "reelmatch_recommend_duration_seconds",
			Help:    "End-to-end recommendation computation time in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"seeds"}, // "1" or "multi"
	)

	RecommendCandidates = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "reelmatch_recommend_candidates",
			Help:    "Number of candidates surviving the feature join per seed",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		},
	)

	RecommendFeaturesDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reelmatch_recommend_features_dropped_total",
			Help: "Active features dropped because their ranking came back empty",
		},
		[]string{"feature"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "reelmatch_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reelmatch_circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reelmatch_circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Build info
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "reelmatch_app_info",
			Help: "Application build information",
		},
		[]string{"version", "go_version"},
	)
)

// RecordDBQuery records a catalog store query.
func RecordDBQuery(operation string, duration time.Duration, rows int, err error) {
	DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if err != nil {
		DBQueryErrors.WithLabelValues(operation).Inc()
		return
	}
	DBRowsReturned.WithLabelValues(operation).Observe(float64(rows))
}

// RecordAPIRequest records an API request metric.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks in-flight API requests.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRecommendation records the outcome and latency of one GetRecommendations call.
func RecordRecommendation(outcome string, seeds int, duration time.Duration) {
	RecommendRequests.WithLabelValues(outcome).Inc()
	label := "1"
	if seeds > 1 {
		label = "multi"
	}
	RecommendDuration.WithLabelValues(label).Observe(duration.Seconds())
}
