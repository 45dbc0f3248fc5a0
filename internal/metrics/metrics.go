// Plex Roulette - Random Picks from a Plex Media Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plexroulette

package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Database Metrics
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "duckdb_query_duration_seconds",
			Help:    "Duration of DuckDB queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "table"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "duckdb_query_errors_total",
			Help: "Total number of DuckDB query errors",
		},
		[]string{"operation", "table", "error_type"},
	)

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
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
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

	// Plex Upstream Metrics
	PlexRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "plex_requests_total",
			Help: "Total number of requests sent to the Plex Media Server",
		},
		[]string{"endpoint", "status"}, // status: HTTP code, "error" for transport failures
	)

	PlexRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "plex_request_duration_seconds",
			Help:    "Plex Media Server request duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30}, // full library listings can be slow
		},
		[]string{"endpoint"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Catalog Metrics
	CatalogOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_operations_total",
			Help: "Total number of catalog pipeline operations",
		},
		[]string{"operation", "result"}, // operation: random, roulette, all, genres, libraries
	)

	CatalogLibrarySize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_library_items",
			Help:    "Number of items fetched from a library per operation",
			Buckets: prometheus.ExponentialBuckets(10, 2, 12), // 10 .. ~20k
		},
		[]string{"operation"},
	)

	CatalogFilteredItems = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_filtered_items",
			Help:    "Number of items left after filtering, per selection",
			Buckets: prometheus.ExponentialBuckets(1, 2, 15),
		},
		[]string{"operation"},
	)

	// Watched Store Metrics
	WatchedStoreOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "watched_store_operations_total",
			Help: "Total number of watched flag store operations",
		},
		[]string{"operation", "result"},
	)

	WatchedStoreGCRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "watched_store_gc_runs_total",
			Help: "Total number of BadgerDB value log GC runs",
		},
		[]string{"result"}, // "rewritten", "nothing", "error"
	)

	// Authentication Metrics
	AuthAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_attempts_total",
			Help: "Total number of registration and login attempts",
		},
		[]string{"operation", "result"},
	)

	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)
)

// RecordDBQuery records a database query metric
func RecordDBQuery(operation, table string, duration time.Duration, err error) {
	DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
	if err != nil {
		errorType := err.Error()
		if len(errorType) > 50 {
			errorType = errorType[:50]
		}
		DBQueryErrors.WithLabelValues(operation, table, errorType).Inc()
	}
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordPlexRequest records one upstream request. A zero status means the
// request never produced a response.
func RecordPlexRequest(endpoint string, status int, duration time.Duration) {
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	PlexRequestsTotal.WithLabelValues(endpoint, label).Inc()
	PlexRequestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

// RecordCatalogOperation records the outcome of a catalog pipeline operation.
func RecordCatalogOperation(operation string, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	CatalogOperations.WithLabelValues(operation, result).Inc()
}

// RecordSelection records library and filtered population sizes for a selection.
func RecordSelection(operation string, librarySize, filtered int) {
	CatalogLibrarySize.WithLabelValues(operation).Observe(float64(librarySize))
	CatalogFilteredItems.WithLabelValues(operation).Observe(float64(filtered))
}

// RecordWatchedOperation records a watched store operation.
func RecordWatchedOperation(operation string, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	WatchedStoreOperations.WithLabelValues(operation, result).Inc()
}

// RecordAuthAttempt records a registration or login attempt.
func RecordAuthAttempt(operation string, success bool) {
	result := "success"
	if !success {
		result = "failure"
	}
	AuthAttempts.WithLabelValues(operation, result).Inc()
}
