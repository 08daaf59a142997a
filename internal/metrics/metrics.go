// Marquee - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package metrics

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recommendation outcomes used as the "outcome" label.
const (
	OutcomeOK         = "ok"
	OutcomeNotFound   = "not_found"
	OutcomeOutOfRange = "out_of_range"
	OutcomeInvalid    = "invalid"
	OutcomeError      = "error"
)

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
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
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

	// Recommendation Metrics
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendations_total",
			Help: "Total number of recommendation requests by outcome",
		},
		[]string{"outcome"},
	)

	RecommendationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommendation_duration_seconds",
			Help:    "Time to answer a recommendation request, including cache lookups",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"outcome"},
	)

	RecommendationResultSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_result_size",
			Help:    "Number of items returned per recommendation",
			Buckets: []float64{0, 1, 3, 6, 10, 20, 50, 100},
		},
	)

	// Catalog and Model Metrics
	CatalogItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_items",
			Help: "Number of items in the loaded catalog",
		},
	)

	CatalogRowsSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_rows_skipped_total",
			Help: "Catalog rows skipped because they could not be parsed",
		},
		[]string{"source"},
	)

	CatalogLoadDuration = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "catalog_load_duration_seconds",
			Help: "Duration of the last catalog load",
		},
		[]string{"source"},
	)

	ModelDimensions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "model_feature_dimensions",
			Help: "Width of the encoded feature vectors",
		},
	)

	ModelDegenerateDimensions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "model_degenerate_dimensions",
			Help: "Feature dimensions with zero variance across the catalog",
		},
	)

	// Cache Metrics
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"backend"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"backend"},
	)

	CacheErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_errors_total",
			Help: "Total number of failed cache operations",
		},
		[]string{"backend", "operation"},
	)

	CacheOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cache_operation_duration_seconds",
			Help:    "Duration of cache operations",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
		[]string{"backend", "operation"},
	)

	CacheWarmupItems = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_warmup_items_total",
			Help: "Titles processed by cache warmup",
		},
		[]string{"result"},
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

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)

	AppUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)
)

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

// RecordRecommendation records one recommendation request. returned is
// ignored unless the outcome is OutcomeOK.
func RecordRecommendation(outcome string, duration time.Duration, returned int) {
	RecommendationsTotal.WithLabelValues(outcome).Inc()
	RecommendationDuration.WithLabelValues(outcome).Observe(duration.Seconds())
	if outcome == OutcomeOK {
		RecommendationResultSize.Observe(float64(returned))
	}
}

// RecordCatalogLoad records a completed catalog load.
func RecordCatalogLoad(source string, items, skipped int, duration time.Duration) {
	CatalogItems.Set(float64(items))
	CatalogLoadDuration.WithLabelValues(source).Set(duration.Seconds())
	if skipped > 0 {
		CatalogRowsSkipped.WithLabelValues(source).Add(float64(skipped))
	}
}

// SetModelGauges publishes the fitted model shape.
func SetModelGauges(dimensions, degenerate int) {
	ModelDimensions.Set(float64(dimensions))
	ModelDegenerateDimensions.Set(float64(degenerate))
}

// RecordCacheLookup records the result of a cache read.
func RecordCacheLookup(backend string, hit bool, err error, duration time.Duration) {
	CacheOperationDuration.WithLabelValues(backend, "get").Observe(duration.Seconds())
	switch {
	case err != nil:
		CacheErrors.WithLabelValues(backend, "get").Inc()
	case hit:
		CacheHits.WithLabelValues(backend).Inc()
	default:
		CacheMisses.WithLabelValues(backend).Inc()
	}
}

// RecordCacheWrite records the result of a cache write.
func RecordCacheWrite(backend string, err error, duration time.Duration) {
	CacheOperationDuration.WithLabelValues(backend, "set").Observe(duration.Seconds())
	if err != nil {
		CacheErrors.WithLabelValues(backend, "set").Inc()
	}
}

// SetAppInfo publishes the build version.
func SetAppInfo(version string) {
	AppInfo.WithLabelValues(version, runtime.Version()).Set(1)
}

// StartUptimeTracker updates AppUptime every interval until done is closed.
func StartUptimeTracker(start time.Time, interval time.Duration, done <-chan struct{}) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				AppUptime.Set(time.Since(start).Seconds())
			case <-done:
				return
			}
		}
	}()
}
