// Marquee - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered with the default registry through promauto and
are exposed at /metrics in Prometheus text format:

	curl http://localhost:8080/metrics

# Available Metrics

HTTP Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: In-flight requests (gauge)
  - api_rate_limit_hits_total: Rate limit rejections (counter)

Recommendation Metrics:
  - recommendations_total: Requests by outcome (counter)
    Labels: outcome (ok, not_found, out_of_range, invalid, error)
  - recommendation_duration_seconds: Latency by outcome (histogram)
  - recommendation_result_size: Items returned per successful request (histogram)

Catalog Metrics:
  - catalog_items: Loaded catalog size (gauge)
  - catalog_rows_skipped_total: Unparseable rows (counter)
    Labels: source (csv, duckdb)
  - catalog_load_duration_seconds: Last load duration (gauge)
  - model_feature_dimensions, model_degenerate_dimensions (gauges)

Cache Metrics:
  - cache_hits_total, cache_misses_total: Lookups (counters)
    Labels: backend (memory, redis, badger)
  - cache_errors_total: Failed operations (counter)
    Labels: backend, operation
  - cache_operation_duration_seconds (histogram)
  - cache_warmup_items_total (counter)
    Labels: result

Circuit Breaker Metrics:
  - circuit_breaker_state: Current state (gauge)
    Labels: name
    Values: 0=closed, 1=half-open, 2=open
  - circuit_breaker_requests_total (counter)
    Labels: name, result
  - circuit_breaker_consecutive_failures (gauge)
  - circuit_breaker_state_transitions_total (counter)
    Labels: name, from_state, to_state

# Example PromQL

Cache hit ratio per backend:

	sum by (backend) (rate(cache_hits_total[5m]))
	  / (sum by (backend) (rate(cache_hits_total[5m])) + sum by (backend) (rate(cache_misses_total[5m])))

95th percentile recommendation latency:

	histogram_quantile(0.95, sum by (le) (rate(recommendation_duration_seconds_bucket[5m])))
*/
package metrics
