// Marquee - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package middleware provides HTTP middleware for the Marquee API.

Both middlewares use the chi signature func(http.Handler) http.Handler and are
installed globally by the router:

	r := chi.NewRouter()
	r.Use(middleware.RequestID(logger))
	r.Use(middleware.PrometheusMetrics)

Request ID:

RequestID reuses an upstream X-Request-ID when it is printable ASCII of at
most 128 bytes, and otherwise generates a UUID. Handlers read it with
GetRequestID or log through logging.Ctx, which tags the line with it.

Prometheus Metrics:

PrometheusMetrics records api_requests_total, api_request_duration_seconds
and api_active_requests. The endpoint label is the matched chi route pattern
so movie titles in paths do not create new series.
*/
package middleware
