// Marquee - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package api provides the HTTP REST API for Marquee.

Routes (all JSON, wrapped in models.APIResponse):

	GET  /api/v1/health/live           liveness probe
	GET  /api/v1/health/ready          readiness with catalog size and fingerprint
	GET  /api/v1/genres                distinct genre values
	GET  /api/v1/movies?genre=         catalog listing, optional exact genre filter
	GET  /api/v1/movies/sample?n=&seed= random landing-page sample
	GET  /api/v1/movies/{title}        first item with the title
	GET  /api/v1/movies/{title}/similar?n=
	POST /api/v1/recommendations       {"title": "...", "n": 6}
	GET  /api/v1/titles?prefix=&limit= title autocomplete
	GET  /api/v1/stats                 model dimensions and counters
	GET  /metrics                      Prometheus
	GET  /swagger/*                    API documentation

Error Mapping:

Recommendation failures map to HTTP statuses:

  - recommend.ErrNotFound: 404 TITLE_NOT_FOUND
  - recommend.ErrOutOfRange: 400 OUT_OF_RANGE
  - validation failures: 400 VALIDATION_ERROR
  - context deadline: 504 TIMEOUT
  - anything else: 500 RECOMMENDATION_ERROR

Middleware:

Every request gets a request ID (middleware.RequestID), real client IP,
panic recovery, CORS and gzip. The /api/v1 group is rate limited per client
IP with go-chi/httprate; health probes are not. Request metrics are labelled
by chi route pattern.

Titles in paths must be URL-encoded; an encoded slash (%2F) stays part of the
title. A movie literally titled "sample" is reachable through
POST /api/v1/recommendations and the listing but not /api/v1/movies/sample.
*/
package api
