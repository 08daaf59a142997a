// Marquee - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package models

import (
	"time"

	"github.com/tomtom215/marquee/internal/catalog"
)

// Response status values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// APIResponse is the envelope for every HTTP response.
//
// Status is "success" with Data populated, or "error" with Error populated.
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": {"query": {...}, "items": [...]},
//	  "metadata": {
//	    "timestamp": "2026-03-01T12:00:00Z",
//	    "query_time_ms": 2,
//	    "cached": true
//	  }
//	}
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "data": null,
//	  "error": {
//	    "code": "TITLE_NOT_FOUND",
//	    "message": "No movie titled \"Heet\""
//	  },
//	  "metadata": {"timestamp": "2026-03-01T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata carries timing and cache information for a response.
//
// QueryTimeMS is the time spent computing the payload. Cached is set when a
// recommendation came from the response cache.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	Cached      bool      `json:"cached,omitempty"`
}

// APIError is a machine-readable error code with a human-readable message.
//
// Codes used by the API:
//   - VALIDATION_ERROR: invalid body or query parameters
//   - TITLE_NOT_FOUND: no catalog item has the requested title
//   - OUT_OF_RANGE: more neighbors requested than the catalog holds
//   - RATE_LIMIT_EXCEEDED: too many requests from one client
//   - RECOMMENDATION_ERROR: unexpected failure while ranking
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// MovieList is a page of catalog items.
type MovieList struct {
	Items []catalog.Item `json:"items"`
	Count int            `json:"count"`
	Total int            `json:"total"`
}

// GenreList holds the distinct raw genre values of the catalog.
type GenreList struct {
	Genres []string `json:"genres"`
	Count  int      `json:"count"`
}

// TitleSuggestions is the autocomplete result for a prefix.
type TitleSuggestions struct {
	Prefix  string               `json:"prefix"`
	Matches []catalog.TitleMatch `json:"matches"`
}

// HealthStatus is the payload of the health endpoints.
type HealthStatus struct {
	Status       string  `json:"status"`
	Version      string  `json:"version"`
	CatalogSize  int     `json:"catalog_size"`
	Dimensions   int     `json:"dimensions"`
	Fingerprint  string  `json:"fingerprint,omitempty"`
	CacheBackend string  `json:"cache_backend"`
	Uptime       float64 `json:"uptime_seconds"`
}
