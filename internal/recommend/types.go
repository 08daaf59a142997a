// Marquee - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package recommend

import (
	"time"

	"github.com/tomtom215/marquee/internal/catalog"
)

// Request asks for items similar to a title.
type Request struct {
	// Title of the query item. The first catalog item with this title is used.
	Title string `json:"title" validate:"required,title,max=512"`

	// N is the number of recommendations. Zero selects the configured default.
	N int `json:"n,omitempty" validate:"min=0,max=1000"`

	// RequestID for tracing. Generated when empty.
	RequestID string `json:"request_id,omitempty" validate:"max=128"`

	// capped is set when N was reduced to the configured MaxN.
	capped bool
}

// ScoredItem is a recommended item with its distance from the query item.
type ScoredItem struct {
	// Item is the recommended catalog item.
	Item catalog.Item `json:"item"`

	// Distance from the query item in normalized feature space.
	Distance float64 `json:"distance"`

	// Rank is the 1-based position in the result list.
	Rank int `json:"rank"`
}

// Response is the result of a scored recommendation request.
type Response struct {
	// Query is the item the recommendations are similar to.
	Query catalog.Item `json:"query"`

	// Items in ascending distance order.
	Items []ScoredItem `json:"items"`

	// Metadata about how the request was served.
	Metadata ResponseMetadata `json:"metadata"`
}

// ResponseMetadata describes a recommendation response.
type ResponseMetadata struct {
	RequestID   string    `json:"request_id"`
	Requested   int       `json:"requested"`
	Returned    int       `json:"returned"`
	Clamped     bool      `json:"clamped"`
	Metric      string    `json:"metric"`
	CatalogSize int       `json:"catalog_size"`
	Fingerprint string    `json:"fingerprint"`
	LatencyMS   int64     `json:"latency_ms"`
	CacheHit    bool      `json:"cache_hit"`
	Timestamp   time.Time `json:"timestamp"`
}

// Stats summarizes the fitted model and request counters.
type Stats struct {
	CatalogSize         int      `json:"catalog_size"`
	Dimensions          int      `json:"dimensions"`
	DegenerateColumns   int      `json:"degenerate_columns"`
	Metric              string   `json:"metric"`
	Workers             int      `json:"workers"`
	Fingerprint         string   `json:"fingerprint"`
	Columns             []string `json:"columns,omitempty"`
	RequestCount        int64    `json:"request_count"`
	CacheHitCount       int64    `json:"cache_hit_count"`
	NotFoundCount       int64    `json:"not_found_count"`
	ErrorCount          int64    `json:"error_count"`
	BuildDurationMillis int64    `json:"build_duration_ms"`
}
