// Marquee - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

// Query parameter structs validated with validateRequest. JSON tags name the
// fields in validation error messages.

// MoviesRequest filters the catalog listing.
type MoviesRequest struct {
	Genre  string `json:"genre" validate:"max=256"`
	Limit  int    `json:"limit" validate:"min=1,max=1000"`
	Offset int    `json:"offset" validate:"min=0"`
}

// SampleRequest selects a random landing-page sample.
type SampleRequest struct {
	N    int   `json:"n" validate:"min=1,max=100"`
	Seed int64 `json:"seed"`
}

// TitlesRequest asks for autocomplete suggestions.
type TitlesRequest struct {
	Prefix string `json:"prefix" validate:"max=512"`
	Limit  int    `json:"limit" validate:"min=1,max=100"`
}

// Defaults and caps for list endpoints.
const (
	defaultMoviesLimit = 100
	defaultSampleSize  = 9
	maxRequestBody     = 64 << 10
)
