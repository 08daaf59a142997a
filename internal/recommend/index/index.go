// Marquee - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package index

import (
	"context"
	"errors"
)

var (
	// ErrOutOfRange is returned when more neighbors are requested than the
	// index holds, or when k is negative.
	ErrOutOfRange = errors.New("requested neighbor count out of range")

	// ErrDimensionMismatch is returned when a query vector or row has the
	// wrong width.
	ErrDimensionMismatch = errors.New("vector dimension mismatch")

	// ErrUnknownMetric is returned by MetricByName for unrecognized names.
	ErrUnknownMetric = errors.New("unknown distance metric")
)

// Neighbor is one query result.
type Neighbor struct {
	// Index is the row position in the indexed set.
	Index int `json:"index"`

	// Distance from the query vector under the index metric.
	Distance float64 `json:"distance"`
}

// NeighborIndex is the query surface the recommendation service depends on.
type NeighborIndex interface {
	// Len returns the number of indexed rows.
	Len() int

	// Dim returns the vector width.
	Dim() int

	// Query returns the k nearest rows to v in ascending distance order.
	Query(ctx context.Context, v []float64, k int) ([]Neighbor, error)
}

// less orders neighbors by distance, then by index.
func less(a, b Neighbor) bool {
	if a.Distance != b.Distance {
		return a.Distance < b.Distance
	}
	return a.Index < b.Index
}
