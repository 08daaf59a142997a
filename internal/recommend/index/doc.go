// Marquee - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package index answers k-nearest-neighbor queries over a fixed set of
// feature vectors.
//
// # Exactness
//
// BruteForce scans every row for each query. Results are ordered by ascending
// distance, and rows at equal distance are ordered by ascending row index, so
// a query always returns the same list for the same input.
//
// # Metrics
//
// Euclidean distance is the default. SquaredEuclidean, Manhattan and Cosine
// are available through WithMetric or MetricByName.
//
// # Thread Safety
//
// An index is immutable after construction. Query may be called from any
// number of goroutines without synchronization.
package index
