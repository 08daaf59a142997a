// Marquee - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package index

import (
	"fmt"
	"math"
	"strings"
)

// DistanceFunc returns the distance between two vectors of equal width.
// Smaller is closer.
type DistanceFunc func(a, b []float64) float64

// Metric names accepted by MetricByName.
const (
	MetricEuclidean        = "euclidean"
	MetricSquaredEuclidean = "sqeuclidean"
	MetricManhattan        = "manhattan"
	MetricCosine           = "cosine"
)

// Euclidean is the L2 distance.
func Euclidean(a, b []float64) float64 {
	return math.Sqrt(SquaredEuclidean(a, b))
}

// SquaredEuclidean is the L2 distance without the square root. It ranks rows
// identically to Euclidean.
func SquaredEuclidean(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

// Manhattan is the L1 distance.
func Manhattan(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += math.Abs(a[i] - b[i])
	}
	return sum
}

// Cosine returns 1 minus the cosine similarity. A zero vector is at
// distance 1 from everything.
func Cosine(a, b []float64) float64 {
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 1
	}
	return 1 - dot/(math.Sqrt(na)*math.Sqrt(nb))
}

// MetricByName resolves a configured metric name. The empty string selects
// Euclidean.
func MetricByName(name string) (DistanceFunc, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", MetricEuclidean, "l2":
		return Euclidean, nil
	case MetricSquaredEuclidean:
		return SquaredEuclidean, nil
	case MetricManhattan, "l1":
		return Manhattan, nil
	case MetricCosine:
		return Cosine, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMetric, name)
	}
}
