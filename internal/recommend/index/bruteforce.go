// Marquee - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package index

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"
)

const (
	// DefaultParallelThreshold is the row count below which a query is
	// always scanned on the calling goroutine.
	DefaultParallelThreshold = 4096

	// cancelCheckInterval is how many rows are scanned between context checks.
	cancelCheckInterval = 1024
)

// Option configures a BruteForce index.
type Option func(*BruteForce)

// WithMetric sets the distance function. A nil metric is ignored.
func WithMetric(metric DistanceFunc) Option {
	return func(b *BruteForce) {
		if metric != nil {
			b.metric = metric
		}
	}
}

// WithWorkers sets how many goroutines scan a large index in parallel.
// Values below 1 mean a sequential scan.
func WithWorkers(n int) Option {
	return func(b *BruteForce) {
		if n < 1 {
			n = 1
		}
		b.workers = n
	}
}

// WithParallelThreshold sets the minimum row count for a parallel scan.
func WithParallelThreshold(rows int) Option {
	return func(b *BruteForce) {
		if rows < 0 {
			rows = 0
		}
		b.parallelThreshold = rows
	}
}

// BruteForce is an exact k-nearest-neighbor index that compares the query
// against every row.
type BruteForce struct {
	data              []float64
	rows              int
	dim               int
	metric            DistanceFunc
	workers           int
	parallelThreshold int
}

var _ NeighborIndex = (*BruteForce)(nil)

// NewBruteForce copies rows into a new index. Every row must have the same
// width.
func NewBruteForce(rows [][]float64, opts ...Option) (*BruteForce, error) {
	b := &BruteForce{
		rows:              len(rows),
		metric:            Euclidean,
		workers:           1,
		parallelThreshold: DefaultParallelThreshold,
	}
	for _, opt := range opts {
		opt(b)
	}

	if len(rows) > 0 {
		b.dim = len(rows[0])
	}
	b.data = make([]float64, 0, b.rows*b.dim)
	for i, row := range rows {
		if len(row) != b.dim {
			return nil, fmt.Errorf("%w: row %d has width %d, want %d", ErrDimensionMismatch, i, len(row), b.dim)
		}
		b.data = append(b.data, row...)
	}

	return b, nil
}

// Len returns the number of indexed rows.
func (b *BruteForce) Len() int { return b.rows }

// Dim returns the vector width.
func (b *BruteForce) Dim() int { return b.dim }


func (b *BruteForce) row(i int) []float64 {
	return b.data[i*b.dim : (i+1)*b.dim]
}

// Query returns the k rows closest to v, ordered by ascending distance with
// ties broken by ascending row index.
func (b *BruteForce) Query(ctx context.Context, v []float64, k int) ([]Neighbor, error) {
	if len(v) != b.dim {
		return nil, fmt.Errorf("%w: query has width %d, want %d", ErrDimensionMismatch, len(v), b.dim)
	}
	if k < 0 || k > b.rows {
		return nil, fmt.Errorf("%w: k=%d with %d rows", ErrOutOfRange, k, b.rows)
	}
	if k == 0 {
		return []Neighbor{}, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	workers := min(b.workers, b.rows)
	if b.rows < b.parallelThreshold {
		workers = 1
	}

	var candidates []Neighbor
	if workers <= 1 {
		h, err := b.scan(ctx, v, k, 0, b.rows)
		if err != nil {
			return nil, err
		}
		candidates = h.items
	} else {
		var err error
		candidates, err = b.scanParallel(ctx, v, k, workers)
		if err != nil {
			return nil, err
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		return less(candidates[i], candidates[j])
	})
	if len(candidates) > k {
		candidates = candidates[:k]
	}
	return candidates, nil
}

// scan keeps the k best rows in [lo, hi).
func (b *BruteForce) scan(ctx context.Context, v []float64, k, lo, hi int) (*boundedHeap, error) {
	h := newBoundedHeap(k)
	for i := lo; i < hi; i++ {
		if (i-lo)%cancelCheckInterval == cancelCheckInterval-1 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		d := b.metric(v, b.row(i))
		if math.IsNaN(d) {
			d = math.Inf(1)
		}
		h.offer(Neighbor{Index: i, Distance: d})
	}
	return h, nil
}

// scanParallel splits the rows into contiguous chunks, one per worker, and
// merges each chunk's k best.
func (b *BruteForce) scanParallel(ctx context.Context, v []float64, k, workers int) ([]Neighbor, error) {
	chunk := (b.rows + workers - 1) / workers
	results := make([]*boundedHeap, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := min(lo+chunk, b.rows)
		if lo >= hi {
			continue
		}
		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			results[w], errs[w] = b.scan(ctx, v, k, lo, hi)
		}(w, lo, hi)
	}
	wg.Wait()

	merged := make([]Neighbor, 0, k*workers)
	for w := range results {
		if errs[w] != nil {
			return nil, errs[w]
		}
		if results[w] != nil {
			merged = append(merged, results[w].items...)
		}
	}
	return merged, nil
}
