// Marquee - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package index

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"sort"
	"testing"
)

func TestBruteForce_Query(t *testing.T) {
	t.Parallel()

	rows := [][]float64{
		{0, 0},
		{3, 0},
		{1, 0},
		{0, 1},
		{5, 5},
	}
	idx, err := NewBruteForce(rows)
	if err != nil {
		t.Fatalf("NewBruteForce() error = %v", err)
	}

	tests := []struct {
		name      string
		query     []float64
		k         int
		wantIndex []int
	}{
		{"self first", []float64{0, 0}, 1, []int{0}},
		{"ties by ascending index", []float64{0, 0}, 3, []int{0, 2, 3}},
		{"all rows", []float64{0, 0}, 5, []int{0, 2, 3, 1, 4}},
		{"far query", []float64{5, 4}, 2, []int{4, 1}},
		{"zero k", []float64{0, 0}, 0, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := idx.Query(context.Background(), tt.query, tt.k)
			if err != nil {
				t.Fatalf("Query() error = %v", err)
			}
			if len(got) != len(tt.wantIndex) {
				t.Fatalf("Query() returned %d neighbors, want %d", len(got), len(tt.wantIndex))
			}
			for i, n := range got {
				if n.Index != tt.wantIndex[i] {
					t.Errorf("neighbor[%d].Index = %d, want %d", i, n.Index, tt.wantIndex[i])
				}
				if i > 0 && n.Distance < got[i-1].Distance {
					t.Errorf("distances not ascending at %d: %v < %v", i, n.Distance, got[i-1].Distance)
				}
			}
		})
	}
}

func TestBruteForce_OutOfRange(t *testing.T) {
	t.Parallel()

	idx, err := NewBruteForce([][]float64{{0}, {1}})
	if err != nil {
		t.Fatalf("NewBruteForce() error = %v", err)
	}

	for _, k := range []int{-1, 3, 100} {
		if _, err := idx.Query(context.Background(), []float64{0}, k); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("Query(k=%d) error = %v, want ErrOutOfRange", k, err)
		}
	}
	if _, err := idx.Query(context.Background(), []float64{0}, 2); err != nil {
		t.Errorf("Query(k=N) error = %v", err)
	}
}

func TestBruteForce_DimensionMismatch(t *testing.T) {
	t.Parallel()

	if _, err := NewBruteForce([][]float64{{0, 1}, {1}}); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("NewBruteForce() error = %v, want ErrDimensionMismatch", err)
	}

	idx, err := NewBruteForce([][]float64{{0, 1}})
	if err != nil {
		t.Fatalf("NewBruteForce() error = %v", err)
	}
	if _, err := idx.Query(context.Background(), []float64{0}, 1); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("Query() error = %v, want ErrDimensionMismatch", err)
	}
}

func TestBruteForce_CopiesRows(t *testing.T) {
	t.Parallel()

	rows := [][]float64{{0}, {10}}
	idx, err := NewBruteForce(rows)
	if err != nil {
		t.Fatalf("NewBruteForce() error = %v", err)
	}
	rows[0][0] = 100

	got, err := idx.Query(context.Background(), []float64{0}, 1)
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if got[0].Index != 0 || got[0].Distance != 0 {
		t.Errorf("Query() = %+v, index kept a reference to caller rows", got[0])
	}
}

func TestBruteForce_ParallelMatchesSequential(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))
	rows := make([][]float64, 1000)
	for i := range rows {
		// Coarse values produce many exact ties.
		rows[i] = []float64{float64(rng.Intn(4)), float64(rng.Intn(4)), float64(rng.Intn(4))}
	}

	seq, err := NewBruteForce(rows)
	if err != nil {
		t.Fatalf("NewBruteForce() error = %v", err)
	}
	par, err := NewBruteForce(rows, WithWorkers(7), WithParallelThreshold(0))
	if err != nil {
		t.Fatalf("NewBruteForce() error = %v", err)
	}

	for _, k := range []int{1, 10, 250, 1000} {
		q := rows[rng.Intn(len(rows))]
		want, err := seq.Query(context.Background(), q, k)
		if err != nil {
			t.Fatalf("sequential Query() error = %v", err)
		}
		got, err := par.Query(context.Background(), q, k)
		if err != nil {
			t.Fatalf("parallel Query() error = %v", err)
		}
		if len(got) != len(want) {
			t.Fatalf("k=%d: parallel returned %d, sequential %d", k, len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("k=%d: neighbor[%d] = %+v, want %+v", k, i, got[i], want[i])
			}
		}
	}
}

func TestBruteForce_MatchesFullSort(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7))
	rows := make([][]float64, 200)
	for i := range rows {
		rows[i] = []float64{rng.NormFloat64(), rng.NormFloat64()}
	}
	idx, err := NewBruteForce(rows, WithMetric(Manhattan))
	if err != nil {
		t.Fatalf("NewBruteForce() error = %v", err)
	}

	q := []float64{0.1, -0.2}
	all := make([]Neighbor, len(rows))
	for i, r := range rows {
		all[i] = Neighbor{Index: i, Distance: Manhattan(q, r)}
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].Distance < all[j].Distance })

	got, err := idx.Query(context.Background(), q, 20)
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	for i := range got {
		if got[i] != all[i] {
			t.Errorf("neighbor[%d] = %+v, want %+v", i, got[i], all[i])
		}
	}
}

func TestBruteForce_Cancelled(t *testing.T) {
	t.Parallel()

	idx, err := NewBruteForce([][]float64{{0}, {1}})
	if err != nil {
		t.Fatalf("NewBruteForce() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := idx.Query(ctx, []float64{0}, 1); !errors.Is(err, context.Canceled) {
		t.Errorf("Query() error = %v, want context.Canceled", err)
	}
}

func TestBruteForce_NaNSortsLast(t *testing.T) {
	t.Parallel()

	idx, err := NewBruteForce([][]float64{{math.NaN()}, {1}})
	if err != nil {
		t.Fatalf("NewBruteForce() error = %v", err)
	}
	got, err := idx.Query(context.Background(), []float64{0}, 2)
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if got[0].Index != 1 || !math.IsInf(got[1].Distance, 1) {
		t.Errorf("Query() = %+v, want row 1 first and NaN row at +Inf", got)
	}
}
