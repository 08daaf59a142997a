// Marquee - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package features

import (
	"errors"
	"math"
	"testing"

	"github.com/tomtom215/marquee/internal/catalog"
)

const tolerance = 1e-9

func matrixFrom(rows [][]float64) *Matrix {
	cols := make([]string, len(rows[0]))
	for j := range cols {
		cols[j] = string(rune('a' + j))
	}
	m := NewMatrix(len(rows), cols)
	for i, row := range rows {
		for j, v := range row {
			m.Set(i, j, v)
		}
	}
	return m
}

func TestFitScaler(t *testing.T) {
	t.Parallel()

	m := matrixFrom([][]float64{
		{1, 0, 5},
		{1, 1, 5},
		{0, 1, 5},
		{0, 0, 5},
	})

	s, err := FitScaler(m)
	if err != nil {
		t.Fatalf("FitScaler() error = %v", err)
	}

	wantMean := []float64{0.5, 0.5, 5}
	wantStd := []float64{0.5, 0.5, 0}
	for j := range wantMean {
		if math.Abs(s.Mean()[j]-wantMean[j]) > tolerance {
			t.Errorf("mean[%d] = %v, want %v", j, s.Mean()[j], wantMean[j])
		}
		if math.Abs(s.Std()[j]-wantStd[j]) > tolerance {
			t.Errorf("std[%d] = %v, want %v", j, s.Std()[j], wantStd[j])
		}
	}

	if d := s.Degenerate(); len(d) != 1 || d[0] != 2 {
		t.Errorf("Degenerate() = %v, want [2]", d)
	}
	if err := s.DegenerateErr(); !errors.Is(err, ErrDegenerateDimension) {
		t.Errorf("DegenerateErr() = %v, want ErrDegenerateDimension", err)
	}
}

func TestScaler_Transform(t *testing.T) {
	t.Parallel()

	m := matrixFrom([][]float64{
		{1, 0, 5},
		{1, 1, 5},
		{0, 1, 5},
		{0, 0, 5},
	})
	s, err := FitScaler(m)
	if err != nil {
		t.Fatalf("FitScaler() error = %v", err)
	}

	out, err := s.Transform(m)
	if err != nil {
		t.Fatalf("Transform() error = %v", err)
	}

	want := [][]float64{
		{1, -1, 0},
		{1, 1, 0},
		{-1, 1, 0},
		{-1, -1, 0},
	}
	for i := range want {
		for j := range want[i] {
			if got := out.At(i, j); math.Abs(got-want[i][j]) > tolerance {
				t.Errorf("out[%d][%d] = %v, want %v", i, j, got, want[i][j])
			}
		}
	}

	// The input is left untouched.
	if m.At(0, 0) != 1 {
		t.Error("Transform modified its input")
	}

	// Each non-degenerate column has zero mean and unit population variance.
	for j := 0; j < 2; j++ {
		var sum, sq float64
		for i := 0; i < out.Rows(); i++ {
			sum += out.At(i, j)
			sq += out.At(i, j) * out.At(i, j)
		}
		n := float64(out.Rows())
		if math.Abs(sum/n) > tolerance || math.Abs(sq/n-1) > tolerance {
			t.Errorf("column %d mean=%v var=%v", j, sum/n, sq/n)
		}
	}
}

func TestScaler_ZeroVarianceSafety(t *testing.T) {
	t.Parallel()

	// Every item shares the genre, so that dimension is constant.
	items := []catalog.Item{
		{Genres: "Drama", RuntimeMinutes: 90},
		{Genres: "Drama", RuntimeMinutes: 100},
		{Genres: "Drama", RuntimeMinutes: 110},
	}
	enc, err := NewEncoder().Fit(items)
	if err != nil {
		t.Fatalf("Fit() error = %v", err)
	}
	m, err := enc.Transform(items)
	if err != nil {
		t.Fatalf("Transform() error = %v", err)
	}

	s, err := FitScaler(m)
	if err != nil {
		t.Fatalf("FitScaler() error = %v", err)
	}
	out, err := s.Transform(m)
	if err != nil {
		t.Fatalf("Transform() error = %v", err)
	}

	genreCol := -1
	for j, c := range out.Columns() {
		if c == "genres_Drama" {
			genreCol = j
		}
	}
	if genreCol < 0 {
		t.Fatal("genres_Drama column missing")
	}

	for i := 0; i < out.Rows(); i++ {
		v := out.At(i, genreCol)
		if v != 0 {
			t.Errorf("row %d constant column = %v, want 0", i, v)
		}
		for j := 0; j < out.Cols(); j++ {
			if x := out.At(i, j); math.IsNaN(x) || math.IsInf(x, 0) {
				t.Errorf("row %d col %d = %v", i, j, x)
			}
		}
	}
}

func TestScaler_TransformVector(t *testing.T) {
	t.Parallel()

	m := matrixFrom([][]float64{{0, 2}, {2, 2}})
	s, err := FitScaler(m)
	if err != nil {
		t.Fatalf("FitScaler() error = %v", err)
	}

	got, err := s.TransformVector([]float64{2, 7})
	if err != nil {
		t.Fatalf("TransformVector() error = %v", err)
	}
	if got[0] != 1 || got[1] != 0 {
		t.Errorf("TransformVector() = %v, want [1 0]", got)
	}

	if _, err := s.TransformVector([]float64{1}); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("short vector error = %v, want ErrDimensionMismatch", err)
	}
	if _, err := s.Transform(matrixFrom([][]float64{{1, 2, 3}})); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("wide matrix error = %v, want ErrDimensionMismatch", err)
	}
}

func TestFitScaler_Empty(t *testing.T) {
	t.Parallel()

	if _, err := FitScaler(nil); !errors.Is(err, catalog.ErrEmptyCatalog) {
		t.Errorf("FitScaler(nil) error = %v", err)
	}
	if _, err := FitScaler(NewMatrix(0, []string{"a"})); !errors.Is(err, catalog.ErrEmptyCatalog) {
		t.Errorf("FitScaler(empty) error = %v", err)
	}
}

func TestScaler_NoDegenerateColumns(t *testing.T) {
	t.Parallel()

	s, err := FitScaler(matrixFrom([][]float64{{0}, {1}}))
	if err != nil {
		t.Fatalf("FitScaler() error = %v", err)
	}
	if err := s.DegenerateErr(); err != nil {
		t.Errorf("DegenerateErr() = %v, want nil", err)
	}
}
