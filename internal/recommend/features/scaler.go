// Marquee - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package features

import (
	"errors"
	"fmt"
	"math"

	"github.com/tomtom215/marquee/internal/catalog"
)

// ErrDegenerateDimension marks a column with zero variance. It is reported for
// diagnostics only; such columns transform to 0 and never fail a transform.
var ErrDegenerateDimension = errors.New("degenerate dimension")

// degenerateEpsilon treats standard deviations this small as zero.
const degenerateEpsilon = 1e-12

// Scaler standardizes columns to zero mean and unit variance using
// parameters fitted once. It is immutable after FitScaler.
type Scaler struct {
	columns    []string
	mean       []float64
	std        []float64
	degenerate []int
}

// FitScaler computes per-column mean and population standard deviation.
func FitScaler(m *Matrix) (*Scaler, error) {
	if m == nil || m.Rows() == 0 {
		return nil, catalog.ErrEmptyCatalog
	}

	rows, cols := m.Rows(), m.Cols()
	mean := make([]float64, cols)
	std := make([]float64, cols)

	for i := 0; i < rows; i++ {
		row := m.Row(i)
		for j, v := range row {
			mean[j] += v
		}
	}
	for j := range mean {
		mean[j] /= float64(rows)
	}

	// Second pass keeps the variance numerically stable.
	for i := 0; i < rows; i++ {
		row := m.Row(i)
		for j, v := range row {
			d := v - mean[j]
			std[j] += d * d
		}
	}

	var degenerate []int
	for j := range std {
		std[j] = math.Sqrt(std[j] / float64(rows))
		if std[j] < degenerateEpsilon {
			std[j] = 0
			degenerate = append(degenerate, j)
		}
	}

	return &Scaler{
		columns:    m.Columns(),
		mean:       mean,
		std:        std,
		degenerate: degenerate,
	}, nil
}

// Dim returns the number of fitted columns.
func (s *Scaler) Dim() int {
	return len(s.mean)
}

// Mean returns a copy of the fitted column means.
func (s *Scaler) Mean() []float64 {
	out := make([]float64, len(s.mean))
	copy(out, s.mean)
	return out
}

// Std returns a copy of the fitted column standard deviations.
func (s *Scaler) Std() []float64 {
	out := make([]float64, len(s.std))
	copy(out, s.std)
	return out
}

// Degenerate returns the indices of zero-variance columns.
func (s *Scaler) Degenerate() []int {
	out := make([]int, len(s.degenerate))
	copy(out, s.degenerate)
	return out
}

// DegenerateErr describes every zero-variance column, or returns nil.
func (s *Scaler) DegenerateErr() error {
	if len(s.degenerate) == 0 {
		return nil
	}
	errs := make([]error, 0, len(s.degenerate))
	for _, j := range s.degenerate {
		errs = append(errs, fmt.Errorf("%w: column %d (%s)", ErrDegenerateDimension, j, s.columns[j]))
	}
	return errors.Join(errs...)
}

// Transform returns a standardized copy of m.
func (s *Scaler) Transform(m *Matrix) (*Matrix, error) {
	if err := checkWidth(m.Cols(), s.Dim()); err != nil {
		return nil, err
	}

	out := NewMatrix(m.Rows(), m.columns)
	for i := 0; i < m.Rows(); i++ {
		s.apply(m.Row(i), out.Row(i))
	}
	return out, nil
}

// TransformVector standardizes a single vector with the fitted parameters.
func (s *Scaler) TransformVector(v []float64) ([]float64, error) {
	if err := checkWidth(len(v), s.Dim()); err != nil {
		return nil, err
	}

	out := make([]float64, len(v))
	s.apply(v, out)
	return out, nil
}

func (s *Scaler) apply(src, dst []float64) {
	for j, x := range src {
		if s.std[j] == 0 {
			dst[j] = 0
			continue
		}
		dst[j] = (x - s.mean[j]) / s.std[j]
	}
}
