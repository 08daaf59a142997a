// Marquee - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package features

import (
	"errors"
	"fmt"
)

// ErrDimensionMismatch is returned when a vector's width does not match the
// fitted layout.
var ErrDimensionMismatch = errors.New("dimension mismatch")

// Matrix is a dense row-major matrix with named columns.
type Matrix struct {
	rows    int
	cols    int
	data    []float64
	columns []string
}

// NewMatrix allocates a zeroed rows x len(columns) matrix.
func NewMatrix(rows int, columns []string) *Matrix {
	names := make([]string, len(columns))
	copy(names, columns)
	return &Matrix{
		rows:    rows,
		cols:    len(columns),
		data:    make([]float64, rows*len(columns)),
		columns: names,
	}
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// Columns returns the column names in order.
func (m *Matrix) Columns() []string {
	out := make([]string, len(m.columns))
	copy(out, m.columns)
	return out
}

// At returns the value at row i, column j.
func (m *Matrix) At(i, j int) float64 {
	return m.data[i*m.cols+j]
}

// Set stores v at row i, column j.
func (m *Matrix) Set(i, j int, v float64) {
	m.data[i*m.cols+j] = v
}

// Row returns row i. The slice aliases the matrix storage and must not be
// modified by callers that share the matrix.
func (m *Matrix) Row(i int) []float64 {
	return m.data[i*m.cols : (i+1)*m.cols : (i+1)*m.cols]
}

// RowCopy returns a copy of row i.
func (m *Matrix) RowCopy(i int) []float64 {
	out := make([]float64, m.cols)
	copy(out, m.Row(i))
	return out
}

// RowViews returns every row as a slice aliasing the matrix storage.
func (m *Matrix) RowViews() [][]float64 {
	out := make([][]float64, m.rows)
	for i := range out {
		out[i] = m.Row(i)
	}
	return out
}

func checkWidth(got, want int) error {
	if got != want {
		return fmt.Errorf("%w: got %d columns, want %d", ErrDimensionMismatch, got, want)
	}
	return nil
}
