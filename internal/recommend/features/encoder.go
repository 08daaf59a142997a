// Marquee - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package features

import (
	"sort"

	"github.com/tomtom215/marquee/internal/catalog"
)

// Field extracts the categorical values of one attribute from an item.
type Field struct {
	// Name prefixes every dimension derived from this field.
	Name string

	// Values returns the item's values for this field. Empty strings are ignored.
	Values func(it *catalog.Item) []string
}

// GenreField encodes the raw genre value. With no separators the whole value
// is one compound category; otherwise each tag is its own dimension.
func GenreField(separators string) Field {
	return Field{
		Name: "genres",
		Values: func(it *catalog.Item) []string {
			return it.GenreTags(separators)
		},
	}
}

// RuntimeField encodes the formatted runtime as a categorical bucket.
func RuntimeField() Field {
	return Field{
		Name: "runtime",
		Values: func(it *catalog.Item) []string {
			if it.Runtime != "" {
				return []string{it.Runtime}
			}
			return []string{catalog.FormatRuntime(it.RuntimeMinutes)}
		},
	}
}

// DefaultFields returns the compound genre field and the runtime field.
func DefaultFields() []Field {
	return []Field{GenreField(""), RuntimeField()}
}

// Encoder one-hot encodes items over a set of fields.
type Encoder struct {
	fields []Field
}

// NewEncoder creates an encoder. With no fields, DefaultFields is used.
func NewEncoder(fields ...Field) *Encoder {
	if len(fields) == 0 {
		fields = DefaultFields()
	}
	return &Encoder{fields: fields}
}

// Encoding is a fitted one-hot layout.
type Encoding struct {
	fields  []Field
	columns []string
	lookup  map[string]int
}

// Fit enumerates the distinct values of every field across items and fixes
// the dimension layout.
func (e *Encoder) Fit(items []catalog.Item) (*Encoding, error) {
	if len(items) == 0 {
		return nil, catalog.ErrEmptyCatalog
	}

	seen := make(map[string]struct{})
	for i := range items {
		for _, f := range e.fields {
			for _, v := range f.Values(&items[i]) {
				if v == "" {
					continue
				}
				seen[columnName(f.Name, v)] = struct{}{}
			}
		}
	}

	columns := make([]string, 0, len(seen))
	for c := range seen {
		columns = append(columns, c)
	}
	sort.Strings(columns)

	lookup := make(map[string]int, len(columns))
	for j, c := range columns {
		lookup[c] = j
	}

	return &Encoding{
		fields:  e.fields,
		columns: columns,
		lookup:  lookup,
	}, nil
}

func columnName(field, value string) string {
	return field + "_" + value
}

// Dim returns the number of dimensions.
func (enc *Encoding) Dim() int {
	return len(enc.columns)
}

// Columns returns the dimension names in layout order.
func (enc *Encoding) Columns() []string {
	out := make([]string, len(enc.columns))
	copy(out, enc.columns)
	return out
}

// Vector encodes a single item. Values not seen during Fit contribute nothing.
func (enc *Encoding) Vector(it catalog.Item) []float64 {
	v := make([]float64, len(enc.columns))
	enc.fill(&it, v)
	return v
}

func (enc *Encoding) fill(it *catalog.Item, dst []float64) {
	for _, f := range enc.fields {
		for _, val := range f.Values(it) {
			if j, ok := enc.lookup[columnName(f.Name, val)]; ok {
				dst[j] = 1
			}
		}
	}
}

// Transform encodes items into a matrix whose row i is items[i].
func (enc *Encoding) Transform(items []catalog.Item) (*Matrix, error) {
	if len(items) == 0 {
		return nil, catalog.ErrEmptyCatalog
	}

	m := NewMatrix(len(items), enc.columns)
	for i := range items {
		enc.fill(&items[i], m.Row(i))
	}
	return m, nil
}
