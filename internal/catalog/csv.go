// Marquee - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package catalog

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

// LoadCSVFile reads a catalog CSV file from disk.
func LoadCSVFile(path string, opts LoadOptions) ([]Item, LoadStats, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return nil, LoadStats{}, fmt.Errorf("open catalog: %w", err)
	}
	defer func() { _ = f.Close() }()

	return LoadCSV(f, opts)
}

// LoadCSV reads catalog rows from r. The first record is the header.
func LoadCSV(r io.Reader, opts LoadOptions) ([]Item, LoadStats, error) {
	var stats LoadStats

	cr := csv.NewReader(bufio.NewReader(r))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, stats, ErrEmptyCatalog
		}
		return nil, stats, fmt.Errorf("read header: %w", err)
	}

	idx, err := resolveColumns(header, opts.Columns)
	if err != nil {
		return nil, stats, err
	}

	var items []Item
	for row := 1; ; row++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, stats, fmt.Errorf("read row %d: %w", row, err)
		}

		it, err := itemFromRecord(rec, idx, row)
		if err != nil {
			if !opts.SkipInvalid {
				return nil, stats, err
			}
			stats.Skipped++
			if opts.OnSkip != nil {
				opts.OnSkip(row, err)
			}
			continue
		}
		items = append(items, it)
	}

	stats.Rows = len(items)
	if len(items) == 0 {
		return nil, stats, ErrEmptyCatalog
	}
	return items, stats, nil
}
