// Marquee - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "github.com/duckdb/duckdb-go/v2" // registers the "duckdb" driver
)

// DuckDBSource describes where to read a catalog through DuckDB.
// Exactly one of Table or File must be set.
type DuckDBSource struct {
	// Database is the DuckDB database file. Empty opens an in-memory database,
	// which is enough when reading File.
	Database string

	// Table is a table or view in Database holding one row per item.
	Table string

	// File is any file DuckDB can scan with read_csv_auto.
	File string
}

// query builds the SELECT for the source.
func (s DuckDBSource) query() (string, error) {
	switch {
	case s.Table != "" && s.File != "":
		return "", errors.New("duckdb source: set table or file, not both")
	case s.Table != "":
		return "SELECT * FROM " + quoteIdent(s.Table), nil
	case s.File != "":
		return "SELECT * FROM read_csv_auto(" + quoteLiteral(s.File) + ", header = true)", nil
	default:
		return "", errors.New("duckdb source: table or file is required")
	}
}

// dsn disables extension auto-install so loading never reaches the network.
func (s DuckDBSource) dsn() string {
	params := "autoinstall_known_extensions=false&autoload_known_extensions=false"
	if s.Database == "" {
		return ":memory:?" + params
	}
	return s.Database + "?access_mode=read_only&" + params
}

// LoadDuckDB reads catalog rows through DuckDB, preserving the source row order.
func LoadDuckDB(ctx context.Context, src DuckDBSource, opts LoadOptions) ([]Item, LoadStats, error) {
	var stats LoadStats

	query, err := src.query()
	if err != nil {
		return nil, stats, err
	}

	db, err := sql.Open("duckdb", src.dsn())
	if err != nil {
		return nil, stats, fmt.Errorf("open duckdb: %w", err)
	}
	defer func() { _ = db.Close() }()

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, stats, fmt.Errorf("query catalog: %w", err)
	}
	defer func() { _ = rows.Close() }()

	header, err := rows.Columns()
	if err != nil {
		return nil, stats, fmt.Errorf("read columns: %w", err)
	}
	idx, err := resolveColumns(header, opts.Columns)
	if err != nil {
		return nil, stats, err
	}

	values := make([]sql.NullString, len(header))
	dest := make([]any, len(header))
	for i := range values {
		dest[i] = &values[i]
	}
	rec := make([]string, len(header))

	var items []Item
	for row := 1; rows.Next(); row++ {
		if err := rows.Scan(dest...); err != nil {
			return nil, stats, fmt.Errorf("scan row %d: %w", row, err)
		}
		for i, v := range values {
			rec[i] = v.String
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
	if err := rows.Err(); err != nil {
		return nil, stats, fmt.Errorf("iterate catalog: %w", err)
	}

	stats.Rows = len(items)
	if len(items) == 0 {
		return nil, stats, ErrEmptyCatalog
	}
	return items, stats, nil
}

func quoteIdent(s string) string {
	parts := strings.Split(s, ".")
	for i, p := range parts {
		parts[i] = `"` + strings.ReplaceAll(p, `"`, `""`) + `"`
	}
	return strings.Join(parts, ".")
}

func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
