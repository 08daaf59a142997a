// Marquee - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package catalog holds the movie catalog that every other component reads from.
//
// A Catalog is an ordered, immutable sequence of Items. The position of an item
// in the catalog is its identity: row i of the feature matrix and row i of the
// similarity index both describe Catalog.At(i). Nothing in this package reorders
// or filters the sequence after construction.
//
// # Loading
//
// Catalogs are loaded once at startup from one of two sources:
//
//   - CSV files via LoadCSV (header-driven column mapping)
//   - DuckDB via LoadDuckDB (a table in a database file, or any file DuckDB can
//     scan with read_csv_auto)
//
// Both loaders derive the formatted runtime ("2h 15min") from the numeric
// runtime column so downstream encoders never see raw minutes.
//
// # Browsing
//
// The catalog also answers the cheap presentation queries: distinct genres,
// exact-match genre filtering, seeded random sampling, and case-insensitive
// title autocomplete through TitleIndex.
//
// # Thread Safety
//
// A Catalog and its TitleIndex are read-only after construction and safe for
// concurrent use without locking.
package catalog
