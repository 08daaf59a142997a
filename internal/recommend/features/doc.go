// Marquee - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package features turns catalog items into the standardized numeric space the
// similarity index searches.
//
// Two stages run once at startup:
//
//  1. Encoder: one-hot encodes categorical fields (genre, formatted runtime).
//     Every distinct observed value becomes one dimension named
//     "<field>_<value>"; dimensions are sorted lexicographically so a catalog
//     always yields the same layout.
//  2. Scaler: fits per-column mean and population standard deviation and
//     rescales to zero mean and unit variance. Columns with zero variance are
//     degenerate and always transform to 0.
//
// Row i of every Matrix produced here corresponds to item i of the input.
// Encodings and scalers are immutable after fitting.
package features
