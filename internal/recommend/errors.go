// Marquee - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package recommend

import (
	"errors"

	"github.com/tomtom215/marquee/internal/catalog"
	"github.com/tomtom215/marquee/internal/recommend/features"
	"github.com/tomtom215/marquee/internal/recommend/index"
)

// ErrNotFound is returned when no catalog item has the requested title.
var ErrNotFound = errors.New("title not found")

// Errors from the lower layers, re-exported so callers only need this package.
var (
	ErrOutOfRange          = index.ErrOutOfRange
	ErrEmptyCatalog        = catalog.ErrEmptyCatalog
	ErrDegenerateDimension = features.ErrDegenerateDimension
)
