// Marquee - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/marquee/internal/catalog"
	"github.com/tomtom215/marquee/internal/config"
	"github.com/tomtom215/marquee/internal/metrics"
)

// initCatalog reads the configured catalog source and builds the catalog.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func initCatalog(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*catalog.Catalog, error) {
	log := logger.With().Str("component", "catalog").Str("source", cfg.Catalog.Source).Logger()

	opts := cfg.LoadOptions(func(row int, err error) {
		log.Warn().Err(err).Int("row", row).Msg("skipping invalid catalog row")
	})

	start := time.Now()
	var (
		items []catalog.Item
		stats catalog.LoadStats
		err   error
	)
	switch cfg.Catalog.Source {
	case config.SourceDuckDB:
		items, stats, err = catalog.LoadDuckDB(ctx, cfg.DuckDBSource(), opts)
	case config.SourceCSV, "":
		items, stats, err = catalog.LoadCSVFile(cfg.Catalog.Path, opts)
	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.Catalog.Source)
	}
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	var catOpts []catalog.Option
	if cfg.Catalog.PosterBaseURL != "" {
		catOpts = append(catOpts, catalog.WithPosterBaseURL(cfg.Catalog.PosterBaseURL))
	}
	cat, err := catalog.New(items, catOpts...)
	if err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}

	elapsed := time.Since(start)
	metrics.RecordCatalogLoad(cfg.Catalog.Source, cat.Len(), stats.Skipped, elapsed)
	log.Info().
		Int("items", cat.Len()).
		Int("rows", stats.Rows).
		Int("skipped", stats.Skipped).
		Int("genres", len(cat.Genres())).
		Dur("duration", elapsed).
		Msg("catalog loaded")

	return cat, nil
}
