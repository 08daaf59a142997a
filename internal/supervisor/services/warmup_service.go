// Marquee - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/marquee/internal/metrics"
	"github.com/tomtom215/marquee/internal/recommend"
)

// Warmup results recorded in cache_warmup_items_total.
const (
	warmupOK    = "ok"
	warmupError = "error"
)

// WarmupServiceConfig holds configuration for the cache warmup service.
type WarmupServiceConfig struct {
	// Titles to precompute, in order.
	Titles []string

	// N is the list length to precompute. Zero selects the service default,
	// which is what GET /movies/{title}/similar without n asks for.
	N int

	// ItemTimeout bounds each recommendation. Default: 5s
	ItemTimeout time.Duration
}

// WarmupService fills the response cache with the default recommendation
// list for a set of titles, then exits without restart.
type WarmupService struct {
	recommender recommend.Recommender
	config      WarmupServiceConfig
	logger      zerolog.Logger
	name        string
}

// NewWarmupService creates a warmup service. rec should be the cached
// recommender so results land in the cache.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewWarmupService(rec recommend.Recommender, cfg WarmupServiceConfig, logger zerolog.Logger) *WarmupService {
	if cfg.ItemTimeout <= 0 {
		cfg.ItemTimeout = 5 * time.Second
	}
	return &WarmupService{
		recommender: rec,
		config:      cfg,
		logger:      logger.With().Str("service", "cache-warmup").Logger(),
		name:        "cache-warmup",
	}
}

// WarmupTitles returns up to limit distinct titles in catalog order.
func WarmupTitles(svc *recommend.Service, limit int) []string {
	if limit <= 0 {
		return nil
	}
	items := svc.Catalog().Items()
	seen := make(map[string]struct{}, limit)
	titles := make([]string, 0, limit)
	for i := range items {
		if len(titles) == limit {
			break
		}
		if _, dup := seen[items[i].Title]; dup {
			continue
		}
		seen[items[i].Title] = struct{}{}
		titles = append(titles, items[i].Title)
	}
	return titles
}

// Serve implements suture.Service. Individual failures are counted and
// skipped. Returns suture.ErrDoNotRestart once every title was attempted.
func (s *WarmupService) Serve(ctx context.Context) error {
	start := time.Now()
	s.logger.Info().Int("titles", len(s.config.Titles)).Msg("cache warmup starting")

	var ok, failed int
	for _, title := range s.config.Titles {
		if ctx.Err() != nil {
			s.logger.Info().Int("completed", ok+failed).Msg("cache warmup interrupted")
			return ctx.Err()
		}

		if err := s.warm(ctx, title); err != nil {
			failed++
			metrics.CacheWarmupItems.WithLabelValues(warmupError).Inc()
			s.logger.Debug().Err(err).Str("title", title).Msg("warmup item failed")
			continue
		}
		ok++
		metrics.CacheWarmupItems.WithLabelValues(warmupOK).Inc()
	}

	s.logger.Info().
		Int("warmed", ok).
		Int("failed", failed).
		Dur("duration", time.Since(start)).
		Msg("cache warmup complete")

	return suture.ErrDoNotRestart
}

func (s *WarmupService) warm(ctx context.Context, title string) error {
	itemCtx, cancel := context.WithTimeout(ctx, s.config.ItemTimeout)
	defer cancel()

	_, err := s.recommender.RecommendScored(itemCtx, recommend.Request{
		Title: title,
		N:     s.config.N,
	})
	return err
}

// String returns the service name for logging.
func (s *WarmupService) String() string {
	return s.name
}
