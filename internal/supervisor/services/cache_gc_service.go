// Marquee - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/marquee/internal/cache"
)

// GarbageCollector is implemented by cache backends that need periodic
// compaction, such as *cache.Badger.
type GarbageCollector interface {
	RunGC(discardRatio float64) error
}

var _ GarbageCollector = (*cache.Badger)(nil)

// CacheGCServiceConfig holds configuration for the cache GC service.
type CacheGCServiceConfig struct {
	// Interval between GC runs. Default: 10m
	Interval time.Duration

	// DiscardRatio passed to RunGC. Default: cache.DefaultGCDiscardRatio
	DiscardRatio float64
}

// CacheGCService periodically reclaims space in the persistent response
// cache. A failed run is logged and retried on the next tick; the service
// only returns when its context ends.
type CacheGCService struct {
	gc     GarbageCollector
	config CacheGCServiceConfig
	logger zerolog.Logger
	name   string
}

// NewCacheGCService creates a GC service for gc.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewCacheGCService(gc GarbageCollector, cfg CacheGCServiceConfig, logger zerolog.Logger) *CacheGCService {
	if cfg.Interval <= 0 {
		cfg.Interval = 10 * time.Minute
	}
	if cfg.DiscardRatio <= 0 {
		cfg.DiscardRatio = cache.DefaultGCDiscardRatio
	}
	return &CacheGCService{
		gc:     gc,
		config: cfg,
		logger: logger.With().Str("service", "cache-gc").Logger(),
		name:   "cache-gc",
	}
}

// Serve implements suture.Service.
func (s *CacheGCService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	s.logger.Debug().Dur("interval", s.config.Interval).Msg("cache GC scheduled")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			start := time.Now()
			if err := s.gc.RunGC(s.config.DiscardRatio); err != nil {
				s.logger.Warn().Err(err).Msg("cache GC failed")
				continue
			}
			s.logger.Debug().Dur("duration", time.Since(start)).Msg("cache GC run complete")
		}
	}
}

// String returns the service name for logging.
func (s *CacheGCService) String() string {
	return s.name
}
