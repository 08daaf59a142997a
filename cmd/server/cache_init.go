// Marquee - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package main

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/tomtom215/marquee/internal/cache"
	"github.com/tomtom215/marquee/internal/config"
	"github.com/tomtom215/marquee/internal/recommend"
	"github.com/tomtom215/marquee/internal/supervisor"
	"github.com/tomtom215/marquee/internal/supervisor/services"
)

// CacheComponents holds the response cache and the recommender in front of it.
type CacheComponents struct {
	Store       cache.Store
	Recommender recommend.Recommender
	Backend     string
}

// Close releases the backing store.
func (c *CacheComponents) Close() error {
	if c == nil || c.Store == nil {
		return nil
	}
	return c.Store.Close()
}

// initCache opens the configured response cache and registers its
// maintenance services. A cache that fails to open is logged and the
// service runs uncached.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func initCache(ctx context.Context, cfg *config.Config, svc *recommend.Service, tree *supervisor.SupervisorTree, logger zerolog.Logger) *CacheComponents {
	uncached := &CacheComponents{Recommender: svc, Backend: string(cache.BackendNone)}

	store, err := cache.Open(ctx, cfg.CacheConfig(), logger)
	if err != nil {
		logger.Error().Err(err).Str("backend", cfg.Cache.Backend).Msg("response cache unavailable, serving uncached")
		return uncached
	}
	if store == nil {
		logger.Info().Msg("response cache disabled (CACHE_BACKEND=none)")
		return uncached
	}

	cached := recommend.NewCached(svc, store, logger)
	comps := &CacheComponents{Store: store, Recommender: cached, Backend: store.Name()}

	if gc, ok := garbageCollector(store); ok {
		tree.AddMaintenanceService(services.NewCacheGCService(gc, services.CacheGCServiceConfig{
			Interval: cfg.Cache.Badger.GCInterval,
		}, logger))
		logger.Info().Dur("interval", cfg.Cache.Badger.GCInterval).Msg("cache GC service added to supervisor tree")
	}

	if cfg.Cache.WarmupLimit > 0 {
		tree.AddMaintenanceService(services.NewWarmupService(cached, services.WarmupServiceConfig{
			Titles: services.WarmupTitles(svc, cfg.Cache.WarmupLimit),
		}, logger))
		logger.Info().Int("limit", cfg.Cache.WarmupLimit).Msg("cache warmup service added to supervisor tree")
	}

	return comps
}

// garbageCollector finds a GC-capable backend behind the metrics wrapper.
func garbageCollector(store cache.Store) (services.GarbageCollector, bool) {
	if ins, ok := store.(*cache.Instrumented); ok {
		store = ins.Unwrap()
	}
	gc, ok := store.(services.GarbageCollector)
	return gc, ok
}
