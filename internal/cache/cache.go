// Marquee - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/marquee/internal/metrics"
)

// Open constructs the configured backend wrapped with metrics. It returns
// (nil, nil) for BackendNone.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func Open(ctx context.Context, cfg Config, logger zerolog.Logger) (Store, error) {
	var (
		store Store
		err   error
	)

	switch cfg.Backend {
	case BackendNone, "":
		return nil, nil
	case BackendMemory:
		store, err = NewMemory(cfg.MaxEntries, cfg.TTL)
	case BackendRedis:
		rc := cfg.Redis
		if rc.TTL == 0 {
			rc.TTL = cfg.TTL
		}
		store, err = NewRedis(ctx, rc, logger)
	case BackendBadger:
		bc := cfg.Badger
		if bc.TTL == 0 {
			bc.TTL = cfg.TTL
		}
		store, err = OpenBadger(bc, logger)
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s cache: %w", cfg.Backend, err)
	}

	logger.Info().
		Str("component", "cache").
		Str("backend", store.Name()).
		Dur("ttl", cfg.TTL).
		Msg("response cache ready")

	return Instrument(store), nil
}

// Instrumented records Prometheus metrics for every operation on a Store.
type Instrumented struct {
	Store
}

// Instrument wraps s with metrics.
func Instrument(s Store) *Instrumented {
	return &Instrumented{Store: s}
}

// Get records a hit, miss or error.
func (i *Instrumented) Get(ctx context.Context, key string) ([]byte, bool, error) {
	start := time.Now()
	v, ok, err := i.Store.Get(ctx, key)
	metrics.RecordCacheLookup(i.Name(), ok, err, time.Since(start))
	return v, ok, err
}

// Set records write latency and failures.
func (i *Instrumented) Set(ctx context.Context, key string, value []byte) error {
	start := time.Now()
	err := i.Store.Set(ctx, key, value)
	metrics.RecordCacheWrite(i.Name(), err, time.Since(start))
	return err
}

// Unwrap returns the underlying store.
func (i *Instrumented) Unwrap() Store {
	return i.Store
}
