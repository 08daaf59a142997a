// Marquee - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package config

import (
	"os"
	"runtime"

	"github.com/tomtom215/marquee/internal/cache"
	"github.com/tomtom215/marquee/internal/catalog"
	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/recommend"
)

// LoggerConfig returns the settings for logging.New.
func (c *Config) LoggerConfig() logging.Config {
	return logging.Config{
		Level:     c.Logging.Level,
		Format:    c.Logging.Format,
		Caller:    c.Logging.Caller,
		Timestamp: true,
		Output:    os.Stderr,
	}
}

// LoadOptions returns the row handling options for the catalog loaders.
func (c *Config) LoadOptions(onSkip func(row int, err error)) catalog.LoadOptions {
	return catalog.LoadOptions{
		Columns:     c.Catalog.Columns,
		SkipInvalid: c.Catalog.SkipInvalidRows,
		OnSkip:      onSkip,
	}
}

// DuckDBSource describes the catalog for catalog.LoadDuckDB. A table wins
// over a file path.
func (c *Config) DuckDBSource() catalog.DuckDBSource {
	if c.Catalog.DuckDBTable != "" {
		return catalog.DuckDBSource{
			Database: c.Catalog.DuckDBDatabase,
			Table:    c.Catalog.DuckDBTable,
		}
	}
	return catalog.DuckDBSource{
		Database: c.Catalog.DuckDBDatabase,
		File:     c.Catalog.Path,
	}
}

// ServiceConfig returns the recommendation service configuration. Zero
// workers selects one per CPU.
func (c *Config) ServiceConfig() *recommend.Config {
	r := c.Recommend
	workers := r.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}
	return &recommend.Config{
		DefaultN:        r.DefaultN,
		MaxN:            r.MaxN,
		StrictCount:     r.StrictCount,
		Metric:          r.Metric,
		Workers:         workers,
		GenreMode:       r.GenreMode,
		GenreSeparators: r.GenreSeparators,
		RequestTimeout:  r.RequestTimeout,
	}
}

// CacheConfig returns the response cache configuration.
func (c *Config) CacheConfig() cache.Config {
	cc := c.Cache
	breaker := cache.BreakerConfig{
		MaxFailures: cc.Breaker.MaxFailures,
		OpenTimeout: cc.Breaker.OpenTimeout,
		Interval:    cc.Breaker.Interval,
	}
	return cache.Config{
		Backend:    cache.Backend(cc.Backend),
		TTL:        cc.TTL,
		MaxEntries: cc.MaxEntries,
		Redis: cache.RedisConfig{
			Addr:         cc.Redis.Addr,
			Password:     cc.Redis.Password,
			DB:           cc.Redis.DB,
			Prefix:       cc.Redis.Prefix,
			TTL:          cc.TTL,
			DialTimeout:  cc.Redis.DialTimeout,
			ReadTimeout:  cc.Redis.ReadTimeout,
			WriteTimeout: cc.Redis.WriteTimeout,
			Breaker:      breaker,
		},
		Badger: cache.BadgerConfig{
			Path:       cc.Badger.Path,
			InMemory:   cc.Badger.InMemory,
			TTL:        cc.TTL,
			SyncWrites: cc.Badger.SyncWrites,
			GCInterval: cc.Badger.GCInterval,
		},
	}
}
