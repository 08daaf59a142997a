// Marquee - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package config

import (
	"fmt"

	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/validation"
)

// Validate checks struct tags first, then the rules that span fields.
func (c *Config) Validate() error {
	if verr := validation.ValidateStruct(c); verr != nil {
		return verr
	}

	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateCatalog(); err != nil {
		return err
	}
	if err := c.validateRecommend(); err != nil {
		return err
	}
	return c.validateCache()
}

func (c *Config) validateLogging() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("LOG_LEVEL must be one of trace, debug, info, warn, error, fatal, panic, disabled; got %q", c.Logging.Level)
	}
	return nil
}

// validateCatalog checks that the selected source has what it needs.
func (c *Config) validateCatalog() error {
	switch c.Catalog.Source {
	case SourceCSV:
		if c.Catalog.Path == "" {
			return fmt.Errorf("CATALOG_PATH is required when CATALOG_SOURCE=csv")
		}
		if c.Catalog.DuckDBTable != "" {
			return fmt.Errorf("CATALOG_DUCKDB_TABLE is only valid when CATALOG_SOURCE=duckdb")
		}
	case SourceDuckDB:
		if c.Catalog.DuckDBTable == "" && c.Catalog.Path == "" {
			return fmt.Errorf("CATALOG_SOURCE=duckdb needs CATALOG_DUCKDB_TABLE or CATALOG_PATH")
		}
		if c.Catalog.DuckDBTable != "" && c.Catalog.DuckDBDatabase == "" {
			return fmt.Errorf("CATALOG_DUCKDB_DATABASE is required when CATALOG_DUCKDB_TABLE is set")
		}
	}

	cols := c.Catalog.Columns
	if cols.Title == "" || cols.Genres == "" || cols.Runtime == "" {
		return fmt.Errorf("catalog columns title, genres and runtime must be named")
	}
	return nil
}

func (c *Config) validateRecommend() error {
	r := c.Recommend
	if r.MaxN != 0 && r.MaxN < r.DefaultN {
		return fmt.Errorf("RECOMMEND_MAX_N (%d) must be 0 or at least RECOMMEND_DEFAULT_N (%d)", r.MaxN, r.DefaultN)
	}
	// The full check lives with the service so both stay in step.
	if err := c.ServiceConfig().Validate(); err != nil {
		return fmt.Errorf("recommend: %w", err)
	}
	return nil
}

func (c *Config) validateCache() error {
	switch c.Cache.Backend {
	case "redis":
		if c.Cache.Redis.Addr == "" {
			return fmt.Errorf("REDIS_ADDR is required when CACHE_BACKEND=redis")
		}
	case "badger":
		if c.Cache.Badger.Path == "" && !c.Cache.Badger.InMemory {
			return fmt.Errorf("BADGER_PATH is required when CACHE_BACKEND=badger unless BADGER_IN_MEMORY=true")
		}
	case "none":
		if c.Cache.WarmupLimit > 0 {
			return fmt.Errorf("CACHE_WARMUP_LIMIT requires a cache backend other than none")
		}
	}
	return nil
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// ShouldWarnAboutCORS reports a wildcard origin in production.
func (c *Config) ShouldWarnAboutCORS() bool {
	if !c.IsProduction() {
		return false
	}
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
