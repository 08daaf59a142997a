// Marquee - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package config

import (
	"time"

	"github.com/tomtom215/marquee/internal/catalog"
)

// Config holds all application configuration.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in defaults for every setting
//  2. Config File: Optional YAML file (CONFIG_PATH, config.yaml, /etc/marquee/config.yaml)
//  3. Environment Variables: Override any setting via the names in envTransformFunc
//
// Config is immutable after Load() and safe for concurrent reads.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Logging   LoggingConfig   `koanf:"logging"`
	Catalog   CatalogConfig   `koanf:"catalog"`
	Recommend RecommendConfig `koanf:"recommend"`
	Cache     CacheConfig     `koanf:"cache"`
	Security  SecurityConfig  `koanf:"security"`
}

// ServerConfig holds HTTP server settings.
//
// Environment Variables:
//   - HTTP_HOST, HTTP_PORT
//   - HTTP_READ_TIMEOUT, HTTP_WRITE_TIMEOUT, HTTP_IDLE_TIMEOUT
//   - HTTP_SHUTDOWN_TIMEOUT: grace period for in-flight requests on stop
//   - ENVIRONMENT: development, staging or production
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `koanf:"read_timeout" validate:"gte=0"`
	WriteTimeout    time.Duration `koanf:"write_timeout" validate:"gte=0"`
	IdleTimeout     time.Duration `koanf:"idle_timeout" validate:"gte=0"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gte=0"`
	Environment     string        `koanf:"environment" validate:"oneof=development staging production"`
}

// LoggingConfig holds logging configuration.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false - include caller file:line (default: false)
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller"`
}

// Catalog sources.
const (
	SourceCSV    = "csv"
	SourceDuckDB = "duckdb"
)

// CatalogConfig describes where the item catalog is read from.
//
// With source csv, Path is a CSV file read with encoding/csv. With source
// duckdb, either DuckDBTable names a table in DuckDBDatabase or Path is a
// file scanned by DuckDB's read_csv_auto.
//
// Environment Variables:
//   - CATALOG_SOURCE: csv or duckdb (default: csv)
//   - CATALOG_PATH: catalog file (default: /data/movies.csv)
//   - CATALOG_DUCKDB_DATABASE, CATALOG_DUCKDB_TABLE
//   - CATALOG_POSTER_BASE_URL: prefix for poster paths
//   - CATALOG_SKIP_INVALID_ROWS: drop malformed rows instead of failing
//   - CATALOG_SAMPLE_SIZE: size of the landing-page sample (default: 9)
type CatalogConfig struct {
	Source          string          `koanf:"source" validate:"oneof=csv duckdb"`
	Path            string          `koanf:"path"`
	DuckDBDatabase  string          `koanf:"duckdb_database"`
	DuckDBTable     string          `koanf:"duckdb_table"`
	Columns         catalog.Columns `koanf:"columns"`
	PosterBaseURL   string          `koanf:"poster_base_url" validate:"omitempty,url"`
	SkipInvalidRows bool            `koanf:"skip_invalid_rows"`
	SampleSize      int             `koanf:"sample_size" validate:"min=1,max=100"`
}

// RecommendConfig holds recommendation service settings.
//
// Environment Variables:
//   - RECOMMEND_DEFAULT_N: results when a request names no count (default: 6)
//   - RECOMMEND_MAX_N: cap on requested counts, 0 for none (default: 50)
//   - RECOMMEND_STRICT_COUNT: reject counts above catalog size - 1 instead of clamping
//   - RECOMMEND_METRIC: euclidean, sqeuclidean, manhattan or cosine
//   - RECOMMEND_WORKERS: scan goroutines, 0 for one per CPU (default: 1)
//   - RECOMMEND_GENRE_MODE: compound or multi (default: compound)
//   - RECOMMEND_GENRE_SEPARATORS: tag separators in multi mode (default: "|,")
//   - RECOMMEND_REQUEST_TIMEOUT: per-request budget (default: 5s)
type RecommendConfig struct {
	DefaultN        int           `koanf:"default_n" validate:"min=1"`
	MaxN            int           `koanf:"max_n" validate:"min=0"`
	StrictCount     bool          `koanf:"strict_count"`
	Metric          string        `koanf:"metric" validate:"metric"`
	Workers         int           `koanf:"workers" validate:"min=0,max=1024"`
	GenreMode       string        `koanf:"genre_mode" validate:"oneof=compound multi"`
	GenreSeparators string        `koanf:"genre_separators" validate:"required_if=GenreMode multi"`
	RequestTimeout  time.Duration `koanf:"request_timeout" validate:"gte=0"`
}

// CacheConfig selects and tunes the response cache.
//
// Environment Variables:
//   - CACHE_BACKEND: none, memory, redis or badger (default: memory)
//   - CACHE_TTL: entry lifetime (default: 10m)
//   - CACHE_MAX_ENTRIES: memory backend capacity (default: 10000)
//   - CACHE_WARMUP_LIMIT: titles precomputed at startup, 0 disables warmup
//   - REDIS_ADDR, REDIS_PASSWORD, REDIS_DB, REDIS_PREFIX
//   - BADGER_PATH, BADGER_IN_MEMORY, BADGER_SYNC_WRITES, BADGER_GC_INTERVAL
type CacheConfig struct {
	Backend     string             `koanf:"backend" validate:"oneof=none memory redis badger"`
	TTL         time.Duration      `koanf:"ttl" validate:"gte=0"`
	MaxEntries  int                `koanf:"max_entries" validate:"min=0"`
	WarmupLimit int                `koanf:"warmup_limit" validate:"min=0"`
	Redis       RedisCacheConfig   `koanf:"redis"`
	Badger      BadgerCacheConfig  `koanf:"badger"`
	Breaker     CacheBreakerConfig `koanf:"breaker"`
}

// RedisCacheConfig configures the redis backend.
type RedisCacheConfig struct {
	Addr         string        `koanf:"addr"`
	Password     string        `koanf:"password"`
	DB           int           `koanf:"db" validate:"min=0,max=15"`
	Prefix       string        `koanf:"prefix"`
	DialTimeout  time.Duration `koanf:"dial_timeout" validate:"gte=0"`
	ReadTimeout  time.Duration `koanf:"read_timeout" validate:"gte=0"`
	WriteTimeout time.Duration `koanf:"write_timeout" validate:"gte=0"`
}

// BadgerCacheConfig configures the badger backend.
type BadgerCacheConfig struct {
	Path       string        `koanf:"path"`
	InMemory   bool          `koanf:"in_memory"`
	SyncWrites bool          `koanf:"sync_writes"`
	GCInterval time.Duration `koanf:"gc_interval" validate:"gte=0"`
}

// CacheBreakerConfig tunes the circuit breaker in front of remote backends.
type CacheBreakerConfig struct {
	MaxFailures uint32        `koanf:"max_failures" validate:"min=1"`
	OpenTimeout time.Duration `koanf:"open_timeout" validate:"gte=0"`
	Interval    time.Duration `koanf:"interval" validate:"gte=0"`
}

// SecurityConfig holds HTTP hardening settings.
//
// Environment Variables:
//   - CORS_ORIGINS: comma-separated allowed origins (default: *)
//   - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW: per-IP request budget
//   - DISABLE_RATE_LIMIT: turn rate limiting off
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs" validate:"min=0"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window" validate:"gte=0"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// Load reads configuration from defaults, an optional config file and the
// environment, then validates it. See LoadWithKoanf.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
