// Marquee - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/tomtom215/marquee/internal/catalog"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/marquee/config.yaml",
	"/etc/marquee/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config struct with all default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8501,
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    30 * time.Second,
			IdleTimeout:     2 * time.Minute,
			ShutdownTimeout: 15 * time.Second,
			Environment:     "development",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Catalog: CatalogConfig{
			Source:          SourceCSV,
			Path:            "/data/movies.csv",
			Columns:         catalog.DefaultColumns(),
			PosterBaseURL:   catalog.DefaultPosterBaseURL,
			SkipInvalidRows: true,
			SampleSize:      9,
		},
		Recommend: RecommendConfig{
			DefaultN:        6,
			MaxN:            50,
			StrictCount:     false,
			Metric:          "euclidean",
			Workers:         1,
			GenreMode:       "compound",
			GenreSeparators: "|,",
			RequestTimeout:  5 * time.Second,
		},
		Cache: CacheConfig{
			Backend:     "memory",
			TTL:         10 * time.Minute,
			MaxEntries:  10000,
			WarmupLimit: 0,
			Redis: RedisCacheConfig{
				Addr:         "localhost:6379",
				DB:           0,
				Prefix:       "marquee:",
				DialTimeout:  2 * time.Second,
				ReadTimeout:  500 * time.Millisecond,
				WriteTimeout: 500 * time.Millisecond,
			},
			Badger: BadgerCacheConfig{
				Path:       "/data/cache",
				InMemory:   false,
				SyncWrites: false,
				GCInterval: 10 * time.Minute,
			},
			Breaker: CacheBreakerConfig{
				MaxFailures: 5,
				OpenTimeout: 30 * time.Second,
				Interval:    time.Minute,
			},
		},
		Security: SecurityConfig{
			CORSOrigins:       []string{"*"},
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
		},
	}
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Defaults: Built-in defaults
//  2. Config File: Optional YAML config file (if exists)
//  3. Environment Variables: Override any setting
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: defaults
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: config file (optional)
	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: environment variables (highest priority)
	envProvider := env.Provider("", ".", envTransformFunc)
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns the first existing config file, or "" if none.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
// Env vars arrive as strings while the YAML file may already provide lists.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) == 0 {
			continue
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps environment variable names (lowercased) to koanf paths.
// Unmapped variables are ignored so unrelated environment does not leak in.
var envMappings = map[string]string{
	// Server
	"http_host":             "server.host",
	"http_port":             "server.port",
	"http_read_timeout":     "server.read_timeout",
	"http_write_timeout":    "server.write_timeout",
	"http_idle_timeout":     "server.idle_timeout",
	"http_shutdown_timeout": "server.shutdown_timeout",
	"environment":           "server.environment",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	// Catalog
	"catalog_source":            "catalog.source",
	"catalog_path":              "catalog.path",
	"catalog_duckdb_database":   "catalog.duckdb_database",
	"catalog_duckdb_table":      "catalog.duckdb_table",
	"catalog_title_column":      "catalog.columns.title",
	"catalog_genres_column":     "catalog.columns.genres",
	"catalog_runtime_column":    "catalog.columns.runtime",
	"catalog_directors_column":  "catalog.columns.directors",
	"catalog_overview_column":   "catalog.columns.overview",
	"catalog_poster_column":     "catalog.columns.poster_path",
	"catalog_poster_base_url":   "catalog.poster_base_url",
	"catalog_skip_invalid_rows": "catalog.skip_invalid_rows",
	"catalog_sample_size":       "catalog.sample_size",

	// Recommendation
	"recommend_default_n":        "recommend.default_n",
	"recommend_max_n":            "recommend.max_n",
	"recommend_strict_count":     "recommend.strict_count",
	"recommend_metric":           "recommend.metric",
	"recommend_workers":          "recommend.workers",
	"recommend_genre_mode":       "recommend.genre_mode",
	"recommend_genre_separators": "recommend.genre_separators",
	"recommend_request_timeout":  "recommend.request_timeout",

	// Cache
	"cache_backend":              "cache.backend",
	"cache_ttl":                  "cache.ttl",
	"cache_max_entries":          "cache.max_entries",
	"cache_warmup_limit":         "cache.warmup_limit",
	"redis_addr":                 "cache.redis.addr",
	"redis_url":                  "cache.redis.addr",
	"redis_password":             "cache.redis.password",
	"redis_db":                   "cache.redis.db",
	"redis_prefix":               "cache.redis.prefix",
	"redis_dial_timeout":         "cache.redis.dial_timeout",
	"redis_read_timeout":         "cache.redis.read_timeout",
	"redis_write_timeout":        "cache.redis.write_timeout",
	"badger_path":                "cache.badger.path",
	"badger_in_memory":           "cache.badger.in_memory",
	"badger_sync_writes":         "cache.badger.sync_writes",
	"badger_gc_interval":         "cache.badger.gc_interval",
	"cache_breaker_max_failures": "cache.breaker.max_failures",
	"cache_breaker_open_timeout": "cache.breaker.open_timeout",
	"cache_breaker_interval":     "cache.breaker.interval",

	// Security
	"cors_origins":        "security.cors_origins",
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",
}

// envTransformFunc transforms environment variable names to koanf config paths.
//
// Examples:
//   - HTTP_PORT -> server.port
//   - CATALOG_PATH -> catalog.path
//   - RECOMMEND_METRIC -> recommend.metric
//   - REDIS_URL -> cache.redis.addr
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
