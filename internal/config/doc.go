// Marquee - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package config loads and validates Marquee's configuration.

Configuration is layered with Koanf v2: built-in defaults, then an optional
YAML file, then environment variables. Later layers win.

# Config File

The file is looked up in this order, first match wins:

  - $CONFIG_PATH
  - config.yaml, config.yml
  - /etc/marquee/config.yaml, /etc/marquee/config.yml

Example:

	server:
	  port: 8501
	catalog:
	  source: duckdb
	  path: /data/movies.parquet
	recommend:
	  default_n: 6
	  metric: euclidean
	  genre_mode: multi
	cache:
	  backend: redis
	  redis:
	    addr: redis://cache:6379/0

# Environment Variables

Every setting has an environment name (see envMappings). The common ones:

	HTTP_PORT              server.port (default 8501)
	LOG_LEVEL, LOG_FORMAT  logging.level, logging.format
	CATALOG_SOURCE         csv or duckdb
	CATALOG_PATH           catalog file
	RECOMMEND_DEFAULT_N    results per request when none is given
	RECOMMEND_METRIC       euclidean, sqeuclidean, manhattan, cosine
	RECOMMEND_GENRE_MODE   compound or multi
	CACHE_BACKEND          none, memory, redis, badger
	REDIS_ADDR             host:port or redis:// URL
	CORS_ORIGINS           comma-separated origins

# Validation

Load validates struct tags through the shared validator, then checks
cross-field rules: the catalog source must have a path or table, max_n may
not undercut default_n, and the cache backend must have its connection
settings.

The Config struct is immutable after Load() returns and safe for concurrent reads.
*/
package config
