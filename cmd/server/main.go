// Marquee - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package main is the entry point for the Marquee server.
//
// Marquee loads a movie catalog, encodes every title as a vector of one-hot
// genres plus a standardized runtime, and answers "movies like this one"
// queries with an exact nearest-neighbor scan.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: defaults, optional config.yaml, environment (Koanf v2)
//  2. Logging: zerolog, JSON or console
//  3. Catalog: CSV file or DuckDB table/file
//  4. Recommendation service: feature encoding, normalization, index
//  5. Response cache: none, memory, redis or badger
//  6. HTTP server: chi router with Swagger documentation
//  7. Supervisor tree: HTTP server plus maintenance services
//
// # Signal Handling
//
// SIGINT and SIGTERM cancel the root context. The HTTP server drains
// in-flight requests within HTTP_SHUTDOWN_TIMEOUT, then the cache is closed.
//
// # Example Usage
//
//	export CATALOG_PATH=/data/movies.csv
//	export CACHE_BACKEND=memory
//	./marquee
//
// With a DuckDB table and a persistent cache:
//
//	export CATALOG_SOURCE=duckdb
//	export CATALOG_DUCKDB_DATABASE=/data/movies.duckdb
//	export CATALOG_DUCKDB_TABLE=movies
//	export CACHE_BACKEND=badger
//	export BADGER_PATH=/data/cache
//	./marquee
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	_ "github.com/tomtom215/marquee/docs" // Import generated swagger docs
	"github.com/tomtom215/marquee/internal/api"
	"github.com/tomtom215/marquee/internal/config"
	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/metrics"
	"github.com/tomtom215/marquee/internal/recommend"
	"github.com/tomtom215/marquee/internal/supervisor"
	"github.com/tomtom215/marquee/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	startTime := time.Now()

	cfg, err := config.Load()
	if err != nil {
		// Config is not available yet, so use a default logger.
		fallback := logging.New(logging.Config{})
		fallback.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logger := logging.New(cfg.LoggerConfig())
	logger.Info().
		Str("version", version).
		Str("environment", cfg.Server.Environment).
		Str("catalog_source", cfg.Catalog.Source).
		Str("cache_backend", cfg.Cache.Backend).
		Msg("Starting Marquee")

	if err := run(cfg, logger, startTime); err != nil {
		logger.Fatal().Err(err).Msg("Marquee stopped with error")
	}
	logger.Info().Msg("Application stopped gracefully")
}

//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func run(cfg *config.Config, logger zerolog.Logger, startTime time.Time) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	metrics.SetAppInfo(version)

	cat, err := initCatalog(ctx, cfg, logger)
	if err != nil {
		return err
	}

	svc, err := recommend.New(cat, cfg.ServiceConfig(), logger)
	if err != nil {
		return err
	}
	stats := svc.Stats()
	metrics.SetModelGauges(stats.Dimensions, stats.DegenerateColumns)

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(logger), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  cfg.Server.ShutdownTimeout + 5*time.Second,
	})
	if err != nil {
		return err
	}

	caches := initCache(ctx, cfg, svc, tree, logger)
	defer func() {
		if err := caches.Close(); err != nil {
			logger.Error().Err(err).Msg("Error closing response cache")
		}
	}()

	logSecurityWarnings(cfg, logger)

	handler := api.NewHandler(svc, cfg, logger,
		api.WithRecommender(caches.Recommender, caches.Backend),
		api.WithVersion(version),
	)
	chiMW := api.NewChiMiddleware(api.ChiMiddlewareConfigFrom(cfg.Security))
	router := api.NewRouter(handler, chiMW, logger)

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	tree.AddMaintenanceService(services.NewUptimeService(startTime, 0))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout, logger))
	logger.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	logger.Info().Msg("Starting supervisor tree...")
	err = tree.Serve(ctx)

	if unstopped, _ := tree.UnstoppedServiceReport(); len(unstopped) > 0 {
		for _, u := range unstopped {
			logger.Warn().Str("service", u.Name).Msg("Service failed to stop within timeout")
		}
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func logSecurityWarnings(cfg *config.Config, logger zerolog.Logger) {
	if cfg.Security.RateLimitDisabled {
		logger.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}
	if cfg.ShouldWarnAboutCORS() {
		logger.Warn().
			Strs("cors_origins", cfg.Security.CORSOrigins).
			Msg("CORS allows any origin in production; set CORS_ORIGINS to specific origins")
	}
	if cfg.Cache.Backend == "badger" && cfg.Cache.Badger.InMemory && cfg.IsProduction() {
		logger.Warn().Msg("Badger cache runs in memory; cached responses are lost on restart")
	}
}
