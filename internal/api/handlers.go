// Marquee - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/marquee/internal/catalog"
	"github.com/tomtom215/marquee/internal/config"
	"github.com/tomtom215/marquee/internal/recommend"
)

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: response envelope and parameter helpers
//   - handlers_health.go: liveness, readiness and stats
//   - handlers_movies.go: catalog browsing and title autocomplete
//   - handlers_recommend.go: recommendation endpoints
type Handler struct {
	service     *recommend.Service
	recommender recommend.Recommender
	catalog     *catalog.Catalog
	config      *config.Config
	logger      zerolog.Logger
	startTime   time.Time
	version     string
	cacheName   string
}

// HandlerOption customizes a Handler.
type HandlerOption func(*Handler)

// WithRecommender serves recommendations through rec instead of the bare
// service, typically a recommend.CachedService.
func WithRecommender(rec recommend.Recommender, cacheName string) HandlerOption {
	return func(h *Handler) {
		if rec != nil {
			h.recommender = rec
			h.cacheName = cacheName
		}
	}
}

// WithVersion sets the version reported by the health endpoints.
func WithVersion(version string) HandlerOption {
	return func(h *Handler) {
		h.version = version
	}
}

// NewHandler creates the API handler for a fitted recommendation service.
//
// Example:
//
//	handler := api.NewHandler(svc, cfg, logger,
//	    api.WithRecommender(recommend.NewCached(svc, store, logger), store.Name()))
//	router := api.NewRouter(handler, api.NewChiMiddleware(api.ChiMiddlewareConfigFrom(cfg.Security)), logger)
//	http.ListenAndServe(cfg.Addr(), router.SetupChi())
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewHandler(svc *recommend.Service, cfg *config.Config, logger zerolog.Logger, opts ...HandlerOption) *Handler {
	if cfg == nil {
		cfg = &config.Config{}
	}
	h := &Handler{
		service:     svc,
		recommender: svc,
		catalog:     svc.Catalog(),
		config:      cfg,
		logger:      logger.With().Str("component", "api").Logger(),
		startTime:   time.Now(),
		version:     "dev",
		cacheName:   "none",
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}
