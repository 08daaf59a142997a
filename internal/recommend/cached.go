// Marquee - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package recommend

import (
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

// Recommender serves scored recommendation requests.
type Recommender interface {
	RecommendScored(ctx context.Context, req Request) (*Response, error)
}

var (
	_ Recommender = (*Service)(nil)
	_ Recommender = (*CachedService)(nil)
)

// ResponseStore is a byte-oriented cache for encoded responses.
type ResponseStore interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Name() string
}

// CachedService memoizes scored responses. Store failures are logged and the
// request is computed directly.
type CachedService struct {
	next   *Service
	store  ResponseStore
	logger zerolog.Logger
}

// NewCached wraps s with a response cache.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewCached(s *Service, store ResponseStore, logger zerolog.Logger) *CachedService {
	return &CachedService{
		next:   s,
		store:  store,
		logger: logger.With().Str("component", "recommend_cache").Str("backend", store.Name()).Logger(),
	}
}

// Service returns the wrapped service.
func (c *CachedService) Service() *Service {
	return c.next
}

// ModelKey identifies the fitted model: the catalog contents plus every
// setting that changes distances.
func (s *Service) ModelKey() string {
	genre := s.config.GenreMode
	if genre == GenreModeMulti {
		genre += ":" + s.config.GenreSeparators
	}
	return fmt.Sprintf("%s:%s:%s", s.catalog.Fingerprint(), s.metricName(), genre)
}

// CacheKey builds the cache key for a prepared request.
func (s *Service) CacheKey(title string, n int) string {
	return fmt.Sprintf("rec:%s:%d:%s", s.ModelKey(), n, title)
}

// RecommendScored returns a cached response when one exists.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (c *CachedService) RecommendScored(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	req = c.next.prepareRequest(req)
	key := c.next.CacheKey(req.Title, req.N)

	if resp := c.lookup(ctx, key); resp != nil {
		c.next.recordCacheHit()
		resp.Metadata.RequestID = req.RequestID
		resp.Metadata.Clamped = c.next.clamped(req)
		resp.Metadata.CacheHit = true
		resp.Metadata.LatencyMS = time.Since(start).Milliseconds()
		resp.Metadata.Timestamp = time.Now().UTC()
		return resp, nil
	}

	resp, err := c.next.RecommendScored(ctx, req)
	if err != nil {
		return nil, err
	}

	c.save(ctx, key, resp)
	return resp, nil
}

func (c *CachedService) save(ctx context.Context, key string, resp *Response) {
	data, err := json.Marshal(resp)
	if err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("encode response for cache")
		return
	}
	if err := c.store.Set(ctx, key, data); err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
}

func (c *CachedService) lookup(ctx context.Context, key string) *Response {
	data, ok, err := c.store.Get(ctx, key)
	if err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("cache read failed")
		return nil
	}
	if !ok {
		return nil
	}

	var resp Response
	if err := json.Unmarshal(data, &resp); err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("discarding undecodable cache entry")
		return nil
	}
	return &resp
}
