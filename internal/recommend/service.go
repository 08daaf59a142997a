// Marquee - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package recommend

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tomtom215/marquee/internal/catalog"
	"github.com/tomtom215/marquee/internal/recommend/features"
	"github.com/tomtom215/marquee/internal/recommend/index"
)

// IndexBuilder constructs a neighbor index over normalized catalog rows.
type IndexBuilder func(rows [][]float64, metric index.DistanceFunc, workers int) (index.NeighborIndex, error)

// BruteForceBuilder builds the exact brute-force index.
func BruteForceBuilder(rows [][]float64, metric index.DistanceFunc, workers int) (index.NeighborIndex, error) {
	return index.NewBruteForce(rows, index.WithMetric(metric), index.WithWorkers(workers))
}

// Option configures a Service.
type Option func(*serviceOptions)

type serviceOptions struct {
	buildIndex IndexBuilder
}

// WithIndexBuilder replaces the brute-force index.
func WithIndexBuilder(b IndexBuilder) Option {
	return func(o *serviceOptions) {
		if b != nil {
			o.buildIndex = b
		}
	}
}

// Service answers "items similar to this title" queries. Every field is
// fixed by New, so a Service is safe for concurrent use without locks.
type Service struct {
	config *Config
	logger zerolog.Logger

	catalog  *catalog.Catalog
	encoding *features.Encoding
	scaler   *features.Scaler
	vectors  *features.Matrix
	index    index.NeighborIndex

	buildDuration time.Duration

	requestCount  atomic.Int64
	cacheHits     atomic.Int64
	notFoundCount atomic.Int64
	errorCount    atomic.Int64
}

// New fits the encoder, normalizer and index over cat.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func New(cat *catalog.Catalog, cfg *Config, logger zerolog.Logger, opts ...Option) (*Service, error) {
	start := time.Now()

	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if cat == nil || cat.Len() == 0 {
		return nil, ErrEmptyCatalog
	}

	o := serviceOptions{buildIndex: BruteForceBuilder}
	for _, opt := range opts {
		opt(&o)
	}

	s := &Service{
		config:  cfg.Clone(),
		logger:  logger.With().Str("component", "recommend").Logger(),
		catalog: cat,
	}

	items := cat.Items()

	var err error
	s.encoding, err = features.NewEncoder(s.fields()...).Fit(items)
	if err != nil {
		return nil, fmt.Errorf("fit encoder: %w", err)
	}

	raw, err := s.encoding.Transform(items)
	if err != nil {
		return nil, fmt.Errorf("encode catalog: %w", err)
	}

	s.scaler, err = features.FitScaler(raw)
	if err != nil {
		return nil, fmt.Errorf("fit scaler: %w", err)
	}
	if derr := s.scaler.DegenerateErr(); derr != nil {
		s.logger.Debug().
			Err(derr).
			Int("columns", len(s.scaler.Degenerate())).
			Msg("zero-variance columns normalized to 0")
	}

	s.vectors, err = s.scaler.Transform(raw)
	if err != nil {
		return nil, fmt.Errorf("normalize catalog: %w", err)
	}

	metric, err := index.MetricByName(cfg.Metric)
	if err != nil {
		return nil, err
	}
	s.index, err = o.buildIndex(s.vectors.RowViews(), metric, cfg.Workers)
	if err != nil {
		return nil, fmt.Errorf("build index: %w", err)
	}

	s.buildDuration = time.Since(start)
	s.logger.Info().
		Int("items", cat.Len()).
		Int("dimensions", s.encoding.Dim()).
		Str("metric", s.metricName()).
		Str("fingerprint", cat.Fingerprint()).
		Dur("duration", s.buildDuration).
		Msg("recommendation model built")

	return s, nil
}

func (s *Service) fields() []features.Field {
	genre := features.GenreField("")
	if s.config.GenreMode == GenreModeMulti {
		genre = features.GenreField(s.config.GenreSeparators)
	}
	return []features.Field{genre, features.RuntimeField()}
}

func (s *Service) metricName() string {
	if s.config.Metric == "" {
		return index.MetricEuclidean
	}
	return s.config.Metric
}

// Catalog returns the catalog the service was built from.
func (s *Service) Catalog() *catalog.Catalog {
	return s.catalog
}

// Config returns a copy of the service configuration.
func (s *Service) Config() *Config {
	return s.config.Clone()
}

// Recommend returns up to n items most similar to the first item titled
// title, nearest first. The query item itself is never included.
func (s *Service) Recommend(ctx context.Context, title string, n int) ([]catalog.Item, error) {
	scored, _, _, err := s.neighbors(ctx, title, n)
	if err != nil {
		return nil, err
	}

	items := make([]catalog.Item, len(scored))
	for i := range scored {
		items[i] = scored[i].Item
	}
	return items, nil
}

// RecommendScored serves a request with distances and metadata. A zero N
// selects the configured default and N above MaxN is capped.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (s *Service) RecommendScored(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	req = s.prepareRequest(req)

	if s.config.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.RequestTimeout)
		defer cancel()
	}

	logger := s.logger.With().
		Str("request_id", req.RequestID).
		Str("title", req.Title).
		Int("n", req.N).
		Logger()

	scored, query, clamped, err := s.neighbors(ctx, req.Title, req.N)
	if err != nil {
		logger.Debug().Err(err).Msg("recommendation failed")
		return nil, err
	}

	resp := &Response{
		Query: query,
		Items: scored,
		Metadata: ResponseMetadata{
			RequestID:   req.RequestID,
			Requested:   req.N,
			Returned:    len(scored),
			Clamped:     clamped || req.capped,
			Metric:      s.metricName(),
			CatalogSize: s.catalog.Len(),
			Fingerprint: s.catalog.Fingerprint(),
			LatencyMS:   time.Since(start).Milliseconds(),
			Timestamp:   time.Now().UTC(),
		},
	}

	logger.Debug().
		Int("returned", len(scored)).
		Bool("clamped", clamped).
		Int64("latency_ms", resp.Metadata.LatencyMS).
		Msg("recommendation complete")

	return resp, nil
}

// prepareRequest applies defaults and generates a request ID if needed.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (s *Service) prepareRequest(req Request) Request {
	if req.RequestID == "" {
		req.RequestID = uuid.NewString()
	}
	if req.N == 0 {
		req.N = s.config.DefaultN
	}
	if s.config.MaxN > 0 && req.N > s.config.MaxN {
		req.N = s.config.MaxN
		req.capped = true
	}
	return req
}

// clamped reports whether a prepared request returns fewer items than asked.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (s *Service) clamped(req Request) bool {
	return req.capped || req.N > s.catalog.Len()-1
}

// recordCacheHit counts a request answered from the response cache.
func (s *Service) recordCacheHit() {
	s.requestCount.Add(1)
	s.cacheHits.Add(1)
}

// neighbors resolves title and returns its n nearest other items.
func (s *Service) neighbors(ctx context.Context, title string, n int) ([]ScoredItem, catalog.Item, bool, error) {
	s.requestCount.Add(1)

	q, ok := s.catalog.IndexOf(title)
	if !ok {
		s.notFoundCount.Add(1)
		return nil, catalog.Item{}, false, fmt.Errorf("%w: %q", ErrNotFound, title)
	}
	query, _ := s.catalog.At(q)

	if n < 0 {
		s.errorCount.Add(1)
		return nil, query, false, fmt.Errorf("%w: n=%d", ErrOutOfRange, n)
	}

	clamped := false
	if limit := s.catalog.Len() - 1; n > limit {
		if s.config.StrictCount {
			s.errorCount.Add(1)
			return nil, query, false, fmt.Errorf("%w: n=%d with %d other items", ErrOutOfRange, n, limit)
		}
		n = limit
		clamped = true
	}
	if n == 0 {
		return []ScoredItem{}, query, clamped, nil
	}

	// One extra neighbor covers the query item, which is its own nearest.
	found, err := s.index.Query(ctx, s.vectors.Row(q), n+1)
	if err != nil {
		if !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
			s.errorCount.Add(1)
		}
		return nil, query, clamped, fmt.Errorf("query index: %w", err)
	}

	out := make([]ScoredItem, 0, n)
	for _, nb := range found {
		if nb.Index == q {
			continue
		}
		if len(out) == n {
			break
		}
		it, ok := s.catalog.At(nb.Index)
		if !ok {
			return nil, query, clamped, fmt.Errorf("index returned row %d outside catalog of %d", nb.Index, s.catalog.Len())
		}
		out = append(out, ScoredItem{
			Item:     it,
			Distance: nb.Distance,
			Rank:     len(out) + 1,
		})
	}
	return out, query, clamped, nil
}

// Vector returns the normalized feature vector of the item at position i.
func (s *Service) Vector(i int) ([]float64, bool) {
	if i < 0 || i >= s.vectors.Rows() {
		return nil, false
	}
	return s.vectors.RowCopy(i), true
}

// Stats returns model dimensions and request counters.
func (s *Service) Stats() Stats {
	return Stats{
		CatalogSize:         s.catalog.Len(),
		Dimensions:          s.encoding.Dim(),
		DegenerateColumns:   len(s.scaler.Degenerate()),
		Metric:              s.metricName(),
		Workers:             s.config.Workers,
		Fingerprint:         s.catalog.Fingerprint(),
		Columns:             s.encoding.Columns(),
		RequestCount:        s.requestCount.Load(),
		CacheHitCount:       s.cacheHits.Load(),
		NotFoundCount:       s.notFoundCount.Load(),
		ErrorCount:          s.errorCount.Load(),
		BuildDurationMillis: s.buildDuration.Milliseconds(),
	}
}
