// Marquee - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/genres", "200"))

	RecordAPIRequest("GET", "/api/v1/genres", "200", 5*time.Millisecond)

	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/genres", "200"))
	if after-before != 1 {
		t.Errorf("api_requests_total delta = %v, want 1", after-before)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)

	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != before+1 {
		t.Errorf("after inc = %v, want %v", got, before+1)
	}
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("after dec = %v, want %v", got, before)
	}
}

func TestRecordRecommendation(t *testing.T) {
	tests := []struct {
		name     string
		outcome  string
		returned int
	}{
		{"success", OutcomeOK, 6},
		{"unknown title", OutcomeNotFound, 0},
		{"bad count", OutcomeOutOfRange, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := RecommendationsTotal.WithLabelValues(tt.outcome)
			before := testutil.ToFloat64(c)
			RecordRecommendation(tt.outcome, time.Millisecond, tt.returned)
			if got := testutil.ToFloat64(c) - before; got != 1 {
				t.Errorf("recommendations_total{outcome=%q} delta = %v, want 1", tt.outcome, got)
			}
		})
	}
}

func TestRecordCatalogLoad(t *testing.T) {
	skipped := CatalogRowsSkipped.WithLabelValues("csv")
	before := testutil.ToFloat64(skipped)

	RecordCatalogLoad("csv", 42, 3, time.Second)

	if got := testutil.ToFloat64(CatalogItems); got != 42 {
		t.Errorf("catalog_items = %v, want 42", got)
	}
	if got := testutil.ToFloat64(skipped) - before; got != 3 {
		t.Errorf("catalog_rows_skipped_total delta = %v, want 3", got)
	}
	if got := testutil.ToFloat64(CatalogLoadDuration.WithLabelValues("csv")); got != 1 {
		t.Errorf("catalog_load_duration_seconds = %v, want 1", got)
	}
}

func TestRecordCacheLookup(t *testing.T) {
	const backend = "test-lookup"

	RecordCacheLookup(backend, true, nil, time.Microsecond)
	RecordCacheLookup(backend, false, nil, time.Microsecond)
	RecordCacheLookup(backend, false, nil, time.Microsecond)
	RecordCacheLookup(backend, false, errors.New("timeout"), time.Microsecond)

	if got := testutil.ToFloat64(CacheHits.WithLabelValues(backend)); got != 1 {
		t.Errorf("hits = %v, want 1", got)
	}
	if got := testutil.ToFloat64(CacheMisses.WithLabelValues(backend)); got != 2 {
		t.Errorf("misses = %v, want 2", got)
	}
	if got := testutil.ToFloat64(CacheErrors.WithLabelValues(backend, "get")); got != 1 {
		t.Errorf("errors = %v, want 1", got)
	}
}

func TestRecordCacheWrite(t *testing.T) {
	const backend = "test-write"

	RecordCacheWrite(backend, nil, time.Microsecond)
	RecordCacheWrite(backend, errors.New("disk full"), time.Microsecond)

	if got := testutil.ToFloat64(CacheErrors.WithLabelValues(backend, "set")); got != 1 {
		t.Errorf("set errors = %v, want 1", got)
	}
}

func TestSetModelGauges(t *testing.T) {
	SetModelGauges(17, 2)

	if got := testutil.ToFloat64(ModelDimensions); got != 17 {
		t.Errorf("model_feature_dimensions = %v, want 17", got)
	}
	if got := testutil.ToFloat64(ModelDegenerateDimensions); got != 2 {
		t.Errorf("model_degenerate_dimensions = %v, want 2", got)
	}
}

func TestStartUptimeTracker(t *testing.T) {
	done := make(chan struct{})
	StartUptimeTracker(time.Now().Add(-time.Minute), 5*time.Millisecond, done)
	defer close(done)

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if testutil.ToFloat64(AppUptime) >= 60 {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Error("app_uptime_seconds never updated")
}
