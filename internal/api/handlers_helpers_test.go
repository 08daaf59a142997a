// Marquee - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/marquee/internal/metrics"
	"github.com/tomtom215/marquee/internal/recommend"
)

func TestSanitizeLogValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "Heat", want: "Heat"},
		{in: "line\nforged", want: `line\x0aforged`},
		{in: "tab\there", want: `tab\x09here`},
		{in: "del\x7f", want: `del\x7f`},
		{in: "Amélie", want: "Amélie"},
	}

	for _, tt := range tests {
		if got := sanitizeLogValue(tt.in); got != tt.want {
			t.Errorf("sanitizeLogValue(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGenerateETag_Stable(t *testing.T) {
	t.Parallel()

	a := generateETag([]byte(`{"status":"success"}`))
	b := generateETag([]byte(`{"status":"success"}`))
	c := generateETag([]byte(`{"status":"error"}`))

	if a != b {
		t.Errorf("same payload gave %q and %q", a, b)
	}
	if a == c {
		t.Error("different payloads share an ETag")
	}
	if a[0] != '"' || a[len(a)-1] != '"' {
		t.Errorf("ETag %s is not quoted", a)
	}
}

func TestGetIntParam(t *testing.T) {
	t.Parallel()

	tests := []struct {
		query     string
		wantValue int
		wantOK    bool
	}{
		{query: "", wantValue: 7, wantOK: true},
		{query: "n=3", wantValue: 3, wantOK: true},
		{query: "n=%203%20", wantValue: 3, wantOK: true},
		{query: "n=-2", wantValue: -2, wantOK: true},
		{query: "n=3.5", wantValue: 7, wantOK: false},
		{query: "n=abc", wantValue: 7, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			t.Parallel()

			r := httptest.NewRequest(http.MethodGet, "/?"+tt.query, nil)
			got, ok := getIntParam(r, "n", 7)
			if got != tt.wantValue || ok != tt.wantOK {
				t.Errorf("getIntParam() = (%d, %v), want (%d, %v)", got, ok, tt.wantValue, tt.wantOK)
			}
		})
	}
}

func TestRespondRecommendError(t *testing.T) {
	t.Parallel()

	h := &Handler{logger: zerolog.Nop()}

	tests := []struct {
		name     string
		err      error
		wantCode int
		wantErr  string
	}{
		{name: "not found", err: fmt.Errorf("%w: %q", recommend.ErrNotFound, "x"), wantCode: http.StatusNotFound, wantErr: codeTitleNotFound},
		{name: "out of range", err: fmt.Errorf("%w: n=9", recommend.ErrOutOfRange), wantCode: http.StatusBadRequest, wantErr: codeOutOfRange},
		{name: "deadline", err: fmt.Errorf("query index: %w", context.DeadlineExceeded), wantCode: http.StatusGatewayTimeout, wantErr: codeTimeout},
		{name: "other", err: errors.New("boom"), wantCode: http.StatusInternalServerError, wantErr: codeRecommendation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			h.respondRecommendError(rec, httptest.NewRequest(http.MethodGet, "/", nil), "x", tt.err)
			if rec.Code != tt.wantCode {
				t.Errorf("code = %d, want %d", rec.Code, tt.wantCode)
			}
			var env testEnvelope
			if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if env.Error == nil || env.Error.Code != tt.wantErr {
				t.Errorf("error = %+v, want %s", env.Error, tt.wantErr)
			}
		})
	}
}

func TestRecommendOutcome(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want string
	}{
		{err: recommend.ErrNotFound, want: metrics.OutcomeNotFound},
		{err: fmt.Errorf("wrapped: %w", recommend.ErrOutOfRange), want: metrics.OutcomeOutOfRange},
		{err: errors.New("boom"), want: metrics.OutcomeError},
	}

	for _, tt := range tests {
		if got := recommendOutcome(tt.err); got != tt.want {
			t.Errorf("recommendOutcome(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}
