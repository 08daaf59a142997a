// Marquee - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/tomtom215/marquee/internal/config"
)

func TestNewChiMiddleware_DefaultConfig(t *testing.T) {
	t.Parallel()

	m := NewChiMiddleware(nil)
	if m.config == nil {
		t.Fatal("config is nil")
	}
	if len(m.config.CORSAllowedOrigins) != 0 {
		t.Errorf("CORSAllowedOrigins = %v, want []", m.config.CORSAllowedOrigins)
	}
	if m.config.RateLimitRequests != 100 || m.config.RateLimitWindow != time.Minute {
		t.Errorf("rate limit = %d/%v, want 100/1m", m.config.RateLimitRequests, m.config.RateLimitWindow)
	}
}

func TestChiMiddlewareConfigFrom(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		sec          config.SecurityConfig
		wantDisabled bool
	}{
		{
			name:         "enabled",
			sec:          config.SecurityConfig{CORSOrigins: []string{"https://example.com"}, RateLimitReqs: 10, RateLimitWindow: time.Second},
			wantDisabled: false,
		},
		{
			name:         "explicitly disabled",
			sec:          config.SecurityConfig{RateLimitReqs: 10, RateLimitWindow: time.Second, RateLimitDisabled: true},
			wantDisabled: true,
		},
		{
			name:         "zero budget disables",
			sec:          config.SecurityConfig{RateLimitWindow: time.Second},
			wantDisabled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := ChiMiddlewareConfigFrom(tt.sec)
			if c.RateLimitDisabled != tt.wantDisabled {
				t.Errorf("RateLimitDisabled = %v, want %v", c.RateLimitDisabled, tt.wantDisabled)
			}
			if len(c.CORSAllowedOrigins) != len(tt.sec.CORSOrigins) {
				t.Errorf("CORSAllowedOrigins = %v, want %v", c.CORSAllowedOrigins, tt.sec.CORSOrigins)
			}
		})
	}
}

func TestChiMiddleware_CORS_Preflight(t *testing.T) {
	t.Parallel()

	cfg := DefaultChiMiddlewareConfig()
	cfg.CORSAllowedOrigins = []string{"https://example.com"}
	m := NewChiMiddleware(cfg)

	handler := m.CORS()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name       string
		origin     string
		wantHeader string
	}{
		{name: "allowed origin", origin: "https://example.com", wantHeader: "https://example.com"},
		{name: "disallowed origin", origin: "https://evil.example", wantHeader: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodOptions, "/api/v1/genres", nil)
			req.Header.Set("Origin", tt.origin)
			req.Header.Set("Access-Control-Request-Method", http.MethodGet)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tt.wantHeader {
				t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, tt.wantHeader)
			}
		})
	}
}

func TestChiMiddleware_RateLimitDisabled(t *testing.T) {
	t.Parallel()

	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitDisabled = true
	cfg.RateLimitRequests = 1
	m := NewChiMiddleware(cfg)

	handler := m.RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 5; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: code = %d, want 200", i, rec.Code)
		}
	}
}
