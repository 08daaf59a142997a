// Marquee - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestGenerateRequestID(t *testing.T) {
	t.Parallel()

	id1 := GenerateRequestID()
	id2 := GenerateRequestID()

	if len(id1) != 36 {
		t.Errorf("expected 36-character request ID, got %d", len(id1))
	}
	if id1 == id2 {
		t.Error("expected unique request IDs")
	}
}

func TestRequestIDContext(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	if id := RequestIDFromContext(ctx); id != "" {
		t.Errorf("expected empty request ID, got %s", id)
	}

	ctx = ContextWithRequestID(ctx, "req-123")
	if id := RequestIDFromContext(ctx); id != "req-123" {
		t.Errorf("RequestIDFromContext() = %q, want req-123", id)
	}
}

func TestCtx(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		setup      func(ctx context.Context, stored *bytes.Buffer) context.Context
		wantStored bool
		wantID     bool
	}{
		{
			name:  "fallback logger without request ID",
			setup: func(ctx context.Context, _ *bytes.Buffer) context.Context { return ctx },
		},
		{
			name: "fallback logger with request ID",
			setup: func(ctx context.Context, _ *bytes.Buffer) context.Context {
				return ContextWithRequestID(ctx, "req-abc")
			},
			wantID: true,
		},
		{
			name: "stored logger wins",
			setup: func(ctx context.Context, stored *bytes.Buffer) context.Context {
				ctx = ContextWithLogger(ctx, NewTestLogger(stored))
				return ContextWithRequestID(ctx, "req-abc")
			},
			wantStored: true,
			wantID:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var fallback, stored bytes.Buffer
			ctx := tt.setup(context.Background(), &stored)

			Ctx(ctx, NewTestLogger(&fallback)).Info().Msg("hello")

			out := fallback.String()
			if tt.wantStored {
				out = stored.String()
				if fallback.Len() != 0 {
					t.Errorf("fallback logger used: %s", fallback.String())
				}
			}
			if !strings.Contains(out, "hello") {
				t.Fatalf("message missing: %q", out)
			}
			if got := strings.Contains(out, `"request_id":"req-abc"`); got != tt.wantID {
				t.Errorf("request_id present = %v, want %v: %s", got, tt.wantID, out)
			}
		})
	}
}
