// Marquee - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func openTestBadger(t *testing.T, cfg BadgerConfig) *Badger {
	t.Helper()

	b, err := OpenBadger(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("OpenBadger() error = %v", err)
	}
	t.Cleanup(func() { _ = b.Close() })
	return b
}

func TestBadger_BasicOperations(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	b := openTestBadger(t, BadgerConfig{InMemory: true, TTL: time.Minute})

	if err := b.Set(ctx, "rec:A:6", []byte(`{"items":[]}`)); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	v, ok, err := b.Get(ctx, "rec:A:6")
	if err != nil || !ok {
		t.Fatalf("Get() = %q, %v, %v", v, ok, err)
	}
	if string(v) != `{"items":[]}` {
		t.Errorf("Get() = %q", v)
	}

	if _, ok, err := b.Get(ctx, "missing"); ok || err != nil {
		t.Errorf("Get(missing) = %v, %v, want miss", ok, err)
	}

	if err := b.Delete(ctx, "rec:A:6"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, ok, _ := b.Get(ctx, "rec:A:6"); ok {
		t.Error("Get() found a deleted key")
	}
}

func TestBadger_PersistsAcrossReopen(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dir := t.TempDir()

	first, err := OpenBadger(BadgerConfig{Path: dir}, zerolog.Nop())
	if err != nil {
		t.Fatalf("OpenBadger() error = %v", err)
	}
	if err := first.Set(ctx, "k", []byte("v")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	second := openTestBadger(t, BadgerConfig{Path: dir})
	v, ok, err := second.Get(ctx, "k")
	if err != nil || !ok || string(v) != "v" {
		t.Errorf("Get() after reopen = %q, %v, %v", v, ok, err)
	}
}

func TestBadger_TTL(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	b := openTestBadger(t, BadgerConfig{InMemory: true, TTL: time.Second})

	if err := b.Set(ctx, "k", []byte("v")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	// Badger expiry has one-second resolution.
	time.Sleep(2100 * time.Millisecond)
	if _, ok, _ := b.Get(ctx, "k"); ok {
		t.Error("entry still present after TTL")
	}
}

func TestBadger_Closed(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	b, err := OpenBadger(BadgerConfig{InMemory: true}, zerolog.Nop())
	if err != nil {
		t.Fatalf("OpenBadger() error = %v", err)
	}
	if err := b.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := b.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}

	if _, _, err := b.Get(ctx, "k"); !errors.Is(err, ErrClosed) {
		t.Errorf("Get() after Close error = %v, want ErrClosed", err)
	}
	if err := b.Set(ctx, "k", nil); !errors.Is(err, ErrClosed) {
		t.Errorf("Set() after Close error = %v, want ErrClosed", err)
	}
	if err := b.RunGC(0.5); !errors.Is(err, ErrClosed) {
		t.Errorf("RunGC() after Close error = %v, want ErrClosed", err)
	}
}

func TestBadger_RunGC(t *testing.T) {
	t.Parallel()

	b := openTestBadger(t, BadgerConfig{InMemory: true})
	if err := b.RunGC(0.5); err != nil {
		t.Errorf("RunGC() in memory error = %v", err)
	}

	disk := openTestBadger(t, BadgerConfig{Path: t.TempDir()})
	if err := disk.RunGC(0); err != nil {
		t.Errorf("RunGC() on disk error = %v", err)
	}
}

func TestOpenBadger_RequiresPath(t *testing.T) {
	t.Parallel()

	if _, err := OpenBadger(BadgerConfig{}, zerolog.Nop()); err == nil {
		t.Error("OpenBadger() without path succeeded")
	}
}
