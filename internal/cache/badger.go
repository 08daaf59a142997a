// Marquee - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package cache

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog"
)

// DefaultGCDiscardRatio is the value log rewrite threshold used by RunGC.
const DefaultGCDiscardRatio = 0.5

// BadgerConfig configures the embedded BadgerDB backend.
type BadgerConfig struct {
	// Path is the database directory. Ignored when InMemory is set.
	Path string

	// InMemory keeps everything in RAM.
	InMemory bool

	// TTL applied to every entry through Badger's native expiry.
	TTL time.Duration

	// SyncWrites fsyncs every write.
	SyncWrites bool

	// GCInterval is how often the supervised GC service runs.
	GCInterval time.Duration
}

// Badger persists entries in an embedded BadgerDB so cached responses
// survive restarts.
type Badger struct {
	db     *badger.DB
	ttl    time.Duration
	closed atomic.Bool
	logger zerolog.Logger
}

var _ Store = (*Badger)(nil)

// OpenBadger opens or creates the database.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func OpenBadger(cfg BadgerConfig, logger zerolog.Logger) (*Badger, error) {
	if !cfg.InMemory && cfg.Path == "" {
		return nil, errors.New("badger path is required")
	}

	opts := badger.DefaultOptions(cfg.Path)
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	}
	opts.SyncWrites = cfg.SyncWrites
	opts.Logger = badgerLogger{logger: logger.With().Str("component", "badger").Logger()}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open BadgerDB: %w", err)
	}

	return &Badger{
		db:     db,
		ttl:    cfg.TTL,
		logger: logger.With().Str("component", "cache").Str("backend", "badger").Logger(),
	}, nil
}

// Get returns the value under key, or a miss. Expired entries are misses.
func (b *Badger) Get(_ context.Context, key string) ([]byte, bool, error) {
	if b.closed.Load() {
		return nil, false, ErrClosed
	}

	var out []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		out, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("badger get: %w", err)
	}
	return out, true, nil
}

// Set stores value with the configured TTL.
func (b *Badger) Set(_ context.Context, key string, value []byte) error {
	if b.closed.Load() {
		return ErrClosed
	}

	err := b.db.Update(func(txn *badger.Txn) error {
		e := badger.NewEntry([]byte(key), value)
		if b.ttl > 0 {
			e = e.WithTTL(b.ttl)
		}
		return txn.SetEntry(e)
	})
	if err != nil {
		return fmt.Errorf("badger set: %w", err)
	}
	return nil
}

// Delete removes key.
func (b *Badger) Delete(_ context.Context, key string) error {
	if b.closed.Load() {
		return ErrClosed
	}

	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("badger delete: %w", err)
	}
	return nil
}

// RunGC rewrites value log files until Badger reports nothing to reclaim.
func (b *Badger) RunGC(discardRatio float64) error {
	if b.closed.Load() {
		return ErrClosed
	}
	if discardRatio <= 0 || discardRatio >= 1 {
		discardRatio = DefaultGCDiscardRatio
	}

	rewrites := 0
	for {
		err := b.db.RunValueLogGC(discardRatio)
		switch {
		case err == nil:
			rewrites++
			continue
		case errors.Is(err, badger.ErrNoRewrite), errors.Is(err, badger.ErrGCInMemoryMode):
			if rewrites > 0 {
				b.logger.Debug().Int("rewrites", rewrites).Msg("value log GC complete")
			}
			return nil
		default:
			return fmt.Errorf("badger value log GC: %w", err)
		}
	}
}

// Name returns "badger".
func (b *Badger) Name() string { return string(BackendBadger) }

// Close flushes and closes the database. Closing twice is a no-op.
func (b *Badger) Close() error {
	if !b.closed.CompareAndSwap(false, true) {
		return nil
	}
	return b.db.Close()
}

// badgerLogger routes Badger's internal logging through zerolog. Info and
// debug chatter is demoted one level.
type badgerLogger struct {
	logger zerolog.Logger
}

func (l badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error().Msgf(format, args...)
}

func (l badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn().Msgf(format, args...)
}

func (l badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Debug().Msgf(format, args...)
}

func (l badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Trace().Msgf(format, args...)
}
