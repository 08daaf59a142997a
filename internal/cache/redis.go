// Marquee - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// DefaultRedisPrefix namespaces keys written by this service.
const DefaultRedisPrefix = "marquee:"

// RedisConfig configures the Redis backend.
type RedisConfig struct {
	// Addr is host:port or a redis:// / rediss:// URL.
	Addr     string
	Password string
	DB       int
	Prefix   string
	TTL      time.Duration

	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	Breaker BreakerConfig
}

// Redis stores entries in a shared Redis server behind a circuit breaker.
type Redis struct {
	client  *redis.Client
	prefix  string
	ttl     time.Duration
	breaker *breaker
}

var _ Store = (*Redis)(nil)

// redisOptions builds client options from cfg.
func redisOptions(cfg RedisConfig) (*redis.Options, error) {
	var opts *redis.Options
	if strings.HasPrefix(cfg.Addr, "redis://") || strings.HasPrefix(cfg.Addr, "rediss://") {
		parsed, err := redis.ParseURL(cfg.Addr)
		if err != nil {
			return nil, fmt.Errorf("invalid Redis URL: %w", err)
		}
		opts = parsed
	} else {
		if cfg.Addr == "" {
			return nil, errors.New("redis address is required")
		}
		opts = &redis.Options{Addr: cfg.Addr}
	}

	if cfg.Password != "" {
		opts.Password = cfg.Password
	}
	if cfg.DB != 0 {
		opts.DB = cfg.DB
	}
	if cfg.DialTimeout > 0 {
		opts.DialTimeout = cfg.DialTimeout
	}
	if cfg.ReadTimeout > 0 {
		opts.ReadTimeout = cfg.ReadTimeout
	}
	if cfg.WriteTimeout > 0 {
		opts.WriteTimeout = cfg.WriteTimeout
	}
	return opts, nil
}

// NewRedis connects to Redis and verifies the connection with PING.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewRedis(ctx context.Context, cfg RedisConfig, logger zerolog.Logger) (*Redis, error) {
	r, err := newRedis(cfg, logger)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := r.client.Ping(pingCtx).Err(); err != nil {
		r.client.Close() //nolint:errcheck // connection failed anyway
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return r, nil
}

// newRedis builds the store without contacting the server.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func newRedis(cfg RedisConfig, logger zerolog.Logger) (*Redis, error) {
	opts, err := redisOptions(cfg)
	if err != nil {
		return nil, err
	}

	prefix := cfg.Prefix
	if prefix == "" {
		prefix = DefaultRedisPrefix
	}

	return &Redis{
		client:  redis.NewClient(opts),
		prefix:  prefix,
		ttl:     cfg.TTL,
		breaker: newBreaker("cache-redis", cfg.Breaker, logger),
	}, nil
}

// Get returns the value under key, or a miss.
func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool, error) {
	v, err := r.breaker.execute(func() ([]byte, error) {
		b, err := r.client.Get(ctx, r.prefix+key).Bytes()
		if errors.Is(err, redis.Nil) {
			return nil, errMiss
		}
		return b, err
	})
	if errors.Is(err, errMiss) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}
	return v, true, nil
}

// Set stores value with the configured TTL.
func (r *Redis) Set(ctx context.Context, key string, value []byte) error {
	_, err := r.breaker.execute(func() ([]byte, error) {
		return nil, r.client.Set(ctx, r.prefix+key, value, r.ttl).Err()
	})
	if err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Delete removes key.
func (r *Redis) Delete(ctx context.Context, key string) error {
	_, err := r.breaker.execute(func() ([]byte, error) {
		return nil, r.client.Del(ctx, r.prefix+key).Err()
	})
	if err != nil {
		return fmt.Errorf("redis delete: %w", err)
	}
	return nil
}

// BreakerState reports the circuit breaker state.
func (r *Redis) BreakerState() string {
	return r.breaker.State()
}

// Name returns "redis".
func (r *Redis) Name() string { return string(BackendRedis) }

// Close closes the client connection pool.
func (r *Redis) Close() error {
	return r.client.Close()
}
