// Marquee - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

//go:build integration

// Package testinfra provides test infrastructure for integration testing with containers.
//
// This package uses testcontainers-go to run the backing services the
// response cache talks to, so integration tests exercise real servers rather
// than mocks.
//
// # Redis Container
//
//	func TestRedisCache(t *testing.T) {
//	    testinfra.SkipIfNoDocker(t)
//	    ctx := context.Background()
//	    redis, err := testinfra.NewRedisContainer(ctx)
//	    if err != nil {
//	        t.Fatal(err)
//	    }
//	    defer testinfra.CleanupContainer(t, ctx, redis)
//
//	    store, err := cache.NewRedis(ctx, cache.RedisConfig{Addr: redis.Addr}, logger)
//	    // ...
//	}
//
// # CI Considerations
//
// These tests require Docker and network access and only build with the
// integration tag:
//
//	go test -tags integration ./...
//
// Tests are skipped gracefully if Docker is unavailable.
package testinfra
