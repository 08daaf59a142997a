// Marquee - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package recommend answers "more like this" queries over a movie catalog.
//
// # Model
//
// New fits a one-hot encoding of each item's genre and formatted runtime,
// standardizes every dimension to zero mean and unit variance, and builds an
// exact nearest-neighbor index over the result. Row i of every stage is
// catalog item i.
//
// # Queries
//
// Recommend resolves a title to the first catalog item carrying it, asks the
// index for n+1 neighbors of that item's vector, drops the query item by
// position and returns the rest in ascending distance order. Requests for
// more items than the catalog can supply are clamped to N-1 unless
// Config.StrictCount is set, in which case ErrOutOfRange is returned.
//
// # Usage
//
//	cat, _ := catalog.New(items)
//	svc, err := recommend.New(cat, recommend.DefaultConfig(), logger)
//	if err != nil {
//	    return err
//	}
//	similar, err := svc.Recommend(ctx, "Heat", 6)
//
// # Caching
//
// CachedService memoizes scored responses in any ResponseStore. Keys include
// the catalog fingerprint and the distance settings, so a rebuilt model never
// reads stale entries.
//
// # Thread Safety
//
// A Service is immutable after New apart from its request counters, which
// are atomic. Any number of goroutines may query it concurrently.
package recommend
