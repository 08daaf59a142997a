// Marquee - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package services provides suture.Service wrappers for Marquee components.

Each wrapper implements suture.Service and fmt.Stringer:

	type Service interface {
	    Serve(ctx context.Context) error
	}

# Available Services

HTTP Server (HTTPServerService):
  - Wraps *http.Server and translates ListenAndServe into Serve
  - Graceful shutdown within a configurable timeout when the context ends

Cache Warmup (WarmupService):
  - Precomputes the default recommendation list for the first
    cache.warmup_limit distinct catalog titles
  - One-shot: returns suture.ErrDoNotRestart when done
  - Per-title failures are counted in cache_warmup_items_total{result="error"}

Cache GC (CacheGCService):
  - Calls RunGC on the Badger backend every cache.badger.gc_interval
  - Failures are logged and retried on the next tick

Uptime (UptimeService):
  - Keeps app_uptime_seconds current

# Error Handling

Returning nil or an error from Serve lets the supervisor restart the
service with backoff. Returning suture.ErrDoNotRestart removes it from the
tree. All services return ctx.Err() when their context is canceled.
*/
package services
