// Marquee - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package supervisor provides process supervision for Marquee using suture v4.

# Overview

	RootSupervisor ("marquee")
	├── MaintenanceSupervisor ("maintenance-layer")
	│   ├── UptimeService
	│   ├── WarmupService (if cache.warmup_limit > 0)
	│   └── CacheGCService (badger backend only)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

A crash in a maintenance service restarts only that service. The HTTP
server keeps serving.

Supervisor events (start, failure, backoff, restart) are logged through
sutureslog. Pass logging.NewSlogLogger(logger) so they land in the same
zerolog stream as the rest of the process.

# Usage Example

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(logger), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout, logger))
	tree.AddMaintenanceService(services.NewUptimeService(time.Now(), 0))

	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    return err
	}

# Configuration

TreeConfig mirrors suture.Spec: FailureThreshold, FailureDecay,
FailureBackoff and ShutdownTimeout. Zero values take suture's defaults.
*/
package supervisor
