// Marquee - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package logging builds the zerolog loggers used throughout Marquee.
//
// The root logger is created once in main from the logging section of the
// configuration and handed down explicitly. Components tag their logs with a
// component field:
//
//	root := logging.New(logging.Config{Level: "info", Format: "json"})
//	svcLogger := logging.WithComponent(root, "recommend")
//	svcLogger.Info().Int("items", n).Msg("model built")
//
// HTTP handlers log through Ctx, which attaches the request ID placed in the
// context by the request ID middleware:
//
//	logging.Ctx(r.Context(), h.logger).Warn().Err(err).Msg("recommendation failed")
//
// # slog Bridge
//
// The supervisor tree logs through sutureslog, which expects an *slog.Logger.
// NewSlogLogger adapts a zerolog logger so those events land in the same
// JSON stream.
//
// # Structured Logging
//
// Always terminate log chains with .Msg() or .Send():
//
//	logger.Info().Str("title", title).Msg("served")  // Correct
//	logger.Info().Str("title", title)                // WRONG - log not emitted
package logging
