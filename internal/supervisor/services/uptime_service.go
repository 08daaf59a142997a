// Marquee - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package services

import (
	"context"
	"time"

	"github.com/tomtom215/marquee/internal/metrics"
)

// UptimeService keeps the app_uptime_seconds gauge current.
type UptimeService struct {
	start    time.Time
	interval time.Duration
}

// NewUptimeService reports uptime since start every interval (default 15s).
func NewUptimeService(start time.Time, interval time.Duration) *UptimeService {
	if interval <= 0 {
		interval = 15 * time.Second
	}
	return &UptimeService{start: start, interval: interval}
}

// Serve implements suture.Service.
func (u *UptimeService) Serve(ctx context.Context) error {
	metrics.AppUptime.Set(time.Since(u.start).Seconds())
	metrics.StartUptimeTracker(u.start, u.interval, ctx.Done())
	<-ctx.Done()
	return ctx.Err()
}

func (u *UptimeService) String() string {
	return "uptime"
}
