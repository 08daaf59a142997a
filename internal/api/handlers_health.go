// Marquee - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/marquee/internal/models"
)

// HealthLive handles liveness probe requests (Kubernetes-style)
// Returns 200 OK if the process is alive, regardless of dependencies
//
// @Summary Kubernetes liveness probe
// @Description Returns 200 OK while the process is serving requests
// @Tags Health
// @Produce json
// @Success 200 {object} models.APIResponse "Service is alive"
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	respondSuccess(w, map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	}, models.Metadata{})
}

// HealthReady handles readiness probe requests (Kubernetes-style)
// Returns 200 OK once a fitted model is serving.
//
// @Summary Kubernetes readiness probe
// @Description Returns 200 OK with catalog size, feature dimensions and fingerprint once the model is fitted. Returns 503 otherwise.
// @Tags Health
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthStatus} "Service is ready"
// @Failure 503 {object} models.APIResponse{data=models.HealthStatus} "Service is not ready"
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Cache-Control", "no-store")

	status := models.HealthStatus{
		Status:       "not_ready",
		Version:      h.version,
		CacheBackend: h.cacheName,
		Uptime:       time.Since(h.startTime).Seconds(),
	}

	statusCode := http.StatusServiceUnavailable
	if h.service != nil && h.catalog != nil && h.catalog.Len() > 0 {
		stats := h.service.Stats()
		status.Status = "ready"
		status.CatalogSize = stats.CatalogSize
		status.Dimensions = stats.Dimensions
		status.Fingerprint = stats.Fingerprint
		statusCode = http.StatusOK
	}

	respondJSON(w, statusCode, &models.APIResponse{
		Status: models.StatusSuccess,
		Data:   status,
		Metadata: models.Metadata{
			Timestamp: time.Now().UTC(),
		},
	})
}
