// Marquee - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/marquee/internal/metrics"
	"github.com/tomtom215/marquee/internal/middleware"
	"github.com/tomtom215/marquee/internal/models"
	"github.com/tomtom215/marquee/internal/recommend"
)

// Similar handles GET /api/v1/movies/{title}/similar
// Returns the movies nearest to the given title.
//
// @Summary Similar movies
// @Description Returns the n movies nearest to the first item with the given title, excluding that item
// @Tags Recommendations
// @Produce json
// @Param title path string true "Exact movie title (URL-encoded)"
// @Param n query int false "Number of recommendations; configured default when omitted"
// @Success 200 {object} models.APIResponse{data=recommend.Response}
// @Failure 400 {object} models.APIResponse "Invalid parameters or n out of range"
// @Failure 404 {object} models.APIResponse "Title not found"
// @Router /movies/{title}/similar [get]
func (h *Handler) Similar(w http.ResponseWriter, r *http.Request) {
	title, err := titleParam(r)
	if err != nil {
		metrics.RecordRecommendation(metrics.OutcomeInvalid, 0, 0)
		h.respondError(w, r, http.StatusBadRequest, codeValidation, "Invalid title encoding", err)
		return
	}

	n, ok := getIntParam(r, "n", 0)
	if !ok {
		metrics.RecordRecommendation(metrics.OutcomeInvalid, 0, 0)
		invalidParam(w, "n")
		return
	}

	h.serveRecommendation(w, r, recommend.Request{Title: title, N: n})
}

// Recommend handles POST /api/v1/recommendations
//
// @Summary Recommend movies
// @Description Returns the n movies nearest to the first item with the given title, excluding that item
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param request body recommend.Request true "Recommendation request"
// @Success 200 {object} models.APIResponse{data=recommend.Response}
// @Failure 400 {object} models.APIResponse "Invalid body or n out of range"
// @Failure 404 {object} models.APIResponse "Title not found"
// @Router /recommendations [post]
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	var req recommend.Request
	body := http.MaxBytesReader(w, r.Body, maxRequestBody)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		metrics.RecordRecommendation(metrics.OutcomeInvalid, 0, 0)
		message := "Request body must be a JSON object"
		if errors.Is(err, io.EOF) {
			message = "Request body is empty"
		}
		h.respondError(w, r, http.StatusBadRequest, codeValidation, message, err)
		return
	}

	h.serveRecommendation(w, r, req)
}

//nolint:gocritic // hugeParam: req passed by value for immutability
func (h *Handler) serveRecommendation(w http.ResponseWriter, r *http.Request, req recommend.Request) {
	if req.RequestID == "" {
		req.RequestID = middleware.GetRequestID(r.Context())
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		metrics.RecordRecommendation(metrics.OutcomeInvalid, 0, 0)
		writeAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	start := time.Now()
	resp, err := h.recommender.RecommendScored(r.Context(), req)
	elapsed := time.Since(start)
	if err != nil {
		metrics.RecordRecommendation(recommendOutcome(err), elapsed, 0)
		h.respondRecommendError(w, r, req.Title, err)
		return
	}

	metrics.RecordRecommendation(metrics.OutcomeOK, elapsed, len(resp.Items))
	respondSuccess(w, resp, models.Metadata{
		QueryTimeMS: elapsed.Milliseconds(),
		Cached:      resp.Metadata.CacheHit,
	})
}

func recommendOutcome(err error) string {
	switch {
	case errors.Is(err, recommend.ErrNotFound):
		return metrics.OutcomeNotFound
	case errors.Is(err, recommend.ErrOutOfRange):
		return metrics.OutcomeOutOfRange
	default:
		return metrics.OutcomeError
	}
}

// Stats handles GET /api/v1/stats
//
// @Summary Model statistics
// @Description Returns the fitted model dimensions, catalog fingerprint and request counters
// @Tags Recommendations
// @Produce json
// @Success 200 {object} models.APIResponse{data=recommend.Stats}
// @Router /stats [get]
func (h *Handler) Stats(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	respondSuccess(w, h.service.Stats(), models.Metadata{})
}
