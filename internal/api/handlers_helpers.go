// Marquee - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/models"
	"github.com/tomtom215/marquee/internal/recommend"
	"github.com/tomtom215/marquee/internal/validation"
)

// API error codes.
const (
	codeValidation     = validation.ErrorCode
	codeTitleNotFound  = "TITLE_NOT_FOUND"
	codeOutOfRange     = "OUT_OF_RANGE"
	codeRecommendation = "RECOMMENDATION_ERROR"
	codeTimeout        = "TIMEOUT"
)

// unmatchedRoute labels requests without a matched route pattern.
const unmatchedRoute = "unmatched"

// sanitizeLogValue replaces control characters so request input cannot forge
// log lines.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			fmt.Fprintf(&result, "\\x%02x", r)
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// respondJSON sends a JSON response with proper headers
func respondJSON(w http.ResponseWriter, status int, response *models.APIResponse) {
	data, err := json.Marshal(response)
	if err != nil {
		http.Error(w, `{"status":"error","data":null}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if w.Header().Get("Cache-Control") == "" {
		w.Header().Set("Cache-Control", "public, max-age=60")
	}
	w.Header().Set("Vary", "Accept-Encoding")
	w.Header().Set("ETag", generateETag(data))

	w.WriteHeader(status)
	_, _ = w.Write(data) //nolint:errcheck // client disconnects are not actionable
}

// generateETag creates an ETag from the FNV-1a hash of data.
func generateETag(data []byte) string {
	h := fnv.New32a()
	_, _ = h.Write(data)
	return `"` + strconv.FormatUint(uint64(h.Sum32()), 16) + `"`
}

// respondSuccess wraps data in a success envelope.
func respondSuccess(w http.ResponseWriter, data interface{}, meta models.Metadata) {
	if meta.Timestamp.IsZero() {
		meta.Timestamp = time.Now().UTC()
	}
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   models.StatusSuccess,
		Data:     data,
		Metadata: meta,
	})
}

// writeError sends an error envelope.
func writeError(w http.ResponseWriter, status int, code, message string) {
	writeAPIError(w, status, &models.APIError{Code: code, Message: message})
}

func writeAPIError(w http.ResponseWriter, status int, apiErr *models.APIError) {
	w.Header().Set("Cache-Control", "no-store")
	respondJSON(w, status, &models.APIResponse{
		Status: models.StatusError,
		Data:   nil,
		Metadata: models.Metadata{
			Timestamp: time.Now().UTC(),
		},
		Error: apiErr,
	})
}

// respondError logs err with the request logger and sends an error envelope.
// Server errors log at error level, client errors at debug.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, status int, code, message string, err error) {
	if err != nil {
		logger := logging.Ctx(r.Context(), h.logger)
		event := logger.Debug()
		if status >= http.StatusInternalServerError {
			event = logger.Error()
		}
		event.Str("code", code).
			Str("path", sanitizeLogValue(r.URL.Path)).
			Str("error", sanitizeLogValue(err.Error())).
			Msg("API error")
	}
	writeError(w, status, code, message)
}

// respondRecommendError maps recommendation errors onto HTTP statuses.
func (h *Handler) respondRecommendError(w http.ResponseWriter, r *http.Request, title string, err error) {
	switch {
	case errors.Is(err, recommend.ErrNotFound):
		h.respondError(w, r, http.StatusNotFound, codeTitleNotFound,
			fmt.Sprintf("No movie titled %q", title), err)
	case errors.Is(err, recommend.ErrOutOfRange):
		h.respondError(w, r, http.StatusBadRequest, codeOutOfRange,
			"Requested more recommendations than the catalog can provide", err)
	case errors.Is(err, context.DeadlineExceeded):
		h.respondError(w, r, http.StatusGatewayTimeout, codeTimeout,
			"Recommendation timed out", err)
	default:
		h.respondError(w, r, http.StatusInternalServerError, codeRecommendation,
			"Failed to generate recommendations", err)
	}
}

// validateRequest validates a struct using go-playground/validator.
// Returns nil if validation passes, or a models.APIError if validation fails.
func validateRequest(v interface{}) *models.APIError {
	validationErr := validation.ValidateStruct(v)
	if validationErr == nil {
		return nil
	}

	apiErr := validationErr.ToAPIError()
	return &models.APIError{
		Code:    apiErr.Code,
		Message: apiErr.Message,
		Details: apiErr.Details,
	}
}

// getIntParam extracts an integer query parameter. ok is false when the
// parameter is present but not an integer.
func getIntParam(r *http.Request, key string, defaultValue int) (value int, ok bool) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return defaultValue, true
	}

	intValue, err := strconv.Atoi(raw)
	if err != nil {
		return defaultValue, false
	}
	return intValue, true
}

// getInt64Param is getIntParam for 64-bit values.
func getInt64Param(r *http.Request, key string, defaultValue int64) (value int64, ok bool) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return defaultValue, true
	}

	intValue, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return defaultValue, false
	}
	return intValue, true
}

// invalidParam answers a malformed query parameter.
func invalidParam(w http.ResponseWriter, key string) {
	writeAPIError(w, http.StatusBadRequest, &models.APIError{
		Code:    codeValidation,
		Message: fmt.Sprintf("%s must be an integer", key),
		Details: map[string]interface{}{"field": key},
	})
}
