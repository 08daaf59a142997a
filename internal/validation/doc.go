// Marquee - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package validation provides struct validation using go-playground/validator v10.
//
// A single validator instance is shared across the process because the
// library caches struct metadata per instance. It validates both decoded
// API request bodies and the loaded configuration.
//
// # Field Names
//
// Errors name fields by their json tag, falling back to the koanf tag and
// then the Go field name. A bad request body therefore reports "title", and
// a bad configuration reports "default_n".
//
// # Custom Tags
//
//   - metric: a distance metric known to the similarity index
//     (euclidean, sqeuclidean, manhattan, cosine, plus the l1/l2 aliases)
//   - title: a non-blank string without control characters
//
// # Usage
//
//	type RecommendationRequest struct {
//	    Title string `json:"title" validate:"required,title,max=512"`
//	    N     int    `json:"n" validate:"min=0,max=1000"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
//	    return
//	}
package validation
