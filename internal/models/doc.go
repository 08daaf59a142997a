// Marquee - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package models defines the HTTP response payloads of the Marquee API.

Every endpoint answers with an APIResponse envelope:

	respondJSON(w, http.StatusOK, &models.APIResponse{
	    Status: models.StatusSuccess,
	    Data:   models.GenreList{Genres: genres, Count: len(genres)},
	    Metadata: models.Metadata{
	        Timestamp: time.Now(),
	    },
	})

Catalog items and recommendation results are defined by the catalog and
recommend packages and embedded directly as Data.
*/
package models
