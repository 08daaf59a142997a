// Marquee - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/marquee/internal/catalog"
	"github.com/tomtom215/marquee/internal/models"
)

// Genres lists the distinct genre values of the catalog.
//
// @Summary List genres
// @Description Returns the distinct raw genre values in sorted order
// @Tags Catalog
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.GenreList}
// @Router /genres [get]
func (h *Handler) Genres(w http.ResponseWriter, _ *http.Request) {
	genres := h.catalog.Genres()
	respondSuccess(w, models.GenreList{Genres: genres, Count: len(genres)}, models.Metadata{})
}

// Movies lists catalog items, optionally restricted to one genre value.
//
// @Summary List movies
// @Description Returns catalog items in catalog order, filtered by exact genre value when given
// @Tags Catalog
// @Produce json
// @Param genre query string false "Exact genre value"
// @Param limit query int false "Page size (1-1000)" default(100)
// @Param offset query int false "Items to skip" default(0)
// @Success 200 {object} models.APIResponse{data=models.MovieList}
// @Failure 400 {object} models.APIResponse "Invalid parameters"
// @Router /movies [get]
func (h *Handler) Movies(w http.ResponseWriter, r *http.Request) {
	limit, ok := getIntParam(r, "limit", defaultMoviesLimit)
	if !ok {
		invalidParam(w, "limit")
		return
	}
	offset, ok := getIntParam(r, "offset", 0)
	if !ok {
		invalidParam(w, "offset")
		return
	}

	req := MoviesRequest{
		Genre:  r.URL.Query().Get("genre"),
		Limit:  limit,
		Offset: offset,
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		writeAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	var items []catalog.Item
	if req.Genre != "" {
		items = h.catalog.ByGenre(req.Genre)
	} else {
		items = h.catalog.Items()
	}

	total := len(items)
	page := paginate(items, req.Offset, req.Limit)
	respondSuccess(w, models.MovieList{Items: page, Count: len(page), Total: total}, models.Metadata{})
}

func paginate(items []catalog.Item, offset, limit int) []catalog.Item {
	if offset >= len(items) {
		return []catalog.Item{}
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

// Sample returns a random selection of movies for a landing page.
//
// @Summary Random sample
// @Description Returns up to n distinct random items. The same seed yields the same sample.
// @Tags Catalog
// @Produce json
// @Param n query int false "Sample size (1-100)"
// @Param seed query int false "Random seed; current time when omitted"
// @Success 200 {object} models.APIResponse{data=models.MovieList}
// @Failure 400 {object} models.APIResponse "Invalid parameters"
// @Router /movies/sample [get]
func (h *Handler) Sample(w http.ResponseWriter, r *http.Request) {
	size := h.config.Catalog.SampleSize
	if size <= 0 {
		size = defaultSampleSize
	}

	n, ok := getIntParam(r, "n", size)
	if !ok {
		invalidParam(w, "n")
		return
	}
	seeded := r.URL.Query().Has("seed")
	seed, ok := getInt64Param(r, "seed", time.Now().UnixNano())
	if !ok {
		invalidParam(w, "seed")
		return
	}

	req := SampleRequest{N: n, Seed: seed}
	if apiErr := validateRequest(&req); apiErr != nil {
		writeAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	items := h.catalog.Sample(req.N, req.Seed)
	if !seeded {
		w.Header().Set("Cache-Control", "no-store")
	}
	respondSuccess(w, models.MovieList{Items: items, Count: len(items), Total: h.catalog.Len()}, models.Metadata{})
}

// Movie returns the first catalog item with the given title.
//
// @Summary Movie details
// @Description Returns the first item with the exact title, including the resolved poster URL
// @Tags Catalog
// @Produce json
// @Param title path string true "Exact movie title (URL-encoded)"
// @Success 200 {object} models.APIResponse{data=catalog.Item}
// @Failure 404 {object} models.APIResponse "Title not found"
// @Router /movies/{title} [get]
func (h *Handler) Movie(w http.ResponseWriter, r *http.Request) {
	title, err := titleParam(r)
	if err != nil {
		h.respondError(w, r, http.StatusBadRequest, codeValidation, "Invalid title encoding", err)
		return
	}

	item, ok := h.catalog.Lookup(title)
	if !ok {
		h.respondError(w, r, http.StatusNotFound, codeTitleNotFound,
			fmt.Sprintf("No movie titled %q", title), nil)
		return
	}
	respondSuccess(w, item, models.Metadata{})
}

// Titles returns autocomplete suggestions for a title prefix.
//
// @Summary Title autocomplete
// @Description Case-insensitive prefix match over catalog titles, sorted alphabetically
// @Tags Catalog
// @Produce json
// @Param prefix query string false "Title prefix"
// @Param limit query int false "Maximum suggestions (1-100)" default(10)
// @Success 200 {object} models.APIResponse{data=models.TitleSuggestions}
// @Failure 400 {object} models.APIResponse "Invalid parameters"
// @Router /titles [get]
func (h *Handler) Titles(w http.ResponseWriter, r *http.Request) {
	limit, ok := getIntParam(r, "limit", catalog.DefaultSuggestionLimit)
	if !ok {
		invalidParam(w, "limit")
		return
	}

	req := TitlesRequest{Prefix: r.URL.Query().Get("prefix"), Limit: limit}
	if apiErr := validateRequest(&req); apiErr != nil {
		writeAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	matches := h.catalog.Titles().Suggest(req.Prefix, req.Limit)
	if matches == nil {
		matches = []catalog.TitleMatch{}
	}
	respondSuccess(w, models.TitleSuggestions{Prefix: req.Prefix, Matches: matches}, models.Metadata{})
}

var errEmptyTitle = errors.New("empty title")

// titleParam decodes the {title} path segment. chi routes on the escaped
// path when one exists, so encoded slashes stay inside the segment.
func titleParam(r *http.Request) (string, error) {
	title := chi.URLParam(r, "title")
	if r.URL.RawPath != "" {
		var err error
		if title, err = url.PathUnescape(title); err != nil {
			return "", err
		}
	}
	if title == "" {
		return "", errEmptyTitle
	}
	return title, nil
}
