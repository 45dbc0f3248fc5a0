// Plex Roulette - Random Picks from a Plex Media Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plexroulette

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/plexroulette/internal/catalog"
	"github.com/tomtom215/plexroulette/internal/logging"
	"github.com/tomtom215/plexroulette/internal/validation"
)

// Libraries lists the Plex library sections
//
// @Summary List libraries
// @Tags Catalog
// @Produce json
// @Success 200 {object} models.APIResponse{data=[]models.Library}
// @Failure 500 {object} models.APIResponse "PLEX_ERROR"
// @Router /libraries [get]
func (h *Handler) Libraries(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	libraries, err := h.catalog.Libraries(r.Context())
	if err != nil {
		respondCatalogError(w, r, err, "Failed to fetch libraries")
		return
	}
	respondSuccess(w, http.StatusOK, libraries, start)
}

// libraryKeyParam reads and checks the {key} URL parameter.
func libraryKeyParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	key := chi.URLParam(r, "key")
	if err := validation.GetValidator().Var(key, "required,librarykey"); err != nil {
		respondError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid library key", nil)
		return "", false
	}
	return key, true
}

// LibraryAll returns every item of a library, normalized
//
// @Summary Browse a library
// @Tags Catalog
// @Produce json
// @Param key path string true "Library section key"
// @Success 200 {object} models.APIResponse{data=[]models.MediaItem}
// @Failure 400 {object} models.APIResponse
// @Failure 500 {object} models.APIResponse "PLEX_ERROR"
// @Router /library/{key}/all [get]
func (h *Handler) LibraryAll(w http.ResponseWriter, r *http.Request) {
	key, ok := libraryKeyParam(w, r)
	if !ok {
		return
	}

	start := time.Now()
	items, err := h.catalog.ListAll(r.Context(), key)
	if err != nil {
		respondCatalogError(w, r, err, "Failed to fetch library items")
		return
	}
	respondSuccess(w, http.StatusOK, items, start)
}

// LibraryGenres returns the sorted distinct genres of a library
//
// @Summary List genres
// @Tags Catalog
// @Produce json
// @Param key path string true "Library section key"
// @Success 200 {object} models.APIResponse{data=[]string}
// @Failure 400 {object} models.APIResponse
// @Failure 500 {object} models.APIResponse "PLEX_ERROR"
// @Router /library/{key}/genres [get]
func (h *Handler) LibraryGenres(w http.ResponseWriter, r *http.Request) {
	key, ok := libraryKeyParam(w, r)
	if !ok {
		return
	}

	start := time.Now()
	genres, err := h.catalog.ListGenres(r.Context(), key)
	if err != nil {
		respondCatalogError(w, r, err, "Failed to fetch genres")
		return
	}
	respondSuccess(w, http.StatusOK, genres, start)
}

// Random picks random items from a filtered library
//
// total is the size of the filtered population, so a client can tell
// "only 2 matched" from "asked for more than exist".
//
// @Summary Random picks
// @Tags Catalog
// @Accept json
// @Produce json
// @Param body body RandomRequest true "Library, count and filters"
// @Success 200 {object} models.APIResponse{data=models.SelectionResult}
// @Failure 400 {object} models.APIResponse
// @Failure 500 {object} models.APIResponse "PLEX_ERROR"
// @Router /random [post]
func (h *Handler) Random(w http.ResponseWriter, r *http.Request) {
	var req RandomRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	start := time.Now()
	spec := req.Filters.FilterSpec()
	result, err := h.catalog.SelectRandom(r.Context(), req.LibraryKey, spec, req.SelectCount(), h.watchedExclusions(r, spec.ExcludeWatched)...)
	if err != nil {
		respondCatalogError(w, r, err, "Failed to fetch random items")
		return
	}
	respondSuccess(w, http.StatusOK, result, start)
}

// Roulette returns the items to cycle through and a winner drawn from among them
//
// @Summary Roulette spin
// @Tags Catalog
// @Accept json
// @Produce json
// @Param body body RouletteRequest true "Library and filters"
// @Success 200 {object} models.APIResponse{data=models.RouletteResult}
// @Failure 400 {object} models.APIResponse
// @Failure 500 {object} models.APIResponse "PLEX_ERROR"
// @Router /roulette [post]
func (h *Handler) Roulette(w http.ResponseWriter, r *http.Request) {
	var req RouletteRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	start := time.Now()
	spec := req.Filters.FilterSpec()
	result, err := h.catalog.Roulette(r.Context(), req.LibraryKey, spec, h.watchedExclusions(r, spec.ExcludeWatched)...)
	if err != nil {
		respondCatalogError(w, r, err, "Failed to spin the roulette")
		return
	}
	respondSuccess(w, http.StatusOK, result, start)
}

// watchedExclusions adds the caller's locally watched items to the
// exclusion set. Anonymous callers only get Plex's own viewCount filter.
// A watched store failure degrades to that filter rather than failing the pick.
func (h *Handler) watchedExclusions(r *http.Request, excludeWatched bool) []catalog.SelectOption {
	uid := userID(r)
	if !excludeWatched || uid == "" || h.watched == nil {
		return nil
	}

	keys, err := h.watched.RatingKeys(r.Context(), uid)
	if err != nil {
		logging.CtxErr(r.Context(), err).Msg("Failed to read watched list, using Plex view counts only")
		return nil
	}
	return []catalog.SelectOption{catalog.ExcludeRatingKeys(keys)}
}
