// Plex Roulette - Random Picks from a Plex Media Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plexroulette

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// ListFavorites returns the caller's favorites, newest first
//
// @Summary List favorites
// @Tags User
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.APIResponse{data=[]models.Favorite}
// @Failure 401 {object} models.APIResponse
// @Router /user/favorites [get]
func (h *Handler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	favorites, err := h.db.ListFavorites(r.Context(), userID(r))
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load favorites", err)
		return
	}
	respondSuccess(w, http.StatusOK, favorites, start)
}

// AddFavorite stores an item as a favorite, replacing any earlier copy
//
// @Summary Add favorite
// @Tags User
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body MediaRequest true "Item to favorite"
// @Success 200 {object} models.APIResponse
// @Failure 400 {object} models.APIResponse
// @Router /user/favorites [post]
func (h *Handler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	var req MediaRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.db.AddFavorite(r.Context(), userID(r), req.RatingKey, req.Data); err != nil {
		respondError(w, r, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to save favorite", err)
		return
	}
	respondSuccess(w, http.StatusOK, map[string]interface{}{"ratingKey": req.RatingKey, "favorite": true}, time.Time{})
}

// RemoveFavorite deletes a favorite. Removing an absent favorite succeeds.
//
// @Summary Remove favorite
// @Tags User
// @Produce json
// @Security BearerAuth
// @Param ratingKey path string true "Item rating key"
// @Success 200 {object} models.APIResponse
// @Router /user/favorites/{ratingKey} [delete]
func (h *Handler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	ratingKey := chi.URLParam(r, "ratingKey")
	if ratingKey == "" {
		respondError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "ratingKey is required", nil)
		return
	}

	if err := h.db.RemoveFavorite(r.Context(), userID(r), ratingKey); err != nil {
		respondError(w, r, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to remove favorite", err)
		return
	}
	respondSuccess(w, http.StatusOK, map[string]interface{}{"ratingKey": ratingKey, "favorite": false}, time.Time{})
}

// ListHistory returns the caller's most recent picks
//
// @Summary List history
// @Tags User
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum entries (default 50)"
// @Success 200 {object} models.APIResponse{data=[]models.HistoryEntry}
// @Router /user/history [get]
func (h *Handler) ListHistory(w http.ResponseWriter, r *http.Request) {
	defaultLimit := h.historyLimit()
	limit := getIntParam(r, "limit", defaultLimit)
	if limit <= 0 || limit > defaultLimit {
		limit = defaultLimit
	}

	start := time.Now()
	entries, err := h.db.ListHistory(r.Context(), userID(r), limit)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load history", err)
		return
	}
	respondSuccess(w, http.StatusOK, entries, start)
}

// AddHistory appends an item to the caller's history
//
// @Summary Add history entry
// @Tags User
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body MediaRequest true "Viewed item"
// @Success 201 {object} models.APIResponse{data=models.HistoryEntry}
// @Router /user/history [post]
func (h *Handler) AddHistory(w http.ResponseWriter, r *http.Request) {
	var req MediaRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	entry, err := h.db.AddHistory(r.Context(), userID(r), req.RatingKey, req.Data)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to save history", err)
		return
	}
	respondSuccess(w, http.StatusCreated, entry, time.Time{})
}

// ListWatched returns the items the caller marked as watched
//
// @Summary List watched items
// @Tags User
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.APIResponse{data=[]models.WatchedEntry}
// @Router /user/watched [get]
func (h *Handler) ListWatched(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	entries, err := h.watched.List(r.Context(), userID(r))
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, "WATCHED_STORE_ERROR", "Failed to load watched items", err)
		return
	}
	respondSuccess(w, http.StatusOK, entries, start)
}

// SetWatched marks, unmarks or toggles an item
//
// Without "watched" in the body the current state is flipped.
//
// @Summary Set watched state
// @Tags User
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body WatchedRequest true "Item and desired state"
// @Success 200 {object} models.APIResponse{data=WatchedState}
// @Router /user/watched [post]
func (h *Handler) SetWatched(w http.ResponseWriter, r *http.Request) {
	var req WatchedRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	ctx := r.Context()
	uid := userID(r)
	state := WatchedState{RatingKey: req.RatingKey}

	var err error
	switch {
	case req.Watched == nil:
		state.Watched, err = h.watched.Toggle(ctx, uid, req.RatingKey)
	case *req.Watched:
		_, err = h.watched.Mark(ctx, uid, req.RatingKey)
		state.Watched = true
	default:
		err = h.watched.Unmark(ctx, uid, req.RatingKey)
	}
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, "WATCHED_STORE_ERROR", "Failed to update watched state", err)
		return
	}
	respondSuccess(w, http.StatusOK, state, time.Time{})
}
