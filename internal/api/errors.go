// Plex Roulette - Random Picks from a Plex Media Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plexroulette

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/plexroulette/internal/catalog"
)

// ErrAccountsDisabled is reported by register and login in auth mode "none".
var ErrAccountsDisabled = errors.New("accounts are disabled in auth mode none")

// respondCatalogError maps catalog errors onto the API envelope. Upstream
// failures become 500 PLEX_ERROR with the given message; nothing is retried.
func respondCatalogError(w http.ResponseWriter, r *http.Request, err error, message string) {
	switch {
	case errors.Is(err, catalog.ErrInvalidRequest):
		respondError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
	case errors.Is(err, catalog.ErrUpstream):
		respondError(w, r, http.StatusInternalServerError, "PLEX_ERROR", message, err)
	default:
		respondError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", message, err)
	}
}
