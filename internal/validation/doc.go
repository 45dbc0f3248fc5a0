// Plex Roulette - Random Picks from a Plex Media Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plexroulette

// Package validation provides request body validation using go-playground/validator v10.
//
// A single validator instance is shared process-wide. Field names in error
// messages come from json tags, and two custom tags are registered:
//
//   - librarykey: a Plex library section key
//   - username: letters, digits, '.', '_' and '-'
//
// Usage:
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, verr)
//	    return
//	}
package validation
