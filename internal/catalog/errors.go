// Plex Roulette - Random Picks from a Plex Media Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plexroulette

package catalog

import "errors"

var (
	// ErrUpstream wraps every failure to fetch or decode data from Plex.
	ErrUpstream = errors.New("failed to fetch from plex")

	// ErrInvalidRequest is returned before any fetch when a request is
	// missing required input.
	ErrInvalidRequest = errors.New("invalid catalog request")
)
