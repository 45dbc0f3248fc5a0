// Plex Roulette - Random Picks from a Plex Media Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plexroulette

// Package middleware provides HTTP middleware shared by the API router:
// request ID propagation into the logging context and Prometheus instrumentation.
package middleware
