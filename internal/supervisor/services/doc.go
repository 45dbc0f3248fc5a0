// Plex Roulette - Random Picks from a Plex Media Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plexroulette

// Package services adapts long-running components to suture.Service so the
// supervisor tree can start, restart and stop them.
//
// Each wrapper takes a narrow interface rather than the concrete type
// (HTTPServer for *http.Server, GarbageCollector for *watched.Store) and
// implements String for readable supervisor logs.
package services
