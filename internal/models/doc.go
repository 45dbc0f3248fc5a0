// Plex Roulette - Random Picks from a Plex Media Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plexroulette

/*
Package models defines the data structures shared between packages.

  - APIResponse, Metadata, APIError: the JSON envelope for every endpoint
  - MediaItem, Library, FilterSpec: the catalog pipeline's value types
  - SelectionResult, RouletteResult: catalog operation results
  - User, Favorite, HistoryEntry, WatchedEntry: per-user persisted records

MediaItem values are produced fresh per request and carry no identity beyond
the Plex rating key. Favorites and history store them as opaque JSON blobs.
*/
package models
