// Plex Roulette - Random Picks from a Plex Media Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plexroulette

/*
Package plex is a small read-only client for the Plex Media Server XML API.

It covers the three calls the catalog needs:

  - GET /                               server identity (machineIdentifier)
  - GET /library/sections               library sections
  - GET /library/sections/{key}/all     every item in one section

Every request carries the X-Plex-Token header and query parameter and asks
for text/xml. Requests are paced by an outbound rate limiter and are never
retried; a failed request is returned to the caller as-is.

CircuitBreakerClient wraps Client with sony/gobreaker so that a Plex server
that keeps failing is rejected fast instead of tying up request goroutines
until the HTTP timeout.
*/
package plex
