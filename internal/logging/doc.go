// Plex Roulette - Random Picks from a Plex Media Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plexroulette

/*
Package logging provides centralized zerolog-based logging for Plex Roulette.

# Quick Start

	logging.Init(logging.Config{Level: "info", Format: "json"})

	logging.Info().Msg("Server starting")
	logging.Error().Err(err).Str("library", key).Msg("Library fetch failed")

	// Per-request fields (request_id, user_id)
	logging.Ctx(ctx).Info().Int("total", total).Msg("Random pick served")

# slog Bridge

The suture supervisor logs through log/slog. NewSlogLogger returns an
*slog.Logger that writes through the global zerolog logger so that
supervisor events share the same output and level.

Always terminate log chains with .Msg() or .Send().
*/
package logging
