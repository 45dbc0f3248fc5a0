// Plex Roulette - Random Picks from a Plex Media Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plexroulette

// Package database stores Plex Roulette's per-user data in DuckDB.
//
// # Overview
//
// Three tables live here: users, favorites and history. The catalog never
// touches them; the HTTP layer reads and writes them on behalf of the
// authenticated user. Favorite and history rows carry the MediaItem the
// client sent as an opaque JSON blob in the data column.
//
// # Files
//
//   - database.go: connection lifecycle (New, Close, Ping)
//   - database_schema.go: table and index creation
//   - database_connection.go: pool configuration and error classification
//   - database_utils.go: context helpers and checkpointing
//   - users.go: account rows
//   - favorites.go: per-user favorites, unique on (user_id, rating_key)
//   - history.go: append-only view history
//
// # Errors
//
// Lookups that find nothing return ErrNotFound. Inserting a user whose
// username or email is taken returns ErrDuplicate. Both are checked with
// errors.Is.
//
// # Usage
//
//	db, err := database.New(&cfg.Database)
//	if err != nil {
//	    return err
//	}
//	defer db.Close()
//
//	if err := db.AddFavorite(ctx, userID, "12345", data); err != nil {
//	    return err
//	}
package database
