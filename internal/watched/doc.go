// Plex Roulette - Random Picks from a Plex Media Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plexroulette

// Package watched keeps each user's locally watched items in BadgerDB.
//
// Plex tracks play counts per Plex account, which is not the same thing as
// a Plex Roulette user. The watched store lets every user flag items
// themselves; the random pick and roulette exclude those items when the
// request asks to skip watched content.
//
// Keys are laid out as
//
//	watched:<userID>:<ratingKey> -> {"ratingKey": "...", "watchedAt": "..."}
//
// so one user's entries form a contiguous prefix.
//
//	store, err := watched.Open(cfg.Watched.Path)
//	if err != nil {
//	    return err
//	}
//	defer store.Close()
//
//	now, err := store.Toggle(ctx, userID, "12345")
package watched
