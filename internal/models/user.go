// Plex Roulette - Random Picks from a Plex Media Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plexroulette

package models

import (
	"time"

	"github.com/goccy/go-json"
)

// User is a registered account. PasswordHash never leaves the server.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	DisplayName  string    `json:"displayName"`
	CreatedAt    time.Time `json:"createdAt"`
}

// AuthResult is returned by a successful login.
type AuthResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      *User     `json:"user"`
}

// Favorite is a saved item, unique per (user, rating key). Data holds the
// serialized MediaItem exactly as the client sent it.
type Favorite struct {
	RatingKey string          `json:"ratingKey"`
	Data      json.RawMessage `json:"data"`
	AddedAt   time.Time       `json:"addedAt"`
}

// HistoryEntry records that a user viewed an item. Entries are append-only.
type HistoryEntry struct {
	ID        string          `json:"id"`
	RatingKey string          `json:"ratingKey"`
	Data      json.RawMessage `json:"data"`
	ViewedAt  time.Time       `json:"viewedAt"`
}

// WatchedEntry marks an item as watched by a user.
type WatchedEntry struct {
	RatingKey string    `json:"ratingKey"`
	WatchedAt time.Time `json:"watchedAt"`
}
