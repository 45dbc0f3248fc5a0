// Plex Roulette - Random Picks from a Plex Media Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plexroulette

package database

import (
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/plexroulette/internal/models"
)

// AddFavorite saves an item for a user. Saving the same rating key again
// replaces the stored data and moves it to the top of the list.
func (db *DB) AddFavorite(ctx context.Context, userID, ratingKey string, data json.RawMessage) (err error) {
	defer observe("upsert", "favorites", time.Now(), &err)
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	query := `
		INSERT INTO favorites (user_id, rating_key, data, added_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (user_id, rating_key) DO UPDATE SET
			data = excluded.data,
			added_at = excluded.added_at
	`
	if _, err = db.conn.ExecContext(ctx, query, userID, ratingKey, string(data), db.now().UTC()); err != nil {
		return fmt.Errorf("failed to upsert favorite: %w", err)
	}
	return nil
}

// ListFavorites returns a user's favorites, most recently added first.
func (db *DB) ListFavorites(ctx context.Context, userID string) (favorites []models.Favorite, err error) {
	defer observe("select", "favorites", time.Now(), &err)
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	rows, err := db.conn.QueryContext(ctx, `
		SELECT rating_key, data, added_at
		FROM favorites
		WHERE user_id = ?
		ORDER BY added_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query favorites: %w", err)
	}
	defer closeWithLog(rows, "favorites rows")

	favorites = []models.Favorite{}
	for rows.Next() {
		var (
			fav  models.Favorite
			data string
		)
		if err = rows.Scan(&fav.RatingKey, &data, &fav.AddedAt); err != nil {
			return nil, fmt.Errorf("failed to scan favorite: %w", err)
		}
		fav.Data = json.RawMessage(data)
		favorites = append(favorites, fav)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating favorites: %w", err)
	}
	return favorites, nil
}

// RemoveFavorite deletes a favorite. Removing one that does not exist is not
// an error.
func (db *DB) RemoveFavorite(ctx context.Context, userID, ratingKey string) (err error) {
	defer observe("delete", "favorites", time.Now(), &err)
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	if _, err = db.conn.ExecContext(ctx,
		`DELETE FROM favorites WHERE user_id = ? AND rating_key = ?`, userID, ratingKey,
	); err != nil {
		return fmt.Errorf("failed to delete favorite: %w", err)
	}
	return nil
}
