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
	"github.com/google/uuid"

	"github.com/tomtom215/plexroulette/internal/models"
)

// AddHistory appends a view record. History is never updated in place.
func (db *DB) AddHistory(ctx context.Context, userID, ratingKey string, data json.RawMessage) (entry *models.HistoryEntry, err error) {
	defer observe("insert", "history", time.Now(), &err)
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	entry = &models.HistoryEntry{
		ID:        uuid.NewString(),
		RatingKey: ratingKey,
		Data:      data,
		ViewedAt:  db.now().UTC(),
	}
	_, err = db.conn.ExecContext(ctx,
		`INSERT INTO history (id, user_id, rating_key, data, viewed_at) VALUES (?, ?, ?, ?, ?)`,
		entry.ID, userID, ratingKey, string(data), entry.ViewedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert history: %w", err)
	}
	return entry, nil
}

// DefaultHistoryLimit is used when ListHistory is called with limit <= 0.
const DefaultHistoryLimit = 50

// ListHistory returns up to limit entries for a user, newest first.
func (db *DB) ListHistory(ctx context.Context, userID string, limit int) (entries []models.HistoryEntry, err error) {
	defer observe("select", "history", time.Now(), &err)
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	rows, err := db.conn.QueryContext(ctx, `
		SELECT id, rating_key, data, viewed_at
		FROM history
		WHERE user_id = ?
		ORDER BY viewed_at DESC
		LIMIT ?
	`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer closeWithLog(rows, "history rows")

	entries = []models.HistoryEntry{}
	for rows.Next() {
		var (
			entry models.HistoryEntry
			data  string
		)
		if err = rows.Scan(&entry.ID, &entry.RatingKey, &data, &entry.ViewedAt); err != nil {
			return nil, fmt.Errorf("failed to scan history: %w", err)
		}
		entry.Data = json.RawMessage(data)
		entries = append(entries, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating history: %w", err)
	}
	return entries, nil
}
