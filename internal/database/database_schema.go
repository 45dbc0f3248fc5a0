// Plex Roulette - Random Picks from a Plex Media Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plexroulette

package database

import (
	"context"
	"fmt"
	"time"
)

// schemaContext returns a context with timeout for schema operations
func schemaContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 60*time.Second)
}

// createTables creates the tables if they do not exist
func (db *DB) createTables() error {
	ctx, cancel := schemaContext()
	defer cancel()

	for _, query := range tableCreationQueries() {
		if _, err := db.conn.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to execute query: %s: %w", query, err)
		}
	}
	return nil
}

func tableCreationQueries() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS users (
			id VARCHAR PRIMARY KEY,
			username VARCHAR NOT NULL UNIQUE,
			email VARCHAR NOT NULL UNIQUE,
			password_hash VARCHAR NOT NULL,
			display_name VARCHAR NOT NULL,
			created_at TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS favorites (
			user_id VARCHAR NOT NULL,
			rating_key VARCHAR NOT NULL,
			data VARCHAR NOT NULL,
			added_at TIMESTAMP NOT NULL,
			UNIQUE (user_id, rating_key)
		)`,
		`CREATE TABLE IF NOT EXISTS history (
			id VARCHAR PRIMARY KEY,
			user_id VARCHAR NOT NULL,
			rating_key VARCHAR NOT NULL,
			data VARCHAR NOT NULL,
			viewed_at TIMESTAMP NOT NULL
		)`,
	}
}

// createIndexes adds the lookup indexes used by the per-user queries
func (db *DB) createIndexes() error {
	ctx, cancel := schemaContext()
	defer cancel()

	queries := []string{
		`CREATE INDEX IF NOT EXISTS idx_favorites_user ON favorites(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_history_user_viewed ON history(user_id, viewed_at)`,
	}
	for _, query := range queries {
		if _, err := db.conn.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to create index: %s: %w", query, err)
		}
	}
	return nil
}
