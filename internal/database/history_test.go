// Plex Roulette - Random Picks from a Plex Media Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plexroulette

package database

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/goccy/go-json"
)

func TestHistoryAppendOnlyNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	db.now = steppingClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		key := strconv.Itoa(i % 2) // the same item may appear repeatedly
		if _, err := db.AddHistory(ctx, "u1", key, json.RawMessage(`{"n":`+strconv.Itoa(i)+`}`)); err != nil {
			t.Fatalf("AddHistory() error = %v", err)
		}
	}
	if _, err := db.AddHistory(ctx, "u2", "9", json.RawMessage(`{}`)); err != nil {
		t.Fatalf("AddHistory() error = %v", err)
	}

	entries, err := db.ListHistory(ctx, "u1", 50)
	if err != nil {
		t.Fatalf("ListHistory() error = %v", err)
	}
	if len(entries) != 5 {
		t.Fatalf("len(entries) = %d, want 5", len(entries))
	}
	if string(entries[0].Data) != `{"n":4}` || string(entries[4].Data) != `{"n":0}` {
		t.Errorf("entries not newest first: first=%s last=%s", entries[0].Data, entries[4].Data)
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].ViewedAt.After(entries[i-1].ViewedAt) {
			t.Errorf("entry %d viewed after entry %d", i, i-1)
		}
	}
}

func TestHistoryLimit(t *testing.T) {
	db := setupTestDB(t)
	db.now = steppingClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	ctx := context.Background()

	for i := 0; i < 8; i++ {
		if _, err := db.AddHistory(ctx, "u1", strconv.Itoa(i), json.RawMessage(`{}`)); err != nil {
			t.Fatalf("AddHistory() error = %v", err)
		}
	}

	entries, err := db.ListHistory(ctx, "u1", 3)
	if err != nil {
		t.Fatalf("ListHistory() error = %v", err)
	}
	if len(entries) != 3 || entries[0].RatingKey != "7" {
		t.Errorf("ListHistory(limit 3) = %d entries, first %q", len(entries), entries[0].RatingKey)
	}

	empty, err := db.ListHistory(ctx, "nobody", 0)
	if err != nil || empty == nil || len(empty) != 0 {
		t.Errorf("ListHistory(nobody) = %#v, %v", empty, err)
	}
}
