// Plex Roulette - Random Picks from a Plex Media Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plexroulette

package watched

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/tomtom215/plexroulette/internal/logging"
	"github.com/tomtom215/plexroulette/internal/metrics"
	"github.com/tomtom215/plexroulette/internal/models"
)

const keyPrefix = "watched:"

// maxConflictRetries bounds retries of a read-modify-write transaction.
const maxConflictRetries = 3

// ErrInvalidKey is returned when the user ID or rating key is empty or
// contains the key separator.
var ErrInvalidKey = errors.New("invalid watched key")

// Store is a BadgerDB-backed watched flag store.
type Store struct {
	db  *badger.DB
	now func() time.Time
}

// Open opens (or creates) the store at path.
func Open(path string) (*Store, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil // Suppress BadgerDB internal logs
	opts.ValueLogFileSize = 16 << 20
	opts.SyncWrites = true

	return open(opts)
}

// OpenInMemory opens a store that is discarded on Close.
func OpenInMemory() (*Store, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil
	return open(opts)
}

func open(opts badger.Options) (*Store, error) {
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger db for watched store: %w", err)
	}

	logging.Info().Str("path", opts.Dir).Bool("in_memory", opts.InMemory).Msg("Watched store opened")
	return &Store{db: db, now: time.Now}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func entryKey(userID, ratingKey string) ([]byte, error) {
	if userID == "" || ratingKey == "" || strings.Contains(userID, ":") {
		return nil, fmt.Errorf("%w: user %q, item %q", ErrInvalidKey, userID, ratingKey)
	}
	return []byte(keyPrefix + userID + ":" + ratingKey), nil
}

func userPrefix(userID string) []byte {
	return []byte(keyPrefix + userID + ":")
}

// Mark flags an item as watched. Marking an already watched item refreshes
// its timestamp.
func (s *Store) Mark(ctx context.Context, userID, ratingKey string) (entry *models.WatchedEntry, err error) {
	defer func() { metrics.RecordWatchedOperation("mark", err) }()

	key, err := entryKey(userID, ratingKey)
	if err != nil {
		return nil, err
	}

	entry = &models.WatchedEntry{RatingKey: ratingKey, WatchedAt: s.now().UTC()}
	data, err := json.Marshal(entry)
	if err != nil {
		return nil, fmt.Errorf("marshal watched entry: %w", err)
	}

	if err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, data)
	}); err != nil {
		return nil, fmt.Errorf("set watched entry: %w", err)
	}

	logging.Ctx(ctx).Debug().Str("rating_key", ratingKey).Msg("Marked as watched")
	return entry, nil
}

// Unmark clears the watched flag. Clearing an unwatched item is not an error.
func (s *Store) Unmark(ctx context.Context, userID, ratingKey string) (err error) {
	defer func() { metrics.RecordWatchedOperation("unmark", err) }()

	key, err := entryKey(userID, ratingKey)
	if err != nil {
		return err
	}

	if err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	}); err != nil {
		return fmt.Errorf("delete watched entry: %w", err)
	}

	logging.Ctx(ctx).Debug().Str("rating_key", ratingKey).Msg("Cleared watched flag")
	return nil
}

// Toggle flips the watched flag in a single transaction and returns the new
// state.
func (s *Store) Toggle(ctx context.Context, userID, ratingKey string) (watched bool, err error) {
	defer func() { metrics.RecordWatchedOperation("toggle", err) }()

	key, err := entryKey(userID, ratingKey)
	if err != nil {
		return false, err
	}

	for attempt := 0; attempt < maxConflictRetries; attempt++ {
		err = s.db.Update(func(txn *badger.Txn) error {
			_, getErr := txn.Get(key)
			switch {
			case errors.Is(getErr, badger.ErrKeyNotFound):
				data, mErr := json.Marshal(models.WatchedEntry{RatingKey: ratingKey, WatchedAt: s.now().UTC()})
				if mErr != nil {
					return fmt.Errorf("marshal watched entry: %w", mErr)
				}
				watched = true
				return txn.Set(key, data)
			case getErr != nil:
				return getErr
			default:
				watched = false
				return txn.Delete(key)
			}
		})
		if !errors.Is(err, badger.ErrConflict) {
			break
		}
	}
	if err != nil {
		return false, fmt.Errorf("toggle watched entry: %w", err)
	}

	logging.Ctx(ctx).Debug().Str("rating_key", ratingKey).Bool("watched", watched).Msg("Toggled watched flag")
	return watched, nil
}

// IsWatched reports whether the user flagged the item.
func (s *Store) IsWatched(_ context.Context, userID, ratingKey string) (watched bool, err error) {
	defer func() { metrics.RecordWatchedOperation("get", err) }()

	key, err := entryKey(userID, ratingKey)
	if err != nil {
		return false, err
	}

	err = s.db.View(func(txn *badger.Txn) error {
		_, getErr := txn.Get(key)
		if errors.Is(getErr, badger.ErrKeyNotFound) {
			return nil
		}
		if getErr != nil {
			return getErr
		}
		watched = true
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("get watched entry: %w", err)
	}
	return watched, nil
}

// List returns the user's watched entries, most recent first.
func (s *Store) List(_ context.Context, userID string) (entries []models.WatchedEntry, err error) {
	defer func() { metrics.RecordWatchedOperation("list", err) }()

	entries = []models.WatchedEntry{}
	err = s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = userPrefix(userID)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			var entry models.WatchedEntry
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &entry)
			}); err != nil {
				return fmt.Errorf("decode %s: %w", it.Item().Key(), err)
			}
			entries = append(entries, entry)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list watched entries: %w", err)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].WatchedAt.After(entries[j].WatchedAt)
	})
	return entries, nil
}

// RatingKeys returns the rating keys the user flagged, in key order. Values
// are not read.
func (s *Store) RatingKeys(_ context.Context, userID string) (keys []string, err error) {
	defer func() { metrics.RecordWatchedOperation("keys", err) }()

	prefix := userPrefix(userID)
	keys = []string{}
	err = s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			keys = append(keys, string(it.Item().Key()[len(prefix):]))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list watched keys: %w", err)
	}
	return keys, nil
}

// RunGC reclaims value log space until Badger reports nothing left to
// rewrite. It returns the number of files rewritten.
func (s *Store) RunGC() (int, error) {
	rewritten := 0
	for {
		err := s.db.RunValueLogGC(0.5)
		if errors.Is(err, badger.ErrNoRewrite) || errors.Is(err, badger.ErrGCInMemoryMode) {
			return rewritten, nil
		}
		if err != nil {
			return rewritten, fmt.Errorf("value log gc: %w", err)
		}
		rewritten++
	}
}
