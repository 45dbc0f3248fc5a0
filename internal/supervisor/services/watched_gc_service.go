// Plex Roulette - Random Picks from a Plex Media Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plexroulette

package services

import (
	"context"
	"time"

	"github.com/tomtom215/plexroulette/internal/logging"
)

// DefaultGCInterval is used when NewWatchedGCService gets a non-positive
// interval.
const DefaultGCInterval = time.Hour

// GarbageCollector is satisfied by *watched.Store.
type GarbageCollector interface {
	RunGC() (int, error)
}

// WatchedGCService periodically reclaims value log space in the watched
// store. A failed pass is logged and retried on the next tick.
type WatchedGCService struct {
	store    GarbageCollector
	interval time.Duration
	name     string
}

// NewWatchedGCService creates the service.
func NewWatchedGCService(store GarbageCollector, interval time.Duration) *WatchedGCService {
	if interval <= 0 {
		interval = DefaultGCInterval
	}
	return &WatchedGCService{
		store:    store,
		interval: interval,
		name:     "watched-gc",
	}
}

// Serve implements suture.Service.
func (s *WatchedGCService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.collect()
		}
	}
}

func (s *WatchedGCService) collect() {
	start := time.Now()
	rewritten, err := s.store.RunGC()
	if err != nil {
		logging.Warn().Err(err).Int("rewritten", rewritten).Msg("Watched store GC failed")
		return
	}
	logging.Debug().
		Int("rewritten", rewritten).
		Dur("duration", time.Since(start)).
		Msg("Watched store GC complete")
}

// String names the service in supervisor logs.
func (s *WatchedGCService) String() string {
	return s.name
}
