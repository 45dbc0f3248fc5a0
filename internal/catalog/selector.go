// Plex Roulette - Random Picks from a Plex Media Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plexroulette

package catalog

import (
	"math/rand/v2"
	"sync"

	"github.com/tomtom215/plexroulette/internal/models"
)

// Selector draws uniform random samples without replacement.
type Selector struct {
	mu  sync.Mutex
	rng *rand.Rand // nil uses the runtime's concurrent-safe source
}

// NewSelector creates a Selector. A nil source uses the package-level
// generator from math/rand/v2; tests pass a seeded source.
func NewSelector(src rand.Source) *Selector {
	if src == nil {
		return &Selector{}
	}
	return &Selector{rng: rand.New(src)}
}

func (s *Selector) intN(n int) int {
	if s.rng == nil {
		return rand.IntN(n)
	}
	return s.rng.IntN(n)
}

// Select returns min(count, len(items)) distinct items in random order. The
// input slice is not reordered. count <= 0 or empty input yields an empty
// slice.
func (s *Selector) Select(items []models.MediaItem, count int) []models.MediaItem {
	if count <= 0 || len(items) == 0 {
		return []models.MediaItem{}
	}
	if count > len(items) {
		count = len(items)
	}

	shuffled := make([]models.MediaItem, len(items))
	copy(shuffled, items)

	s.mu.Lock()
	defer s.mu.Unlock()

	// Partial Fisher-Yates: after i steps the prefix is a uniform sample.
	for i := 0; i < count; i++ {
		j := i + s.intN(len(shuffled)-i)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled[:count:count]
}

// Pick returns one uniformly chosen item, or nil for an empty slice.
func (s *Selector) Pick(items []models.MediaItem) *models.MediaItem {
	if len(items) == 0 {
		return nil
	}

	s.mu.Lock()
	idx := s.intN(len(items))
	s.mu.Unlock()

	item := items[idx]
	return &item
}
