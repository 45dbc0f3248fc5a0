// Plex Roulette - Random Picks from a Plex Media Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plexroulette

package catalog

import (
	"math/rand/v2"
	"reflect"
	"strconv"
	"testing"

	"github.com/tomtom215/plexroulette/internal/models"
)

func numberedItems(n int) []models.MediaItem {
	items := make([]models.MediaItem, n)
	for i := range items {
		items[i] = models.MediaItem{RatingKey: strconv.Itoa(i)}
	}
	return items
}

func TestSelectBounds(t *testing.T) {
	t.Parallel()

	s := NewSelector(rand.NewPCG(1, 2))
	for _, length := range []int{0, 1, 2, 5, 20} {
		for _, count := range []int{-1, 0, 1, 3, 5, 25} {
			items := numberedItems(length)
			got := s.Select(items, count)

			want := min(max(count, 0), length)
			if len(got) != want {
				t.Fatalf("Select(len=%d, count=%d) returned %d items, want %d", length, count, len(got), want)
			}
			if got == nil {
				t.Fatalf("Select(len=%d, count=%d) returned nil", length, count)
			}

			seen := make(map[string]bool, len(got))
			for _, item := range got {
				if seen[item.RatingKey] {
					t.Fatalf("duplicate item %s", item.RatingKey)
				}
				seen[item.RatingKey] = true
				idx, err := strconv.Atoi(item.RatingKey)
				if err != nil || idx < 0 || idx >= length {
					t.Fatalf("item %s not drawn from input", item.RatingKey)
				}
			}
		}
	}
}

func TestSelectDoesNotReorderInput(t *testing.T) {
	t.Parallel()

	items := numberedItems(10)
	before := make([]models.MediaItem, len(items))
	copy(before, items)

	NewSelector(rand.NewPCG(3, 4)).Select(items, 10)

	if !reflect.DeepEqual(items, before) {
		t.Error("Select reordered its input")
	}
}

func TestSelectSeededIsDeterministic(t *testing.T) {
	t.Parallel()

	items := numberedItems(50)
	a := NewSelector(rand.NewPCG(7, 7)).Select(items, 5)
	b := NewSelector(rand.NewPCG(7, 7)).Select(items, 5)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed gave %v and %v", keys(a), keys(b))
	}
}

// TestSelectDistribution checks that each position is chosen roughly equally
// often. The bound is loose enough to never flake with a fixed seed.
func TestSelectDistribution(t *testing.T) {
	t.Parallel()

	const (
		n      = 5
		trials = 20000
	)
	s := NewSelector(rand.NewPCG(11, 13))
	items := numberedItems(n)
	counts := make(map[string]int, n)

	for i := 0; i < trials; i++ {
		counts[s.Select(items, 1)[0].RatingKey]++
	}

	expected := trials / n
	for key, c := range counts {
		if c < expected*8/10 || c > expected*12/10 {
			t.Errorf("item %s chosen %d times, expected about %d", key, c, expected)
		}
	}
	if len(counts) != n {
		t.Errorf("only %d of %d items were ever chosen", len(counts), n)
	}
}

func TestPick(t *testing.T) {
	t.Parallel()

	s := NewSelector(nil)
	if s.Pick(nil) != nil {
		t.Error("Pick(nil) should be nil")
	}

	items := numberedItems(3)
	got := s.Pick(items)
	if got == nil {
		t.Fatal("Pick returned nil for non-empty input")
	}
	got.Title = "changed"
	for _, item := range items {
		if item.Title != "" {
			t.Error("Pick returned a pointer into the input slice")
		}
	}
}
