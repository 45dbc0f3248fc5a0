// Plex Roulette - Random Picks from a Plex Media Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plexroulette

package catalog

import (
	"reflect"
	"testing"

	"github.com/tomtom215/plexroulette/internal/models"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func sampleItems() []models.MediaItem {
	return []models.MediaItem{
		{RatingKey: "1", Title: "Heat", Year: 1995, Rating: 8.3, Genres: []string{"Action", "Crime"}},
		{RatingKey: "2", Title: "Up", Year: 2009, Rating: 8.2, Genres: []string{"Animation", "Family"}, ViewCount: 3},
		{RatingKey: "3", Title: "Arrival", Year: 2016, Rating: 7.9, Genres: []string{"Science Fiction", "Drama"}},
		{RatingKey: "4", Title: "Unknown", Genres: []string{}},
		{RatingKey: "5", Title: "Mad Max", Year: 2015, Rating: 8.1, Genres: []string{"Action/Adventure"}},
	}
}

func keys(items []models.MediaItem) []string {
	out := make([]string, len(items))
	for i := range items {
		out[i] = items[i].RatingKey
	}
	return out
}

func TestFilterIdentity(t *testing.T) {
	t.Parallel()

	items := sampleItems()
	for _, spec := range []models.FilterSpec{{}, {Genre: "all"}, {Genre: "ALL"}, {Genre: "  "}} {
		got := Filter(items, spec)
		if !reflect.DeepEqual(got, items) {
			t.Errorf("Filter(%+v) changed the input: %v", spec, keys(got))
		}
	}
}

func TestFilterConjunctionExample(t *testing.T) {
	t.Parallel()

	items := []models.MediaItem{
		{RatingKey: "a", Year: 1999, Rating: 8.1, Genres: []string{"Action"}},
		{RatingKey: "b", Year: 2010, Rating: 5.0, Genres: []string{"Drama"}},
	}
	got := Filter(items, models.FilterSpec{MinYear: intPtr(2000), MinRating: floatPtr(4.0)})
	if !reflect.DeepEqual(keys(got), []string{"b"}) {
		t.Errorf("Filter = %v, want [b]", keys(got))
	}
}

func TestFilterPredicates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		spec models.FilterSpec
		want []string
	}{
		{"genre exact", models.FilterSpec{Genre: "Drama"}, []string{"3"}},
		{"genre case insensitive substring", models.FilterSpec{Genre: "action"}, []string{"1", "5"}},
		{"genre partial", models.FilterSpec{Genre: "fict"}, []string{"3"}},
		{"genre no match", models.FilterSpec{Genre: "Western"}, []string{}},
		{"min year inclusive", models.FilterSpec{MinYear: intPtr(2015)}, []string{"3", "5"}},
		{"max year inclusive", models.FilterSpec{MaxYear: intPtr(2009)}, []string{"1", "2", "4"}},
		{"year range", models.FilterSpec{MinYear: intPtr(2000), MaxYear: intPtr(2015)}, []string{"2", "5"}},
		{"min rating inclusive", models.FilterSpec{MinRating: floatPtr(8.2)}, []string{"1", "2"}},
		{"exclude watched", models.FilterSpec{ExcludeWatched: true}, []string{"1", "3", "4", "5"}},
		{"all combined", models.FilterSpec{Genre: "action", MinYear: intPtr(2000), MinRating: floatPtr(8), ExcludeWatched: true}, []string{"5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Filter(sampleItems(), tt.spec)
			if !reflect.DeepEqual(keys(got), tt.want) {
				t.Errorf("Filter = %v, want %v", keys(got), tt.want)
			}
			// Every kept item passes each predicate on its own.
			for i := range got {
				if !Matches(&got[i], tt.spec) {
					t.Errorf("item %s kept but does not match", got[i].RatingKey)
				}
			}
		})
	}
}

func TestIsActive(t *testing.T) {
	t.Parallel()

	if IsActive(models.FilterSpec{Genre: "all"}) {
		t.Error("genre all should not be active")
	}
	if !IsActive(models.FilterSpec{ExcludeWatched: true}) {
		t.Error("excludeWatched should be active")
	}
}

func TestExcludeKeys(t *testing.T) {
	t.Parallel()

	got := excludeKeys(sampleItems(), map[string]struct{}{"2": {}, "4": {}})
	if !reflect.DeepEqual(keys(got), []string{"1", "3", "5"}) {
		t.Errorf("excludeKeys = %v", keys(got))
	}
}
