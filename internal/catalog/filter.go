// Plex Roulette - Random Picks from a Plex Media Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plexroulette

package catalog

import (
	"strings"

	"github.com/tomtom215/plexroulette/internal/models"
)

// genreAll is the client's "any genre" choice.
const genreAll = "all"

// Filter returns the items that satisfy every active constraint in spec, in
// their original order. A spec with no active constraint returns items as is.
func Filter(items []models.MediaItem, spec models.FilterSpec) []models.MediaItem {
	if !IsActive(spec) {
		return items
	}

	genre := genreNeedle(spec.Genre)
	out := make([]models.MediaItem, 0, len(items))
	for i := range items {
		if matches(&items[i], &spec, genre) {
			out = append(out, items[i])
		}
	}
	return out
}

// Matches reports whether a single item passes spec.
func Matches(item *models.MediaItem, spec models.FilterSpec) bool {
	return matches(item, &spec, genreNeedle(spec.Genre))
}

// IsActive reports whether spec constrains anything.
func IsActive(spec models.FilterSpec) bool {
	return genreNeedle(spec.Genre) != "" ||
		spec.MinYear != nil ||
		spec.MaxYear != nil ||
		spec.MinRating != nil ||
		spec.ExcludeWatched
}

func matches(item *models.MediaItem, spec *models.FilterSpec, genre string) bool {
	if genre != "" && !hasGenre(item.Genres, genre) {
		return false
	}
	if spec.MinYear != nil && item.Year < *spec.MinYear {
		return false
	}
	if spec.MaxYear != nil && item.Year > *spec.MaxYear {
		return false
	}
	if spec.MinRating != nil && item.Rating < *spec.MinRating {
		return false
	}
	if spec.ExcludeWatched && item.ViewCount != 0 {
		return false
	}
	return true
}

// hasGenre matches on substring so compound labels such as "Action/Adventure"
// satisfy a filter for "action".
func hasGenre(genres []string, needle string) bool {
	for _, g := range genres {
		if strings.Contains(strings.ToLower(g), needle) {
			return true
		}
	}
	return false
}

// genreNeedle returns the lower-cased genre to match, or "" when the genre
// filter is off.
func genreNeedle(genre string) string {
	genre = strings.TrimSpace(genre)
	if genre == "" || strings.EqualFold(genre, genreAll) {
		return ""
	}
	return strings.ToLower(genre)
}

// excludeKeys drops items whose rating key is in keys. Order is preserved.
func excludeKeys(items []models.MediaItem, keys map[string]struct{}) []models.MediaItem {
	if len(keys) == 0 {
		return items
	}
	out := make([]models.MediaItem, 0, len(items))
	for i := range items {
		if _, skip := keys[items[i].RatingKey]; !skip {
			out = append(out, items[i])
		}
	}
	return out
}
