// Plex Roulette - Random Picks from a Plex Media Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plexroulette

package models

// MediaItem is one normalized library entry. Every field has a defined value
// after normalization: numeric fields default to zero, Genres to an empty
// slice, and the nullable URL fields to nil.
type MediaItem struct {
	RatingKey     string   `json:"ratingKey"`
	Key           string   `json:"key"`
	Title         string   `json:"title"`
	Year          int      `json:"year"`
	Summary       string   `json:"summary"`
	Rating        float64  `json:"rating"`
	ContentRating *string  `json:"contentRating"`
	Duration      int64    `json:"duration"` // milliseconds
	Thumb         *string  `json:"thumb"`
	Art           *string  `json:"art"`
	Type          string   `json:"type"`
	Genres        []string `json:"genres"`
	AddedAt       string   `json:"addedAt"`
	ViewCount     int      `json:"viewCount"`
	PlexURL       string   `json:"plexUrl"`
}

// Library is a Plex library section.
type Library struct {
	Key   string `json:"key"`
	Title string `json:"title"`
	Type  string `json:"type"`
}

// FilterSpec holds the optional constraints applied before random selection.
// A nil pointer means the constraint is absent. Genre "" or "all" disables
// genre matching.
type FilterSpec struct {
	Genre          string   `json:"genre,omitempty"`
	MinYear        *int     `json:"minYear,omitempty" validate:"omitempty,gte=0"`
	MaxYear        *int     `json:"maxYear,omitempty" validate:"omitempty,gte=0"`
	MinRating      *float64 `json:"minRating,omitempty" validate:"omitempty,gte=0,lte=10"`
	ExcludeWatched bool     `json:"excludeWatched,omitempty"`
}

// SelectionResult is returned by a random pick. Total is the size of the
// filtered population, not the library.
type SelectionResult struct {
	Total int         `json:"total"`
	Items []MediaItem `json:"items"`
}

// RouletteResult holds the items cycled through while the roulette spins and
// the winner, a separate random draw among those candidates.
type RouletteResult struct {
	Total      int         `json:"total"`
	Candidates []MediaItem `json:"candidates"`
	Winner     *MediaItem  `json:"winner"`
}

// ServerConfig is the public client configuration.
type ServerConfig struct {
	PlexURL           string  `json:"plexUrl"`
	MachineIdentifier *string `json:"machineIdentifier"`
}
