// Plex Roulette - Random Picks from a Plex Media Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plexroulette

package api

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/plexroulette/internal/catalog"
	"github.com/tomtom215/plexroulette/internal/models"
)

// looseNumber accepts a JSON number, a numeric string, an empty string or
// null. Browser forms send filter values as strings. Zero means "not set".
type looseNumber float64

// UnmarshalJSON implements json.Unmarshaler.
func (n *looseNumber) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		*n = 0
		return nil
	}
	if strings.HasPrefix(raw, "\"") {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
		if raw == "" {
			*n = 0
			return nil
		}
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("expected a number, got %q", raw)
	}
	*n = looseNumber(v)
	return nil
}

// FilterRequest is the "filters" object of random and roulette requests.
//
// Zero numeric values are treated as unset, so {"minYear": 0} does not
// filter. Genre "" or "all" disables the genre filter.
//
// ExcludeWatched drops items Plex reports with a non-zero viewCount. For a
// signed-in caller it also drops the items they marked watched in the local
// watched store, so Total counts the population left after both exclusions.
type FilterRequest struct {
	Genre          string      `json:"genre" validate:"max=100"`
	MinYear        looseNumber `json:"minYear" validate:"gte=0,lte=9999"`
	MaxYear        looseNumber `json:"maxYear" validate:"gte=0,lte=9999"`
	MinRating      looseNumber `json:"minRating" validate:"gte=0,lte=10"`
	ExcludeWatched bool        `json:"excludeWatched"`
}

// FilterSpec converts the request into catalog filter criteria.
func (f *FilterRequest) FilterSpec() models.FilterSpec {
	if f == nil {
		return models.FilterSpec{}
	}

	spec := models.FilterSpec{
		Genre:          f.Genre,
		ExcludeWatched: f.ExcludeWatched,
	}
	if f.MinYear != 0 {
		year := int(f.MinYear)
		spec.MinYear = &year
	}
	if f.MaxYear != 0 {
		year := int(f.MaxYear)
		spec.MaxYear = &year
	}
	if f.MinRating != 0 {
		rating := float64(f.MinRating)
		spec.MinRating = &rating
	}
	return spec
}

// RandomRequest is the body of POST /api/random. An absent or null count
// asks for the configured default; an explicit 0 returns no items.
type RandomRequest struct {
	LibraryKey string         `json:"libraryKey" validate:"required,librarykey"`
	Count      *int           `json:"count" validate:"omitempty,gte=0"`
	Filters    *FilterRequest `json:"filters"`
}

// SelectCount is the count passed to catalog.Service.SelectRandom.
func (r *RandomRequest) SelectCount() int {
	if r.Count == nil {
		return catalog.CountUnset
	}
	return *r.Count
}

// RouletteRequest is the body of POST /api/roulette.
type RouletteRequest struct {
	LibraryKey string         `json:"libraryKey" validate:"required,librarykey"`
	Filters    *FilterRequest `json:"filters"`
}

// MediaRequest is the body of POST /api/user/favorites and /api/user/history.
// Data is the media item as the client rendered it and is stored verbatim.
type MediaRequest struct {
	RatingKey string          `json:"ratingKey" validate:"required,max=64"`
	Data      json.RawMessage `json:"data" validate:"required"`
}

// WatchedRequest is the body of POST /api/user/watched. A nil Watched toggles
// the current state.
type WatchedRequest struct {
	RatingKey string `json:"ratingKey" validate:"required,max=64"`
	Watched   *bool  `json:"watched"`
}

// WatchedState is returned by POST /api/user/watched.
type WatchedState struct {
	RatingKey string `json:"ratingKey"`
	Watched   bool   `json:"watched"`
}
