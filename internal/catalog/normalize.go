// Plex Roulette - Random Picks from a Plex Media Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plexroulette

package catalog

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/tomtom215/plexroulette/internal/models"
	"github.com/tomtom215/plexroulette/internal/plex"
)

// Upstream is the Plex server the normalizer builds URLs against.
type Upstream struct {
	BaseURL string
	Token   string
}

// Normalizer converts raw Plex item elements into MediaItems. It holds no
// mutable state and is safe for concurrent use.
type Normalizer struct {
	baseURL  string
	token    string
	identity ServerIdentity
}

// NewNormalizer creates a Normalizer for the given server.
func NewNormalizer(upstream Upstream, identity ServerIdentity) *Normalizer {
	return &Normalizer{
		baseURL:  strings.TrimRight(upstream.BaseURL, "/"),
		token:    upstream.Token,
		identity: identity,
	}
}

// Normalize converts every raw item, preserving length and order. The input
// is not modified.
func (n *Normalizer) Normalize(raw []plex.RawItem) []models.MediaItem {
	items := make([]models.MediaItem, len(raw))
	for i := range raw {
		items[i] = n.NormalizeItem(&raw[i])
	}
	return items
}

// NormalizeItem converts one raw item. Missing or malformed numeric
// attributes become zero; it never fails.
func (n *Normalizer) NormalizeItem(raw *plex.RawItem) models.MediaItem {
	return models.MediaItem{
		RatingKey:     raw.RatingKey,
		Key:           raw.Key,
		Title:         raw.Title,
		Year:          parseCount(raw.Year),
		Summary:       raw.Summary,
		Rating:        parseRating(raw.Rating),
		ContentRating: optional(raw.ContentRating),
		Duration:      int64(parseCount(raw.Duration)),
		Thumb:         n.mediaURL(raw.Thumb),
		Art:           n.mediaURL(raw.Art),
		Type:          raw.Type,
		Genres:        genreNames(raw.Genres),
		AddedAt:       raw.AddedAt,
		ViewCount:     parseCount(raw.ViewCount),
		PlexURL:       n.PlexURL(raw.Key),
	}
}

// PlexURL builds the web UI deep link for a metadata key. The link is always
// produced, even when the machine identifier is unknown.
func (n *Normalizer) PlexURL(key string) string {
	return n.baseURL + "/web/index.html#!/server/" + n.identity.segment() +
		"/details?key=" + escapeComponent(key)
}

// mediaURL makes a relative artwork path absolute and authenticated.
func (n *Normalizer) mediaURL(path string) *string {
	if path == "" {
		return nil
	}
	u := n.baseURL + path + "?X-Plex-Token=" + url.QueryEscape(n.token)
	return &u
}

func genreNames(tags []plex.Tag) []string {
	genres := make([]string, 0, len(tags))
	for _, t := range tags {
		if t.Tag != "" {
			genres = append(genres, t.Tag)
		}
	}
	return genres
}

// parseCount parses the leading integer of an attribute the way Plex web
// clients do: "2010abc" is 2010 and "7200000.0" is 7200000. Missing,
// negative or unparsable values are 0.
func parseCount(s string) int {
	prefix := numericPrefix(s, false)
	if prefix == "" {
		return 0
	}
	v, err := strconv.Atoi(prefix)
	if err != nil || v < 0 || v > math.MaxInt32 {
		return 0
	}
	return v
}

// parseRating parses the leading decimal of an attribute, so "7.5/10" is
// 7.5. Missing, negative or unparsable values are 0.
func parseRating(s string) float64 {
	prefix := numericPrefix(s, true)
	if prefix == "" {
		return 0
	}
	f, err := strconv.ParseFloat(prefix, 64)
	if err != nil || math.IsInf(f, 0) || f < 0 {
		return 0
	}
	return f
}

// numericPrefix returns the longest leading run of s that forms a signed
// integer, or a signed decimal with optional exponent when fraction is set.
func numericPrefix(s string, fraction bool) string {
	s = strings.TrimSpace(s)
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := func(from int) int {
		for from < len(s) && s[from] >= '0' && s[from] <= '9' {
			from++
		}
		return from
	}

	end := digits(i)
	intDigits := end - i
	if !fraction {
		if intDigits == 0 {
			return ""
		}
		return s[:end]
	}

	fracDigits := 0
	if end < len(s) && s[end] == '.' {
		afterDot := digits(end + 1)
		fracDigits = afterDot - end - 1
		if intDigits > 0 || fracDigits > 0 {
			end = afterDot
		}
	}
	if intDigits == 0 && fracDigits == 0 {
		return ""
	}
	if end < len(s) && (s[end] == 'e' || s[end] == 'E') {
		j := end + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if k := digits(j); k > j {
			end = k
		}
	}
	return s[:end]
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// escapeComponent escapes like encodeURIComponent: spaces become %20 rather
// than the '+' produced by url.QueryEscape.
func escapeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
