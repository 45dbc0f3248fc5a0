// Plex Roulette - Random Picks from a Plex Media Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plexroulette

package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/tomtom215/plexroulette/internal/logging"
	"github.com/tomtom215/plexroulette/internal/metrics"
	"github.com/tomtom215/plexroulette/internal/models"
	"github.com/tomtom215/plexroulette/internal/plex"
)

// Defaults applied when Config leaves a field zero.
const (
	DefaultContainerSize      = 500
	DefaultCount              = 3
	DefaultRouletteCandidates = 20
)

// CountUnset asks SelectRandom for the configured default count.
const CountUnset = -1

// Config configures a Service.
type Config struct {
	Upstream Upstream
	Identity ServerIdentity

	// ContainerSize is the page-size hint sent when browsing a whole library.
	ContainerSize int

	// DefaultCount is used when a random pick does not say how many items it wants.
	DefaultCount int

	// MaxCount optionally caps the requested count. Zero means no cap.
	MaxCount int

	// RouletteCandidates is how many items the roulette cycles through.
	RouletteCandidates int

	// Selector overrides the random source. Tests inject a seeded one.
	Selector *Selector
}

// Service runs the catalog pipeline against one Plex server.
type Service struct {
	client     plex.LibraryClient
	normalizer *Normalizer
	selector   *Selector
	cfg        Config
}

// NewService creates a catalog service.
func NewService(client plex.LibraryClient, cfg Config) *Service {
	if cfg.ContainerSize <= 0 {
		cfg.ContainerSize = DefaultContainerSize
	}
	if cfg.DefaultCount <= 0 {
		cfg.DefaultCount = DefaultCount
	}
	if cfg.MaxCount < 0 {
		cfg.MaxCount = 0
	}
	if cfg.RouletteCandidates <= 0 {
		cfg.RouletteCandidates = DefaultRouletteCandidates
	}
	selector := cfg.Selector
	if selector == nil {
		selector = NewSelector(nil)
	}

	return &Service{
		client:     client,
		normalizer: NewNormalizer(cfg.Upstream, cfg.Identity),
		selector:   selector,
		cfg:        cfg,
	}
}

// Identity returns the server identity the service builds links with.
func (s *Service) Identity() ServerIdentity {
	return s.cfg.Identity
}

// SelectOption adjusts a single SelectRandom or Roulette call.
type SelectOption func(*selectOptions)

type selectOptions struct {
	excluded map[string]struct{}
}

// ExcludeRatingKeys removes the given items before selection. The HTTP layer
// passes the caller's locally watched items when excludeWatched is set.
func ExcludeRatingKeys(keys []string) SelectOption {
	return func(o *selectOptions) {
		if len(keys) == 0 {
			return
		}
		if o.excluded == nil {
			o.excluded = make(map[string]struct{}, len(keys))
		}
		for _, k := range keys {
			o.excluded[k] = struct{}{}
		}
	}
}

// Libraries lists the server's library sections.
func (s *Service) Libraries(ctx context.Context) (libs []models.Library, err error) {
	defer func() { metrics.RecordCatalogOperation("libraries", err) }()

	sections, err := s.client.GetLibrarySections(ctx)
	if err != nil {
		return nil, s.upstreamError(ctx, "libraries", "", err)
	}

	libs = make([]models.Library, len(sections))
	for i, d := range sections {
		libs[i] = models.Library{Key: d.Key, Title: d.Title, Type: d.Type}
	}
	return libs, nil
}

// ListAll returns every item in a library, normalized and unfiltered. Display
// ordering is left to the client.
func (s *Service) ListAll(ctx context.Context, libraryKey string) (items []models.MediaItem, err error) {
	defer func() { metrics.RecordCatalogOperation("list_all", err) }()

	raw, err := s.fetch(ctx, "list_all", libraryKey, s.cfg.ContainerSize)
	if err != nil {
		return nil, err
	}

	items = s.normalizer.Normalize(raw)
	logging.Ctx(ctx).Debug().
		Str("library", libraryKey).
		Int("items", len(items)).
		Msg("Fetched library items")
	return items, nil
}

// ListGenres returns the sorted, de-duplicated genre tags used in a library.
func (s *Service) ListGenres(ctx context.Context, libraryKey string) (genres []string, err error) {
	defer func() { metrics.RecordCatalogOperation("list_genres", err) }()

	raw, err := s.fetch(ctx, "list_genres", libraryKey, 0)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	genres = []string{}
	for i := range raw {
		for _, name := range genreNames(raw[i].Genres) {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			genres = append(genres, name)
		}
	}
	sort.Strings(genres)
	return genres, nil
}

// SelectRandom fetches a library, filters it and returns up to count random
// items. Total is the size of the filtered population. The result holds
// min(count, Total) items, so zero yields an empty list and a count above
// Total yields the whole population shuffled. A negative count (CountUnset)
// uses the configured default.
func (s *Service) SelectRandom(ctx context.Context, libraryKey string, spec models.FilterSpec, count int, opts ...SelectOption) (result *models.SelectionResult, err error) {
	defer func() { metrics.RecordCatalogOperation("select_random", err) }()

	candidates, err := s.population(ctx, "select_random", libraryKey, spec, opts)
	if err != nil {
		return nil, err
	}

	result = &models.SelectionResult{
		Total: len(candidates),
		Items: s.selector.Select(candidates, s.clampCount(count)),
	}
	logging.Ctx(ctx).Debug().
		Str("library", libraryKey).
		Int("total", result.Total).
		Int("selected", len(result.Items)).
		Msg("Random pick served")
	return result, nil
}

// Roulette returns the items the roulette cycles through and a winner. The
// winner is a separate random draw among the candidates, unrelated to the
// order they are displayed in. Winner is nil when nothing matches.
func (s *Service) Roulette(ctx context.Context, libraryKey string, spec models.FilterSpec, opts ...SelectOption) (result *models.RouletteResult, err error) {
	defer func() { metrics.RecordCatalogOperation("roulette", err) }()

	candidates, err := s.population(ctx, "roulette", libraryKey, spec, opts)
	if err != nil {
		return nil, err
	}

	shown := s.selector.Select(candidates, s.cfg.RouletteCandidates)
	return &models.RouletteResult{
		Total:      len(candidates),
		Candidates: shown,
		Winner:     s.selector.Pick(shown),
	}, nil
}

// population is the fetch, normalize and filter part shared by the random
// operations.
func (s *Service) population(ctx context.Context, op, libraryKey string, spec models.FilterSpec, opts []SelectOption) ([]models.MediaItem, error) {
	var o selectOptions
	for _, opt := range opts {
		opt(&o)
	}

	raw, err := s.fetch(ctx, op, libraryKey, 0)
	if err != nil {
		return nil, err
	}

	items := s.normalizer.Normalize(raw)
	filtered := excludeKeys(Filter(items, spec), o.excluded)
	metrics.RecordSelection(op, len(items), len(filtered))
	return filtered, nil
}

func (s *Service) fetch(ctx context.Context, op, libraryKey string, containerSize int) ([]plex.RawItem, error) {
	if strings.TrimSpace(libraryKey) == "" {
		return nil, fmt.Errorf("%w: library key is required", ErrInvalidRequest)
	}

	raw, err := s.client.GetLibraryItems(ctx, libraryKey, containerSize)
	if err != nil {
		return nil, s.upstreamError(ctx, op, libraryKey, err)
	}
	return raw, nil
}

func (s *Service) upstreamError(ctx context.Context, op, libraryKey string, err error) error {
	logging.Ctx(ctx).Error().
		Err(err).
		Str("operation", op).
		Str("library", libraryKey).
		Msg("Plex fetch failed")
	if libraryKey == "" {
		return fmt.Errorf("%w: %s: %w", ErrUpstream, op, err)
	}
	return fmt.Errorf("%w: %s library %s: %w", ErrUpstream, op, libraryKey, err)
}

func (s *Service) clampCount(count int) int {
	if count < 0 {
		count = s.cfg.DefaultCount
	}
	if s.cfg.MaxCount > 0 && count > s.cfg.MaxCount {
		count = s.cfg.MaxCount
	}
	return count
}
