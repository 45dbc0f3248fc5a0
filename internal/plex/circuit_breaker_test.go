// Plex Roulette - Random Picks from a Plex Media Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plexroulette

package plex

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/plexroulette/internal/metrics"
)

type fakeLibraryClient struct {
	calls atomic.Int32
	err   error
	items []RawItem
}

func (f *fakeLibraryClient) GetServerIdentity(context.Context) (*IdentityContainer, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	return &IdentityContainer{MachineIdentifier: "m1"}, nil
}

func (f *fakeLibraryClient) GetLibrarySections(context.Context) ([]Directory, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	return []Directory{{Key: "1", Title: "Movies", Type: "movie"}}, nil
}

func (f *fakeLibraryClient) GetLibraryItems(context.Context, string, int) ([]RawItem, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	return f.items, nil
}

func testBreakerConfig(name string) BreakerConfig {
	cfg := DefaultBreakerConfig()
	cfg.Name = name
	cfg.MinRequests = 3
	cfg.Timeout = time.Hour
	return cfg
}

func TestCircuitBreakerPassesThrough(t *testing.T) {
	t.Parallel()

	fake := &fakeLibraryClient{items: []RawItem{{RatingKey: "1"}}}
	cbc := NewCircuitBreakerClient(fake, testBreakerConfig("test-pass"))

	items, err := cbc.GetLibraryItems(context.Background(), "1", 0)
	if err != nil {
		t.Fatalf("GetLibraryItems() error = %v", err)
	}
	if len(items) != 1 {
		t.Errorf("len(items) = %d, want 1", len(items))
	}

	identity, err := cbc.GetServerIdentity(context.Background())
	if err != nil || identity.MachineIdentifier != "m1" {
		t.Errorf("GetServerIdentity() = %+v, %v", identity, err)
	}

	sections, err := cbc.GetLibrarySections(context.Background())
	if err != nil || len(sections) != 1 {
		t.Errorf("GetLibrarySections() = %+v, %v", sections, err)
	}

	if got := testutil.ToFloat64(metrics.CircuitBreakerRequests.WithLabelValues("test-pass", "success")); got != 3 {
		t.Errorf("success count = %v, want 3", got)
	}
}

func TestCircuitBreakerOpensAndRejects(t *testing.T) {
	t.Parallel()

	upstream := errors.New("connection refused")
	fake := &fakeLibraryClient{err: upstream}
	cbc := NewCircuitBreakerClient(fake, testBreakerConfig("test-open"))

	for i := 0; i < 3; i++ {
		_, err := cbc.GetLibraryItems(context.Background(), "1", 0)
		if !errors.Is(err, upstream) {
			t.Fatalf("call %d: error = %v, want upstream error", i, err)
		}
	}

	if cbc.State() != "open" {
		t.Fatalf("State() = %q, want open", cbc.State())
	}

	_, err := cbc.GetLibraryItems(context.Background(), "1", 0)
	if !errors.Is(err, ErrCircuitOpen) {
		t.Errorf("error = %v, want ErrCircuitOpen", err)
	}
	if fake.calls.Load() != 3 {
		t.Errorf("upstream calls = %d, want 3 (open circuit must not call through)", fake.calls.Load())
	}
	if got := testutil.ToFloat64(metrics.CircuitBreakerState.WithLabelValues("test-open")); got != 2 {
		t.Errorf("circuit_breaker_state = %v, want 2", got)
	}
}

func TestCircuitBreakerIgnoresCancellation(t *testing.T) {
	t.Parallel()

	fake := &fakeLibraryClient{err: context.Canceled}
	cbc := NewCircuitBreakerClient(fake, testBreakerConfig("test-cancel"))

	for i := 0; i < 5; i++ {
		_, _ = cbc.GetLibrarySections(context.Background())
	}
	if cbc.State() != "closed" {
		t.Errorf("State() = %q, want closed after cancellations", cbc.State())
	}
}

// sectionClient serves section "1" and answers 404 for any other key.
type sectionClient struct {
	fakeLibraryClient
}

func (c *sectionClient) GetLibraryItems(_ context.Context, key string, _ int) ([]RawItem, error) {
	c.calls.Add(1)
	if key != "1" {
		return nil, &StatusError{StatusCode: http.StatusNotFound, Status: "404 Not Found", Path: "/library/sections/" + key + "/all"}
	}
	return []RawItem{{RatingKey: "10"}}, nil
}

func TestCircuitBreakerIgnoresClientErrors(t *testing.T) {
	t.Parallel()

	cbc := NewCircuitBreakerClient(&sectionClient{}, testBreakerConfig("test-404"))

	for i := 0; i < 10; i++ {
		_, err := cbc.GetLibraryItems(context.Background(), "999", 0)
		var se *StatusError
		if !errors.As(err, &se) || se.StatusCode != http.StatusNotFound {
			t.Fatalf("call %d: error = %v, want 404 StatusError", i, err)
		}
	}
	if cbc.State() != "closed" {
		t.Fatalf("State() = %q, want closed after 404s", cbc.State())
	}

	items, err := cbc.GetLibraryItems(context.Background(), "1", 0)
	if err != nil || len(items) != 1 {
		t.Errorf("healthy section = %v, %v", items, err)
	}
}

func TestIsHealthyOutcome(t *testing.T) {
	t.Parallel()

	status := func(code int) error {
		return fmt.Errorf("fetch: %w", &StatusError{StatusCode: code, Status: http.StatusText(code)})
	}
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, true},
		{"canceled", context.Canceled, true},
		{"not found", status(http.StatusNotFound), true},
		{"unauthorized", status(http.StatusUnauthorized), true},
		{"too many requests", status(http.StatusTooManyRequests), false},
		{"server error", status(http.StatusInternalServerError), false},
		{"transport", errors.New("connection refused"), false},
		{"deadline", context.DeadlineExceeded, false},
	}
	for _, tt := range tests {
		if got := isHealthyOutcome(tt.err); got != tt.want {
			t.Errorf("%s: isHealthyOutcome = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestStateHelpers(t *testing.T) {
	t.Parallel()

	if stateToString(99) != "unknown" || stateToFloat(99) != -1 {
		t.Error("unknown state should map to unknown/-1")
	}
}
