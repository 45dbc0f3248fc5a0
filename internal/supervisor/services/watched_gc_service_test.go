// Plex Roulette - Random Picks from a Plex Media Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plexroulette

package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/tomtom215/plexroulette/internal/watched"
)

type fakeCollector struct {
	runs atomic.Int32
	err  error
}

func (f *fakeCollector) RunGC() (int, error) {
	f.runs.Add(1)
	return 0, f.err
}

func runGC(t *testing.T, gc GarbageCollector, until func() bool) {
	t.Helper()
	svc := NewWatchedGCService(gc, 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()

	deadline := time.Now().Add(2 * time.Second)
	for !until() {
		if time.Now().After(deadline) {
			cancel()
			t.Fatal("condition not reached")
		}
		time.Sleep(5 * time.Millisecond)
	}

	cancel()
	if err := <-errCh; !errors.Is(err, context.Canceled) {
		t.Errorf("Serve = %v, want context.Canceled", err)
	}
}

func TestNewWatchedGCServiceInterval(t *testing.T) {
	if got := NewWatchedGCService(&fakeCollector{}, 0).interval; got != DefaultGCInterval {
		t.Errorf("interval = %v, want %v", got, DefaultGCInterval)
	}
	if got := NewWatchedGCService(&fakeCollector{}, time.Minute).interval; got != time.Minute {
		t.Errorf("interval = %v, want 1m", got)
	}
	if got := NewWatchedGCService(&fakeCollector{}, 0).String(); got != "watched-gc" {
		t.Errorf("String() = %q", got)
	}
}

func TestWatchedGCServiceRunsPeriodically(t *testing.T) {
	gc := &fakeCollector{}
	runGC(t, gc, func() bool { return gc.runs.Load() >= 3 })
}

func TestWatchedGCServiceSurvivesErrors(t *testing.T) {
	gc := &fakeCollector{err: errors.New("value log gc: disk full")}
	runGC(t, gc, func() bool { return gc.runs.Load() >= 2 })
}

func TestWatchedGCServiceWithStore(t *testing.T) {
	store, err := watched.OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory: %v", err)
	}
	defer store.Close()

	if _, err := store.Mark(context.Background(), "u1", "42"); err != nil {
		t.Fatalf("Mark: %v", err)
	}

	var ticks atomic.Int32
	counting := collectorFunc(func() (int, error) {
		ticks.Add(1)
		return store.RunGC()
	})
	runGC(t, counting, func() bool { return ticks.Load() >= 1 })

	ok, err := store.IsWatched(context.Background(), "u1", "42")
	if err != nil || !ok {
		t.Errorf("IsWatched after GC = %v, %v", ok, err)
	}
}

type collectorFunc func() (int, error)

func (f collectorFunc) RunGC() (int, error) { return f() }
