// Plex Roulette - Random Picks from a Plex Media Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plexroulette

package api

import (
	"time"

	"github.com/tomtom215/plexroulette/internal/auth"
	"github.com/tomtom215/plexroulette/internal/catalog"
	"github.com/tomtom215/plexroulette/internal/config"
	"github.com/tomtom215/plexroulette/internal/database"
	"github.com/tomtom215/plexroulette/internal/plex"
	"github.com/tomtom215/plexroulette/internal/watched"
)

// Handler contains dependencies for API handlers.
//
// Handler methods are split across files:
//   - handlers_health.go: health probes and /api/config
//   - handlers_auth.go: register, login, me
//   - handlers_catalog.go: libraries, browse, genres, random, roulette
//   - handlers_user.go: favorites, history, watched
type Handler struct {
	config    *config.Config
	catalog   *catalog.Service
	plex      plex.LibraryClient // health probe only
	db        *database.DB
	watched   *watched.Store
	auth      *auth.Service // nil when auth_mode is none
	startTime time.Time
}

// NewHandler creates a new API handler.
//
// authService may be nil in auth mode "none"; register and login then report
// that accounts are disabled.
//
//	handler := api.NewHandler(cfg, catalogSvc, plexClient, db, watchedStore, authSvc)
//	router := api.NewRouter(handler, authMiddleware)
//	srv := &http.Server{Handler: router.SetupChi()}
func NewHandler(cfg *config.Config, catalogSvc *catalog.Service, plexClient plex.LibraryClient, db *database.DB, watchedStore *watched.Store, authService *auth.Service) *Handler {
	return &Handler{
		config:    cfg,
		catalog:   catalogSvc,
		plex:      plexClient,
		db:        db,
		watched:   watchedStore,
		auth:      authService,
		startTime: time.Now(),
	}
}

func (h *Handler) historyLimit() int {
	if h.config != nil && h.config.Catalog.HistoryLimit > 0 {
		return h.config.Catalog.HistoryLimit
	}
	return database.DefaultHistoryLimit
}
