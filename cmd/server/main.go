// Plex Roulette - Random Picks from a Plex Media Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plexroulette

// Package main is the entry point for the Plex Roulette server.
//
// Plex Roulette browses the libraries of one Plex Media Server and picks
// something to watch: a handful of random titles, or a single roulette
// winner, filtered by genre, year, rating and watched state. Signed-in users
// keep favorites, a pick history and their own watched flags.
//
// # Startup
//
//  1. Configuration: defaults, optional config.yaml, then environment (Koanf v2)
//  2. Storage: DuckDB for users, favorites and history; BadgerDB for watched flags
//  3. Plex: rate-limited HTTP client behind a circuit breaker
//  4. Identity: resolve the server's machineIdentifier for web deep links
//  5. Authentication: JWT accounts, or AUTH_MODE=none for a single local user
//  6. HTTP server and watched store GC under the supervisor tree
//
// A Plex server that is unreachable at startup does not stop the process;
// deep links render with an unresolved identifier and /api/health reports
// degraded until Plex answers.
//
// # Example Usage
//
//	export PLEX_URL=http://localhost:32400
//	export PLEX_TOKEN=your-plex-token
//	export JWT_SECRET=$(openssl rand -base64 32)
//	./plexroulette
//
// Single-user development mode:
//
//	export AUTH_MODE=none
//	./plexroulette
//
// # Signal Handling
//
// SIGINT and SIGTERM cancel the supervisor tree. The HTTP server drains
// in-flight requests for up to 10 seconds, then both stores are closed.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/tomtom215/plexroulette/docs"
	"github.com/tomtom215/plexroulette/internal/api"
	"github.com/tomtom215/plexroulette/internal/auth"
	"github.com/tomtom215/plexroulette/internal/catalog"
	"github.com/tomtom215/plexroulette/internal/config"
	"github.com/tomtom215/plexroulette/internal/database"
	"github.com/tomtom215/plexroulette/internal/logging"
	"github.com/tomtom215/plexroulette/internal/plex"
	"github.com/tomtom215/plexroulette/internal/supervisor"
	"github.com/tomtom215/plexroulette/internal/supervisor/services"
	"github.com/tomtom215/plexroulette/internal/watched"
)

const (
	identityTimeout = 10 * time.Second
	shutdownTimeout = 10 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	logging.Info().
		Str("version", api.Version).
		Str("plex_url", cfg.PlexBaseURL()).
		Str("db_path", cfg.Database.Path).
		Str("watched_path", cfg.Watched.Path).
		Str("auth_mode", cfg.Security.AuthMode).
		Msg("Starting Plex Roulette")

	if cfg.ShouldWarnAboutCORS() {
		logging.Warn().Strs("cors_origins", cfg.Security.CORSOrigins).
			Msg("CORS allows any origin while authentication is enabled; credentials will not be sent cross-origin")
	}

	db, err := database.New(&cfg.Database)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer closeWithLog("database", db.Close)

	watchedStore, err := watched.Open(cfg.Watched.Path)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open watched store")
	}
	defer closeWithLog("watched store", watchedStore.Close)

	plexClient := plex.NewCircuitBreakerClient(plex.NewClient(plex.ClientConfig{
		BaseURL:           cfg.PlexBaseURL(),
		Token:             cfg.Plex.Token,
		Timeout:           cfg.Plex.Timeout,
		RequestsPerSecond: cfg.Plex.RequestsPerSecond,
		Burst:             cfg.Plex.Burst,
	}), plex.DefaultBreakerConfig())

	identityCtx, cancelIdentity := context.WithTimeout(context.Background(), identityTimeout)
	identity := catalog.ResolveIdentity(identityCtx, plexClient)
	cancelIdentity()

	catalogSvc := catalog.NewService(plexClient, catalog.Config{
		Upstream: catalog.Upstream{
			BaseURL: cfg.PlexBaseURL(),
			Token:   cfg.Plex.Token,
		},
		Identity:           identity,
		ContainerSize:      cfg.Plex.ContainerSize,
		DefaultCount:       cfg.Catalog.DefaultCount,
		MaxCount:           cfg.Catalog.MaxCount,
		RouletteCandidates: cfg.Catalog.RouletteCandidates,
	})

	var jwtManager *auth.JWTManager
	var authService *auth.Service
	switch cfg.Security.AuthMode {
	case auth.ModeJWT:
		jwtManager, err = auth.NewJWTManager(&cfg.Security)
		if err != nil {
			logging.Fatal().Err(err).Msg("Failed to initialize JWT manager")
		}
		authService = auth.NewService(db, jwtManager, cfg.Security.BcryptCost)
		logging.Info().Dur("session_timeout", cfg.Security.SessionTimeout).Msg("JWT authentication enabled")
	case auth.ModeNone:
		logging.Warn().Msg("Authentication is DISABLED (AUTH_MODE=none). Every request acts as one local user.")
	}

	handler := api.NewHandler(cfg, catalogSvc, plexClient, db, watchedStore, authService)
	router := api.NewRouter(handler, auth.NewMiddleware(jwtManager, cfg.Security.AuthMode))

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.TreeConfig{
		ShutdownTimeout: shutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	tree.AddDataService(services.NewWatchedGCService(watchedStore, cfg.Watched.GCInterval))
	tree.AddAPIService(services.NewHTTPServerService(server, shutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	// The channel receives exactly one value and is never closed.
	if err := <-tree.ServeBackground(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Application stopped gracefully")
}

func closeWithLog(name string, closeFn func() error) {
	if err := closeFn(); err != nil {
		logging.Error().Err(err).Str("store", name).Msg("Failed to close")
	}
}
