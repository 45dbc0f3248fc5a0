// Plex Roulette - Random Picks from a Plex Media Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plexroulette

/*
Package config provides centralized configuration management for Plex Roulette.

Configuration is layered with Koanf v2. Built-in defaults are loaded first,
then an optional YAML file, then environment variables:

	defaults -> config.yaml (or CONFIG_PATH) -> environment

# Environment Variables

Plex (PlexConfig):
  - PLEX_URL: Plex Media Server base URL (required, no path)
  - PLEX_TOKEN: X-Plex-Token used for every upstream request (required)
  - PLEX_CONTAINER_SIZE: Page-size hint for browse-all requests (default: 500)
  - PLEX_TIMEOUT: Upstream request timeout (default: 30s)
  - PLEX_REQUESTS_PER_SECOND: Outbound request pacing, 0 disables (default: 10)

HTTP Server (ServerConfig):
  - PORT / HTTP_PORT: Listen port (default: 3001)
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - STATIC_DIR: Single-page client bundle directory (default: ./client/dist)
  - ENVIRONMENT: development or production

Storage:
  - DUCKDB_PATH: Users, favorites and history database (default: /data/plexroulette.duckdb)
  - WATCHED_PATH: BadgerDB directory for watched flags (default: /data/watched)

Security (SecurityConfig):
  - AUTH_MODE: jwt or none (default: jwt)
  - JWT_SECRET: Token signing secret, min 32 chars
  - SESSION_TIMEOUT: Token lifetime (default: 720h)
  - BCRYPT_COST: Password hashing cost (default: 10)
  - RATE_LIMIT_REQUESTS / RATE_LIMIT_WINDOW / DISABLE_RATE_LIMIT
  - CORS_ORIGINS: Comma-separated allowed origins

Catalog (CatalogConfig):
  - DEFAULT_COUNT: Items returned by a random pick when no count is given (default: 3)
  - MAX_COUNT: Optional upper bound on a requested count (default: 0, no cap)
  - ROULETTE_CANDIDATES: Items shown while the roulette spins (default: 20)
  - HISTORY_LIMIT: History entries returned per request (default: 50)

Logging (LoggingConfig):
  - LOG_LEVEL, LOG_FORMAT (json, console), LOG_CALLER

# Usage

	cfg, err := config.Load()
	if err != nil {
	    logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
*/
package config
