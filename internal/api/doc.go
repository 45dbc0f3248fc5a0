// Plex Roulette - Random Picks from a Plex Media Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plexroulette

/*
Package api provides the HTTP REST API layer for Plex Roulette.

Routes are served by a Chi router (SetupChi) with a layered middleware stack:
request IDs wired into the logging context, real IP extraction, panic
recovery, CORS, per-group rate limits, security headers and Prometheus
request metrics.

# Endpoints

Health (no auth):
  - GET /api/health, /api/health/live, /api/health/ready

Server:
  - GET /api/config: Plex base URL and machine identifier for deep links

Authentication:
  - POST /api/auth/register, POST /api/auth/login, GET /api/auth/me

Catalog (auth optional; a valid token lets excludeWatched use the
caller's watched list):
  - GET /api/libraries
  - GET /api/library/{key}/all
  - GET /api/library/{key}/genres
  - POST /api/random
  - POST /api/roulette

Per-user data (auth required):
  - GET|POST /api/user/favorites, DELETE /api/user/favorites/{ratingKey}
  - GET|POST /api/user/history
  - GET|POST /api/user/watched

Operational:
  - GET /metrics (Prometheus), GET /swagger/* (OpenAPI UI)

Every other GET falls through to the single-page client bundle, with
index.html served for unknown paths.

# Response Format

All JSON endpoints use models.APIResponse:

	{
	  "status": "success",
	  "data": {"total": 42, "items": [...]},
	  "metadata": {"timestamp": "2026-01-02T12:00:00Z", "query_time_ms": 180}
	}

Errors set status to "error" and fill error.code with one of
VALIDATION_ERROR, UNAUTHORIZED, INVALID_CREDENTIALS, USER_EXISTS,
NOT_FOUND, RATE_LIMITED, PLEX_ERROR, DATABASE_ERROR,
WATCHED_STORE_ERROR or INTERNAL_ERROR.
Upstream Plex failures are reported as 500 PLEX_ERROR without retrying.
*/
package api
