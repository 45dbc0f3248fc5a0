// Plex Roulette - Random Picks from a Plex Media Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plexroulette

// @title Plex Roulette API
// @version 1.0
// @description Random picks, roulette and browsing over the libraries of a Plex Media Server.
// @description
// @description ## Authentication
// @description
// @description Catalog endpoints are public. `/user/*` endpoints and `/auth/me` need a JWT,
// @description sent as `Authorization: Bearer <token>` or in the HTTP-only `token` cookie set by `/auth/login`.
// @description When the server runs with AUTH_MODE=none every request acts as a single local user.
// @description
// @description ## Error Responses
// @description
// @description ```json
// @description {
// @description   "status": "error",
// @description   "error": {"code": "VALIDATION_ERROR", "message": "Human-readable message", "details": {}},
// @description   "metadata": {"timestamp": "2026-01-01T12:00:00Z"}
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/plexroulette/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:3001
// @BasePath /api
// @schemes http https
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT as "Bearer <token>". Obtain one from /api/auth/login.
//
// @tag.name Core
// @tag.description Health checks and client configuration
//
// @tag.name Catalog
// @tag.description Library browsing, random picks and roulette
//
// @tag.name Auth
// @tag.description Account registration and login
//
// @tag.name User
// @tag.description Per-user favorites, history and watched flags
package main
