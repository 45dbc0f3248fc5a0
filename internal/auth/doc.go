// Plex Roulette - Random Picks from a Plex Media Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plexroulette

/*
Package auth provides local account authentication for Plex Roulette.

Users register with a username, email, password and display name. Passwords
are hashed with bcrypt and stored in DuckDB through the database package.
A successful login returns an HS256 JWT that the client sends back as a
Bearer token (or a "token" cookie).

# Modes

  - jwt (default): every /api/user and /api/auth/me request needs a valid token
  - none: authentication is skipped and requests run as a single local user;
    refused by config validation in production

# Usage

	jwtManager, err := auth.NewJWTManager(&cfg.Security)
	if err != nil {
	    return err
	}
	svc := auth.NewService(db, jwtManager, cfg.Security.BcryptCost)
	mw := auth.NewMiddleware(jwtManager, cfg.Security.AuthMode)

	r.With(mw.Authenticate).Get("/api/auth/me", handler.Me)

Handlers read the caller with ClaimsFromContext.
*/
package auth
