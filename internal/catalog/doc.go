// Plex Roulette - Random Picks from a Plex Media Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plexroulette

/*
Package catalog turns a Plex library listing into the items served by the
random pick, roulette and browse endpoints.

The pipeline is a straight line per request:

	plex.LibraryClient -> Normalizer -> Filter -> Selector

Nothing is cached. Every operation fetches the full section listing from
Plex, so two concurrent requests against the same library are independent
and may return different samples.

# Errors

Any failure to reach or parse Plex is returned wrapped in ErrUpstream, with
no retry and no partial result. A request missing its library key fails with
ErrInvalidRequest before Plex is contacted.

# Machine Identity

Deep links into the Plex web UI need the server's machineIdentifier.
ResolveIdentity fetches it once at startup and the resulting ServerIdentity
is passed to NewService. A failed lookup is not fatal; links are built with
a literal "null" server segment instead.

	identity := catalog.ResolveIdentity(ctx, plexClient)
	svc := catalog.NewService(plexClient, catalog.Config{
	    Upstream: catalog.Upstream{BaseURL: cfg.PlexBaseURL(), Token: cfg.Plex.Token},
	    Identity: identity,
	})
*/
package catalog
