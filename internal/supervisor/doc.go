// Plex Roulette - Random Picks from a Plex Media Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plexroulette

/*
Package supervisor runs the long-lived parts of the server under suture v4.

The tree has two layers:

	SupervisorTree ("plexroulette")
	├── data-layer
	│   └── WatchedGCService
	└── api-layer
	    └── HTTPServerService

Crashed services restart with suture's backoff. On shutdown the root
context is canceled and every service gets TreeConfig.ShutdownTimeout to
return. Supervision events are logged through sutureslog into the
application's zerolog logger.

Usage:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.DefaultTreeConfig())
	tree.AddDataService(services.NewWatchedGCService(store, time.Hour))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	errCh := tree.ServeBackground(ctx)
*/
package supervisor
