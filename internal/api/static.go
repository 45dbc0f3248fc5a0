// Plex Roulette - Random Picks from a Plex Media Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plexroulette

package api

import (
	"errors"
	"io/fs"
	"net/http"
	"os"
	"path"
	"path/filepath"
)

// staticHandler serves the client bundle and falls back to index.html so that
// client-side routes survive a reload.
type staticHandler struct {
	dir        string
	root       http.FileSystem
	fileServer http.Handler
}

func newStaticHandler(dir string) *staticHandler {
	root := http.Dir(dir)
	return &staticHandler{
		dir:        dir,
		root:       root,
		fileServer: http.FileServer(root),
	}
}

func (s *staticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if s.isFile(path.Clean("/" + r.URL.Path)) {
		s.fileServer.ServeHTTP(w, r)
		return
	}

	index := filepath.Join(s.dir, "index.html")
	if _, err := os.Stat(index); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			respondError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Client bundle unavailable", err)
			return
		}
		respondError(w, r, http.StatusNotFound, "NOT_FOUND", "Client bundle not found", nil)
		return
	}

	w.Header().Set("Cache-Control", "no-cache")
	http.ServeFile(w, r, index)
}

func (s *staticHandler) isFile(name string) bool {
	if name == "/" {
		return false
	}
	f, err := s.root.Open(name)
	if err != nil {
		return false
	}
	defer f.Close() //nolint:errcheck // read-only

	info, err := f.Stat()
	return err == nil && !info.IsDir()
}
