// Plex Roulette - Random Picks from a Plex Media Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plexroulette

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/tomtom215/plexroulette/internal/auth"
	"github.com/tomtom215/plexroulette/internal/middleware"
)

// Router wires handlers and middleware into a Chi router.
type Router struct {
	handler       *Handler
	middleware    *auth.Middleware
	chiMiddleware *ChiMiddleware
	static        *staticHandler
}

// NewRouter creates a router. CORS and rate limits come from the handler's
// security configuration.
func NewRouter(handler *Handler, authMiddleware *auth.Middleware) *Router {
	staticDir := "./client/dist"
	chiMw := NewChiMiddlewareFromSecurity(nil)
	if handler.config != nil {
		chiMw = NewChiMiddlewareFromSecurity(&handler.config.Security)
		if handler.config.Server.StaticDir != "" {
			staticDir = handler.config.Server.StaticDir
		}
	}

	return &Router{
		handler:       handler,
		middleware:    authMiddleware,
		chiMiddleware: chiMw,
		static:        newStaticHandler(staticDir),
	}
}

// chiMiddleware adapts http.HandlerFunc middleware to Chi's func(http.Handler) http.Handler.
func chiMiddleware(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to every route in order.
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS()) // global so OPTIONS preflight is answered

	r.Route("/api/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Use(APISecurityHeaders())
		r.Get("/", router.handler.Health)
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	r.Route("/api/auth", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitAuth())
		r.Use(APISecurityHeaders())
		r.Use(chiMiddleware(middleware.PrometheusMetrics))

		r.Post("/register", router.handler.Register)
		r.With(router.chiMiddleware.RateLimitLogin()).Post("/login", router.handler.Login)
		r.With(router.middleware.Authenticate).Get("/me", router.handler.Me)
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(chiMiddleware(middleware.PrometheusMetrics))

		r.Get("/config", router.handler.ServerConfig)

		// Catalog routes are public; a valid token only personalizes excludeWatched.
		r.Group(func(r chi.Router) {
			r.Use(router.middleware.Identify)

			r.Get("/libraries", router.handler.Libraries)
			r.Get("/library/{key}/all", router.handler.LibraryAll)
			r.Get("/library/{key}/genres", router.handler.LibraryGenres)
			r.Post("/random", router.handler.Random)
			r.Post("/roulette", router.handler.Roulette)
		})

		r.Route("/user", func(r chi.Router) {
			r.Use(router.middleware.Authenticate)

			r.Get("/favorites", router.handler.ListFavorites)
			r.Post("/favorites", router.handler.AddFavorite)
			r.Delete("/favorites/{ratingKey}", router.handler.RemoveFavorite)

			r.Get("/history", router.handler.ListHistory)
			r.Post("/history", router.handler.AddHistory)

			r.Get("/watched", router.handler.ListWatched)
			r.Post("/watched", router.handler.SetWatched)
		})

		r.NotFound(func(w http.ResponseWriter, r *http.Request) {
			respondError(w, r, http.StatusNotFound, "NOT_FOUND", "Unknown API endpoint", nil)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Everything else is the single-page client.
	r.Get("/*", router.static.ServeHTTP)

	return r
}
