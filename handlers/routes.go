package handlers

import (
	"net/http"

	"github.com/belimawr/team-logos/resolver"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
)

// NewRouter wires the logo endpoints. metrics is mounted on /metrics
// when not nil.
func NewRouter(
	logger zerolog.Logger,
	resolver resolver.Resolver,
	metrics http.Handler) http.Handler {

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(hlog.NewHandler(logger))
	r.Use(middleware.Logger)

	r.Get("/healthz", Health)
	r.Get("/logos", NewLogosHandler(resolver))
	r.Get("/logos/{team}", NewLogoHandler(resolver))
	r.Delete("/logos/cache", NewClearCacheHandler(resolver))

	if metrics != nil {
		r.Method(http.MethodGet, "/metrics", metrics)
	}

	return r
}
