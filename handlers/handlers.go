package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/belimawr/team-logos/resolver"
	"github.com/go-chi/chi"
	"github.com/rs/zerolog"
)

// Logo - response body for a single team
type Logo struct {
	Team string `json:"team"`
	Logo string `json:"logo"`
}

// NewLogoHandler - returns the logo of the team named in the path
func NewLogoHandler(resolver resolver.Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		team := chi.URLParam(r, "team")
		if unescaped, err := url.PathUnescape(team); err == nil {
			team = unescaped
		}

		team = strings.TrimSpace(team)
		if team == "" {
			http.Error(w, "team name is required", http.StatusBadRequest)
			return
		}

		writeJSON(w, r, Logo{
			Team: team,
			Logo: resolver.Resolve(ctx, team),
		})
	}
}

// NewLogosHandler - returns the logos of a comma separated list of teams
func NewLogosHandler(resolver resolver.Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		names := []string{}
		for _, el := range strings.Split(r.URL.Query().Get("teams"), ",") {
			if el = strings.TrimSpace(el); el != "" {
				names = append(names, el)
			}
		}

		if len(names) == 0 {
			http.Error(w, "teams query parameter is required", http.StatusBadRequest)
			return
		}

		writeJSON(w, r, resolver.ResolveMany(ctx, names))
	}
}

// NewClearCacheHandler - empties the logo cache
func NewClearCacheHandler(resolver resolver.Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := resolver.ClearCache(r.Context()); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// Health - liveness probe
func Health(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func writeJSON(w http.ResponseWriter, r *http.Request, v interface{}) {
	logger := zerolog.Ctx(r.Context())

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error().Err(err).Msg("writting response body")
	}
}
