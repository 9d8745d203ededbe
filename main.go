package main

import (
	"context"
	"net/http"
	"os"

	"github.com/belimawr/team-logos/cache"
	"github.com/belimawr/team-logos/config"
	"github.com/belimawr/team-logos/handlers"
	"github.com/belimawr/team-logos/metrics"
	"github.com/belimawr/team-logos/resolver"
	"github.com/belimawr/team-logos/services/teams"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(os.Stderr).
		With().
		Timestamp().
		Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("loading configuration")
	}

	if cfg.LogConsole {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	lvl, _ := cfg.Level()
	logger = logger.Level(lvl)

	fetcher := teams.New(cfg.SportsDBURL, cfg.SportsDBTimeout)

	var logoCache cache.Cache
	switch cfg.CacheBackend {
	case config.BackendRedis:
		logoCache = cache.NewRedis(cfg.RedisAddr, cfg.RedisTimeout, cfg.RedisPrefix)
	default:
		logoCache = cache.NewMemory()
	}

	var recorder resolver.Recorder = metrics.Noop{}
	var metricsHandler http.Handler
	if cfg.MetricsEnabled {
		reg := prometheus.NewRegistry()
		recorder = metrics.NewPrometheus(reg)
		metricsHandler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
	}

	logos := resolver.NewCached(logoCache, fetcher, resolver.WithRecorder(recorder))

	if cfg.Preload {
		ctx := logger.WithContext(context.Background())
		go func() {
			logos.Preload(ctx, cfg.PreloadTeams)
			logger.Info().Msgf("preloaded %d team logos", len(cfg.PreloadTeams))
		}()
	}

	r := handlers.NewRouter(logger, logos, metricsHandler)

	logger.Info().
		Str("cache", cfg.CacheBackend).
		Msgf("listening on: %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		logger.Fatal().Err(err).Msg("http server")
	}

	logger.Info().Msg("Done")
}
