package resolver

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/belimawr/team-logos/cache"
	"github.com/belimawr/team-logos/services/teams"
	"github.com/rs/zerolog"
)

// Option configures a Cached resolver
type Option func(*Cached)

// WithRecorder sets the Recorder lookups are reported to
func WithRecorder(r Recorder) Option {
	return func(c *Cached) {
		if r != nil {
			c.recorder = r
		}
	}
}

// Cached resolves logos through a Fetcher, memoizing every result,
// placeholders included, until ClearCache is called.
type Cached struct {
	fetcher  teams.Fetcher
	cache    cache.Cache
	recorder Recorder
}

// NewCached returns a cached implementation of Resolver
func NewCached(cache cache.Cache, fetcher teams.Fetcher, opts ...Option) *Cached {
	c := &Cached{
		fetcher:  fetcher,
		cache:    cache,
		recorder: noopRecorder{},
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

var _ Resolver = (*Cached)(nil)

type result struct {
	team string
	logo string
}

func key(team string) string {
	return strings.ToLower(team)
}

// Resolve returns the logo reference for team. It never fails: any
// remote failure yields the generated placeholder.
func (c *Cached) Resolve(ctx context.Context, team string) string {
	logger := zerolog.Ctx(ctx).
		With().
		Str("_function", "Cached.Resolve").
		Str("team", team).
		Logger()

	k := key(team)

	logo, err := c.cache.Get(ctx, k)
	if err == nil {
		c.recorder.RecordLookup(SourceCache)
		return logo
	}

	if !errors.Is(err, cache.ErrNotFound) {
		logger.Warn().Err(err).Msg("reading logo from cache, treating as miss")
	}

	logo, source := c.fromRemote(ctx, team)
	c.recorder.RecordLookup(source)

	if err := c.cache.Set(ctx, k, logo); err != nil {
		logger.Warn().Err(err).Msg("setting logo on cache")
	}

	return logo
}

// fromRemote runs a single search and reduces every outcome to a logo
// reference. The search is detached from the caller's cancellation so
// an abandoned request cannot memoize a placeholder.
func (c *Cached) fromRemote(ctx context.Context, team string) (string, string) {
	logger := zerolog.Ctx(ctx)

	found, err := c.fetcher.Search(context.WithoutCancel(ctx), team)
	switch {
	case errors.Is(err, teams.ErrDoesNotExist):
		c.recorder.RecordRemoteRequest(RemoteNoMatch)
		logger.Warn().Msgf("team %q not found, using placeholder", team)
		return Placeholder(team), SourceFallback

	case err != nil:
		c.recorder.RecordRemoteRequest(RemoteFailure)
		logger.Error().Err(err).Msgf("could not fetch logo for %q, using placeholder", team)
		return Placeholder(team), SourceFallback

	case len(found) == 0:
		c.recorder.RecordRemoteRequest(RemoteNoMatch)
		logger.Warn().Msgf("team %q not found, using placeholder", team)
		return Placeholder(team), SourceFallback
	}

	c.recorder.RecordRemoteRequest(RemoteSuccess)

	if u := found[0].ImageURL(); u != "" {
		return u, SourceRemote
	}

	logger.Warn().Msgf("team %q has no badge or logo, using placeholder", team)
	return Placeholder(team), SourceFallback
}

// ResolveMany resolves every team concurrently and returns once all
// lookups have finished. Names sharing a cache key are looked up once.
func (c *Cached) ResolveMany(ctx context.Context, teams []string) map[string]string {
	logger := zerolog.Ctx(ctx)

	byKey := map[string][]string{}
	for _, t := range teams {
		k := key(t)
		byKey[k] = append(byKey[k], t)
	}

	wg := sync.WaitGroup{}
	resChan := make(chan result, len(byKey))

	for _, names := range byKey {
		wg.Add(1)
		go c.resolveJob(ctx, &wg, resChan, names[0])
	}

	wg.Wait()
	close(resChan)

	logos := make(map[string]string, len(teams))
	for r := range resChan {
		for _, name := range byKey[key(r.team)] {
			logos[name] = r.logo
		}
	}

	logger.Debug().Msgf("resolved %d logos for %d names", len(byKey), len(teams))
	return logos
}

func (c *Cached) resolveJob(
	ctx context.Context,
	wg *sync.WaitGroup,
	resultChan chan<- result,
	team string) {

	defer wg.Done()

	resultChan <- result{
		team: team,
		logo: c.Resolve(ctx, team),
	}
}

// Preload warms the cache for teams
func (c *Cached) Preload(ctx context.Context, teams []string) {
	c.ResolveMany(ctx, teams)
}

// ClearCache empties the cache; following lookups go to the remote
// service again.
func (c *Cached) ClearCache(ctx context.Context) error {
	if err := c.cache.Clear(ctx); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("clearing logo cache")
		return err
	}

	return nil
}
