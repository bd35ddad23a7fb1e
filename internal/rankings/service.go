package rankings

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/ace-tracker/internal/matchdata"
	"github.com/mauv0809/ace-tracker/internal/metrics"
	"github.com/mauv0809/ace-tracker/internal/tennis"
	"golang.org/x/sync/singleflight"
)

var _ Rankings = (*service)(nil)

type service struct {
	loader  matchdata.Loader
	metrics metrics.Metrics
	cache   *Cache
	group   singleflight.Group
	opts    Options
}

// New creates a rankings service backed by loader.
func New(loader matchdata.Loader, metrics metrics.Metrics, opts Options) Rankings {
	return NewWithCache(loader, metrics, NewCache(), opts)
}

// NewWithCache is New with a caller-owned cache.
func NewWithCache(loader matchdata.Loader, metrics metrics.Metrics, cache *Cache, opts Options) Rankings {
	if opts.LoadTimeout <= 0 {
		opts.LoadTimeout = defaultLoadTimeout
	}
	if opts.ImageTemplate == "" {
		opts.ImageTemplate = tennis.DefaultImageTemplate
	}
	return &service{
		loader:  loader,
		metrics: metrics,
		cache:   cache,
		opts:    opts,
	}
}

func (s *service) ListPlayers(ctx context.Context) []tennis.Player {
	players, ok := s.players(ctx)
	if !ok {
		return []tennis.Player{}
	}
	return players
}

func (s *service) GetPlayer(ctx context.Context, id string) (tennis.Player, bool) {
	for _, p := range s.ListPlayers(ctx) {
		if p.ID == id {
			return p, true
		}
	}
	return tennis.Player{}, false
}

func (s *service) ListTopPlayers(ctx context.Context, count int) []tennis.Player {
	if count <= 0 {
		count = DefaultTopCount
	}
	players := s.ListPlayers(ctx)
	if count > len(players) {
		count = len(players)
	}
	return players[:count:count]
}

func (s *service) GetPlayerMatches(ctx context.Context, id string) []tennis.MatchResult {
	matches, ok := s.playerMatches(ctx, id)
	if !ok {
		return []tennis.MatchResult{}
	}
	return matches
}

func (s *service) GetPlayerSummary(ctx context.Context, id string) (tennis.Summary, bool) {
	player, ok := s.GetPlayer(ctx, id)
	if !ok {
		return tennis.Summary{}, false
	}
	return tennis.Summarize(player, s.GetPlayerMatches(ctx, id)), true
}

func (s *service) InvalidateCache() {
	s.cache.Clear()
	s.metrics.IncCacheInvalidations()
	log.Info("Rankings cache invalidated", "generation", s.cache.Generation())
}

// raw returns the parsed export. ok is false when the load failed; failures
// are not cached so the next call retries.
func (s *service) raw(ctx context.Context) ([]matchdata.RawMatch, bool) {
	if raw, ok := s.cache.Raw(); ok {
		s.metrics.IncCacheLookup(metrics.CacheRaw, true)
		return raw, true
	}
	s.metrics.IncCacheLookup(metrics.CacheRaw, false)

	gen := s.cache.Generation()
	return share(ctx, &s.group, flightKey(gen, "raw"), func(ctx context.Context) ([]matchdata.RawMatch, bool) {
		if raw, ok := s.cache.Raw(); ok {
			return raw, true
		}

		loadCtx, cancel := context.WithTimeout(ctx, s.opts.LoadTimeout)
		defer cancel()

		s.metrics.IncSourceLoads()
		start := time.Now()
		raw, err := s.loader.LoadMatches(loadCtx)
		if err != nil {
			s.metrics.IncSourceLoadFailures()
			log.Error("Failed to load match export", "error", err, "duration", time.Since(start))
			return nil, false
		}
		if raw == nil {
			raw = []matchdata.RawMatch{}
		}

		s.cache.StoreRaw(gen, raw)
		log.Info("Loaded match export", "records", len(raw), "duration", time.Since(start))
		return raw, true
	})
}

func (s *service) players(ctx context.Context) ([]tennis.Player, bool) {
	if players, ok := s.cache.Players(); ok {
		s.metrics.IncCacheLookup(metrics.CachePlayers, true)
		return players, true
	}
	s.metrics.IncCacheLookup(metrics.CachePlayers, false)

	gen := s.cache.Generation()
	return share(ctx, &s.group, flightKey(gen, "players"), func(ctx context.Context) ([]tennis.Player, bool) {
		if players, ok := s.cache.Players(); ok {
			return players, true
		}

		raw, ok := s.raw(ctx)
		if !ok {
			return nil, false
		}

		start := time.Now()
		players := tennis.AggregatePlayers(raw, s.opts.ImageTemplate)
		s.metrics.ObserveAggregationDuration(time.Since(start).Seconds())

		if s.cache.StorePlayers(gen, players) {
			s.metrics.SetPlayersTracked(len(players))
		}
		log.Debug("Aggregated players", "players", len(players), "records", len(raw))
		return players, true
	})
}

func (s *service) playerMatches(ctx context.Context, id string) ([]tennis.MatchResult, bool) {
	if matches, ok := s.cache.Matches(id); ok {
		s.metrics.IncCacheLookup(metrics.CacheMatches, true)
		return matches, true
	}
	s.metrics.IncCacheLookup(metrics.CacheMatches, false)

	gen := s.cache.Generation()
	return share(ctx, &s.group, flightKey(gen, "matches:"+id), func(ctx context.Context) ([]tennis.MatchResult, bool) {
		if matches, ok := s.cache.Matches(id); ok {
			return matches, true
		}

		raw, ok := s.raw(ctx)
		if !ok {
			return nil, false
		}

		matches := tennis.PlayerMatches(id, raw)
		s.cache.StoreMatches(gen, id, matches)
		log.Debug("Extracted player matches", "player_id", id, "matches", len(matches))
		return matches, true
	})
}

func flightKey(generation uint64, name string) string {
	return fmt.Sprintf("%d/%s", generation, name)
}

type flight[T any] struct {
	val T
	ok  bool
}

// share runs fn at most once per key among concurrent callers. fn runs
// detached from the caller's cancellation so an abandoned wait does not fail
// the other callers; a cancelled caller returns immediately with ok=false.
func share[T any](ctx context.Context, group *singleflight.Group, key string, fn func(context.Context) (T, bool)) (T, bool) {
	detached := context.WithoutCancel(ctx)
	ch := group.DoChan(key, func() (any, error) {
		val, ok := fn(detached)
		return flight[T]{val: val, ok: ok}, nil
	})

	select {
	case res := <-ch:
		f := res.Val.(flight[T])
		return f.val, f.ok
	case <-ctx.Done():
		var zero T
		return zero, false
	}
}
