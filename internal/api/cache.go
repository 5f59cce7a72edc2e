package api

import (
	"context"
	"fmt"
	"time"

	"midnight-auction/internal/models"

	lru "github.com/hashicorp/golang-lru"
)

// StatsFetcher loads the full stats of a profile
type StatsFetcher interface {
	FullProfileStats(ctx context.Context, name string) (models.Envelope[models.FullProfileStats], error)
}

type statsEntry struct {
	env     models.Envelope[models.FullProfileStats]
	expires time.Time
}

// StatsCache memoizes profile stats per profile name for a fixed time.
// Failures are never cached.
type StatsCache struct {
	cache *lru.Cache
	ttl   time.Duration
	now   func() time.Time
}

// NewStatsCache creates a cache holding at most size profiles for ttl each
func NewStatsCache(size int, ttl time.Duration) (*StatsCache, error) {
	cache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("api: create stats cache: %w", err)
	}
	return &StatsCache{cache: cache, ttl: ttl, now: time.Now}, nil
}

// Get returns cached stats for name or loads them through fetcher
func (s *StatsCache) Get(ctx context.Context, name string, fetcher StatsFetcher) (models.Envelope[models.FullProfileStats], error) {
	if v, ok := s.cache.Get(name); ok {
		entry := v.(statsEntry)
		if s.now().Before(entry.expires) {
			return entry.env, nil
		}
		s.cache.Remove(name)
	}

	env, err := fetcher.FullProfileStats(ctx, name)
	if err != nil {
		return env, err
	}
	s.cache.Add(name, statsEntry{env: env, expires: s.now().Add(s.ttl)})
	return env, nil
}

// Invalidate drops the cached stats of name
func (s *StatsCache) Invalidate(name string) {
	s.cache.Remove(name)
}

// Len returns the number of cached profiles
func (s *StatsCache) Len() int {
	return s.cache.Len()
}
