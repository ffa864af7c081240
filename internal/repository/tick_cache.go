package repository

import (
	"context"
	"time"

	"PriceFeed/internal/domain/models"
	domrepo "PriceFeed/internal/domain/repository"
	"PriceFeed/pkg/cache"
)

const latestTickPrefix = "tick:latest:"

// CachedLatestTicks keeps the newest tick per symbol in a cache.Service.
type CachedLatestTicks struct {
	cache cache.Service
	ttl   time.Duration
}

func NewCachedLatestTicks(c cache.Service, ttl time.Duration) *CachedLatestTicks {
	return &CachedLatestTicks{cache: c, ttl: ttl}
}

// PutLatest overwrites the entry of every symbol in ticks. Within one batch the
// last tick of a symbol wins.
func (c *CachedLatestTicks) PutLatest(ctx context.Context, ticks []models.Tick) error {
	if len(ticks) == 0 {
		return nil
	}
	values := make(map[string]interface{}, len(ticks))
	for _, t := range ticks {
		values[latestTickPrefix+t.Symbol] = t
	}
	return c.cache.MSet(ctx, values, c.ttl)
}

// Latest returns the cached ticks keyed by symbol. Misses are omitted.
func (c *CachedLatestTicks) Latest(ctx context.Context, symbols []string) (map[string]models.Tick, error) {
	keys := make([]string, len(symbols))
	for i, s := range symbols {
		keys[i] = latestTickPrefix + s
	}

	raw, err := cache.MGetTyped[models.Tick](ctx, c.cache, keys...)
	if err != nil {
		return nil, err
	}

	out := make(map[string]models.Tick, len(raw))
	for _, t := range raw {
		out[t.Symbol] = t
	}
	return out, nil
}

var _ domrepo.TickCache = (*CachedLatestTicks)(nil)
