package domain

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/davidbz/energysim/internal/observability"
	"github.com/davidbz/energysim/internal/observability/metrics"
)

type cacheEntry struct {
	table TariffTable
	err   error
}

// TariffCache memoizes the tariff tables of one energy source per calendar day.
// Concurrent gets for the same day share a single fetch. Failures are kept
// until Invalidate is called for their day.
type TariffCache struct {
	energy  EnergyType
	fetcher TariffFetcher
	metrics *metrics.Collector

	mu      sync.RWMutex
	entries map[string]cacheEntry
	group   singleflight.Group
}

// NewTariffCache creates a cache in front of fetcher (DI constructor).
func NewTariffCache(energy EnergyType, fetcher TariffFetcher, collector *metrics.Collector) *TariffCache {
	return &TariffCache{
		energy:  energy,
		fetcher: fetcher,
		metrics: collector,
		entries: make(map[string]cacheEntry),
	}
}

// Energy returns the energy source this cache serves.
func (c *TariffCache) Energy() EnergyType {
	return c.energy
}

// Get returns the table of the calendar day containing day.
// Cancelling ctx abandons the wait; the shared fetch keeps running for other callers.
func (c *TariffCache) Get(ctx context.Context, day time.Time) (TariffTable, error) {
	key := dayKey(day)

	if entry, ok := c.lookup(key); ok {
		c.metrics.CacheLookup(string(c.energy), "hit")
		return entry.table, entry.err
	}

	fetchCtx := context.WithoutCancel(ctx)
	ch := c.group.DoChan(key, func() (interface{}, error) {
		// A call that finished between lookup and DoChan already stored its result.
		if entry, ok := c.lookup(key); ok {
			return entry, nil
		}

		c.metrics.CacheLookup(string(c.energy), "miss")
		observability.FromContext(fetchCtx).Debug("tariff cache miss",
			observability.String("energy", string(c.energy)),
			observability.String("day", key))

		table, err := c.fetcher.Fetch(fetchCtx, DayOf(day))
		entry := cacheEntry{table: table, err: err}
		if err != nil {
			observability.FromContext(fetchCtx).Warn("tariff fetch failed, caching failure",
				observability.String("energy", string(c.energy)),
				observability.String("day", key),
				observability.Error(err))
		}

		c.mu.Lock()
		c.entries[key] = entry
		c.mu.Unlock()

		return entry, nil
	})

	select {
	case <-ctx.Done():
		return TariffTable{}, ctx.Err()
	case res := <-ch:
		if res.Shared {
			c.metrics.CacheLookup(string(c.energy), "shared")
		}
		entry, _ := res.Val.(cacheEntry)
		return entry.table, entry.err
	}
}

// Invalidate drops the cached result for the day containing day, including
// any copy the fetcher keeps.
func (c *TariffCache) Invalidate(ctx context.Context, day time.Time) error {
	key := dayKey(day)

	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()

	c.group.Forget(key)

	if f, ok := c.fetcher.(TariffForgetter); ok {
		if err := f.Forget(ctx, DayOf(day)); err != nil {
			return fmt.Errorf("%w: failed to forget %s tariffs for %s: %w", ErrStorage, c.energy, key, err)
		}
	}
	return nil
}

// Len returns the number of cached days.
func (c *TariffCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *TariffCache) lookup(key string) (cacheEntry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.entries[key]
	return entry, ok
}

func dayKey(t time.Time) string {
	return t.Format(time.DateOnly)
}
