package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/davidbz/energysim/internal/domain"
	"github.com/davidbz/energysim/internal/observability"
)

// TariffStore persists fetched tariff tables in Redis so restarts do not refetch
// them. It wraps another fetcher and only stores complete past days.
type TariffStore struct {
	client *redis.Client
	prefix string
	energy domain.EnergyType
	next   domain.TariffFetcher
	now    func() time.Time
}

// NewTariffStore creates a Redis-backed fetcher in front of next.
func NewTariffStore(client *redis.Client, prefix string, energy domain.EnergyType, next domain.TariffFetcher) *TariffStore {
	return &TariffStore{
		client: client,
		prefix: prefix,
		energy: energy,
		next:   next,
		now:    time.Now,
	}
}

// WithClock replaces the clock deciding which days are complete.
func (s *TariffStore) WithClock(now func() time.Time) *TariffStore {
	s.now = now
	return s
}

// Fetch implements domain.TariffFetcher. Redis failures degrade to the wrapped fetcher.
func (s *TariffStore) Fetch(ctx context.Context, day time.Time) (domain.TariffTable, error) {
	day = domain.DayOf(day)
	key := s.key(day)
	logger := observability.FromContext(ctx)

	data, err := s.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var table domain.TariffTable
		if unmarshalErr := json.Unmarshal(data, &table); unmarshalErr == nil {
			logger.Debug("tariffs loaded from redis", observability.String("key", key))
			return table, nil
		}
		logger.Warn("discarding corrupt stored tariffs", observability.String("key", key))
	case errors.Is(err, redis.Nil):
	default:
		logger.Warn("redis get failed, fetching tariffs upstream",
			observability.String("key", key),
			observability.Error(err))
	}

	table, err := s.next.Fetch(ctx, day)
	if err != nil {
		return domain.TariffTable{}, err
	}

	if s.complete(day) && len(table.Tariffs) > 0 {
		if storeErr := s.store(ctx, key, table); storeErr != nil {
			logger.Warn("failed to store tariffs in redis",
				observability.String("key", key),
				observability.Error(storeErr))
		}
	}

	return table, nil
}

// Forget removes the stored table of day.
func (s *TariffStore) Forget(ctx context.Context, day time.Time) error {
	if err := s.client.Del(ctx, s.key(domain.DayOf(day))).Err(); err != nil {
		return fmt.Errorf("failed to delete stored tariffs: %w", err)
	}
	return nil
}

func (s *TariffStore) store(ctx context.Context, key string, table domain.TariffTable) error {
	data, err := json.Marshal(table)
	if err != nil {
		return fmt.Errorf("failed to marshal tariffs: %w", err)
	}

	if err := s.client.Set(ctx, key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to store tariffs: %w", err)
	}
	return nil
}

// complete reports whether day has fully passed, so its prices are final.
func (s *TariffStore) complete(day time.Time) bool {
	return day.AddDate(0, 0, 1).Before(s.now())
}

func (s *TariffStore) key(day time.Time) string {
	return fmt.Sprintf("%s:tariffs:%s:%s", s.prefix, s.energy, day.Format(time.DateOnly))
}
