package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/davidbz/energysim/internal/domain"
)

// RecordStore keeps priced records in a hash per energy, indexed by time in a sorted set.
type RecordStore struct {
	client *redis.Client
	prefix string
}

// NewRecordStore creates a Redis record store.
func NewRecordStore(client *redis.Client, prefix string) *RecordStore {
	return &RecordStore{client: client, prefix: prefix}
}

// Save implements domain.RecordStore. Saving an existing ID overwrites it.
func (s *RecordStore) Save(ctx context.Context, record domain.PricedRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, s.hashKey(record.Energy), record.ID, data)
		pipe.ZAdd(ctx, s.indexKey(record.Energy), redis.Z{
			Score:  float64(record.DateTime.Unix()),
			Member: record.ID,
		})
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save record %s: %w", record.ID, err)
	}

	return nil
}

// Search implements domain.RecordStore.
func (s *RecordStore) Search(
	ctx context.Context,
	energy domain.EnergyType,
	from, to time.Time,
) ([]domain.PricedRecord, error) {
	ids, err := s.client.ZRangeByScore(ctx, s.indexKey(energy), &redis.ZRangeBy{
		Min: fmt.Sprintf("%d", from.Unix()),
		Max: fmt.Sprintf("%d", to.Unix()),
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to query index: %w", err)
	}

	records := make([]domain.PricedRecord, 0, len(ids))
	if len(ids) == 0 {
		return records, nil
	}

	values, err := s.client.HMGet(ctx, s.hashKey(energy), ids...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load records: %w", err)
	}

	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			// Indexed but missing from the hash.
			continue
		}
		var rec domain.PricedRecord
		if err := json.Unmarshal([]byte(raw), &rec); err != nil {
			return nil, fmt.Errorf("failed to decode record %s: %w", ids[i], err)
		}
		records = append(records, rec)
	}

	return records, nil
}

func (s *RecordStore) hashKey(energy domain.EnergyType) string {
	return fmt.Sprintf("%s:records:%s", s.prefix, energy)
}

func (s *RecordStore) indexKey(energy domain.EnergyType) string {
	return fmt.Sprintf("%s:records:%s:by_time", s.prefix, energy)
}
