// Package memory provides an in-process record store used when no Redis is configured.
package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/davidbz/energysim/internal/domain"
)

// RecordStore implements domain.RecordStore in memory.
type RecordStore struct {
	mu      sync.RWMutex
	records map[domain.EnergyType]map[string]domain.PricedRecord
}

// NewRecordStore creates an empty store.
func NewRecordStore() *RecordStore {
	return &RecordStore{
		records: make(map[domain.EnergyType]map[string]domain.PricedRecord),
	}
}

// Save stores record, replacing any record with the same ID.
func (s *RecordStore) Save(_ context.Context, record domain.PricedRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	byID, ok := s.records[record.Energy]
	if !ok {
		byID = make(map[string]domain.PricedRecord)
		s.records[record.Energy] = byID
	}
	byID[record.ID] = record
	return nil
}

// Search returns the records of energy within [from, to] ordered by time, then ID.
func (s *RecordStore) Search(_ context.Context, energy domain.EnergyType, from, to time.Time) ([]domain.PricedRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.PricedRecord, 0)
	for _, rec := range s.records[energy] {
		if rec.DateTime.Before(from) || rec.DateTime.After(to) {
			continue
		}
		out = append(out, rec)
	}

	slices.SortFunc(out, func(a, b domain.PricedRecord) int {
		if c := a.DateTime.Compare(b.DateTime); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out, nil
}
