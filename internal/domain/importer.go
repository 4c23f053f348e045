package domain

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/davidbz/energysim/internal/observability"
	"github.com/davidbz/energysim/internal/observability/metrics"
)

const defaultImportConcurrency = 8

// ImportService runs reading streams through pricing, storage and accumulation.
type ImportService struct {
	strategies  StrategyRegistry
	store       RecordStore
	concurrency int
	metrics     *metrics.Collector
}

// NewImportService creates a new import service (DI constructor).
func NewImportService(
	strategies StrategyRegistry,
	store RecordStore,
	concurrency int,
	collector *metrics.Collector,
) *ImportService {
	if concurrency <= 0 {
		concurrency = defaultImportConcurrency
	}
	return &ImportService{
		strategies:  strategies,
		store:       store,
		concurrency: concurrency,
		metrics:     collector,
	}
}

// ImportPower prices a power reading stream.
func (s *ImportService) ImportPower(
	ctx context.Context,
	params ImportParams,
	readings iter.Seq2[PowerReading, error],
) (AccumulationReport, error) {
	if params.Energy != EnergyPower {
		return AccumulationReport{}, fmt.Errorf("%w: power import with energy %q", ErrInvalidParameter, params.Energy)
	}
	params.Heating = HeatingNone
	return s.run(ctx, params, Deltas(readings, PowerDelta))
}

// ImportGas prices a gas reading stream.
func (s *ImportService) ImportGas(
	ctx context.Context,
	params ImportParams,
	readings iter.Seq2[GasReading, error],
) (AccumulationReport, error) {
	if params.Energy != EnergyGas {
		return AccumulationReport{}, fmt.Errorf("%w: gas import with energy %q", ErrInvalidParameter, params.Energy)
	}
	if params.Heating != HeatingBoiler && params.Heating != HeatingHeatPump {
		return AccumulationReport{}, fmt.Errorf("%w: heating", ErrMissingParameter)
	}
	return s.run(ctx, params, Deltas(readings, GasDelta))
}

// Search returns stored records of energy between from and to inclusive.
func (s *ImportService) Search(ctx context.Context, energy EnergyType, from, to time.Time) ([]PricedRecord, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: lte must not be before gte", ErrInvalidParameter)
	}

	records, err := s.store.Search(ctx, energy, from, to)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to search records: %w", ErrStorage, err)
	}
	return records, nil
}

func (s *ImportService) run(
	ctx context.Context,
	params ImportParams,
	consumptions iter.Seq2[Consumption, error],
) (AccumulationReport, error) {
	ctx = observability.WithEnergy(ctx, string(params.Energy))
	ctx = observability.WithContract(ctx, string(params.Contract))
	logger := observability.FromContext(ctx)

	strategy, err := s.strategies.Get(ctx, params.Contract)
	if err != nil {
		return AccumulationReport{}, fmt.Errorf("strategy lookup failed: %w", err)
	}

	// Deltas are sequential; pricing and storage run concurrently and land by index.
	type item struct {
		consumption Consumption
		err         error
	}
	var items []item
	for c, err := range consumptions {
		items = append(items, item{consumption: c, err: err})
	}

	results := make([]PriceResult, len(items))
	start := time.Now()

	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for i, it := range items {
		if it.err != nil {
			results[i] = PriceResult{Err: it.err}
			continue
		}
		g.Go(func() error {
			results[i] = s.priceAndSave(ctx, strategy, PriceRequest{
				Consumption: it.consumption,
				Heating:     params.Heating,
			})
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return AccumulationReport{}, fmt.Errorf("import aborted: %w", err)
	}

	var acc MonthlyAccumulator
	for _, r := range results {
		if r.Err != nil {
			kind, _ := Classify(r.Err)
			s.metrics.RecordFailed(string(params.Energy), kind)
			logger.Debug("record failed", observability.String("kind", kind), observability.Error(r.Err))
		}
		acc = acc.Add(r)
	}
	report := acc.Finalize()

	s.metrics.ImportCompleted(string(params.Energy), string(params.Contract))
	logger.Info("import completed",
		observability.Int("records", len(results)),
		observability.Int("buckets", len(report.Buckets)),
		observability.Int("errors", len(report.Errors)),
		observability.Duration("duration", time.Since(start)))

	return report, nil
}

func (s *ImportService) priceAndSave(ctx context.Context, strategy PricingStrategy, req PriceRequest) PriceResult {
	record, err := strategy.Price(ctx, req)
	if err != nil {
		return PriceResult{Err: err}
	}

	if err := s.store.Save(ctx, record); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return PriceResult{Err: err}
		}
		return PriceResult{Err: fmt.Errorf("%w: failed to save record %s: %w", ErrStorage, record.ID, err)}
	}

	s.metrics.RecordPriced(string(record.Energy), string(record.Contract))
	return PriceResult{Record: record}
}
