package domain

import (
	"context"
	"time"
)

// TariffFetcher loads the hourly tariff table of one day from a tariff source.
type TariffFetcher interface {
	// Fetch returns the table for the calendar day containing day.
	// A day without published tariffs yields an empty table, not an error.
	Fetch(ctx context.Context, day time.Time) (TariffTable, error)
}

// TariffForgetter is implemented by fetchers that keep their own copy of a day.
type TariffForgetter interface {
	Forget(ctx context.Context, day time.Time) error
}

// TariffSource provides cached tariff tables per day.
type TariffSource interface {
	Get(ctx context.Context, day time.Time) (TariffTable, error)
}

// PricingStrategy prices one consumption under a contract.
type PricingStrategy interface {
	// Price returns the priced record or a domain error.
	Price(ctx context.Context, req PriceRequest) (PricedRecord, error)

	// Contract returns the contract this strategy implements.
	Contract() ContractType
}

// StrategyRegistry resolves pricing strategies by contract.
type StrategyRegistry interface {
	// Register adds a strategy to the registry.
	Register(ctx context.Context, strategy PricingStrategy) error

	// Get retrieves the strategy for a contract.
	Get(ctx context.Context, contract ContractType) (PricingStrategy, error)

	// List returns all registered contracts.
	List(ctx context.Context) ([]ContractType, error)
}

// RecordStore persists priced records and searches them by time range.
type RecordStore interface {
	Save(ctx context.Context, record PricedRecord) error

	// Search returns the records of energy with from <= DateTime <= to, ordered by time.
	Search(ctx context.Context, energy EnergyType, from, to time.Time) ([]PricedRecord, error)
}

// PriceRequest carries one consumption to a pricing strategy.
type PriceRequest struct {
	Consumption Consumption
	Heating     HeatingType

	// PriceAt overrides the instant whose tariff applies. Zero means Consumption.DateTime.
	PriceAt time.Time
}

// TariffTime returns the instant whose tariff applies.
func (r PriceRequest) TariffTime() time.Time {
	if r.PriceAt.IsZero() {
		return r.Consumption.DateTime
	}
	return r.PriceAt
}
