package contract

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/davidbz/energysim/internal/domain"
)

// Registry implements the StrategyRegistry interface.
type Registry struct {
	mu         sync.RWMutex
	strategies map[domain.ContractType]domain.PricingStrategy
}

// NewRegistry creates a new strategy registry.
func NewRegistry() *Registry {
	return &Registry{
		mu:         sync.RWMutex{},
		strategies: make(map[domain.ContractType]domain.PricingStrategy),
	}
}

// Register adds a strategy to the registry.
func (r *Registry) Register(_ context.Context, strategy domain.PricingStrategy) error {
	if strategy == nil {
		return errors.New("strategy cannot be nil")
	}

	contract := strategy.Contract()
	if contract == "" {
		return errors.New("strategy contract cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.strategies[contract]; exists {
		return fmt.Errorf("strategy %s already registered", contract)
	}

	r.strategies[contract] = strategy
	return nil
}

// Get retrieves the strategy for a contract.
func (r *Registry) Get(_ context.Context, contract domain.ContractType) (domain.PricingStrategy, error) {
	if contract == "" {
		return nil, fmt.Errorf("%w: source", domain.ErrMissingParameter)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	strategy, exists := r.strategies[contract]
	if !exists {
		return nil, fmt.Errorf("%w: contract %s not registered", domain.ErrInvalidParameter, contract)
	}

	return strategy, nil
}

// List returns all registered contracts in name order.
func (r *Registry) List(_ context.Context) ([]domain.ContractType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	contracts := make([]domain.ContractType, 0, len(r.strategies))
	for contract := range r.strategies {
		contracts = append(contracts, contract)
	}
	slices.Sort(contracts)

	return contracts, nil
}

// Options configure the standard contract set.
type Options struct {
	Fixed             FixedPrices
	Taxes             Taxes
	SCOP              domain.SCOP
	BatteryUnderlying domain.ContractType
}

// NewStandardRegistry registers fixed, dynamic and battery over the given tariff sources.
func NewStandardRegistry(ctx context.Context, opts Options, power, gas domain.TariffSource) (*Registry, error) {
	fixed := NewFixed(opts.Fixed, opts.SCOP)
	dynamic := NewDynamic(opts.Taxes, opts.SCOP, power, gas)

	var underlying domain.PricingStrategy
	switch opts.BatteryUnderlying {
	case domain.ContractDynamic, "":
		underlying = dynamic
	case domain.ContractFixed:
		underlying = fixed
	default:
		return nil, fmt.Errorf("%w: battery cannot run on %q", domain.ErrInvalidParameter, opts.BatteryUnderlying)
	}

	reg := NewRegistry()
	for _, s := range []domain.PricingStrategy{fixed, dynamic, NewBattery(power, underlying)} {
		if err := reg.Register(ctx, s); err != nil {
			return nil, fmt.Errorf("failed to register %s: %w", s.Contract(), err)
		}
	}
	return reg, nil
}
