package contract

import (
	"context"
	"fmt"

	"github.com/davidbz/energysim/internal/domain"
)

// FixedPrices are the constant prices of a fixed contract.
type FixedPrices struct {
	PowerT1 float64
	PowerT2 float64
	Gas     float64
}

// Fixed prices consumption at constant per-register and gas prices.
type Fixed struct {
	prices FixedPrices
	scop   domain.SCOP
}

// NewFixed creates a fixed contract.
func NewFixed(prices FixedPrices, scop domain.SCOP) *Fixed {
	return &Fixed{prices: prices, scop: scop}
}

// Contract returns the fixed contract type.
func (f *Fixed) Contract() domain.ContractType {
	return domain.ContractFixed
}

// Price implements domain.PricingStrategy. PriceAt is irrelevant for constant prices.
func (f *Fixed) Price(_ context.Context, req domain.PriceRequest) (domain.PricedRecord, error) {
	c := req.Consumption

	switch c.Energy {
	case domain.EnergyPower:
		price, err := f.powerPrice(c.Rate)
		if err != nil {
			return domain.PricedRecord{}, err
		}
		return domain.NewPricedRecord(c, domain.ContractFixed, domain.UsageGeneral, price*c.Amount), nil

	case domain.EnergyGas:
		if req.Heating == domain.HeatingHeatPump {
			converted := domain.HeatPumpConsumption(c, f.scop, domain.OffPeakRate)
			price, err := f.powerPrice(converted.Rate)
			if err != nil {
				return domain.PricedRecord{}, err
			}
			return domain.NewPricedRecord(converted, domain.ContractFixed, domain.UsageHeating, price*converted.Amount), nil
		}
		return domain.NewPricedRecord(c, domain.ContractFixed, domain.UsageGeneral, f.prices.Gas*c.Amount), nil

	default:
		return domain.PricedRecord{}, fmt.Errorf("%w: unknown energy %q", domain.ErrInvalidParameter, c.Energy)
	}
}

func (f *Fixed) powerPrice(rate domain.Rate) (float64, error) {
	switch rate {
	case domain.RateT1:
		return f.prices.PowerT1, nil
	case domain.RateT2:
		return f.prices.PowerT2, nil
	default:
		return 0, fmt.Errorf("%w: unknown rate %q", domain.ErrInvalidParameter, rate)
	}
}
