package contract

import (
	"context"
	"fmt"
	"time"

	"github.com/davidbz/energysim/internal/domain"
)

// Taxes are the per-unit energy taxes added to market prices.
type Taxes struct {
	Power float64
	Gas   float64
}

// Dynamic prices consumption at the hourly market price plus tax.
type Dynamic struct {
	taxes Taxes
	scop  domain.SCOP
	power domain.TariffSource
	gas   domain.TariffSource
}

// NewDynamic creates a dynamic contract over the power and gas tariff sources.
func NewDynamic(taxes Taxes, scop domain.SCOP, power, gas domain.TariffSource) *Dynamic {
	return &Dynamic{
		taxes: taxes,
		scop:  scop,
		power: power,
		gas:   gas,
	}
}

// Contract returns the dynamic contract type.
func (d *Dynamic) Contract() domain.ContractType {
	return domain.ContractDynamic
}

// Price implements domain.PricingStrategy.
func (d *Dynamic) Price(ctx context.Context, req domain.PriceRequest) (domain.PricedRecord, error) {
	c := req.Consumption
	priceAt := req.TariffTime()

	switch {
	case c.Energy == domain.EnergyPower:
		tariff, err := tariffAt(ctx, d.power, domain.EnergyPower, priceAt)
		if err != nil {
			return domain.PricedRecord{}, err
		}
		cost := (tariff.UsagePrice + d.taxes.Power) * c.Amount
		return domain.NewPricedRecord(c, domain.ContractDynamic, domain.UsageGeneral, cost), nil

	case c.Energy == domain.EnergyGas && req.Heating == domain.HeatingHeatPump:
		tariff, err := tariffAt(ctx, d.power, domain.EnergyPower, priceAt)
		if err != nil {
			return domain.PricedRecord{}, err
		}
		converted := domain.HeatPumpConsumption(c, d.scop, domain.HeatPumpRate)
		cost := (tariff.UsagePrice + d.taxes.Power) * converted.Amount
		return domain.NewPricedRecord(converted, domain.ContractDynamic, domain.UsageHeating, cost), nil

	case c.Energy == domain.EnergyGas:
		tariff, err := tariffAt(ctx, d.gas, domain.EnergyGas, priceAt)
		if err != nil {
			return domain.PricedRecord{}, err
		}
		cost := (tariff.UsagePrice + d.taxes.Gas) * c.Amount
		return domain.NewPricedRecord(c, domain.ContractDynamic, domain.UsageGeneral, cost), nil

	default:
		return domain.PricedRecord{}, fmt.Errorf("%w: unknown energy %q", domain.ErrInvalidParameter, c.Energy)
	}
}

func tariffAt(ctx context.Context, src domain.TariffSource, energy domain.EnergyType, at time.Time) (domain.Tariff, error) {
	table, err := src.Get(ctx, domain.DayOf(at))
	if err != nil {
		return domain.Tariff{}, fmt.Errorf("failed to load %s tariffs for %s: %w", energy, at.Format(time.DateOnly), err)
	}

	tariff, ok := table.At(at)
	if !ok {
		return domain.Tariff{}, fmt.Errorf("%w: no %s tariff for %s", domain.ErrMissingTariff, energy, at.Format("2006-01-02 15:04"))
	}
	return tariff, nil
}
