package contract

import (
	"context"
	"fmt"
	"time"

	"github.com/davidbz/energysim/internal/domain"
)

// Battery assumes energy drawn on any day was stored at the lowest power price
// of the day before, and prices it through an underlying contract at that hour.
type Battery struct {
	power      domain.TariffSource
	underlying domain.PricingStrategy
}

// NewBattery creates a battery contract on top of underlying.
func NewBattery(power domain.TariffSource, underlying domain.PricingStrategy) *Battery {
	return &Battery{power: power, underlying: underlying}
}

// Contract returns the battery contract type.
func (b *Battery) Contract() domain.ContractType {
	return domain.ContractBattery
}

// Price implements domain.PricingStrategy. Gas heated by a boiler gets no battery effect.
func (b *Battery) Price(ctx context.Context, req domain.PriceRequest) (domain.PricedRecord, error) {
	c := req.Consumption

	if c.Energy == domain.EnergyPower || req.Heating == domain.HeatingHeatPump {
		priceAt, err := b.lowestPriceDayBefore(ctx, c.DateTime)
		if err != nil {
			return domain.PricedRecord{}, err
		}
		req.PriceAt = priceAt
	} else {
		req.PriceAt = time.Time{}
	}

	rec, err := b.underlying.Price(ctx, req)
	if err != nil {
		return domain.PricedRecord{}, err
	}
	return rec.WithContract(domain.ContractBattery), nil
}

func (b *Battery) lowestPriceDayBefore(ctx context.Context, dt time.Time) (time.Time, error) {
	dayBefore := domain.DayOf(dt).AddDate(0, 0, -1)

	table, err := b.power.Get(ctx, dayBefore)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w for %s: %w", domain.ErrMinimumPrice, dt.Format("2006-01-02 15:04"), err)
	}

	lowest, ok := table.Lowest()
	if !ok {
		return time.Time{}, fmt.Errorf("%w for %s: no tariffs on %s",
			domain.ErrMinimumPrice, dt.Format("2006-01-02 15:04"), dayBefore.Format(time.DateOnly))
	}
	return lowest.DateTime, nil
}
