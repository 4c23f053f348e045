package contract_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/davidbz/energysim/internal/contract"
	"github.com/davidbz/energysim/internal/domain"
	"github.com/davidbz/energysim/internal/mocks"
)

func TestBattery_Price(t *testing.T) {
	ctx := context.Background()

	t.Run("should price power at the lowest price of the day before", func(t *testing.T) {
		powerSrc := mocks.NewMockTariffSource(t)
		powerSrc.EXPECT().Get(mock.Anything, at(1, 0)).Return(hourly(1, 0.2, 0.1, -0.0000605, 0.05), nil)

		battery := contract.NewBattery(powerSrc, contract.NewDynamic(testTaxes, 4, powerSrc, mocks.NewMockTariffSource(t)))

		rec, err := battery.Price(ctx, domain.PriceRequest{Consumption: power(at(2, 18), 10, domain.RateT1)})
		require.NoError(t, err)
		require.InDelta(t, 1.315895, rec.Cost, 1e-9)
		require.Equal(t, domain.ContractBattery, rec.Contract)
		require.Equal(t, at(2, 18), rec.DateTime)
		require.Equal(t, "2023-03-02T18:00:00-battery-general", rec.ID)
	})

	t.Run("should hand the lowest-price instant to the underlying contract", func(t *testing.T) {
		powerSrc := mocks.NewMockTariffSource(t)
		powerSrc.EXPECT().Get(mock.Anything, at(1, 0)).Return(hourly(1, 0.3, -0.0001, 0.2), nil)

		underlying := mocks.NewMockPricingStrategy(t)
		underlying.EXPECT().
			Price(mock.Anything, mock.MatchedBy(func(req domain.PriceRequest) bool { return req.PriceAt.Equal(at(1, 1)) })).
			Return(domain.PricedRecord{Contract: domain.ContractDynamic, Energy: domain.EnergyPower, DateTime: at(2, 9)}, nil)

		battery := contract.NewBattery(powerSrc, underlying)

		rec, err := battery.Price(ctx, domain.PriceRequest{Consumption: power(at(2, 9), 1, domain.RateT1)})
		require.NoError(t, err)
		require.Equal(t, domain.ContractBattery, rec.Contract)
	})

	t.Run("should delegate boiler gas without a price override", func(t *testing.T) {
		underlying := mocks.NewMockPricingStrategy(t)
		underlying.EXPECT().
			Price(mock.Anything, mock.MatchedBy(func(req domain.PriceRequest) bool { return req.PriceAt.IsZero() })).
			Return(domain.PricedRecord{Contract: domain.ContractDynamic, Energy: domain.EnergyGas}, nil)

		battery := contract.NewBattery(mocks.NewMockTariffSource(t), underlying)

		rec, err := battery.Price(ctx, domain.PriceRequest{
			Consumption: gas(at(2, 9), 1),
			Heating:     domain.HeatingBoiler,
			PriceAt:     at(1, 1),
		})
		require.NoError(t, err)
		require.Equal(t, domain.ContractBattery, rec.Contract)
	})

	t.Run("should look up the day before for heat-pump gas", func(t *testing.T) {
		powerSrc := mocks.NewMockTariffSource(t)
		powerSrc.EXPECT().Get(mock.Anything, at(1, 0)).Return(hourly(1, 0.3, -0.0001), nil)

		battery := contract.NewBattery(powerSrc, contract.NewDynamic(testTaxes, 4, powerSrc, mocks.NewMockTariffSource(t)))

		rec, err := battery.Price(ctx, domain.PriceRequest{Consumption: gas(at(2, 15), 10), Heating: domain.HeatingHeatPump})
		require.NoError(t, err)
		require.Equal(t, domain.UsageHeating, rec.Usage)
		require.InDelta(t, (-0.0001+0.13165)*22.05, rec.Cost, 1e-9)
	})

	t.Run("should fail on an empty prior-day table", func(t *testing.T) {
		powerSrc := mocks.NewMockTariffSource(t)
		powerSrc.EXPECT().Get(mock.Anything, at(1, 0)).Return(domain.TariffTable{Day: at(1, 0)}, nil)

		battery := contract.NewBattery(powerSrc, mocks.NewMockPricingStrategy(t))

		_, err := battery.Price(ctx, domain.PriceRequest{Consumption: power(at(2, 9), 1, domain.RateT1)})
		require.ErrorIs(t, err, domain.ErrMinimumPrice)
	})

	t.Run("should fail on an unavailable prior-day table", func(t *testing.T) {
		powerSrc := mocks.NewMockTariffSource(t)
		powerSrc.EXPECT().Get(mock.Anything, at(1, 0)).Return(domain.TariffTable{}, domain.ErrTransport)

		battery := contract.NewBattery(powerSrc, mocks.NewMockPricingStrategy(t))

		_, err := battery.Price(ctx, domain.PriceRequest{Consumption: power(at(2, 9), 1, domain.RateT1)})
		require.ErrorIs(t, err, domain.ErrMinimumPrice)
		require.ErrorIs(t, err, domain.ErrTransport)

		kind, _ := domain.Classify(err)
		require.Equal(t, domain.KindMinimumPrice, kind)
	})

	t.Run("should cross month boundaries for the day before", func(t *testing.T) {
		first := time.Date(2023, time.April, 1, 8, 0, 0, 0, time.UTC)
		lastOfMarch := time.Date(2023, time.March, 31, 0, 0, 0, 0, time.UTC)

		powerSrc := mocks.NewMockTariffSource(t)
		powerSrc.EXPECT().Get(mock.Anything, lastOfMarch).Return(hourly(31, 0.1), nil)

		battery := contract.NewBattery(powerSrc, contract.NewFixed(testPrices, 4))

		rec, err := battery.Price(ctx, domain.PriceRequest{Consumption: power(first, 1, domain.RateT2)})
		require.NoError(t, err)
		require.InDelta(t, 0.22145, rec.Cost, 1e-9)
	})
}
