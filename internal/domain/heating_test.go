package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/energysim/internal/domain"
)

func TestNewSCOP(t *testing.T) {
	t.Run("should accept a positive value", func(t *testing.T) {
		scop, err := domain.NewSCOP(4)
		require.NoError(t, err)
		require.InDelta(t, 4.0, float64(scop), 0)
	})

	t.Run("should reject zero and negative values", func(t *testing.T) {
		for _, v := range []float64{0, -1} {
			_, err := domain.NewSCOP(v)
			require.ErrorIs(t, err, domain.ErrInvalidParameter)
		}
	})
}

func TestGasToPowerEquivalent(t *testing.T) {
	t.Run("should convert gas to heat-pump power", func(t *testing.T) {
		require.InDelta(t, 22.05, domain.GasToPowerEquivalent(10, 4), 1e-9)
	})
}

func TestHeatPumpRate(t *testing.T) {
	t.Run("should bill hours 7 through 22 on T2", func(t *testing.T) {
		require.Equal(t, domain.RateT1, domain.HeatPumpRate(at(6)))
		require.Equal(t, domain.RateT2, domain.HeatPumpRate(at(7)))
		require.Equal(t, domain.RateT2, domain.HeatPumpRate(at(15)))
		require.Equal(t, domain.RateT2, domain.HeatPumpRate(at(22)))
		require.Equal(t, domain.RateT1, domain.HeatPumpRate(at(23)))
	})
}

func TestOffPeakRate(t *testing.T) {
	t.Run("should bill hours 22 through 6 on T2", func(t *testing.T) {
		require.Equal(t, domain.RateT2, domain.OffPeakRate(at(0)))
		require.Equal(t, domain.RateT2, domain.OffPeakRate(at(6)))
		require.Equal(t, domain.RateT1, domain.OffPeakRate(at(7)))
		require.Equal(t, domain.RateT1, domain.OffPeakRate(at(21)))
		require.Equal(t, domain.RateT2, domain.OffPeakRate(at(22)))
	})
}

func TestHeatPumpConsumption(t *testing.T) {
	t.Run("should turn gas into power billed on the chosen register", func(t *testing.T) {
		gas := domain.Consumption{Energy: domain.EnergyGas, DateTime: at(15), Amount: 10}

		c := domain.HeatPumpConsumption(gas, 4, domain.HeatPumpRate)
		require.Equal(t, domain.EnergyPower, c.Energy)
		require.Equal(t, domain.RateT2, c.Rate)
		require.Equal(t, at(15), c.DateTime)
		require.InDelta(t, 22.05, c.Amount, 1e-9)
	})
}
