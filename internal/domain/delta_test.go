package domain_test

import (
	"errors"
	"iter"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/energysim/internal/domain"
)

func at(hour int) time.Time {
	return time.Date(2023, time.January, 2, hour, 0, 0, 0, time.UTC)
}

func TestDeltaProcessor_Power(t *testing.T) {
	t.Run("should emit nothing for the first reading", func(t *testing.T) {
		p := domain.NewPowerDeltaProcessor()

		_, ok, err := p.Process(domain.PowerReading{DateTime: at(0), T1: 100, T2: 200})
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("should tag a T1-only increase with T1", func(t *testing.T) {
		p := domain.NewPowerDeltaProcessor()
		_, _, _ = p.Process(domain.PowerReading{DateTime: at(0), T1: 100, T2: 200})

		c, ok, err := p.Process(domain.PowerReading{DateTime: at(1), T1: 103, T2: 200})
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, domain.EnergyPower, c.Energy)
		require.Equal(t, domain.RateT1, c.Rate)
		require.InDelta(t, 3.0, c.Amount, 1e-9)
		require.Equal(t, at(1), c.DateTime)
	})

	t.Run("should tag a T2-only increase with T2", func(t *testing.T) {
		p := domain.NewPowerDeltaProcessor()
		_, _, _ = p.Process(domain.PowerReading{DateTime: at(0), T1: 100, T2: 200})

		c, ok, err := p.Process(domain.PowerReading{DateTime: at(1), T1: 100, T2: 204})
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, domain.RateT2, c.Rate)
		require.InDelta(t, 4.0, c.Amount, 1e-9)
	})

	t.Run("should sum both registers under T1 when both increase", func(t *testing.T) {
		p := domain.NewPowerDeltaProcessor()
		_, _, _ = p.Process(domain.PowerReading{DateTime: at(0), T1: 100, T2: 200})

		c, ok, err := p.Process(domain.PowerReading{DateTime: at(1), T1: 102, T2: 205})
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, domain.RateT1, c.Rate)
		require.InDelta(t, 7.0, c.Amount, 1e-9)
	})

	t.Run("should emit nothing when neither register moved", func(t *testing.T) {
		p := domain.NewPowerDeltaProcessor()
		_, _, _ = p.Process(domain.PowerReading{DateTime: at(0), T1: 100, T2: 200})

		_, ok, err := p.Process(domain.PowerReading{DateTime: at(1), T1: 100, T2: 200})
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("should replace the baseline even when nothing is emitted", func(t *testing.T) {
		p := domain.NewPowerDeltaProcessor()
		_, _, _ = p.Process(domain.PowerReading{DateTime: at(0), T1: 100, T2: 200})
		_, _, _ = p.Process(domain.PowerReading{DateTime: at(1), T1: 90, T2: 200})

		c, ok, err := p.Process(domain.PowerReading{DateTime: at(2), T1: 95, T2: 200})
		require.NoError(t, err)
		require.True(t, ok)
		require.InDelta(t, 5.0, c.Amount, 1e-9)
	})
}

func TestDeltaProcessor_Gas(t *testing.T) {
	t.Run("should emit the meter difference", func(t *testing.T) {
		p := domain.NewGasDeltaProcessor()
		_, ok, _ := p.Process(domain.GasReading{DateTime: at(0), MeterReading: 1000})
		require.False(t, ok)

		c, ok, err := p.Process(domain.GasReading{DateTime: at(1), MeterReading: 1010})
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, domain.EnergyGas, c.Energy)
		require.InDelta(t, 10.0, c.Amount, 1e-9)
	})

	t.Run("should emit a zero consumption when the meter is unchanged", func(t *testing.T) {
		p := domain.NewGasDeltaProcessor()
		_, _, _ = p.Process(domain.GasReading{DateTime: at(0), MeterReading: 1000})

		c, ok, err := p.Process(domain.GasReading{DateTime: at(1), MeterReading: 1000})
		require.NoError(t, err)
		require.True(t, ok)
		require.Zero(t, c.Amount)
	})

	t.Run("should reject a decreasing meter and rebase on it", func(t *testing.T) {
		p := domain.NewGasDeltaProcessor()
		_, _, _ = p.Process(domain.GasReading{DateTime: at(0), MeterReading: 1000})

		_, ok, err := p.Process(domain.GasReading{DateTime: at(1), MeterReading: 5})
		require.ErrorIs(t, err, domain.ErrInvalidReading)
		require.False(t, ok)

		c, ok, err := p.Process(domain.GasReading{DateTime: at(2), MeterReading: 8})
		require.NoError(t, err)
		require.True(t, ok)
		require.InDelta(t, 3.0, c.Amount, 1e-9)
	})
}

func seq[R any](items ...any) iter.Seq2[R, error] {
	return func(yield func(R, error) bool) {
		for _, it := range items {
			var (
				r   R
				err error
			)
			switch v := it.(type) {
			case error:
				err = v
			case R:
				r = v
			}
			if !yield(r, err) {
				return
			}
		}
	}
}

func TestDeltas(t *testing.T) {
	t.Run("should fold a stream into consumptions", func(t *testing.T) {
		readings := seq[domain.GasReading](
			domain.GasReading{DateTime: at(0), MeterReading: 1},
			domain.GasReading{DateTime: at(1), MeterReading: 3},
			domain.GasReading{DateTime: at(2), MeterReading: 6},
		)

		var amounts []float64
		for c, err := range domain.Deltas(readings, domain.GasDelta) {
			require.NoError(t, err)
			amounts = append(amounts, c.Amount)
		}
		require.Equal(t, []float64{2, 3}, amounts)
	})

	t.Run("should pass input errors through without touching the baseline", func(t *testing.T) {
		parseErr := errors.New("bad row")
		readings := seq[domain.GasReading](
			domain.GasReading{DateTime: at(0), MeterReading: 1},
			parseErr,
			domain.GasReading{DateTime: at(2), MeterReading: 4},
		)

		var (
			amounts []float64
			errs    []error
		)
		for c, err := range domain.Deltas(readings, domain.GasDelta) {
			if err != nil {
				errs = append(errs, err)
				continue
			}
			amounts = append(amounts, c.Amount)
		}
		require.Equal(t, []error{parseErr}, errs)
		require.Equal(t, []float64{3}, amounts)
	})

	t.Run("should stop when the consumer stops", func(t *testing.T) {
		readings := seq[domain.GasReading](
			domain.GasReading{DateTime: at(0), MeterReading: 1},
			domain.GasReading{DateTime: at(1), MeterReading: 2},
			domain.GasReading{DateTime: at(2), MeterReading: 3},
		)

		count := 0
		for range domain.Deltas(readings, domain.GasDelta) {
			count++
			break
		}
		require.Equal(t, 1, count)
	})
}
