package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/energysim/internal/domain"
	"github.com/davidbz/energysim/internal/store/memory"
)

func rec(hour int, contract domain.ContractType, cost float64) domain.PricedRecord {
	c := domain.Consumption{
		Energy:   domain.EnergyPower,
		DateTime: time.Date(2023, 5, 1, hour, 0, 0, 0, time.UTC),
		Amount:   1,
		Rate:     domain.RateT1,
	}
	return domain.NewPricedRecord(c, contract, domain.UsageGeneral, cost)
}

func TestRecordStore(t *testing.T) {
	ctx := context.Background()

	t.Run("should return records in range ordered by time", func(t *testing.T) {
		store := memory.NewRecordStore()
		for _, h := range []int{5, 1, 3, 9} {
			require.NoError(t, store.Save(ctx, rec(h, domain.ContractFixed, 1)))
		}

		got, err := store.Search(ctx, domain.EnergyPower,
			time.Date(2023, 5, 1, 1, 0, 0, 0, time.UTC),
			time.Date(2023, 5, 1, 5, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		require.Len(t, got, 3)
		require.Equal(t, 1, got[0].DateTime.Hour())
		require.Equal(t, 5, got[2].DateTime.Hour())
	})

	t.Run("should overwrite a record with the same id", func(t *testing.T) {
		store := memory.NewRecordStore()
		require.NoError(t, store.Save(ctx, rec(1, domain.ContractFixed, 1)))
		require.NoError(t, store.Save(ctx, rec(1, domain.ContractFixed, 2)))
		require.NoError(t, store.Save(ctx, rec(1, domain.ContractDynamic, 3)))

		got, err := store.Search(ctx, domain.EnergyPower, time.Time{}, time.Now())
		require.NoError(t, err)
		require.Len(t, got, 2)
		require.Equal(t, domain.ContractDynamic, got[0].Contract)
		require.InDelta(t, 2.0, got[1].Cost, 0)
	})

	t.Run("should keep energies apart", func(t *testing.T) {
		store := memory.NewRecordStore()
		require.NoError(t, store.Save(ctx, rec(1, domain.ContractFixed, 1)))

		got, err := store.Search(ctx, domain.EnergyGas, time.Time{}, time.Now())
		require.NoError(t, err)
		require.Empty(t, got)
	})
}
