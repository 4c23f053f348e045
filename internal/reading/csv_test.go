package reading_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/energysim/internal/domain"
	"github.com/davidbz/energysim/internal/reading"
)

func TestPowerReadings(t *testing.T) {
	t.Run("should skip the header and parse rows", func(t *testing.T) {
		in := "dateTime,t1,t2\n2023-01-02 00:00,100,200\n2023-01-02 01:00,101.5,200\n"

		var got []domain.PowerReading
		for r, err := range reading.PowerReadings(strings.NewReader(in)) {
			require.NoError(t, err)
			got = append(got, r)
		}

		require.Equal(t, []domain.PowerReading{
			{DateTime: time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC), T1: 100, T2: 200},
			{DateTime: time.Date(2023, 1, 2, 1, 0, 0, 0, time.UTC), T1: 101.5, T2: 200},
		}, got)
	})

	t.Run("should report malformed rows and keep going", func(t *testing.T) {
		in := "dateTime,t1,t2\n2023-01-02 00:00,100,200\n02/01/2023,1,2\n2023-01-02 02:00,abc,2\n2023-01-02 03:00,1\n2023-01-02 04:00,102,200\n"

		var (
			got  int
			errs []error
		)
		for _, err := range reading.PowerReadings(strings.NewReader(in)) {
			if err != nil {
				errs = append(errs, err)
				continue
			}
			got++
		}

		require.Equal(t, 2, got)
		require.Len(t, errs, 3)
		for _, err := range errs {
			require.ErrorIs(t, err, domain.ErrInvalidReading)
		}
		require.Contains(t, errs[0].Error(), "line 3")
		require.Contains(t, errs[1].Error(), "invalid t1")
		require.Contains(t, errs[2].Error(), "expected 3 fields")
	})

	t.Run("should yield nothing for an empty input", func(t *testing.T) {
		for range reading.PowerReadings(strings.NewReader("")) {
			t.Fatal("unexpected element")
		}
	})
}

func TestGasReadings(t *testing.T) {
	t.Run("should parse gas rows", func(t *testing.T) {
		in := "dateTime,meterReading\n2023-01-02 00:00, 1000.25\n"

		var got []domain.GasReading
		for r, err := range reading.GasReadings(strings.NewReader(in)) {
			require.NoError(t, err)
			got = append(got, r)
		}

		require.Equal(t, []domain.GasReading{
			{DateTime: time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC), MeterReading: 1000.25},
		}, got)
	})

	t.Run("should stop reading on a broken source", func(t *testing.T) {
		var errs []error
		for _, err := range reading.GasReadings(failingReader{}) {
			errs = append(errs, err)
		}

		require.Len(t, errs, 1)
		require.ErrorIs(t, errs[0], domain.ErrInvalidReading)
	})
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk on fire")
}
