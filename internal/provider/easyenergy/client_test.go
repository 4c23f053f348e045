package easyenergy_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidbz/energysim/internal/domain"
	"github.com/davidbz/energysim/internal/observability/metrics"
	"github.com/davidbz/energysim/internal/provider/easyenergy"
)

const body = `[
  {"Timestamp":"2023-01-02T00:00:00+00:00","SupplierId":0,"TariffUsage":0.1,"TariffReturn":0.09},
  {"Timestamp":"2023-01-02T02:00:00+00:00","SupplierId":0,"TariffUsage":-0.0001,"TariffReturn":-0.0002},
  {"Timestamp":"2023-01-02T01:00:00+00:00","SupplierId":0,"TariffUsage":0.2,"TariffReturn":0.19}
]`

var day = time.Date(2023, time.January, 2, 0, 0, 0, 0, time.UTC)

func testConfig(baseURL string) easyenergy.Config {
	return easyenergy.Config{
		BaseURL:           baseURL,
		PowerEndpoint:     "getapxtariffs",
		GasEndpoint:       "getlebatariffs",
		Timeout:           5,
		MaxAttempts:       5,
		InitialBackoff:    time.Millisecond,
		BackoffMultiplier: 2,
	}
}

func TestClient_Fetch(t *testing.T) {
	t.Run("should request the day window and decode tariffs", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/getapxtariffs", r.URL.Path)
			assert.Equal(t, "2023-01-02T00:00:00.000Z", r.URL.Query().Get("startTimestamp"))
			assert.Equal(t, "2023-01-03T00:00:00.000Z", r.URL.Query().Get("endTimestamp"))
			assert.Equal(t, "true", r.URL.Query().Get("includeVat"))
			_, _ = w.Write([]byte(body))
		}))
		defer server.Close()

		client := easyenergy.NewClient(testConfig(server.URL), domain.EnergyPower, nil)

		table, err := client.Fetch(context.Background(), day.Add(15*time.Hour))
		require.NoError(t, err)
		require.Equal(t, day, table.Day)
		require.Len(t, table.Tariffs, 3)
		require.Equal(t, day.Add(time.Hour), table.Tariffs[1].DateTime)
		require.InDelta(t, 0.2, table.Tariffs[1].UsagePrice, 0)
		require.InDelta(t, 0.19, table.Tariffs[1].ReturnPrice, 0)
	})

	t.Run("should use the gas endpoint for gas", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/getlebatariffs", r.URL.Path)
			_, _ = w.Write([]byte(`[]`))
		}))
		defer server.Close()

		client := easyenergy.NewClient(testConfig(server.URL), domain.EnergyGas, nil)

		table, err := client.Fetch(context.Background(), day)
		require.NoError(t, err)
		require.Empty(t, table.Tariffs)
	})

	t.Run("should retry gateway errors until success", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			if calls.Add(1) < 3 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			_, _ = w.Write([]byte(body))
		}))
		defer server.Close()

		m := metrics.New(prometheus.NewRegistry())
		client := easyenergy.NewClient(testConfig(server.URL), domain.EnergyPower, m)

		table, err := client.Fetch(context.Background(), day)
		require.NoError(t, err)
		require.Len(t, table.Tariffs, 3)
		require.Equal(t, int32(3), calls.Load())
		require.InDelta(t, 2, testutil.ToFloat64(m.FetchAttempts.WithLabelValues("power", "retry")), 0)
		require.InDelta(t, 1, testutil.ToFloat64(m.FetchAttempts.WithLabelValues("power", "ok")), 0)
	})

	t.Run("should give up after the configured attempts", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		client := easyenergy.NewClient(testConfig(server.URL), domain.EnergyPower, nil)

		_, err := client.Fetch(context.Background(), day)
		require.ErrorIs(t, err, domain.ErrTransport)
		require.Equal(t, int32(5), calls.Load())
	})

	t.Run("should not retry client errors", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusBadRequest)
		}))
		defer server.Close()

		client := easyenergy.NewClient(testConfig(server.URL), domain.EnergyPower, nil)

		_, err := client.Fetch(context.Background(), day)
		require.ErrorIs(t, err, domain.ErrTransport)
		require.True(t, strings.Contains(err.Error(), "status 400"))
		require.Equal(t, int32(1), calls.Load())
	})

	t.Run("should not retry malformed bodies", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			calls.Add(1)
			_, _ = w.Write([]byte(`{"not":"a list"}`))
		}))
		defer server.Close()

		client := easyenergy.NewClient(testConfig(server.URL), domain.EnergyPower, nil)

		_, err := client.Fetch(context.Background(), day)
		require.ErrorIs(t, err, domain.ErrTransport)
		require.Equal(t, int32(1), calls.Load())
	})

	t.Run("should retry connection failures", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		server.Close()

		cfg := testConfig(server.URL)
		cfg.MaxAttempts = 2
		m := metrics.New(prometheus.NewRegistry())
		client := easyenergy.NewClient(cfg, domain.EnergyPower, m)

		_, err := client.Fetch(context.Background(), day)
		require.ErrorIs(t, err, domain.ErrTransport)
		require.InDelta(t, 2, testutil.ToFloat64(m.FetchAttempts.WithLabelValues("power", "retry")), 0)
	})
}

func TestDecodeTariffs(t *testing.T) {
	t.Run("should keep the published wall clock", func(t *testing.T) {
		in := `[{"Timestamp":"2023-01-02T05:00:00+01:00","TariffUsage":0.3,"TariffReturn":0.2}]`

		table, err := easyenergy.DecodeTariffs(strings.NewReader(in), day)
		require.NoError(t, err)
		require.Equal(t, day.Add(5*time.Hour), table.Tariffs[0].DateTime)
	})

	t.Run("should drop duplicate hours", func(t *testing.T) {
		in := `[
		  {"Timestamp":"2023-01-02T05:00:00Z","TariffUsage":0.3},
		  {"Timestamp":"2023-01-02T05:00:00Z","TariffUsage":0.4}
		]`

		table, err := easyenergy.DecodeTariffs(strings.NewReader(in), day)
		require.NoError(t, err)
		require.Len(t, table.Tariffs, 1)
		require.InDelta(t, 0.3, table.Tariffs[0].UsagePrice, 0)
	})
}
