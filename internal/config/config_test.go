package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/energysim/internal/config"
	"github.com/davidbz/energysim/internal/domain"
)

func TestLoad(t *testing.T) {
	t.Run("should load config with defaults", func(t *testing.T) {
		// Clear environment
		os.Clearenv()

		cfg, err := config.Load()
		require.NoError(t, err)
		require.NotNil(t, cfg)

		// Verify defaults
		require.Equal(t, 8080, cfg.Server.Port)
		require.Equal(t, "info", cfg.Log.Level)
		require.Equal(t, "https://mijn.easyenergy.com/nl/api/tariff", cfg.EasyEnergy.BaseURL)
		require.Equal(t, 5, cfg.EasyEnergy.MaxAttempts)
		require.Equal(t, 100*time.Millisecond, cfg.EasyEnergy.InitialBackoff)
		require.InDelta(t, 2.0, cfg.EasyEnergy.BackoffMultiplier, 0)
		require.InDelta(t, 0.20935, cfg.Contract.FixedPowerT1, 0)
		require.InDelta(t, 0.22145, cfg.Contract.FixedPowerT2, 0)
		require.InDelta(t, 0.99179, cfg.Contract.FixedGas, 0)
		require.InDelta(t, 0.13165, cfg.Contract.TaxPower, 0)
		require.InDelta(t, 4.0, cfg.Contract.SCOP, 0)
		require.Equal(t, "dynamic", cfg.Contract.BatteryUnderlying)
		require.Equal(t, config.ProviderEasyEnergy, cfg.Tariffs.Provider)
		require.Empty(t, cfg.Redis.Addr)
		require.Equal(t, 8, cfg.Import.Concurrency)
		require.Equal(t, 5*time.Minute, cfg.Import.Timeout)
	})

	t.Run("should load config from environment variables", func(t *testing.T) {
		// Set environment variables using t.Setenv for automatic cleanup
		t.Setenv("SERVER_PORT", "9000")
		t.Setenv("EASYENERGY_BASE_URL", "http://localhost:9999")
		t.Setenv("EASYENERGY_MAX_ATTEMPTS", "3")
		t.Setenv("SCOP", "3.5")
		t.Setenv("CONTRACT_BATTERY_UNDERLYING", "fixed")
		t.Setenv("TARIFF_PROVIDER", "static")
		t.Setenv("REDIS_ADDR", "localhost:6379")
		t.Setenv("IMPORT_TIMEOUT", "30s")

		cfg, err := config.Load()
		require.NoError(t, err)

		// Verify loaded values
		require.Equal(t, 9000, cfg.Server.Port)
		require.Equal(t, "http://localhost:9999", cfg.EasyEnergy.BaseURL)
		require.Equal(t, 3, cfg.EasyEnergy.MaxAttempts)
		require.InDelta(t, 3.5, cfg.Contract.SCOP, 0)
		require.Equal(t, config.ProviderStatic, cfg.Tariffs.Provider)
		require.Equal(t, "localhost:6379", cfg.Redis.Addr)
		require.Equal(t, 30*time.Second, cfg.Import.Timeout)

		opts, err := cfg.Contract.Options()
		require.NoError(t, err)
		require.Equal(t, domain.ContractFixed, opts.BatteryUnderlying)
	})

	t.Run("should collect every invalid setting", func(t *testing.T) {
		t.Setenv("SCOP", "0")
		t.Setenv("TARIFF_PROVIDER", "entsoe")
		t.Setenv("IMPORT_CONCURRENCY", "0")

		_, err := config.Load()
		require.Error(t, err)
		require.ErrorIs(t, err, domain.ErrInvalidParameter)
		require.Contains(t, err.Error(), "scop")
		require.Contains(t, err.Error(), "TARIFF_PROVIDER")
		require.Contains(t, err.Error(), "IMPORT_CONCURRENCY")
	})

	t.Run("should reject malformed values", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "eighty")

		_, err := config.Load()
		require.Error(t, err)
	})
}
