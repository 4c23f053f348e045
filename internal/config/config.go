package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/dig"
	"go.uber.org/multierr"

	"github.com/davidbz/energysim/internal/contract"
	"github.com/davidbz/energysim/internal/domain"
	"github.com/davidbz/energysim/internal/provider/easyenergy"
)

// Tariff providers.
const (
	ProviderEasyEnergy = "easyenergy"
	ProviderStatic     = "static"
)

// Config represents the service configuration.
type Config struct {
	Server     ServerConfig
	CORS       CORSConfig
	Log        LogConfig
	EasyEnergy easyenergy.Config
	Contract   ContractConfig
	Files      FilesConfig
	Redis      RedisConfig
	Tariffs    TariffsConfig
	Import     ImportConfig
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port         int `env:"SERVER_PORT"          envDefault:"8080"`
	ReadTimeout  int `env:"SERVER_READ_TIMEOUT"  envDefault:"30"`
	WriteTimeout int `env:"SERVER_WRITE_TIMEOUT" envDefault:"300"`
}

// CORSConfig contains CORS policy settings.
type CORSConfig struct {
	AllowedOrigins   []string `env:"CORS_ALLOWED_ORIGINS"   envSeparator:"," envDefault:"*"`
	AllowedMethods   []string `env:"CORS_ALLOWED_METHODS"   envSeparator:"," envDefault:"GET,POST,DELETE,OPTIONS"`
	AllowedHeaders   []string `env:"CORS_ALLOWED_HEADERS"   envSeparator:"," envDefault:"Content-Type,Authorization"`
	AllowCredentials bool     `env:"CORS_ALLOW_CREDENTIALS"                  envDefault:"false"`
	MaxAge           int      `env:"CORS_MAX_AGE"                            envDefault:"86400"`
}

// LogConfig contains logger settings.
type LogConfig struct {
	Level       string `env:"LOG_LEVEL"       envDefault:"info"`
	Development bool   `env:"LOG_DEVELOPMENT" envDefault:"false"`
}

// ContractConfig contains contract prices, taxes and heat-pump efficiency.
type ContractConfig struct {
	FixedPowerT1      float64 `env:"CONTRACT_FIXED_POWER_T1"     envDefault:"0.20935"`
	FixedPowerT2      float64 `env:"CONTRACT_FIXED_POWER_T2"     envDefault:"0.22145"`
	FixedGas          float64 `env:"CONTRACT_FIXED_GAS"          envDefault:"0.99179"`
	TaxPower          float64 `env:"TAX_POWER"                   envDefault:"0.13165"`
	TaxGas            float64 `env:"TAX_GAS"                     envDefault:"0.70544"`
	SCOP              float64 `env:"SCOP"                        envDefault:"4.0"`
	BatteryUnderlying string  `env:"CONTRACT_BATTERY_UNDERLYING" envDefault:"dynamic"`
}

// FilesConfig points at the reading exports served by GET imports.
type FilesConfig struct {
	PowerCSV string `env:"FILES_POWER_CSV" envDefault:"data/power.csv"`
	GasCSV   string `env:"FILES_GAS_CSV"   envDefault:"data/gas.csv"`
}

// RedisConfig contains Redis connection settings. An empty address keeps everything in memory.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB"       envDefault:"0"`
	Prefix   string `env:"REDIS_PREFIX"   envDefault:"energysim"`
}

// TariffsConfig selects where tariffs come from.
type TariffsConfig struct {
	Provider  string `env:"TARIFF_PROVIDER"   envDefault:"easyenergy"`
	StaticDir string `env:"TARIFF_STATIC_DIR" envDefault:"data/tariffs"`
}

// ImportConfig bounds a single import.
type ImportConfig struct {
	Concurrency int           `env:"IMPORT_CONCURRENCY" envDefault:"8"`
	Timeout     time.Duration `env:"IMPORT_TIMEOUT"     envDefault:"5m"`
}

// DepConfig is used for dependency injection with dig.
type DepConfig struct {
	dig.Out
	*ServerConfig
	*CORSConfig
	*LogConfig
	*easyenergy.Config
	*ContractConfig
	*FilesConfig
	*RedisConfig
	*TariffsConfig
	*ImportConfig
}

// Load loads environment files and parses configuration.
func Load() (*Config, error) {
	for _, file := range []string{".env"} {
		_ = godotenv.Load(file)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs error

	if _, err := domain.NewSCOP(c.Contract.SCOP); err != nil {
		errs = multierr.Append(errs, err)
	}

	switch domain.ContractType(c.Contract.BatteryUnderlying) {
	case domain.ContractDynamic, domain.ContractFixed:
	default:
		errs = multierr.Append(errs, fmt.Errorf("%w: CONTRACT_BATTERY_UNDERLYING must be dynamic or fixed, got %q",
			domain.ErrInvalidParameter, c.Contract.BatteryUnderlying))
	}

	switch c.Tariffs.Provider {
	case ProviderEasyEnergy, ProviderStatic:
	default:
		errs = multierr.Append(errs, fmt.Errorf("%w: TARIFF_PROVIDER must be %s or %s, got %q",
			domain.ErrInvalidParameter, ProviderEasyEnergy, ProviderStatic, c.Tariffs.Provider))
	}

	if c.Import.Concurrency <= 0 {
		errs = multierr.Append(errs, fmt.Errorf("%w: IMPORT_CONCURRENCY must be positive", domain.ErrInvalidParameter))
	}

	if c.EasyEnergy.MaxAttempts <= 0 {
		errs = multierr.Append(errs, fmt.Errorf("%w: EASYENERGY_MAX_ATTEMPTS must be positive", domain.ErrInvalidParameter))
	}

	if errs != nil {
		return errors.Join(errors.New("invalid configuration"), errs)
	}
	return nil
}

// Options converts the contract settings into registry options.
func (c *ContractConfig) Options() (contract.Options, error) {
	scop, err := domain.NewSCOP(c.SCOP)
	if err != nil {
		return contract.Options{}, err
	}

	return contract.Options{
		Fixed: contract.FixedPrices{
			PowerT1: c.FixedPowerT1,
			PowerT2: c.FixedPowerT2,
			Gas:     c.FixedGas,
		},
		Taxes: contract.Taxes{
			Power: c.TaxPower,
			Gas:   c.TaxGas,
		},
		SCOP:              scop,
		BatteryUnderlying: domain.ContractType(c.BatteryUnderlying),
	}, nil
}

// ParseDependenciesConfig returns pointers to sub-configs for dependency injection.
func ParseDependenciesConfig(cfg *Config) DepConfig {
	return DepConfig{
		dig.Out{},
		&cfg.Server,
		&cfg.CORS,
		&cfg.Log,
		&cfg.EasyEnergy,
		&cfg.Contract,
		&cfg.Files,
		&cfg.Redis,
		&cfg.Tariffs,
		&cfg.Import,
	}
}
