package easyenergy

import "time"

// Config contains EasyEnergy tariff API configuration.
type Config struct {
	BaseURL           string        `env:"EASYENERGY_BASE_URL"           envDefault:"https://mijn.easyenergy.com/nl/api/tariff"`
	PowerEndpoint     string        `env:"EASYENERGY_POWER_ENDPOINT"     envDefault:"getapxtariffs"`
	GasEndpoint       string        `env:"EASYENERGY_GAS_ENDPOINT"       envDefault:"getlebatariffs"`
	Timeout           int           `env:"EASYENERGY_TIMEOUT"            envDefault:"30"`
	MaxAttempts       int           `env:"EASYENERGY_MAX_ATTEMPTS"       envDefault:"5"`
	InitialBackoff    time.Duration `env:"EASYENERGY_INITIAL_BACKOFF"    envDefault:"100ms"`
	BackoffMultiplier float64       `env:"EASYENERGY_BACKOFF_MULTIPLIER" envDefault:"2"`
}
