package domain

import (
	"fmt"
	"time"
)

// GasToKWhFactor is the energy content of one cubic metre of gas in kWh.
const GasToKWhFactor = 8.82

// SCOP is the seasonal coefficient of performance of a heat pump.
type SCOP float64

// NewSCOP validates a SCOP value.
func NewSCOP(v float64) (SCOP, error) {
	if v <= 0 {
		return 0, fmt.Errorf("%w: scop must be positive, got %v", ErrInvalidParameter, v)
	}
	return SCOP(v), nil
}

// GasToPowerEquivalent converts gas to the power a heat pump needs for the same heat.
func GasToPowerEquivalent(gas float64, scop SCOP) float64 {
	return gas * GasToKWhFactor / float64(scop)
}

// HeatPumpRate is the power register a heat pump's consumption at t is billed on.
// Hours 7 through 22 bill on T2.
func HeatPumpRate(t time.Time) Rate {
	if h := t.Hour(); h >= 7 && h <= 22 {
		return RateT2
	}
	return RateT1
}

// OffPeakRate is the fixed-contract register for t: T2 from 22:00 through 06:59.
func OffPeakRate(t time.Time) Rate {
	if h := t.Hour(); h >= 22 || h <= 6 {
		return RateT2
	}
	return RateT1
}

// HeatPumpConsumption converts a gas consumption into the equivalent power consumption
// billed on the register rate picks for its hour.
func HeatPumpConsumption(gas Consumption, scop SCOP, rate func(time.Time) Rate) Consumption {
	return Consumption{
		Energy:   EnergyPower,
		DateTime: gas.DateTime,
		Amount:   GasToPowerEquivalent(gas.Amount, scop),
		Rate:     rate(gas.DateTime),
	}
}
