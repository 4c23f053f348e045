package domain

import (
	"fmt"
	"iter"
)

// DeltaFunc derives the consumption between two consecutive readings.
// ok is false when the pair produces no event.
type DeltaFunc[R any] func(prev, cur R) (c Consumption, ok bool, err error)

// DeltaState is the fold state of a reading stream: the previous reading, if any.
type DeltaState[R any] struct {
	prev    R
	hasPrev bool
}

// Step advances the state with cur. The previous reading is always replaced,
// so the returned state is valid even when an error is returned.
func (s DeltaState[R]) Step(cur R, delta DeltaFunc[R]) (DeltaState[R], Consumption, bool, error) {
	next := DeltaState[R]{prev: cur, hasPrev: true}
	if !s.hasPrev {
		return next, Consumption{}, false, nil
	}

	c, ok, err := delta(s.prev, cur)
	return next, c, ok, err
}

// Deltas folds a reading stream into its consumption stream. Errors from the
// input pass through without touching the state.
func Deltas[R any](readings iter.Seq2[R, error], delta DeltaFunc[R]) iter.Seq2[Consumption, error] {
	return func(yield func(Consumption, error) bool) {
		var state DeltaState[R]
		for r, err := range readings {
			if err != nil {
				if !yield(Consumption{}, err) {
					return
				}
				continue
			}

			var (
				c  Consumption
				ok bool
			)
			state, c, ok, err = state.Step(r, delta)
			if err != nil {
				if !yield(Consumption{}, err) {
					return
				}
				continue
			}
			if ok && !yield(c, nil) {
				return
			}
		}
	}
}

// DeltaProcessor is the imperative form of the fold, one per stream.
type DeltaProcessor[R any] struct {
	state DeltaState[R]
	delta DeltaFunc[R]
}

// NewDeltaProcessor creates a processor with no baseline.
func NewDeltaProcessor[R any](delta DeltaFunc[R]) *DeltaProcessor[R] {
	return &DeltaProcessor[R]{delta: delta}
}

// Process stores cur as the new baseline and returns the consumption since the previous one.
func (p *DeltaProcessor[R]) Process(cur R) (Consumption, bool, error) {
	var (
		c   Consumption
		ok  bool
		err error
	)
	p.state, c, ok, err = p.state.Step(cur, p.delta)
	return c, ok, err
}

// NewPowerDeltaProcessor creates a processor for power readings.
func NewPowerDeltaProcessor() *DeltaProcessor[PowerReading] {
	return NewDeltaProcessor(PowerDelta)
}

// NewGasDeltaProcessor creates a processor for gas readings.
func NewGasDeltaProcessor() *DeltaProcessor[GasReading] {
	return NewDeltaProcessor(GasDelta)
}

// PowerDelta emits the increase of the dual-rate registers. When both increased
// the sum is reported under T1.
func PowerDelta(prev, cur PowerReading) (Consumption, bool, error) {
	dT1 := cur.T1 - prev.T1
	dT2 := cur.T2 - prev.T2

	c := Consumption{Energy: EnergyPower, DateTime: cur.DateTime}
	switch {
	case dT1 > 0 && dT2 > 0:
		c.Amount = dT1 + dT2
		c.Rate = RateT1
	case dT1 > 0:
		c.Amount = dT1
		c.Rate = RateT1
	case dT2 > 0:
		c.Amount = dT2
		c.Rate = RateT2
	default:
		return Consumption{}, false, nil
	}
	return c, true, nil
}

// GasDelta emits the meter increase. A decreasing meter is reported and becomes the new baseline.
func GasDelta(prev, cur GasReading) (Consumption, bool, error) {
	amount := cur.MeterReading - prev.MeterReading
	if amount < 0 {
		return Consumption{}, false, fmt.Errorf("%w: gas meter decreased from %v to %v at %s",
			ErrInvalidReading, prev.MeterReading, cur.MeterReading, cur.DateTime.Format("2006-01-02 15:04"))
	}

	return Consumption{
		Energy:   EnergyGas,
		DateTime: cur.DateTime,
		Amount:   amount,
	}, true, nil
}
