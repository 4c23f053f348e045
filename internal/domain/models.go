package domain

import (
	"fmt"
	"time"
)

// EnergyType identifies the metered energy source.
type EnergyType string

const (
	EnergyPower EnergyType = "power"
	EnergyGas   EnergyType = "gas"
)

// Rate identifies the dual-tariff power register (T1/T2).
type Rate string

const (
	RateT1 Rate = "T1"
	RateT2 Rate = "T2"
)

// ContractType selects the pricing strategy.
type ContractType string

const (
	ContractFixed   ContractType = "fixed"
	ContractDynamic ContractType = "dynamic"
	ContractBattery ContractType = "battery"
)

// HeatingType determines how gas consumption is priced.
type HeatingType string

const (
	HeatingNone     HeatingType = "none"
	HeatingBoiler   HeatingType = "boiler"
	HeatingHeatPump HeatingType = "heatpump"
)

// PowerUsage distinguishes regular power use from heat-pump heating.
type PowerUsage string

const (
	UsageGeneral PowerUsage = "general"
	UsageHeating PowerUsage = "heating"
)

// PowerReading is one cumulative reading of both power registers.
type PowerReading struct {
	DateTime time.Time
	T1       float64
	T2       float64
}

// GasReading is one cumulative gas meter reading.
type GasReading struct {
	DateTime     time.Time
	MeterReading float64
}

// Consumption is the amount consumed since the previous reading of the same stream.
type Consumption struct {
	Energy   EnergyType
	DateTime time.Time
	Amount   float64
	Rate     Rate // power only
}

// Tariff is the market price effective for one hour.
type Tariff struct {
	DateTime    time.Time `json:"date_time"`
	UsagePrice  float64   `json:"usage_price"`
	ReturnPrice float64   `json:"return_price"`
}

// TariffTable holds the hourly tariffs of one calendar day.
type TariffTable struct {
	Day     time.Time `json:"day"`
	Tariffs []Tariff  `json:"tariffs"`
}

// At returns the tariff of the hour containing dt.
func (t TariffTable) At(dt time.Time) (Tariff, bool) {
	for _, tariff := range t.Tariffs {
		if sameHour(tariff.DateTime, dt) {
			return tariff, true
		}
	}
	return Tariff{}, false
}

// Lowest returns the tariff with the lowest usage price. Ties keep the earliest hour.
func (t TariffTable) Lowest() (Tariff, bool) {
	if len(t.Tariffs) == 0 {
		return Tariff{}, false
	}

	lowest := t.Tariffs[0]
	for _, tariff := range t.Tariffs[1:] {
		if tariff.UsagePrice < lowest.UsagePrice {
			lowest = tariff
		}
	}
	return lowest, true
}

// PricedRecord is a consumption with its computed cost.
type PricedRecord struct {
	ID       string       `json:"id"`
	DateTime time.Time    `json:"date_time"`
	Energy   EnergyType   `json:"energy"`
	Amount   float64      `json:"amount"`
	Cost     float64      `json:"cost"`
	Rate     Rate         `json:"rate,omitempty"`
	Contract ContractType `json:"contract"`
	Usage    PowerUsage   `json:"usage,omitempty"`
}

// NewPricedRecord builds a record for a consumption priced under contract.
func NewPricedRecord(c Consumption, contract ContractType, usage PowerUsage, cost float64) PricedRecord {
	rec := PricedRecord{
		DateTime: c.DateTime,
		Energy:   c.Energy,
		Amount:   c.Amount,
		Cost:     cost,
		Rate:     c.Rate,
		Contract: contract,
	}
	if c.Energy == EnergyPower {
		rec.Usage = usage
	}
	rec.ID = rec.key()
	return rec
}

// WithContract returns a copy attributed to another contract.
func (r PricedRecord) WithContract(contract ContractType) PricedRecord {
	r.Contract = contract
	r.ID = r.key()
	return r
}

func (r PricedRecord) key() string {
	kind := string(r.Energy)
	if r.Usage != "" {
		kind = string(r.Usage)
	}
	return fmt.Sprintf("%s-%s-%s", r.DateTime.Format("2006-01-02T15:04:05"), r.Contract, kind)
}

// MonthBucket totals the records of one calendar month.
type MonthBucket struct {
	Month            int     `json:"month"` // 1-12
	Year             int     `json:"year"`
	TotalConsumption float64 `json:"total_consumption"`
	TotalCost        float64 `json:"total_cost"`
}

// ErrorRecord is a per-record failure as reported to the caller.
type ErrorRecord struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// AccumulationReport is the outcome of one import.
type AccumulationReport struct {
	Buckets []MonthBucket `json:"accumulated_consumptions"`
	Errors  []ErrorRecord `json:"errors"`
}

// DayOf truncates t to midnight of its calendar day, keeping its wall clock.
func DayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func sameHour(a, b time.Time) bool {
	return a.Year() == b.Year() &&
		a.Month() == b.Month() &&
		a.Day() == b.Day() &&
		a.Hour() == b.Hour()
}
