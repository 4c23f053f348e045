package domain

import (
	"iter"
	"slices"

	"github.com/shopspring/decimal"
)

// PriceResult is one element of the ordered pricing stream: a record or its failure.
type PriceResult struct {
	Record PricedRecord
	Err    error
}

type openBucket struct {
	year        int
	month       int
	consumption decimal.Decimal
	cost        decimal.Decimal
}

func (b openBucket) close() MonthBucket {
	return MonthBucket{
		Month:            b.month,
		Year:             b.year,
		TotalConsumption: b.consumption.InexactFloat64(),
		TotalCost:        b.cost.InexactFloat64(),
	}
}

// MonthlyAccumulator folds priced records into monthly buckets. Every method
// returns the next state; the fold owns it, so an earlier state must not be
// reused once it has been advanced.
type MonthlyAccumulator struct {
	closed []MonthBucket
	errors []ErrorRecord
	open   *openBucket
}

// Add folds one result.
func (a MonthlyAccumulator) Add(r PriceResult) MonthlyAccumulator {
	if r.Err != nil {
		return a.AddError(r.Err)
	}
	return a.AddRecord(r.Record)
}

// AddError appends a failure to the error list.
func (a MonthlyAccumulator) AddError(err error) MonthlyAccumulator {
	a.errors = append(a.errors, NewErrorRecord(err))
	return a
}

// AddRecord adds a record to the open bucket, rolling over when its month differs.
func (a MonthlyAccumulator) AddRecord(rec PricedRecord) MonthlyAccumulator {
	year, month := rec.DateTime.Year(), int(rec.DateTime.Month())

	amount := decimal.NewFromFloat(rec.Amount)
	cost := decimal.NewFromFloat(rec.Cost)

	if a.open != nil && a.open.year == year && a.open.month == month {
		next := *a.open
		next.consumption = next.consumption.Add(amount)
		next.cost = next.cost.Add(cost)
		a.open = &next
		return a
	}

	if a.open != nil {
		a.closed = append(a.closed, a.open.close())
	}
	a.open = &openBucket{year: year, month: month, consumption: amount, cost: cost}
	return a
}

// Finalize closes the open bucket and returns the report.
func (a MonthlyAccumulator) Finalize() AccumulationReport {
	buckets := slices.Clone(a.closed)
	if a.open != nil {
		buckets = append(buckets, a.open.close())
	}
	if buckets == nil {
		buckets = []MonthBucket{}
	}

	errs := slices.Clone(a.errors)
	if errs == nil {
		errs = []ErrorRecord{}
	}

	return AccumulationReport{Buckets: buckets, Errors: errs}
}

// Accumulate folds an ordered result stream into a report.
func Accumulate(results iter.Seq[PriceResult]) AccumulationReport {
	var acc MonthlyAccumulator
	for r := range results {
		acc = acc.Add(r)
	}
	return acc.Finalize()
}
