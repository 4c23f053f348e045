// Package reading parses meter reading exports.
//
// The format is CSV with a header row. Power rows are "datetime,t1,t2" and gas
// rows are "datetime,meterReading"; datetimes use the layout yyyy-MM-dd HH:mm
// and are interpreted as UTC wall-clock time.
package reading

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"
	"time"

	"github.com/davidbz/energysim/internal/domain"
)

// DateTimeLayout is the timestamp layout of reading exports.
const DateTimeLayout = "2006-01-02 15:04"

// PowerReadings streams the power readings in r. Malformed rows are yielded as
// errors wrapping domain.ErrInvalidReading and do not stop the stream.
func PowerReadings(r io.Reader) iter.Seq2[domain.PowerReading, error] {
	return rows(r, 3, func(fields []string) (domain.PowerReading, error) {
		dt, err := parseDateTime(fields[0])
		if err != nil {
			return domain.PowerReading{}, err
		}
		t1, err := parseFloat("t1", fields[1])
		if err != nil {
			return domain.PowerReading{}, err
		}
		t2, err := parseFloat("t2", fields[2])
		if err != nil {
			return domain.PowerReading{}, err
		}
		return domain.PowerReading{DateTime: dt, T1: t1, T2: t2}, nil
	})
}

// GasReadings streams the gas readings in r.
func GasReadings(r io.Reader) iter.Seq2[domain.GasReading, error] {
	return rows(r, 2, func(fields []string) (domain.GasReading, error) {
		dt, err := parseDateTime(fields[0])
		if err != nil {
			return domain.GasReading{}, err
		}
		meter, err := parseFloat("meterReading", fields[1])
		if err != nil {
			return domain.GasReading{}, err
		}
		return domain.GasReading{DateTime: dt, MeterReading: meter}, nil
	})
}

func rows[R any](r io.Reader, minFields int, parse func([]string) (R, error)) iter.Seq2[R, error] {
	return func(yield func(R, error) bool) {
		cr := csv.NewReader(r)
		cr.FieldsPerRecord = -1
		cr.TrimLeadingSpace = true
		cr.ReuseRecord = true

		header := true
		for {
			fields, err := cr.Read()
			if errors.Is(err, io.EOF) {
				return
			}

			var zero R
			if err != nil {
				var parseErr *csv.ParseError
				if !errors.As(err, &parseErr) {
					yield(zero, fmt.Errorf("%w: failed to read csv: %w", domain.ErrInvalidReading, err))
					return
				}
				if !yield(zero, fmt.Errorf("%w: %w", domain.ErrInvalidReading, err)) {
					return
				}
				continue
			}

			if header {
				header = false
				continue
			}

			line, _ := cr.FieldPos(0)
			if len(fields) < minFields {
				if !yield(zero, fmt.Errorf("%w: line %d: expected %d fields, got %d",
					domain.ErrInvalidReading, line, minFields, len(fields))) {
					return
				}
				continue
			}

			rec, err := parse(fields)
			if err != nil {
				err = fmt.Errorf("%w: line %d: %w", domain.ErrInvalidReading, line, err)
			}
			if !yield(rec, err) {
				return
			}
		}
	}
}

func parseDateTime(s string) (time.Time, error) {
	dt, err := time.Parse(DateTimeLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid datetime %q", s)
	}
	return dt, nil
}

func parseFloat(field, s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", field, s)
	}
	return v, nil
}
