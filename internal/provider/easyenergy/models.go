package easyenergy

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/davidbz/energysim/internal/domain"
)

// tariffDTO is one hourly entry as published by the API.
type tariffDTO struct {
	Timestamp    time.Time `json:"Timestamp"`
	SupplierID   int       `json:"SupplierId"`
	TariffUsage  float64   `json:"TariffUsage"`
	TariffReturn float64   `json:"TariffReturn"`
}

// DecodeTariffs reads an API response body into a day table. Timestamps keep
// their published wall clock. Duplicate hours keep the first entry.
func DecodeTariffs(r io.Reader, day time.Time) (domain.TariffTable, error) {
	var dtos []tariffDTO
	if err := json.NewDecoder(r).Decode(&dtos); err != nil {
		return domain.TariffTable{}, fmt.Errorf("failed to decode tariffs: %w", err)
	}

	tariffs := make([]domain.Tariff, 0, len(dtos))
	seen := make(map[time.Time]struct{}, len(dtos))
	for _, dto := range dtos {
		wall := wallClock(dto.Timestamp)
		if _, dup := seen[wall]; dup {
			continue
		}
		seen[wall] = struct{}{}

		tariffs = append(tariffs, domain.Tariff{
			DateTime:    wall,
			UsagePrice:  dto.TariffUsage,
			ReturnPrice: dto.TariffReturn,
		})
	}

	slices.SortFunc(tariffs, func(a, b domain.Tariff) int {
		return a.DateTime.Compare(b.DateTime)
	})

	return domain.TariffTable{Day: domain.DayOf(day), Tariffs: tariffs}, nil
}

func wallClock(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, t.Hour(), 0, 0, 0, time.UTC)
}
