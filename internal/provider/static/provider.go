// Package static provides a tariff fetcher that reads EasyEnergy-format JSON
// files from a directory instead of calling the API. It is meant for offline
// runs and reproducible imports.
package static

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/davidbz/energysim/internal/domain"
	"github.com/davidbz/energysim/internal/observability"
	"github.com/davidbz/energysim/internal/provider/easyenergy"
)

// Provider implements domain.TariffFetcher over files named <energy>-<yyyy-mm-dd>.json.
type Provider struct {
	energy domain.EnergyType
	dir    string
}

// NewProvider creates a static provider for energy rooted at dir.
func NewProvider(dir string, energy domain.EnergyType) *Provider {
	return &Provider{energy: energy, dir: dir}
}

// Fetch returns the table stored for day. A missing file is a day without tariffs.
func (p *Provider) Fetch(ctx context.Context, day time.Time) (domain.TariffTable, error) {
	day = domain.DayOf(day)
	path := p.Path(day)

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		observability.FromContext(ctx).Debug("no static tariffs for day",
			observability.String("energy", string(p.energy)),
			observability.String("path", path))
		return domain.TariffTable{Day: day, Tariffs: []domain.Tariff{}}, nil
	}
	if err != nil {
		return domain.TariffTable{}, fmt.Errorf("%w: failed to open %s: %w", domain.ErrTransport, path, err)
	}
	defer f.Close()

	table, err := easyenergy.DecodeTariffs(f, day)
	if err != nil {
		return domain.TariffTable{}, fmt.Errorf("%w: %s: %w", domain.ErrTransport, path, err)
	}
	return table, nil
}

// Path returns the file holding the tariffs of day.
func (p *Provider) Path(day time.Time) string {
	return filepath.Join(p.dir, fmt.Sprintf("%s-%s.json", p.energy, day.Format(time.DateOnly)))
}
