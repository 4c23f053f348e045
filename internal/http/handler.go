package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/multierr"

	"github.com/davidbz/energysim/internal/config"
	"github.com/davidbz/energysim/internal/domain"
	"github.com/davidbz/energysim/internal/observability"
	"github.com/davidbz/energysim/internal/reading"
)

// Accepted layouts for the search range, with and without seconds.
var searchLayouts = []string{"2006-01-02T15:04:05", "2006-01-02T15:04"}

// ErrorResponse is the body of a rejected request.
type ErrorResponse struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// Handler handles HTTP requests.
type Handler struct {
	imports *domain.ImportService
	tariffs map[domain.EnergyType]*domain.TariffCache
	files   config.FilesConfig
	timeout time.Duration
}

// NewHandler creates a new HTTP handler (DI constructor).
func NewHandler(
	imports *domain.ImportService,
	caches []*domain.TariffCache,
	files *config.FilesConfig,
	importCfg *config.ImportConfig,
) *Handler {
	tariffs := make(map[domain.EnergyType]*domain.TariffCache, len(caches))
	for _, c := range caches {
		tariffs[c.Energy()] = c
	}
	return &Handler{
		imports: imports,
		tariffs: tariffs,
		files:   *files,
		timeout: importCfg.Timeout,
	}
}

type importFunc func(ctx context.Context, params domain.ImportParams, body io.Reader) (domain.AccumulationReport, error)

// HandleImportPower prices the power export, from the request body on POST
// and from the configured file on GET.
func (h *Handler) HandleImportPower(w http.ResponseWriter, r *http.Request) {
	h.handleImport(w, r, domain.EnergyPower, h.files.PowerCSV,
		func(ctx context.Context, params domain.ImportParams, body io.Reader) (domain.AccumulationReport, error) {
			return h.imports.ImportPower(ctx, params, reading.PowerReadings(body))
		})
}

// HandleImportGas prices the gas export, from the request body on POST
// and from the configured file on GET.
func (h *Handler) HandleImportGas(w http.ResponseWriter, r *http.Request) {
	h.handleImport(w, r, domain.EnergyGas, h.files.GasCSV,
		func(ctx context.Context, params domain.ImportParams, body io.Reader) (domain.AccumulationReport, error) {
			return h.imports.ImportGas(ctx, params, reading.GasReadings(body))
		})
}

func (h *Handler) handleImport(
	w http.ResponseWriter,
	r *http.Request,
	energy domain.EnergyType,
	path string,
	run importFunc,
) {
	q := r.URL.Query()
	params, err := domain.ParseImportParams(energy, q.Get("source"), q.Get("heating"))
	if err != nil {
		writeParameterError(w, err)
		return
	}

	ctx := observability.WithEnergy(r.Context(), string(params.Energy))
	ctx = observability.WithContract(ctx, string(params.Contract))
	logger := observability.FromContext(ctx)

	var body io.Reader = r.Body
	if r.Method == http.MethodGet {
		f, err := os.Open(path)
		if err != nil {
			logger.Error("failed to open readings", observability.String("path", path), observability.Error(err))
			writeError(w, fmt.Errorf("failed to open readings: %w", err))
			return
		}
		defer f.Close()
		body = f
	}

	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	report, err := run(ctx, params, body)
	if err != nil {
		logger.Error("import failed", observability.Error(err))
		writeError(w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, report)
}

// HandleSearch returns stored records within [gte, lte].
func (h *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var errs error
	energy := domain.EnergyPower
	if raw := q.Get("energy"); raw != "" {
		parsed, err := domain.ParseEnergyType(raw)
		errs = multierr.Append(errs, err)
		energy = parsed
	}
	from, err := parseSearchTime("gte", q.Get("gte"))
	errs = multierr.Append(errs, err)
	to, err := parseSearchTime("lte", q.Get("lte"))
	errs = multierr.Append(errs, err)

	if errs != nil {
		writeParameterError(w, errs)
		return
	}

	ctx := observability.WithEnergy(r.Context(), string(energy))
	records, err := h.imports.Search(ctx, energy, from, to)
	if err != nil {
		observability.FromContext(ctx).Error("search failed", observability.Error(err))
		writeError(w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, records)
}

// HandleInvalidateTariffs drops the cached tariff table of one day so the
// next import fetches it again.
func (h *Handler) HandleInvalidateTariffs(w http.ResponseWriter, r *http.Request) {
	var errs error
	energy, err := domain.ParseEnergyType(chi.URLParam(r, "energy"))
	errs = multierr.Append(errs, err)
	day, err := time.Parse(time.DateOnly, chi.URLParam(r, "day"))
	if err != nil {
		errs = multierr.Append(errs, fmt.Errorf("%w: day %q is not a date", domain.ErrInvalidParameter, chi.URLParam(r, "day")))
	}
	if errs != nil {
		writeParameterError(w, errs)
		return
	}

	cache, ok := h.tariffs[energy]
	if !ok {
		writeError(w, fmt.Errorf("%w: no tariff cache for %s", domain.ErrInvalidParameter, energy))
		return
	}

	if err := cache.Invalidate(r.Context(), day); err != nil {
		observability.FromContext(r.Context()).Error("tariff invalidation failed", observability.Error(err))
		writeError(w, err)
		return
	}
	observability.FromContext(r.Context()).Info("tariffs invalidated",
		observability.String("energy", string(energy)),
		observability.String("day", day.Format(time.DateOnly)))

	w.WriteHeader(http.StatusNoContent)
}

// HandleHealth handles health check requests.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}

func parseSearchTime(name, raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, fmt.Errorf("%w: %s", domain.ErrMissingParameter, name)
	}
	for _, layout := range searchLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %s %q is not a local date-time", domain.ErrInvalidParameter, name, raw)
}

func writeParameterError(w http.ResponseWriter, err error) {
	writeJSON(context.Background(), w, http.StatusBadRequest, ErrorResponse{
		Message: strings.Join(domain.ParameterMessages(err), ", "),
		Status:  http.StatusBadRequest,
	})
}

func writeError(w http.ResponseWriter, err error) {
	_, status := domain.Classify(err)
	if errors.Is(err, context.DeadlineExceeded) {
		status = http.StatusGatewayTimeout
	}
	writeJSON(context.Background(), w, status, ErrorResponse{
		Message: err.Error(),
		Status:  status,
	})
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		// Status is already written; only log.
		observability.FromContext(ctx).Error("failed to encode response", observability.Error(err))
	}
}
