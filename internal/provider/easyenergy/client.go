package easyenergy

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/davidbz/energysim/internal/domain"
	"github.com/davidbz/energysim/internal/observability"
	"github.com/davidbz/energysim/internal/observability/metrics"
)

const midnightSuffix = "T00:00:00.000Z"

// Client fetches one energy's hourly tariffs from the EasyEnergy API.
type Client struct {
	energy     domain.EnergyType
	endpoint   string
	baseURL    string
	httpClient *http.Client
	config     Config
	metrics    *metrics.Collector
}

// NewClient creates a client for energy (DI constructor).
func NewClient(config Config, energy domain.EnergyType, collector *metrics.Collector) *Client {
	endpoint := config.PowerEndpoint
	if energy == domain.EnergyGas {
		endpoint = config.GasEndpoint
	}

	return &Client{
		energy:   energy,
		endpoint: endpoint,
		baseURL:  config.BaseURL,
		httpClient: &http.Client{
			Timeout: time.Duration(config.Timeout) * time.Second,
		},
		config:  config,
		metrics: collector,
	}
}

// Fetch implements domain.TariffFetcher. Connection failures, timeouts and
// gateway errors are retried with exponential backoff; anything else fails at once.
func (c *Client) Fetch(ctx context.Context, day time.Time) (domain.TariffTable, error) {
	day = domain.DayOf(day)
	logger := observability.FromContext(ctx)

	attempt := 0
	operation := func() (domain.TariffTable, error) {
		attempt++
		start := time.Now()

		table, err := c.fetchOnce(ctx, day)
		switch {
		case err == nil:
			c.metrics.FetchAttempt(string(c.energy), "ok", time.Since(start).Seconds())
		case isRetryable(ctx, err):
			c.metrics.FetchAttempt(string(c.energy), "retry", time.Since(start).Seconds())
		default:
			c.metrics.FetchAttempt(string(c.energy), "fail", time.Since(start).Seconds())
			return domain.TariffTable{}, backoff.Permanent(err)
		}
		return table, err
	}

	notify := func(err error, wait time.Duration) {
		logger.Warn("tariff fetch failed, retrying",
			observability.String("energy", string(c.energy)),
			observability.String("day", day.Format(time.DateOnly)),
			observability.Int("attempt", attempt),
			observability.Duration("wait", wait),
			observability.Error(err))
	}

	table, err := backoff.RetryNotifyWithData(operation, c.backOff(ctx), notify)
	if err != nil {
		return domain.TariffTable{}, fmt.Errorf("%w: %s tariffs for %s after %d attempts: %w",
			domain.ErrTransport, c.energy, day.Format(time.DateOnly), attempt, err)
	}

	logger.Debug("tariffs fetched",
		observability.String("energy", string(c.energy)),
		observability.String("day", day.Format(time.DateOnly)),
		observability.Int("tariffs", len(table.Tariffs)))

	return table, nil
}

func (c *Client) backOff(ctx context.Context) backoff.BackOff {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = c.config.InitialBackoff
	exp.Multiplier = c.config.BackoffMultiplier
	exp.RandomizationFactor = 0
	exp.MaxElapsedTime = 0

	maxAttempts := c.config.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return backoff.WithContext(backoff.WithMaxRetries(exp, uint64(maxAttempts-1)), ctx)
}

func (c *Client) fetchOnce(ctx context.Context, day time.Time) (domain.TariffTable, error) {
	query := url.Values{}
	query.Set("startTimestamp", day.Format(time.DateOnly)+midnightSuffix)
	query.Set("endTimestamp", day.AddDate(0, 0, 1).Format(time.DateOnly)+midnightSuffix)
	query.Set("includeVat", "true")

	httpReq, err := http.NewRequestWithContext(
		ctx,
		http.MethodGet,
		c.baseURL+"/"+c.endpoint+"?"+query.Encode(),
		nil,
	)
	if err != nil {
		return domain.TariffTable{}, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return domain.TariffTable{}, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return domain.TariffTable{}, &statusError{code: resp.StatusCode, body: string(body)}
	}

	return DecodeTariffs(resp.Body, day)
}

type statusError struct {
	code int
	body string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("API returned status %d: %s", e.code, e.body)
}

func isRetryable(ctx context.Context, err error) bool {
	if ctx.Err() != nil || errors.Is(err, context.Canceled) {
		return false
	}

	var se *statusError
	if errors.As(err, &se) {
		switch se.code {
		case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			return true
		default:
			return false
		}
	}

	var urlErr *url.Error
	return errors.As(err, &urlErr)
}
