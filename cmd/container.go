package main

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/dig"
	"go.uber.org/zap"

	rediscache "github.com/davidbz/energysim/internal/cache/redis"
	"github.com/davidbz/energysim/internal/config"
	"github.com/davidbz/energysim/internal/contract"
	"github.com/davidbz/energysim/internal/domain"
	"github.com/davidbz/energysim/internal/http"
	"github.com/davidbz/energysim/internal/http/middleware"
	"github.com/davidbz/energysim/internal/observability"
	"github.com/davidbz/energysim/internal/observability/metrics"
	"github.com/davidbz/energysim/internal/provider/easyenergy"
	"github.com/davidbz/energysim/internal/provider/static"
	"github.com/davidbz/energysim/internal/store/memory"
	redisstore "github.com/davidbz/energysim/internal/store/redis"
)

const redisPingTimeout = 5 * time.Second

// tariffCaches exposes one cache per energy to the container.
type tariffCaches struct {
	dig.Out

	Power *domain.TariffCache   `name:"power"`
	Gas   *domain.TariffCache   `name:"gas"`
	All   []*domain.TariffCache
}

type registryParams struct {
	dig.In

	Contract *config.ContractConfig
	Power    *domain.TariffCache `name:"power"`
	Gas      *domain.TariffCache `name:"gas"`
}

func buildContainer() (*dig.Container, error) {
	container := dig.New()

	providers := []struct {
		name string
		fn   any
	}{
		{"config", config.Load},
		{"config dependencies", config.ParseDependenciesConfig},
		{"logger", newLogger},
		{"metrics", newMetrics},
		{"redis client", newRedisClient},
		{"tariff caches", newTariffCaches},
		{"strategy registry", newStrategyRegistry},
		{"record store", newRecordStore},
		{"import service", newImportService},
		{"middleware chain", middleware.BuildMiddlewareChain},
		{"HTTP handler", http.NewHandler},
		{"HTTP server", http.NewServer},
	}

	for _, p := range providers {
		if err := container.Provide(p.fn); err != nil {
			return nil, fmt.Errorf("failed to provide %s: %w", p.name, err)
		}
	}

	// The global logger must exist before anything logs.
	if err := container.Invoke(func(*zap.Logger) {}); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", dig.RootCause(err))
	}

	return container, nil
}

func newLogger(cfg *config.LogConfig) (*zap.Logger, error) {
	return observability.InitLogger(observability.LoggerConfig{
		Level:       cfg.Level,
		Development: cfg.Development,
	})
}

func newMetrics() *metrics.Collector {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return metrics.New(reg)
}

// newRedisClient returns nil when no address is configured.
func newRedisClient(cfg *config.RedisConfig) (*goredis.Client, error) {
	if cfg.Addr == "" {
		return nil, nil //nolint:nilnil // Redis is optional
	}

	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to reach redis at %s: %w", cfg.Addr, err)
	}

	observability.FromContext(ctx).Info("connected to redis", observability.String("addr", cfg.Addr))
	return client, nil
}

func newTariffCaches(
	tariffs *config.TariffsConfig,
	easy *easyenergy.Config,
	redisCfg *config.RedisConfig,
	client *goredis.Client,
	collector *metrics.Collector,
) tariffCaches {
	build := func(energy domain.EnergyType) *domain.TariffCache {
		var fetcher domain.TariffFetcher
		switch tariffs.Provider {
		case config.ProviderStatic:
			fetcher = static.NewProvider(tariffs.StaticDir, energy)
		default:
			fetcher = easyenergy.NewClient(*easy, energy, collector)
		}

		if client != nil {
			fetcher = rediscache.NewTariffStore(client, redisCfg.Prefix, energy, fetcher)
		}

		return domain.NewTariffCache(energy, fetcher, collector)
	}

	power := build(domain.EnergyPower)
	gas := build(domain.EnergyGas)

	return tariffCaches{
		Power: power,
		Gas:   gas,
		All:   []*domain.TariffCache{power, gas},
	}
}

func newStrategyRegistry(p registryParams) (domain.StrategyRegistry, error) {
	opts, err := p.Contract.Options()
	if err != nil {
		return nil, err
	}
	return contract.NewStandardRegistry(context.Background(), opts, p.Power, p.Gas)
}

func newRecordStore(cfg *config.RedisConfig, client *goredis.Client) domain.RecordStore {
	if client == nil {
		return memory.NewRecordStore()
	}
	return redisstore.NewRecordStore(client, cfg.Prefix)
}

func newImportService(
	strategies domain.StrategyRegistry,
	store domain.RecordStore,
	cfg *config.ImportConfig,
	collector *metrics.Collector,
) *domain.ImportService {
	return domain.NewImportService(strategies, store, cfg.Concurrency, collector)
}
