package di

import (
	"context"
	"fmt"
	"time"

	"PriceFeed/internal/domain/repository"
	domsvc "PriceFeed/internal/domain/service"
	"PriceFeed/internal/handler/api"
	internalrepo "PriceFeed/internal/repository"
	"PriceFeed/internal/service/finnhub"
	"PriceFeed/internal/service/ratelimit"
	"PriceFeed/internal/service/symbols"
	analytics "PriceFeed/internal/services/analytics"
	"PriceFeed/internal/usecase"
	"PriceFeed/pkg/cache"
	pkgch "PriceFeed/pkg/clickhouse"
	"PriceFeed/pkg/config"
	xhttp "PriceFeed/pkg/http"
	pkgkafka "PriceFeed/pkg/kafka"
	applogger "PriceFeed/pkg/logger"
	"PriceFeed/pkg/metrics"
	"PriceFeed/pkg/postgres"
	"PriceFeed/pkg/server"

	"github.com/jackc/pgx/v5/pgxpool"
)

const connectTimeout = 10 * time.Second

// Optional backends (ClickHouse, Postgres, Kafka, Redis) yield nil when not
// configured. Interface providers return an untyped nil in that case so that
// consumers can compare against nil.

func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	return applogger.New(&applogger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics(cfg *config.Config) repository.Metrics {
	if !cfg.Metrics.Enabled {
		return metrics.Nop{}
	}
	return metrics.New()
}

// ProvideClickHouseClient connects and bootstraps the tick table.
func ProvideClickHouseClient(cfg *config.Config, l *applogger.Logger) (*pkgch.Client, func(), error) {
	if cfg.ClickHouse.Host == "" {
		l.Warn("clickhouse host not set, price feed runs will fail until configured")
		return nil, func() {}, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := pkgch.NewClient(ctx,
		pkgch.WithHost(cfg.ClickHouse.Host),
		pkgch.WithPort(cfg.ClickHouse.Port),
		pkgch.WithDatabase(cfg.ClickHouse.Database),
		pkgch.WithCredentials(cfg.ClickHouse.User, cfg.ClickHouse.Password),
		pkgch.WithMaxConnections(10, 5),
		pkgch.WithHTTP(cfg.ClickHouse.UseHTTP),
		pkgch.WithAsyncInsert(cfg.ClickHouse.AsyncInsert, cfg.ClickHouse.WaitForAsync),
		pkgch.WithTimeouts(cfg.ClickHouse.DialTimeout, cfg.ClickHouse.ReadTimeout),
		pkgch.WithMaxExecutionTime(cfg.ClickHouse.MaxExecutionTime),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("clickhouse client: %w", err)
	}

	if err := client.InitSchema(ctx, internalrepo.TickSchema(tickTable(cfg))); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("clickhouse schema: %w", err)
	}
	l.Info("clickhouse connected",
		applogger.String("database", client.Database()),
		applogger.String("table", tickTable(cfg)),
	)

	return client, func() {
		if err := client.Close(); err != nil {
			l.Warn("clickhouse close error", applogger.Error(err))
		}
	}, nil
}

func tickTable(cfg *config.Config) string {
	if cfg.ClickHouse.Database == "" {
		return cfg.ClickHouse.Table
	}
	return cfg.ClickHouse.Database + "." + cfg.ClickHouse.Table
}

func ProvideTickStore(ch *pkgch.Client, cfg *config.Config, l *applogger.Logger) repository.TickStore {
	if ch == nil {
		return nil
	}
	return internalrepo.NewCHTickStore(ch.DB(), tickTable(cfg), l)
}

// ProvidePostgresPool connects to the trading database holding the symbol
// registry and session state.
func ProvidePostgresPool(cfg *config.Config, l *applogger.Logger) (*pgxpool.Pool, func(), error) {
	if cfg.Postgres.Host == "" {
		l.Warn("postgres host not set, symbol registry and session control disabled")
		return nil, func() {}, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	pool, err := postgres.Connect(ctx, postgres.Config{
		Host:     cfg.Postgres.Host,
		Port:     cfg.Postgres.Port,
		Name:     cfg.Postgres.Name,
		User:     cfg.Postgres.User,
		Password: cfg.Postgres.Password,
		SSLMode:  cfg.Postgres.SSLMode,
		MinConns: cfg.Postgres.MinConns,
		MaxConns: cfg.Postgres.MaxConns,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("postgres: %w", err)
	}
	l.Info("postgres connected", applogger.String("database", cfg.Postgres.Name))

	return pool, pool.Close, nil
}

// ProvideCache returns Redis when enabled, otherwise an in-process cache.
func ProvideCache(cfg *config.Config, l *applogger.Logger) (cache.Service, func(), error) {
	if !cfg.Redis.Enabled {
		mc := cache.NewMemoryCache(cache.WithMemoryMaxSize(10000))
		return mc, func() { _ = mc.Close() }, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	rc, err := cache.NewRedisCache(ctx,
		cache.WithRedisAddr(cfg.Redis.Host, cfg.Redis.Port),
		cache.WithRedisAuth(cfg.Redis.Password, cfg.Redis.DB),
		cache.WithRedisPrefix(cfg.Redis.Prefix),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("redis: %w", err)
	}
	l.Info("redis connected", applogger.String("host", cfg.Redis.Host))

	return rc, func() {
		if err := rc.Close(); err != nil {
			l.Warn("redis close error", applogger.Error(err))
		}
	}, nil
}

func ProvideTickCache(c cache.Service, cfg *config.Config) repository.TickCache {
	return internalrepo.NewCachedLatestTicks(c, cfg.Redis.LatestTTL)
}

func ProvideSymbolRegistry(pool *pgxpool.Pool, c cache.Service, cfg *config.Config, l *applogger.Logger) repository.SymbolRegistry {
	if pool == nil {
		return nil
	}
	return internalrepo.NewCachedSymbolRegistry(internalrepo.NewPGSymbolRegistry(pool), c, cfg.Redis.RegistryTTL, l)
}

func ProvideSessionStore(pool *pgxpool.Pool) repository.SessionStore {
	if pool == nil {
		return nil
	}
	return internalrepo.NewPGSessionStore(pool)
}

// ProvideKafkaProducer creates a Kafka producer. Its lifetime is owned by the
// tick sink, which closes it after the log collector is detached.
func ProvideKafkaProducer(cfg *config.Config) (*pkgkafka.Producer, error) {
	if !cfg.Kafka.Enabled {
		return nil, nil
	}
	producer, err := pkgkafka.NewProducer(
		pkgkafka.WithBrokers(cfg.Kafka.Brokers),
		pkgkafka.WithCompression(cfg.Kafka.Compression),
		pkgkafka.WithRequiredAcks(cfg.Kafka.RequiredAcks),
		pkgkafka.WithBatching(cfg.Kafka.Producer.BatchSize, cfg.Kafka.Producer.BatchBytes, cfg.Kafka.Producer.Linger),
		pkgkafka.WithTimeouts(cfg.Kafka.Producer.WriteTimeout, cfg.Kafka.Producer.ReadTimeout),
		pkgkafka.WithMaxAttempts(cfg.Kafka.Producer.MaxAttempts),
		pkgkafka.WithAsync(cfg.Kafka.Producer.Async),
		pkgkafka.WithHashByKey(true),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	return producer, nil
}

func ProvideTickPublisher(producer *pkgkafka.Producer, cfg *config.Config) repository.TickPublisher {
	if producer == nil {
		return nil
	}
	return internalrepo.NewKafkaTickPublisher(producer, cfg.Kafka.Topic)
}

func ProvideQuoteSource(cfg *config.Config, l *applogger.Logger) repository.QuoteSource {
	return finnhub.New(cfg.Finnhub.APIKey,
		finnhub.WithBaseURL(cfg.Finnhub.BaseURL),
		finnhub.WithTimeout(cfg.Finnhub.Timeout),
		finnhub.WithLogger(l),
	)
}

func ProvideSymbolResolver(cfg *config.Config, reg repository.SymbolRegistry, l *applogger.Logger) domsvc.SymbolResolver {
	opts := []symbols.Option{
		symbols.WithMapping(cfg.Finnhub.SymbolMap),
		symbols.WithDefaults(cfg.Feed.DefaultSymbols),
		symbols.WithLogger(l),
	}
	if reg != nil {
		opts = append(opts, symbols.WithRegistry(reg, cfg.Feed.AssetType))
	}
	return symbols.NewResolver(opts...)
}

func ProvideTickDeriver(cfg *config.Config) domsvc.TickDeriver {
	return analytics.NewDeriver(analytics.WithSpreadRange(cfg.Feed.SpreadMinPct, cfg.Feed.SpreadMaxPct))
}

func ProvideTickSink(
	store repository.TickStore,
	pub repository.TickPublisher,
	tc repository.TickCache,
	m repository.Metrics,
	cfg *config.Config,
	l *applogger.Logger,
) *usecase.TickSink {
	return usecase.NewTickSink(store, pub, tc, m, cfg.Feed.PersistTimeout, l)
}

func ProvidePriceFeedUseCase(
	resolver domsvc.SymbolResolver,
	quotes repository.QuoteSource,
	deriver domsvc.TickDeriver,
	sink *usecase.TickSink,
	m repository.Metrics,
	cfg *config.Config,
	l *applogger.Logger,
) *usecase.PriceFeedUseCase {
	return usecase.NewPriceFeedUseCase(resolver, quotes, deriver, sink, m,
		usecase.WithPacer(usecase.TimerPacer(cfg.Feed.PaceInterval)),
		usecase.WithLogger(l),
	)
}

func ProvideSessionUseCase(store repository.SessionStore, l *applogger.Logger) *usecase.SessionUseCase {
	return usecase.NewSessionUseCase(store, l)
}

func ProvideRateLimiter(cfg *config.Config) *ratelimit.Limiter {
	return ratelimit.New(cfg.Server.RateLimit.Burst, cfg.Server.RateLimit.PerSecond)
}

func ProvideHandlers(
	feed *usecase.PriceFeedUseCase,
	session *usecase.SessionUseCase,
	store repository.TickStore,
	tc repository.TickCache,
	resolver domsvc.SymbolResolver,
	rl *ratelimit.Limiter,
	l *applogger.Logger,
) []xhttp.Handler {
	return []xhttp.Handler{
		api.NewPriceFeedHandler(feed, rl, l),
		api.NewTicksHandler(store, tc, resolver, l),
		api.NewSessionHandler(session, l),
		api.NewHealthHandler(store),
	}
}

func ProvideHTTPServer(cfg *config.Config, handlers []xhttp.Handler, l *applogger.Logger) *xhttp.Server {
	return xhttp.NewServer(handlers,
		xhttp.WithPort(cfg.Server.Port),
		xhttp.WithTimeouts(cfg.Server.ReadTimeout, cfg.Server.WriteTimeout, cfg.Server.ShutdownTimeout),
		xhttp.WithMetrics(cfg.Metrics.Enabled),
		xhttp.WithLogger(l),
	)
}

// ProvideApp assembles the application and attaches the Kafka log collector
// when enabled.
func ProvideApp(
	cfg *config.Config,
	srv *xhttp.Server,
	feed *usecase.PriceFeedUseCase,
	sink *usecase.TickSink,
	producer *pkgkafka.Producer,
	rl *ratelimit.Limiter,
	l *applogger.Logger,
) *server.App {
	if cfg.Log.Collect.Enabled && producer != nil {
		l.AddCollector(&applogger.CollectionConfig{
			TimeInterval:   cfg.Log.Collect.Interval,
			CountThreshold: cfg.Log.Collect.CountThreshold,
			Topic:          cfg.Log.Collect.Topic,
			Publisher:      producer,
		})
	}
	return server.New(cfg, srv, feed, sink, rl, l)
}
