package di

import (
	"context"
	"fmt"
	"io"
	"net"
	"strconv"
	"time"

	"TrendMatrix/internal/domain/repository"
	domservice "TrendMatrix/internal/domain/service"
	"TrendMatrix/internal/handler/api"
	internalrepo "TrendMatrix/internal/repository"
	"TrendMatrix/internal/service/backend"
	"TrendMatrix/internal/service/binancefeed"
	"TrendMatrix/internal/service/demo"
	"TrendMatrix/internal/service/local"
	"TrendMatrix/internal/services/sentiment"
	"TrendMatrix/internal/services/signals"
	"TrendMatrix/internal/services/stats"
	"TrendMatrix/internal/usecase"
	"TrendMatrix/internal/ws"
	"TrendMatrix/pkg/cache"
	pkgch "TrendMatrix/pkg/clickhouse"
	"TrendMatrix/pkg/config"
	xhttp "TrendMatrix/pkg/http"
	pkgkafka "TrendMatrix/pkg/kafka"
	applogger "TrendMatrix/pkg/logger"
	"TrendMatrix/pkg/metrics"
	"TrendMatrix/pkg/server"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	format := "json"
	if cfg.Environment == "development" {
		format = "console"
	}
	return applogger.New(&applogger.Config{
		Level:  "info",
		Format: format,
		Output: "stdout",
	})
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideCache selects Redis when enabled, in-memory otherwise.
func ProvideCache(cfg *config.Config) (cache.Service, error) {
	if !cfg.Redis.Enabled {
		return cache.NewMemoryCache(), nil
	}

	host, port := splitAddr(cfg.Redis.Addr)
	c, err := cache.NewRedisCache(
		cache.WithRedisHost(host),
		cache.WithRedisPort(port),
		cache.WithRedisPassword(cfg.Redis.Password),
		cache.WithRedisDB(cfg.Redis.DB),
	)
	if err != nil {
		return nil, fmt.Errorf("redis cache: %w", err)
	}
	return c, nil
}

func splitAddr(addr string) (string, int) {
	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return "localhost", 6379
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		port = 6379
	}
	return host, port
}

// ProvideClickHouseClient connects to ClickHouse when the dashboard source
// needs it; otherwise returns nil.
func ProvideClickHouseClient(cfg *config.Config) (*pkgch.Client, error) {
	if cfg.Dashboard.Source != "clickhouse" {
		return nil, nil
	}

	client, err := pkgch.NewClient(
		pkgch.WithHost(cfg.ClickHouse.Host),
		pkgch.WithPort(cfg.ClickHouse.Port),
		pkgch.WithDatabase(cfg.ClickHouse.Database),
		pkgch.WithCredentials(cfg.ClickHouse.User, cfg.ClickHouse.Password),
		pkgch.WithMaxConnections(10, 5),
		pkgch.WithTimeouts(cfg.ClickHouse.DialTimeout, cfg.ClickHouse.ReadTimeout),
	)
	if err != nil {
		return nil, fmt.Errorf("clickhouse client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.InitSchema(ctx, internalrepo.SchemaStatements("")); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("clickhouse schema: %w", err)
	}
	return client, nil
}

// ProvideSeriesStore is ClickHouse-backed when a client exists, in-memory
// otherwise.
func ProvideSeriesStore(cfg *config.Config, chClient *pkgch.Client) repository.SeriesStore {
	if chClient != nil {
		return internalrepo.NewClickHouseSeriesStore(chClient, "")
	}
	return internalrepo.NewMemorySeriesStore()
}

// ProvideCatalog is Postgres-backed when a DSN is configured, otherwise an
// in-memory catalog seeded with the demo fixtures.
func ProvideCatalog(cfg *config.Config) (repository.Catalog, error) {
	if cfg.Postgres.DSN == "" {
		return internalrepo.NewMemoryCatalog(demo.Projects(), demo.Protocols(), demo.Collections()), nil
	}

	catalog, err := internalrepo.NewPostgresCatalog(cfg.Postgres.DSN)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := catalog.Migrate(ctx); err != nil {
		_ = catalog.Close()
		return nil, err
	}
	return catalog, nil
}

// ProvideHistory opens the SQLite signal history.
func ProvideHistory(cfg *config.Config) (repository.SignalHistory, error) {
	path := cfg.History.Path
	if path == "" {
		path = "trendmatrix.db"
	}
	return internalrepo.NewSQLiteHistory(path)
}

// ProvideNotifier is Kafka-backed when enabled, a no-op otherwise.
func ProvideNotifier(cfg *config.Config) (repository.SignalNotifier, error) {
	if !cfg.Kafka.Enabled {
		return internalrepo.NopNotifier{}, nil
	}

	producer, err := pkgkafka.NewProducer(
		pkgkafka.WithBrokers(cfg.Kafka.Brokers),
		pkgkafka.WithCompression(cfg.Kafka.Compression),
		pkgkafka.WithRequiredAcks(cfg.Kafka.RequiredAcks),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	return internalrepo.NewKafkaNotifier(producer, cfg.Kafka.Topic), nil
}

// ProvideSentiment uses the rule scorer, fronted by OpenAI when configured.
func ProvideSentiment(cfg *config.Config) domservice.SentimentAnalyzer {
	rule := sentiment.NewRuleScorer()
	if cfg.OpenAI.APIKey == "" {
		return rule
	}
	return &sentiment.Fallback{
		Primary:   sentiment.NewAIAnalyzer(cfg.OpenAI.APIKey, cfg.OpenAI.Model),
		Secondary: rule,
	}
}

// ProvideActivity creates the distinct-asset activity tracker.
func ProvideActivity(cfg *config.Config) domservice.ActivityEstimator {
	return stats.NewActivityTracker(cfg.Dashboard.AssetUniverse)
}

// ProvideGenerator creates the technical signal generator.
func ProvideGenerator() domservice.SignalGenerator {
	return signals.NewGenerator()
}

// ProvideSource selects the dashboard metric source.
func ProvideSource(
	cfg *config.Config,
	store repository.SeriesStore,
	catalog repository.Catalog,
	history repository.SignalHistory,
	analyzer domservice.SentimentAnalyzer,
	activity domservice.ActivityEstimator,
	log *applogger.Logger,
) repository.MetricSource {
	switch cfg.Dashboard.Source {
	case "backend":
		return backend.NewClient(cfg.Dashboard.APIBaseURL, log)
	case "clickhouse":
		return local.NewSource(store, catalog, history, analyzer, activity)
	default:
		return demo.NewSource()
	}
}

// ProvideHub creates the WebSocket broadcast hub.
func ProvideHub(log *applogger.Logger) *ws.Hub {
	return ws.NewHub(log)
}

// ProvideSeriesUsecase wires the cached series read path.
func ProvideSeriesUsecase(
	source repository.MetricSource,
	c cache.Service,
	m repository.Metrics,
	log *applogger.Logger,
	cfg *config.Config,
) *usecase.SeriesUsecase {
	return usecase.NewSeriesUsecase(source, c, m, log, cfg.Dashboard.CacheDuration, cfg.Dashboard.Source)
}

// ProvideDashboardView creates the dashboard view.
func ProvideDashboardView(
	source repository.MetricSource,
	series *usecase.SeriesUsecase,
	m repository.Metrics,
	log *applogger.Logger,
	cfg *config.Config,
) *usecase.DashboardView {
	return usecase.NewDashboardView(source, series, m, log, cfg.Dashboard.DefaultWindow, 5)
}

// ProvideSignalPipeline creates the signal generation pipeline.
func ProvideSignalPipeline(
	store repository.SeriesStore,
	gen domservice.SignalGenerator,
	history repository.SignalHistory,
	notifier repository.SignalNotifier,
	activity domservice.ActivityEstimator,
	m repository.Metrics,
	log *applogger.Logger,
	cfg *config.Config,
) *usecase.SignalPipeline {
	return usecase.NewSignalPipeline(store, gen, history, notifier, activity, m, log, cfg.Binance.Symbols, 30)
}

// ProvideSignalQuery creates the signal read path.
func ProvideSignalQuery(history repository.SignalHistory, log *applogger.Logger) *usecase.SignalQuery {
	return usecase.NewSignalQuery(history, log)
}

// ProvideChartUsecase creates the chart render path.
func ProvideChartUsecase(series *usecase.SeriesUsecase, m repository.Metrics, log *applogger.Logger) *usecase.ChartUsecase {
	return usecase.NewChartUsecase(series, m, log)
}

// ProvideCollector creates the Binance kline collector when enabled.
func ProvideCollector(
	cfg *config.Config,
	store repository.SeriesStore,
	activity domservice.ActivityEstimator,
	m repository.Metrics,
	log *applogger.Logger,
) usecase.Collector {
	if !cfg.Binance.Enabled {
		return nil
	}
	return binancefeed.NewCollector(cfg.Binance.Symbols, store, activity, m, log)
}

// ProvidePoller creates the background refresh poller.
func ProvidePoller(
	cfg *config.Config,
	collector usecase.Collector,
	pipeline *usecase.SignalPipeline,
	view *usecase.DashboardView,
	hub *ws.Hub,
	log *applogger.Logger,
) *usecase.Poller {
	return usecase.NewPoller(cfg.Dashboard.PollingInterval, collector, pipeline, view, hub, log, cfg.Dashboard.DefaultWindow)
}

// ProvideHTTPHandler composes all route handlers.
func ProvideHTTPHandler(
	log *applogger.Logger,
	view *usecase.DashboardView,
	series *usecase.SeriesUsecase,
	query *usecase.SignalQuery,
	charts *usecase.ChartUsecase,
	source repository.MetricSource,
	catalog repository.Catalog,
	hub *ws.Hub,
) xhttp.Handler {
	return xhttp.Compose(
		api.NewDashboardHandler(log, view, series),
		api.NewSignalsHandler(log, query),
		api.NewSolanaHandler(log, source, catalog),
		api.NewChartsHandler(log, charts),
		api.NewLiveHandler(hub),
	)
}

// ProvideApp creates the application server and registers every closable
// infrastructure client for shutdown.
func ProvideApp(
	cfg *config.Config,
	log *applogger.Logger,
	handler xhttp.Handler,
	hub *ws.Hub,
	poller *usecase.Poller,
	c cache.Service,
	chClient *pkgch.Client,
	catalog repository.Catalog,
	history repository.SignalHistory,
	notifier repository.SignalNotifier,
) *server.App {
	var closers []io.Closer
	if chClient != nil {
		closers = append(closers, chClient)
	}
	if cl, ok := catalog.(io.Closer); ok {
		closers = append(closers, cl)
	}
	closers = append(closers, history, notifier, c)

	return server.New(cfg, log, handler, hub, poller, closers...)
}
