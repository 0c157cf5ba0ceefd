//go:build wireinject
// +build wireinject

package di

import (
	"TrendMatrix/pkg/config"
	"TrendMatrix/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Ambient
		ProvideLogger,
		ProvideMetrics,
		ProvideCache,

		// Infrastructure clients
		ProvideClickHouseClient,

		// Repositories
		ProvideSeriesStore,
		ProvideCatalog,
		ProvideHistory,
		ProvideNotifier,

		// Domain services
		ProvideSentiment,
		ProvideActivity,
		ProvideGenerator,
		ProvideSource,

		// Use cases
		ProvideSeriesUsecase,
		ProvideDashboardView,
		ProvideSignalPipeline,
		ProvideSignalQuery,
		ProvideChartUsecase,
		ProvideCollector,

		// Transport
		ProvideHub,
		ProvidePoller,
		ProvideHTTPHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
