//go:build wireinject
// +build wireinject

package di

import (
	"PriceFeed/pkg/config"
	"PriceFeed/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, func(), error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,

		// Infrastructure clients
		ProvideClickHouseClient,
		ProvidePostgresPool,
		ProvideCache,
		ProvideKafkaProducer,

		// Repositories
		ProvideTickStore,
		ProvideTickCache,
		ProvideTickPublisher,
		ProvideSymbolRegistry,
		ProvideSessionStore,

		// Services
		ProvideQuoteSource,
		ProvideSymbolResolver,
		ProvideTickDeriver,

		// Use cases
		ProvideTickSink,
		ProvidePriceFeedUseCase,
		ProvideSessionUseCase,

		// HTTP
		ProvideRateLimiter,
		ProvideHandlers,
		ProvideHTTPServer,

		ProvideApp,
	)
	return nil, nil, nil
}
