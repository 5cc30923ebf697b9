//go:build wireinject
// +build wireinject

package di

import (
	"github.com/atarantas86/edgefinder2/pkg/config"
	"github.com/atarantas86/edgefinder2/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Ambient services
		ProvideLogger,
		ProvideMetrics,

		// Engine access
		ProvideHTTPClient,
		ProvideFetcher,

		// Caching and presentation settings
		ProvideCache,
		ProvideTheme,
		ProvideStatsConfig,

		// Use cases and transport
		ProvideDashboard,
		ProvideHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
