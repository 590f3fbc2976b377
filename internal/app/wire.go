//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/insight-platform/insight-deploy/internal/adapters"
	"github.com/insight-platform/insight-deploy/internal/adapters/blockchain"
	"github.com/insight-platform/insight-deploy/internal/config"
	"github.com/insight-platform/insight-deploy/internal/logging"
	"github.com/insight-platform/insight-deploy/internal/usecase"
	"github.com/spf13/viper"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper, sink usecase.ProgressSink, dial blockchain.Dialer) (*App, error) {
	wire.Build(
		// Configuration
		config.Provider,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewDeployContract,
		usecase.NewListSigners,
		usecase.NewListNetworks,
		usecase.NewListDeployments,
		usecase.NewShowDeployment,
		usecase.NewShowConfig,
		usecase.NewSetConfig,
		usecase.NewRemoveConfig,

		// App
		NewApp,
	)
	return nil, nil
}
