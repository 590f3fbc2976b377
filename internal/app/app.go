package app

import (
	"log/slog"

	"github.com/insight-platform/insight-deploy/internal/domain/config"
	"github.com/insight-platform/insight-deploy/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig
	Log    *slog.Logger

	// Use cases
	DeployContract  *usecase.DeployContract
	ListSigners     *usecase.ListSigners
	ListNetworks    *usecase.ListNetworks
	ListDeployments *usecase.ListDeployments
	ShowDeployment  *usecase.ShowDeployment
	ShowConfig      *usecase.ShowConfig
	SetConfig       *usecase.SetConfig
	RemoveConfig    *usecase.RemoveConfig
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	log *slog.Logger,
	deployContract *usecase.DeployContract,
	listSigners *usecase.ListSigners,
	listNetworks *usecase.ListNetworks,
	listDeployments *usecase.ListDeployments,
	showDeployment *usecase.ShowDeployment,
	showConfig *usecase.ShowConfig,
	setConfig *usecase.SetConfig,
	removeConfig *usecase.RemoveConfig,
) (*App, error) {
	return &App{
		Config:          cfg,
		Log:             log,
		DeployContract:  deployContract,
		ListSigners:     listSigners,
		ListNetworks:    listNetworks,
		ListDeployments: listDeployments,
		ShowDeployment:  showDeployment,
		ShowConfig:      showConfig,
		SetConfig:       setConfig,
		RemoveConfig:    removeConfig,
	}, nil
}
