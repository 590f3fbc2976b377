package usecase

import (
	"context"

	"github.com/insight-platform/insight-deploy/internal/domain/config"
)

// ShowConfigResult contains the result of showing configuration
type ShowConfigResult struct {
	Local         *config.LocalConfig
	ConfigPath    string
	Exists        bool
	ProjectRoot   string
	ConfigSource  string
	NetworkName   string
	ProjectConfig *config.ProjectConfig
}

// ShowConfig is a use case for showing configuration
type ShowConfig struct {
	config *config.RuntimeConfig
	store  LocalConfigStore
}

// NewShowConfig creates a new ShowConfig use case
func NewShowConfig(cfg *config.RuntimeConfig, store LocalConfigStore) *ShowConfig {
	return &ShowConfig{
		config: cfg,
		store:  store,
	}
}

// Run executes the show config use case
func (uc *ShowConfig) Run(ctx context.Context) (*ShowConfigResult, error) {
	exists := uc.store.Exists()

	local, err := uc.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	return &ShowConfigResult{
		Local:         local,
		ConfigPath:    uc.store.GetPath(),
		Exists:        exists,
		ProjectRoot:   uc.config.ProjectRoot,
		ConfigSource:  uc.config.ConfigSource,
		NetworkName:   uc.config.NetworkName,
		ProjectConfig: uc.config.ProjectConfig,
	}, nil
}
