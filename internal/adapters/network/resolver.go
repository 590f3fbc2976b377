package network

import (
	"context"

	"github.com/insight-platform/insight-deploy/internal/config"
	domainconfig "github.com/insight-platform/insight-deploy/internal/domain/config"
	"github.com/insight-platform/insight-deploy/internal/usecase"
)

// ResolverAdapter adapts config.NetworkResolver to the usecase.NetworkResolver interface
type ResolverAdapter struct {
	resolver *config.NetworkResolver
}

// NewResolverAdapter creates a new adapter over the project's [networks] table
func NewResolverAdapter(cfg *domainconfig.RuntimeConfig) *ResolverAdapter {
	project := cfg.ProjectConfig
	if project == nil {
		project = domainconfig.DefaultProjectConfig()
	}
	return &ResolverAdapter{
		resolver: config.NewNetworkResolver(project),
	}
}

// GetNetworks returns all configured network names
func (a *ResolverAdapter) GetNetworks(ctx context.Context) []string {
	return a.resolver.Names()
}

// ResolveNetwork resolves a network name to its configuration
func (a *ResolverAdapter) ResolveNetwork(ctx context.Context, networkName string) (*domainconfig.Network, error) {
	return a.resolver.Resolve(networkName)
}

var _ usecase.NetworkResolver = (*ResolverAdapter)(nil)
