package usecase

import (
	"context"

	"github.com/insight-platform/insight-deploy/internal/domain/config"
)

// ListNetworksParams contains parameters for listing networks
type ListNetworksParams struct {
	// QueryChainID asks each node for its chain id
	QueryChainID bool
}

// ListNetworksResult contains the result of listing networks
type ListNetworksResult struct {
	Networks []NetworkStatus
	Current  string
}

// NetworkStatus represents the status of a network
type NetworkStatus struct {
	Name    string
	RPCURL  string
	ChainID uint64
	Current bool
	Error   error
}

// ListNetworks is a use case for listing available networks
type ListNetworks struct {
	config    *config.RuntimeConfig
	resolver  NetworkResolver
	inspector ChainInspector
}

// NewListNetworks creates a new ListNetworks use case
func NewListNetworks(cfg *config.RuntimeConfig, resolver NetworkResolver, inspector ChainInspector) *ListNetworks {
	return &ListNetworks{
		config:    cfg,
		resolver:  resolver,
		inspector: inspector,
	}
}

// Run executes the use case
func (uc *ListNetworks) Run(ctx context.Context, params ListNetworksParams) (*ListNetworksResult, error) {
	networkNames := uc.resolver.GetNetworks(ctx)

	networks := make([]NetworkStatus, 0, len(networkNames))
	for _, name := range networkNames {
		status := NetworkStatus{
			Name:    name,
			Current: name == uc.config.NetworkName,
		}

		info, err := uc.resolver.ResolveNetwork(ctx, name)
		if err != nil {
			status.Error = err
			networks = append(networks, status)
			continue
		}
		status.RPCURL = info.RPCURL
		status.ChainID = info.ChainID

		if params.QueryChainID {
			chainID, err := uc.inspector.ChainID(ctx, info)
			if err != nil {
				status.Error = err
			} else {
				status.ChainID = chainID
			}
		}

		networks = append(networks, status)
	}

	return &ListNetworksResult{
		Networks: networks,
		Current:  uc.config.NetworkName,
	}, nil
}
