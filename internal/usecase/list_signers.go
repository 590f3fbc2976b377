package usecase

import (
	"context"
	"fmt"

	"github.com/insight-platform/insight-deploy/internal/domain/config"
	"github.com/insight-platform/insight-deploy/internal/domain/models"
)

// ListSignersResult contains the signers of the selected network
type ListSignersResult struct {
	Network *config.Network
	Signers []*models.Signer
}

// ListSigners is a use case for listing the signers available on a network
type ListSigners struct {
	config   *config.RuntimeConfig
	networks NetworkResolver
	signers  SignerProvider
}

// NewListSigners creates a new ListSigners use case
func NewListSigners(cfg *config.RuntimeConfig, networks NetworkResolver, signers SignerProvider) *ListSigners {
	return &ListSigners{
		config:   cfg,
		networks: networks,
		signers:  signers,
	}
}

// Run executes the use case
func (uc *ListSigners) Run(ctx context.Context) (*ListSignersResult, error) {
	network, err := uc.networks.ResolveNetwork(ctx, uc.config.NetworkName)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve network: %w", err)
	}

	signers, err := uc.signers.GetSigners(ctx, network)
	if err != nil {
		return nil, fmt.Errorf("failed to get signers: %w", err)
	}

	return &ListSignersResult{
		Network: network,
		Signers: signers,
	}, nil
}
