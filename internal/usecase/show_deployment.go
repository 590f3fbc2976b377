package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/insight-platform/insight-deploy/internal/domain"
	"github.com/insight-platform/insight-deploy/internal/domain/config"
	"github.com/insight-platform/insight-deploy/internal/domain/models"
)

// ShowDeploymentParams contains parameters for showing a deployment
type ShowDeploymentParams struct {
	// Ref is a deployment ID or a contract address
	Ref string
	// ChainID scopes an address lookup; zero searches every chain
	ChainID uint64
}

// ShowDeployment is a use case for showing a single deployment
type ShowDeployment struct {
	config   *config.RuntimeConfig
	networks NetworkResolver
	repo     DeploymentRepository
}

// NewShowDeployment creates a new ShowDeployment use case
func NewShowDeployment(cfg *config.RuntimeConfig, networks NetworkResolver, repo DeploymentRepository) *ShowDeployment {
	return &ShowDeployment{
		config:   cfg,
		networks: networks,
		repo:     repo,
	}
}

// Run executes the use case
func (uc *ShowDeployment) Run(ctx context.Context, params ShowDeploymentParams) (*models.Deployment, error) {
	if params.Ref == "" {
		return nil, fmt.Errorf("deployment reference is required")
	}

	if common.IsHexAddress(params.Ref) {
		deployment, err := uc.byAddress(ctx, params.ChainID, params.Ref)
		if err != nil {
			return nil, fmt.Errorf("deployment at %s: %w", params.Ref, err)
		}
		return deployment, nil
	}

	deployment, err := uc.repo.GetDeployment(ctx, params.Ref)
	if err != nil {
		return nil, fmt.Errorf("deployment %s: %w", params.Ref, err)
	}
	if deployment == nil {
		return nil, fmt.Errorf("deployment %s: %w", params.Ref, domain.ErrNotFound)
	}
	return deployment, nil
}

// byAddress looks an address up on every chain and, when several chains have it,
// narrows the search to the selected network's chain
func (uc *ShowDeployment) byAddress(ctx context.Context, chainID uint64, address string) (*models.Deployment, error) {
	deployment, err := uc.repo.GetDeploymentByAddress(ctx, chainID, address)

	var ambiguous *domain.AmbiguousDeploymentErr
	if chainID != 0 || !errors.As(err, &ambiguous) {
		return deployment, err
	}

	network, netErr := uc.networks.ResolveNetwork(ctx, uc.config.NetworkName)
	if netErr != nil || network.ChainID == 0 {
		return nil, err
	}

	scoped, scopedErr := uc.repo.GetDeploymentByAddress(ctx, network.ChainID, address)
	if scopedErr != nil {
		return nil, err
	}
	return scoped, nil
}
