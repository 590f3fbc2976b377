package usecase

import (
	"context"
	"sort"

	"github.com/insight-platform/insight-deploy/internal/domain/models"
	"github.com/samber/lo"
)

// ListDeploymentsParams contains parameters for listing deployments
type ListDeploymentsParams struct {
	ChainID      uint64
	ContractName string
	Network      string
}

// DeploymentListResult contains the result of listing deployments
type DeploymentListResult struct {
	Deployments []*models.Deployment
	Summary     DeploymentSummary
}

// DeploymentSummary provides summary statistics
type DeploymentSummary struct {
	Total      int
	ByChain    map[uint64]int
	ByContract map[string]int
}

// ListDeployments is a use case for listing recorded deployments
type ListDeployments struct {
	repo DeploymentRepository
}

// NewListDeployments creates a new ListDeployments use case
func NewListDeployments(repo DeploymentRepository) *ListDeployments {
	return &ListDeployments{
		repo: repo,
	}
}

// Run executes the use case
func (uc *ListDeployments) Run(ctx context.Context, params ListDeploymentsParams) (*DeploymentListResult, error) {
	deployments, err := uc.repo.ListDeployments(ctx, DeploymentFilter{
		ChainID:      params.ChainID,
		ContractName: params.ContractName,
		Network:      params.Network,
	})
	if err != nil {
		return nil, err
	}

	// Group by chain, newest first within a chain
	sort.SliceStable(deployments, func(i, j int) bool {
		if deployments[i].ChainID != deployments[j].ChainID {
			return deployments[i].ChainID < deployments[j].ChainID
		}
		return deployments[i].CreatedAt.After(deployments[j].CreatedAt)
	})

	return &DeploymentListResult{
		Deployments: deployments,
		Summary: DeploymentSummary{
			Total: len(deployments),
			ByChain: lo.CountValuesBy(deployments, func(d *models.Deployment) uint64 {
				return d.ChainID
			}),
			ByContract: lo.CountValuesBy(deployments, func(d *models.Deployment) string {
				return d.ContractName
			}),
		},
	}, nil
}
