package usecase

import (
	"context"

	"github.com/insight-platform/insight-deploy/internal/domain/config"
	"github.com/insight-platform/insight-deploy/internal/domain/models"
)

// SignerProvider enumerates the accounts authorized to send transactions on a network.
// The first signer returned is the deployer.
type SignerProvider interface {
	GetSigners(ctx context.Context, network *config.Network) ([]*models.Signer, error)
}

// ContractFactoryResolver looks up compiled contracts by name or "path:Name"
type ContractFactoryResolver interface {
	GetContractFactory(ctx context.Context, name string) (*models.ContractFactory, error)
}

// ContractDeployer submits a contract creation and waits for it to be confirmed
type ContractDeployer interface {
	Deploy(
		ctx context.Context,
		network *config.Network,
		factory *models.ContractFactory,
		signer *models.Signer,
		args ...any,
	) (*models.DeployedContract, error)
}

// ChainInspector queries a network's node
type ChainInspector interface {
	ChainID(ctx context.Context, network *config.Network) (uint64, error)
}

// NetworkResolver resolves configured networks
type NetworkResolver interface {
	GetNetworks(ctx context.Context) []string
	ResolveNetwork(ctx context.Context, name string) (*config.Network, error)
}

// DeploymentRepository handles persistence of deployment records
type DeploymentRepository interface {
	GetDeployment(ctx context.Context, id string) (*models.Deployment, error)
	GetDeploymentByAddress(ctx context.Context, chainID uint64, address string) (*models.Deployment, error)
	ListDeployments(ctx context.Context, filter DeploymentFilter) ([]*models.Deployment, error)
	SaveDeployment(ctx context.Context, deployment *models.Deployment) error
}

// DeploymentFilter narrows ListDeployments; zero values match everything
type DeploymentFilter struct {
	ChainID      uint64
	ContractName string
	Network      string
}

// LocalConfigStore persists the per-checkout configuration
type LocalConfigStore interface {
	Exists() bool
	Load(ctx context.Context) (*config.LocalConfig, error)
	Save(ctx context.Context, config *config.LocalConfig) error
	GetPath() string
}

// Confirmer asks the user to approve an action
type Confirmer interface {
	Confirm(ctx context.Context, message string) (bool, error)
}

// Progress tracking interfaces

// ExecutionStage names a step of the deployment procedure
type ExecutionStage string

const (
	StageSigners    ExecutionStage = "signer"
	StageResolving  ExecutionStage = "resolve"
	StageDeploying  ExecutionStage = "deploy"
	StageConfirming ExecutionStage = "confirm"
	StageCompleted  ExecutionStage = "complete"
)

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage    ExecutionStage
	Message  string
	Spinner  bool
	Metadata any
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Error(string)                              {}
