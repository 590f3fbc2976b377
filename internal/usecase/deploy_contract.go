package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"time"

	"github.com/insight-platform/insight-deploy/internal/domain"
	"github.com/insight-platform/insight-deploy/internal/domain/config"
	"github.com/insight-platform/insight-deploy/internal/domain/models"
)

// DeployContractParams contains parameters for the deployment. The contract and its
// constructor arguments are fixed; the struct is kept for symmetry with other use cases.
type DeployContractParams struct{}

// DeployContractResult contains the result of a deployment
type DeployContractResult struct {
	Network    *config.Network
	Deployer   *models.Signer
	Factory    *models.ContractFactory
	Contract   *models.DeployedContract
	Deployment *models.Deployment
	Args       []any

	// RecordError is set when the contract was deployed but the registry could not be updated
	RecordError error
}

// DeployContract obtains the deployer, resolves the CourseOpeningNFT factory and deploys it
type DeployContract struct {
	config    *config.RuntimeConfig
	networks  NetworkResolver
	signers   SignerProvider
	factories ContractFactoryResolver
	deployer  ContractDeployer
	repo      DeploymentRepository
	confirmer Confirmer
	progress  ProgressSink
	log       *slog.Logger
}

// NewDeployContract creates a new DeployContract use case
func NewDeployContract(
	cfg *config.RuntimeConfig,
	networks NetworkResolver,
	signers SignerProvider,
	factories ContractFactoryResolver,
	deployer ContractDeployer,
	repo DeploymentRepository,
	confirmer Confirmer,
	progress ProgressSink,
	log *slog.Logger,
) *DeployContract {
	return &DeployContract{
		config:    cfg,
		networks:  networks,
		signers:   signers,
		factories: factories,
		deployer:  deployer,
		repo:      repo,
		confirmer: confirmer,
		progress:  progress,
		log:       log.With("component", "DeployContract"),
	}
}

// Run executes the deployment
func (uc *DeployContract) Run(ctx context.Context, params DeployContractParams) (*DeployContractResult, error) {
	network, err := uc.networks.ResolveNetwork(ctx, uc.config.NetworkName)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve network: %w", err)
	}

	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:   StageSigners,
		Message: fmt.Sprintf("Loading signers for %s", network.Name),
		Spinner: true,
	})

	signers, err := uc.signers.GetSigners(ctx, network)
	if err != nil {
		return nil, fmt.Errorf("failed to get signers: %w", err)
	}
	if len(signers) == 0 {
		return nil, fmt.Errorf("%w for network %s", domain.ErrNoSigners, network.Name)
	}
	deployer := signers[0]

	uc.progress.Info(fmt.Sprintf("Deploying contracts with the account: %s", deployer.Address.Hex()))

	if err := uc.confirm(ctx, network); err != nil {
		return nil, err
	}

	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:   StageResolving,
		Message: fmt.Sprintf("Resolving %s", domain.CourseOpeningNFTContract),
		Spinner: true,
	})

	factory, err := uc.factories.GetContractFactory(ctx, domain.CourseOpeningNFTContract)
	if err != nil {
		return nil, fmt.Errorf("failed to get contract factory: %w", err)
	}

	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:   StageDeploying,
		Message: fmt.Sprintf("Deploying %s to %s", factory.Name, network.Name),
		Spinner: true,
	})

	args := domain.CourseOpeningNFTArgs()
	contract, err := uc.deployer.Deploy(ctx, network, factory, deployer, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to deploy %s: %w", factory.Name, err)
	}

	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:    StageCompleted,
		Message:  fmt.Sprintf("%s deployed at %s", factory.Name, contract.Address.Hex()),
		Metadata: contract,
	})

	result := &DeployContractResult{
		Network:  network,
		Deployer: deployer,
		Factory:  factory,
		Contract: contract,
		Args:     args,
	}

	deployment := newDeploymentRecord(network, deployer, factory, contract, args)
	if err := uc.repo.SaveDeployment(ctx, deployment); err != nil {
		// The contract is on chain at this point; a registry failure is only reported.
		uc.log.Warn("failed to record deployment", "id", deployment.ID, "error", err)
		uc.progress.Error(fmt.Sprintf("Warning: failed to record deployment: %v", err))
		result.RecordError = err
	} else {
		result.Deployment = deployment
	}

	return result, nil
}

// confirm asks before deploying to a remote network in interactive mode
func (uc *DeployContract) confirm(ctx context.Context, network *config.Network) error {
	if uc.config.NonInteractive || uc.confirmer == nil || isLocalNetwork(network) {
		return nil
	}

	ok, err := uc.confirmer.Confirm(ctx, fmt.Sprintf("Deploy %s to %s", domain.CourseOpeningNFTContract, network.Name))
	if err != nil {
		if errors.Is(err, domain.ErrDeploymentCancelled) {
			return err
		}
		return fmt.Errorf("failed to confirm deployment: %w", err)
	}
	if !ok {
		return domain.ErrDeploymentCancelled
	}
	return nil
}

// isLocalNetwork reports whether a network is a development chain
func isLocalNetwork(network *config.Network) bool {
	if domain.IsLocalChain(network.ChainID) {
		return true
	}
	if network.ChainID != 0 {
		return false
	}

	u, err := url.Parse(network.RPCURL)
	if err != nil {
		return false
	}
	host := u.Hostname()
	if host == "localhost" {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}

func newDeploymentRecord(
	network *config.Network,
	deployer *models.Signer,
	factory *models.ContractFactory,
	contract *models.DeployedContract,
	args []any,
) *models.Deployment {
	printable := make([]string, len(args))
	for i, arg := range args {
		printable[i] = fmt.Sprint(arg)
	}

	return &models.Deployment{
		ID:              models.DeploymentID(contract.ChainID, factory.Name, contract.Address),
		Network:         network.Name,
		ChainID:         contract.ChainID,
		ContractName:    factory.Name,
		Address:         contract.Address.Hex(),
		Deployer:        deployer.Address.Hex(),
		TransactionHash: contract.TransactionHash.Hex(),
		BlockNumber:     contract.BlockNumber,
		GasUsed:         contract.GasUsed,
		Args:            printable,
		ConstructorArgs: contract.ConstructorArgs,
		Artifact: models.ArtifactInfo{
			Path:         factory.Ref(),
			Format:       factory.Format,
			BytecodeHash: factory.BytecodeHash().Hex(),
		},
		CreatedAt: time.Now().UTC(),
	}
}
