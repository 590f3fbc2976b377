package adapters

import (
	"github.com/google/wire"
	"github.com/insight-platform/insight-deploy/internal/adapters/artifacts"
	"github.com/insight-platform/insight-deploy/internal/adapters/blockchain"
	"github.com/insight-platform/insight-deploy/internal/adapters/fs"
	"github.com/insight-platform/insight-deploy/internal/adapters/interactive"
	"github.com/insight-platform/insight-deploy/internal/adapters/network"
	"github.com/insight-platform/insight-deploy/internal/adapters/repository/deployments"
	"github.com/insight-platform/insight-deploy/internal/adapters/signers"
	"github.com/insight-platform/insight-deploy/internal/usecase"
)

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	deployments.NewFileRepositoryFromConfig,
	wire.Bind(new(usecase.DeploymentRepository), new(*deployments.FileRepository)),

	fs.NewLocalConfigStoreAdapter,
	wire.Bind(new(usecase.LocalConfigStore), new(*fs.LocalConfigStoreAdapter)),

	artifacts.NewRepositoryFromConfig,
	wire.Bind(new(usecase.ContractFactoryResolver), new(*artifacts.Repository)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewConfirmerAdapter,
	wire.Bind(new(usecase.Confirmer), new(*interactive.ConfirmerAdapter)),
)

// ConfigSet provides configuration-based implementations
var ConfigSet = wire.NewSet(
	network.NewResolverAdapter,
	wire.Bind(new(usecase.NetworkResolver), new(*network.ResolverAdapter)),

	signers.NewProvider,
	wire.Bind(new(usecase.SignerProvider), new(*signers.Provider)),
)

// BlockchainSet provides blockchain-based implementations
var BlockchainSet = wire.NewSet(
	blockchain.NewDeployer,
	wire.Bind(new(usecase.ContractDeployer), new(*blockchain.Deployer)),

	blockchain.NewInspector,
	wire.Bind(new(usecase.ChainInspector), new(*blockchain.Inspector)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	FSSet,
	InteractiveSet,
	ConfigSet,
	BlockchainSet,
)
