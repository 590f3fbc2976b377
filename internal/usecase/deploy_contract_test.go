package usecase_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/insight-platform/insight-deploy/internal/domain"
	"github.com/insight-platform/insight-deploy/internal/domain/config"
	"github.com/insight-platform/insight-deploy/internal/domain/models"
	"github.com/insight-platform/insight-deploy/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type deployFixture struct {
	cfg       *config.RuntimeConfig
	network   *config.Network
	signer    *models.Signer
	factory   *models.ContractFactory
	contract  *models.DeployedContract
	networks  *MockNetworkResolver
	signers   *MockSignerProvider
	factories *MockFactoryResolver
	deployer  *MockDeployer
	repo      *MockDeploymentStore
	confirmer *MockConfirmer
	progress  *MockProgressSink
}

func newDeployFixture(network *config.Network) *deployFixture {
	return &deployFixture{
		cfg:     &config.RuntimeConfig{NetworkName: network.Name, NonInteractive: false},
		network: network,
		signer: models.NewSigner("deployer", models.SignerTypeDev, nil,
			common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")),
		factory: &models.ContractFactory{
			Name:       domain.CourseOpeningNFTContract,
			SourcePath: "contracts/CourseOpeningNFT.sol",
			Format:     models.ArtifactFormatHardhat,
			Bytecode:   common.FromHex("0x6080"),
		},
		contract: &models.DeployedContract{
			Address:         common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3"),
			TransactionHash: common.HexToHash("0xabc1"),
			BlockNumber:     1,
			GasUsed:         2_000_000,
			ChainID:         network.ChainID,
		},
		networks:  new(MockNetworkResolver),
		signers:   new(MockSignerProvider),
		factories: new(MockFactoryResolver),
		deployer:  new(MockDeployer),
		repo:      new(MockDeploymentStore),
		confirmer: new(MockConfirmer),
		progress:  &MockProgressSink{},
	}
}

func (f *deployFixture) useCase() *usecase.DeployContract {
	return usecase.NewDeployContract(
		f.cfg,
		f.networks,
		f.signers,
		f.factories,
		f.deployer,
		f.repo,
		f.confirmer,
		f.progress,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
}

func (f *deployFixture) assertExpectations(t *testing.T) {
	f.networks.AssertExpectations(t)
	f.signers.AssertExpectations(t)
	f.factories.AssertExpectations(t)
	f.deployer.AssertExpectations(t)
	f.repo.AssertExpectations(t)
	f.confirmer.AssertExpectations(t)
}

var courseOpeningNFTArgs = []any{"CourseOpeningNFT", "CONFT", "localhost:3001/metadata/conft/"}

func localNetwork() *config.Network {
	return &config.Network{Name: "localhost", RPCURL: "http://127.0.0.1:8545", ChainID: 31337, Confirmations: 1}
}

func TestDeployContract(t *testing.T) {
	ctx := context.Background()

	t.Run("deploys CourseOpeningNFT with fixed constructor arguments", func(t *testing.T) {
		f := newDeployFixture(localNetwork())
		f.networks.On("ResolveNetwork", ctx, "localhost").Return(f.network, nil)
		f.signers.On("GetSigners", ctx, f.network).Return([]*models.Signer{f.signer}, nil)
		f.factories.On("GetContractFactory", ctx, "CourseOpeningNFT").Return(f.factory, nil)
		f.deployer.On("Deploy", ctx, f.network, f.factory, f.signer, courseOpeningNFTArgs).Return(f.contract, nil)
		f.repo.On("SaveDeployment", ctx, mock.MatchedBy(func(d *models.Deployment) bool {
			return d.ID == "31337/CourseOpeningNFT/0x5FbDB2315678afecb367f032d93F642f64180aa3" &&
				d.Deployer == f.signer.Address.Hex() &&
				d.Network == "localhost" &&
				assert.ObjectsAreEqual([]string{"CourseOpeningNFT", "CONFT", "localhost:3001/metadata/conft/"}, d.Args)
		})).Return(nil)

		result, err := f.useCase().Run(ctx, usecase.DeployContractParams{})
		require.NoError(t, err)

		assert.Equal(t, f.signer, result.Deployer)
		assert.Equal(t, f.contract, result.Contract)
		require.NotNil(t, result.Deployment)
		assert.NoError(t, result.RecordError)
		assert.Equal(t, "contracts/CourseOpeningNFT.sol:CourseOpeningNFT", result.Deployment.Artifact.Path)

		assert.Contains(t, f.progress.infos, "Deploying contracts with the account: 0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
		assert.Equal(t, []usecase.ExecutionStage{
			usecase.StageSigners,
			usecase.StageResolving,
			usecase.StageDeploying,
			usecase.StageCompleted,
		}, f.progress.stages())

		// Local networks never prompt
		f.confirmer.AssertNotCalled(t, "Confirm", mock.Anything, mock.Anything)
		f.assertExpectations(t)
	})

	t.Run("uses the first signer as deployer", func(t *testing.T) {
		f := newDeployFixture(localNetwork())
		second := models.NewSigner("second", models.SignerTypeDev, nil,
			common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8"))
		f.networks.On("ResolveNetwork", ctx, "localhost").Return(f.network, nil)
		f.signers.On("GetSigners", ctx, f.network).Return([]*models.Signer{f.signer, second}, nil)
		f.factories.On("GetContractFactory", ctx, "CourseOpeningNFT").Return(f.factory, nil)
		f.deployer.On("Deploy", ctx, f.network, f.factory, f.signer, courseOpeningNFTArgs).Return(f.contract, nil)
		f.repo.On("SaveDeployment", ctx, mock.Anything).Return(nil)

		result, err := f.useCase().Run(ctx, usecase.DeployContractParams{})
		require.NoError(t, err)
		assert.Equal(t, f.signer, result.Deployer)
		f.assertExpectations(t)
	})

	t.Run("network resolution failure stops before signers", func(t *testing.T) {
		f := newDeployFixture(localNetwork())
		f.networks.On("ResolveNetwork", ctx, "localhost").Return(nil, domain.ErrNetworkNotFound)

		_, err := f.useCase().Run(ctx, usecase.DeployContractParams{})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNetworkNotFound)
		f.signers.AssertNotCalled(t, "GetSigners", mock.Anything, mock.Anything)
	})

	t.Run("signer failure stops before factory lookup", func(t *testing.T) {
		f := newDeployFixture(localNetwork())
		f.networks.On("ResolveNetwork", ctx, "localhost").Return(f.network, nil)
		f.signers.On("GetSigners", ctx, f.network).Return(nil, errors.New("keystore locked"))

		_, err := f.useCase().Run(ctx, usecase.DeployContractParams{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to get signers: keystore locked")
		f.factories.AssertNotCalled(t, "GetContractFactory", mock.Anything, mock.Anything)
		f.deployer.AssertNotCalled(t, "Deploy", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("no signers", func(t *testing.T) {
		f := newDeployFixture(localNetwork())
		f.networks.On("ResolveNetwork", ctx, "localhost").Return(f.network, nil)
		f.signers.On("GetSigners", ctx, f.network).Return([]*models.Signer{}, nil)

		_, err := f.useCase().Run(ctx, usecase.DeployContractParams{})
		assert.ErrorIs(t, err, domain.ErrNoSigners)
		f.factories.AssertNotCalled(t, "GetContractFactory", mock.Anything, mock.Anything)
	})

	t.Run("factory failure stops before deploy", func(t *testing.T) {
		f := newDeployFixture(localNetwork())
		notFound := &domain.NoContractsMatchErr{Name: "CourseOpeningNFT", Suggestions: []string{"CourseOpeningNFTV2"}}
		f.networks.On("ResolveNetwork", ctx, "localhost").Return(f.network, nil)
		f.signers.On("GetSigners", ctx, f.network).Return([]*models.Signer{f.signer}, nil)
		f.factories.On("GetContractFactory", ctx, "CourseOpeningNFT").Return(nil, notFound)

		_, err := f.useCase().Run(ctx, usecase.DeployContractParams{})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrContractNotFound)
		f.deployer.AssertNotCalled(t, "Deploy", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		f.repo.AssertNotCalled(t, "SaveDeployment", mock.Anything, mock.Anything)
	})

	t.Run("deploy failure is not recorded", func(t *testing.T) {
		f := newDeployFixture(localNetwork())
		f.networks.On("ResolveNetwork", ctx, "localhost").Return(f.network, nil)
		f.signers.On("GetSigners", ctx, f.network).Return([]*models.Signer{f.signer}, nil)
		f.factories.On("GetContractFactory", ctx, "CourseOpeningNFT").Return(f.factory, nil)
		f.deployer.On("Deploy", ctx, f.network, f.factory, f.signer, courseOpeningNFTArgs).
			Return(nil, errors.New("insufficient funds for gas"))

		_, err := f.useCase().Run(ctx, usecase.DeployContractParams{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to deploy CourseOpeningNFT: insufficient funds for gas")
		f.repo.AssertNotCalled(t, "SaveDeployment", mock.Anything, mock.Anything)
	})

	t.Run("registry failure is reported but not fatal", func(t *testing.T) {
		f := newDeployFixture(localNetwork())
		f.networks.On("ResolveNetwork", ctx, "localhost").Return(f.network, nil)
		f.signers.On("GetSigners", ctx, f.network).Return([]*models.Signer{f.signer}, nil)
		f.factories.On("GetContractFactory", ctx, "CourseOpeningNFT").Return(f.factory, nil)
		f.deployer.On("Deploy", ctx, f.network, f.factory, f.signer, courseOpeningNFTArgs).Return(f.contract, nil)
		f.repo.On("SaveDeployment", ctx, mock.Anything).Return(errors.New("disk full"))

		result, err := f.useCase().Run(ctx, usecase.DeployContractParams{})
		require.NoError(t, err)
		assert.Nil(t, result.Deployment)
		assert.EqualError(t, result.RecordError, "disk full")
		assert.Equal(t, f.contract, result.Contract)
		require.Len(t, f.progress.errors, 1)
		assert.Contains(t, f.progress.errors[0], "disk full")
	})
}

func TestDeployContract_Confirmation(t *testing.T) {
	ctx := context.Background()
	sepolia := &config.Network{Name: "sepolia", RPCURL: "https://rpc.sepolia.org", ChainID: 11155111, Confirmations: 2}

	t.Run("remote network asks for confirmation", func(t *testing.T) {
		f := newDeployFixture(sepolia)
		f.networks.On("ResolveNetwork", ctx, "sepolia").Return(f.network, nil)
		f.signers.On("GetSigners", ctx, f.network).Return([]*models.Signer{f.signer}, nil)
		f.confirmer.On("Confirm", ctx, "Deploy CourseOpeningNFT to sepolia").Return(true, nil)
		f.factories.On("GetContractFactory", ctx, "CourseOpeningNFT").Return(f.factory, nil)
		f.deployer.On("Deploy", ctx, f.network, f.factory, f.signer, courseOpeningNFTArgs).Return(f.contract, nil)
		f.repo.On("SaveDeployment", ctx, mock.Anything).Return(nil)

		_, err := f.useCase().Run(ctx, usecase.DeployContractParams{})
		require.NoError(t, err)
		f.assertExpectations(t)
	})

	t.Run("declined confirmation cancels", func(t *testing.T) {
		f := newDeployFixture(sepolia)
		f.networks.On("ResolveNetwork", ctx, "sepolia").Return(f.network, nil)
		f.signers.On("GetSigners", ctx, f.network).Return([]*models.Signer{f.signer}, nil)
		f.confirmer.On("Confirm", ctx, mock.Anything).Return(false, nil)

		_, err := f.useCase().Run(ctx, usecase.DeployContractParams{})
		assert.ErrorIs(t, err, domain.ErrDeploymentCancelled)
		f.factories.AssertNotCalled(t, "GetContractFactory", mock.Anything, mock.Anything)
	})

	t.Run("non-interactive skips confirmation", func(t *testing.T) {
		f := newDeployFixture(sepolia)
		f.cfg.NonInteractive = true
		f.networks.On("ResolveNetwork", ctx, "sepolia").Return(f.network, nil)
		f.signers.On("GetSigners", ctx, f.network).Return([]*models.Signer{f.signer}, nil)
		f.factories.On("GetContractFactory", ctx, "CourseOpeningNFT").Return(f.factory, nil)
		f.deployer.On("Deploy", ctx, f.network, f.factory, f.signer, courseOpeningNFTArgs).Return(f.contract, nil)
		f.repo.On("SaveDeployment", ctx, mock.Anything).Return(nil)

		_, err := f.useCase().Run(ctx, usecase.DeployContractParams{})
		require.NoError(t, err)
		f.confirmer.AssertNotCalled(t, "Confirm", mock.Anything, mock.Anything)
	})

	t.Run("loopback rpc without chain id counts as local", func(t *testing.T) {
		f := newDeployFixture(&config.Network{Name: "dev", RPCURL: "http://localhost:9545"})
		f.networks.On("ResolveNetwork", ctx, "dev").Return(f.network, nil)
		f.signers.On("GetSigners", ctx, f.network).Return([]*models.Signer{f.signer}, nil)
		f.factories.On("GetContractFactory", ctx, "CourseOpeningNFT").Return(f.factory, nil)
		f.deployer.On("Deploy", ctx, f.network, f.factory, f.signer, courseOpeningNFTArgs).Return(f.contract, nil)
		f.repo.On("SaveDeployment", ctx, mock.Anything).Return(nil)

		_, err := f.useCase().Run(ctx, usecase.DeployContractParams{})
		require.NoError(t, err)
		f.confirmer.AssertNotCalled(t, "Confirm", mock.Anything, mock.Anything)
	})
}
