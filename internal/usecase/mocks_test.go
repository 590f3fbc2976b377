package usecase_test

import (
	"context"

	"github.com/insight-platform/insight-deploy/internal/domain/config"
	"github.com/insight-platform/insight-deploy/internal/domain/models"
	"github.com/insight-platform/insight-deploy/internal/usecase"
	"github.com/stretchr/testify/mock"
)

// MockDeploymentStore is a mock implementation of DeploymentRepository
type MockDeploymentStore struct {
	mock.Mock
}

func (m *MockDeploymentStore) GetDeployment(ctx context.Context, id string) (*models.Deployment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Deployment), args.Error(1)
}

func (m *MockDeploymentStore) GetDeploymentByAddress(ctx context.Context, chainID uint64, address string) (*models.Deployment, error) {
	args := m.Called(ctx, chainID, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Deployment), args.Error(1)
}

func (m *MockDeploymentStore) ListDeployments(ctx context.Context, filter usecase.DeploymentFilter) ([]*models.Deployment, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Deployment), args.Error(1)
}

func (m *MockDeploymentStore) SaveDeployment(ctx context.Context, deployment *models.Deployment) error {
	args := m.Called(ctx, deployment)
	return args.Error(0)
}

// MockSignerProvider is a mock implementation of SignerProvider
type MockSignerProvider struct {
	mock.Mock
}

func (m *MockSignerProvider) GetSigners(ctx context.Context, network *config.Network) ([]*models.Signer, error) {
	args := m.Called(ctx, network)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Signer), args.Error(1)
}

// MockFactoryResolver is a mock implementation of ContractFactoryResolver
type MockFactoryResolver struct {
	mock.Mock
}

func (m *MockFactoryResolver) GetContractFactory(ctx context.Context, name string) (*models.ContractFactory, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ContractFactory), args.Error(1)
}

// MockDeployer is a mock implementation of ContractDeployer
type MockDeployer struct {
	mock.Mock
}

func (m *MockDeployer) Deploy(
	ctx context.Context,
	network *config.Network,
	factory *models.ContractFactory,
	signer *models.Signer,
	args ...any,
) (*models.DeployedContract, error) {
	called := m.Called(ctx, network, factory, signer, args)
	if called.Get(0) == nil {
		return nil, called.Error(1)
	}
	return called.Get(0).(*models.DeployedContract), called.Error(1)
}

// MockNetworkResolver is a mock implementation of NetworkResolver
type MockNetworkResolver struct {
	mock.Mock
}

func (m *MockNetworkResolver) GetNetworks(ctx context.Context) []string {
	args := m.Called(ctx)
	return args.Get(0).([]string)
}

func (m *MockNetworkResolver) ResolveNetwork(ctx context.Context, name string) (*config.Network, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*config.Network), args.Error(1)
}

// MockChainInspector is a mock implementation of ChainInspector
type MockChainInspector struct {
	mock.Mock
}

func (m *MockChainInspector) ChainID(ctx context.Context, network *config.Network) (uint64, error) {
	args := m.Called(ctx, network)
	return args.Get(0).(uint64), args.Error(1)
}

// MockConfirmer is a mock implementation of Confirmer
type MockConfirmer struct {
	mock.Mock
}

func (m *MockConfirmer) Confirm(ctx context.Context, message string) (bool, error) {
	args := m.Called(ctx, message)
	return args.Bool(0), args.Error(1)
}

// MockProgressSink records progress output
type MockProgressSink struct {
	events []usecase.ProgressEvent
	infos  []string
	errors []string
}

func (m *MockProgressSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	m.events = append(m.events, event)
}

func (m *MockProgressSink) Info(message string) {
	m.infos = append(m.infos, message)
}

func (m *MockProgressSink) Error(message string) {
	m.errors = append(m.errors, message)
}

func (m *MockProgressSink) stages() []usecase.ExecutionStage {
	stages := make([]usecase.ExecutionStage, len(m.events))
	for i, e := range m.events {
		stages[i] = e.Stage
	}
	return stages
}

// memoryConfigStore is an in-memory LocalConfigStore
type memoryConfigStore struct {
	local   *config.LocalConfig
	exists  bool
	saveErr error
}

func (s *memoryConfigStore) Exists() bool { return s.exists }

func (s *memoryConfigStore) Load(ctx context.Context) (*config.LocalConfig, error) {
	if s.local == nil {
		return &config.LocalConfig{}, nil
	}
	copied := *s.local
	return &copied, nil
}

func (s *memoryConfigStore) Save(ctx context.Context, local *config.LocalConfig) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	copied := *local
	s.local = &copied
	s.exists = true
	return nil
}

func (s *memoryConfigStore) GetPath() string { return "/project/.insight/config.local.json" }
