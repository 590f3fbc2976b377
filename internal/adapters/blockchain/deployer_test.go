package blockchain

import (
	"context"
	"io"
	"log/slog"
	"math/big"
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient/simulated"
	"github.com/insight-platform/insight-deploy/internal/domain"
	"github.com/insight-platform/insight-deploy/internal/domain/config"
	"github.com/insight-platform/insight-deploy/internal/domain/models"
	"github.com/insight-platform/insight-deploy/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testKeyHex = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

	// Copies a 10 byte runtime that returns 42; constructor arguments appended to it are ignored
	testInitCode = "0x600a600c600039600a6000f3602a60005260206000f3"

	testABI = `[{"inputs":[{"name":"name_","type":"string"},{"name":"symbol_","type":"string"},{"name":"baseURI_","type":"string"}],"stateMutability":"nonpayable","type":"constructor"}]`
)

// simClient hides Close so the deployer cannot shut down the shared backend
type simClient struct {
	simulated.Client
}

type recordingSink struct {
	usecase.NopProgress
	stages []usecase.ExecutionStage
}

func (s *recordingSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	s.stages = append(s.stages, event.Stage)
}

type testChain struct {
	backend *simulated.Backend
	signer  *models.Signer
	dial    Dialer
}

func newTestChain(t *testing.T) *testChain {
	t.Helper()

	key, err := crypto.HexToECDSA(testKeyHex)
	require.NoError(t, err)
	addr := crypto.PubkeyToAddress(key.PublicKey)

	backend := simulated.NewBackend(types.GenesisAlloc{
		addr: {Balance: new(big.Int).Mul(big.NewInt(1000), big.NewInt(1e18))},
	})
	t.Cleanup(func() { _ = backend.Close() })

	return &testChain{
		backend: backend,
		signer:  models.NewSigner("dev0", models.SignerTypeDev, key, addr),
		dial: func(ctx context.Context, rpcURL string) (Client, error) {
			return simClient{backend.Client()}, nil
		},
	}
}

// mine commits blocks in the background until the returned stop func is called
func (c *testChain) mine() (stop func()) {
	done := make(chan struct{})
	exited := make(chan struct{})
	go func() {
		defer close(exited)
		ticker := time.NewTicker(50 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				c.backend.Commit()
			}
		}
	}()
	return func() {
		close(done)
		<-exited
	}
}

func testFactory(t *testing.T) *models.ContractFactory {
	t.Helper()
	parsed, err := abi.JSON(strings.NewReader(testABI))
	require.NoError(t, err)
	return &models.ContractFactory{
		Name:       "CourseOpeningNFT",
		SourcePath: "contracts/CourseOpeningNFT.sol",
		Format:     models.ArtifactFormatHardhat,
		ABI:        parsed,
		Bytecode:   common.FromHex(testInitCode),
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDeployer_Deploy(t *testing.T) {
	chain := newTestChain(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	stop := chain.mine()
	defer stop()

	sink := &recordingSink{}
	deployer := NewDeployer(chain.dial, sink, discardLogger()).WithPollInterval(20 * time.Millisecond)
	network := &config.Network{Name: "simulated", RPCURL: "sim://", ChainID: domain.SimulatedChainID, Confirmations: 3}

	contract, err := deployer.Deploy(ctx, network, testFactory(t), chain.signer, domain.CourseOpeningNFTArgs()...)
	require.NoError(t, err)

	assert.Equal(t, crypto.CreateAddress(chain.signer.Address, 0), contract.Address)
	assert.Equal(t, domain.SimulatedChainID, contract.ChainID)
	assert.NotZero(t, contract.GasUsed)
	assert.NotZero(t, contract.BlockNumber)
	assert.True(t, strings.HasPrefix(contract.ConstructorArgs, "0x"))

	code, err := chain.backend.Client().CodeAt(ctx, contract.Address, nil)
	require.NoError(t, err)
	assert.Equal(t, common.FromHex("0x602a60005260206000f3"), code)

	head, err := chain.backend.Client().BlockNumber(ctx)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, head, contract.BlockNumber+2)

	assert.Contains(t, sink.stages, usecase.StageConfirming)
}

func TestDeployer_ChainMismatch(t *testing.T) {
	chain := newTestChain(t)
	deployer := NewDeployer(chain.dial, usecase.NopProgress{}, discardLogger())
	network := &config.Network{Name: "sepolia", RPCURL: "sim://", ChainID: 11155111, Confirmations: 1}

	_, err := deployer.Deploy(context.Background(), network, testFactory(t), chain.signer, domain.CourseOpeningNFTArgs()...)
	assert.ErrorIs(t, err, domain.ErrNetworkMismatch)
}

func TestDeployer_BadConstructorArgs(t *testing.T) {
	chain := newTestChain(t)
	deployer := NewDeployer(chain.dial, usecase.NopProgress{}, discardLogger())
	network := &config.Network{Name: "simulated", RPCURL: "sim://", Confirmations: 1}

	_, err := deployer.Deploy(context.Background(), network, testFactory(t), chain.signer, "only-one")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to encode constructor arguments")
}

func TestDeployer_SignerWithoutKey(t *testing.T) {
	chain := newTestChain(t)
	deployer := NewDeployer(chain.dial, usecase.NopProgress{}, discardLogger())
	watchOnly := models.NewSigner("watch", models.SignerTypePrivateKey, nil, chain.signer.Address)

	_, err := deployer.Deploy(context.Background(), &config.Network{Name: "simulated"}, testFactory(t), watchOnly)
	assert.Error(t, err)
}

func TestInspector_ChainID(t *testing.T) {
	chain := newTestChain(t)

	chainID, err := NewInspector(chain.dial).ChainID(context.Background(), &config.Network{RPCURL: "sim://"})
	require.NoError(t, err)
	assert.Equal(t, domain.SimulatedChainID, chainID)
}
