package blockchain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/insight-platform/insight-deploy/internal/domain"
	"github.com/insight-platform/insight-deploy/internal/domain/config"
	"github.com/insight-platform/insight-deploy/internal/domain/models"
	"github.com/insight-platform/insight-deploy/internal/usecase"
)

// DefaultPollInterval is how often the head block is polled while waiting for confirmations
const DefaultPollInterval = 2 * time.Second

// Deployer submits contract creations with go-ethereum's bind package
type Deployer struct {
	dial         Dialer
	progress     usecase.ProgressSink
	log          *slog.Logger
	pollInterval time.Duration
}

// NewDeployer creates a new contract deployer
func NewDeployer(dial Dialer, progress usecase.ProgressSink, log *slog.Logger) *Deployer {
	return &Deployer{
		dial:         dial,
		progress:     progress,
		log:          log.With("component", "Deployer"),
		pollInterval: DefaultPollInterval,
	}
}

// WithPollInterval overrides the confirmation polling interval
func (d *Deployer) WithPollInterval(interval time.Duration) *Deployer {
	d.pollInterval = interval
	return d
}

// Deploy sends the creation transaction and waits until it is mined and confirmed
func (d *Deployer) Deploy(
	ctx context.Context,
	network *config.Network,
	factory *models.ContractFactory,
	signer *models.Signer,
	args ...any,
) (*models.DeployedContract, error) {
	if signer.PrivateKey() == nil {
		return nil, fmt.Errorf("signer %s has no private key", signer.Name)
	}

	client, err := d.dial(ctx, network.RPCURL)
	if err != nil {
		return nil, err
	}
	defer closeClient(client)

	chainID, err := client.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get chain ID: %w", err)
	}
	if network.ChainID != 0 && chainID.Uint64() != network.ChainID {
		return nil, fmt.Errorf("%w: %s expects chain %d, node reports %d",
			domain.ErrNetworkMismatch, network.Name, network.ChainID, chainID.Uint64())
	}

	constructorArgs, err := factory.ABI.Pack("", args...)
	if err != nil {
		return nil, fmt.Errorf("failed to encode constructor arguments: %w", err)
	}

	opts, err := bind.NewKeyedTransactorWithChainID(signer.PrivateKey(), chainID)
	if err != nil {
		return nil, fmt.Errorf("failed to create transactor: %w", err)
	}
	opts.Context = ctx

	address, tx, _, err := bind.DeployContract(opts, factory.ABI, factory.Bytecode, client, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to send deployment transaction: %w", err)
	}

	d.log.Debug("deployment transaction sent", "tx", tx.Hash().Hex(), "address", address.Hex(), "nonce", tx.Nonce())
	d.progress.OnProgress(ctx, usecase.ProgressEvent{
		Stage:   usecase.StageConfirming,
		Message: fmt.Sprintf("Waiting for %s to be mined", tx.Hash().Hex()),
		Spinner: true,
	})

	if _, err := bind.WaitDeployed(ctx, client, tx); err != nil {
		return nil, fmt.Errorf("deployment transaction %s failed: %w", tx.Hash().Hex(), err)
	}

	receipt, err := client.TransactionReceipt(ctx, tx.Hash())
	if err != nil {
		return nil, fmt.Errorf("failed to get receipt for %s: %w", tx.Hash().Hex(), err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, fmt.Errorf("deployment transaction %s reverted", tx.Hash().Hex())
	}

	if err := d.waitConfirmations(ctx, client, receipt, network.Confirmations); err != nil {
		return nil, err
	}

	return &models.DeployedContract{
		Address:         address,
		TransactionHash: tx.Hash(),
		BlockNumber:     receipt.BlockNumber.Uint64(),
		GasUsed:         receipt.GasUsed,
		ChainID:         chainID.Uint64(),
		ConstructorArgs: hexutil.Encode(constructorArgs),
	}, nil
}

// waitConfirmations blocks until the receipt's block is buried under enough blocks.
// The inclusion block counts as the first confirmation.
func (d *Deployer) waitConfirmations(ctx context.Context, client Client, receipt *types.Receipt, confirmations uint64) error {
	if confirmations <= 1 {
		return nil
	}

	target := receipt.BlockNumber.Uint64() + confirmations - 1
	d.progress.OnProgress(ctx, usecase.ProgressEvent{
		Stage:   usecase.StageConfirming,
		Message: fmt.Sprintf("Waiting for %d confirmations", confirmations),
		Spinner: true,
	})

	ticker := time.NewTicker(d.pollInterval)
	defer ticker.Stop()

	for {
		head, err := client.BlockNumber(ctx)
		if err != nil {
			return fmt.Errorf("failed to get block number: %w", err)
		}
		if head >= target {
			return nil
		}
		d.log.Debug("waiting for confirmations", "head", head, "target", target)

		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return fmt.Errorf("timed out waiting for %d confirmations: %w", confirmations, ctx.Err())
			}
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

var _ usecase.ContractDeployer = (*Deployer)(nil)
