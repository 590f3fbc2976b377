package blockchain

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/ethclient"
)

// Client is the subset of a node connection used to deploy and inspect contracts.
// Both *ethclient.Client and the simulated backend's client satisfy it.
type Client interface {
	bind.ContractBackend
	bind.DeployBackend
	ChainID(ctx context.Context) (*big.Int, error)
	BlockNumber(ctx context.Context) (uint64, error)
}

// Dialer opens a client for an RPC endpoint
type Dialer func(ctx context.Context, rpcURL string) (Client, error)

// DialRPC connects to a JSON-RPC endpoint with ethclient
func DialRPC(ctx context.Context, rpcURL string) (Client, error) {
	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RPC %s: %w", rpcURL, err)
	}
	return client, nil
}

func closeClient(client Client) {
	if c, ok := client.(interface{ Close() }); ok {
		c.Close()
	}
}
