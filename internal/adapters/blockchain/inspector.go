package blockchain

import (
	"context"
	"fmt"
	"time"

	"github.com/insight-platform/insight-deploy/internal/domain/config"
	"github.com/insight-platform/insight-deploy/internal/usecase"
)

// chainIDTimeout bounds a single chain id query
const chainIDTimeout = 5 * time.Second

// Inspector queries nodes for chain metadata
type Inspector struct {
	dial Dialer
}

// NewInspector creates a new chain inspector
func NewInspector(dial Dialer) *Inspector {
	return &Inspector{dial: dial}
}

// ChainID returns the chain id reported by the network's node
func (i *Inspector) ChainID(ctx context.Context, network *config.Network) (uint64, error) {
	ctx, cancel := context.WithTimeout(ctx, chainIDTimeout)
	defer cancel()

	client, err := i.dial(ctx, network.RPCURL)
	if err != nil {
		return 0, err
	}
	defer closeClient(client)

	chainID, err := client.ChainID(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get chain ID: %w", err)
	}
	return chainID.Uint64(), nil
}

var _ usecase.ChainInspector = (*Inspector)(nil)
