package config

import (
	"fmt"
	"sort"

	"github.com/insight-platform/insight-deploy/internal/domain"
	"github.com/insight-platform/insight-deploy/internal/domain/config"
)

// NetworkResolver resolves network names against the project configuration
type NetworkResolver struct {
	project *config.ProjectConfig
}

// NewNetworkResolver creates a new network resolver
func NewNetworkResolver(project *config.ProjectConfig) *NetworkResolver {
	return &NetworkResolver{project: project}
}

// Names returns the configured network names, sorted
func (r *NetworkResolver) Names() []string {
	names := make([]string, 0, len(r.project.Networks))
	for name := range r.project.Networks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve resolves a network name to its configuration with ${VAR} references expanded
func (r *NetworkResolver) Resolve(networkName string) (*config.Network, error) {
	raw, exists := r.project.Networks[networkName]
	if !exists {
		return nil, fmt.Errorf("%w: '%s' is not configured in [networks]", domain.ErrNetworkNotFound, networkName)
	}

	rpcURL, err := ExpandEnvRefs(raw.RPCURL, fmt.Sprintf("networks.%s.rpc_url", networkName))
	if err != nil {
		return nil, err
	}
	if rpcURL == "" {
		return nil, fmt.Errorf("network '%s' has no rpc_url (e.g. rpc_url = \"${%s}\")", networkName, GenerateEnvVarName(networkName))
	}

	confirmations := raw.Confirmations
	if confirmations == 0 {
		confirmations = 1
	}

	explorer := raw.ExplorerURL
	if explorer == "" {
		explorer = DefaultExplorerURL(raw.ChainID)
	}

	return &config.Network{
		Name:          networkName,
		RPCURL:        rpcURL,
		ChainID:       raw.ChainID,
		Accounts:      append([]string(nil), raw.Accounts...),
		Confirmations: confirmations,
		ExplorerURL:   explorer,
	}, nil
}

// DefaultExplorerURL returns a well-known block explorer for a chain id
func DefaultExplorerURL(chainID uint64) string {
	switch chainID {
	case 1:
		return "https://etherscan.io"
	case 11155111:
		return "https://sepolia.etherscan.io"
	case 17000:
		return "https://holesky.etherscan.io"
	case 10:
		return "https://optimistic.etherscan.io"
	case 137:
		return "https://polygonscan.com"
	case 80002:
		return "https://amoy.polygonscan.com"
	case 8453:
		return "https://basescan.org"
	case 84532:
		return "https://sepolia.basescan.org"
	case 42161:
		return "https://arbiscan.io"
	case 56:
		return "https://bscscan.com"
	default:
		return ""
	}
}
