package config

import (
	"time"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot string
	DataDir     string

	// Context settings
	NetworkName string

	// Execution settings
	Debug          bool
	NonInteractive bool
	JSON           bool // Output in JSON format
	Timeout        time.Duration

	// Config source tracking
	ConfigSource string // "insight.toml" or "hardhat"

	// Resolved configurations
	ProjectConfig *ProjectConfig
}

// Network represents a resolved network
type Network struct {
	Name          string   `json:"name" yaml:"name"`
	RPCURL        string   `json:"rpcUrl" yaml:"rpc_url"`
	ChainID       uint64   `json:"chainId" yaml:"chain_id"`
	Accounts      []string `json:"accounts,omitempty" yaml:"accounts,omitempty"`
	Confirmations uint64   `json:"confirmations" yaml:"confirmations"`
	ExplorerURL   string   `json:"explorerUrl,omitempty" yaml:"explorer_url,omitempty"`
}
