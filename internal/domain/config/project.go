package config

const (
	// ProjectFile is the project configuration file name
	ProjectFile = "insight.toml"

	// DefaultNetworkName is used when nothing selects a network
	DefaultNetworkName = "localhost"

	// DefaultRPCURL is the JSON-RPC endpoint of a local Hardhat or Anvil node
	DefaultRPCURL = "http://127.0.0.1:8545"
)

// ProjectConfig represents insight.toml
type ProjectConfig struct {
	Project  ProjectSection           `toml:"project" yaml:"project"`
	Networks map[string]NetworkConfig `toml:"networks" yaml:"networks"`
	Signers  map[string]SignerConfig  `toml:"signers" yaml:"signers"`
}

// ProjectSection holds project-wide settings
type ProjectSection struct {
	Artifacts      []string `toml:"artifacts" yaml:"artifacts"`
	DefaultNetwork string   `toml:"default_network" yaml:"default_network"`
}

// NetworkConfig is a raw [networks.<name>] entry. Values may contain ${VAR} references.
type NetworkConfig struct {
	RPCURL        string   `toml:"rpc_url" yaml:"rpc_url"`
	ChainID       uint64   `toml:"chain_id" yaml:"chain_id,omitempty"`
	Accounts      []string `toml:"accounts" yaml:"accounts,omitempty"`
	Confirmations uint64   `toml:"confirmations" yaml:"confirmations,omitempty"`
	ExplorerURL   string   `toml:"explorer_url" yaml:"explorer_url,omitempty"`
}

// SignerConfig is a raw [signers.<name>] entry
type SignerConfig struct {
	Type        string `toml:"type" yaml:"type"`
	PrivateKey  string `toml:"private_key" yaml:"-"`
	Path        string `toml:"path" yaml:"path,omitempty"`
	PasswordEnv string `toml:"password_env" yaml:"password_env,omitempty"`
	Index       int    `toml:"index" yaml:"index,omitempty"`
	Address     string `toml:"address" yaml:"address,omitempty"`
}

// DefaultProjectConfig returns the configuration used for a bare Hardhat project
func DefaultProjectConfig() *ProjectConfig {
	return &ProjectConfig{
		Project: ProjectSection{
			Artifacts:      []string{"artifacts"},
			DefaultNetwork: DefaultNetworkName,
		},
		Networks: map[string]NetworkConfig{
			DefaultNetworkName: {
				RPCURL: DefaultRPCURL,
			},
		},
		Signers: map[string]SignerConfig{},
	}
}
