package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/insight-platform/insight-deploy/internal/domain/config"
	"github.com/joho/godotenv"
)

const (
	// DataDirName is the per-project state directory
	DataDirName = ".insight"

	configSourceProject = "insight.toml"
	configSourceHardhat = "hardhat"
)

// projectMarkers identify a project root, in priority order
var projectMarkers = []string{
	config.ProjectFile,
	"hardhat.config.ts",
	"hardhat.config.js",
	"hardhat.config.cjs",
	"foundry.toml",
}

// FindProjectRoot walks up from current directory to find a project marker file
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return findProjectRootFrom(dir)
}

func findProjectRootFrom(dir string) (string, error) {
	for {
		for _, marker := range projectMarkers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a project (%s or hardhat.config.* not found)", config.ProjectFile)
		}
		dir = parent
	}
}

// LoadEnvFiles loads .env and .env.local from the project root.
// Variables already present in the environment are not overridden.
func LoadEnvFiles(projectRoot string) {
	envFiles := []string{
		filepath.Join(projectRoot, ".env"),
		filepath.Join(projectRoot, ".env.local"),
	}

	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				// Log warning but don't fail
				fmt.Fprintf(os.Stderr, "Warning: Failed to load %s: %v\n", envFile, err)
			}
		}
	}
}

// LoadProjectConfig reads insight.toml from the project root. Projects without one
// get the built-in localhost configuration. Returns the config and its source.
func LoadProjectConfig(projectRoot string) (*config.ProjectConfig, string, error) {
	path := filepath.Join(projectRoot, config.ProjectFile)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config.DefaultProjectConfig(), configSourceHardhat, nil
	}

	var cfg config.ProjectConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse %s: %w", config.ProjectFile, err)
	}

	applyProjectDefaults(&cfg)

	return &cfg, configSourceProject, nil
}

// applyProjectDefaults fills the settings a minimal insight.toml may omit
func applyProjectDefaults(cfg *config.ProjectConfig) {
	if len(cfg.Project.Artifacts) == 0 {
		cfg.Project.Artifacts = []string{"artifacts", "out"}
	}
	if cfg.Project.DefaultNetwork == "" {
		cfg.Project.DefaultNetwork = config.DefaultNetworkName
	}
	if cfg.Networks == nil {
		cfg.Networks = make(map[string]config.NetworkConfig)
	}
	if _, ok := cfg.Networks[config.DefaultNetworkName]; !ok {
		cfg.Networks[config.DefaultNetworkName] = config.NetworkConfig{RPCURL: config.DefaultRPCURL}
	}
	if cfg.Signers == nil {
		cfg.Signers = make(map[string]config.SignerConfig)
	}
}
