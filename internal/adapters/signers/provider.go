package signers

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	internalconfig "github.com/insight-platform/insight-deploy/internal/config"
	"github.com/insight-platform/insight-deploy/internal/domain"
	"github.com/insight-platform/insight-deploy/internal/domain/config"
	"github.com/insight-platform/insight-deploy/internal/domain/models"
	"github.com/insight-platform/insight-deploy/internal/usecase"
)

// defaultDevSigner names the implicit signer used on local chains without [signers]
const defaultDevSigner = "dev"

// Provider builds signers from the project's [signers] table
type Provider struct {
	projectRoot string
	configs     map[string]config.SignerConfig
	inspector   usecase.ChainInspector
	log         *slog.Logger
}

// NewProvider creates a new signer provider
func NewProvider(cfg *config.RuntimeConfig, inspector usecase.ChainInspector, log *slog.Logger) *Provider {
	configs := map[string]config.SignerConfig{}
	if cfg.ProjectConfig != nil && cfg.ProjectConfig.Signers != nil {
		configs = cfg.ProjectConfig.Signers
	}
	return &Provider{
		projectRoot: cfg.ProjectRoot,
		configs:     configs,
		inspector:   inspector,
		log:         log.With("component", "SignerProvider"),
	}
}

// GetSigners returns the network's signers in the order of its accounts list
func (p *Provider) GetSigners(ctx context.Context, network *config.Network) ([]*models.Signer, error) {
	chain := &chainCheck{network: network, inspector: p.inspector}

	if len(network.Accounts) == 0 {
		local, err := chain.isLocal(ctx)
		if err != nil {
			return nil, err
		}
		if !local {
			return nil, fmt.Errorf("%w: set networks.%s.accounts", domain.ErrNoSigners, network.Name)
		}
		p.log.Debug("no accounts configured, using dev account 0", "network", network.Name)
		signer, err := devSigner(defaultDevSigner, 0)
		if err != nil {
			return nil, err
		}
		return []*models.Signer{signer}, nil
	}

	signers := make([]*models.Signer, 0, len(network.Accounts))
	for _, name := range network.Accounts {
		sc, ok := p.configs[name]
		if !ok {
			return nil, fmt.Errorf("signer '%s' in networks.%s.accounts is not defined in [signers]", name, network.Name)
		}

		signer, err := p.load(ctx, name, sc, chain)
		if err != nil {
			return nil, fmt.Errorf("signer '%s': %w", name, err)
		}
		signers = append(signers, signer)
	}

	return signers, nil
}

func (p *Provider) load(ctx context.Context, name string, sc config.SignerConfig, chain *chainCheck) (*models.Signer, error) {
	var (
		signer *models.Signer
		err    error
	)

	switch models.SignerType(sc.Type) {
	case models.SignerTypePrivateKey:
		signer, err = privateKeySigner(name, sc)
	case models.SignerTypeKeystore:
		signer, err = p.keystoreSigner(name, sc)
	case models.SignerTypeDev:
		local, cerr := chain.isLocal(ctx)
		if cerr != nil {
			return nil, cerr
		}
		if !local {
			return nil, fmt.Errorf("%w: dev accounts are only available on local chains", domain.ErrSignerNotAllowed)
		}
		signer, err = devSigner(name, sc.Index)
	default:
		return nil, fmt.Errorf("unsupported signer type: %q", sc.Type)
	}
	if err != nil {
		return nil, err
	}

	if sc.Address != "" {
		if !common.IsHexAddress(sc.Address) {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidAddress, sc.Address)
		}
		if common.HexToAddress(sc.Address) != signer.Address {
			return nil, fmt.Errorf("configured address %s does not match key address %s", sc.Address, signer.Address.Hex())
		}
	}

	return signer, nil
}

func privateKeySigner(name string, sc config.SignerConfig) (*models.Signer, error) {
	raw, err := internalconfig.ExpandEnvRefs(sc.PrivateKey, fmt.Sprintf("signers.%s.private_key", name))
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, fmt.Errorf("private_key is empty")
	}

	key, err := parseKey(raw)
	if err != nil {
		return nil, err
	}
	return models.NewSigner(name, models.SignerTypePrivateKey, key, crypto.PubkeyToAddress(key.PublicKey)), nil
}

func (p *Provider) keystoreSigner(name string, sc config.SignerConfig) (*models.Signer, error) {
	if sc.Path == "" {
		return nil, fmt.Errorf("keystore path is required")
	}

	path, err := internalconfig.ExpandEnvRefs(sc.Path, fmt.Sprintf("signers.%s.path", name))
	if err != nil {
		return nil, err
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(p.projectRoot, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read keystore: %w", err)
	}

	var password string
	if sc.PasswordEnv != "" {
		password = os.Getenv(sc.PasswordEnv)
	}

	key, err := keystore.DecryptKey(data, password)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt keystore %s: %w", filepath.Base(path), err)
	}
	return models.NewSigner(name, models.SignerTypeKeystore, key.PrivateKey, key.Address), nil
}

func devSigner(name string, index int) (*models.Signer, error) {
	if index < 0 || index >= len(devKeys) {
		return nil, fmt.Errorf("dev account index %d out of range (0-%d)", index, len(devKeys)-1)
	}
	key, err := crypto.HexToECDSA(devKeys[index])
	if err != nil {
		return nil, err
	}
	return models.NewSigner(name, models.SignerTypeDev, key, crypto.PubkeyToAddress(key.PublicKey)), nil
}

func parseKey(raw string) (*ecdsa.PrivateKey, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(raw), "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}
	return key, nil
}

// chainCheck resolves whether a network is a local chain, probing the node at most once
type chainCheck struct {
	network   *config.Network
	inspector usecase.ChainInspector
	chainID   uint64
}

func (c *chainCheck) isLocal(ctx context.Context) (bool, error) {
	if c.chainID == 0 {
		c.chainID = c.network.ChainID
	}
	if c.chainID == 0 {
		chainID, err := c.inspector.ChainID(ctx, c.network)
		if err != nil {
			return false, fmt.Errorf("failed to determine chain id of %s: %w", c.network.Name, err)
		}
		c.chainID = chainID
	}
	return domain.IsLocalChain(c.chainID), nil
}

var _ usecase.SignerProvider = (*Provider)(nil)
