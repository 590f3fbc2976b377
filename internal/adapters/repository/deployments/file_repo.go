package deployments

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/insight-platform/insight-deploy/internal/domain"
	"github.com/insight-platform/insight-deploy/internal/domain/config"
	"github.com/insight-platform/insight-deploy/internal/domain/models"
	"github.com/insight-platform/insight-deploy/internal/usecase"
)

const (
	DeploymentsFile = "deployments.json"
	AddressBookFile = "addresses.json"
)

// AddressBook maps chain ID -> network -> contract name -> latest address.
// Frontends read it to find the current CourseOpeningNFT without parsing the full registry.
type AddressBook map[uint64]map[string]map[string]string

// FileRepository stores the deployments in json files on the system
type FileRepository struct {
	dataDir     string
	mu          sync.RWMutex
	deployments map[string]*models.Deployment
	byAddress   map[uint64]map[string]string
	addressBook AddressBook
}

// NewFileRepository creates a repository rooted at dataDir
func NewFileRepository(dataDir string) (*FileRepository, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	r := &FileRepository{
		dataDir:     dataDir,
		deployments: make(map[string]*models.Deployment),
	}

	if err := r.load(); err != nil {
		return nil, fmt.Errorf("failed to load registry: %w", err)
	}

	return r, nil
}

// NewFileRepositoryFromConfig creates a repository in the project's data directory
func NewFileRepositoryFromConfig(cfg *config.RuntimeConfig) (*FileRepository, error) {
	return NewFileRepository(cfg.DataDir)
}

// load reads the registry file
func (r *FileRepository) load() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.loadFile(DeploymentsFile, &r.deployments); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to load deployments: %w", err)
	}
	if r.deployments == nil {
		r.deployments = make(map[string]*models.Deployment)
	}

	r.rebuildLookups()
	return nil
}

func (r *FileRepository) loadFile(filename string, v any) error {
	data, err := os.ReadFile(filepath.Join(r.dataDir, filename))
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

// save writes all registry files. Both temp files are written before either is
// renamed so a failed write leaves the previous pair on disk.
func (r *FileRepository) save() error {
	deploymentsTmp, err := r.writeTemp(DeploymentsFile, r.deployments)
	if err != nil {
		return fmt.Errorf("failed to save deployments: %w", err)
	}
	addressBookTmp, err := r.writeTemp(AddressBookFile, r.addressBook)
	if err != nil {
		os.Remove(deploymentsTmp)
		return fmt.Errorf("failed to save address book: %w", err)
	}

	if err := os.Rename(deploymentsTmp, filepath.Join(r.dataDir, DeploymentsFile)); err != nil {
		os.Remove(deploymentsTmp)
		os.Remove(addressBookTmp)
		return fmt.Errorf("failed to save deployments: %w", err)
	}
	if err := os.Rename(addressBookTmp, filepath.Join(r.dataDir, AddressBookFile)); err != nil {
		os.Remove(addressBookTmp)
		return fmt.Errorf("failed to save address book: %w", err)
	}
	return nil
}

// writeTemp marshals v next to filename and returns the temp path
func (r *FileRepository) writeTemp(filename string, v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}

	tmpPath := filepath.Join(r.dataDir, filename) + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return "", err
	}
	return tmpPath, nil
}

// rebuildLookups rebuilds the address index and the address book
func (r *FileRepository) rebuildLookups() {
	r.byAddress = make(map[uint64]map[string]string)
	r.addressBook = make(AddressBook)

	for id, dep := range r.deployments {
		if r.byAddress[dep.ChainID] == nil {
			r.byAddress[dep.ChainID] = make(map[string]string)
		}
		r.byAddress[dep.ChainID][strings.ToLower(dep.Address)] = id
	}

	// Latest deployment per contract wins
	for _, dep := range r.deployments {
		network := r.addressBook[dep.ChainID][dep.Network]
		if network == nil {
			if r.addressBook[dep.ChainID] == nil {
				r.addressBook[dep.ChainID] = make(map[string]map[string]string)
			}
			network = make(map[string]string)
			r.addressBook[dep.ChainID][dep.Network] = network
		}

		current, ok := network[dep.ContractName]
		if ok {
			if prev := r.deployments[r.byAddress[dep.ChainID][strings.ToLower(current)]]; prev != nil && prev.CreatedAt.After(dep.CreatedAt) {
				continue
			}
		}
		network[dep.ContractName] = dep.Address
	}
}

// GetDeployment retrieves a deployment by ID
func (r *FileRepository) GetDeployment(ctx context.Context, id string) (*models.Deployment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	dep, exists := r.deployments[id]
	if !exists {
		return nil, domain.ErrNotFound
	}

	clone := *dep
	return &clone, nil
}

// GetDeploymentByAddress retrieves a deployment by address. A zero chainID searches every chain
// and fails with AmbiguousDeploymentErr when the address exists on more than one.
func (r *FileRepository) GetDeploymentByAddress(ctx context.Context, chainID uint64, address string) (*models.Deployment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	addr := strings.ToLower(address)

	if chainID == 0 {
		var ids []string
		for _, chainAddrs := range r.byAddress {
			if id, ok := chainAddrs[addr]; ok {
				ids = append(ids, id)
			}
		}

		switch len(ids) {
		case 0:
			return nil, domain.ErrNotFound
		case 1:
			clone := *r.deployments[ids[0]]
			return &clone, nil
		default:
			slices.Sort(ids)
			return nil, &domain.AmbiguousDeploymentErr{Address: address, IDs: ids}
		}
	}

	chainAddrs, exists := r.byAddress[chainID]
	if !exists {
		return nil, fmt.Errorf("no deployments found on chain %d: %w", chainID, domain.ErrNotFound)
	}

	id, exists := chainAddrs[addr]
	if !exists {
		return nil, fmt.Errorf("deployment at address %s not found on chain %d: %w", address, chainID, domain.ErrNotFound)
	}

	clone := *r.deployments[id]
	return &clone, nil
}

// ListDeployments retrieves deployments matching the filter
func (r *FileRepository) ListDeployments(ctx context.Context, filter usecase.DeploymentFilter) ([]*models.Deployment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*models.Deployment, 0, len(r.deployments))
	for _, dep := range r.deployments {
		if filter.ChainID != 0 && dep.ChainID != filter.ChainID {
			continue
		}
		if filter.ContractName != "" && dep.ContractName != filter.ContractName {
			continue
		}
		if filter.Network != "" && dep.Network != filter.Network {
			continue
		}

		clone := *dep
		result = append(result, &clone)
	}

	return result, nil
}

// SaveDeployment saves or updates a deployment
func (r *FileRepository) SaveDeployment(ctx context.Context, deployment *models.Deployment) error {
	if deployment.ID == "" {
		return fmt.Errorf("deployment ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	clone := *deployment
	previous, existed := r.deployments[deployment.ID]
	r.deployments[deployment.ID] = &clone
	r.rebuildLookups()

	if err := r.save(); err != nil {
		// Keep memory consistent with disk
		if existed {
			r.deployments[deployment.ID] = previous
		} else {
			delete(r.deployments, deployment.ID)
		}
		r.rebuildLookups()
		return err
	}

	return nil
}

// AddressBook returns a copy of the current address book
func (r *FileRepository) AddressBook() AddressBook {
	r.mu.RLock()
	defer r.mu.RUnlock()

	book := make(AddressBook, len(r.addressBook))
	for chainID, networks := range r.addressBook {
		book[chainID] = make(map[string]map[string]string, len(networks))
		for network, contracts := range networks {
			book[chainID][network] = maps.Clone(contracts)
		}
	}
	return book
}

var _ usecase.DeploymentRepository = (*FileRepository)(nil)
