package artifacts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/insight-platform/insight-deploy/internal/domain"
	"github.com/insight-platform/insight-deploy/internal/domain/config"
	"github.com/insight-platform/insight-deploy/internal/domain/models"
	"github.com/insight-platform/insight-deploy/internal/usecase"
	"github.com/sahilm/fuzzy"
)

// maxSuggestions caps the fuzzy matches attached to a not-found error
const maxSuggestions = 3

// entry is an indexed artifact. Bytecode stays hex until requested since
// unlinked placeholders are not valid hex.
type entry struct {
	name         string
	sourcePath   string
	artifactPath string
	format       models.ArtifactFormat
	abi          json.RawMessage
	bytecode     string
	links        models.LinkReferences
}

func (e *entry) key() string {
	return fmt.Sprintf("%s:%s", e.sourcePath, e.name)
}

// Repository discovers compiled contracts in Hardhat and Foundry artifact directories
type Repository struct {
	projectRoot string
	dirs        []string
	log         *slog.Logger

	mu      sync.RWMutex
	indexed bool
	byKey   map[string]*entry   // key: "path:Name"
	byName  map[string][]*entry // key: contract name
}

// NewRepository creates a repository over the given artifact directories (relative to projectRoot)
func NewRepository(projectRoot string, dirs []string, log *slog.Logger) *Repository {
	return &Repository{
		projectRoot: projectRoot,
		dirs:        dirs,
		log:         log.With("component", "ArtifactRepository"),
		byKey:       make(map[string]*entry),
		byName:      make(map[string][]*entry),
	}
}

// NewRepositoryFromConfig creates a repository using the project's artifact directories
func NewRepositoryFromConfig(cfg *config.RuntimeConfig, log *slog.Logger) *Repository {
	dirs := []string{"artifacts", "out"}
	if cfg.ProjectConfig != nil && len(cfg.ProjectConfig.Project.Artifacts) > 0 {
		dirs = cfg.ProjectConfig.Project.Artifacts
	}
	return NewRepository(cfg.ProjectRoot, dirs, log)
}

// Index walks the artifact directories once
func (r *Repository) Index() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexed {
		return nil
	}

	r.byKey = make(map[string]*entry)
	r.byName = make(map[string][]*entry)

	for _, dir := range r.dirs {
		root := dir
		if !filepath.IsAbs(root) {
			root = filepath.Join(r.projectRoot, dir)
		}
		if _, err := os.Stat(root); os.IsNotExist(err) {
			r.log.Debug("artifact directory not found", "dir", root)
			continue
		}

		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if d.Name() == "build-info" {
					return filepath.SkipDir
				}
				return nil
			}
			if filepath.Ext(path) != ".json" || strings.HasSuffix(path, ".dbg.json") {
				return nil
			}
			return r.processArtifact(path)
		})
		if err != nil {
			return fmt.Errorf("failed to index %s: %w", root, err)
		}
	}

	r.indexed = true
	return nil
}

// processArtifact parses one artifact file; files that are not artifacts are skipped
func (r *Repository) processArtifact(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil
	}
	if _, ok := fields["abi"]; !ok {
		return nil
	}

	relPath, err := filepath.Rel(r.projectRoot, path)
	if err != nil {
		relPath = path
	}

	var e *entry
	bytecode := bytes.TrimSpace(fields["bytecode"])
	if len(bytecode) > 0 && bytecode[0] == '{' {
		e = parseFoundry(data, path)
	} else {
		e = parseHardhat(data)
	}
	if e == nil {
		return nil
	}
	e.artifactPath = relPath

	r.log.Debug("indexed artifact", "contract", e.key(), "format", e.format, "path", relPath)

	if _, exists := r.byKey[e.key()]; exists {
		return nil
	}
	r.byKey[e.key()] = e
	r.byName[e.name] = append(r.byName[e.name], e)
	return nil
}

func parseHardhat(data []byte) *entry {
	var artifact models.HardhatArtifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil
	}
	if artifact.ContractName == "" {
		return nil
	}
	return &entry{
		name:       artifact.ContractName,
		sourcePath: artifact.SourceName,
		format:     models.ArtifactFormatHardhat,
		abi:        artifact.ABI,
		bytecode:   artifact.Bytecode,
		links:      artifact.LinkReferences,
	}
}

func parseFoundry(data []byte, path string) *entry {
	var artifact models.FoundryArtifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil
	}

	var name, source string
	for s, c := range artifact.Metadata.Settings.CompilationTarget {
		source, name = s, c
		break
	}
	// out/<File>.sol/<Name>.json when metadata is stripped
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), ".json")
		source = filepath.Base(filepath.Dir(path))
	}

	return &entry{
		name:       name,
		sourcePath: source,
		format:     models.ArtifactFormatFoundry,
		abi:        artifact.ABI,
		bytecode:   artifact.Bytecode.Object,
		links:      artifact.Bytecode.LinkReferences,
	}
}

// GetContractFactory resolves a contract by "Name" or "path:Name"
func (r *Repository) GetContractFactory(ctx context.Context, name string) (*models.ContractFactory, error) {
	if err := r.Index(); err != nil {
		return nil, err
	}

	e, err := r.lookup(name)
	if err != nil {
		return nil, err
	}

	return buildFactory(e)
}

func (r *Repository) lookup(name string) (*entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if strings.Contains(name, ":") {
		if e, ok := r.byKey[name]; ok {
			return e, nil
		}
		return nil, &domain.NoContractsMatchErr{Name: name, Suggestions: r.suggest(name, r.keys())}
	}

	matches := r.byName[name]
	switch len(matches) {
	case 0:
		return nil, &domain.NoContractsMatchErr{Name: name, Suggestions: r.suggest(name, r.names())}
	case 1:
		return matches[0], nil
	default:
		refs := make([]*domain.ContractRef, len(matches))
		for i, m := range matches {
			refs[i] = &domain.ContractRef{Name: m.name, Path: m.sourcePath}
		}
		return nil, &domain.AmbiguousContractErr{Name: name, Matches: refs}
	}
}

func (r *Repository) suggest(name string, candidates []string) []string {
	found := fuzzy.Find(name, candidates)
	suggestions := make([]string, 0, maxSuggestions)
	for _, m := range found {
		if len(suggestions) == maxSuggestions {
			break
		}
		suggestions = append(suggestions, m.Str)
	}
	return suggestions
}

func (r *Repository) names() []string {
	names := make([]string, 0, len(r.byName))
	for n := range r.byName {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (r *Repository) keys() []string {
	keys := make([]string, 0, len(r.byKey))
	for k := range r.byKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func buildFactory(e *entry) (*models.ContractFactory, error) {
	code := strings.TrimSpace(e.bytecode)
	if code == "" || code == "0x" {
		return nil, fmt.Errorf("%s: %w", e.key(), domain.ErrNotDeployable)
	}
	if libs := e.links.Libraries(); len(libs) > 0 {
		return nil, fmt.Errorf("%s needs %s: %w", e.key(), strings.Join(libs, ", "), domain.ErrUnlinkedLibraries)
	}
	// Older toolchains leave placeholders without recording them in linkReferences
	if strings.Contains(code, "__$") {
		return nil, fmt.Errorf("%s: %w", e.key(), domain.ErrUnlinkedLibraries)
	}

	if !strings.HasPrefix(code, "0x") {
		code = "0x" + code
	}
	bytecode, err := hexutil.Decode(code)
	if err != nil {
		return nil, fmt.Errorf("invalid bytecode for %s: %w", e.key(), err)
	}

	parsed, err := abi.JSON(bytes.NewReader(e.abi))
	if err != nil {
		return nil, fmt.Errorf("failed to parse ABI for %s: %w", e.key(), err)
	}

	return &models.ContractFactory{
		Name:         e.name,
		SourcePath:   e.sourcePath,
		ArtifactPath: e.artifactPath,
		Format:       e.format,
		ABI:          parsed,
		Bytecode:     bytecode,
	}, nil
}

var _ usecase.ContractFactoryResolver = (*Repository)(nil)
