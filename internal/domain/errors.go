package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for domain operations
var (
	// ErrNotFound is returned when a requested resource doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrInvalidAddress is returned when an Ethereum address is invalid
	ErrInvalidAddress = errors.New("invalid address")

	// ErrNetworkNotFound is returned when a network name is not configured
	ErrNetworkNotFound = errors.New("network not found")

	// ErrNetworkMismatch is returned when the node reports a different chain than configured
	ErrNetworkMismatch = errors.New("network mismatch")

	// ErrContractNotFound is returned when a contract can't be found
	ErrContractNotFound = errors.New("contract not found")

	// ErrNotDeployable is returned for artifacts without creation bytecode
	ErrNotDeployable = errors.New("contract is not deployable")

	// ErrUnlinkedLibraries is returned when bytecode still contains library placeholders
	ErrUnlinkedLibraries = errors.New("bytecode has unlinked libraries")

	// ErrNoSigners is returned when a network has no usable signer
	ErrNoSigners = errors.New("no signers available")

	// ErrSignerNotAllowed is returned when a signer can't be used on the selected chain
	ErrSignerNotAllowed = errors.New("signer not allowed on this network")

	// ErrDeploymentCancelled is returned when the user declines the deployment
	ErrDeploymentCancelled = errors.New("deployment cancelled")
)

// NoContractsMatchErr is returned when a contract name matches no artifact.
type NoContractsMatchErr struct {
	Name        string
	Suggestions []string
}

func (e NoContractsMatchErr) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("no contracts match %q", e.Name)
	}
	return fmt.Sprintf("no contracts match %q, did you mean: %s", e.Name, strings.Join(e.Suggestions, ", "))
}

func (e NoContractsMatchErr) Unwrap() error {
	return ErrContractNotFound
}

// AmbiguousContractErr is returned when a bare contract name matches several artifacts.
type AmbiguousContractErr struct {
	Name    string
	Matches []*ContractRef
}

// ContractRef identifies a compiled contract by source path and name.
type ContractRef struct {
	Name string
	Path string
}

func (e AmbiguousContractErr) Error() string {
	sorted := make([]*ContractRef, len(e.Matches))
	copy(sorted, e.Matches)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Path+":"+sorted[i].Name < sorted[j].Path+":"+sorted[j].Name
	})

	var suggestions []string
	for _, ref := range sorted {
		suggestions = append(suggestions, fmt.Sprintf("  - %s (%s)", ref.Name, ref.Path))
	}

	return fmt.Sprintf("multiple contracts found matching %q - use path:contract format to disambiguate:\n%s",
		e.Name, strings.Join(suggestions, "\n"))
}

func (e AmbiguousContractErr) Unwrap() error {
	return ErrContractNotFound
}

// AmbiguousDeploymentErr is returned when an address is recorded on more than one chain.
type AmbiguousDeploymentErr struct {
	Address string
	IDs     []string
}

func (e AmbiguousDeploymentErr) Error() string {
	return fmt.Sprintf("address %s is recorded on several chains - use the full deployment ID or --chain:\n  - %s",
		e.Address, strings.Join(e.IDs, "\n  - "))
}

// MissingEnvVarErr is returned when a ${VAR} reference points at an unset variable.
type MissingEnvVarErr struct {
	Name string
	Key  string
}

func (e MissingEnvVarErr) Error() string {
	return fmt.Sprintf("environment variable %s referenced by %s is not set", e.Name, e.Key)
}
