package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// DeployedContract is the outcome of a confirmed contract creation
type DeployedContract struct {
	Address         common.Address `json:"address"`
	TransactionHash common.Hash    `json:"transactionHash"`
	BlockNumber     uint64         `json:"blockNumber"`
	GasUsed         uint64         `json:"gasUsed"`
	ChainID         uint64         `json:"chainId"`
	ConstructorArgs string         `json:"constructorArgs"` // Hex encoded
}

// Deployment represents a contract deployment record
type Deployment struct {
	// Core identification
	ID           string `json:"id"` // e.g., "31337/CourseOpeningNFT/0x5FbDB2315678afecb367f032d93F642f64180aa3"
	Network      string `json:"network"`
	ChainID      uint64 `json:"chainId"`
	ContractName string `json:"contractName"`
	Address      string `json:"address"`

	// Transaction
	Deployer        string `json:"deployer"`
	TransactionHash string `json:"transactionHash"`
	BlockNumber     uint64 `json:"blockNumber"`
	GasUsed         uint64 `json:"gasUsed"`

	// Constructor
	Args            []string `json:"args"`
	ConstructorArgs string   `json:"constructorArgs,omitempty"` // Hex encoded

	// Contract artifact information
	Artifact ArtifactInfo `json:"artifact"`

	CreatedAt time.Time `json:"createdAt"`
}

// ArtifactInfo contains contract artifact information
type ArtifactInfo struct {
	Path         string         `json:"path"` // e.g., "contracts/CourseOpeningNFT.sol:CourseOpeningNFT"
	Format       ArtifactFormat `json:"format"`
	BytecodeHash string         `json:"bytecodeHash"`
}

// DeploymentID builds the registry key for a deployment
func DeploymentID(chainID uint64, contractName string, address common.Address) string {
	return fmt.Sprintf("%d/%s/%s", chainID, contractName, address.Hex())
}

// ShortID returns the deployment ID without the chain prefix
func (d *Deployment) ShortID() string {
	if idx := strings.Index(d.ID, "/"); idx != -1 {
		return d.ID[idx+1:]
	}
	return d.ID
}
