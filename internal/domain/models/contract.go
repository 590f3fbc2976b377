package models

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// ArtifactFormat identifies the toolchain that produced an artifact
type ArtifactFormat string

const (
	ArtifactFormatHardhat ArtifactFormat = "hardhat"
	ArtifactFormatFoundry ArtifactFormat = "foundry"
)

// ContractFactory is a compiled contract ready to be deployed
type ContractFactory struct {
	Name         string         `json:"name"`
	SourcePath   string         `json:"sourcePath"`   // e.g. "contracts/CourseOpeningNFT.sol"
	ArtifactPath string         `json:"artifactPath"` // absolute path of the artifact JSON
	Format       ArtifactFormat `json:"format"`
	ABI          abi.ABI        `json:"-"`
	Bytecode     []byte         `json:"-"`
}

// Ref returns the "path:Name" reference of the contract
func (f *ContractFactory) Ref() string {
	return fmt.Sprintf("%s:%s", f.SourcePath, f.Name)
}

// BytecodeHash returns the keccak256 hash of the creation bytecode
func (f *ContractFactory) BytecodeHash() common.Hash {
	return crypto.Keccak256Hash(f.Bytecode)
}

// LinkReferences maps source file -> library name -> placeholder offsets in the bytecode
type LinkReferences map[string]map[string][]LinkOffset

// LinkOffset locates a library placeholder inside the bytecode
type LinkOffset struct {
	Start  int `json:"start"`
	Length int `json:"length"`
}

// Libraries returns the "file:Library" names the bytecode must be linked against
func (l LinkReferences) Libraries() []string {
	var libs []string
	for file, names := range l {
		for name := range names {
			libs = append(libs, fmt.Sprintf("%s:%s", file, name))
		}
	}
	sort.Strings(libs)
	return libs
}

// HardhatArtifact is the JSON layout written by Hardhat under artifacts/
type HardhatArtifact struct {
	Format         string          `json:"_format"`
	ContractName   string          `json:"contractName"`
	SourceName     string          `json:"sourceName"`
	ABI            json.RawMessage `json:"abi"`
	Bytecode       string          `json:"bytecode"`
	LinkReferences LinkReferences  `json:"linkReferences"`
}

// FoundryArtifact is the JSON layout written by forge under out/
type FoundryArtifact struct {
	ABI      json.RawMessage `json:"abi"`
	Bytecode struct {
		Object         string         `json:"object"`
		LinkReferences LinkReferences `json:"linkReferences"`
	} `json:"bytecode"`
	Metadata struct {
		Settings struct {
			CompilationTarget map[string]string `json:"compilationTarget"`
		} `json:"settings"`
	} `json:"metadata"`
}
