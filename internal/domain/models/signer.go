package models

import (
	"crypto/ecdsa"

	"github.com/ethereum/go-ethereum/common"
)

// SignerType represents how a signer's key is obtained
type SignerType string

const (
	SignerTypePrivateKey SignerType = "private_key"
	SignerTypeKeystore   SignerType = "keystore"
	SignerTypeDev        SignerType = "dev"
)

// Signer is an account authorized to submit transactions
type Signer struct {
	Name    string         `json:"name"`
	Type    SignerType     `json:"type"`
	Address common.Address `json:"address"`

	key *ecdsa.PrivateKey
}

// NewSigner creates a signer backed by an in-memory private key
func NewSigner(name string, signerType SignerType, key *ecdsa.PrivateKey, address common.Address) *Signer {
	return &Signer{
		Name:    name,
		Type:    signerType,
		Address: address,
		key:     key,
	}
}

// PrivateKey returns the signing key
func (s *Signer) PrivateKey() *ecdsa.PrivateKey {
	return s.key
}
