package sdk

import "github.com/gagliardetto/solana-go"

// SignerDeriver derives the signing identity of a timelock from the timelock's
// own address. The identity is never stored, only the bump that makes the
// derivation deterministic.
type SignerDeriver interface {
	// FindSigner searches for a valid signer and returns it with its bump.
	FindSigner(timelock solana.PublicKey) (solana.PublicKey, uint8, error)
	// CreateSigner re-derives the signer from a previously found bump.
	CreateSigner(timelock solana.PublicKey, bump uint8) (solana.PublicKey, error)
}
