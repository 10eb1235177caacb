package sdk

import (
	"context"
	"errors"

	"github.com/gagliardetto/solana-go"
)

var (
	// ErrAccountNotFound is returned when no account exists at the requested key.
	ErrAccountNotFound = errors.New("account not found")

	// ErrAccountExists is returned when creating an account at a key that is already in use.
	ErrAccountExists = errors.New("account already exists")
)

// AccountStore persists raw account data keyed by account address.
//
// Implementations must be safe for concurrent use and must not retain or
// hand out the caller's byte slices.
type AccountStore interface {
	GetAccount(ctx context.Context, key solana.PublicKey) ([]byte, error)
	CreateAccount(ctx context.Context, key solana.PublicKey, data []byte) error
	PutAccount(ctx context.Context, key solana.PublicKey, data []byte) error
}
