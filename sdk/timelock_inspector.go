package sdk

import (
	"context"

	"github.com/gagliardetto/solana-go"
)

// TimelockInspector reads timelock configuration and the state of queued
// operations. An operation is identified by its transaction or batch account.
type TimelockInspector interface {
	GetMinDelay(ctx context.Context, timelock solana.PublicKey) (uint64, error)
	GetAuthority(ctx context.Context, timelock solana.PublicKey) (solana.PublicKey, error)
	GetTimelockSigner(ctx context.Context, timelock solana.PublicKey) (solana.PublicKey, error)
	IsOperationPending(ctx context.Context, operation solana.PublicKey) (bool, error)
	IsOperationReady(ctx context.Context, operation solana.PublicKey) (bool, error)
	IsOperationDone(ctx context.Context, operation solana.PublicKey) (bool, error)
}
