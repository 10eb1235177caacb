// Package invoke routes instructions between in-process programs.
package invoke

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/gagliardetto/solana-go"

	"github.com/smartcontractkit/timelock/sdk"
)

// MaxInvokeDepth bounds how many nested invocations a single call can make.
const MaxInvokeDepth = 4

var (
	// ErrMaxInvokeDepth is returned when nested invocations exceed MaxInvokeDepth.
	ErrMaxInvokeDepth = errors.New("max invoke depth exceeded")
)

// ProgramNotFoundError is returned when no program is registered under the
// invoked program id.
type ProgramNotFoundError struct {
	ProgramID solana.PublicKey
}

func (e *ProgramNotFoundError) Error() string {
	return fmt.Sprintf("program not found: %s", e.ProgramID)
}

// MissingSignatureError is returned when an account flagged as signer is not
// among the authorizing signers of an invocation.
type MissingSignatureError struct {
	Account solana.PublicKey
}

func (e *MissingSignatureError) Error() string {
	return fmt.Sprintf("missing required signature for account %s", e.Account)
}

type depthKey struct{}

// Router is an sdk.Invoker that dispatches to programs registered by id.
type Router struct {
	mu       sync.RWMutex
	programs map[solana.PublicKey]sdk.Program
}

var _ sdk.Invoker = (*Router)(nil)

func NewRouter() *Router {
	return &Router{programs: make(map[solana.PublicKey]sdk.Program)}
}

// Register makes program reachable under programID, replacing any program
// previously registered there.
func (r *Router) Register(programID solana.PublicKey, program sdk.Program) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.programs[programID] = program
}

// Invoke checks signatures and forwards the instruction to the registered
// program. The program receives its own copies of accounts and signers.
func (r *Router) Invoke(
	ctx context.Context,
	programID solana.PublicKey,
	accounts []*solana.AccountMeta,
	data []byte,
	signers []solana.PublicKey,
) error {
	r.mu.RLock()
	program, ok := r.programs[programID]
	r.mu.RUnlock()
	if !ok {
		return &ProgramNotFoundError{ProgramID: programID}
	}

	depth, _ := ctx.Value(depthKey{}).(int)
	if depth >= MaxInvokeDepth {
		return ErrMaxInvokeDepth
	}

	metas := make([]*solana.AccountMeta, len(accounts))
	for i, meta := range accounts {
		if meta.IsSigner && !slices.Contains(signers, meta.PublicKey) {
			return &MissingSignatureError{Account: meta.PublicKey}
		}
		clone := *meta
		metas[i] = &clone
	}

	ctx = context.WithValue(ctx, depthKey{}, depth+1)

	return program.Process(ctx, metas, slices.Clone(data), slices.Clone(signers))
}
