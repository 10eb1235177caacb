package timelock

import (
	"context"
	"fmt"
	"slices"

	"github.com/gagliardetto/solana-go"

	"github.com/smartcontractkit/timelock/internal/utils/safecast"
	"github.com/smartcontractkit/timelock/sdk"
	"github.com/smartcontractkit/timelock/types"
)

const (
	kindTransaction = "transaction"
	kindBatch       = "batch"
)

// ExecuteRequest identifies the record to execute and carries the accounts the
// caller supplies for the dispatched instruction.
type ExecuteRequest struct {
	Timelock solana.PublicKey `validate:"required"`
	// Target is the transaction or batch account to execute.
	Target solana.PublicKey `validate:"required"`
	// RemainingAccounts must list the stored accounts of the operation in
	// order, optionally followed by the operation's program id.
	RemainingAccounts []*solana.AccountMeta
	// Signers are the identities that signed the outer call.
	Signers []solana.PublicKey
}

// readyAfter is the last slot at which an operation enqueued at enqueuedSlot
// is still locked.
func readyAfter(enqueuedSlot, delayInSlots uint64) uint64 {
	return safecast.SaturatingAdd(enqueuedSlot, delayInSlots)
}

// checkReady reads the clock once and fails unless it is strictly past the
// end of the delay.
func (e *Engine) checkReady(ctx context.Context, kind string, enqueuedSlot, delayInSlots uint64) error {
	slot, err := e.clock.CurrentSlot(ctx)
	if err != nil {
		return fmt.Errorf("unable to read current slot: %w", err)
	}

	after := readyAfter(enqueuedSlot, delayInSlots)
	if slot <= after {
		e.metrics.recordNotReady(ctx, kind)
		sdk.LoggerFrom(ctx).Debugf("operation not ready: current slot %d, ready after slot %d", slot, after)

		return NewNotReadyError(slot, after)
	}

	return nil
}

// dispatch invokes op with the timelock signer as an authorizing signer.
// The caller has already decided the operation is ready; nothing the
// invocation changes can revisit that.
func (e *Engine) dispatch(ctx context.Context, req ExecuteRequest, tl *types.Timelock, op types.Operation) error {
	timelockSigner, err := e.deriver.CreateSigner(req.Timelock, tl.SignerBump)
	if err != nil {
		return fmt.Errorf("unable to derive timelock signer: %w", err)
	}

	accounts, err := matchAccounts(op, req.RemainingAccounts, timelockSigner, req.Signers)
	if err != nil {
		return err
	}

	signers := make([]solana.PublicKey, 0, len(req.Signers)+1)
	signers = append(signers, timelockSigner)
	signers = append(signers, req.Signers...)

	if err := e.invoker.Invoke(ctx, op.ProgramID, accounts, op.Data, signers); err != nil {
		sdk.LoggerFrom(ctx).Warnf("invocation of program %s failed: %v", op.ProgramID, err)
		return fmt.Errorf("unable to invoke program %s: %w", op.ProgramID, err)
	}

	return nil
}

// matchAccounts checks the caller supplied accounts against the stored ones
// and returns the metas to dispatch with. The signer flag of the timelock
// signer's slot is always set locally, whatever the caller sent.
func matchAccounts(
	op types.Operation,
	remaining []*solana.AccountMeta,
	timelockSigner solana.PublicKey,
	signers []solana.PublicKey,
) ([]*solana.AccountMeta, error) {
	n := len(op.Accounts)
	if len(remaining) == n+1 && remaining[n] != nil && remaining[n].PublicKey == op.ProgramID {
		remaining = remaining[:n]
	}
	if len(remaining) != n {
		return nil, NewAccountMismatchError(-1, fmt.Sprintf("expected %d accounts, got %d", n, len(remaining)))
	}

	metas := make([]*solana.AccountMeta, n)
	for i, stored := range op.Accounts {
		got := remaining[i]
		if got == nil {
			return nil, NewAccountMismatchError(i, "missing account")
		}
		if got.PublicKey != stored.Pubkey {
			return nil, NewAccountMismatchError(i, fmt.Sprintf("expected %s, got %s", stored.Pubkey, got.PublicKey))
		}
		if got.IsWritable != stored.IsWritable {
			return nil, NewAccountMismatchError(i, fmt.Sprintf("writable flag of %s does not match", stored.Pubkey))
		}

		meta := stored.AccountMeta()
		if stored.Pubkey == timelockSigner {
			meta.IsSigner = true
			metas[i] = meta

			continue
		}
		if got.IsSigner != stored.IsSigner {
			return nil, NewAccountMismatchError(i, fmt.Sprintf("signer flag of %s does not match", stored.Pubkey))
		}
		if stored.IsSigner && !slices.Contains(signers, stored.Pubkey) {
			return nil, NewAccountMismatchError(i, fmt.Sprintf("%s did not sign", stored.Pubkey))
		}
		metas[i] = meta
	}

	return metas, nil
}
