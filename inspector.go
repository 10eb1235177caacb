package timelock

import (
	"bytes"
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"

	"github.com/smartcontractkit/timelock/sdk"
	"github.com/smartcontractkit/timelock/types"
)

// Inspector reads timelock records without modifying them.
type Inspector struct {
	store   sdk.AccountStore
	clock   sdk.Clock
	deriver sdk.SignerDeriver
}

var _ sdk.TimelockInspector = (*Inspector)(nil)

func NewInspector(store sdk.AccountStore, clock sdk.Clock, deriver sdk.SignerDeriver) *Inspector {
	return &Inspector{store: store, clock: clock, deriver: deriver}
}

func (i *Inspector) GetTimelock(ctx context.Context, id solana.PublicKey) (*types.Timelock, error) {
	data, err := i.store.GetAccount(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("unable to read timelock %s: %w", id, err)
	}

	return types.DecodeTimelock(data)
}

// GetMinDelay returns the delay of the timelock in slots.
func (i *Inspector) GetMinDelay(ctx context.Context, id solana.PublicKey) (uint64, error) {
	tl, err := i.GetTimelock(ctx, id)
	if err != nil {
		return 0, err
	}

	return tl.DelayInSlots, nil
}

func (i *Inspector) GetAuthority(ctx context.Context, id solana.PublicKey) (solana.PublicKey, error) {
	tl, err := i.GetTimelock(ctx, id)
	if err != nil {
		return solana.PublicKey{}, err
	}

	return tl.Authority, nil
}

// GetTimelockSigner re-derives the signer the timelock dispatches operations
// with. Operations that must be signed by the timelock list it as a signer
// account.
func (i *Inspector) GetTimelockSigner(ctx context.Context, id solana.PublicKey) (solana.PublicKey, error) {
	tl, err := i.GetTimelock(ctx, id)
	if err != nil {
		return solana.PublicKey{}, err
	}

	signer, err := i.deriver.CreateSigner(id, tl.SignerBump)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("unable to derive timelock signer: %w", err)
	}

	return signer, nil
}

func (i *Inspector) GetTransaction(ctx context.Context, id solana.PublicKey) (*types.Transaction, error) {
	data, err := i.store.GetAccount(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("unable to read transaction %s: %w", id, err)
	}

	return types.DecodeTransaction(data)
}

func (i *Inspector) GetBatch(ctx context.Context, id solana.PublicKey) (*types.TransactionBatch, error) {
	data, err := i.store.GetAccount(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("unable to read batch %s: %w", id, err)
	}

	return types.DecodeTransactionBatch(data)
}

// operationState summarizes a transaction or batch for the IsOperation* checks.
type operationState struct {
	pending      bool
	done         bool
	timelock     solana.PublicKey
	enqueuedSlot uint64
}

func (i *Inspector) getOperationState(ctx context.Context, id solana.PublicKey) (operationState, error) {
	data, err := i.store.GetAccount(ctx, id)
	if err != nil {
		return operationState{}, fmt.Errorf("unable to read operation %s: %w", id, err)
	}

	switch {
	case bytes.HasPrefix(data, types.TransactionDiscriminator):
		tx, err := types.DecodeTransaction(data)
		if err != nil {
			return operationState{}, err
		}

		return operationState{
			pending:      !tx.DidExecute,
			done:         tx.DidExecute,
			timelock:     tx.Timelock,
			enqueuedSlot: tx.EnqueuedSlot,
		}, nil

	case bytes.HasPrefix(data, types.TransactionBatchDiscriminator):
		batch, err := types.DecodeTransactionBatch(data)
		if err != nil {
			return operationState{}, err
		}

		return operationState{
			pending:      batch.Status == types.BatchStatusEnqueued,
			done:         batch.Status == types.BatchStatusExecuted,
			timelock:     batch.Timelock,
			enqueuedSlot: batch.EnqueuedSlot,
		}, nil
	}

	return operationState{}, fmt.Errorf("%w: %s is not a transaction or batch", types.ErrInvalidDiscriminator, id)
}

// IsOperationPending reports whether a transaction has not executed yet, or a
// batch is enqueued and not fully executed.
func (i *Inspector) IsOperationPending(ctx context.Context, id solana.PublicKey) (bool, error) {
	state, err := i.getOperationState(ctx, id)
	if err != nil {
		return false, err
	}

	return state.pending, nil
}

// IsOperationReady reports whether a pending operation can be executed at the
// current slot.
func (i *Inspector) IsOperationReady(ctx context.Context, id solana.PublicKey) (bool, error) {
	state, err := i.getOperationState(ctx, id)
	if err != nil {
		return false, err
	}
	if !state.pending {
		return false, nil
	}

	tl, err := i.GetTimelock(ctx, state.timelock)
	if err != nil {
		return false, err
	}
	slot, err := i.clock.CurrentSlot(ctx)
	if err != nil {
		return false, fmt.Errorf("unable to read current slot: %w", err)
	}

	return slot > readyAfter(state.enqueuedSlot, tl.DelayInSlots), nil
}

// IsOperationDone reports whether a transaction or every operation of a batch
// has executed.
func (i *Inspector) IsOperationDone(ctx context.Context, id solana.PublicKey) (bool, error) {
	state, err := i.getOperationState(ctx, id)
	if err != nil {
		return false, err
	}

	return state.done, nil
}
