package timelock

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"

	"github.com/smartcontractkit/timelock/sdk"
	solanasdk "github.com/smartcontractkit/timelock/sdk/solana"
	"github.com/smartcontractkit/timelock/types"
)

// CreateTransactionRequest queues a single operation directly on a timelock.
type CreateTransactionRequest struct {
	Timelock    solana.PublicKey `validate:"required"`
	Transaction solana.PublicKey `validate:"required"`
	Authority   solana.PublicKey `validate:"required"`
	Operation   types.Operation
}

// CreateTransaction stores a new transaction at req.Transaction. The delay of
// a transaction counts from the slot it was created at.
func (e *Engine) CreateTransaction(ctx context.Context, req CreateTransactionRequest) (*types.Transaction, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid create transaction request: %w", err)
	}

	unlock := e.locks.Lock(req.Transaction)
	defer unlock()

	tl, err := e.GetTimelock(ctx, req.Timelock)
	if err != nil {
		return nil, err
	}
	if req.Authority != tl.Authority {
		return nil, NewUnauthorizedError(req.Authority, tl.Authority)
	}

	slot, err := e.clock.CurrentSlot(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to read current slot: %w", err)
	}

	op := req.Operation.Clone()
	op.DidExecute = false
	tx := &types.Transaction{
		Timelock:     req.Timelock,
		EnqueuedSlot: slot,
		Operation:    op,
	}
	data, err := tx.Encode()
	if err != nil {
		return nil, err
	}
	if err := e.createAccount(ctx, req.Transaction, data); err != nil {
		return nil, err
	}

	sdk.LoggerFrom(ctx).Infof("queued transaction %s (operation %x) on timelock %s at slot %d",
		req.Transaction, solanasdk.HashOperation(op), req.Timelock, slot)

	return tx, nil
}

// ExecuteTransaction dispatches a queued transaction once its delay has
// elapsed. req.Target is the transaction account.
func (e *Engine) ExecuteTransaction(ctx context.Context, req ExecuteRequest) (*types.Transaction, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid execute request: %w", err)
	}

	ctx, span := startSpan(ctx, "timelock.ExecuteTransaction")
	defer span.End()

	unlock := e.locks.Lock(req.Target)
	defer unlock()

	tx, err := e.GetTransaction(ctx, req.Target)
	if err != nil {
		return nil, err
	}
	if tx.Timelock != req.Timelock {
		return nil, NewAccountMismatchError(-1, fmt.Sprintf("transaction %s belongs to timelock %s", req.Target, tx.Timelock))
	}
	if tx.DidExecute {
		return nil, NewAlreadyExecutedError(req.Target)
	}

	tl, err := e.GetTimelock(ctx, req.Timelock)
	if err != nil {
		return nil, err
	}
	if err := e.checkReady(ctx, kindTransaction, tx.EnqueuedSlot, tl.DelayInSlots); err != nil {
		return nil, err
	}

	err = e.dispatch(ctx, req, tl, tx.Operation)
	e.metrics.recordExecution(ctx, kindTransaction, err)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	tx.DidExecute = true
	if err := e.putTransaction(ctx, req.Target, tx); err != nil {
		return nil, err
	}

	sdk.LoggerFrom(ctx).Infof("executed transaction %s on timelock %s", req.Target, req.Timelock)

	return tx, nil
}
