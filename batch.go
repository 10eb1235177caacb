package timelock

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"

	"github.com/smartcontractkit/timelock/sdk"
	solanasdk "github.com/smartcontractkit/timelock/sdk/solana"
	"github.com/smartcontractkit/timelock/types"
)

// CreateBatchRequest creates an empty batch on a timelock. BatchAuthority
// drafts and seals the batch; the timelock authority releases or cancels it.
type CreateBatchRequest struct {
	Timelock       solana.PublicKey `validate:"required"`
	Batch          solana.PublicKey `validate:"required"`
	BatchAuthority solana.PublicKey `validate:"required"`
	Capacity       uint16           `validate:"lte=64"`
}

func (e *Engine) CreateBatch(ctx context.Context, req CreateBatchRequest) (*types.TransactionBatch, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid create batch request: %w", err)
	}

	unlock := e.locks.Lock(req.Batch)
	defer unlock()

	if _, err := e.GetTimelock(ctx, req.Timelock); err != nil {
		return nil, err
	}

	batch := &types.TransactionBatch{
		Timelock:       req.Timelock,
		BatchAuthority: req.BatchAuthority,
		Status:         types.BatchStatusCreated,
		Capacity:       req.Capacity,
		Operations:     make([]types.Operation, 0, req.Capacity),
	}
	data, err := batch.Encode()
	if err != nil {
		return nil, err
	}
	if err := e.createAccount(ctx, req.Batch, data); err != nil {
		return nil, err
	}

	sdk.LoggerFrom(ctx).Infof("created batch %s on timelock %s with capacity %d", req.Batch, req.Timelock, req.Capacity)
	e.metrics.recordTransition(ctx, types.BatchStatusCreated.String())

	return batch, nil
}

// AddOperation appends op to a batch that is still being drafted. A full batch
// rejects the operation before the caller is even checked.
func (e *Engine) AddOperation(ctx context.Context, id solana.PublicKey, caller solana.PublicKey, op types.Operation) (*types.TransactionBatch, error) {
	if err := solanasdk.ValidateOperation(op); err != nil {
		return nil, fmt.Errorf("invalid operation: %w", err)
	}

	unlock := e.locks.Lock(id)
	defer unlock()

	batch, err := e.GetBatch(ctx, id)
	if err != nil {
		return nil, err
	}
	if batch.IsFull() {
		return nil, NewBatchFullError(batch.Capacity)
	}
	if caller != batch.BatchAuthority {
		return nil, NewUnauthorizedError(caller, batch.BatchAuthority)
	}
	if batch.Status != types.BatchStatusCreated {
		return nil, NewInvalidStateError("add operation to", batch.Status)
	}

	entry := op.Clone()
	entry.DidExecute = false
	batch.Operations = append(batch.Operations, entry)
	if err := e.putBatch(ctx, id, batch); err != nil {
		return nil, err
	}

	sdk.LoggerFrom(ctx).Infof("added operation %d (%x) to batch %s", len(batch.Operations)-1, solanasdk.HashOperation(entry), id)

	return batch, nil
}

// SealBatch freezes the operations of a batch.
func (e *Engine) SealBatch(ctx context.Context, id solana.PublicKey, caller solana.PublicKey) (*types.TransactionBatch, error) {
	return e.transition(ctx, id, "seal", types.BatchStatusCreated, types.BatchStatusSealed,
		func(_ *types.Timelock, batch *types.TransactionBatch) error {
			if caller != batch.BatchAuthority {
				return NewUnauthorizedError(caller, batch.BatchAuthority)
			}

			return nil
		},
		nil,
	)
}

// EnqueueBatch releases a sealed batch and starts its delay.
func (e *Engine) EnqueueBatch(ctx context.Context, id solana.PublicKey, caller solana.PublicKey) (*types.TransactionBatch, error) {
	return e.transition(ctx, id, "enqueue", types.BatchStatusSealed, types.BatchStatusEnqueued,
		timelockAuthority(caller),
		func(batch *types.TransactionBatch) error {
			slot, err := e.clock.CurrentSlot(ctx)
			if err != nil {
				return fmt.Errorf("unable to read current slot: %w", err)
			}
			batch.EnqueuedSlot = slot

			return nil
		},
	)
}

// CancelBatch aborts an enqueued batch. No further operation of the batch can
// execute afterwards.
func (e *Engine) CancelBatch(ctx context.Context, id solana.PublicKey, caller solana.PublicKey) (*types.TransactionBatch, error) {
	return e.transition(ctx, id, "cancel", types.BatchStatusEnqueued, types.BatchStatusCancelled,
		timelockAuthority(caller), nil)
}

func timelockAuthority(caller solana.PublicKey) func(*types.Timelock, *types.TransactionBatch) error {
	return func(tl *types.Timelock, _ *types.TransactionBatch) error {
		if caller != tl.Authority {
			return NewUnauthorizedError(caller, tl.Authority)
		}

		return nil
	}
}

// transition moves a batch from one status to the next. authorize runs before
// the status check so that authority errors take precedence over state errors;
// apply, if set, runs only once both passed.
func (e *Engine) transition(
	ctx context.Context,
	id solana.PublicKey,
	action string,
	from, to types.BatchStatus,
	authorize func(*types.Timelock, *types.TransactionBatch) error,
	apply func(*types.TransactionBatch) error,
) (*types.TransactionBatch, error) {
	unlock := e.locks.Lock(id)
	defer unlock()

	batch, err := e.GetBatch(ctx, id)
	if err != nil {
		return nil, err
	}
	tl, err := e.GetTimelock(ctx, batch.Timelock)
	if err != nil {
		return nil, err
	}
	if err := authorize(tl, batch); err != nil {
		return nil, err
	}
	if batch.Status != from {
		return nil, NewInvalidStateError(action, batch.Status)
	}
	if apply != nil {
		if err := apply(batch); err != nil {
			return nil, err
		}
	}

	batch.Status = to
	if err := e.putBatch(ctx, id, batch); err != nil {
		return nil, err
	}

	sdk.LoggerFrom(ctx).Infof("batch %s moved from %s to %s", id, from, to)
	e.metrics.recordTransition(ctx, to.String())

	return batch, nil
}

// ExecuteBatchNext dispatches the first operation of an enqueued batch that has
// not executed yet and returns its index. The batch becomes Executed with its
// last operation.
func (e *Engine) ExecuteBatchNext(ctx context.Context, req ExecuteRequest) (*types.TransactionBatch, int, error) {
	if err := validate.Struct(req); err != nil {
		return nil, -1, fmt.Errorf("invalid execute request: %w", err)
	}

	ctx, span := startSpan(ctx, "timelock.ExecuteBatchNext")
	defer span.End()

	unlock := e.locks.Lock(req.Target)
	defer unlock()

	batch, err := e.GetBatch(ctx, req.Target)
	if err != nil {
		return nil, -1, err
	}
	if batch.Timelock != req.Timelock {
		return nil, -1, NewAccountMismatchError(-1, fmt.Sprintf("batch %s belongs to timelock %s", req.Target, batch.Timelock))
	}
	switch batch.Status {
	case types.BatchStatusEnqueued:
	case types.BatchStatusExecuted:
		return nil, -1, NewAlreadyExecutedError(req.Target)
	default:
		return nil, -1, NewInvalidStateError("execute", batch.Status)
	}

	tl, err := e.GetTimelock(ctx, req.Timelock)
	if err != nil {
		return nil, -1, err
	}
	if err := e.checkReady(ctx, kindBatch, batch.EnqueuedSlot, tl.DelayInSlots); err != nil {
		return nil, -1, err
	}

	idx := batch.NextPending()
	if idx < 0 {
		// an enqueued batch with nothing pending has no operations left to run
		batch.Status = types.BatchStatusExecuted
		if err := e.putBatch(ctx, req.Target, batch); err != nil {
			return nil, -1, err
		}
		e.metrics.recordTransition(ctx, batch.Status.String())

		return nil, -1, NewAlreadyExecutedError(req.Target)
	}

	err = e.dispatch(ctx, req, tl, batch.Operations[idx])
	e.metrics.recordExecution(ctx, kindBatch, err)
	if err != nil {
		span.RecordError(err)
		return nil, -1, err
	}

	batch.Operations[idx].DidExecute = true
	if batch.NextPending() < 0 {
		batch.Status = types.BatchStatusExecuted
		e.metrics.recordTransition(ctx, batch.Status.String())
	}
	if err := e.putBatch(ctx, req.Target, batch); err != nil {
		return nil, -1, err
	}

	sdk.LoggerFrom(ctx).Infof("executed operation %d of batch %s (%d/%d)",
		idx, req.Target, batch.ExecutedCount(), len(batch.Operations))

	return batch, idx, nil
}
