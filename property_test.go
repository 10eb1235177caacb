package timelock

import (
	"context"
	"errors"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/smartcontractkit/timelock/types"
)

func hasCode(err error, want ErrorCode) bool {
	code, ok := CodeOf(err)
	return ok && code == want
}

func TestProperty_DelayBoundary(t *testing.T) {
	t.Parallel()

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("execution is rejected up to enqueue+delay and accepted after", prop.ForAll(
		func(delay uint64, wait uint64) bool {
			fx := newFixture(t, delay)
			ctx := context.Background()
			op := fx.op(1)
			id := fx.createTransaction(t, op)
			req := fx.executeRequest(id, op)

			fx.clock.Advance(wait)
			_, err := fx.engine.ExecuteTransaction(ctx, req)
			if wait <= delay {
				var notReady *NotReadyError
				if !errors.As(err, &notReady) {
					return false
				}

				return notReady.ReadyAfterSlot == 100+delay
			}

			return err == nil
		},
		gen.UInt64Range(0, 20),
		gen.UInt64Range(0, 30),
	))

	properties.TestingRun(t)
}

func TestProperty_BatchExecutesOncePerOperation(t *testing.T) {
	t.Parallel()

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 30
	properties := gopter.NewProperties(parameters)

	properties.Property("n calls execute operations 0..n-1 in order, call n+1 fails", prop.ForAll(
		func(n int) bool {
			fx := newFixture(t, 0)
			ctx := context.Background()

			ops := make([]types.Operation, n)
			for i := range ops {
				ops[i] = fx.op(byte(i))
			}
			id := fx.enqueuedBatch(t, ops...)
			fx.clock.Advance(1)

			for k := range ops {
				batch, idx, err := fx.engine.ExecuteBatchNext(ctx, fx.executeRequest(id, ops[k]))
				if err != nil || idx != k {
					return false
				}
				if (k == n-1) != (batch.Status == types.BatchStatusExecuted) {
					return false
				}
			}

			calls := fx.recorder.Calls()
			if len(calls) != n {
				return false
			}
			for i, c := range calls {
				if c != byte(i) {
					return false
				}
			}

			_, _, err := fx.engine.ExecuteBatchNext(ctx, ExecuteRequest{Timelock: fx.timelock, Target: id})

			return hasCode(err, ErrorCodeAlreadyExecuted)
		},
		gen.IntRange(1, 12),
	))

	properties.TestingRun(t)
}

func TestProperty_BatchFullForAnyCaller(t *testing.T) {
	t.Parallel()

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 30
	properties := gopter.NewProperties(parameters)

	properties.Property("adding past capacity fails with BatchFull", prop.ForAll(
		func(capacity uint16, callerKind uint8) bool {
			fx := newFixture(t, 0)
			ctx := context.Background()
			id := solana.NewWallet().PublicKey()
			drafter := solana.NewWallet().PublicKey()

			_, err := fx.engine.CreateBatch(ctx, CreateBatchRequest{
				Timelock: fx.timelock, Batch: id, BatchAuthority: drafter, Capacity: capacity,
			})
			if err != nil {
				return false
			}
			for range capacity {
				if _, err := fx.engine.AddOperation(ctx, id, drafter, fx.op(0)); err != nil {
					return false
				}
			}

			callers := []solana.PublicKey{drafter, fx.authority, solana.NewWallet().PublicKey()}
			_, err = fx.engine.AddOperation(ctx, id, callers[callerKind], fx.op(0))

			return hasCode(err, ErrorCodeBatchFull)
		},
		gen.UInt16Range(0, 8),
		gen.UInt8Range(0, 2),
	))

	properties.TestingRun(t)
}

func TestProperty_CancelOnlyFromEnqueued(t *testing.T) {
	t.Parallel()

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 30
	properties := gopter.NewProperties(parameters)

	// reach: 0 Created, 1 Sealed, 2 Enqueued, 3 Executed, 4 Cancelled
	properties.Property("cancel succeeds only on enqueued batches", prop.ForAll(
		func(reach uint8) bool {
			fx := newFixture(t, 0)
			ctx := context.Background()
			id := solana.NewWallet().PublicKey()
			drafter := solana.NewWallet().PublicKey()
			op := fx.op(9)

			steps := []func() error{
				func() error {
					_, err := fx.engine.AddOperation(ctx, id, drafter, op)
					return err
				},
				func() error {
					_, err := fx.engine.SealBatch(ctx, id, drafter)
					return err
				},
				func() error {
					_, err := fx.engine.EnqueueBatch(ctx, id, fx.authority)
					return err
				},
				func() error {
					fx.clock.Advance(1)
					_, _, err := fx.engine.ExecuteBatchNext(ctx, fx.executeRequest(id, op))
					return err
				},
			}

			_, err := fx.engine.CreateBatch(ctx, CreateBatchRequest{
				Timelock: fx.timelock, Batch: id, BatchAuthority: drafter, Capacity: 1,
			})
			if err != nil {
				return false
			}
			if err := steps[0](); err != nil {
				return false
			}
			if reach == 4 {
				for _, step := range steps[1:3] {
					if err := step(); err != nil {
						return false
					}
				}
				if _, err := fx.engine.CancelBatch(ctx, id, fx.authority); err != nil {
					return false
				}
			} else {
				for _, step := range steps[1 : reach+1] {
					if err := step(); err != nil {
						return false
					}
				}
			}

			_, err = fx.engine.CancelBatch(ctx, id, fx.authority)
			if reach == 2 {
				return err == nil
			}

			return hasCode(err, ErrorCodeInvalidState)
		},
		gen.UInt8Range(0, 4),
	))

	properties.TestingRun(t)
}

func TestProperty_GovernedRejectsOtherSigners(t *testing.T) {
	t.Parallel()

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 30
	properties := gopter.NewProperties(parameters)

	fx := newFixture(t, 7)
	ctx := context.Background()

	properties.Property("set_delay and set_authority require the timelock signer", prop.ForAll(
		func(delay uint64, useAuthority bool) bool {
			signer := solana.NewWallet().PublicKey()
			if useAuthority {
				signer = fx.authority
			}

			data := setAuthorityData(t, fx, signer)
			ix := []*solana.AccountMeta{solana.Meta(fx.timelock).WRITE(), solana.Meta(signer).SIGNER()}

			return hasCode(fx.engine.SetDelay(ctx, fx.timelock, signer, delay), ErrorCodeUnauthorized) &&
				hasCode(fx.engine.SetAuthority(ctx, fx.timelock, signer, signer), ErrorCodeUnauthorized) &&
				hasCode(fx.engine.Process(ctx, ix, data, []solana.PublicKey{signer}), ErrorCodeUnauthorized)
		},
		gen.UInt64Range(0, 1000),
		gen.Bool(),
	))

	properties.TestingRun(t)

	delay, err := fx.engine.GetMinDelay(ctx, fx.timelock)
	if err != nil || delay != 7 {
		t.Fatalf("delay changed to %d (err %v)", delay, err)
	}
}
