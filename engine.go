// Package timelock implements a slot-delayed governance engine. An authority
// queues opaque instructions that can only be dispatched once more than a
// configured number of slots has passed, and the engine's own configuration
// can only change through that same queue.
package timelock

import (
	"context"
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"

	"github.com/smartcontractkit/timelock/internal/keylock"
	"github.com/smartcontractkit/timelock/sdk"
	solanasdk "github.com/smartcontractkit/timelock/sdk/solana"
	"github.com/smartcontractkit/timelock/types"
)

var validate = validator.New()

// Engine owns the timelock, transaction and batch records of one program and
// drives their state transitions. It is safe for concurrent use: calls that
// touch the same record are serialized, calls on different records are not.
//
// Engine is also an sdk.Program. Registering it with the invoker under its
// program id lets queued operations reconfigure their own timelock.
type Engine struct {
	*Inspector

	programID solana.PublicKey
	invoker   sdk.Invoker
	meter     metric.Meter
	metrics   *metrics
	locks     *keylock.Locker
}

var _ sdk.Program = (*Engine)(nil)

type Option func(*Engine)

// WithSignerDeriver overrides how timelock signers are derived. By default
// they are program derived addresses of the engine's program id.
func WithSignerDeriver(deriver sdk.SignerDeriver) Option {
	return func(e *Engine) {
		e.deriver = deriver
	}
}

// WithMeter sets the meter used for engine metrics. Defaults to the global
// meter provider.
func WithMeter(meter metric.Meter) Option {
	return func(e *Engine) {
		e.meter = meter
	}
}

// NewEngine creates an engine for programID on top of the given collaborators.
func NewEngine(
	programID solana.PublicKey,
	store sdk.AccountStore,
	clock sdk.Clock,
	invoker sdk.Invoker,
	opts ...Option,
) (*Engine, error) {
	e := &Engine{
		Inspector: NewInspector(store, clock, solanasdk.NewPDADeriver(programID)),
		programID: programID,
		invoker:   invoker,
		meter:     otel.Meter(instrumentationName),
		locks:     keylock.New(),
	}
	for _, opt := range opts {
		opt(e)
	}

	m, err := newMetrics(e.meter)
	if err != nil {
		return nil, fmt.Errorf("unable to create metrics: %w", err)
	}
	e.metrics = m

	return e, nil
}

// ProgramID returns the id the engine is registered under.
func (e *Engine) ProgramID() solana.PublicKey {
	return e.programID
}

func (e *Engine) putTimelock(ctx context.Context, id solana.PublicKey, tl *types.Timelock) error {
	data, err := tl.Encode()
	if err != nil {
		return err
	}
	if err := e.store.PutAccount(ctx, id, data); err != nil {
		return fmt.Errorf("unable to store timelock %s: %w", id, err)
	}

	return nil
}

func (e *Engine) putTransaction(ctx context.Context, id solana.PublicKey, tx *types.Transaction) error {
	data, err := tx.Encode()
	if err != nil {
		return err
	}
	if err := e.store.PutAccount(ctx, id, data); err != nil {
		return fmt.Errorf("unable to store transaction %s: %w", id, err)
	}

	return nil
}

func (e *Engine) putBatch(ctx context.Context, id solana.PublicKey, batch *types.TransactionBatch) error {
	data, err := batch.Encode()
	if err != nil {
		return err
	}
	if err := e.store.PutAccount(ctx, id, data); err != nil {
		return fmt.Errorf("unable to store batch %s: %w", id, err)
	}

	return nil
}

// createAccount stores a new record, reporting AlreadyInitialized when the
// address is taken.
func (e *Engine) createAccount(ctx context.Context, id solana.PublicKey, data []byte) error {
	err := e.store.CreateAccount(ctx, id, data)
	if errors.Is(err, sdk.ErrAccountExists) {
		return NewAlreadyInitializedError(id)
	}
	if err != nil {
		return fmt.Errorf("unable to create account %s: %w", id, err)
	}

	return nil
}
