package timelock

import (
	"context"
	"sync"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"

	"github.com/smartcontractkit/timelock/invoke"
	"github.com/smartcontractkit/timelock/sdk"
	"github.com/smartcontractkit/timelock/sdk/clock"
	solanasdk "github.com/smartcontractkit/timelock/sdk/solana"
	"github.com/smartcontractkit/timelock/store"
	"github.com/smartcontractkit/timelock/types"
)

var testProgramID = solana.MustPublicKeyFromBase58("7wTNNa26MRFt18kKPz6t3oD3RuKcfN3PjUjLG9tHbWH2")

// recorder is a target program that records the first data byte of every
// instruction it receives.
type recorder struct {
	mu    sync.Mutex
	calls []byte
}

func (r *recorder) Process(_ context.Context, _ []*solana.AccountMeta, data []byte, _ []solana.PublicKey) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.calls = append(r.calls, data[0])

	return nil
}

func (r *recorder) Calls() []byte {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]byte(nil), r.calls...)
}

type fixture struct {
	engine    *Engine
	clock     *clock.Manual
	store     *store.Memory
	router    *invoke.Router
	recorder  *recorder
	target    solana.PublicKey
	account   solana.PublicKey
	timelock  solana.PublicKey
	authority solana.PublicKey
}

func newFixture(t *testing.T, delay uint64) *fixture {
	t.Helper()

	fx := &fixture{
		clock:     clock.NewManual(100),
		store:     store.NewMemory(),
		router:    invoke.NewRouter(),
		recorder:  &recorder{},
		target:    solana.NewWallet().PublicKey(),
		account:   solana.NewWallet().PublicKey(),
		timelock:  solana.NewWallet().PublicKey(),
		authority: solana.NewWallet().PublicKey(),
	}

	engine, err := NewEngine(testProgramID, fx.store, fx.clock, fx.router)
	require.NoError(t, err)
	fx.engine = engine
	fx.router.Register(testProgramID, engine)
	fx.router.Register(fx.target, fx.recorder)

	_, err = engine.InitializeTimelock(context.Background(), fx.timelock, fx.authority, delay)
	require.NoError(t, err)

	return fx
}

// op builds an operation against the recorder program tagged with marker.
func (fx *fixture) op(marker byte) types.Operation {
	return types.Operation{
		ProgramID: fx.target,
		Accounts:  []types.InstructionAccount{{Pubkey: fx.account, IsWritable: true}},
		Data:      []byte{marker},
	}
}

func (fx *fixture) createTransaction(t *testing.T, op types.Operation) solana.PublicKey {
	t.Helper()

	id := solana.NewWallet().PublicKey()
	_, err := fx.engine.CreateTransaction(context.Background(), CreateTransactionRequest{
		Timelock:    fx.timelock,
		Transaction: id,
		Authority:   fx.authority,
		Operation:   op,
	})
	require.NoError(t, err)

	return id
}

// enqueuedBatch creates, fills, seals and enqueues a batch.
func (fx *fixture) enqueuedBatch(t *testing.T, ops ...types.Operation) solana.PublicKey {
	t.Helper()

	ctx := context.Background()
	id := solana.NewWallet().PublicKey()
	drafter := solana.NewWallet().PublicKey()

	_, err := fx.engine.CreateBatch(ctx, CreateBatchRequest{
		Timelock:       fx.timelock,
		Batch:          id,
		BatchAuthority: drafter,
		Capacity:       types.MaxBatchCapacity,
	})
	require.NoError(t, err)
	for _, op := range ops {
		_, err = fx.engine.AddOperation(ctx, id, drafter, op)
		require.NoError(t, err)
	}
	_, err = fx.engine.SealBatch(ctx, id, drafter)
	require.NoError(t, err)
	_, err = fx.engine.EnqueueBatch(ctx, id, fx.authority)
	require.NoError(t, err)

	return id
}

func (fx *fixture) executeRequest(target solana.PublicKey, op types.Operation) ExecuteRequest {
	return ExecuteRequest{
		Timelock:          fx.timelock,
		Target:            target,
		RemainingAccounts: op.AccountMetas(),
	}
}

func (fx *fixture) timelockSigner(t *testing.T) solana.PublicKey {
	t.Helper()

	signer, err := fx.engine.GetTimelockSigner(context.Background(), fx.timelock)
	require.NoError(t, err)

	return signer
}

func requireCode(t *testing.T, err error, want ErrorCode) {
	t.Helper()

	require.Error(t, err)
	code, ok := CodeOf(err)
	require.True(t, ok, "error %v carries no code", err)
	require.Equal(t, want, code, "unexpected error: %v", err)
}

var _ sdk.Program = (*recorder)(nil)

func setAuthorityData(t *testing.T, fx *fixture, newAuthority solana.PublicKey) []byte {
	t.Helper()

	ix, err := solanasdk.NewSetAuthorityInstruction(testProgramID, fx.timelock, fx.timelockSigner(t), newAuthority)
	require.NoError(t, err)

	return ix.DataBytes
}
