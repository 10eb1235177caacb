package timelock

import (
	"context"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/smartcontractkit/timelock/invoke"
	"github.com/smartcontractkit/timelock/sdk/clock"
	"github.com/smartcontractkit/timelock/store"
)

// counterTotals sums every int64 counter collected by reader by name.
func counterTotals(t *testing.T, reader *sdkmetric.ManualReader) map[string]int64 {
	t.Helper()

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	totals := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}
			for _, dp := range sum.DataPoints {
				totals[m.Name] += dp.Value
			}
		}
	}

	return totals
}

func TestEngine_Metrics(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	slots := clock.NewManual(0)
	router := invoke.NewRouter()
	engine, err := NewEngine(testProgramID, store.NewMemory(), slots, router, WithMeter(provider.Meter("test")))
	require.NoError(t, err)
	router.Register(testProgramID, engine)

	rec := &recorder{}
	target := solana.NewWallet().PublicKey()
	router.Register(target, rec)

	timelockID := solana.NewWallet().PublicKey()
	authority := solana.NewWallet().PublicKey()
	_, err = engine.InitializeTimelock(ctx, timelockID, authority, 1)
	require.NoError(t, err)

	fx := &fixture{engine: engine, clock: slots, target: target, account: solana.NewWallet().PublicKey(), timelock: timelockID, authority: authority}
	op := fx.op(1)
	id := fx.enqueuedBatch(t, op)

	_, _, err = engine.ExecuteBatchNext(ctx, fx.executeRequest(id, op))
	requireCode(t, err, ErrorCodeNotReady)

	slots.Advance(2)
	_, _, err = engine.ExecuteBatchNext(ctx, fx.executeRequest(id, op))
	require.NoError(t, err)

	totals := counterTotals(t, reader)
	assert.Equal(t, int64(1), totals["timelock.not_ready"])
	assert.Equal(t, int64(1), totals["timelock.executions"])
	// created, sealed, enqueued, executed
	assert.Equal(t, int64(4), totals["timelock.transitions"])
}
