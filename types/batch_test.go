package types

import (
	"encoding/json"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchStatus_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Created", BatchStatusCreated.String())
	assert.Equal(t, "Cancelled", BatchStatusCancelled.String())
	assert.Equal(t, "BatchStatus(9)", BatchStatus(9).String())
}

func TestBatchStatus_JSON(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(BatchStatusEnqueued)
	require.NoError(t, err)
	assert.JSONEq(t, `"Enqueued"`, string(b))

	var got BatchStatus
	require.NoError(t, json.Unmarshal([]byte(`"Sealed"`), &got))
	assert.Equal(t, BatchStatusSealed, got)

	err = json.Unmarshal([]byte(`"Pending"`), &got)
	require.EqualError(t, err, "unknown batch status: Pending")
}

func TestTransactionBatch_NextPending(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		executed []bool
		want     int
		count    int
	}{
		{name: "empty batch", executed: nil, want: -1, count: 0},
		{name: "nothing executed", executed: []bool{false, false}, want: 0, count: 0},
		{name: "first executed", executed: []bool{true, false, false}, want: 1, count: 1},
		{name: "all executed", executed: []bool{true, true}, want: -1, count: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			batch := TransactionBatch{Capacity: 4}
			for _, done := range tt.executed {
				batch.Operations = append(batch.Operations, Operation{DidExecute: done})
			}

			assert.Equal(t, tt.want, batch.NextPending())
			assert.Equal(t, tt.count, batch.ExecutedCount())
		})
	}
}

func TestTransactionBatch_IsFull(t *testing.T) {
	t.Parallel()

	batch := TransactionBatch{Capacity: 1}
	assert.False(t, batch.IsFull())

	batch.Operations = append(batch.Operations, Operation{ProgramID: solana.SystemProgramID})
	assert.True(t, batch.IsFull())
}
