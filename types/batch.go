package types

import (
	"encoding/json"
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// MaxBatchCapacity is the largest number of operations a batch can reserve room for.
const MaxBatchCapacity = 64

// BatchStatus is the lifecycle state of a TransactionBatch.
type BatchStatus uint8

const (
	BatchStatusCreated BatchStatus = iota
	BatchStatusSealed
	BatchStatusEnqueued
	BatchStatusExecuted
	BatchStatusCancelled
)

var batchStatusNames = map[BatchStatus]string{
	BatchStatusCreated:   "Created",
	BatchStatusSealed:    "Sealed",
	BatchStatusEnqueued:  "Enqueued",
	BatchStatusExecuted:  "Executed",
	BatchStatusCancelled: "Cancelled",
}

// StringToBatchStatus converts a status name to a BatchStatus.
var StringToBatchStatus = map[string]BatchStatus{
	"Created":   BatchStatusCreated,
	"Sealed":    BatchStatusSealed,
	"Enqueued":  BatchStatusEnqueued,
	"Executed":  BatchStatusExecuted,
	"Cancelled": BatchStatusCancelled,
}

func (s BatchStatus) String() string {
	if name, ok := batchStatusNames[s]; ok {
		return name
	}

	return fmt.Sprintf("BatchStatus(%d)", uint8(s))
}

// MarshalJSON implements the json.Marshaler interface.
func (s BatchStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (s *BatchStatus) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}

	status, ok := StringToBatchStatus[name]
	if !ok {
		return fmt.Errorf("unknown batch status: %s", name)
	}
	*s = status

	return nil
}

// TransactionBatch is an ordered, capacity-bounded list of operations that is
// drafted by BatchAuthority and released by the timelock authority.
type TransactionBatch struct {
	Timelock       solana.PublicKey `json:"timelock"`
	BatchAuthority solana.PublicKey `json:"batchAuthority"`
	Status         BatchStatus      `json:"status"`
	// EnqueuedSlot is only meaningful once Status has reached Enqueued.
	EnqueuedSlot uint64      `json:"enqueuedSlot"`
	Capacity     uint16      `json:"capacity"`
	Operations   []Operation `json:"operations"`
}

// NextPending returns the index of the first operation that has not executed
// yet, or -1 when every operation has executed.
func (b TransactionBatch) NextPending() int {
	for i, op := range b.Operations {
		if !op.DidExecute {
			return i
		}
	}

	return -1
}

// ExecutedCount returns how many operations of the batch have executed.
func (b TransactionBatch) ExecutedCount() int {
	n := 0
	for _, op := range b.Operations {
		if op.DidExecute {
			n++
		}
	}

	return n
}

// IsFull reports whether the batch has no room for another operation.
func (b TransactionBatch) IsFull() bool {
	return len(b.Operations) >= int(b.Capacity)
}

// Encode serializes the batch into account data.
func (b TransactionBatch) Encode() ([]byte, error) {
	return encodeAccount(TransactionBatchDiscriminator, b)
}

// DecodeTransactionBatch deserializes account data into a TransactionBatch.
func DecodeTransactionBatch(data []byte) (*TransactionBatch, error) {
	var b TransactionBatch
	if err := decodeAccount(TransactionBatchDiscriminator, data, &b); err != nil {
		return nil, err
	}

	return &b, nil
}
