package types

import (
	"github.com/gagliardetto/solana-go"
)

// Transaction is a single operation queued directly against a timelock.
type Transaction struct {
	Timelock solana.PublicKey `json:"timelock"`
	// EnqueuedSlot is the slot at which the transaction was created.
	EnqueuedSlot uint64 `json:"enqueuedSlot"`
	Operation
}

// Encode serializes the transaction into account data.
func (t Transaction) Encode() ([]byte, error) {
	return encodeAccount(TransactionDiscriminator, t)
}

// DecodeTransaction deserializes account data into a Transaction.
func DecodeTransaction(data []byte) (*Transaction, error) {
	var t Transaction
	if err := decodeAccount(TransactionDiscriminator, data, &t); err != nil {
		return nil, err
	}

	return &t, nil
}
