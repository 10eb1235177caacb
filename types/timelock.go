package types

import (
	"github.com/gagliardetto/solana-go"
)

// Timelock is the configuration record of a governed domain.
type Timelock struct {
	// Authority may queue transactions, enqueue batches and cancel them.
	Authority solana.PublicKey `json:"authority"`
	// DelayInSlots is the minimum number of slots between enqueueing an
	// operation and it becoming executable.
	DelayInSlots uint64 `json:"delayInSlots"`
	// SignerBump is the PDA bump used to re-derive the timelock signer. The
	// timelock itself cannot sign because it is not a PDA.
	SignerBump uint8 `json:"signerBump"`
}

// Encode serializes the timelock into account data.
func (t Timelock) Encode() ([]byte, error) {
	return encodeAccount(TimelockDiscriminator, t)
}

// DecodeTimelock deserializes account data into a Timelock.
func DecodeTimelock(data []byte) (*Timelock, error) {
	var t Timelock
	if err := decodeAccount(TimelockDiscriminator, data, &t); err != nil {
		return nil, err
	}

	return &t, nil
}
