package types

import (
	"bytes"
	"errors"
	"fmt"

	bin "github.com/gagliardetto/binary"
)

// Account discriminators prefix every stored record so that data read back
// from the store can be checked against the expected record kind.
var (
	TimelockDiscriminator         = bin.SighashAccount("Timelock")
	TransactionDiscriminator      = bin.SighashAccount("Transaction")
	TransactionBatchDiscriminator = bin.SighashAccount("TransactionBatch")
)

// ErrInvalidDiscriminator is returned when account data does not belong to the
// record kind it is being decoded into.
var ErrInvalidDiscriminator = errors.New("invalid account discriminator")

func encodeAccount(discriminator []byte, v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := bin.NewBorshEncoder(&buf)
	if err := enc.WriteBytes(discriminator, false); err != nil {
		return nil, fmt.Errorf("unable to write discriminator: %w", err)
	}
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("unable to encode account: %w", err)
	}

	return buf.Bytes(), nil
}

func decodeAccount(discriminator []byte, data []byte, v any) error {
	dec := bin.NewBorshDecoder(data)
	got, err := dec.ReadDiscriminator()
	if err != nil {
		return fmt.Errorf("unable to read discriminator: %w", err)
	}
	if !got.Equal(discriminator) {
		return fmt.Errorf("%w: expected %x, got %x", ErrInvalidDiscriminator, discriminator, got[:])
	}
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("unable to decode account: %w", err)
	}

	return nil
}
