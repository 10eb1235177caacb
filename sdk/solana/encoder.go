package solana

import (
	"bytes"
	"fmt"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

const (
	SetDelayInSlotsMethod = "set_delay_in_slots"
	SetAuthorityMethod    = "set_authority"
)

// Instruction discriminators of the governed timelock instructions. These can
// only be executed by the timelock itself, through a queued operation.
var (
	SetDelayInSlotsDiscriminator = bin.Sighash(bin.SIGHASH_GLOBAL_NAMESPACE, SetDelayInSlotsMethod)
	SetAuthorityDiscriminator    = bin.Sighash(bin.SIGHASH_GLOBAL_NAMESPACE, SetAuthorityMethod)
)

// SetDelayInSlotsArgs are the arguments of the set_delay_in_slots instruction.
type SetDelayInSlotsArgs struct {
	DelayInSlots uint64
}

// SetAuthorityArgs are the arguments of the set_authority instruction.
type SetAuthorityArgs struct {
	NewAuthority solana.PublicKey
}

// NewSetDelayInSlotsInstruction builds a set_delay_in_slots instruction against
// the timelock. The signer account must be the timelock signer PDA.
func NewSetDelayInSlotsInstruction(
	programID solana.PublicKey,
	timelock solana.PublicKey,
	timelockSigner solana.PublicKey,
	delayInSlots uint64,
) (*solana.GenericInstruction, error) {
	data, err := encodeInstruction(SetDelayInSlotsDiscriminator, SetDelayInSlotsArgs{DelayInSlots: delayInSlots})
	if err != nil {
		return nil, err
	}

	return solana.NewInstruction(programID, governedAccounts(timelock, timelockSigner), data), nil
}

// NewSetAuthorityInstruction builds a set_authority instruction against the
// timelock. The signer account must be the timelock signer PDA.
func NewSetAuthorityInstruction(
	programID solana.PublicKey,
	timelock solana.PublicKey,
	timelockSigner solana.PublicKey,
	newAuthority solana.PublicKey,
) (*solana.GenericInstruction, error) {
	data, err := encodeInstruction(SetAuthorityDiscriminator, SetAuthorityArgs{NewAuthority: newAuthority})
	if err != nil {
		return nil, err
	}

	return solana.NewInstruction(programID, governedAccounts(timelock, timelockSigner), data), nil
}

func governedAccounts(timelock solana.PublicKey, timelockSigner solana.PublicKey) solana.AccountMetaSlice {
	return solana.AccountMetaSlice{
		solana.Meta(timelock).WRITE(),
		solana.Meta(timelockSigner).SIGNER(),
	}
}

func encodeInstruction(discriminator []byte, args any) ([]byte, error) {
	var buf bytes.Buffer
	enc := bin.NewBorshEncoder(&buf)
	if err := enc.WriteBytes(discriminator, false); err != nil {
		return nil, fmt.Errorf("unable to write instruction discriminator: %w", err)
	}
	if err := enc.Encode(args); err != nil {
		return nil, fmt.Errorf("unable to encode instruction args: %w", err)
	}

	return buf.Bytes(), nil
}
