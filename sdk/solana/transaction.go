package solana

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/go-playground/validator/v10"

	"github.com/smartcontractkit/timelock/types"
)

var validate = validator.New()

// ValidateOperation ensures a queued operation is well formed.
func ValidateOperation(op types.Operation) error {
	return validate.Struct(op)
}

func NewOperation(
	programID string,
	data []byte,
	accounts []*solana.AccountMeta,
) (types.Operation, error) {
	key, err := solana.PublicKeyFromBase58(programID)
	if err != nil {
		return types.Operation{}, err
	}

	op := types.Operation{
		ProgramID: key,
		Accounts:  make([]types.InstructionAccount, len(accounts)),
		Data:      data,
	}
	for i, acc := range accounts {
		op.Accounts[i] = types.InstructionAccount{
			Pubkey:     acc.PublicKey,
			IsSigner:   acc.IsSigner,
			IsWritable: acc.IsWritable,
		}
	}

	if err := ValidateOperation(op); err != nil {
		return types.Operation{}, fmt.Errorf("invalid operation: %w", err)
	}

	return op, nil
}

func NewOperationFromInstruction(instruction solana.Instruction) (types.Operation, error) {
	data, err := instruction.Data()
	if err != nil {
		return types.Operation{}, fmt.Errorf("unable to get instruction data: %w", err)
	}

	return NewOperation(instruction.ProgramID().String(), data, instruction.Accounts())
}
