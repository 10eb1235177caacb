package solana

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"

	"github.com/smartcontractkit/timelock/types"
)

func TestHashOperation(t *testing.T) {
	t.Parallel()

	op := types.Operation{
		ProgramID: testProgramID,
		Accounts:  []types.InstructionAccount{{Pubkey: testTimelockID, IsWritable: true}},
		Data:      []byte{1, 2, 3},
	}

	hash := HashOperation(op)
	assert.NotEqual(t, [32]byte{}, hash)

	executed := op.Clone()
	executed.DidExecute = true
	assert.Equal(t, hash, HashOperation(executed), "execution flag must not change the id")

	flipped := op.Clone()
	flipped.Accounts[0].IsSigner = true
	assert.NotEqual(t, hash, HashOperation(flipped))

	other := op.Clone()
	other.ProgramID = solana.SystemProgramID
	assert.NotEqual(t, hash, HashOperation(other))

	assert.NotEqual(t, hash, HashOperation(op, op))

	// moving an account into the data must not produce the same id
	account := solana.NewWallet().PublicKey()
	withAccount := types.Operation{
		ProgramID: testProgramID,
		Accounts:  []types.InstructionAccount{{Pubkey: account, IsSigner: true}},
	}
	withData := types.Operation{
		ProgramID: testProgramID,
		Data:      append(account.Bytes(), 1, 0),
	}
	assert.NotEqual(t, HashOperation(withAccount), HashOperation(withData))
}
