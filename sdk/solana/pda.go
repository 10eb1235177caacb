package solana

import (
	"fmt"

	"github.com/gagliardetto/solana-go"

	"github.com/smartcontractkit/timelock/sdk"
)

// FindTimelockSignerPDA finds the signer PDA of a timelock and its bump.
// The only seed is the timelock account itself.
func FindTimelockSignerPDA(programID solana.PublicKey, timelock solana.PublicKey) (solana.PublicKey, uint8, error) {
	pda, bump, err := solana.FindProgramAddress([][]byte{timelock.Bytes()}, programID)
	if err != nil {
		return solana.PublicKey{}, 0, fmt.Errorf("unable to find timelock signer pda: %w", err)
	}

	return pda, bump, nil
}

// CreateTimelockSignerPDA re-derives the signer PDA of a timelock from a stored bump.
func CreateTimelockSignerPDA(programID solana.PublicKey, timelock solana.PublicKey, bump uint8) (solana.PublicKey, error) {
	pda, err := solana.CreateProgramAddress([][]byte{timelock.Bytes(), {bump}}, programID)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("unable to create timelock signer pda: %w", err)
	}

	return pda, nil
}

var _ sdk.SignerDeriver = PDADeriver{}

// PDADeriver derives timelock signers as program derived addresses of ProgramID.
type PDADeriver struct {
	ProgramID solana.PublicKey
}

// NewPDADeriver creates a PDADeriver for the given program.
func NewPDADeriver(programID solana.PublicKey) PDADeriver {
	return PDADeriver{ProgramID: programID}
}

func (d PDADeriver) FindSigner(timelock solana.PublicKey) (solana.PublicKey, uint8, error) {
	return FindTimelockSignerPDA(d.ProgramID, timelock)
}

func (d PDADeriver) CreateSigner(timelock solana.PublicKey, bump uint8) (solana.PublicKey, error) {
	return CreateTimelockSignerPDA(d.ProgramID, timelock, bump)
}
