package solana

import (
	"fmt"
	"strings"

	"github.com/gagliardetto/solana-go"
)

// TimelockAddress returns a string representation of a timelock instance
// which is a combination of the program id and the timelock account <PROGRAM_ID>.<TIMELOCK>
func TimelockAddress(programID solana.PublicKey, timelock solana.PublicKey) string {
	return fmt.Sprintf("%s.%s", programID.String(), timelock.String())
}

func ParseTimelockAddress(address string) (solana.PublicKey, solana.PublicKey, error) {
	const numParts = 2
	parts := strings.SplitN(address, ".", numParts)
	if len(parts) != numParts {
		return solana.PublicKey{}, solana.PublicKey{}, fmt.Errorf("invalid timelock address format: %q", address)
	}

	programID, err := solana.PublicKeyFromBase58(parts[0])
	if err != nil {
		return solana.PublicKey{}, solana.PublicKey{}, fmt.Errorf("unable to parse solana program id: %w", err)
	}

	timelock, err := solana.PublicKeyFromBase58(parts[1])
	if err != nil {
		return solana.PublicKey{}, solana.PublicKey{}, fmt.Errorf("unable to parse timelock account: %w", err)
	}

	return programID, timelock, nil
}
