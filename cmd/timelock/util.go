package timelock

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/gagliardetto/solana-go"
	"github.com/spf13/cobra"

	solanasdk "github.com/smartcontractkit/timelock/sdk/solana"
	"github.com/smartcontractkit/timelock/types"
)

func parsePublicKey(name, value string) (solana.PublicKey, error) {
	key, err := solana.PublicKeyFromBase58(value)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("invalid --%s: %w", name, err)
	}

	return key, nil
}

// newOrParse parses value, or generates a fresh address for a new account when
// value is empty.
func newOrParse(name, value string) (solana.PublicKey, error) {
	if value == "" {
		return solana.NewWallet().PublicKey(), nil
	}

	return parsePublicKey(name, value)
}

// loadOperation reads an operation from a JSON file, as printed by the
// governed subcommands.
func loadOperation(path string) (types.Operation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Operation{}, fmt.Errorf("unable to read operation file: %w", err)
	}

	var op types.Operation
	if err := json.Unmarshal(data, &op); err != nil {
		return types.Operation{}, fmt.Errorf("unable to parse operation file: %w", err)
	}
	if err := solanasdk.ValidateOperation(op); err != nil {
		return types.Operation{}, fmt.Errorf("invalid operation: %w", err)
	}

	return op, nil
}

func printJSON(cmd *cobra.Command, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))

	return err
}
