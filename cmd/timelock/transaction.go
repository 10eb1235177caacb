package timelock

import (
	"errors"

	"github.com/gagliardetto/solana-go"
	"github.com/spf13/cobra"

	"github.com/smartcontractkit/timelock"
	"github.com/smartcontractkit/timelock/config"
	"github.com/smartcontractkit/timelock/types"
)

func buildCreateTransactionCmd(a *app) *cobra.Command {
	var (
		timelockID    string
		transactionID string
		operationPath string
	)

	cmd := cobra.Command{
		Use:   "create-tx",
		Short: "Queue a single operation on a timelock",
		Long:  `Queues the operation read from --operation. The configured key must be the timelock authority.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			tlID, err := parsePublicKey("timelock", timelockID)
			if err != nil {
				return err
			}
			txID, err := newOrParse("tx", transactionID)
			if err != nil {
				return err
			}
			op, err := loadOperation(operationPath)
			if err != nil {
				return err
			}
			authority, err := a.caller()
			if err != nil {
				return err
			}

			tx, err := a.engine.CreateTransaction(cmd.Context(), timelock.CreateTransactionRequest{
				Timelock:    tlID,
				Transaction: txID,
				Authority:   authority,
				Operation:   op,
			})
			if err != nil {
				return err
			}

			return printJSON(cmd, map[string]any{"transaction": txID, "record": tx})
		},
	}

	cmd.Flags().StringVar(&timelockID, "timelock", "", "Timelock account")
	cmd.Flags().StringVar(&transactionID, "tx", "", "Transaction account (generated when empty)")
	cmd.Flags().StringVar(&operationPath, "operation", "", "Path to a JSON operation")
	_ = cmd.MarkFlagRequired("timelock")
	_ = cmd.MarkFlagRequired("operation")

	return &cmd
}

func buildExecuteTransactionCmd(a *app) *cobra.Command {
	var (
		timelockID    string
		transactionID string
	)

	cmd := cobra.Command{
		Use:   "execute-tx",
		Short: "Execute a queued transaction once its delay has passed",
		RunE: func(cmd *cobra.Command, args []string) error {
			tlID, err := parsePublicKey("timelock", timelockID)
			if err != nil {
				return err
			}
			txID, err := parsePublicKey("tx", transactionID)
			if err != nil {
				return err
			}
			stored, err := a.engine.GetTransaction(cmd.Context(), txID)
			if err != nil {
				return err
			}
			req, err := a.executeRequest(tlID, txID, stored.Operation)
			if err != nil {
				return err
			}

			tx, err := a.engine.ExecuteTransaction(cmd.Context(), req)
			if err != nil {
				return err
			}

			return printJSON(cmd, map[string]any{"transaction": txID, "record": tx})
		},
	}

	cmd.Flags().StringVar(&timelockID, "timelock", "", "Timelock account")
	cmd.Flags().StringVar(&transactionID, "tx", "", "Transaction account")
	_ = cmd.MarkFlagRequired("timelock")
	_ = cmd.MarkFlagRequired("tx")

	return &cmd
}

// executeRequest builds the request a client would send for op: its stored
// accounts followed by its program id. The configured key, if any, co-signs.
func (a *app) executeRequest(tlID, target solana.PublicKey, op types.Operation) (timelock.ExecuteRequest, error) {
	req := timelock.ExecuteRequest{
		Timelock:          tlID,
		Target:            target,
		RemainingAccounts: append(op.AccountMetas(), solana.Meta(op.ProgramID)),
	}

	caller, err := a.caller()
	switch {
	case errors.Is(err, config.ErrNoPrivateKey):
	case err != nil:
		return timelock.ExecuteRequest{}, err
	default:
		req.Signers = []solana.PublicKey{caller}
	}

	return req, nil
}
