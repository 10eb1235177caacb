package timelock

import (
	"context"
	"errors"

	"github.com/gagliardetto/solana-go"
	"github.com/spf13/cobra"

	"github.com/smartcontractkit/timelock/sdk"
	solanasdk "github.com/smartcontractkit/timelock/sdk/solana"
	"github.com/smartcontractkit/timelock/types"
)

type decodedView struct {
	Method string `json:"method"`
	Args   string `json:"args"`
}

type stateView struct {
	Pending bool `json:"pending"`
	Ready   bool `json:"ready"`
	Done    bool `json:"done"`
}

func buildInspectCmd(a *app) *cobra.Command {
	var (
		timelockID    string
		transactionID string
		batchID       string
	)

	cmd := cobra.Command{
		Use:   "inspect",
		Short: "Print a timelock, transaction or batch record",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			switch {
			case timelockID != "":
				id, err := parsePublicKey("timelock", timelockID)
				if err != nil {
					return err
				}
				tl, err := a.engine.GetTimelock(ctx, id)
				if err != nil {
					return err
				}
				signer, err := a.engine.GetTimelockSigner(ctx, id)
				if err != nil {
					return err
				}

				return printJSON(cmd, map[string]any{"timelock": id, "signer": signer, "record": tl})

			case transactionID != "":
				id, err := parsePublicKey("tx", transactionID)
				if err != nil {
					return err
				}
				tx, err := a.engine.GetTransaction(ctx, id)
				if err != nil {
					return err
				}
				state, err := a.operationState(ctx, id)
				if err != nil {
					return err
				}

				return printJSON(cmd, map[string]any{
					"transaction": id,
					"record":      tx,
					"state":       state,
					"decoded":     a.decode([]types.Operation{tx.Operation}),
				})

			case batchID != "":
				id, err := parsePublicKey("batch", batchID)
				if err != nil {
					return err
				}
				batch, err := a.engine.GetBatch(ctx, id)
				if err != nil {
					return err
				}
				state, err := a.operationState(ctx, id)
				if err != nil {
					return err
				}

				return printJSON(cmd, map[string]any{
					"batch":   id,
					"record":  batch,
					"state":   state,
					"decoded": a.decode(batch.Operations),
				})
			}

			return errors.New("one of --timelock, --tx or --batch is required")
		},
	}

	cmd.Flags().StringVar(&timelockID, "timelock", "", "Timelock account")
	cmd.Flags().StringVar(&transactionID, "tx", "", "Transaction account")
	cmd.Flags().StringVar(&batchID, "batch", "", "Batch account")
	cmd.MarkFlagsMutuallyExclusive("timelock", "tx", "batch")

	return &cmd
}

func (a *app) operationState(ctx context.Context, id solana.PublicKey) (stateView, error) {
	var (
		state stateView
		err   error
	)
	if state.Pending, err = a.engine.IsOperationPending(ctx, id); err != nil {
		return stateView{}, err
	}
	if state.Ready, err = a.engine.IsOperationReady(ctx, id); err != nil {
		return stateView{}, err
	}
	if state.Done, err = a.engine.IsOperationDone(ctx, id); err != nil {
		return stateView{}, err
	}

	return state, nil
}

// decode renders the operations that target this timelock program. Other
// programs are left out, keyed by operation index.
func (a *app) decode(ops []types.Operation) map[int]decodedView {
	var decoder sdk.Decoder = solanasdk.NewDecoder()

	out := make(map[int]decodedView)
	for i, op := range ops {
		if !op.ProgramID.Equals(a.engine.ProgramID()) {
			continue
		}
		decoded, err := decoder.Decode(op)
		if err != nil {
			a.logger.Sugar().Debugw("unable to decode operation", "index", i, "error", err)
			continue
		}
		method, args, err := decoded.String()
		if err != nil {
			continue
		}
		out[i] = decodedView{Method: method, Args: args}
	}

	return out
}
