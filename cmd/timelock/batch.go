package timelock

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"github.com/spf13/cobra"

	"github.com/smartcontractkit/timelock"
	"github.com/smartcontractkit/timelock/types"
)

func buildCreateBatchCmd(a *app) *cobra.Command {
	var (
		timelockID string
		batchID    string
		capacity   uint16
	)

	cmd := cobra.Command{
		Use:   "create-batch",
		Short: "Create an empty batch drafted by the configured key",
		RunE: func(cmd *cobra.Command, args []string) error {
			tlID, err := parsePublicKey("timelock", timelockID)
			if err != nil {
				return err
			}
			id, err := newOrParse("batch", batchID)
			if err != nil {
				return err
			}
			drafter, err := a.caller()
			if err != nil {
				return err
			}

			batch, err := a.engine.CreateBatch(cmd.Context(), timelock.CreateBatchRequest{
				Timelock:       tlID,
				Batch:          id,
				BatchAuthority: drafter,
				Capacity:       capacity,
			})
			if err != nil {
				return err
			}

			return printJSON(cmd, map[string]any{"batch": id, "record": batch})
		},
	}

	cmd.Flags().StringVar(&timelockID, "timelock", "", "Timelock account")
	cmd.Flags().StringVar(&batchID, "batch", "", "Batch account (generated when empty)")
	cmd.Flags().Uint16Var(&capacity, "capacity", types.MaxBatchCapacity, "Maximum number of operations")
	_ = cmd.MarkFlagRequired("timelock")

	return &cmd
}

func buildAddOperationCmd(a *app) *cobra.Command {
	var (
		batchID       string
		operationPath string
	)

	cmd := cobra.Command{
		Use:   "add-op",
		Short: "Append an operation to a batch that is still being drafted",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parsePublicKey("batch", batchID)
			if err != nil {
				return err
			}
			op, err := loadOperation(operationPath)
			if err != nil {
				return err
			}
			caller, err := a.caller()
			if err != nil {
				return err
			}

			batch, err := a.engine.AddOperation(cmd.Context(), id, caller, op)
			if err != nil {
				return err
			}

			return printJSON(cmd, map[string]any{"batch": id, "record": batch})
		},
	}

	cmd.Flags().StringVar(&batchID, "batch", "", "Batch account")
	cmd.Flags().StringVar(&operationPath, "operation", "", "Path to a JSON operation")
	_ = cmd.MarkFlagRequired("batch")
	_ = cmd.MarkFlagRequired("operation")

	return &cmd
}

type batchTransition func(ctx context.Context, id, caller solana.PublicKey) (*types.TransactionBatch, error)

func buildBatchTransitionCmd(a *app, use, short string, transition func() batchTransition) *cobra.Command {
	var batchID string

	cmd := cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parsePublicKey("batch", batchID)
			if err != nil {
				return err
			}
			caller, err := a.caller()
			if err != nil {
				return err
			}

			batch, err := transition()(cmd.Context(), id, caller)
			if err != nil {
				return err
			}

			return printJSON(cmd, map[string]any{"batch": id, "record": batch})
		},
	}

	cmd.Flags().StringVar(&batchID, "batch", "", "Batch account")
	_ = cmd.MarkFlagRequired("batch")

	return &cmd
}

// The engine only exists once the root command has loaded the configuration,
// so transitions are looked up at run time.

func buildSealBatchCmd(a *app) *cobra.Command {
	return buildBatchTransitionCmd(a, "seal", "Seal a batch, freezing its operations",
		func() batchTransition { return a.engine.SealBatch })
}

func buildEnqueueBatchCmd(a *app) *cobra.Command {
	return buildBatchTransitionCmd(a, "enqueue", "Release a sealed batch and start its delay",
		func() batchTransition { return a.engine.EnqueueBatch })
}

func buildCancelBatchCmd(a *app) *cobra.Command {
	return buildBatchTransitionCmd(a, "cancel", "Cancel an enqueued batch",
		func() batchTransition { return a.engine.CancelBatch })
}

func buildExecuteNextCmd(a *app) *cobra.Command {
	var (
		timelockID string
		batchID    string
	)

	cmd := cobra.Command{
		Use:   "execute-next",
		Short: "Execute the next pending operation of an enqueued batch",
		RunE: func(cmd *cobra.Command, args []string) error {
			tlID, err := parsePublicKey("timelock", timelockID)
			if err != nil {
				return err
			}
			id, err := parsePublicKey("batch", batchID)
			if err != nil {
				return err
			}
			stored, err := a.engine.GetBatch(cmd.Context(), id)
			if err != nil {
				return err
			}

			var op types.Operation
			if next := stored.NextPending(); next >= 0 {
				op = stored.Operations[next]
			}
			req, err := a.executeRequest(tlID, id, op)
			if err != nil {
				return err
			}

			batch, idx, err := a.engine.ExecuteBatchNext(cmd.Context(), req)
			if err != nil {
				return err
			}

			return printJSON(cmd, map[string]any{"batch": id, "executed": idx, "record": batch})
		},
	}

	cmd.Flags().StringVar(&timelockID, "timelock", "", "Timelock account")
	cmd.Flags().StringVar(&batchID, "batch", "", "Batch account")
	_ = cmd.MarkFlagRequired("timelock")
	_ = cmd.MarkFlagRequired("batch")

	return &cmd
}
