package timelock

import (
	"context"
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/smartcontractkit/timelock"
	"github.com/smartcontractkit/timelock/config"
	"github.com/smartcontractkit/timelock/invoke"
	"github.com/smartcontractkit/timelock/sdk"
	solanasdk "github.com/smartcontractkit/timelock/sdk/solana"
	"github.com/smartcontractkit/timelock/store"
)

// app holds what every subcommand needs once the configuration is loaded.
type app struct {
	envFiles []string

	cfg    *config.Config
	db     *store.SQLite
	clock  sdk.Clock
	engine *timelock.Engine
	logger *zap.Logger
}

func BuildTimelockCmd() *cobra.Command {
	a := &app{}

	cmd := cobra.Command{
		Use:   "timelock",
		Short: "Queue and execute slot delayed operations",
		Long: `Manage timelocks stored in a local sqlite database. Operations queued on a
timelock can only execute once more than the timelock's delay in slots has
passed. The caller identity is the key configured in TIMELOCK_PRIVATE_KEY.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(cmd.Context()); err != nil {
				return err
			}
			cmd.SetContext(sdk.ContextWithLogger(cmd.Context(), a.logger.Sugar()))

			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.close()
		},
	}

	cmd.PersistentFlags().StringSliceVar(&a.envFiles, "env", []string{".env"}, "Env files to load configuration from")

	cmd.AddCommand(buildInitCmd(a))
	cmd.AddCommand(buildGovernedCmd(a))
	cmd.AddCommand(buildCreateTransactionCmd(a))
	cmd.AddCommand(buildExecuteTransactionCmd(a))
	cmd.AddCommand(buildCreateBatchCmd(a))
	cmd.AddCommand(buildAddOperationCmd(a))
	cmd.AddCommand(buildSealBatchCmd(a))
	cmd.AddCommand(buildEnqueueBatchCmd(a))
	cmd.AddCommand(buildCancelBatchCmd(a))
	cmd.AddCommand(buildExecuteNextCmd(a))
	cmd.AddCommand(buildInspectCmd(a))
	cmd.AddCommand(buildSlotCmd(a))

	return &cmd
}

func (a *app) setup(ctx context.Context) error {
	cfg, err := config.Load(a.envFiles...)
	if err != nil {
		return err
	}
	a.cfg = cfg

	a.logger, err = cfg.Logger()
	if err != nil {
		return fmt.Errorf("unable to create logger: %w", err)
	}

	programID, err := cfg.Program()
	if err != nil {
		return err
	}

	a.db, err = store.OpenSQLite(ctx, cfg.DBPath)
	if err != nil {
		return err
	}

	a.clock = a.db
	if cfg.RPCURL != "" {
		a.clock = solanasdk.NewRPCClock(rpc.New(cfg.RPCURL))
	}

	router := invoke.NewRouter()
	a.engine, err = timelock.NewEngine(programID, a.db, a.clock, router)
	if err != nil {
		return err
	}
	router.Register(programID, a.engine)
	router.Register(solana.MemoProgramID, memoProgram(a.logger.Sugar()))

	return nil
}

func (a *app) close() error {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
	if a.db != nil {
		return a.db.Close()
	}

	return nil
}

// caller is the identity of the configured private key.
func (a *app) caller() (solana.PublicKey, error) {
	key, err := a.cfg.Signer()
	if err != nil {
		return solana.PublicKey{}, err
	}

	return key.PublicKey(), nil
}

// memoProgram stands in for the memo program so queued memos can be executed
// locally. It only logs the memo.
func memoProgram(logger sdk.Logger) sdk.Program {
	return sdk.ProgramFunc(func(_ context.Context, _ []*solana.AccountMeta, data []byte, _ []solana.PublicKey) error {
		if len(data) == 0 {
			return errors.New("empty memo")
		}
		logger.Infof("memo: %s", data)

		return nil
	})
}
