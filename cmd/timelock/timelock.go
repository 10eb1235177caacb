package timelock

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/spf13/cobra"

	solanasdk "github.com/smartcontractkit/timelock/sdk/solana"
)

func buildInitCmd(a *app) *cobra.Command {
	var (
		timelockID string
		authority  string
		delay      uint64
	)

	cmd := cobra.Command{
		Use:   "init",
		Short: "Initialize a timelock",
		Long:  `Creates a timelock. The authority defaults to the configured key.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := newOrParse("timelock", timelockID)
			if err != nil {
				return err
			}

			var owner solana.PublicKey
			if authority != "" {
				owner, err = parsePublicKey("authority", authority)
			} else {
				owner, err = a.caller()
			}
			if err != nil {
				return err
			}

			tl, err := a.engine.InitializeTimelock(cmd.Context(), id, owner, delay)
			if err != nil {
				return err
			}
			signer, err := a.engine.GetTimelockSigner(cmd.Context(), id)
			if err != nil {
				return err
			}

			return printJSON(cmd, map[string]any{
				"timelock": id,
				"address":  solanasdk.TimelockAddress(a.engine.ProgramID(), id),
				"signer":   signer,
				"config":   tl,
			})
		},
	}

	cmd.Flags().StringVar(&timelockID, "timelock", "", "Timelock account (generated when empty)")
	cmd.Flags().StringVar(&authority, "authority", "", "Timelock authority")
	cmd.Flags().Uint64Var(&delay, "delay", 0, "Delay in slots")

	return &cmd
}

// buildGovernedCmd prints operations that reconfigure a timelock. They only
// take effect once queued and executed on that same timelock.
func buildGovernedCmd(a *app) *cobra.Command {
	var address string

	cmd := cobra.Command{
		Use:   "governed",
		Short: "Build set_delay_in_slots and set_authority operations",
	}
	cmd.PersistentFlags().StringVar(&address, "timelock", "", "Timelock account, or <program>.<timelock>")
	_ = cmd.MarkPersistentFlagRequired("timelock")

	build := func(cmd *cobra.Command, ix func(programID, id, signer solana.PublicKey) (*solana.GenericInstruction, error)) error {
		programID := a.engine.ProgramID()
		id, err := parsePublicKey("timelock", address)
		if err != nil {
			addrProgram, addrTimelock, perr := solanasdk.ParseTimelockAddress(address)
			if perr != nil {
				return err
			}
			if addrProgram != programID {
				return fmt.Errorf("timelock address belongs to program %s, configured program is %s", addrProgram, programID)
			}
			id = addrTimelock
		}

		signer, err := a.engine.GetTimelockSigner(cmd.Context(), id)
		if err != nil {
			return err
		}
		instruction, err := ix(programID, id, signer)
		if err != nil {
			return err
		}
		op, err := solanasdk.NewOperationFromInstruction(instruction)
		if err != nil {
			return err
		}

		return printJSON(cmd, op)
	}

	var delay uint64
	setDelay := &cobra.Command{
		Use:   "set-delay",
		Short: "Build an operation that changes the delay",
		RunE: func(cmd *cobra.Command, args []string) error {
			return build(cmd, func(programID, id, signer solana.PublicKey) (*solana.GenericInstruction, error) {
				return solanasdk.NewSetDelayInSlotsInstruction(programID, id, signer, delay)
			})
		},
	}
	setDelay.Flags().Uint64Var(&delay, "delay", 0, "New delay in slots")

	var authority string
	setAuthority := &cobra.Command{
		Use:   "set-authority",
		Short: "Build an operation that changes the authority",
		RunE: func(cmd *cobra.Command, args []string) error {
			newAuthority, err := parsePublicKey("authority", authority)
			if err != nil {
				return err
			}

			return build(cmd, func(programID, id, signer solana.PublicKey) (*solana.GenericInstruction, error) {
				return solanasdk.NewSetAuthorityInstruction(programID, id, signer, newAuthority)
			})
		},
	}
	setAuthority.Flags().StringVar(&authority, "authority", "", "New authority")
	_ = setAuthority.MarkFlagRequired("authority")

	cmd.AddCommand(setDelay, setAuthority)

	return &cmd
}
