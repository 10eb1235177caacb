package timelock

import (
	"errors"

	"github.com/spf13/cobra"
)

func buildSlotCmd(a *app) *cobra.Command {
	cmd := cobra.Command{
		Use:   "slot",
		Short: "Show or advance the current slot",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the current slot",
		RunE: func(cmd *cobra.Command, args []string) error {
			slot, err := a.clock.CurrentSlot(cmd.Context())
			if err != nil {
				return err
			}

			return printJSON(cmd, map[string]uint64{"slot": slot})
		},
	})

	var by uint64
	advance := cobra.Command{
		Use:   "advance",
		Short: "Advance the local slot counter",
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg.RPCURL != "" {
				return errors.New("slot is read from the cluster, it cannot be advanced locally")
			}
			slot, err := a.db.AdvanceSlot(cmd.Context(), by)
			if err != nil {
				return err
			}

			return printJSON(cmd, map[string]uint64{"slot": slot})
		},
	}
	advance.Flags().Uint64Var(&by, "by", 1, "Number of slots to advance")
	cmd.AddCommand(&advance)

	return &cmd
}
