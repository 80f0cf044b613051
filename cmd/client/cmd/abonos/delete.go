package abonos

import (
	"fmt"

	"github.com/spf13/cobra"

	"cobros/cmd/client/cmd/types"
)

var deleteYes bool

var DeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Eliminar un abono",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		id, err := types.ID(args[0])
		if err != nil {
			return err
		}

		if !deleteYes {
			ok, err := types.Confirm(cmd, fmt.Sprintf("¿Eliminar el abono #%d?", id))
			if err != nil || !ok {
				return err
			}
		}

		if err := app.DeletePayment(cmd.Context(), id); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✓ Abono #%d eliminado\n", id)
		return nil
	},
}

func init() {
	DeleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "no pedir confirmación")
}
