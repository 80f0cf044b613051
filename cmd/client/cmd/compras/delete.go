package compras

import (
	"fmt"

	"github.com/spf13/cobra"

	"cobros/cmd/client/cmd/types"
)

var deleteYes bool

var DeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Eliminar una compra y sus abonos",
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
			ok, err := types.Confirm(cmd, fmt.Sprintf("¿Eliminar la compra #%d y todos sus abonos?", id))
			if err != nil || !ok {
				return err
			}
		}

		if err := app.DeletePurchase(cmd.Context(), id); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✓ Compra #%d eliminada\n", id)
		return nil
	},
}

func init() {
	DeleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "no pedir confirmación")
}
