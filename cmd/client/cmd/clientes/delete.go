package clientes

import (
	"fmt"

	"github.com/spf13/cobra"

	"cobros/cmd/client/cmd/types"
)

var deleteYes bool

var DeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Eliminar un cliente",
	Long: `Elimina el cliente. Sus compras y abonos se conservan y aparecen
con cliente "Desconocido".`,
	Args: cobra.ExactArgs(1),
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
			ok, err := types.Confirm(cmd, fmt.Sprintf("¿Eliminar el cliente #%d?", id))
			if err != nil || !ok {
				return err
			}
		}

		if err := app.DeleteClient(cmd.Context(), id); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✓ Cliente #%d eliminado\n", id)
		return nil
	},
}

func init() {
	DeleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "no pedir confirmación")
}
