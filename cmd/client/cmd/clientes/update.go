package clientes

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"cobros/cmd/client/cmd/types"
	"cobros/internal/app/client"
)

var (
	updateName  string
	updatePhone string
)

var UpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Modificar un cliente",
	Long:  `Solo se envían los campos indicados con sus flags.`,
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

		var patch client.ClientPatch
		if cmd.Flags().Changed("nombre") {
			patch.Name = &updateName
		}
		if cmd.Flags().Changed("telefono") {
			patch.Phone = &updatePhone
		}
		if patch.Name == nil && patch.Phone == nil {
			return errors.New("nada que modificar, use --nombre o --telefono")
		}

		updated, err := app.UpdateClient(cmd.Context(), id, patch)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✓ Cliente #%d actualizado: %s\n", updated.ID, updated.Name)
		return nil
	},
}

func init() {
	UpdateCmd.Flags().StringVarP(&updateName, "nombre", "n", "", "nuevo nombre")
	UpdateCmd.Flags().StringVarP(&updatePhone, "telefono", "t", "", "nuevo teléfono")
}
