package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"cobros/cmd/client/cmd/types"
)

var StatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Consultar si la sesión sigue activa",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		ok, err := app.CheckAuth(cmd.Context())
		if err != nil {
			return err
		}

		if ok {
			fmt.Fprintln(cmd.OutOrStdout(), "✓ Sesión activa")
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "Sin sesión, ejecute: cobros auth login")
		}
		return nil
	},
}
