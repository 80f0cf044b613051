package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"cobros/cmd/client/cmd/types"
)

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Comprobar la conexión con el servidor",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		if err := app.CheckConnection(cmd.Context()); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "✓ Servidor disponible")
		return nil
	},
}
