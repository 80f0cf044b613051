package clientes

import (
	"github.com/spf13/cobra"

	"cobros/cmd/client/cmd/output"
	"cobros/cmd/client/cmd/types"
)

var (
	listFormat string
	listOut    string
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Listar clientes",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		if err := app.LoadClients(cmd.Context()); err != nil {
			return err
		}

		return output.Write(cmd.OutOrStdout(), table(app.Clients()), output.Options{
			Format: types.Format(cmd, listFormat),
			Out:    listOut,
		})
	},
}

func init() {
	ListCmd.Flags().StringVarP(&listFormat, "format", "f", output.FormatTable, "formato de salida (simple, table, json, csv, xlsx)")
	ListCmd.Flags().StringVarP(&listOut, "out", "o", "clientes.xlsx", "archivo para el formato xlsx")
}
