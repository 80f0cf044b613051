package abonos

import (
	"github.com/spf13/cobra"

	"cobros/cmd/client/cmd/output"
	"cobros/cmd/client/cmd/types"
	"cobros/internal/app/client"
)

var (
	listFormat string
	listOut    string
	listCompra int
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Listar abonos con su cliente y compra",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		// clients and purchases are reloaded too so the joined names are current
		if err := app.LoadAll(cmd.Context()); err != nil {
			return err
		}

		payments := app.Payments()
		if listCompra != 0 {
			filtered := make([]client.JoinedPayment, 0, len(payments))
			for _, p := range payments {
				if p.PurchaseID == listCompra {
					filtered = append(filtered, p)
				}
			}
			payments = filtered
		}

		return output.Write(cmd.OutOrStdout(), table(payments), output.Options{
			Format: types.Format(cmd, listFormat),
			Out:    listOut,
		})
	},
}

func init() {
	ListCmd.Flags().StringVarP(&listFormat, "format", "f", output.FormatTable, "formato de salida (simple, table, json, csv, xlsx)")
	ListCmd.Flags().StringVarP(&listOut, "out", "o", "abonos.xlsx", "archivo para el formato xlsx")
	ListCmd.Flags().IntVar(&listCompra, "compra", 0, "solo abonos de esta compra")
}
