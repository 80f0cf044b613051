package compras

import (
	"github.com/spf13/cobra"

	"cobros/cmd/client/cmd/output"
	"cobros/cmd/client/cmd/types"
	"cobros/internal/app/client"
)

var (
	listFormat  string
	listOut     string
	listPending bool
	listCliente int
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Listar compras con el nombre de su cliente",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		if err := app.LoadPurchases(cmd.Context()); err != nil {
			return err
		}

		return output.Write(cmd.OutOrStdout(), table(filter(app.Purchases())), output.Options{
			Format: types.Format(cmd, listFormat),
			Out:    listOut,
		})
	},
}

func filter(purchases []client.JoinedPurchase) []client.JoinedPurchase {
	if !listPending && listCliente == 0 {
		return purchases
	}

	out := make([]client.JoinedPurchase, 0, len(purchases))
	for _, p := range purchases {
		if listPending && p.Paid {
			continue
		}
		if listCliente != 0 && p.ClientID != listCliente {
			continue
		}
		out = append(out, p)
	}
	return out
}

func init() {
	ListCmd.Flags().StringVarP(&listFormat, "format", "f", output.FormatTable, "formato de salida (simple, table, json, csv, xlsx)")
	ListCmd.Flags().StringVarP(&listOut, "out", "o", "compras.xlsx", "archivo para el formato xlsx")
	ListCmd.Flags().BoolVar(&listPending, "pendientes", false, "solo compras sin pagar")
	ListCmd.Flags().IntVar(&listCliente, "cliente", 0, "solo compras de este cliente")
}
