package compras

import (
	"strconv"

	"github.com/spf13/cobra"

	"cobros/cmd/client/cmd/output"
	"cobros/internal/app/client"
)

// ComprasCmd is the parent of the purchase commands
var ComprasCmd = &cobra.Command{
	Use:     "compras",
	Aliases: []string{"compra"},
	Short:   "Administrar compras",
}

func init() {
	ComprasCmd.AddCommand(ListCmd)
	ComprasCmd.AddCommand(CreateCmd)
	ComprasCmd.AddCommand(UpdateCmd)
	ComprasCmd.AddCommand(DeleteCmd)
}

func table(purchases []client.JoinedPurchase) output.Table {
	rows := make([][]string, 0, len(purchases))
	for _, p := range purchases {
		rows = append(rows, []string{
			strconv.Itoa(p.ID),
			p.ClientName,
			p.Label,
			output.Money(p.TotalAmount),
			output.Date(p.PurchaseDate),
			output.PaidStatus(p.Paid),
		})
	}
	return output.Table{
		Title:   "Compras",
		Headers: []string{"ID", "Cliente", "Compra", "Monto", "Fecha", "Estado"},
		Rows:    rows,
		Raw:     purchases,
	}
}
