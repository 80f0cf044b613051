package abonos

import (
	"strconv"

	"github.com/spf13/cobra"

	"cobros/cmd/client/cmd/output"
	"cobros/internal/app/client"
)

// AbonosCmd is the parent of the payment commands
var AbonosCmd = &cobra.Command{
	Use:     "abonos",
	Aliases: []string{"abono"},
	Short:   "Administrar abonos",
}

func init() {
	AbonosCmd.AddCommand(ListCmd)
	AbonosCmd.AddCommand(CreateCmd)
	AbonosCmd.AddCommand(UpdateCmd)
	AbonosCmd.AddCommand(DeleteCmd)
}

func table(payments []client.JoinedPayment) output.Table {
	rows := make([][]string, 0, len(payments))
	for _, p := range payments {
		desc := p.Description
		if desc == "" {
			desc = "-"
		}
		rows = append(rows, []string{
			strconv.Itoa(p.ID),
			p.ClientName,
			p.PurchaseLabel,
			output.Money(p.Amount),
			output.Date(p.PaymentDate),
			desc,
		})
	}
	return output.Table{
		Title:   "Abonos",
		Headers: []string{"ID", "Cliente", "Compra", "Monto", "Fecha", "Descripción"},
		Rows:    rows,
		Raw:     payments,
	}
}
