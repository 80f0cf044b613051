package compras

import (
	"fmt"

	"github.com/spf13/cobra"

	"cobros/cmd/client/cmd/output"
	"cobros/cmd/client/cmd/types"
	"cobros/internal/app/client"
)

var (
	createCliente int
	createLabel   string
	createAmount  string
	createDate    string
	createPaid    bool
)

var CreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Registrar una compra",
	Long: `Registra una compra a nombre de un cliente existente.

Sin --fecha se usa la fecha de hoy.`,
	Example: `  cobros compras create --cliente 3 --compra "Televisor" --monto 1500.50 --fecha 01/02/2024`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		amount, err := types.Amount(createAmount)
		if err != nil {
			return err
		}
		date, err := types.Date(createDate)
		if err != nil {
			return err
		}

		created, err := app.CreatePurchase(cmd.Context(), client.PurchaseInput{
			ClientID:     createCliente,
			Label:        createLabel,
			TotalAmount:  amount,
			PurchaseDate: date,
			Paid:         createPaid,
		})
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✓ Compra #%d registrada: %s, %s para %s\n",
			created.ID, created.Label, output.Money(created.TotalAmount), created.ClientName)
		return nil
	},
}

func init() {
	CreateCmd.Flags().IntVarP(&createCliente, "cliente", "c", 0, "id del cliente")
	CreateCmd.Flags().StringVarP(&createLabel, "compra", "n", "", "descripción de la compra")
	CreateCmd.Flags().StringVarP(&createAmount, "monto", "m", "0", "monto total")
	CreateCmd.Flags().StringVarP(&createDate, "fecha", "d", "", "fecha de compra (aaaa-mm-dd o dd/mm/aaaa)")
	CreateCmd.Flags().BoolVar(&createPaid, "pagado", false, "marcar como pagada")
	_ = CreateCmd.MarkFlagRequired("cliente")
	_ = CreateCmd.MarkFlagRequired("compra")
}
