package abonos

import (
	"fmt"

	"github.com/spf13/cobra"

	"cobros/cmd/client/cmd/output"
	"cobros/cmd/client/cmd/types"
	"cobros/internal/app/client"
)

var (
	createCompra      int
	createAmount      string
	createDate        string
	createDescription string
)

var CreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Registrar un abono a una compra",
	Long: `Registra un abono. El cliente es siempre el de la compra.

Sin --fecha se usa la fecha de hoy.`,
	Example: `  cobros abonos create --compra 7 --monto 250 --descripcion "primer abono"`,
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

		created, err := app.CreatePayment(cmd.Context(), client.PaymentInput{
			PurchaseID:  createCompra,
			Amount:      amount,
			PaymentDate: date,
			Description: createDescription,
		})
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✓ Abono #%d de %s registrado a %s (%s)\n",
			created.ID, output.Money(created.Amount), created.PurchaseLabel, created.ClientName)
		return nil
	},
}

func init() {
	CreateCmd.Flags().IntVarP(&createCompra, "compra", "c", 0, "id de la compra")
	CreateCmd.Flags().StringVarP(&createAmount, "monto", "m", "", "monto del abono")
	CreateCmd.Flags().StringVarP(&createDate, "fecha", "d", "", "fecha del abono (aaaa-mm-dd o dd/mm/aaaa)")
	CreateCmd.Flags().StringVar(&createDescription, "descripcion", "", "nota opcional")
	_ = CreateCmd.MarkFlagRequired("compra")
	_ = CreateCmd.MarkFlagRequired("monto")
}
