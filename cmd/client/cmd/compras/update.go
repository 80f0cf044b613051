package compras

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"cobros/cmd/client/cmd/output"
	"cobros/cmd/client/cmd/types"
	"cobros/internal/app/client"
)

var (
	updateCliente int
	updateLabel   string
	updateAmount  string
	updateDate    string
	updatePaid    bool
)

var UpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Modificar una compra",
	Long: `Solo se envían los campos indicados con sus flags.

  cobros compras update 7 --pagado
  cobros compras update 7 --pagado=false --monto 900`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		id, err := types.ID(args[0])
		if err != nil {
			return err
		}

		patch, err := buildPatch(cmd)
		if err != nil {
			return err
		}

		updated, err := app.UpdatePurchase(cmd.Context(), id, patch)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✓ Compra #%d actualizada: %s, %s, %s\n",
			updated.ID, updated.Label, output.Money(updated.TotalAmount), output.PaidStatus(updated.Paid))
		return nil
	},
}

func buildPatch(cmd *cobra.Command) (client.PurchasePatch, error) {
	var (
		patch   client.PurchasePatch
		changed bool
	)
	flags := cmd.Flags()

	if flags.Changed("cliente") {
		patch.ClientID = &updateCliente
		changed = true
	}
	if flags.Changed("compra") {
		patch.Label = &updateLabel
		changed = true
	}
	if flags.Changed("monto") {
		amount, err := types.Amount(updateAmount)
		if err != nil {
			return patch, err
		}
		patch.TotalAmount = &amount
		changed = true
	}
	if flags.Changed("fecha") {
		date, err := types.Date(updateDate)
		if err != nil {
			return patch, err
		}
		if date == "" {
			return patch, errors.New("--fecha no puede quedar vacía")
		}
		patch.PurchaseDate = &date
		changed = true
	}
	if flags.Changed("pagado") {
		patch.Paid = &updatePaid
		changed = true
	}

	if !changed {
		return patch, errors.New("nada que modificar, indique al menos un campo")
	}
	return patch, nil
}

func init() {
	UpdateCmd.Flags().IntVarP(&updateCliente, "cliente", "c", 0, "nuevo cliente")
	UpdateCmd.Flags().StringVarP(&updateLabel, "compra", "n", "", "nueva descripción")
	UpdateCmd.Flags().StringVarP(&updateAmount, "monto", "m", "", "nuevo monto total")
	UpdateCmd.Flags().StringVarP(&updateDate, "fecha", "d", "", "nueva fecha de compra")
	UpdateCmd.Flags().BoolVar(&updatePaid, "pagado", false, "marcar como pagada o pendiente")
}
