package abonos

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"cobros/cmd/client/cmd/output"
	"cobros/cmd/client/cmd/types"
	"cobros/internal/app/client"
)

var (
	updateCompra      int
	updateAmount      string
	updateDate        string
	updateDescription string
)

var UpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Modificar un abono",
	Long: `Solo se envían los campos indicados con sus flags. Al cambiar de
compra el abono pasa también al cliente de la nueva compra.`,
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

		updated, err := app.UpdatePayment(cmd.Context(), id, patch)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✓ Abono #%d actualizado: %s a %s\n",
			updated.ID, output.Money(updated.Amount), updated.PurchaseLabel)
		return nil
	},
}

func buildPatch(cmd *cobra.Command) (client.PaymentPatch, error) {
	var (
		patch   client.PaymentPatch
		changed bool
	)
	flags := cmd.Flags()

	if flags.Changed("compra") {
		patch.PurchaseID = &updateCompra
		changed = true
	}
	if flags.Changed("monto") {
		amount, err := types.Amount(updateAmount)
		if err != nil {
			return patch, err
		}
		patch.Amount = &amount
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
		patch.PaymentDate = &date
		changed = true
	}
	if flags.Changed("descripcion") {
		patch.Description = &updateDescription
		changed = true
	}

	if !changed {
		return patch, errors.New("nada que modificar, indique al menos un campo")
	}
	return patch, nil
}

func init() {
	UpdateCmd.Flags().IntVarP(&updateCompra, "compra", "c", 0, "nueva compra")
	UpdateCmd.Flags().StringVarP(&updateAmount, "monto", "m", "", "nuevo monto")
	UpdateCmd.Flags().StringVarP(&updateDate, "fecha", "d", "", "nueva fecha")
	UpdateCmd.Flags().StringVar(&updateDescription, "descripcion", "", "nueva nota")
}
