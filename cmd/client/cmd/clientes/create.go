package clientes

import (
	"fmt"

	"github.com/spf13/cobra"

	"cobros/cmd/client/cmd/types"
	"cobros/internal/app/client"
)

var (
	createName  string
	createPhone string
)

var CreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Registrar un cliente",
	Example: `  cobros clientes create --nombre "Ana López" --telefono 5555-1111`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		created, err := app.CreateClient(cmd.Context(), client.ClientInput{
			Name:  createName,
			Phone: createPhone,
		})
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✓ Cliente #%d %s registrado\n", created.ID, created.Name)
		return nil
	},
}

func init() {
	CreateCmd.Flags().StringVarP(&createName, "nombre", "n", "", "nombre del cliente")
	CreateCmd.Flags().StringVarP(&createPhone, "telefono", "t", "", "teléfono")
	_ = CreateCmd.MarkFlagRequired("nombre")
}
