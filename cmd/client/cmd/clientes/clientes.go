package clientes

import (
	"strconv"

	"github.com/spf13/cobra"

	"cobros/cmd/client/cmd/output"
	"cobros/internal/app/client"
)

// ClientesCmd is the parent of the client commands
var ClientesCmd = &cobra.Command{
	Use:     "clientes",
	Aliases: []string{"cliente", "c"},
	Short:   "Administrar clientes",
}

func init() {
	ClientesCmd.AddCommand(ListCmd)
	ClientesCmd.AddCommand(CreateCmd)
	ClientesCmd.AddCommand(UpdateCmd)
	ClientesCmd.AddCommand(DeleteCmd)
}

func table(clients []client.Client) output.Table {
	rows := make([][]string, 0, len(clients))
	for _, c := range clients {
		rows = append(rows, row(c))
	}
	return output.Table{
		Title:   "Clientes",
		Headers: []string{"ID", "Nombre", "Teléfono", "Creado"},
		Rows:    rows,
		Raw:     clients,
	}
}

func row(c client.Client) []string {
	phone := c.Phone
	if phone == "" {
		phone = "-"
	}
	return []string{strconv.Itoa(c.ID), c.Name, phone, output.Date(c.CreatedAt)}
}
