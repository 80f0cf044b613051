package compras

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cobros/internal/app/client"
)

var sample = []client.JoinedPurchase{
	{
		Purchase: client.Purchase{
			ID: 1, ClientID: 3, Label: "Sala", TotalAmount: decimal.RequireFromString("1500.5"),
			PurchaseDate: "2024-02-01T00:00:00.000Z", Paid: true,
		},
		ClientName: "Ana",
	},
	{
		Purchase:   client.Purchase{ID: 2, ClientID: 4, Label: "Mesa", TotalAmount: decimal.NewFromInt(300)},
		ClientName: client.UnknownLabel,
	},
}

func TestTable(t *testing.T) {
	tbl := table(sample)

	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, []string{"1", "Ana", "Sala", "Q1500.50", "01/02/2024", "Pagado"}, tbl.Rows[0])
	assert.Equal(t, []string{"2", "Desconocido", "Mesa", "Q300.00", "-", "Pendiente"}, tbl.Rows[1])
}

func TestFilter(t *testing.T) {
	defer func() { listPending, listCliente = false, 0 }()

	assert.Len(t, filter(sample), 2)

	listPending = true
	got := filter(sample)
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].ID)

	listPending, listCliente = false, 3
	got = filter(sample)
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].ID)
}
