package sqlite

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"cobros/internal/domain/abono"
	"cobros/internal/domain/cliente"
	"cobros/internal/domain/compra"
)

var testLog = slog.New(slog.NewTextHandler(io.Discard, nil))

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	s, err := New(context.Background(), ":memory:", testLog)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestClienteRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewClienteRepository(newTestStorage(t), testLog)

	created, err := repo.Create(ctx, cliente.Cliente{
		Name:      "Ana",
		Phone:     "5555-1111",
		CreatedAt: time.Date(2024, 1, 2, 3, 4, 5, 6, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
	assert.True(t, created.CreatedAt.Equal(time.Date(2024, 1, 2, 3, 4, 5, 6, time.UTC)))

	created.Phone = "5555-2222"
	updated, err := repo.Update(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, "5555-2222", updated.Phone)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, repo.Delete(ctx, created.ID))
	assert.ErrorIs(t, repo.Delete(ctx, created.ID), cliente.ErrNotFound)

	_, err = repo.Find(ctx, created.ID)
	assert.ErrorIs(t, err, cliente.ErrNotFound)

	_, err = repo.Update(ctx, cliente.Cliente{ID: 42, Name: "x"})
	assert.ErrorIs(t, err, cliente.ErrNotFound)
}

func TestCompraRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewCompraRepository(newTestStorage(t), testLog)

	day := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	created, err := repo.Create(ctx, compra.Compra{
		ClienteID:    99, // no such cliente, compras do not require one
		Label:        "Sala",
		TotalAmount:  decimal.RequireFromString("1500.5"),
		PurchaseDate: day,
	})
	require.NoError(t, err)
	assert.Nil(t, created.Paid)
	assert.Equal(t, "1500.50", created.TotalAmount.StringFixed(2))
	assert.True(t, day.Equal(created.PurchaseDate))

	paid := true
	created.Paid = &paid
	updated, err := repo.Update(ctx, created)
	require.NoError(t, err)
	require.NotNil(t, updated.Paid)
	assert.True(t, *updated.Paid)
}

func TestCompraRepository_DeleteCascadesAbonos(t *testing.T) {
	ctx := context.Background()
	storage := newTestStorage(t)
	compras := NewCompraRepository(storage, testLog)
	abonos := NewAbonoRepository(storage, testLog)

	day := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	c1, err := compras.Create(ctx, compra.Compra{ClienteID: 1, Label: "A", TotalAmount: decimal.NewFromInt(100), PurchaseDate: day})
	require.NoError(t, err)
	c2, err := compras.Create(ctx, compra.Compra{ClienteID: 1, Label: "B", TotalAmount: decimal.NewFromInt(100), PurchaseDate: day})
	require.NoError(t, err)

	for _, compraID := range []int{c1.ID, c1.ID, c2.ID} {
		_, err := abonos.Create(ctx, abono.Abono{ClienteID: 1, CompraID: compraID, Amount: decimal.NewFromInt(10), PaymentDate: day})
		require.NoError(t, err)
	}

	require.NoError(t, compras.Delete(ctx, c1.ID))

	left, err := abonos.List(ctx)
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, c2.ID, left[0].CompraID)

	assert.ErrorIs(t, compras.Delete(ctx, c1.ID), compra.ErrNotFound)
}

func TestAbonoRepository_RejectsUnknownCompra(t *testing.T) {
	repo := NewAbonoRepository(newTestStorage(t), testLog)

	_, err := repo.Create(context.Background(), abono.Abono{
		ClienteID:   1,
		CompraID:    5,
		Amount:      decimal.NewFromInt(10),
		PaymentDate: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	})
	assert.Error(t, err)
}

func TestSessionRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository(newTestStorage(t), testLog)

	revoked, err := repo.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, repo.Revoke(ctx, "jti-1", time.Now().Add(time.Hour)))
	require.NoError(t, repo.Revoke(ctx, "jti-1", time.Now().Add(time.Hour)))

	revoked, err = repo.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	// expired entries are pruned on the next revoke
	require.NoError(t, repo.Revoke(ctx, "jti-old", time.Now().Add(-time.Hour)))
	require.NoError(t, repo.Revoke(ctx, "jti-2", time.Now().Add(time.Hour)))

	revoked, err = repo.IsRevoked(ctx, "jti-old")
	require.NoError(t, err)
	assert.False(t, revoked)
}
