package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slog"

	"cobros/internal/domain/compra"
)

type CompraRepository struct {
	db  *Storage
	log *slog.Logger
}

func NewCompraRepository(db *Storage, log *slog.Logger) *CompraRepository {
	return &CompraRepository{
		db:  db,
		log: log.With("component", "compra_repository"),
	}
}

const compraColumns = `id, cliente_id, nombre_compra, monto_total::text, fecha_compra, pagado`

func (r *CompraRepository) List(ctx context.Context) ([]compra.Compra, error) {
	rows, err := r.db.Pool().Query(ctx, `SELECT `+compraColumns+` FROM compras ORDER BY id`)
	if err != nil {
		r.log.Error("failed to list compras", "error", err)
		return nil, fmt.Errorf("list compras: %w", err)
	}

	compras, err := pgx.CollectRows(rows, collectCompra)
	if err != nil {
		return nil, fmt.Errorf("scan compras: %w", err)
	}
	return compras, nil
}

func (r *CompraRepository) Find(ctx context.Context, id int) (compra.Compra, error) {
	row := r.db.Pool().QueryRow(ctx, `SELECT `+compraColumns+` FROM compras WHERE id = $1`, id)

	c, err := scanCompra(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return compra.Compra{}, compra.ErrNotFound
		}
		r.log.Error("failed to find compra", "id", id, "error", err)
		return compra.Compra{}, fmt.Errorf("find compra: %w", err)
	}
	return c, nil
}

func (r *CompraRepository) Create(ctx context.Context, c compra.Compra) (compra.Compra, error) {
	row := r.db.Pool().QueryRow(ctx,
		`INSERT INTO compras (cliente_id, nombre_compra, monto_total, fecha_compra, pagado)
		 VALUES ($1, $2, $3::text::numeric, $4, $5)
		 RETURNING `+compraColumns,
		c.ClienteID, c.Label, c.TotalAmount.StringFixed(2), c.PurchaseDate, c.Paid)

	created, err := scanCompra(row)
	if err != nil {
		r.log.Error("failed to create compra", "cliente_id", c.ClienteID, "error", err)
		return compra.Compra{}, fmt.Errorf("insert compra: %w", err)
	}
	return created, nil
}

func (r *CompraRepository) Update(ctx context.Context, c compra.Compra) (compra.Compra, error) {
	row := r.db.Pool().QueryRow(ctx,
		`UPDATE compras
		 SET cliente_id = $2, nombre_compra = $3, monto_total = $4::text::numeric, fecha_compra = $5, pagado = $6
		 WHERE id = $1
		 RETURNING `+compraColumns,
		c.ID, c.ClienteID, c.Label, c.TotalAmount.StringFixed(2), c.PurchaseDate, c.Paid)

	updated, err := scanCompra(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return compra.Compra{}, compra.ErrNotFound
		}
		r.log.Error("failed to update compra", "id", c.ID, "error", err)
		return compra.Compra{}, fmt.Errorf("update compra: %w", err)
	}
	return updated, nil
}

// Delete relies on the abonos foreign key cascade.
func (r *CompraRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.Pool().Exec(ctx, `DELETE FROM compras WHERE id = $1`, id)
	if err != nil {
		r.log.Error("failed to delete compra", "id", id, "error", err)
		return fmt.Errorf("delete compra: %w", err)
	}

	if result.RowsAffected() == 0 {
		return compra.ErrNotFound
	}
	return nil
}

func scanCompra(row pgx.Row) (compra.Compra, error) {
	var (
		c      compra.Compra
		amount string
	)
	if err := row.Scan(&c.ID, &c.ClienteID, &c.Label, &amount, &c.PurchaseDate, &c.Paid); err != nil {
		return compra.Compra{}, err
	}

	total, err := decimal.NewFromString(amount)
	if err != nil {
		return compra.Compra{}, fmt.Errorf("parse monto_total %q: %w", amount, err)
	}
	c.TotalAmount = total
	return c, nil
}

// collectCompra adapts scanCompra to pgx.CollectRows.
func collectCompra(row pgx.CollectableRow) (compra.Compra, error) {
	return scanCompra(row)
}
