package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

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

const compraSelect = `SELECT id, cliente_id, nombre_compra, monto_total, fecha_compra, pagado FROM compras`

func (r *CompraRepository) List(ctx context.Context) ([]compra.Compra, error) {
	rows, err := r.db.DB().QueryContext(ctx, compraSelect+` ORDER BY id`)
	if err != nil {
		r.log.Error("failed to list compras", "error", err)
		return nil, fmt.Errorf("list compras: %w", err)
	}
	defer rows.Close()

	compras := []compra.Compra{}
	for rows.Next() {
		c, err := scanCompra(rows)
		if err != nil {
			return nil, fmt.Errorf("scan compra: %w", err)
		}
		compras = append(compras, c)
	}
	return compras, rows.Err()
}

func (r *CompraRepository) Find(ctx context.Context, id int) (compra.Compra, error) {
	c, err := scanCompra(r.db.DB().QueryRowContext(ctx, compraSelect+` WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return compra.Compra{}, compra.ErrNotFound
		}
		r.log.Error("failed to find compra", "id", id, "error", err)
		return compra.Compra{}, fmt.Errorf("find compra: %w", err)
	}
	return c, nil
}

func (r *CompraRepository) Create(ctx context.Context, c compra.Compra) (compra.Compra, error) {
	result, err := r.db.DB().ExecContext(ctx,
		`INSERT INTO compras (cliente_id, nombre_compra, monto_total, fecha_compra, pagado)
		 VALUES (?, ?, ?, ?, ?)`,
		c.ClienteID, c.Label, c.TotalAmount.StringFixed(2), formatDate(c.PurchaseDate), nullBool(c.Paid))
	if err != nil {
		r.log.Error("failed to create compra", "cliente_id", c.ClienteID, "error", err)
		return compra.Compra{}, fmt.Errorf("insert compra: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return compra.Compra{}, fmt.Errorf("last insert id: %w", err)
	}
	return r.Find(ctx, int(id))
}

func (r *CompraRepository) Update(ctx context.Context, c compra.Compra) (compra.Compra, error) {
	result, err := r.db.DB().ExecContext(ctx,
		`UPDATE compras
		 SET cliente_id = ?, nombre_compra = ?, monto_total = ?, fecha_compra = ?, pagado = ?
		 WHERE id = ?`,
		c.ClienteID, c.Label, c.TotalAmount.StringFixed(2), formatDate(c.PurchaseDate), nullBool(c.Paid), c.ID)
	if err != nil {
		r.log.Error("failed to update compra", "id", c.ID, "error", err)
		return compra.Compra{}, fmt.Errorf("update compra: %w", err)
	}

	if n, _ := result.RowsAffected(); n == 0 {
		return compra.Compra{}, compra.ErrNotFound
	}
	return r.Find(ctx, c.ID)
}

// Delete relies on the abonos foreign key cascade.
func (r *CompraRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.DB().ExecContext(ctx, `DELETE FROM compras WHERE id = ?`, id)
	if err != nil {
		r.log.Error("failed to delete compra", "id", id, "error", err)
		return fmt.Errorf("delete compra: %w", err)
	}

	if n, _ := result.RowsAffected(); n == 0 {
		return compra.ErrNotFound
	}
	return nil
}

func scanCompra(row rowScanner) (compra.Compra, error) {
	var (
		c      compra.Compra
		amount string
		date   string
		paid   sql.NullBool
	)
	if err := row.Scan(&c.ID, &c.ClienteID, &c.Label, &amount, &date, &paid); err != nil {
		return compra.Compra{}, err
	}

	var err error
	if c.TotalAmount, err = parseAmount(amount); err != nil {
		return compra.Compra{}, err
	}
	if c.PurchaseDate, err = parseDate(date); err != nil {
		return compra.Compra{}, err
	}
	if paid.Valid {
		c.Paid = &paid.Bool
	}
	return c, nil
}

func nullBool(b *bool) sql.NullBool {
	if b == nil {
		return sql.NullBool{}
	}
	return sql.NullBool{Bool: *b, Valid: true}
}
