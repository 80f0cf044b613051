package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slog"

	"cobros/internal/domain/abono"
)

type AbonoRepository struct {
	db  *Storage
	log *slog.Logger
}

func NewAbonoRepository(db *Storage, log *slog.Logger) *AbonoRepository {
	return &AbonoRepository{
		db:  db,
		log: log.With("component", "abono_repository"),
	}
}

const abonoColumns = `id, cliente_id, compra_id, monto_abono::text, fecha_abono, description`

func (r *AbonoRepository) List(ctx context.Context) ([]abono.Abono, error) {
	rows, err := r.db.Pool().Query(ctx, `SELECT `+abonoColumns+` FROM abonos ORDER BY id`)
	if err != nil {
		r.log.Error("failed to list abonos", "error", err)
		return nil, fmt.Errorf("list abonos: %w", err)
	}

	abonos, err := pgx.CollectRows(rows, collectAbono)
	if err != nil {
		return nil, fmt.Errorf("scan abonos: %w", err)
	}
	return abonos, nil
}

func (r *AbonoRepository) Find(ctx context.Context, id int) (abono.Abono, error) {
	row := r.db.Pool().QueryRow(ctx, `SELECT `+abonoColumns+` FROM abonos WHERE id = $1`, id)

	a, err := scanAbono(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return abono.Abono{}, abono.ErrNotFound
		}
		r.log.Error("failed to find abono", "id", id, "error", err)
		return abono.Abono{}, fmt.Errorf("find abono: %w", err)
	}
	return a, nil
}

func (r *AbonoRepository) Create(ctx context.Context, a abono.Abono) (abono.Abono, error) {
	row := r.db.Pool().QueryRow(ctx,
		`INSERT INTO abonos (cliente_id, compra_id, monto_abono, fecha_abono, description)
		 VALUES ($1, $2, $3::text::numeric, $4, $5)
		 RETURNING `+abonoColumns,
		a.ClienteID, a.CompraID, a.Amount.StringFixed(2), a.PaymentDate, a.Description)

	created, err := scanAbono(row)
	if err != nil {
		r.log.Error("failed to create abono", "compra_id", a.CompraID, "error", err)
		return abono.Abono{}, fmt.Errorf("insert abono: %w", err)
	}
	return created, nil
}

func (r *AbonoRepository) Update(ctx context.Context, a abono.Abono) (abono.Abono, error) {
	row := r.db.Pool().QueryRow(ctx,
		`UPDATE abonos
		 SET cliente_id = $2, compra_id = $3, monto_abono = $4::text::numeric, fecha_abono = $5, description = $6
		 WHERE id = $1
		 RETURNING `+abonoColumns,
		a.ID, a.ClienteID, a.CompraID, a.Amount.StringFixed(2), a.PaymentDate, a.Description)

	updated, err := scanAbono(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return abono.Abono{}, abono.ErrNotFound
		}
		r.log.Error("failed to update abono", "id", a.ID, "error", err)
		return abono.Abono{}, fmt.Errorf("update abono: %w", err)
	}
	return updated, nil
}

func (r *AbonoRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.Pool().Exec(ctx, `DELETE FROM abonos WHERE id = $1`, id)
	if err != nil {
		r.log.Error("failed to delete abono", "id", id, "error", err)
		return fmt.Errorf("delete abono: %w", err)
	}

	if result.RowsAffected() == 0 {
		return abono.ErrNotFound
	}
	return nil
}

func scanAbono(row pgx.Row) (abono.Abono, error) {
	var (
		a      abono.Abono
		amount string
	)
	if err := row.Scan(&a.ID, &a.ClienteID, &a.CompraID, &amount, &a.PaymentDate, &a.Description); err != nil {
		return abono.Abono{}, err
	}

	value, err := decimal.NewFromString(amount)
	if err != nil {
		return abono.Abono{}, fmt.Errorf("parse monto_abono %q: %w", amount, err)
	}
	a.Amount = value
	return a, nil
}

// collectAbono adapts scanAbono to pgx.CollectRows.
func collectAbono(row pgx.CollectableRow) (abono.Abono, error) {
	return scanAbono(row)
}
