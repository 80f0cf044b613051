package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

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

const abonoSelect = `SELECT id, cliente_id, compra_id, monto_abono, fecha_abono, description FROM abonos`

func (r *AbonoRepository) List(ctx context.Context) ([]abono.Abono, error) {
	rows, err := r.db.DB().QueryContext(ctx, abonoSelect+` ORDER BY id`)
	if err != nil {
		r.log.Error("failed to list abonos", "error", err)
		return nil, fmt.Errorf("list abonos: %w", err)
	}
	defer rows.Close()

	abonos := []abono.Abono{}
	for rows.Next() {
		a, err := scanAbono(rows)
		if err != nil {
			return nil, fmt.Errorf("scan abono: %w", err)
		}
		abonos = append(abonos, a)
	}
	return abonos, rows.Err()
}

func (r *AbonoRepository) Find(ctx context.Context, id int) (abono.Abono, error) {
	a, err := scanAbono(r.db.DB().QueryRowContext(ctx, abonoSelect+` WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return abono.Abono{}, abono.ErrNotFound
		}
		r.log.Error("failed to find abono", "id", id, "error", err)
		return abono.Abono{}, fmt.Errorf("find abono: %w", err)
	}
	return a, nil
}

func (r *AbonoRepository) Create(ctx context.Context, a abono.Abono) (abono.Abono, error) {
	result, err := r.db.DB().ExecContext(ctx,
		`INSERT INTO abonos (cliente_id, compra_id, monto_abono, fecha_abono, description)
		 VALUES (?, ?, ?, ?, ?)`,
		a.ClienteID, a.CompraID, a.Amount.StringFixed(2), formatDate(a.PaymentDate), a.Description)
	if err != nil {
		r.log.Error("failed to create abono", "compra_id", a.CompraID, "error", err)
		return abono.Abono{}, fmt.Errorf("insert abono: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return abono.Abono{}, fmt.Errorf("last insert id: %w", err)
	}
	return r.Find(ctx, int(id))
}

func (r *AbonoRepository) Update(ctx context.Context, a abono.Abono) (abono.Abono, error) {
	result, err := r.db.DB().ExecContext(ctx,
		`UPDATE abonos
		 SET cliente_id = ?, compra_id = ?, monto_abono = ?, fecha_abono = ?, description = ?
		 WHERE id = ?`,
		a.ClienteID, a.CompraID, a.Amount.StringFixed(2), formatDate(a.PaymentDate), a.Description, a.ID)
	if err != nil {
		r.log.Error("failed to update abono", "id", a.ID, "error", err)
		return abono.Abono{}, fmt.Errorf("update abono: %w", err)
	}

	if n, _ := result.RowsAffected(); n == 0 {
		return abono.Abono{}, abono.ErrNotFound
	}
	return r.Find(ctx, a.ID)
}

func (r *AbonoRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.DB().ExecContext(ctx, `DELETE FROM abonos WHERE id = ?`, id)
	if err != nil {
		r.log.Error("failed to delete abono", "id", id, "error", err)
		return fmt.Errorf("delete abono: %w", err)
	}

	if n, _ := result.RowsAffected(); n == 0 {
		return abono.ErrNotFound
	}
	return nil
}

func scanAbono(row rowScanner) (abono.Abono, error) {
	var (
		a      abono.Abono
		amount string
		date   string
	)
	if err := row.Scan(&a.ID, &a.ClienteID, &a.CompraID, &amount, &date, &a.Description); err != nil {
		return abono.Abono{}, err
	}

	var err error
	if a.Amount, err = parseAmount(amount); err != nil {
		return abono.Abono{}, err
	}
	if a.PaymentDate, err = parseDate(date); err != nil {
		return abono.Abono{}, err
	}
	return a, nil
}
