package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"golang.org/x/exp/slog"

	"cobros/internal/domain/cliente"
)

type ClienteRepository struct {
	db  *Storage
	log *slog.Logger
}

func NewClienteRepository(db *Storage, log *slog.Logger) *ClienteRepository {
	return &ClienteRepository{
		db:  db,
		log: log.With("component", "cliente_repository"),
	}
}

const clienteColumns = `id, nombre, telefono, creado_en`

func (r *ClienteRepository) List(ctx context.Context) ([]cliente.Cliente, error) {
	rows, err := r.db.Pool().Query(ctx, `SELECT `+clienteColumns+` FROM clientes ORDER BY id`)
	if err != nil {
		r.log.Error("failed to list clientes", "error", err)
		return nil, fmt.Errorf("list clientes: %w", err)
	}

	clientes, err := pgx.CollectRows(rows, collectCliente)
	if err != nil {
		return nil, fmt.Errorf("scan clientes: %w", err)
	}
	return clientes, nil
}

func (r *ClienteRepository) Find(ctx context.Context, id int) (cliente.Cliente, error) {
	row := r.db.Pool().QueryRow(ctx, `SELECT `+clienteColumns+` FROM clientes WHERE id = $1`, id)

	c, err := scanCliente(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return cliente.Cliente{}, cliente.ErrNotFound
		}
		r.log.Error("failed to find cliente", "id", id, "error", err)
		return cliente.Cliente{}, fmt.Errorf("find cliente: %w", err)
	}
	return c, nil
}

func (r *ClienteRepository) Create(ctx context.Context, c cliente.Cliente) (cliente.Cliente, error) {
	row := r.db.Pool().QueryRow(ctx,
		`INSERT INTO clientes (nombre, telefono, creado_en) VALUES ($1, $2, $3)
		 RETURNING `+clienteColumns,
		c.Name, c.Phone, c.CreatedAt)

	created, err := scanCliente(row)
	if err != nil {
		r.log.Error("failed to create cliente", "error", err)
		return cliente.Cliente{}, fmt.Errorf("insert cliente: %w", err)
	}
	return created, nil
}

func (r *ClienteRepository) Update(ctx context.Context, c cliente.Cliente) (cliente.Cliente, error) {
	row := r.db.Pool().QueryRow(ctx,
		`UPDATE clientes SET nombre = $2, telefono = $3 WHERE id = $1
		 RETURNING `+clienteColumns,
		c.ID, c.Name, c.Phone)

	updated, err := scanCliente(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return cliente.Cliente{}, cliente.ErrNotFound
		}
		r.log.Error("failed to update cliente", "id", c.ID, "error", err)
		return cliente.Cliente{}, fmt.Errorf("update cliente: %w", err)
	}
	return updated, nil
}

func (r *ClienteRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.Pool().Exec(ctx, `DELETE FROM clientes WHERE id = $1`, id)
	if err != nil {
		r.log.Error("failed to delete cliente", "id", id, "error", err)
		return fmt.Errorf("delete cliente: %w", err)
	}

	if result.RowsAffected() == 0 {
		return cliente.ErrNotFound
	}
	return nil
}

func scanCliente(row pgx.Row) (cliente.Cliente, error) {
	var c cliente.Cliente
	err := row.Scan(&c.ID, &c.Name, &c.Phone, &c.CreatedAt)
	return c, err
}

// collectCliente adapts scanCliente to pgx.CollectRows.
func collectCliente(row pgx.CollectableRow) (cliente.Cliente, error) {
	return scanCliente(row)
}
