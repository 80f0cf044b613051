package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

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

const clienteSelect = `SELECT id, nombre, telefono, creado_en FROM clientes`

func (r *ClienteRepository) List(ctx context.Context) ([]cliente.Cliente, error) {
	rows, err := r.db.DB().QueryContext(ctx, clienteSelect+` ORDER BY id`)
	if err != nil {
		r.log.Error("failed to list clientes", "error", err)
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()

	clientes := []cliente.Cliente{}
	for rows.Next() {
		c, err := scanCliente(rows)
		if err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		clientes = append(clientes, c)
	}
	return clientes, rows.Err()
}

func (r *ClienteRepository) Find(ctx context.Context, id int) (cliente.Cliente, error) {
	c, err := scanCliente(r.db.DB().QueryRowContext(ctx, clienteSelect+` WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return cliente.Cliente{}, cliente.ErrNotFound
		}
		r.log.Error("failed to find cliente", "id", id, "error", err)
		return cliente.Cliente{}, fmt.Errorf("find cliente: %w", err)
	}
	return c, nil
}

func (r *ClienteRepository) Create(ctx context.Context, c cliente.Cliente) (cliente.Cliente, error) {
	result, err := r.db.DB().ExecContext(ctx,
		`INSERT INTO clientes (nombre, telefono, creado_en) VALUES (?, ?, ?)`,
		c.Name, c.Phone, c.CreatedAt.UTC().Format(timestampLayout))
	if err != nil {
		r.log.Error("failed to create cliente", "error", err)
		return cliente.Cliente{}, fmt.Errorf("insert cliente: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return cliente.Cliente{}, fmt.Errorf("last insert id: %w", err)
	}
	return r.Find(ctx, int(id))
}

func (r *ClienteRepository) Update(ctx context.Context, c cliente.Cliente) (cliente.Cliente, error) {
	result, err := r.db.DB().ExecContext(ctx,
		`UPDATE clientes SET nombre = ?, telefono = ? WHERE id = ?`,
		c.Name, c.Phone, c.ID)
	if err != nil {
		r.log.Error("failed to update cliente", "id", c.ID, "error", err)
		return cliente.Cliente{}, fmt.Errorf("update cliente: %w", err)
	}

	if n, _ := result.RowsAffected(); n == 0 {
		return cliente.Cliente{}, cliente.ErrNotFound
	}
	return r.Find(ctx, c.ID)
}

func (r *ClienteRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.DB().ExecContext(ctx, `DELETE FROM clientes WHERE id = ?`, id)
	if err != nil {
		r.log.Error("failed to delete cliente", "id", id, "error", err)
		return fmt.Errorf("delete cliente: %w", err)
	}

	if n, _ := result.RowsAffected(); n == 0 {
		return cliente.ErrNotFound
	}
	return nil
}

func scanCliente(row rowScanner) (cliente.Cliente, error) {
	var (
		c         cliente.Cliente
		createdAt string
	)
	if err := row.Scan(&c.ID, &c.Name, &c.Phone, &createdAt); err != nil {
		return cliente.Cliente{}, err
	}

	t, err := time.Parse(timestampLayout, createdAt)
	if err != nil {
		return cliente.Cliente{}, fmt.Errorf("parse creado_en %q: %w", createdAt, err)
	}
	c.CreatedAt = t
	return c, nil
}
