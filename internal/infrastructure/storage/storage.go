package storage

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"

	"cobros/internal/app/server/config"
	"cobros/internal/domain/abono"
	"cobros/internal/domain/cliente"
	"cobros/internal/domain/compra"
	"cobros/internal/domain/session"
	"cobros/internal/infrastructure/storage/postgres"
	"cobros/internal/infrastructure/storage/sqlite"
)

// Repositories bundles one implementation of every domain repository
// backed by the same database.
type Repositories struct {
	Clientes cliente.Repository
	Compras  compra.Repository
	Abonos   abono.Repository
	Sessions session.Repository

	ping  func(ctx context.Context) error
	close func() error
}

// Open connects to the database selected by cfg.Driver.
func Open(ctx context.Context, cfg config.DB, log *slog.Logger) (*Repositories, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		db, err := postgres.New(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		return &Repositories{
			Clientes: postgres.NewClienteRepository(db, log),
			Compras:  postgres.NewCompraRepository(db, log),
			Abonos:   postgres.NewAbonoRepository(db, log),
			Sessions: postgres.NewSessionRepository(db, log),
			ping:     db.Ping,
			close:    db.Close,
		}, nil
	case config.DriverSQLite:
		db, err := sqlite.New(ctx, cfg.SQLitePath, log)
		if err != nil {
			return nil, err
		}
		return NewSQLite(db, log), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

func NewSQLite(db *sqlite.Storage, log *slog.Logger) *Repositories {
	return &Repositories{
		Clientes: sqlite.NewClienteRepository(db, log),
		Compras:  sqlite.NewCompraRepository(db, log),
		Abonos:   sqlite.NewAbonoRepository(db, log),
		Sessions: sqlite.NewSessionRepository(db, log),
		ping:     db.Ping,
		close:    db.Close,
	}
}

func (r *Repositories) Ping(ctx context.Context) error {
	if r.ping == nil {
		return nil
	}
	return r.ping(ctx)
}

func (r *Repositories) Close() error {
	if r.close == nil {
		return nil
	}
	return r.close()
}
