package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slog"
)

const (
	dateLayout = "2006-01-02"
	// fixed width so stored timestamps compare as text
	timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"
)

type Storage struct {
	db  *sql.DB
	log *slog.Logger
}

// New opens the database at path and creates missing tables.
// ":memory:" gives a private throwaway database.
func New(ctx context.Context, path string, log *slog.Logger) (*Storage, error) {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// one connection keeps ":memory:" a single database and serializes writers
	db.SetMaxOpenConns(1)

	s := &Storage{db: db, log: log.With("component", "sqlite")}
	if err := s.initTables(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("init tables: %w", err)
	}

	return s, nil
}

func (s *Storage) initTables(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS clientes (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			nombre    TEXT NOT NULL,
			telefono  TEXT NOT NULL DEFAULT '',
			creado_en TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS compras (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			cliente_id    INTEGER NOT NULL,
			nombre_compra TEXT    NOT NULL,
			monto_total   TEXT    NOT NULL DEFAULT '0.00',
			fecha_compra  TEXT    NOT NULL,
			pagado        INTEGER
		);

		CREATE INDEX IF NOT EXISTS idx_compras_cliente_id ON compras(cliente_id);

		CREATE TABLE IF NOT EXISTS abonos (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			cliente_id  INTEGER NOT NULL,
			compra_id   INTEGER NOT NULL REFERENCES compras(id) ON DELETE CASCADE,
			monto_abono TEXT    NOT NULL,
			fecha_abono TEXT    NOT NULL,
			description TEXT    NOT NULL DEFAULT ''
		);

		CREATE INDEX IF NOT EXISTS idx_abonos_compra_id ON abonos(compra_id);

		CREATE TABLE IF NOT EXISTS revoked_tokens (
			token_id   TEXT PRIMARY KEY,
			expires_at TEXT NOT NULL
		);
	`)
	return err
}

func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) DB() *sql.DB {
	return s.db
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}

func parseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parse amount %q: %w", s, err)
	}
	return d, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}
