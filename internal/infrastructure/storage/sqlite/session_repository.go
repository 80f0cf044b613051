package sqlite

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/exp/slog"
)

type SessionRepository struct {
	db  *Storage
	log *slog.Logger
	now func() time.Time
}

func NewSessionRepository(db *Storage, log *slog.Logger) *SessionRepository {
	return &SessionRepository{
		db:  db,
		log: log.With("component", "session_repository"),
		now: time.Now,
	}
}

// Revoke also prunes entries whose tokens have expired on their own.
func (r *SessionRepository) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	tx, err := r.db.DB().BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := r.now().UTC().Format(timestampLayout)
	if _, err := tx.ExecContext(ctx, `DELETE FROM revoked_tokens WHERE expires_at < ?`, now); err != nil {
		r.log.Error("failed to prune revoked tokens", "error", err)
		return fmt.Errorf("prune revoked tokens: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT OR IGNORE INTO revoked_tokens (token_id, expires_at) VALUES (?, ?)`,
		tokenID, expiresAt.UTC().Format(timestampLayout))
	if err != nil {
		r.log.Error("failed to revoke token", "token_id", tokenID, "error", err)
		return fmt.Errorf("revoke token: %w", err)
	}

	return tx.Commit()
}

func (r *SessionRepository) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	var revoked bool
	err := r.db.DB().QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM revoked_tokens WHERE token_id = ?)`, tokenID).Scan(&revoked)
	if err != nil {
		r.log.Error("failed to check revoked token", "token_id", tokenID, "error", err)
		return false, fmt.Errorf("check revoked token: %w", err)
	}
	return revoked, nil
}
