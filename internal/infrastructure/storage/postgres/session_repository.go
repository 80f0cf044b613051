package postgres

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/exp/slog"
)

type SessionRepository struct {
	db  *Storage
	log *slog.Logger
}

func NewSessionRepository(db *Storage, log *slog.Logger) *SessionRepository {
	return &SessionRepository{
		db:  db,
		log: log.With("component", "session_repository"),
	}
}

// Revoke also prunes entries whose tokens have expired on their own.
func (r *SessionRepository) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	tx, err := r.db.Pool().Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM revoked_tokens WHERE expires_at < NOW()`); err != nil {
		r.log.Error("failed to prune revoked tokens", "error", err)
		return fmt.Errorf("prune revoked tokens: %w", err)
	}

	const query = `
		INSERT INTO revoked_tokens (token_id, expires_at) VALUES ($1, $2)
		ON CONFLICT (token_id) DO NOTHING`
	if _, err := tx.Exec(ctx, query, tokenID, expiresAt); err != nil {
		r.log.Error("failed to revoke token", "token_id", tokenID, "error", err)
		return fmt.Errorf("revoke token: %w", err)
	}

	return tx.Commit(ctx)
}

func (r *SessionRepository) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	var revoked bool
	err := r.db.Pool().QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM revoked_tokens WHERE token_id = $1)`, tokenID).Scan(&revoked)
	if err != nil {
		r.log.Error("failed to check revoked token", "token_id", tokenID, "error", err)
		return false, fmt.Errorf("check revoked token: %w", err)
	}
	return revoked, nil
}
