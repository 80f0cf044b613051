package session

import (
	"context"
	"time"
)

// Repository remembers logged out tokens until they would have expired anyway.
type Repository interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
