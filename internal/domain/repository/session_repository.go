package repository

import (
	"context"
	"time"

	"eats/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrSessionNotFound is returned when no session row matches the token hash.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository stores sessions keyed by a hash of their token.
// The Token field of entity.Session carries the hash, never the raw token.
type SessionRepository interface {
	Create(ctx context.Context, session *entity.Session) error
	FindByTokenHash(ctx context.Context, tokenHash string) (*entity.Session, error)
	DeleteByTokenHash(ctx context.Context, tokenHash string) error

	// DeleteExpired removes sessions that expired before now.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
