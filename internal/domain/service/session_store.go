package service

import (
	"context"

	"eats/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrSessionInvalid is returned for unknown, expired or revoked tokens.
var ErrSessionInvalid = errors.New("session invalid or expired")

// SessionStore maps opaque bearer tokens to user ids with an expiry policy.
// Implementations must be safe for concurrent use.
type SessionStore interface {
	// Issue creates a new session for the user. Existing sessions stay valid.
	Issue(ctx context.Context, userID uuid.UUID) (*entity.Session, error)

	// Resolve returns the user behind a live token, or ErrSessionInvalid.
	Resolve(ctx context.Context, token string) (uuid.UUID, error)

	// Revoke invalidates the token. Unknown tokens are not an error.
	Revoke(ctx context.Context, token string) error

	// PurgeExpired drops expired sessions and reports how many were removed.
	PurgeExpired(ctx context.Context) (int, error)

	// Close releases resources held by the store.
	Close() error
}
