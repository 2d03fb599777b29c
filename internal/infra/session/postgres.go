package session

import (
	"context"
	"time"

	"eats/internal/domain/entity"
	"eats/internal/domain/repository"
	"eats/internal/domain/service"
	"eats/internal/errors"

	"github.com/google/uuid"
)

// postgresStore persists sessions through the SessionRepository.
// Rows are keyed by the token hash so a database leak exposes no usable tokens.
type postgresStore struct {
	repo repository.SessionRepository
	ttl  time.Duration
	now  clock
}

// NewPostgresStore creates a database-backed session store.
func NewPostgresStore(repo repository.SessionRepository, ttl time.Duration) service.SessionStore {
	return &postgresStore{repo: repo, ttl: ttl, now: time.Now}
}

func (s *postgresStore) Issue(ctx context.Context, userID uuid.UUID) (*entity.Session, error) {
	token, err := newToken()
	if err != nil {
		return nil, err
	}

	issuedAt := s.now().UTC()
	row := &entity.Session{
		Token:     hashToken(token),
		UserID:    userID,
		IssuedAt:  issuedAt,
		ExpiresAt: issuedAt.Add(s.ttl),
	}
	if err := s.repo.Create(ctx, row); err != nil {
		return nil, errors.Wrap(err, "store session")
	}

	return &entity.Session{
		Token:     token,
		UserID:    userID,
		IssuedAt:  row.IssuedAt,
		ExpiresAt: row.ExpiresAt,
	}, nil
}

func (s *postgresStore) Resolve(ctx context.Context, token string) (uuid.UUID, error) {
	row, err := s.repo.FindByTokenHash(ctx, hashToken(token))
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return uuid.Nil, service.ErrSessionInvalid
		}

		return uuid.Nil, errors.Wrap(err, "find session")
	}

	if row.Expired(s.now()) {
		return uuid.Nil, service.ErrSessionInvalid
	}

	return row.UserID, nil
}

func (s *postgresStore) Revoke(ctx context.Context, token string) error {
	if err := s.repo.DeleteByTokenHash(ctx, hashToken(token)); err != nil {
		return errors.Wrap(err, "delete session")
	}

	return nil
}

func (s *postgresStore) PurgeExpired(ctx context.Context) (int, error) {
	removed, err := s.repo.DeleteExpired(ctx, s.now().UTC())
	if err != nil {
		return 0, errors.Wrap(err, "purge sessions")
	}

	return int(removed), nil
}

func (s *postgresStore) Close() error {
	return nil
}
