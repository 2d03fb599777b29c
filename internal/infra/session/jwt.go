package session

import (
	"context"
	"sync"
	"time"

	"eats/internal/domain/entity"
	"eats/internal/domain/service"
	"eats/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// jwtStore issues stateless HS256 tokens. Logout is recorded in a deny list
// keyed by jti that is kept until the token would have expired anyway.
type jwtStore struct {
	secret []byte
	ttl    time.Duration
	now    clock

	mu     sync.Mutex
	denied map[string]time.Time
}

// NewJWTStore creates a stateless session store signed with secret.
func NewJWTStore(secret string, ttl time.Duration) (service.SessionStore, error) {
	return newJWTStore(secret, ttl, time.Now)
}

func newJWTStore(secret string, ttl time.Duration, now clock) (*jwtStore, error) {
	if secret == "" {
		return nil, errors.New("jwt session backend requires secretKey.access")
	}

	return &jwtStore{
		secret: []byte(secret),
		ttl:    ttl,
		now:    now,
		denied: make(map[string]time.Time),
	}, nil
}

func (s *jwtStore) Issue(_ context.Context, userID uuid.UUID) (*entity.Session, error) {
	issuedAt := s.now().Truncate(time.Second)
	expiresAt := issuedAt.Add(s.ttl)

	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, errors.Wrap(err, "sign session token")
	}

	return &entity.Session{
		Token:     token,
		UserID:    userID,
		IssuedAt:  issuedAt,
		ExpiresAt: expiresAt,
	}, nil
}

func (s *jwtStore) parse(token string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}

	return claims, nil
}

func (s *jwtStore) Resolve(_ context.Context, token string) (uuid.UUID, error) {
	claims, err := s.parse(token)
	if err != nil {
		return uuid.Nil, service.ErrSessionInvalid
	}

	s.mu.Lock()
	_, revoked := s.denied[claims.ID]
	s.mu.Unlock()
	if revoked {
		return uuid.Nil, service.ErrSessionInvalid
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, service.ErrSessionInvalid
	}

	return userID, nil
}

func (s *jwtStore) Revoke(_ context.Context, token string) error {
	claims, err := s.parse(token)
	if err != nil {
		// Invalid or expired tokens cannot be used anyway.
		return nil
	}

	s.mu.Lock()
	s.denied[claims.ID] = claims.ExpiresAt.Time
	s.mu.Unlock()

	return nil
}

func (s *jwtStore) PurgeExpired(_ context.Context) (int, error) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	purged := 0
	for jti, expiresAt := range s.denied {
		if !now.Before(expiresAt) {
			delete(s.denied, jti)
			purged++
		}
	}

	return purged, nil
}

func (s *jwtStore) Close() error {
	return nil
}
