package session

import (
	"context"
	"encoding/binary"
	"time"

	"eats/internal/domain/entity"
	"eats/internal/domain/service"
	"eats/internal/errors"

	"github.com/cockroachdb/pebble"
	"github.com/google/uuid"
)

const (
	pebbleKeyPrefix = "session/"
	pebbleValueSize = 8 + 16
)

// pebbleStore keeps sessions in an embedded Pebble database so they survive restarts.
// Value layout: [expiresAt unix nanos:8][user id:16].
type pebbleStore struct {
	db  *pebble.DB
	ttl time.Duration
	now clock
}

// NewPebbleStore opens (or creates) a Pebble session database at dir.
func NewPebbleStore(dir string, ttl time.Duration) (service.SessionStore, error) {
	return openPebbleStore(dir, &pebble.Options{}, ttl, time.Now)
}

func openPebbleStore(dir string, opts *pebble.Options, ttl time.Duration, now clock) (*pebbleStore, error) {
	db, err := pebble.Open(dir, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "open pebble session store at %s", dir)
	}

	return &pebbleStore{db: db, ttl: ttl, now: now}, nil
}

func pebbleKey(token string) []byte {
	return []byte(pebbleKeyPrefix + hashToken(token))
}

func encodePebbleValue(userID uuid.UUID, expiresAt time.Time) []byte {
	buf := make([]byte, pebbleValueSize)
	binary.BigEndian.PutUint64(buf[:8], uint64(expiresAt.UnixNano()))
	copy(buf[8:], userID[:])

	return buf
}

func decodePebbleValue(b []byte) (uuid.UUID, time.Time, error) {
	if len(b) != pebbleValueSize {
		return uuid.Nil, time.Time{}, errors.Errorf("invalid session record length %d", len(b))
	}

	expiresAt := time.Unix(0, int64(binary.BigEndian.Uint64(b[:8])))
	userID, err := uuid.FromBytes(b[8:])
	if err != nil {
		return uuid.Nil, time.Time{}, errors.Wrap(err, "decode session user id")
	}

	return userID, expiresAt, nil
}

func (s *pebbleStore) Issue(_ context.Context, userID uuid.UUID) (*entity.Session, error) {
	token, err := newToken()
	if err != nil {
		return nil, err
	}

	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.ttl)
	if err := s.db.Set(pebbleKey(token), encodePebbleValue(userID, expiresAt), pebble.Sync); err != nil {
		return nil, errors.Wrap(err, "write session")
	}

	return &entity.Session{
		Token:     token,
		UserID:    userID,
		IssuedAt:  issuedAt,
		ExpiresAt: expiresAt,
	}, nil
}

func (s *pebbleStore) Resolve(_ context.Context, token string) (uuid.UUID, error) {
	key := pebbleKey(token)

	val, closer, err := s.db.Get(key)
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return uuid.Nil, service.ErrSessionInvalid
		}

		return uuid.Nil, errors.Wrap(err, "read session")
	}
	userID, expiresAt, decodeErr := decodePebbleValue(val)
	closer.Close()

	if decodeErr != nil {
		return uuid.Nil, decodeErr
	}

	if !s.now().Before(expiresAt) {
		if err := s.db.Delete(key, pebble.NoSync); err != nil {
			return uuid.Nil, errors.Wrap(err, "drop expired session")
		}

		return uuid.Nil, service.ErrSessionInvalid
	}

	return userID, nil
}

func (s *pebbleStore) Revoke(_ context.Context, token string) error {
	if err := s.db.Delete(pebbleKey(token), pebble.Sync); err != nil {
		return errors.Wrap(err, "delete session")
	}

	return nil
}

func (s *pebbleStore) PurgeExpired(_ context.Context) (int, error) {
	iter, err := s.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte(pebbleKeyPrefix),
		UpperBound: []byte(pebbleKeyPrefix + "~"),
	})
	if err != nil {
		return 0, errors.Wrap(err, "open session iterator")
	}

	now := s.now()
	batch := s.db.NewBatch()
	defer batch.Close()

	purged := 0
	for iter.First(); iter.Valid(); iter.Next() {
		_, expiresAt, err := decodePebbleValue(iter.Value())
		if err == nil && now.Before(expiresAt) {
			continue
		}

		// Undecodable records are dropped along with expired ones.
		if err := batch.Delete(append([]byte(nil), iter.Key()...), nil); err != nil {
			iter.Close()

			return 0, errors.Wrap(err, "stage session delete")
		}
		purged++
	}

	if err := iter.Error(); err != nil {
		iter.Close()

		return 0, errors.Wrap(err, "scan sessions")
	}
	if err := iter.Close(); err != nil {
		return 0, errors.Wrap(err, "close session iterator")
	}

	if purged == 0 {
		return 0, nil
	}
	if err := batch.Commit(pebble.Sync); err != nil {
		return 0, errors.Wrap(err, "commit session purge")
	}

	return purged, nil
}

func (s *pebbleStore) Close() error {
	return s.db.Close()
}
