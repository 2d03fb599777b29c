package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"eats/internal/domain/entity"
	"eats/internal/domain/repository"
	"eats/internal/domain/service"

	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// fakeSessionRepo is an in-memory SessionRepository.
type fakeSessionRepo struct {
	mu   sync.Mutex
	rows map[string]entity.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{rows: make(map[string]entity.Session)}
}

func (r *fakeSessionRepo) Create(_ context.Context, s *entity.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[s.Token] = *s

	return nil
}

func (r *fakeSessionRepo) FindByTokenHash(_ context.Context, hash string) (*entity.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[hash]
	if !ok {
		return nil, repository.ErrSessionNotFound
	}

	return &row, nil
}

func (r *fakeSessionRepo) DeleteByTokenHash(_ context.Context, hash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rows, hash)

	return nil
}

func (r *fakeSessionRepo) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for k, row := range r.rows {
		if !now.Before(row.ExpiresAt) {
			delete(r.rows, k)
			n++
		}
	}

	return n, nil
}

type storeFactory func(t *testing.T, ttl time.Duration, clock *fakeClock) service.SessionStore

func backends() map[string]storeFactory {
	return map[string]storeFactory{
		"memory": func(_ *testing.T, ttl time.Duration, c *fakeClock) service.SessionStore {
			return newMemoryStore(ttl, c.Now)
		},
		"postgres": func(_ *testing.T, ttl time.Duration, c *fakeClock) service.SessionStore {
			return &postgresStore{repo: newFakeSessionRepo(), ttl: ttl, now: c.Now}
		},
		"pebble": func(t *testing.T, ttl time.Duration, c *fakeClock) service.SessionStore {
			store, err := openPebbleStore("sessions", &pebble.Options{FS: vfs.NewMem()}, ttl, c.Now)
			require.NoError(t, err)
			t.Cleanup(func() { _ = store.Close() })

			return store
		},
		"jwt": func(t *testing.T, ttl time.Duration, c *fakeClock) service.SessionStore {
			store, err := newJWTStore("test-secret", ttl, c.Now)
			require.NoError(t, err)

			return store
		},
	}
}

func TestSessionStore_IssueResolve(t *testing.T) {
	for name, factory := range backends() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			clock := newFakeClock()
			store := factory(t, time.Hour, clock)
			userID := uuid.New()

			sess, err := store.Issue(ctx, userID)
			require.NoError(t, err)
			assert.NotEmpty(t, sess.Token)
			assert.Equal(t, userID, sess.UserID)
			assert.Equal(t, time.Hour, sess.ExpiresAt.Sub(sess.IssuedAt))

			got, err := store.Resolve(ctx, sess.Token)
			require.NoError(t, err)
			assert.Equal(t, userID, got)
		})
	}
}

func TestSessionStore_UnknownToken(t *testing.T) {
	for name, factory := range backends() {
		t.Run(name, func(t *testing.T) {
			store := factory(t, time.Hour, newFakeClock())

			_, err := store.Resolve(context.Background(), "does-not-exist")
			assert.ErrorIs(t, err, service.ErrSessionInvalid)
		})
	}
}

func TestSessionStore_ExpiresAfterTTL(t *testing.T) {
	for name, factory := range backends() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			clock := newFakeClock()
			store := factory(t, time.Hour, clock)

			sess, err := store.Issue(ctx, uuid.New())
			require.NoError(t, err)

			clock.Advance(59 * time.Minute)
			_, err = store.Resolve(ctx, sess.Token)
			require.NoError(t, err)

			clock.Advance(2 * time.Minute)
			_, err = store.Resolve(ctx, sess.Token)
			assert.ErrorIs(t, err, service.ErrSessionInvalid)
		})
	}
}

func TestSessionStore_RevokeIsIdempotent(t *testing.T) {
	for name, factory := range backends() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			store := factory(t, time.Hour, newFakeClock())

			first, err := store.Issue(ctx, uuid.New())
			require.NoError(t, err)
			second, err := store.Issue(ctx, first.UserID)
			require.NoError(t, err)
			assert.NotEqual(t, first.Token, second.Token)

			require.NoError(t, store.Revoke(ctx, first.Token))
			require.NoError(t, store.Revoke(ctx, first.Token))

			_, err = store.Resolve(ctx, first.Token)
			assert.ErrorIs(t, err, service.ErrSessionInvalid)

			// Other sessions of the same user stay valid.
			got, err := store.Resolve(ctx, second.Token)
			require.NoError(t, err)
			assert.Equal(t, first.UserID, got)
		})
	}
}

func TestSessionStore_PurgeExpired(t *testing.T) {
	for _, name := range []string{"memory", "postgres", "pebble"} {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			clock := newFakeClock()
			store := backends()[name](t, time.Hour, clock)

			_, err := store.Issue(ctx, uuid.New())
			require.NoError(t, err)
			_, err = store.Issue(ctx, uuid.New())
			require.NoError(t, err)

			clock.Advance(30 * time.Minute)
			live, err := store.Issue(ctx, uuid.New())
			require.NoError(t, err)

			clock.Advance(31 * time.Minute)
			purged, err := store.PurgeExpired(ctx)
			require.NoError(t, err)
			assert.Equal(t, 2, purged)

			_, err = store.Resolve(ctx, live.Token)
			assert.NoError(t, err)
		})
	}
}

func TestPostgresStore_StoresOnlyTokenHash(t *testing.T) {
	repo := newFakeSessionRepo()
	store := &postgresStore{repo: repo, ttl: time.Hour, now: newFakeClock().Now}

	sess, err := store.Issue(context.Background(), uuid.New())
	require.NoError(t, err)

	_, rawStored := repo.rows[sess.Token]
	_, hashStored := repo.rows[hashToken(sess.Token)]
	assert.False(t, rawStored)
	assert.True(t, hashStored)
}

func TestJWTStore_PurgeDropsExpiredDenyEntries(t *testing.T) {
	ctx := context.Background()
	clock := newFakeClock()
	store, err := newJWTStore("secret", time.Hour, clock.Now)
	require.NoError(t, err)

	sess, err := store.Issue(ctx, uuid.New())
	require.NoError(t, err)
	require.NoError(t, store.Revoke(ctx, sess.Token))
	assert.Len(t, store.denied, 1)

	clock.Advance(2 * time.Hour)
	purged, err := store.PurgeExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, purged)
	assert.Empty(t, store.denied)
}

func TestJWTStore_RejectsForeignSignature(t *testing.T) {
	ctx := context.Background()
	clock := newFakeClock()
	issuer, err := newJWTStore("one", time.Hour, clock.Now)
	require.NoError(t, err)
	verifier, err := newJWTStore("two", time.Hour, clock.Now)
	require.NoError(t, err)

	sess, err := issuer.Issue(ctx, uuid.New())
	require.NoError(t, err)

	_, err = verifier.Resolve(ctx, sess.Token)
	assert.ErrorIs(t, err, service.ErrSessionInvalid)
}

func TestNewJWTStore_RequiresSecret(t *testing.T) {
	_, err := NewJWTStore("", time.Hour)
	assert.Error(t, err)
}

func TestPebbleValue_RoundTrip(t *testing.T) {
	userID := uuid.New()
	expiresAt := time.Unix(0, 1_700_000_000_123_456_789)

	gotUser, gotExp, err := decodePebbleValue(encodePebbleValue(userID, expiresAt))
	require.NoError(t, err)
	assert.Equal(t, userID, gotUser)
	assert.True(t, expiresAt.Equal(gotExp))

	_, _, err = decodePebbleValue([]byte{1, 2, 3})
	assert.Error(t, err)
}
