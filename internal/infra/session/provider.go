package session

import (
	"context"
	"log/slog"
	"time"

	"eats/config"
	"eats/internal/domain/constants"
	"eats/internal/domain/repository"
	"eats/internal/domain/service"
	"eats/internal/errors"

	"go.uber.org/fx"
)

// Params defines the dependencies for the session store provider
type Params struct {
	fx.In
	fx.Lifecycle

	Config      *config.Config
	Logger      *slog.Logger
	SessionRepo repository.SessionRepository
}

// NewSessionStore creates the configured SessionStore and runs its purge loop
// for the lifetime of the application.
func NewSessionStore(params Params) (service.SessionStore, error) {
	cfg := params.Config.Session

	var (
		store service.SessionStore
		err   error
	)

	switch cfg.Backend {
	case constants.SessionBackendMemory, "":
		store = NewMemoryStore(cfg.TTL)
	case constants.SessionBackendPostgres:
		store = NewPostgresStore(params.SessionRepo, cfg.TTL)
	case constants.SessionBackendPebble:
		if cfg.PebblePath == "" {
			return nil, errors.New("session.pebblePath is required for pebble backend")
		}
		store, err = NewPebbleStore(cfg.PebblePath, cfg.TTL)
	case constants.SessionBackendJWT:
		store, err = NewJWTStore(params.Config.SecretKey.Access, cfg.TTL)
	default:
		return nil, errors.Errorf("unknown session backend: %s", cfg.Backend)
	}
	if err != nil {
		return nil, err
	}

	params.Logger.Info("Session store initialized",
		slog.String("backend", cfg.Backend),
		slog.Duration("ttl", cfg.TTL),
	)

	loopCtx, cancelLoop := context.WithCancel(context.Background())
	done := make(chan struct{})

	params.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				runPurgeLoop(loopCtx, params.Logger, store, cfg.PurgeInterval)
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			cancelLoop()
			select {
			case <-done:
			case <-ctx.Done():
			}

			return store.Close()
		},
	})

	return store, nil
}

func runPurgeLoop(ctx context.Context, logger *slog.Logger, store service.SessionStore, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			purged, err := store.PurgeExpired(ctx)
			if err != nil {
				logger.Warn("Failed to purge expired sessions", slog.Any("error", err))

				continue
			}
			if purged > 0 {
				logger.Debug("Purged expired sessions", slog.Int("count", purged))
			}
		}
	}
}
