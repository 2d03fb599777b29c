// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "eats/internal/delivery/context"
	"eats/internal/domain/entity"
	domainerrors "eats/internal/domain/errors"
	"eats/internal/domain/repository"
	"eats/internal/domain/service"
	"eats/internal/errors"
	"eats/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	sessions service.SessionStore
	logger   *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
	Sessions service.SessionStore
	Logger   *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo: params.UserRepo,
		hasher:   params.Hasher,
		sessions: params.Sessions,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an account and signs it in.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	email := normalizeIdentifier(input.Email)
	phone := normalizeIdentifier(input.Phone)
	if email == nil && phone == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("email or phone is required")
	}

	if err := srv.ensureAvailable(ctx, email, phone); err != nil {
		return nil, err
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	city := strings.TrimSpace(input.City)
	if city == "" {
		city = entity.DefaultCity
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        email,
		Phone:        phone,
		Name:         input.Name,
		City:         city,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			return nil, domainerrors.ErrUserAlreadyExists.WrapMessage("concurrent registration")
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User registered", slog.String("user_id", user.ID.String()))

	return srv.signIn(ctx, user)
}

func (srv *authService) ensureAvailable(ctx context.Context, email, phone *string) error {
	if email != nil {
		if err := srv.checkFree(ctx, srv.userRepo.FindByEmail, *email); err != nil {
			return err
		}
	}
	if phone != nil {
		if err := srv.checkFree(ctx, srv.userRepo.FindByPhone, *phone); err != nil {
			return err
		}
	}

	return nil
}

func (srv *authService) checkFree(
	ctx context.Context,
	find func(context.Context, string) (*entity.User, error),
	identifier string,
) error {
	_, err := find(ctx, identifier)
	switch {
	case err == nil:
		return domainerrors.ErrUserAlreadyExists
	case errors.Is(err, repository.ErrUserNotFound):
		return nil
	default:
		return errors.Wrap(err, "failed to look up user")
	}
}

// Login accepts either an email or a phone number as the identifier.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	identifier := strings.TrimSpace(input.EmailOrPhone)

	user, err := srv.findByIdentifier(ctx, identifier)
	if err != nil {
		return nil, err
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Password mismatch on login", slog.String("user_id", user.ID.String()))

		return nil, domainerrors.ErrInvalidCredentials
	}

	return srv.signIn(ctx, user)
}

func (srv *authService) findByIdentifier(ctx context.Context, identifier string) (*entity.User, error) {
	if identifier == "" {
		return nil, domainerrors.ErrInvalidCredentials
	}

	user, err := srv.userRepo.FindByEmail(ctx, identifier)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to find user by email")
	}

	user, err = srv.userRepo.FindByPhone(ctx, identifier)
	if err == nil {
		return user, nil
	}
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	return nil, errors.Wrap(err, "failed to find user by phone")
}

func (srv *authService) signIn(ctx context.Context, user *entity.User) (*usecase.AuthOutput, error) {
	session, err := srv.sessions.Issue(ctx, user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session")
	}

	return &usecase.AuthOutput{User: user, Token: session.Token, ExpiresAt: session.ExpiresAt}, nil
}

// Authenticate resolves a bearer token. Tokens of deleted users are rejected.
func (srv *authService) Authenticate(ctx context.Context, token string) (*entity.User, error) {
	if token == "" {
		return nil, domainerrors.ErrUnauthorized
	}

	userID, err := srv.sessions.Resolve(ctx, token)
	if err != nil {
		if errors.Is(err, service.ErrSessionInvalid) {
			return nil, domainerrors.ErrUnauthorized
		}

		return nil, errors.Wrap(err, "failed to resolve session")
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUnauthorized
		}

		return nil, errors.Wrap(err, "failed to load session user")
	}

	return user, nil
}

func (srv *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	if err := srv.sessions.Revoke(ctx, token); err != nil {
		return errors.Wrap(err, "failed to revoke session")
	}

	return nil
}

func normalizeIdentifier(value *string) *string {
	if value == nil {
		return nil
	}

	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}
