package impl

import (
	"context"
	"testing"
	"time"

	"eats/internal/domain/entity"
	domainerrors "eats/internal/domain/errors"
	"eats/internal/domain/repository"
	"eats/internal/domain/service"
	mockRepo "eats/internal/mocks/repository"
	mockSvc "eats/internal/mocks/service"
	"eats/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authServiceFixtures struct {
	service  usecase.AuthUsecase
	userRepo *mockRepo.MockUserRepository
	hasher   *mockSvc.MockPasswordHasher
	sessions *mockSvc.MockSessionStore
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	sessions := mockSvc.NewMockSessionStore(t)

	service := NewAuthService(AuthServiceParams{
		UserRepo: userRepo,
		Hasher:   hasher,
		Sessions: sessions,
		Logger:   newDiscardLogger(),
	})

	return authServiceFixtures{
		service:  service,
		userRepo: userRepo,
		hasher:   hasher,
		sessions: sessions,
	}
}

func testSession(userID uuid.UUID) *entity.Session {
	now := time.Now()

	return &entity.Session{Token: "token-abc", UserID: userID, IssuedAt: now, ExpiresAt: now.Add(time.Hour)}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "user@example.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("secret").Return("hashed", nil)

	var created *entity.User
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) { created = user }).
		Return(nil)
	fx.sessions.EXPECT().
		Issue(ctx, mock.AnythingOfType("uuid.UUID")).
		RunAndReturn(func(_ context.Context, userID uuid.UUID) (*entity.Session, error) {
			return testSession(userID), nil
		})

	out, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Name:     "Фарход",
		Email:    strPtr("  user@example.com "),
		Password: "secret",
	})
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, "token-abc", out.Token)
	assert.Equal(t, created.ID, out.User.ID)
	assert.Equal(t, "user@example.com", *created.Email)
	assert.Nil(t, created.Phone)
	assert.Equal(t, entity.DefaultCity, created.City)
	assert.Equal(t, "hashed", created.PasswordHash)
	assert.False(t, created.IsAdmin)
}

func TestAuthService_Register_RequiresIdentifier(t *testing.T) {
	fx := createTestAuthService(t)

	_, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Name:     "Без контактов",
		Email:    strPtr("   "),
		Password: "secret",
	})

	assertAppError(t, err, domainerrors.ErrValidationFailed)
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "taken@example.com").Return(&entity.User{ID: uuid.New()}, nil)

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Name:     "Повтор",
		Email:    strPtr("taken@example.com"),
		Phone:    strPtr("+992900000001"),
		Password: "secret",
	})

	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAuthService_Register_PhoneTaken(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByPhone(ctx, "+992900000000").Return(&entity.User{ID: uuid.New()}, nil)

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Name:     "Дубликат",
		Phone:    strPtr("+992900000000"),
		Password: "secret",
	})

	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAuthService_Register_DuplicateOnInsert(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "race@example.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("secret").Return("hashed", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateUser)

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Name:     "Гонка",
		Email:    strPtr("race@example.com"),
		Password: "secret",
	})

	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAuthService_Register_HashFailure(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "user@example.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("secret").Return("", errors.New("cost too high"))

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Name:     "Фарход",
		Email:    strPtr("user@example.com"),
		Password: "secret",
	})

	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}

func TestAuthService_Login_ByPhone(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Phone: strPtr("+992900000001"), PasswordHash: "hashed"}

	fx.userRepo.EXPECT().FindByEmail(ctx, "+992900000001").Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().FindByPhone(ctx, "+992900000001").Return(user, nil)
	fx.hasher.EXPECT().Check("secret", "hashed").Return(true)
	fx.sessions.EXPECT().Issue(ctx, user.ID).Return(testSession(user.ID), nil)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{EmailOrPhone: " +992900000001 ", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, user, out.User)
	assert.Equal(t, "token-abc", out.Token)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), PasswordHash: "hashed"}

	fx.userRepo.EXPECT().FindByEmail(ctx, "user@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("wrong", "hashed").Return(false)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{EmailOrPhone: "user@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "ghost").Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().FindByPhone(ctx, "ghost").Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{EmailOrPhone: "ghost", Password: "secret"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Authenticate(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name    string
		token   string
		setup   func(fx authServiceFixtures)
		wantErr error
	}{
		{
			name:    "empty token",
			token:   "",
			setup:   func(authServiceFixtures) {},
			wantErr: domainerrors.ErrUnauthorized,
		},
		{
			name:  "expired session",
			token: "stale",
			setup: func(fx authServiceFixtures) {
				fx.sessions.EXPECT().Resolve(mock.Anything, "stale").Return(uuid.Nil, service.ErrSessionInvalid)
			},
			wantErr: domainerrors.ErrUnauthorized,
		},
		{
			name:  "deleted user",
			token: "orphan",
			setup: func(fx authServiceFixtures) {
				fx.sessions.EXPECT().Resolve(mock.Anything, "orphan").Return(userID, nil)
				fx.userRepo.EXPECT().FindByID(mock.Anything, userID).Return(nil, repository.ErrUserNotFound)
			},
			wantErr: domainerrors.ErrUnauthorized,
		},
		{
			name:  "valid",
			token: "good",
			setup: func(fx authServiceFixtures) {
				fx.sessions.EXPECT().Resolve(mock.Anything, "good").Return(userID, nil)
				fx.userRepo.EXPECT().FindByID(mock.Anything, userID).Return(&entity.User{ID: userID}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t)
			tt.setup(fx)

			user, err := fx.service.Authenticate(context.Background(), tt.token)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, userID, user.ID)
		})
	}
}

func TestAuthService_Logout(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	require.NoError(t, fx.service.Logout(ctx, ""))

	fx.sessions.EXPECT().Revoke(ctx, "token-abc").Return(nil)
	require.NoError(t, fx.service.Logout(ctx, "token-abc"))
}
