package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	domainerrors "eats/internal/domain/errors"
	"eats/internal/domain/repository"
	mockRepo "eats/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func strPtr(s string) *string {
	return &s
}

// assertAppError checks that err carries the business code of want, including copies made by WithDetails.
func assertAppError(t *testing.T, err error, want *domainerrors.BaseError) {
	t.Helper()

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr), "expected an AppError, got %v", err)
	assert.Equal(t, want.ErrorCode(), appErr.ErrorCode())
	assert.Equal(t, want.HTTPCode(), appErr.HTTPCode())
}

// txFixtures wires a transaction manager mock that runs the callback against a factory of repository mocks.
type txFixtures struct {
	txManager      *mockRepo.MockTransactionManager
	factory        *mockRepo.MockRepositoryFactory
	userRepo       *mockRepo.MockUserRepository
	restaurantRepo *mockRepo.MockRestaurantRepository
	menuItemRepo   *mockRepo.MockMenuItemRepository
	cartRepo       *mockRepo.MockCartRepository
	orderRepo      *mockRepo.MockOrderRepository
	paymentRepo    *mockRepo.MockPaymentRepository
}

func newTxFixtures(t *testing.T) txFixtures {
	tx := txFixtures{
		txManager:      mockRepo.NewMockTransactionManager(t),
		factory:        mockRepo.NewMockRepositoryFactory(t),
		userRepo:       mockRepo.NewMockUserRepository(t),
		restaurantRepo: mockRepo.NewMockRestaurantRepository(t),
		menuItemRepo:   mockRepo.NewMockMenuItemRepository(t),
		cartRepo:       mockRepo.NewMockCartRepository(t),
		orderRepo:      mockRepo.NewMockOrderRepository(t),
		paymentRepo:    mockRepo.NewMockPaymentRepository(t),
	}

	tx.factory.EXPECT().UserRepo().Return(tx.userRepo).Maybe()
	tx.factory.EXPECT().RestaurantRepo().Return(tx.restaurantRepo).Maybe()
	tx.factory.EXPECT().MenuItemRepo().Return(tx.menuItemRepo).Maybe()
	tx.factory.EXPECT().CartRepo().Return(tx.cartRepo).Maybe()
	tx.factory.EXPECT().OrderRepo().Return(tx.orderRepo).Maybe()
	tx.factory.EXPECT().PaymentRepo().Return(tx.paymentRepo).Maybe()

	return tx
}

// expectCommit makes the next Execute call run its callback and return the callback's error.
func (tx txFixtures) expectCommit() {
	tx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(tx.factory)
		}).
		Once()
}
