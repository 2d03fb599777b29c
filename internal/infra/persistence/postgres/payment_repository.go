package postgres

import (
	"context"
	"time"

	"eats/internal/domain/entity"
	domainerrors "eats/internal/domain/errors"
	"eats/internal/domain/repository"
	"eats/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// paymentRepository implements the repository.PaymentRepository interface.
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository is the constructor for paymentRepository.
func NewPaymentRepository(db *gorm.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

func (repo *paymentRepository) Create(ctx context.Context, txn *entity.PaymentTransaction) error {
	if txn.ID == uuid.Nil {
		txn.ID = uuid.New()
	}
	txnM := fromPaymentDomain(txn)

	if err := repo.db.WithContext(ctx).Create(txnM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create payment transaction")
	}

	txn.CreatedAt = txnM.CreatedAt
	txn.UpdatedAt = txnM.UpdatedAt

	return nil
}

func (repo *paymentRepository) FindBySessionID(ctx context.Context, sessionID string) (*entity.PaymentTransaction, error) {
	var txnM model.PaymentTransactionModel

	if err := repo.db.WithContext(ctx).Where("session_id = ?", sessionID).First(&txnM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTransactionNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment transaction")
	}

	return toPaymentDomain(&txnM), nil
}

func (repo *paymentRepository) UpdateStatus(ctx context.Context, sessionID, status, paymentStatus string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PaymentTransactionModel{}).
		Where("session_id = ?", sessionID).
		Updates(map[string]any{
			"status":         status,
			"payment_status": paymentStatus,
			"updated_at":     time.Now(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update payment transaction")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTransactionNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toPaymentDomain(data *model.PaymentTransactionModel) *entity.PaymentTransaction {
	if data == nil {
		return nil
	}

	metadata := make(map[string]string, len(data.Metadata))
	for k, v := range data.Metadata {
		if s, ok := v.(string); ok {
			metadata[k] = s
		}
	}

	return &entity.PaymentTransaction{
		ID:            data.ID,
		SessionID:     data.SessionID,
		UserID:        data.UserID,
		OrderID:       data.OrderID,
		Amount:        data.Amount,
		Currency:      data.Currency,
		Status:        data.Status,
		PaymentStatus: data.PaymentStatus,
		Metadata:      metadata,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromPaymentDomain(data *entity.PaymentTransaction) *model.PaymentTransactionModel {
	if data == nil {
		return nil
	}

	metadata := make(datatypes.JSONMap, len(data.Metadata))
	for k, v := range data.Metadata {
		metadata[k] = v
	}

	return &model.PaymentTransactionModel{
		ID:            data.ID,
		SessionID:     data.SessionID,
		UserID:        data.UserID,
		OrderID:       data.OrderID,
		Amount:        data.Amount,
		Currency:      data.Currency,
		Status:        data.Status,
		PaymentStatus: data.PaymentStatus,
		Metadata:      metadata,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
