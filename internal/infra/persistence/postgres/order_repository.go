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

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

func (repo *orderRepository) FindByIDForUser(ctx context.Context, id, userID uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find user order")
	}

	return toOrderDomain(&orderM), nil
}

func (repo *orderRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list user orders")
	}

	return toOrderDomains(orderModels), nil
}

func (repo *orderRepository) List(ctx context.Context, scope entity.OrderScope) ([]*entity.Order, error) {
	query := repo.db.WithContext(ctx).Order("created_at DESC")
	if scope.RestaurantID != nil {
		query = query.Where("restaurant_id = ?", *scope.RestaurantID)
	}
	if scope.Limit > 0 {
		query = query.Limit(scope.Limit)
	}

	var orderModels []*model.OrderModel
	if err := query.Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return toOrderDomains(orderModels), nil
}

func (repo *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error {
	return repo.updateColumns(ctx, id, map[string]any{"status": string(status)})
}

func (repo *orderRepository) SetPaymentSession(ctx context.Context, id uuid.UUID, sessionID string) error {
	return repo.updateColumns(ctx, id, map[string]any{"payment_session_id": sessionID})
}

func (repo *orderRepository) updateColumns(ctx context.Context, id uuid.UUID, columns map[string]any) error {
	columns["updated_at"] = time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Updates(columns)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update order")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// MarkPaid is a guarded update: only an order that is not yet paid transitions.
// Zero affected rows on an existing order means another caller got there first.
func (repo *orderRepository) MarkPaid(ctx context.Context, id uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ? AND payment_status <> ?", id, string(entity.PaymentStatusPaid)).
		Updates(map[string]any{
			"payment_status": string(entity.PaymentStatusPaid),
			"status":         string(entity.OrderStatusConfirmed),
			"updated_at":     time.Now(),
		})

	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to mark order paid")
	}

	if result.RowsAffected > 0 {
		return true, nil
	}

	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check order existence")
	}

	if count == 0 {
		return false, repository.ErrOrderNotFound
	}

	return false, nil
}

// --- Mapper Functions ---

func toOrderDomains(models []*model.OrderModel) []*entity.Order {
	orders := make([]*entity.Order, 0, len(models))
	for _, orderM := range models {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders
}

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	items := make([]entity.OrderItem, 0, len(data.Items))
	for _, line := range data.Items {
		items = append(items, entity.OrderItem{
			MenuItemID: line.MenuItemID,
			Name:       line.Name,
			Price:      line.Price,
			Quantity:   line.Quantity,
		})
	}

	return &entity.Order{
		ID:               data.ID,
		UserID:           data.UserID,
		RestaurantID:     data.RestaurantID,
		RestaurantName:   data.RestaurantName,
		Items:            items,
		Subtotal:         data.Subtotal,
		DeliveryFee:      data.DeliveryFee,
		Total:            data.Total,
		Status:           entity.OrderStatus(data.Status),
		DeliveryAddress:  data.DeliveryAddress,
		Phone:            data.Phone,
		Comment:          data.Comment,
		PaymentMethod:    entity.PaymentMethod(data.PaymentMethod),
		PaymentStatus:    entity.PaymentStatus(data.PaymentStatus),
		PaymentSessionID: data.PaymentSessionID,
		City:             data.City,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	lines := make([]model.OrderLine, 0, len(data.Items))
	for _, item := range data.Items {
		lines = append(lines, model.OrderLine{
			MenuItemID: item.MenuItemID,
			Name:       item.Name,
			Price:      item.Price,
			Quantity:   item.Quantity,
		})
	}

	return &model.OrderModel{
		ID:               data.ID,
		UserID:           data.UserID,
		RestaurantID:     data.RestaurantID,
		RestaurantName:   data.RestaurantName,
		Items:            datatypes.JSONSlice[model.OrderLine](lines),
		Subtotal:         data.Subtotal,
		DeliveryFee:      data.DeliveryFee,
		Total:            data.Total,
		Status:           string(data.Status),
		DeliveryAddress:  data.DeliveryAddress,
		Phone:            data.Phone,
		Comment:          data.Comment,
		PaymentMethod:    string(data.PaymentMethod),
		PaymentStatus:    string(data.PaymentStatus),
		PaymentSessionID: data.PaymentSessionID,
		City:             data.City,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}
