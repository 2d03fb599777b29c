package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusPreparing  OrderStatus = "preparing"
	OrderStatusDelivering OrderStatus = "delivering"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// OrderStatuses lists every valid status in lifecycle order.
var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusPreparing,
	OrderStatusDelivering,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// IsValid reports whether s is a member of the closed status set.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing,
		OrderStatusDelivering, OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// InFlight reports whether the order is accepted but not yet delivered or cancelled.
func (s OrderStatus) InFlight() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing, OrderStatusDelivering:
		return true
	default:
		return false
	}
}

// PaymentStatus tracks settlement independently of fulfilment.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// PaymentMethod is chosen by the customer at checkout.
type PaymentMethod string

const (
	PaymentMethodCash PaymentMethod = "cash"
	PaymentMethodCard PaymentMethod = "card"
)

// OrderItem is a line copied from the cart at checkout.
type OrderItem struct {
	MenuItemID uuid.UUID `json:"menu_item_id"`
	Name       string    `json:"name"`
	Price      float64   `json:"price"`
	Quantity   int       `json:"quantity"`
}

// Order is an immutable snapshot of a cart plus a mutable status pair.
type Order struct {
	ID               uuid.UUID     `json:"id"`
	UserID           uuid.UUID     `json:"user_id"`
	RestaurantID     uuid.UUID     `json:"restaurant_id"`
	RestaurantName   string        `json:"restaurant_name"`
	Items            []OrderItem   `json:"items"`
	Subtotal         float64       `json:"subtotal"`
	DeliveryFee      float64       `json:"delivery_fee"`
	Total            float64       `json:"total"`
	Status           OrderStatus   `json:"status"`
	DeliveryAddress  string        `json:"delivery_address"`
	Phone            string        `json:"phone"`
	Comment          *string       `json:"comment,omitempty"`
	PaymentMethod    PaymentMethod `json:"payment_method"`
	PaymentStatus    PaymentStatus `json:"payment_status"`
	PaymentSessionID *string       `json:"payment_session_id,omitempty"`
	City             string        `json:"city"` // Customer's city at checkout.
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

// OrderDetails carries the checkout form fields.
type OrderDetails struct {
	DeliveryAddress string
	Phone           string
	Comment         *string
	PaymentMethod   PaymentMethod
}

// NewOrderFromCart materializes a non-empty cart into a pending order.
// The delivery fee is taken from the restaurant as it is now.
func NewOrderFromCart(cart *Cart, restaurant *Restaurant, customer *User, details OrderDetails) *Order {
	items := make([]OrderItem, 0, len(cart.Items))
	for _, line := range cart.Items {
		items = append(items, OrderItem{
			MenuItemID: line.MenuItemID,
			Name:       line.Name,
			Price:      line.Price,
			Quantity:   line.Quantity,
		})
	}

	restaurantName := restaurant.Name
	if cart.RestaurantName != nil {
		restaurantName = *cart.RestaurantName
	}

	subtotal := decimal.NewFromFloat(cart.Total)
	fee := decimal.NewFromFloat(restaurant.DeliveryFee)
	now := time.Now()

	return &Order{
		ID:              uuid.New(),
		UserID:          customer.ID,
		RestaurantID:    restaurant.ID,
		RestaurantName:  restaurantName,
		Items:           items,
		Subtotal:        Money(subtotal),
		DeliveryFee:     Money(fee),
		Total:           Money(subtotal.Add(fee)),
		Status:          OrderStatusPending,
		DeliveryAddress: details.DeliveryAddress,
		Phone:           details.Phone,
		Comment:         details.Comment,
		PaymentMethod:   details.PaymentMethod,
		PaymentStatus:   PaymentStatusPending,
		City:            customer.City,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// OrderScope restricts order queries. A nil RestaurantID means all restaurants.
type OrderScope struct {
	RestaurantID *uuid.UUID
	Limit        int
}

// OrderStats is the admin analytics aggregate.
type OrderStats struct {
	TotalOrders     int            `json:"total_orders"`
	TotalRevenue    float64        `json:"total_revenue"`
	CompletedOrders int            `json:"completed_orders"`
	PendingOrders   int            `json:"pending_orders"`
	StatusCounts    map[string]int `json:"status_counts"`
}

// AggregateOrders computes analytics over a set of orders.
func AggregateOrders(orders []*Order) *OrderStats {
	stats := &OrderStats{StatusCounts: make(map[string]int)}
	revenue := decimal.Zero

	for _, order := range orders {
		stats.TotalOrders++
		revenue = revenue.Add(decimal.NewFromFloat(order.Total))
		if order.Status == OrderStatusDelivered {
			stats.CompletedOrders++
		}
		if order.Status.InFlight() {
			stats.PendingOrders++
		}
		stats.StatusCounts[string(order.Status)]++
	}
	stats.TotalRevenue = Money(revenue)

	return stats
}
