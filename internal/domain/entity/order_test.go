package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderFromCart(t *testing.T) {
	restaurant := newTestRestaurant("Плов Хаус", 10)
	plov := newTestMenuItem(restaurant, "Плов", 45)
	customer := &User{ID: uuid.New(), Name: "Alice", City: "Душанбе"}
	cart := NewCart(customer.ID)
	cart.AddItem(restaurant, plov, 2)
	comment := "без лука"

	order := NewOrderFromCart(cart, restaurant, customer, OrderDetails{
		DeliveryAddress: "ул. Рудаки 1",
		Phone:           "+992900000000",
		Comment:         &comment,
		PaymentMethod:   PaymentMethodCash,
	})

	assert.NotEqual(t, uuid.Nil, order.ID)
	assert.Equal(t, customer.ID, order.UserID)
	assert.Equal(t, restaurant.ID, order.RestaurantID)
	assert.Equal(t, "Плов Хаус", order.RestaurantName)
	assert.Equal(t, 90.0, order.Subtotal)
	assert.Equal(t, 10.0, order.DeliveryFee)
	assert.Equal(t, 100.0, order.Total)
	assert.Equal(t, OrderStatusPending, order.Status)
	assert.Equal(t, PaymentStatusPending, order.PaymentStatus)
	assert.Equal(t, "Душанбе", order.City)
	require.Len(t, order.Items, 1)
	assert.Equal(t, OrderItem{MenuItemID: plov.ID, Name: "Плов", Price: 45, Quantity: 2}, order.Items[0])
}

func TestNewOrderFromCart_UsesCurrentDeliveryFee(t *testing.T) {
	restaurant := newTestRestaurant("Суши Тайм", 20)
	customer := &User{ID: uuid.New(), City: "Худжанд"}
	cart := NewCart(customer.ID)
	cart.AddItem(restaurant, newTestMenuItem(restaurant, "Мисо суп", 25), 1)

	restaurant.DeliveryFee = 12.5
	order := NewOrderFromCart(cart, restaurant, customer, OrderDetails{PaymentMethod: PaymentMethodCard})

	assert.Equal(t, 12.5, order.DeliveryFee)
	assert.Equal(t, 37.5, order.Total)
}

func TestOrderStatus_IsValid(t *testing.T) {
	for _, status := range OrderStatuses {
		assert.True(t, status.IsValid(), status)
	}

	for _, status := range []OrderStatus{"", "shipped", "PENDING", "paid"} {
		assert.False(t, status.IsValid(), status)
	}
}

func TestAggregateOrders(t *testing.T) {
	orders := []*Order{
		{Status: OrderStatusDelivered, Total: 100.1},
		{Status: OrderStatusDelivered, Total: 50.2},
		{Status: OrderStatusPending, Total: 25},
		{Status: OrderStatusDelivering, Total: 10},
		{Status: OrderStatusCancelled, Total: 40},
	}

	stats := AggregateOrders(orders)

	assert.Equal(t, 5, stats.TotalOrders)
	assert.Equal(t, 225.3, stats.TotalRevenue)
	assert.Equal(t, 2, stats.CompletedOrders)
	assert.Equal(t, 2, stats.PendingOrders)
	assert.Equal(t, map[string]int{"delivered": 2, "pending": 1, "delivering": 1, "cancelled": 1}, stats.StatusCounts)
}

func TestAggregateOrders_Empty(t *testing.T) {
	stats := AggregateOrders(nil)

	assert.Zero(t, stats.TotalOrders)
	assert.Zero(t, stats.TotalRevenue)
	assert.NotNil(t, stats.StatusCounts)
}

func TestConvertMoney(t *testing.T) {
	rate := decimal.RequireFromString("10.9")

	assert.Equal(t, 9.17, ConvertMoney(100, rate))
	assert.Equal(t, 1.0, ConvertMoney(10.9, rate))
	assert.Equal(t, 5.0, ConvertMoney(5, decimal.Zero))
}
