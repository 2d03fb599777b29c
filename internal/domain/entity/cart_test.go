package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRestaurant(name string, fee float64) *Restaurant {
	return &Restaurant{ID: uuid.New(), Name: name, DeliveryFee: fee, IsActive: true}
}

func newTestMenuItem(restaurant *Restaurant, name string, price float64) *MenuItem {
	return &MenuItem{ID: uuid.New(), RestaurantID: restaurant.ID, Name: name, Price: price, ImageURL: "img/" + name}
}

func TestCart_AddItem_BindsRestaurantAndSnapshotsItem(t *testing.T) {
	restaurant := newTestRestaurant("Плов Хаус", 10)
	plov := newTestMenuItem(restaurant, "Плов", 45)
	cart := NewCart(uuid.New())

	switched := cart.AddItem(restaurant, plov, 2)

	assert.False(t, switched)
	require.NotNil(t, cart.RestaurantID)
	assert.Equal(t, restaurant.ID, *cart.RestaurantID)
	assert.Equal(t, "Плов Хаус", *cart.RestaurantName)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, plov.ID, cart.Items[0].MenuItemID)
	assert.Equal(t, "img/Плов", cart.Items[0].ImageURL)
	assert.Equal(t, 90.0, cart.Total)

	plov.Price = 100
	assert.Equal(t, 45.0, cart.Items[0].Price)
}

func TestCart_AddItem_IncrementsExistingLine(t *testing.T) {
	restaurant := newTestRestaurant("Плов Хаус", 10)
	samsa := newTestMenuItem(restaurant, "Самбуса", 15)
	cart := NewCart(uuid.New())

	cart.AddItem(restaurant, samsa, 1)
	cart.AddItem(restaurant, samsa, 3)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 4, cart.Items[0].Quantity)
	assert.Equal(t, 60.0, cart.Total)
}

func TestCart_AddItem_DifferentRestaurantReplacesContents(t *testing.T) {
	first := newTestRestaurant("Плов Хаус", 10)
	second := newTestRestaurant("Бургер Мания", 15)
	cart := NewCart(uuid.New())

	cart.AddItem(first, newTestMenuItem(first, "Плов", 45), 1)
	burger := newTestMenuItem(second, "Чизбургер", 65)
	switched := cart.AddItem(second, burger, 1)

	assert.True(t, switched)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, burger.ID, cart.Items[0].MenuItemID)
	assert.Equal(t, second.ID, *cart.RestaurantID)
	assert.Equal(t, "Бургер Мания", *cart.RestaurantName)
	assert.Equal(t, 65.0, cart.Total)
}

func TestCart_TotalMatchesLinesAfterEveryMutation(t *testing.T) {
	restaurant := newTestRestaurant("Суши Тайм", 20)
	a := newTestMenuItem(restaurant, "A", 0.1)
	b := newTestMenuItem(restaurant, "B", 0.2)
	cart := NewCart(uuid.New())

	sum := func() float64 {
		amounts := make([]float64, 0)
		for _, line := range cart.Items {
			for range line.Quantity {
				amounts = append(amounts, line.Price)
			}
		}

		return SumMoney(amounts...)
	}

	cart.AddItem(restaurant, a, 1)
	assert.Equal(t, sum(), cart.Total)
	cart.AddItem(restaurant, b, 1)
	assert.Equal(t, 0.3, cart.Total)
	cart.SetQuantity(a.ID, 7)
	assert.Equal(t, sum(), cart.Total)
	cart.SetQuantity(b.ID, 0)
	assert.Equal(t, 0.7, cart.Total)
}

func TestCart_SetQuantity(t *testing.T) {
	restaurant := newTestRestaurant("Плов Хаус", 10)
	plov := newTestMenuItem(restaurant, "Плов", 45)
	tea := newTestMenuItem(restaurant, "Зеленый чай", 10)

	tests := []struct {
		name          string
		target        uuid.UUID
		quantity      int
		wantLines     int
		wantTotal     float64
		wantRestBound bool
	}{
		{name: "sets verbatim", target: plov.ID, quantity: 5, wantLines: 2, wantTotal: 235, wantRestBound: true},
		{name: "zero removes line", target: plov.ID, quantity: 0, wantLines: 1, wantTotal: 10, wantRestBound: true},
		{name: "negative removes line", target: tea.ID, quantity: -1, wantLines: 1, wantTotal: 90, wantRestBound: true},
		{name: "unknown item is ignored", target: uuid.New(), quantity: 3, wantLines: 2, wantTotal: 100, wantRestBound: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := NewCart(uuid.New())
			cart.AddItem(restaurant, plov, 2)
			cart.AddItem(restaurant, tea, 1)

			cart.SetQuantity(tt.target, tt.quantity)

			assert.Len(t, cart.Items, tt.wantLines)
			assert.Equal(t, tt.wantTotal, cart.Total)
			assert.Equal(t, tt.wantRestBound, cart.RestaurantID != nil)
		})
	}
}

func TestCart_SetQuantity_LastItemClearsBinding(t *testing.T) {
	restaurant := newTestRestaurant("Плов Хаус", 10)
	plov := newTestMenuItem(restaurant, "Плов", 45)
	cart := NewCart(uuid.New())
	cart.AddItem(restaurant, plov, 1)

	cart.SetQuantity(plov.ID, 0)

	assert.True(t, cart.IsEmpty())
	assert.Nil(t, cart.RestaurantID)
	assert.Nil(t, cart.RestaurantName)
	assert.Zero(t, cart.Total)
}

func TestCart_Reset(t *testing.T) {
	restaurant := newTestRestaurant("Плов Хаус", 10)
	cart := NewCart(uuid.New())
	cart.AddItem(restaurant, newTestMenuItem(restaurant, "Плов", 45), 3)

	cart.Reset()

	assert.True(t, cart.IsEmpty())
	assert.NotNil(t, cart.Items)
	assert.Nil(t, cart.RestaurantID)
	assert.Zero(t, cart.Total)
}
