package seed

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogSource_LoadEmbedded(t *testing.T) {
	restaurants, err := NewCatalogSource().Load()
	require.NoError(t, err)
	require.Len(t, restaurants, 6)

	menuItems := 0
	cities := map[string]bool{}
	for _, r := range restaurants {
		assert.NotEqual(t, uuid.Nil, r.Restaurant.ID)
		assert.True(t, r.Restaurant.IsActive)
		assert.NotEmpty(t, r.Menu, r.Restaurant.Name)
		cities[r.Restaurant.City] = true

		for _, item := range r.Menu {
			assert.Equal(t, r.Restaurant.ID, item.RestaurantID)
			assert.True(t, item.IsAvailable)
			assert.Positive(t, item.Price)
		}
		menuItems += len(r.Menu)
	}

	assert.Equal(t, 24, menuItems)
	assert.Len(t, cities, 4)

	first := restaurants[0].Restaurant
	assert.Equal(t, "Плов Хаус", first.Name)
	assert.Equal(t, "30-40 мин", first.DeliveryTime)
	assert.InDelta(t, 4.8, first.Rating, 0.0001)
	assert.InDelta(t, 10.0, first.DeliveryFee, 0.0001)
}

func TestCatalogSource_LoadIssuesFreshIDs(t *testing.T) {
	src := NewCatalogSource()

	a, err := src.Load()
	require.NoError(t, err)
	b, err := src.Load()
	require.NoError(t, err)

	assert.NotEqual(t, a[0].Restaurant.ID, b[0].Restaurant.ID)
}

func TestCatalogSource_LoadCustomDocument(t *testing.T) {
	fixed := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	src := &yamlCatalog{
		raw: []byte(`
menus:
  Кофе:
    - name: Латте
      price: "12.5"
      category: Напитки
      isVegetarian: true
restaurants:
  - name: Кофейня
    cuisineType: Кофе
    city: Душанбе
  - name: Без меню
    cuisineType: Неизвестная
    city: Куляб
`),
		now: func() time.Time { return fixed },
	}

	restaurants, err := src.Load()
	require.NoError(t, err)
	require.Len(t, restaurants, 2)

	require.Len(t, restaurants[0].Menu, 1)
	latte := restaurants[0].Menu[0]
	assert.InDelta(t, 12.5, latte.Price, 0.0001)
	assert.True(t, latte.IsVegetarian)
	assert.Equal(t, fixed, latte.CreatedAt)

	assert.Empty(t, restaurants[1].Menu)
}

func TestCatalogSource_LoadRejectsBadDocuments(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "invalid yaml", raw: "restaurants: [\n"},
		{name: "no restaurants", raw: "menus: {}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := (&yamlCatalog{raw: []byte(tt.raw), now: time.Now}).Load()
			assert.Error(t, err)
		})
	}
}
