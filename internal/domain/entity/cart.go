package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartItem is a snapshot of a menu item taken when it was added to the cart.
type CartItem struct {
	MenuItemID uuid.UUID `json:"menu_item_id"`
	Name       string    `json:"name"`
	Price      float64   `json:"price"`
	ImageURL   string    `json:"image_url"`
	Quantity   int       `json:"quantity"`
}

// Cart is the single shopping cart of a user. All items belong to RestaurantID.
// A cart with no items has no restaurant binding.
type Cart struct {
	UserID         uuid.UUID  `json:"user_id"`
	RestaurantID   *uuid.UUID `json:"restaurant_id"`
	RestaurantName *string    `json:"restaurant_name"`
	Items          []CartItem `json:"items"`
	Total          float64    `json:"total"` // Derived from Items on every mutation.
	UpdatedAt      time.Time  `json:"updated_at"`
}

// NewCart returns an empty cart for the user.
func NewCart(userID uuid.UUID) *Cart {
	return &Cart{
		UserID: userID,
		Items:  []CartItem{},
	}
}

// IsEmpty reports whether the cart holds no items.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// AddItem adds quantity of item from restaurant. A cart bound to another
// restaurant is emptied and rebound first; the return value reports that.
func (c *Cart) AddItem(restaurant *Restaurant, item *MenuItem, quantity int) (switched bool) {
	if c.RestaurantID != nil && *c.RestaurantID != restaurant.ID {
		c.Items = []CartItem{}
		switched = true
	}
	c.bind(restaurant)

	for idx := range c.Items {
		if c.Items[idx].MenuItemID == item.ID {
			c.Items[idx].Quantity += quantity
			c.recalculate()

			return switched
		}
	}

	c.Items = append(c.Items, CartItem{
		MenuItemID: item.ID,
		Name:       item.Name,
		Price:      item.Price,
		ImageURL:   item.ImageURL,
		Quantity:   quantity,
	})
	c.recalculate()

	return switched
}

// SetQuantity sets the quantity of a line verbatim. A quantity of zero or
// less removes the line. Unknown items are ignored.
func (c *Cart) SetQuantity(menuItemID uuid.UUID, quantity int) {
	for idx := range c.Items {
		if c.Items[idx].MenuItemID != menuItemID {
			continue
		}
		if quantity <= 0 {
			c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
		} else {
			c.Items[idx].Quantity = quantity
		}

		break
	}

	c.recalculate()
	if c.IsEmpty() {
		c.unbind()
	}
}

// Reset returns the cart to the empty state.
func (c *Cart) Reset() {
	c.Items = []CartItem{}
	c.unbind()
	c.recalculate()
}

func (c *Cart) bind(restaurant *Restaurant) {
	id := restaurant.ID
	name := restaurant.Name
	c.RestaurantID = &id
	c.RestaurantName = &name
}

func (c *Cart) unbind() {
	c.RestaurantID = nil
	c.RestaurantName = nil
}

func (c *Cart) recalculate() {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	c.Total = Money(total)
}
