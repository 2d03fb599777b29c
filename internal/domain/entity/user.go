// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultCity is assigned to users who register without choosing a city.
const DefaultCity = "Душанбе"

// User is an account that can order food and, with the right flags, manage restaurants.
type User struct {
	ID                uuid.UUID  `json:"id"`
	Email             *string    `json:"email,omitempty"`         // Login identifier; optional when Phone is set.
	Phone             *string    `json:"phone,omitempty"`         // Login identifier; optional when Email is set.
	Name              string     `json:"name"`                    // Display name.
	City              string     `json:"city"`                    // Home city, copied onto orders.
	PasswordHash      string     `json:"-"`                       // bcrypt hash, never serialized.
	IsAdmin           bool       `json:"is_admin"`                // Full access to every restaurant and order.
	IsRestaurantOwner bool       `json:"is_restaurant_owner"`     // May create a restaurant and manage its orders.
	RestaurantID      *uuid.UUID `json:"restaurant_id,omitempty"` // Restaurant created by this user, if any.
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// Roles derives the role set used by route guards from the account flags.
func (u *User) Roles() Roles {
	roles := Roles{RoleCustomer}
	if u.IsRestaurantOwner {
		roles = append(roles, RoleOwner)
	}
	if u.IsAdmin {
		roles = append(roles, RoleAdmin)
	}

	return roles
}

// CanManage reports whether the user may modify a resource owned by ownerID.
func (u *User) CanManage(ownerID *uuid.UUID) bool {
	if u.IsAdmin {
		return true
	}

	return ownerID != nil && *ownerID == u.ID
}
