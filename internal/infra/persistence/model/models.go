// Package model holds the GORM persistence models.
package model

// All returns every persistence model, in dependency order, for migrations and code generation.
func All() []any {
	return []any{
		&UserModel{},
		&RestaurantModel{},
		&MenuItemModel{},
		&CartModel{},
		&OrderModel{},
		&FavoriteModel{},
		&PaymentTransactionModel{},
		&SessionModel{},
		&UserDeviceModel{},
	}
}
