package repository

import "context"

// OrderRepository defines the order-side operations the shop lifecycle needs.
type OrderRepository interface {
	// DeletePointHistoriesByShop removes the point-history records of every
	// order belonging to the shop. Part of the shop deletion cascade.
	DeletePointHistoriesByShop(ctx context.Context, shopID uint64) error
}
