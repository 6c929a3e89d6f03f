package repository

import "context"

// TagRepository defines persistence operations for shop-tag associations.
type TagRepository interface {
	// SyncShopTags sets the shop's tag associations to exactly the given
	// tag IDs: associations not in the list are removed, new ones are
	// added, unchanged ones are left untouched. Idempotent.
	SyncShopTags(ctx context.Context, shopID uint64, tagIDs []uint64) error
}
