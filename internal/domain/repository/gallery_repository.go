package repository

import (
	"context"

	"market/internal/domain/entity"
)

// GalleryRepository defines persistence operations for shop gallery entries.
type GalleryRepository interface {
	// CreateBatch persists one gallery entry per element. No deduplication:
	// replacement semantics are the caller's responsibility.
	CreateBatch(ctx context.Context, entries []*entity.Gallery) error

	// DeleteByShop removes every gallery entry of the shop and returns the
	// stored file paths of the removed entries so the caller can clean up
	// the media store.
	DeleteByShop(ctx context.Context, shopID uint64) ([]string, error)

	// DeleteByShopExceptType removes the shop's gallery entries except
	// those of the given category (used to preserve primary entries when a
	// shop is deleted).
	DeleteByShopExceptType(ctx context.Context, shopID uint64, keep entity.GalleryType) error
}
