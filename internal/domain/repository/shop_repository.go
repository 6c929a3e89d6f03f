// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"market/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrShopNotFound is a domain-specific error returned when a shop is not found.
var ErrShopNotFound = errors.New("shop not found")

// DetailOptions controls how much of a shop's relation graph is eager-loaded
// by FindDetailed. Translations of the shop and its tags are always filtered
// to Locales (caller locale widened with the system default locale).
type DetailOptions struct {
	Locales      []string
	WithSchedule bool // Also load working days and closed dates.
}

// ShopRepository defines the standard operations for shop persistence.
// The application layer will depend on this interface, not the concrete implementation.
type ShopRepository interface {
	// FindByID retrieves a shop by its numeric primary key.
	FindByID(ctx context.Context, id uint64) (*entity.Shop, error)

	// FindByUUID retrieves a shop by its public UUID.
	FindByUUID(ctx context.Context, id uuid.UUID) (*entity.Shop, error)

	// FindByUUIDForSeller retrieves a shop by UUID scoped to the owning
	// seller. The ownership check is folded into the lookup: a foreign
	// shop is indistinguishable from a missing one.
	FindByUUIDForSeller(ctx context.Context, id uuid.UUID, sellerID uint64) (*entity.Shop, error)

	// FindBySeller retrieves the single shop owned by the given user.
	FindBySeller(ctx context.Context, sellerID uint64) (*entity.Shop, error)

	// FindDetailed retrieves a shop with its eager-loaded relation graph:
	// filtered translations, seller (projected fields plus roles), tags
	// with filtered translations and the subscription.
	FindDetailed(ctx context.Context, id uint64, opts DetailOptions) (*entity.Shop, error)

	// Create persists a new shop entity to the storage.
	Create(ctx context.Context, shop *entity.Shop) error

	// Update modifies an existing shop entity in the storage.
	Update(ctx context.Context, shop *entity.Shop) error

	// SoftDelete marks a shop as deleted without removing the row.
	SoftDelete(ctx context.Context, id uint64) error

	// UpsertTranslations inserts or updates one translation row per locale
	// present in the given list, leaving other locales untouched.
	UpsertTranslations(ctx context.Context, shopID uint64, translations []*entity.ShopTranslation) error
}
