// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"market/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// ShopTranslationInput carries the translatable text fields for one locale.
type ShopTranslationInput struct {
	Title       string
	Description string
	Address     string
}

// CreateShopInput defines the data required to create a new shop.
// The caller locale is threaded separately through every operation; no
// ambient request state is consulted.
type CreateShopInput struct {
	SellerID     uint64 // Required. Zero means "absent".
	Phone        string
	MinAmount    float64
	Tax          float64
	Percent      float64
	DeliveryType entity.DeliveryType
	DeliveryTime entity.DeliveryTimePatch

	// Translations maps locale -> translatable fields.
	Translations map[string]ShopTranslationInput

	// Images are media-store paths; the first becomes the logo, the second
	// the background, and all are attached as image gallery entries.
	Images []string

	// Documents are attached as document gallery entries.
	Documents []string

	// Tags replaces the shop's tag associations when non-empty.
	Tags []uint64
}

// UpdateShopInput defines a partial shop update. Nil fields are left
// untouched; slice fields trigger their side effects only when non-empty.
type UpdateShopInput struct {
	// SellerID scopes the lookup to the owning seller when set (non-admin
	// callers). Admin callers leave it nil and may update any shop.
	SellerID *uint64

	Phone        *string
	Open         *bool
	Visibility   *bool
	MinAmount    *float64
	Tax          *float64
	Percent      *float64
	DeliveryType *entity.DeliveryType
	DeliveryTime entity.DeliveryTimePatch

	Translations map[string]ShopTranslationInput
	Images       []string
	Documents    []string
	Tags         []uint64
}

// ShopUsecase defines the interface for the shop lifecycle operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
//
// Every operation takes the caller locale explicitly and returns domain
// errors (AppError values); the delivery layer converts them into the
// uniform response envelope, so no error ever crosses the HTTP boundary raw.
type ShopUsecase interface {
	// CreateShop creates a shop for a seller inside one atomic transaction.
	CreateShop(ctx context.Context, locale string, input CreateShopInput) (*entity.Shop, error)

	// UpdateShop applies a partial update to the shop with the given UUID.
	UpdateShop(ctx context.Context, locale string, shopUUID uuid.UUID, input UpdateShopInput) (*entity.Shop, error)

	// DeleteShops soft-deletes the given shops with their cascades. Each
	// shop's cascade runs in its own transaction; the batch itself always
	// reports success, individual failures are logged only.
	DeleteShops(ctx context.Context, ids []uint64) error

	// ToggleVerify flips the verification flag of the shop identified by a
	// UUID or a numeric id.
	ToggleVerify(ctx context.Context, idOrUUID string) (*entity.Shop, error)

	// GetShop retrieves a shop with the same eager-loaded shape as CreateShop.
	GetShop(ctx context.Context, locale string, shopUUID uuid.UUID) (*entity.Shop, error)

	// StorefrontQR renders a QR code linking to the shop's storefront.
	StorefrontQR(ctx context.Context, shopUUID uuid.UUID) ([]byte, error)
}
