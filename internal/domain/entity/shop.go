// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ShopTypeShop is the fixed type discriminator for seller storefronts.
// Other marketplace entity kinds (e.g. restaurants) reserve other values.
const ShopTypeShop = 1

// Shop is a seller's storefront. It aggregates everything the marketplace
// knows about a single store: display metadata, the delivery policy, the
// verification state and the relations hanging off the store.
type Shop struct {
	ID            uint64     // Auto-increment primary key.
	UUID          uuid.UUID  // Public identifier used by the HTTP surface.
	SellerID      uint64     // The owning user. Exactly one per shop.
	Seller        *User      // Owning user with roles, loaded on demand.
	Type          int        // Fixed discriminator, always ShopTypeShop here.
	LogoImg       string     // Path of the logo image in the media store.
	BackgroundImg string     // Path of the background image in the media store.
	Phone         string     // Public contact phone.
	Open          bool       // Whether the store currently accepts orders.
	Visibility    bool       // Whether the store is listed publicly.
	Verify        bool       // Administrative approval flag.
	MinAmount     float64    // Minimal order amount.
	Tax           float64    // Store tax percentage.
	Percent       float64    // Marketplace commission percentage.
	DeliveryType  DeliveryType
	DeliveryTime  DeliveryTime

	Translations []*ShopTranslation // Filtered to the requested locales when eager-loaded.
	Tags         []*Tag
	Galleries    []*Gallery
	Subscription *ShopSubscription
	WorkingDays  []*ShopWorkingDay
	ClosedDates  []*ShopClosedDate

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // Soft-delete timestamp, nil while the shop is alive.
}

// ShopTranslation holds the locale-specific text fields of a shop.
// One row per locale; upserted whenever translatable data is supplied.
type ShopTranslation struct {
	ID          uint64
	ShopID      uint64
	Locale      string
	Title       string
	Description string
	Address     string
}

// ShopSubscription is the store's optional paid subscription.
type ShopSubscription struct {
	ID        uint64
	ShopID    uint64
	Active    bool
	ExpiredAt time.Time
}

// ShopWorkingDay describes the opening window of a single weekday.
type ShopWorkingDay struct {
	ID       uint64
	ShopID   uint64
	Day      string // Lowercase weekday name, e.g. "monday".
	From     string // "HH:MM"
	To       string // "HH:MM"
	Disabled bool
}

// ShopClosedDate marks a calendar date the store is closed.
type ShopClosedDate struct {
	ID     uint64
	ShopID uint64
	Day    time.Time
}
