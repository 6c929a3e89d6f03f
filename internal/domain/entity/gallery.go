package entity

import "time"

// GalleryType categorizes an uploaded file reference attached to a shop.
type GalleryType string

const (
	// GalleryTypeShopImages is the default category for storefront images.
	GalleryTypeShopImages GalleryType = "shops"
	// GalleryTypeShopDocuments is the category for supporting documents.
	GalleryTypeShopDocuments GalleryType = "shop-documents"
	// GalleryTypeShopGallery marks primary entries (cover/profile images)
	// that survive a shop deletion for audit and display purposes.
	GalleryTypeShopGallery GalleryType = "shop-galleries"
)

// String returns the string representation of the GalleryType.
func (g GalleryType) String() string {
	return string(g)
}

// Gallery is an uploaded file reference exclusively owned by a shop.
// Entries are deleted when superseded or when the owner is deleted,
// except for the primary GalleryTypeShopGallery category.
type Gallery struct {
	ID        uint64
	ShopID    uint64
	Title     string
	Path      string // Location of the file inside the media store.
	Type      GalleryType
	CreatedAt time.Time
}
