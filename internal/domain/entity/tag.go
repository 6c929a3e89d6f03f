package entity

// Tag is a predefined label a shop can be associated with. The shop-tag
// relation is an order-irrelevant set: syncing replaces it wholesale.
type Tag struct {
	ID           uint64
	Active       bool
	Translations []*TagTranslation // Filtered to the requested locales when eager-loaded.
}

// TagTranslation holds the locale-specific title of a tag.
type TagTranslation struct {
	ID     uint64
	TagID  uint64
	Locale string
	Title  string
}
