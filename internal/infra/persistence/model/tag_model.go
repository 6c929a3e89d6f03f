package model

import "time"

// TagModel mirrors the 'tags' table. Shops reference tags through the
// shop_tags join table; syncing replaces the join rows wholesale.
type TagModel struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement"`
	Active    bool   `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Translations []*TagTranslationModel `gorm:"foreignKey:TagID"`
}

// TableName explicitly sets the table name for GORM.
func (TagModel) TableName() string {
	return "tags"
}

// TagTranslationModel mirrors the 'tag_translations' table.
type TagTranslationModel struct {
	ID     uint64 `gorm:"primaryKey;autoIncrement"`
	TagID  uint64 `gorm:"not null;uniqueIndex:idx_tag_translations_tag_locale"`
	Locale string `gorm:"type:varchar(8);not null;uniqueIndex:idx_tag_translations_tag_locale"`
	Title  string `gorm:"type:varchar(191);not null"`
}

// TableName explicitly sets the table name for GORM.
func (TagTranslationModel) TableName() string {
	return "tag_translations"
}
