package model

import "time"

// GalleryModel mirrors the 'galleries' table. An entry is a reference to a
// stored file, categorized by type (shop images, documents, primary gallery).
type GalleryModel struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement"`
	ShopID    uint64 `gorm:"not null;index"`
	Title     string `gorm:"type:varchar(191)"`
	Path      string `gorm:"type:varchar(255);not null"`
	Type      string `gorm:"type:varchar(32);not null;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (GalleryModel) TableName() string {
	return "galleries"
}
