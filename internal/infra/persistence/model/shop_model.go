package model

import (
	"time"

	"market/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ShopModel mirrors the 'shops' table. The numeric ID is the primary key;
// the UUID is the public identifier exposed over HTTP. One shop per seller
// is enforced by the unique index on seller_id.
type ShopModel struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement"`
	UUID          uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	SellerID      uint64    `gorm:"not null;uniqueIndex"`
	Type          int       `gorm:"not null;default:1"`
	LogoImg       string    `gorm:"type:varchar(255)"`
	BackgroundImg string    `gorm:"type:varchar(255)"`
	Phone         string    `gorm:"type:varchar(32)"`
	Open          bool      `gorm:"not null;default:true"`
	Visibility    bool      `gorm:"not null;default:true"`
	Verify        bool      `gorm:"not null;default:false"`
	MinAmount     float64   `gorm:"type:decimal(10,2);not null;default:0"`
	Tax           float64   `gorm:"type:decimal(5,2);not null;default:0"`
	Percent       float64   `gorm:"type:decimal(5,2);not null;default:0"`
	DeliveryType  string    `gorm:"type:varchar(16);not null"`
	DeliveryTime  datatypes.JSONType[entity.DeliveryTime] `gorm:"type:jsonb"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`

	Seller       *UserModel              `gorm:"foreignKey:SellerID"`
	Translations []*ShopTranslationModel `gorm:"foreignKey:ShopID"`
	Tags         []*TagModel             `gorm:"many2many:shop_tags;joinForeignKey:ShopID;joinReferences:TagID"`
	Galleries    []*GalleryModel         `gorm:"foreignKey:ShopID"`
	Subscription *ShopSubscriptionModel  `gorm:"foreignKey:ShopID"`
	WorkingDays  []*ShopWorkingDayModel  `gorm:"foreignKey:ShopID"`
	ClosedDates  []*ShopClosedDateModel  `gorm:"foreignKey:ShopID"`
}

// TableName explicitly sets the table name for GORM.
func (ShopModel) TableName() string {
	return "shops"
}

// ShopTranslationModel mirrors the 'shop_translations' table.
// One row per (shop, locale), upserted on conflict.
type ShopTranslationModel struct {
	ID          uint64 `gorm:"primaryKey;autoIncrement"`
	ShopID      uint64 `gorm:"not null;uniqueIndex:idx_shop_translations_shop_locale"`
	Locale      string `gorm:"type:varchar(8);not null;uniqueIndex:idx_shop_translations_shop_locale"`
	Title       string `gorm:"type:varchar(191);not null"`
	Description string `gorm:"type:text"`
	Address     string `gorm:"type:varchar(255)"`
}

// TableName explicitly sets the table name for GORM.
func (ShopTranslationModel) TableName() string {
	return "shop_translations"
}

// ShopSubscriptionModel mirrors the 'shop_subscriptions' table.
type ShopSubscriptionModel struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement"`
	ShopID    uint64 `gorm:"not null;index"`
	Active    bool   `gorm:"not null;default:false"`
	ExpiredAt time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ShopSubscriptionModel) TableName() string {
	return "shop_subscriptions"
}

// ShopWorkingDayModel mirrors the 'shop_working_days' table.
type ShopWorkingDayModel struct {
	ID       uint64 `gorm:"primaryKey;autoIncrement"`
	ShopID   uint64 `gorm:"not null;uniqueIndex:idx_shop_working_days_shop_day"`
	Day      string `gorm:"type:varchar(16);not null;uniqueIndex:idx_shop_working_days_shop_day"`
	From     string `gorm:"column:from;type:varchar(8)"`
	To       string `gorm:"column:to;type:varchar(8)"`
	Disabled bool   `gorm:"not null;default:false"`
}

// TableName explicitly sets the table name for GORM.
func (ShopWorkingDayModel) TableName() string {
	return "shop_working_days"
}

// ShopClosedDateModel mirrors the 'shop_closed_dates' table.
type ShopClosedDateModel struct {
	ID     uint64    `gorm:"primaryKey;autoIncrement"`
	ShopID uint64    `gorm:"not null;index"`
	Day    time.Time `gorm:"type:date;not null"`
}

// TableName explicitly sets the table name for GORM.
func (ShopClosedDateModel) TableName() string {
	return "shop_closed_dates"
}
