package model

import "time"

// OrderModel mirrors the columns of the 'orders' table the shop deletion
// cascade touches. The order service owns the full table.
type OrderModel struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement"`
	ShopID    uint64 `gorm:"not null;index"`
	UserID    uint64 `gorm:"not null;index"`
	Status    string `gorm:"type:varchar(32)"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// PointHistoryModel mirrors the 'point_histories' table: loyalty point
// movements attached to orders.
type PointHistoryModel struct {
	ID        uint64  `gorm:"primaryKey;autoIncrement"`
	OrderID   uint64  `gorm:"not null;index"`
	UserID    uint64  `gorm:"not null;index"`
	Amount    float64 `gorm:"type:decimal(10,2);not null;default:0"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PointHistoryModel) TableName() string {
	return "point_histories"
}
