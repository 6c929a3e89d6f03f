package model

import "time"

// InvitationModel mirrors the 'invitations' table: a shop's pending offer
// for a user to join it as a deliveryman.
type InvitationModel struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement"`
	ShopID    uint64 `gorm:"not null;index"`
	UserID    uint64 `gorm:"not null;index"`
	Role      string `gorm:"type:varchar(32);not null"`
	Status    string `gorm:"type:varchar(16);not null;default:'new'"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (InvitationModel) TableName() string {
	return "invitations"
}
