package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a marketplace account. Only the fields the shop lifecycle needs
// are carried here; the full account management surface lives elsewhere.
type User struct {
	ID        uint64    // Auto-increment primary key, referenced by Shop.SellerID.
	UUID      uuid.UUID // Public identifier used in tokens.
	Firstname string
	Lastname  string
	Email     string
	Phone     string
	Active    bool
	Roles     Roles // Current role set; replaced wholesale by SyncRoles.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAdmin reports whether the user holds the administrator role.
func (u *User) IsAdmin() bool {
	return u.Roles.Contains(RoleAdmin)
}
