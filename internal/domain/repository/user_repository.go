package repository

import (
	"context"
	"errors"

	"market/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the operations the shop lifecycle needs from the
// account store: resolving a seller with roles and replacing the role set.
type UserRepository interface {
	// FindByID retrieves a single user, with roles loaded, by their numeric ID.
	FindByID(ctx context.Context, id uint64) (*entity.User, error)

	// SyncRoles replaces the user's role set with exactly the given roles.
	SyncRoles(ctx context.Context, userID uint64, roles entity.Roles) error
}
