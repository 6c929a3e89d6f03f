package repository

import "context"

// InvitationRepository defines persistence operations for deliveryman invitations.
type InvitationRepository interface {
	// DeleteByShop removes every pending invitation of the given shop.
	// Invoked when a shop switches to in-house delivery.
	DeleteByShop(ctx context.Context, shopID uint64) error
}
