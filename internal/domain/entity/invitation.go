package entity

import "time"

// InvitationStatus is the lifecycle state of a deliveryman invitation.
type InvitationStatus string

const (
	// InvitationStatusNew is a freshly issued, unanswered invitation.
	InvitationStatusNew InvitationStatus = "new"
	// InvitationStatusAccepted marks an accepted invitation.
	InvitationStatusAccepted InvitationStatus = "accepted"
	// InvitationStatusRejected marks a rejected invitation.
	InvitationStatusRejected InvitationStatus = "rejected"
)

// Invitation is a pending deliveryman assignment to a shop. Invitations are
// purged when the shop switches to in-house delivery: deliverymen become
// direct employees and the assignments are moot.
type Invitation struct {
	ID        uint64
	ShopID    uint64
	UserID    uint64 // The invited deliveryman.
	Role      Role
	Status    InvitationStatus
	CreatedAt time.Time
}
