package service

import (
	"context"
)

// Shop lifecycle event types.
const (
	ShopEventCreated      = "shop.created"
	ShopEventDeleted      = "shop.deleted"
	ShopEventVerifyToggle = "shop.verify_toggled"
)

// ShopEvent represents a shop lifecycle event published for downstream
// consumers (search indexing, notifications, analytics).
type ShopEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	Type      string `json:"type"`
	ShopID    uint64 `json:"shop_id"`
	ShopUUID  string `json:"shop_uuid"`
	SellerID  uint64 `json:"seller_id"`
	Verified  bool   `json:"verified,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishShopEvent publishes a shop lifecycle event for async processing
	PublishShopEvent(ctx context.Context, event *ShopEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
