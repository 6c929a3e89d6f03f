// Package delivery defines the contract every inbound transport of the
// service implements, so the composition root can start them uniformly.
package delivery

import "context"

// Delivery is a serveable transport (HTTP today, more later).
type Delivery interface {
	// Serve blocks until the transport stops or fails.
	Serve(ctx context.Context) error
}
