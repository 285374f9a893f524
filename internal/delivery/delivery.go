// Package delivery defines the contract every inbound transport implements.
package delivery

import "context"

// Delivery is a server that accepts inbound requests until its context is
// canceled or the fx lifecycle stops it.
type Delivery interface {
	Serve(ctx context.Context) error
}
