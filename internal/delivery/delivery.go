// Package delivery defines the inbound transport contract.
package delivery

import "context"

// Delivery is a server that accepts requests until its context or the
// process lifecycle stops it.
type Delivery interface {
	Serve(ctx context.Context) error
}
