// Package delivery defines the contract every transport entry point satisfies.
package delivery

import "context"

// Delivery is a running transport (HTTP today) that blocks in Serve until
// its listener stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
