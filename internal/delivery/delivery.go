// Package delivery defines the contract every transport (HTTP, worker,
// ...) fulfills so main can start them uniformly.
package delivery

import "context"

// Delivery is a serving transport with a blocking Serve loop.
type Delivery interface {
	Serve(ctx context.Context) error
}
