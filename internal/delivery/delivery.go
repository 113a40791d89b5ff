// Package delivery defines the contract every transport entrypoint fulfills.
package delivery

import "context"

// Delivery is a serving surface of the application. Each implementation
// blocks inside Serve until the surface shuts down.
type Delivery interface {
	Serve(ctx context.Context) error
}
