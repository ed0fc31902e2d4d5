// Package delivery defines the entry points through which the outside world
// reaches the application.
package delivery

import "context"

// Delivery is a long-running serving surface (currently only HTTP).
type Delivery interface {
	// Serve blocks until the delivery stops or fails.
	Serve(ctx context.Context) error
}
