// Package delivery defines the entry points that expose the application
// to the outside world.
package delivery

import "context"

// Delivery is a long-running entry point, such as an HTTP server or a
// background worker. Serve blocks until the delivery stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
