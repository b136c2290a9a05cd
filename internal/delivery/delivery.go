// Package delivery defines the transport-facing surface of the application.
package delivery

import "context"

// Delivery is a transport server started from main and stopped through
// the fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
