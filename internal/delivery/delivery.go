// Package delivery holds the inbound adapters (HTTP API, Pub/Sub push worker).
package delivery

import "context"

// Delivery is a long-running server started by the fx entrypoint.
type Delivery interface {
	Serve(ctx context.Context) error
}
