package server

import (
	"context"

	"github.com/MKhiriev/icy/models"
)

// Handler answers a single request frame with a single reply frame.
//
// Implementations never return transport errors: failures are reported as a
// [models.TypeError] reply carrying the request id.
type Handler interface {
	// Handle processes msg and returns the reply.
	Handle(ctx context.Context, msg models.Message) models.Message

	// Connected reports whether a client has completed the handshake.
	Connected() bool

	// Identity returns the server identity the handler was built with.
	Identity() models.ServerIdentity
}
