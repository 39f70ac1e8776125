// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package connector

import (
	"context"

	"github.com/MKhiriev/icy/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/connector_mock.go -package=mock

// Connector carries frames between a client and a server.
type Connector interface {
	// Connect opens the link. It returns [ErrAlreadyConnected] if the link is
	// already open.
	Connect(ctx context.Context) error

	// Send delivers msg to the server and waits for its reply. It returns
	// [ErrNotConnected] before Connect and ctx.Err() if ctx ends first.
	Send(ctx context.Context, msg models.Message) (models.Message, error)

	// Disconnect closes the link and releases its resources. It returns
	// [ErrNotConnected] if the link is not open.
	Disconnect(ctx context.Context) error

	// Connected reports whether the link is open.
	Connected() bool
}
