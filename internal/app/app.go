// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app bootstraps the icy process: it builds the embedded connector
// and the client from fixed identities and connects them once.
//
// Failures are returned to the caller. Deciding to terminate the process is
// left to main.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/icy/internal/client"
	"github.com/MKhiriev/icy/internal/connector"
	"github.com/MKhiriev/icy/internal/logger"
)

// Fixed identities. They are not configurable.
const (
	ServerName  = "Icy Server"
	ServerParam = 0
	ClientName  = "Icy Client"
)

// ErrConnect is returned when the client could not connect.
var ErrConnect = errors.New(MsgEmbeddedConnection)

// Run connects a new client to a new embedded connector and returns once the
// connection is established and released again.
func Run(ctx context.Context, logger *logger.Logger) error {
	return RunWith(ctx, connector.NewEmbedded(ServerName, ServerParam, logger), logger)
}

// RunWith is [Run] with a caller-supplied connector.
func RunWith(ctx context.Context, conn connector.Connector, logger *logger.Logger) error {
	c := client.New(ClientName, logger)

	if err := c.Connect(ctx, conn); err != nil {
		return fmt.Errorf("%w: %w", ErrConnect, err)
	}

	// Nothing runs after the handshake. A failed release does not fail the run.
	if err := c.Disconnect(ctx); err != nil {
		logger.Warn().Err(err).Msg("release embedded connection")
	}

	return nil
}
