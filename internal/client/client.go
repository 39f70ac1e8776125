// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/icy/internal/connector"
	"github.com/MKhiriev/icy/internal/logger"
	"github.com/MKhiriev/icy/models"
)

// Client is a named client. It holds at most one connection.
type Client struct {
	identity models.ClientIdentity
	lastID   atomic.Uint32

	mu        sync.RWMutex
	connector connector.Connector
	server    models.ServerInfo

	logger *logger.Logger
}

// New builds an unconnected client named name.
func New(name string, logger *logger.Logger) *Client {
	return &Client{
		identity: models.ClientIdentity{Name: name},
		logger:   logger,
	}
}

// Identity returns the client identity.
func (c *Client) Identity() models.ClientIdentity {
	return c.identity
}

// Connected reports whether the handshake has completed.
func (c *Client) Connected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.connector != nil
}

// Server returns the handshake reply of the connected server.
func (c *Client) Server() (models.ServerInfo, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.server, c.connector != nil
}

// Connect opens conn and performs the handshake. On any failure conn is
// disconnected again and the client stays unconnected.
func (c *Client) Connect(ctx context.Context, conn connector.Connector) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.connector != nil {
		return ErrAlreadyConnected
	}

	log, _ := c.logger.WithTraceID()
	log.Debug().Str("client", c.identity.Name).Msg("connecting")

	if err := conn.Connect(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrConnectorFailed, err)
	}

	info, err := c.handshake(ctx, conn)
	if err != nil {
		if dErr := conn.Disconnect(ctx); dErr != nil {
			log.Warn().Err(dErr).Msg("disconnect after failed handshake")
		}
		return err
	}

	c.connector = conn
	c.server = info

	log.Info().
		Str("client", c.identity.Name).
		Str("server", info.ServerName).
		Int("message_version", info.MessageVersion).
		Msg("connected")

	return nil
}

func (c *Client) handshake(ctx context.Context, conn connector.Connector) (models.ServerInfo, error) {
	req, err := models.NewMessage(c.nextID(), models.TypeRequestServerInfo, models.RequestServerInfo{
		ClientName:     c.identity.Name,
		MessageVersion: models.MessageVersion,
	})
	if err != nil {
		return models.ServerInfo{}, fmt.Errorf("%w: build request: %w", ErrHandshake, err)
	}

	reply, err := conn.Send(ctx, req)
	if err != nil {
		return models.ServerInfo{}, fmt.Errorf("%w: %w", ErrHandshake, err)
	}
	if err = checkReply(req, reply, models.TypeServerInfo); err != nil {
		return models.ServerInfo{}, fmt.Errorf("%w: %w", ErrHandshake, err)
	}

	var info models.ServerInfo
	if err = reply.Decode(&info); err != nil {
		return models.ServerInfo{}, fmt.Errorf("%w: decode server info: %w", ErrHandshake, err)
	}

	return info, nil
}

// Ping checks that the server still answers.
func (c *Client) Ping(ctx context.Context) error {
	c.mu.RLock()
	conn := c.connector
	c.mu.RUnlock()

	if conn == nil {
		return ErrNotConnected
	}

	req := models.Message{ID: c.nextID(), Type: models.TypePing}
	reply, err := conn.Send(ctx, req)
	if err != nil {
		return fmt.Errorf("%w: ping: %w", ErrRequest, err)
	}

	return checkReply(req, reply, models.TypeOk)
}

// Disconnect ends the session and closes the connector. The client is
// unconnected afterwards even if the server does not answer.
func (c *Client) Disconnect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	conn := c.connector
	if conn == nil {
		return ErrNotConnected
	}

	c.connector = nil
	c.server = models.ServerInfo{}

	req := models.Message{ID: c.nextID(), Type: models.TypeDisconnect}
	if _, err := conn.Send(ctx, req); err != nil {
		c.logger.Warn().Err(err).Msg("disconnect request")
	}

	if err := conn.Disconnect(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrConnectorFailed, err)
	}

	c.logger.Debug().Str("client", c.identity.Name).Msg("disconnected")
	return nil
}

func (c *Client) nextID() uint32 {
	return c.lastID.Add(1)
}

// checkReply verifies that reply answers req with the expected type. Error
// replies are unwrapped into their server message.
func checkReply(req, reply models.Message, want models.MessageType) error {
	if reply.Type == models.TypeError {
		var e models.Error
		if err := reply.Decode(&e); err != nil {
			return fmt.Errorf("%w: undecodable error reply: %w", ErrUnexpectedMessage, err)
		}
		return fmt.Errorf("%w: server error %d: %s", ErrRequest, e.Code, e.Message)
	}

	if reply.ID != req.ID {
		return fmt.Errorf("%w: reply id %d for request %d", ErrUnexpectedMessage, reply.ID, req.ID)
	}
	if reply.Type != want {
		return fmt.Errorf("%w: got %q, want %q", ErrUnexpectedMessage, reply.Type, want)
	}

	return nil
}
