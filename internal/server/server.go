// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/icy/internal/logger"
	"github.com/MKhiriev/icy/models"
)

// Server is an in-process server. It holds one client session at a time.
type Server struct {
	identity models.ServerIdentity

	mu         sync.Mutex
	connected  bool
	clientName string

	logger *logger.Logger
}

// New builds a server for identity. The server starts unconnected.
func New(identity models.ServerIdentity, logger *logger.Logger) *Server {
	return &Server{
		identity: identity,
		logger:   logger,
	}
}

// Identity implements Handler.
func (s *Server) Identity() models.ServerIdentity {
	return s.identity
}

// Connected implements Handler.
func (s *Server) Connected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.connected
}

// Handle implements Handler.
func (s *Server) Handle(ctx context.Context, msg models.Message) models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		reply models.Message
		err   error
	)

	switch msg.Type {
	case models.TypeRequestServerInfo:
		reply, err = s.handshake(msg)
	case models.TypePing:
		reply, err = s.ping(msg)
	case models.TypeDisconnect:
		reply, err = s.disconnect(msg)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownMessage, msg.Type)
	}

	if err != nil {
		s.logger.Warn().Err(err).
			Uint32("id", msg.ID).
			Str("type", string(msg.Type)).
			Msg("request rejected")
		return errorReply(msg.ID, err)
	}

	return reply
}

func (s *Server) handshake(msg models.Message) (models.Message, error) {
	if s.connected {
		return models.Message{}, ErrAlreadyConnected
	}

	var req models.RequestServerInfo
	if err := msg.Decode(&req); err != nil {
		return models.Message{}, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}
	if req.ClientName == "" {
		return models.Message{}, ErrEmptyClientName
	}
	if req.MessageVersion > models.MessageVersion {
		return models.Message{}, fmt.Errorf("%w: client speaks %d, server speaks %d",
			ErrUnsupportedVersion, req.MessageVersion, models.MessageVersion)
	}

	reply, err := models.NewMessage(msg.ID, models.TypeServerInfo, models.ServerInfo{
		ServerName:     s.identity.Name,
		MessageVersion: models.MessageVersion,
		Param:          s.identity.Param,
	})
	if err != nil {
		return models.Message{}, err
	}

	s.connected = true
	s.clientName = req.ClientName

	s.logger.Info().
		Str("server", s.identity.Name).
		Str("client", req.ClientName).
		Int("message_version", req.MessageVersion).
		Msg("client connected")

	return reply, nil
}

func (s *Server) ping(msg models.Message) (models.Message, error) {
	if !s.connected {
		return models.Message{}, ErrNotConnected
	}
	return models.Message{ID: msg.ID, Type: models.TypeOk}, nil
}

func (s *Server) disconnect(msg models.Message) (models.Message, error) {
	if s.connected {
		s.logger.Info().
			Str("server", s.identity.Name).
			Str("client", s.clientName).
			Msg("client disconnected")
	}

	s.connected = false
	s.clientName = ""

	return models.Message{ID: msg.ID, Type: models.TypeOk}, nil
}
