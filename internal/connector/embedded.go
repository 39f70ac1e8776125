// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package connector

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/icy/internal/logger"
	"github.com/MKhiriev/icy/internal/server"
	"github.com/MKhiriev/icy/models"
	"golang.org/x/sync/errgroup"
)

type request struct {
	frame []byte
	reply chan []byte
}

// Embedded is a [Connector] that runs its server in the same process.
type Embedded struct {
	handler server.Handler

	mu       sync.Mutex
	requests chan request
	done     <-chan struct{}
	cancel   context.CancelFunc
	group    *errgroup.Group

	logger *logger.Logger
}

// NewEmbedded builds an embedded connector hosting a server named name.
// param is stored in the server identity unchanged.
func NewEmbedded(name string, param int, logger *logger.Logger) *Embedded {
	identity := models.ServerIdentity{Name: name, Param: param}
	return NewEmbeddedWithHandler(server.New(identity, logger), logger)
}

// NewEmbeddedWithHandler builds an embedded connector around an existing
// handler.
func NewEmbeddedWithHandler(handler server.Handler, logger *logger.Logger) *Embedded {
	return &Embedded{
		handler: handler,
		logger:  logger,
	}
}

// Identity returns the identity of the hosted server.
func (e *Embedded) Identity() models.ServerIdentity {
	return e.handler.Identity()
}

// Connect implements Connector. It starts the server loop; ctx bounds only
// the start, not the lifetime of the loop.
func (e *Embedded) Connect(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.cancel != nil {
		return ErrAlreadyConnected
	}

	loopCtx, cancel := context.WithCancel(context.Background())
	requests := make(chan request)
	group, groupCtx := errgroup.WithContext(loopCtx)
	group.Go(func() error {
		return e.serve(groupCtx, requests)
	})

	e.requests = requests
	e.done = groupCtx.Done()
	e.cancel = cancel
	e.group = group

	e.logger.Debug().Str("server", e.handler.Identity().Name).Msg("embedded server started")
	return nil
}

// Send implements Connector.
func (e *Embedded) Send(ctx context.Context, msg models.Message) (models.Message, error) {
	e.mu.Lock()
	requests, done := e.requests, e.done
	e.mu.Unlock()

	if requests == nil {
		return models.Message{}, ErrNotConnected
	}

	frame, err := encodeFrame(msg)
	if err != nil {
		return models.Message{}, err
	}

	req := request{frame: frame, reply: make(chan []byte, 1)}
	select {
	case requests <- req:
	case <-done:
		return models.Message{}, ErrClosed
	case <-ctx.Done():
		return models.Message{}, ctx.Err()
	}

	select {
	case replyFrame := <-req.reply:
		return decodeFrame(replyFrame)
	case <-done:
		return models.Message{}, ErrClosed
	case <-ctx.Done():
		return models.Message{}, ctx.Err()
	}
}

// Disconnect implements Connector. It stops the server loop, waits for it to
// exit and ends the server session if the client left one open.
func (e *Embedded) Disconnect(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.cancel == nil {
		return ErrNotConnected
	}

	e.cancel()
	err := e.group.Wait()

	e.requests = nil
	e.done = nil
	e.cancel = nil
	e.group = nil

	if e.handler.Connected() {
		e.handler.Handle(ctx, models.Message{Type: models.TypeDisconnect})
	}
	e.logger.Debug().Str("server", e.handler.Identity().Name).Msg("embedded server stopped")

	if err != nil {
		return fmt.Errorf("embedded server loop: %w", err)
	}
	return nil
}

// Connected implements Connector.
func (e *Embedded) Connected() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cancel != nil
}

func (e *Embedded) serve(ctx context.Context, requests <-chan request) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case req := <-requests:
			req.reply <- e.answer(ctx, req.frame)
		}
	}
}

// answer decodes a frame, lets the handler process it and encodes the reply.
// Codec failures are turned into error frames so the caller always gets an
// answer.
func (e *Embedded) answer(ctx context.Context, frame []byte) []byte {
	msg, err := decodeFrame(frame)
	if err != nil {
		return e.errorFrame(0, models.ErrCodeMalformed, err)
	}

	replyFrame, err := encodeFrame(e.handler.Handle(ctx, msg))
	if err != nil {
		return e.errorFrame(msg.ID, models.ErrCodeUnknown, err)
	}

	return replyFrame
}

func (e *Embedded) errorFrame(id uint32, code models.ErrorCode, cause error) []byte {
	e.logger.Error().Err(cause).Uint32("id", id).Msg("embedded server codec failure")

	reply, err := models.NewMessage(id, models.TypeError, models.Error{Code: code, Message: cause.Error()})
	if err != nil {
		return nil
	}

	frame, err := encodeFrame(reply)
	if err != nil {
		return nil
	}
	return frame
}
