package client

import "errors"

var (
	ErrAlreadyConnected  = errors.New("client is already connected")
	ErrNotConnected      = errors.New("client is not connected")
	ErrConnectorFailed   = errors.New("connector failed")
	ErrHandshake         = errors.New("handshake failed")
	ErrUnexpectedMessage = errors.New("unexpected message")
	ErrRequest           = errors.New("request failed")
)
