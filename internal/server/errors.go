// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	ErrAlreadyConnected   = errors.New("handshake already completed")
	ErrEmptyClientName    = errors.New("client name is empty")
	ErrUnsupportedVersion = errors.New("unsupported message version")
	ErrNotConnected       = errors.New("handshake not completed")
	ErrUnknownMessage     = errors.New("unknown message type")
	ErrMalformedPayload   = errors.New("malformed payload")
)
