package connector

import "errors"

var (
	ErrNotConnected     = errors.New("connector is not connected")
	ErrAlreadyConnected = errors.New("connector is already connected")
	ErrClosed           = errors.New("connector closed while waiting for reply")
	ErrEncodeFrame      = errors.New("encode frame")
	ErrDecodeFrame      = errors.New("decode frame")
)
