// Package server implements the in-process server hosted by an embedded
// connector.
//
// The server answers one frame at a time through [Server.Handle]. It knows
// the connection handshake, ping and disconnect; it does no device work.
package server
