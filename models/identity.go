// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ServerIdentity names the in-process server hosted by an embedded connector.
type ServerIdentity struct {
	// Name is the human-readable server name reported back to clients
	// during the handshake.
	Name string `json:"name"`

	// Param is an opaque configuration value supplied at construction.
	// It is never interpreted, only stored and echoed in [ServerInfo].
	Param int `json:"param"`
}

// ClientIdentity names a client. The name is sent to the server during the
// handshake and used in log entries.
type ClientIdentity struct {
	Name string `json:"name"`
}
