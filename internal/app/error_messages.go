// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

const (
	// MsgEmbeddedConnection is the diagnostic the process exits with when
	// the embedded connection cannot be established.
	MsgEmbeddedConnection = "embedded connection to immediately activate"
)
