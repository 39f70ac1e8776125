// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the client side of the connection handshake.
//
// A [Client] is connected through any [connector.Connector]; it announces its
// name and message version and records the server's reply.
package client
