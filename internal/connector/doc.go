// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package connector provides the link between a client and a server.
//
// The primary abstraction is [Connector], which decouples the client from the
// way frames reach the server. The package ships an embedded implementation
// ([NewEmbedded]) that hosts the server in-process: frames are JSON-encoded
// and handed to a server goroutine over channels, no network is involved.
package connector
