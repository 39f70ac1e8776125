// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// MessageVersion is the newest message schema version the server speaks.
// Clients announce their version in [RequestServerInfo].
const MessageVersion = 3

// MessageType identifies the payload carried in a [Message].
type MessageType string

const (
	// TypeRequestServerInfo opens the handshake. Sent by the client.
	TypeRequestServerInfo MessageType = "RequestServerInfo"

	// TypeServerInfo completes the handshake. Sent by the server.
	TypeServerInfo MessageType = "ServerInfo"

	// TypeOk acknowledges a request that carries no result.
	TypeOk MessageType = "Ok"

	// TypeError reports a failed request. Payload is [Error].
	TypeError MessageType = "Error"

	// TypePing keeps a connection alive.
	TypePing MessageType = "Ping"

	// TypeDisconnect ends the session.
	TypeDisconnect MessageType = "Disconnect"
)

// Message is the envelope exchanged between a client and a server.
//
// ID correlates a reply with its request: a reply carries the ID of the
// request it answers. ID 0 is reserved for server-initiated messages.
type Message struct {
	ID      uint32          `json:"id"`
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// RequestServerInfo is the handshake request payload.
type RequestServerInfo struct {
	ClientName     string `json:"client_name"`
	MessageVersion int    `json:"message_version"`
}

// ServerInfo is the handshake reply payload.
type ServerInfo struct {
	ServerName     string `json:"server_name"`
	MessageVersion int    `json:"message_version"`

	// Param is [ServerIdentity.Param], passed through unchanged.
	Param int `json:"param"`
}

// ErrorCode classifies an [Error] reply.
type ErrorCode int

const (
	// ErrCodeUnknown is an unclassified server failure.
	ErrCodeUnknown ErrorCode = iota
	// ErrCodeHandshake means the handshake request was rejected.
	ErrCodeHandshake
	// ErrCodeNotConnected means the request needs a completed handshake.
	ErrCodeNotConnected
	// ErrCodeUnknownMessage means the message type is not supported.
	ErrCodeUnknownMessage
	// ErrCodeMalformed means the payload could not be decoded.
	ErrCodeMalformed
)

// Error is the payload of a [TypeError] message.
type Error struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// NewMessage builds a message with payload encoded as JSON. A nil payload
// produces a message without a payload field.
func NewMessage(id uint32, msgType MessageType, payload any) (Message, error) {
	msg := Message{ID: id, Type: msgType}
	if payload == nil {
		return msg, nil
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return Message{}, err
	}
	msg.Payload = raw

	return msg, nil
}

// Decode unmarshals the message payload into v.
func (m Message) Decode(v any) error {
	return json.Unmarshal(m.Payload, v)
}
