// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/icy/internal/client"
	"github.com/MKhiriev/icy/internal/logger"
	"github.com/MKhiriev/icy/internal/mock"
	"github.com/MKhiriev/icy/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// TestRun_Succeeds verifies that the embedded self-connection succeeds with
// the fixed identities.
func TestRun_Succeeds(t *testing.T) {
	require.NoError(t, Run(context.Background(), logger.Nop()))
}

// TestRun_Deterministic verifies that repeated runs give the same outcome.
func TestRun_Deterministic(t *testing.T) {
	for i := 0; i < 5; i++ {
		require.NoError(t, Run(context.Background(), logger.Nop()), "run %d", i)
	}
}

// TestRun_LogsFixedIdentities verifies that the handshake announces the
// literal names.
func TestRun_LogsFixedIdentities(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.DebugLevel) })

	var buf bytes.Buffer
	require.NoError(t, Run(context.Background(), logger.New(&buf, "test", zerolog.InfoLevel)))

	out := buf.String()
	assert.Contains(t, out, `"server":"Icy Server"`)
	assert.Contains(t, out, `"client":"Icy Client"`)
}

// TestRunWith_ConnectorFails verifies that a failing connector surfaces as
// ErrConnect carrying the fixed diagnostic.
func TestRunWith_ConnectorFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	conn := mock.NewMockConnector(ctrl)
	cause := errors.New("injected fault")
	conn.EXPECT().Connect(gomock.Any()).Return(cause)

	err := RunWith(context.Background(), conn, logger.Nop())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConnect)
	assert.ErrorIs(t, err, client.ErrConnectorFailed)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), MsgEmbeddedConnection)
}

// TestRunWith_HandshakeRejected verifies that a server error reply fails the
// run and the connector is released.
func TestRunWith_HandshakeRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	conn := mock.NewMockConnector(ctrl)
	reject, err := models.NewMessage(1, models.TypeError, models.Error{Code: models.ErrCodeHandshake, Message: "rejected"})
	require.NoError(t, err)

	gomock.InOrder(
		conn.EXPECT().Connect(gomock.Any()).Return(nil),
		conn.EXPECT().Send(gomock.Any(), gomock.Any()).Return(reject, nil),
		conn.EXPECT().Disconnect(gomock.Any()).Return(nil),
	)

	err = RunWith(context.Background(), conn, logger.Nop())
	assert.ErrorIs(t, err, ErrConnect)
	assert.ErrorIs(t, err, client.ErrHandshake)
}

// TestRunWith_ReleaseFailureIgnored verifies that a failed release after a
// successful connect does not fail the run.
func TestRunWith_ReleaseFailureIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	conn := mock.NewMockConnector(ctrl)

	info, err := models.NewMessage(1, models.TypeServerInfo, models.ServerInfo{ServerName: ServerName, MessageVersion: models.MessageVersion})
	require.NoError(t, err)

	gomock.InOrder(
		conn.EXPECT().Connect(gomock.Any()).Return(nil),
		conn.EXPECT().Send(gomock.Any(), gomock.Any()).Return(info, nil),
		conn.EXPECT().Send(gomock.Any(), gomock.Any()).Return(models.Message{}, assert.AnError),
		conn.EXPECT().Disconnect(gomock.Any()).Return(assert.AnError),
	)

	assert.NoError(t, RunWith(context.Background(), conn, logger.Nop()))
}

// TestRun_CancelledContext verifies that a cancelled context fails the run
// instead of hanging.
func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Run(ctx, logger.Nop())
	assert.ErrorIs(t, err, ErrConnect)
	assert.ErrorIs(t, err, context.Canceled)
}
