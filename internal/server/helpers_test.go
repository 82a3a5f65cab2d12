package server

import (
	"testing"

	"github.com/danmuck/rowctl/internal/capture"
	"github.com/danmuck/rowctl/internal/protocol"
	"github.com/danmuck/rowctl/internal/protocol/ident"
	"github.com/danmuck/rowctl/internal/protocol/rowing"
	"github.com/stretchr/testify/require"
)

func mustDecodeGeneralStatus(t *testing.T) rowing.Record {
	t.Helper()
	payload, err := capture.ParsePayload(generalStatusHex)
	require.NoError(t, err)
	rec, err := protocol.Decode(ident.GeneralStatus.UUID(), payload)
	require.NoError(t, err)
	return rec
}
