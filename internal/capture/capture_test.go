package capture

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/danmuck/rowctl/internal/protocol/ident"
	"github.com/stretchr/testify/require"
)

func TestLoadWarmupCapture(t *testing.T) {
	file, err := Load(filepath.Join("testdata", "warmup.yaml"))
	require.NoError(t, err)
	require.Equal(t, "warmup", file.Name)

	notes, err := file.Resolve()
	require.NoError(t, err)
	require.Len(t, notes, 32)

	first := notes[0]
	require.Equal(t, ident.GeneralStatus.UUID(), first.ID)
	require.Equal(t, []byte{186, 5, 0, 237, 1, 0, 1, 1, 1, 1, 4, 0, 0, 0, 0, 0, 0, 128, 79}, first.Payload)
	require.Zero(t, first.Offset)

	var statusOne int
	for i, n := range notes {
		if i > 0 {
			require.Greater(t, n.Offset, notes[i-1].Offset)
		}
		if n.ID == ident.AdditionalStatusOne.UUID() {
			statusOne++
		}
	}
	require.Equal(t, 1, statusOne)
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse(strings.NewReader("notifications:\n  - characteristic: rowing.stroke_data\n    bytes: 00\n"))
	require.Error(t, err)
}

func TestParseEmptyDocument(t *testing.T) {
	file, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	require.Empty(t, file.Notifications)
}

func TestResolveReportsEntryIndex(t *testing.T) {
	file := &File{Notifications: []Entry{
		{Characteristic: "rowing.general_status", Payload: "00"},
		{Characteristic: "rowing.general_status", Payload: "zz"},
	}}
	_, err := file.Resolve()
	require.ErrorIs(t, err, ErrInvalidPayload)
	require.Contains(t, err.Error(), "notification 1")

	file = &File{Notifications: []Entry{{Characteristic: "rowing.nope", Payload: "00"}}}
	_, err = file.Resolve()
	require.ErrorIs(t, err, ident.ErrUnknownName)
}

func TestResolveKeepsUncataloguedIdentifiers(t *testing.T) {
	file := &File{Notifications: []Entry{{Characteristic: "ce060050-43e5-11e4-916c-0800200c9a66", Payload: ""}}}
	notes, err := file.Resolve()
	require.NoError(t, err)
	require.Equal(t, "ce060050-43e5-11e4-916c-0800200c9a66", notes[0].ID.String())
	require.Empty(t, notes[0].Payload)
}

func TestSaveAndLoad(t *testing.T) {
	var file File
	file.Name = "roundtrip"
	file.Add(ident.StrokeData.UUID(), []byte{0x01, 0xab}, 0)
	file.Add(ident.IdentifierOf(ident.Rowing, 0), []byte{0xff}, 250*time.Millisecond)
	require.Equal(t, "rowing.stroke_data", file.Notifications[0].Characteristic)
	require.Equal(t, "01ab", file.Notifications[0].Payload)

	path := filepath.Join(t.TempDir(), "capture.yaml")
	require.NoError(t, file.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	notes, err := loaded.Resolve()
	require.NoError(t, err)
	require.Len(t, notes, 2)
	require.Equal(t, ident.IdentifierOf(ident.Rowing, 0), notes[1].ID)
	require.Equal(t, 250*time.Millisecond, notes[1].Offset)
}

func TestParsePayload(t *testing.T) {
	cases := map[string][]byte{
		"ba0500":     {0xba, 0x05, 0x00},
		"BA 05 00":   {0xba, 0x05, 0x00},
		"0xba:05:00": {0xba, 0x05, 0x00},
		" ba-05 ":    {0xba, 0x05},
		"":           {},
	}
	for in, want := range cases {
		got, err := ParsePayload(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}
	for _, bad := range []string{"abc", "zz", "0x1"} {
		_, err := ParsePayload(bad)
		require.ErrorIs(t, err, ErrInvalidPayload, bad)
	}
}
