// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package cmx3600

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncoder_SimpleEDL(t *testing.T) {
	edits := []Edit{
		shot("010", "A001", "01:00:00:00", "01:00:05:00", "00:00:00:00", "00:00:05:00", "Shot1"),
		{ReelName: "B002", SourceIn: "02:00:00:00", SourceOut: "02:00:01:00", RecordIn: "00:00:05:00", RecordOut: "00:00:06:00"},
	}

	var buf bytes.Buffer
	encoder := NewEncoder(&buf)
	encoder.SetTitle("Test Timeline")
	require.NoError(t, encoder.Encode(edits))

	want := "TITLE: Test Timeline\n" +
		"FCM: NON-DROP FRAME\n\n" +
		"001  A001     V     C        01:00:00:00 01:00:05:00 00:00:00:00 00:00:05:00\n" +
		"* FROM CLIP NAME: Shot1\n\n" +
		"002  B002     V     C        02:00:00:00 02:00:01:00 00:00:05:00 00:00:06:00\n\n"
	require.Equal(t, want, buf.String())
}

func TestEncoder_RoundTrip(t *testing.T) {
	edits := []Edit{
		shot("001", "A001C003_220101", "01:00:00:00", "01:00:05:00", "00:00:00:00", "00:00:05:00", "Shot 1 v2"),
		shot("002", "B002", "02:00:00:00", "02:00:03:12", "00:00:05:00", "00:00:08:12", "Shot2"),
	}

	var buf bytes.Buffer
	require.NoError(t, NewEncoder(&buf).Encode(edits))

	decoded, err := NewDecoder(strings.NewReader(buf.String())).Decode()
	require.NoError(t, err)
	require.Equal(t, edits, decoded)
}

func TestEncoder_ReelNameLength(t *testing.T) {
	edits := []Edit{shot("001", "A001C003-220101", "01:00:00:00", "01:00:05:00", "00:00:00:00", "00:00:05:00", "")}

	var buf bytes.Buffer
	encoder := NewEncoder(&buf)
	encoder.SetReelNameLength(8)
	require.NoError(t, encoder.Encode(edits))

	decoded, err := NewDecoder(strings.NewReader(buf.String())).Decode()
	require.NoError(t, err)
	require.Len(t, decoded, 1)
	require.Equal(t, "A001C003", decoded[0].ReelName)
}

func TestEncoder_MissingReel(t *testing.T) {
	var buf bytes.Buffer
	err := NewEncoder(&buf).Encode([]Edit{{SourceIn: "01:00:00:00"}})
	require.Error(t, err)

	var encErr *EncodeError
	require.ErrorAs(t, err, &encErr)
	require.Contains(t, encErr.Message, "event 1")
}

func TestChangeEDL(t *testing.T) {
	old := []Edit{
		shot("001", "A001", "01:00:00:00", "01:00:10:00", "00:00:00:00", "00:00:10:00", "Shot1"),
		shot("002", "B002", "02:00:00:00", "02:00:10:00", "00:00:10:00", "00:00:20:00", "Shot2"),
		shot("003", "C003", "03:00:00:00", "03:00:10:00", "00:00:20:00", "00:00:30:00", "Shot3"),
	}
	edited := []Edit{
		shot("001", "A001", "01:00:00:00", "01:00:10:00", "00:00:00:00", "00:00:10:00", "Shot1"),
		shot("002", "B002", "02:00:01:00", "02:00:10:00", "00:00:10:00", "00:00:19:00", "Shot2"),
	}

	changes, err := Compare(old, edited, 24)
	require.NoError(t, err)

	require.Equal(t, []Edit{edited[1]}, ChangeEDL(changes))
	require.Empty(t, ChangeEDL(nil))
}

func TestSanitizeReelName(t *testing.T) {
	require.Equal(t, "REEL_1", SanitizeReelName("REEL-1", 8))
	require.Equal(t, "A001C003", SanitizeReelName("A001C003_220101", 8))
	require.Equal(t, "A001C003_220101", SanitizeReelName("A001C003_220101", 0))
	require.Equal(t, "AX", SanitizeReelName("", 0))
}
