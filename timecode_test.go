// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package cmx3600

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseTimecode(t *testing.T) {
	tests := []struct {
		tc   string
		rate int
		want int
	}{
		{"00:00:00:00", 24, 0},
		{"00:00:01:00", 24, 24},
		{"01:00:00:00", 24, 86400},
		{"01:00:10:05", 24, 86645},
		{"00:00:01:00", 25, 25},
		// Out of range components are not rejected
		{"00:00:00:30", 24, 30},
		{"-01:00:00:00", 24, -86400},
	}

	for _, tt := range tests {
		got, err := ParseTimecode(tt.tc, tt.rate)
		require.NoError(t, err, tt.tc)
		require.Equal(t, tt.want, got, tt.tc)
	}
}

func TestParseTimecode_Malformed(t *testing.T) {
	for _, tc := range []string{"", "01:00:00", "01:00:00:00:00", "01:xx:00:00", "01;00;00;00"} {
		_, err := ParseTimecode(tc, 24)
		require.Error(t, err, tc)

		var tcErr *TimecodeError
		require.True(t, errors.As(err, &tcErr), tc)
		require.Equal(t, tc, tcErr.Timecode)
	}
}

func TestFramesToTimecode(t *testing.T) {
	require.Equal(t, "00:00:00:00", FramesToTimecode(0, 24))
	require.Equal(t, "00:00:02:00", FramesToTimecode(48, 24))
	require.Equal(t, "01:00:10:05", FramesToTimecode(86645, 24))
	require.Equal(t, "00:00:01:24", FramesToTimecode(49, 25))
	require.Equal(t, "-1:59:58:00", FramesToTimecode(-48, 24))
}

func TestTimecodeRoundTrip(t *testing.T) {
	for _, rate := range []int{24, 25, 30} {
		for _, tc := range []string{"00:00:00:00", "00:00:00:01", "00:59:59:00", "01:02:03:04", "23:59:59:00", "10:00:00:12"} {
			frames, err := ParseTimecode(tc, rate)
			require.NoError(t, err)
			require.Equal(t, tc, FramesToTimecode(frames, rate), "rate %d", rate)
		}
	}
}

func TestSubtractTimecode(t *testing.T) {
	got, err := SubtractTimecode("01:00:10:00", "01:00:02:12", 24)
	require.NoError(t, err)
	require.Equal(t, "00:00:07:12", got)

	_, err = SubtractTimecode("01:00:10", "01:00:02:12", 24)
	require.Error(t, err)
}

func TestValidateTimecode(t *testing.T) {
	require.NoError(t, ValidateTimecode("23:59:59:23", 24))
	require.NoError(t, ValidateTimecode("00:00:00:24", 25))

	for _, tc := range []string{"00:00:00:24", "00:60:00:00", "00:00:60:00", "-1:00:00:00", "01:00:00"} {
		require.Error(t, ValidateTimecode(tc, 24), tc)
	}
}

func TestFramesToDescription(t *testing.T) {
	tests := []struct {
		frames int
		want   string
	}{
		{0, "0 frames"},
		{1, "1 frame"},
		{2, "2 frames"},
		{24, "1 second 0 frames"},
		{25, "1 second 1 frame"},
		{49, "2 seconds 1 frame"},
		{178, "7 seconds 10 frames"},
		{-48, "-2 seconds 0 frames"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, FramesToDescription(tt.frames, 24), "frames %d", tt.frames)
	}
}
