// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package cmx3600

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultRate is the frame rate used when none is configured.
const DefaultRate = 24

// ParseTimecode converts an HH:MM:SS:FF timecode to a frame count.
// Components are not range checked; an out of range frame or negative
// component is folded into the arithmetic as-is.
func ParseTimecode(tc string, rate int) (int, error) {
	if err := checkRate(rate); err != nil {
		return 0, err
	}

	parts := strings.Split(tc, ":")
	if len(parts) != 4 {
		return 0, &TimecodeError{Timecode: tc, Message: fmt.Sprintf("expected 4 components, got %d", len(parts))}
	}

	var v [4]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return 0, &TimecodeError{Timecode: tc, Message: fmt.Sprintf("component %q is not a number", p)}
		}
		v[i] = n
	}

	return ((v[0]*60+v[1])*60+v[2])*rate + v[3], nil
}

// ValidateTimecode reports whether tc is a well formed non-drop timecode at rate.
func ValidateTimecode(tc string, rate int) error {
	if _, err := ParseTimecode(tc, rate); err != nil {
		return err
	}

	parts := strings.Split(tc, ":")
	limits := [4]int{-1, 60, 60, rate}
	for i, p := range parts {
		n, _ := strconv.Atoi(p)
		if n < 0 {
			return &TimecodeError{Timecode: tc, Message: "negative component"}
		}
		if limits[i] > 0 && n >= limits[i] {
			return &TimecodeError{Timecode: tc, Message: fmt.Sprintf("component %q out of range", p)}
		}
	}

	return nil
}

// FramesToTimecode formats a frame count as HH:MM:SS:FF.
// Negative counts use floor division, so -48 frames at 24 fps is -1:59:58:00.
// rate must be positive; callers validate it before formatting.
func FramesToTimecode(frames, rate int) string {
	perHour := 60 * 60 * rate
	perMinute := 60 * rate

	h := floorDiv(frames, perHour)
	frames = floorMod(frames, perHour)
	m := frames / perMinute
	frames %= perMinute
	s := frames / rate
	f := frames % rate

	return fmt.Sprintf("%02d:%02d:%02d:%02d", h, m, s, f)
}

// SubtractTimecode returns out minus in as a timecode.
func SubtractTimecode(out, in string, rate int) (string, error) {
	outFrames, err := ParseTimecode(out, rate)
	if err != nil {
		return "", err
	}
	inFrames, err := ParseTimecode(in, rate)
	if err != nil {
		return "", err
	}
	return FramesToTimecode(outFrames-inFrames, rate), nil
}

// FramesToDescription renders a frame count for people, e.g. "7 seconds 14 frames".
// rate must be positive.
func FramesToDescription(frames, rate int) string {
	seconds := floorDiv(frames, rate)
	remaining := floorMod(frames, rate)
	if seconds == 0 {
		return plural(remaining, "frame")
	}
	return plural(seconds, "second") + " " + plural(remaining, "frame")
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}
