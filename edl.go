// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

// Package cmx3600 compares two revisions of a CMX 3600 EDL (Edit Decision List)
// and reports which clips were added or modified between them.
// The CMX 3600 format is a text-based interchange format used in video editing.
package cmx3600

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRate is returned when a frame rate is zero or negative.
var ErrInvalidRate = errors.New("invalid frame rate")

// checkRate rejects frame rates the timecode arithmetic cannot divide by.
func checkRate(rate int) error {
	if rate <= 0 {
		return fmt.Errorf("%w %d", ErrInvalidRate, rate)
	}
	return nil
}

// EditType represents the type of edit in an EDL.
type EditType string

const (
	// EditTypeCut represents a cut (instantaneous transition).
	EditTypeCut EditType = "C"
)

// TrackType represents the type of track in an EDL.
type TrackType string

const (
	// TrackTypeVideo represents a video track.
	TrackTypeVideo TrackType = "V"
)

// Edit represents a single event line of an EDL plus its clip name comment.
// Edits are not modified after decoding.
type Edit struct {
	EventNumber string    // Event number as written (e.g. 001)
	ReelName    string    // Source reel/tape name
	TrackType   TrackType // Track column, kept for re-encoding only
	EditType    EditType  // Edit type column, kept for re-encoding only
	SourceIn    string    // Source in timecode (HH:MM:SS:FF)
	SourceOut   string    // Source out timecode (HH:MM:SS:FF)
	RecordIn    string    // Record in timecode (HH:MM:SS:FF)
	RecordOut   string    // Record out timecode (HH:MM:SS:FF)
	ClipName    string    // Clip name from "* FROM CLIP NAME:" comment
}

// EditKey identifies the source material an edit uses.
type EditKey struct {
	Reel      string
	SourceIn  string
	SourceOut string
}

// Key returns the reel and source range of the edit.
// Comparison is positional and does not consult the key.
func (e Edit) Key() EditKey {
	return EditKey{Reel: e.ReelName, SourceIn: e.SourceIn, SourceOut: e.SourceOut}
}

// Duration returns source out minus source in as a timecode.
func (e Edit) Duration(rate int) (string, error) {
	return SubtractTimecode(e.SourceOut, e.SourceIn, rate)
}

// ChangeType classifies one position of a comparison.
type ChangeType int

const (
	// ChangeUnchanged means the same reel and source range at this position.
	ChangeUnchanged ChangeType = iota
	// ChangeChanged means the same reel with a different source range.
	ChangeChanged
	// ChangeNew means an added position or a different reel in the same slot.
	ChangeNew
	// ChangeDeleted means the position exists only in the old EDL.
	ChangeDeleted
)

// String returns the lower case name of the change type.
func (c ChangeType) String() string {
	switch c {
	case ChangeUnchanged:
		return "unchanged"
	case ChangeChanged:
		return "changed"
	case ChangeNew:
		return "new"
	case ChangeDeleted:
		return "deleted"
	}
	return fmt.Sprintf("ChangeType(%d)", int(c))
}

// SanitizeReelName ensures a reel name conforms to EDL requirements.
// Reel names should be alphanumeric and not exceed the specified length.
// If maxLength is 0 or negative, no length limit is applied.
func SanitizeReelName(name string, maxLength int) string {
	// Replace spaces and special characters
	name = strings.Map(func(r rune) rune {
		if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' {
			return r
		}
		return '_'
	}, name)

	if maxLength > 0 && len(name) > maxLength {
		name = name[:maxLength]
	}

	if name == "" {
		name = "AX"
	}

	return name
}

// ParseError represents an error that occurred during EDL parsing.
type ParseError struct {
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

// TimecodeError reports a timecode that could not be interpreted.
type TimecodeError struct {
	Timecode string
	Message  string
}

func (e *TimecodeError) Error() string {
	return fmt.Sprintf("invalid timecode %q: %s", e.Timecode, e.Message)
}

// EncodeError represents an error that occurred during EDL encoding.
type EncodeError struct {
	Message string
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("encode error: %s", e.Message)
}
