// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package cmx3600

import "fmt"

// TrimAction describes how one edge of a clip moved.
type TrimAction string

const (
	// TrimExtended means more source material is used at that edge.
	TrimExtended TrimAction = "extended"
	// TrimTrimmed means less source material is used at that edge.
	TrimTrimmed TrimAction = "trimmed"
)

// EdgeChange records a moved head or tail.
type EdgeChange struct {
	Action TrimAction
	From   string // Old source timecode
	To     string // New source timecode
}

// TrimDetail describes how a clip on the same reel changed.
type TrimDetail struct {
	TimeDiffFrames  int // NewLengthFrames - OldLengthFrames
	OldLengthFrames int // Old record duration
	NewLengthFrames int // New record duration
	OldSourceIn     string
	NewSourceIn     string
	OldSourceOut    string
	NewSourceOut    string
	Head            *EdgeChange // nil when the source in did not move
	Tail            *EdgeChange // nil when the source out did not move
}

// Change is the comparison result for one position.
// Description is set for ChangeNew and Trim for ChangeChanged.
type Change struct {
	Type        ChangeType
	Old         *Edit
	New         *Edit
	Description string
	Trim        *TrimDetail
}

// Reportable reports whether the change appears in a change list.
// Deleted positions are never reported.
func (c Change) Reportable() bool {
	return c.Type == ChangeNew || c.Type == ChangeChanged
}

// DisplayEdit returns the edit a change list shows: the new edit, or the old one.
func (c Change) DisplayEdit() *Edit {
	if c.New != nil {
		return c.New
	}
	return c.Old
}

const clipAdded = "Clip added"

// Compare aligns oldEdits and newEdits by position and classifies each index.
// The result has one entry per index up to the longer of the two lists.
func Compare(oldEdits, newEdits []Edit, rate int) ([]Change, error) {
	if err := checkRate(rate); err != nil {
		return nil, err
	}

	n := max(len(oldEdits), len(newEdits))
	changes := make([]Change, 0, n)

	for i := 0; i < n; i++ {
		var oldEdit, newEdit *Edit
		if i < len(oldEdits) {
			oldEdit = &oldEdits[i]
		}
		if i < len(newEdits) {
			newEdit = &newEdits[i]
		}

		switch {
		case oldEdit == nil:
			changes = append(changes, Change{Type: ChangeNew, New: newEdit, Description: clipAdded})
		case newEdit == nil:
			changes = append(changes, Change{Type: ChangeDeleted, Old: oldEdit})
		case oldEdit.ReelName != newEdit.ReelName:
			// A different reel in the same slot is a replacement clip
			changes = append(changes, Change{Type: ChangeNew, Old: oldEdit, New: newEdit, Description: clipAdded})
		case oldEdit.SourceIn == newEdit.SourceIn && oldEdit.SourceOut == newEdit.SourceOut:
			changes = append(changes, Change{Type: ChangeUnchanged, Old: oldEdit, New: newEdit})
		default:
			trim, err := ComputeTrim(*oldEdit, *newEdit, rate)
			if err != nil {
				return nil, fmt.Errorf("event %s: %w", newEdit.EventNumber, err)
			}
			changes = append(changes, Change{Type: ChangeChanged, Old: oldEdit, New: newEdit, Trim: trim})
		}
	}

	return changes, nil
}

// ComputeTrim measures how newEdit differs from oldEdit in source and record time.
func ComputeTrim(oldEdit, newEdit Edit, rate int) (*TrimDetail, error) {
	var frames [8]int
	fields := []struct {
		name string
		tc   string
	}{
		{"old source in", oldEdit.SourceIn},
		{"old source out", oldEdit.SourceOut},
		{"new source in", newEdit.SourceIn},
		{"new source out", newEdit.SourceOut},
		{"old record in", oldEdit.RecordIn},
		{"old record out", oldEdit.RecordOut},
		{"new record in", newEdit.RecordIn},
		{"new record out", newEdit.RecordOut},
	}
	for i, field := range fields {
		v, err := ParseTimecode(field.tc, rate)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", field.name, err)
		}
		frames[i] = v
	}
	oldSrcIn, oldSrcOut, newSrcIn, newSrcOut := frames[0], frames[1], frames[2], frames[3]
	oldRecIn, oldRecOut, newRecIn, newRecOut := frames[4], frames[5], frames[6], frames[7]

	oldLength := oldRecOut - oldRecIn
	newLength := newRecOut - newRecIn

	detail := &TrimDetail{
		TimeDiffFrames:  newLength - oldLength,
		OldLengthFrames: oldLength,
		NewLengthFrames: newLength,
		OldSourceIn:     oldEdit.SourceIn,
		NewSourceIn:     newEdit.SourceIn,
		OldSourceOut:    oldEdit.SourceOut,
		NewSourceOut:    newEdit.SourceOut,
	}

	// An earlier source in reveals more of the head
	if headDiff := newSrcIn - oldSrcIn; headDiff != 0 {
		action := TrimTrimmed
		if headDiff < 0 {
			action = TrimExtended
		}
		detail.Head = &EdgeChange{Action: action, From: oldEdit.SourceIn, To: newEdit.SourceIn}
	}

	if tailDiff := newSrcOut - oldSrcOut; tailDiff != 0 {
		action := TrimTrimmed
		if tailDiff > 0 {
			action = TrimExtended
		}
		detail.Tail = &EdgeChange{Action: action, From: oldEdit.SourceOut, To: newEdit.SourceOut}
	}

	return detail, nil
}
