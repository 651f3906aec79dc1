// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package cmx3600

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ChangeListEncoder writes changes as a tab-separated change list,
// one line per added or modified clip:
//
//	<Label>\t<RecordIn>\tTC\t<Color>\t<Description>\t1
type ChangeListEncoder struct {
	w    io.Writer
	rate int
}

// NewChangeListEncoder creates a new change list encoder.
func NewChangeListEncoder(w io.Writer) *ChangeListEncoder {
	return &ChangeListEncoder{
		w:    w,
		rate: DefaultRate,
	}
}

// SetRate sets the frame rate used to describe clip lengths.
// Encode fails with ErrInvalidRate if rate is not positive.
func (e *ChangeListEncoder) SetRate(rate int) {
	e.rate = rate
}

// Encode writes every reportable change. Unchanged and deleted positions are skipped.
func (e *ChangeListEncoder) Encode(changes []Change) error {
	if err := checkRate(e.rate); err != nil {
		return err
	}

	for _, c := range changes {
		if !c.Reportable() {
			continue
		}

		edit := c.DisplayEdit()
		if edit == nil {
			return &EncodeError{Message: fmt.Sprintf("%s change has no edit", c.Type)}
		}

		label, color := changeStyle(c.Type)
		_, err := fmt.Fprintf(e.w, "%s\t%s\tTC\t%s\t%s\t1\n",
			label,
			edit.RecordIn,
			color,
			Describe(c, e.rate),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteChangeListFile writes the change list to path, replacing any existing file.
func WriteChangeListFile(path string, changes []Change, rate int) error {
	if err := checkRate(rate); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(f)
	encoder := NewChangeListEncoder(w)
	encoder.SetRate(rate)

	if err := encoder.Encode(changes); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// changeStyle returns the change list label and marker color for t.
func changeStyle(t ChangeType) (label, color string) {
	switch t {
	case ChangeNew:
		return "New", "magenta"
	case ChangeChanged:
		return "Changed", "yellow"
	}
	return "", ""
}

// Describe returns the change list description of a reportable change.
// rate must be positive.
func Describe(c Change, rate int) string {
	edit := c.DisplayEdit()
	clipName := ""
	if edit != nil {
		clipName = edit.ClipName
	}

	if c.Type == ChangeNew {
		return "Clip added (" + clipName + ")"
	}

	var trim TrimDetail
	if c.Trim != nil {
		trim = *c.Trim
	}

	var b strings.Builder
	if trim.TimeDiffFrames == 0 {
		b.WriteString("No time difference. Shifted within itself. ")
	} else {
		fmt.Fprintf(&b, "Time difference %d frames  [%d frames].", trim.TimeDiffFrames, trim.TimeDiffFrames)
	}

	if trim.Head != nil {
		fmt.Fprintf(&b, " HEAD %s from %s to %s.", trim.Head.Action, trim.Head.From, trim.Head.To)
	}
	if trim.Tail != nil {
		fmt.Fprintf(&b, " TAIL %s from %s to %s.", trim.Tail.Action, trim.Tail.From, trim.Tail.To)
	}

	if trim.TimeDiffFrames != 0 {
		fmt.Fprintf(&b, " Old length: %s [%d frames] - New length: %s [%d frames]",
			FramesToDescription(trim.OldLengthFrames, rate), trim.OldLengthFrames,
			FramesToDescription(trim.NewLengthFrames, rate), trim.NewLengthFrames,
		)
	}

	b.WriteString(" (" + clipName + ")")
	return b.String()
}
