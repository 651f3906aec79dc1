// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package cmx3600

import (
	"fmt"
	"io"
)

// Encoder writes edits to CMX 3600 EDL format.
// Each event is written on a single line so the output decodes with Decoder.
type Encoder struct {
	w           io.Writer
	title       string
	reelNameLen int
}

// NewEncoder creates a new EDL encoder.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{
		w:     w,
		title: "Timeline",
	}
}

// SetTitle sets the TITLE line.
func (e *Encoder) SetTitle(title string) {
	e.title = title
}

// SetReelNameLength sanitizes reel names and limits them to length characters.
// Use 0 or negative to write reel names unchanged.
func (e *Encoder) SetReelNameLength(length int) {
	e.reelNameLen = length
}

// Encode writes the edits as an EDL, numbering events from 001.
func (e *Encoder) Encode(edits []Edit) error {
	if err := e.writeHeader(); err != nil {
		return err
	}

	for i, edit := range edits {
		if edit.ReelName == "" {
			return &EncodeError{Message: fmt.Sprintf("event %d has no reel name", i+1)}
		}
		if err := e.writeEvent(i+1, edit); err != nil {
			return err
		}
	}

	return nil
}

// ChangeEDL returns the edits of the reportable changes, in order.
func ChangeEDL(changes []Change) []Edit {
	var edits []Edit
	for _, c := range changes {
		if !c.Reportable() {
			continue
		}
		if edit := c.DisplayEdit(); edit != nil {
			edits = append(edits, *edit)
		}
	}
	return edits
}

// writeHeader writes the EDL header.
func (e *Encoder) writeHeader() error {
	_, err := fmt.Fprintf(e.w, "TITLE: %s\n", e.title)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(e.w, "FCM: NON-DROP FRAME\n\n")
	return err
}

// writeEvent writes a single EDL event.
func (e *Encoder) writeEvent(eventNumber int, edit Edit) error {
	reelName := edit.ReelName
	if e.reelNameLen > 0 {
		reelName = SanitizeReelName(reelName, e.reelNameLen)
	}

	trackType := edit.TrackType
	if trackType == "" {
		trackType = TrackTypeVideo
	}
	editType := edit.EditType
	if editType == "" {
		editType = EditTypeCut
	}

	_, err := fmt.Fprintf(e.w, "%03d  %-8s %-5s %-2s       %s %s %s %s\n",
		eventNumber,
		reelName,
		trackType,
		editType,
		edit.SourceIn,
		edit.SourceOut,
		edit.RecordIn,
		edit.RecordOut,
	)
	if err != nil {
		return err
	}

	if edit.ClipName != "" {
		_, err = fmt.Fprintf(e.w, "* FROM CLIP NAME: %s\n", edit.ClipName)
		if err != nil {
			return err
		}
	}

	_, err = fmt.Fprintf(e.w, "\n")
	return err
}
