// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package cmx3600

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

// Decoder reads CMX 3600 EDL format and produces a list of edits in file order.
type Decoder struct {
	r      io.Reader
	rate   int
	strict bool
}

// NewDecoder creates a new EDL decoder.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{
		r:    r,
		rate: DefaultRate,
	}
}

// SetRate sets the frame rate for timecode interpretation.
// Decode fails with ErrInvalidRate if rate is not positive.
func (d *Decoder) SetRate(rate int) {
	d.rate = rate
}

// SetStrict sets whether event timecodes are validated while decoding.
// When false (the default) timecodes are kept as text and only
// interpreted when edits are compared.
func (d *Decoder) SetStrict(strict bool) {
	d.strict = strict
}

// eventLineRegex matches the start of an event line: an event number of 3+ digits.
// Format: EVENT# REEL TRACK EDIT_TYPE SOURCE_IN SOURCE_OUT RECORD_IN RECORD_OUT
var eventLineRegex = regexp.MustCompile(`^\d{3,}`)

// clipNameRegex matches a clip name comment.
var clipNameRegex = regexp.MustCompile(`\* FROM CLIP NAME: (.+)`)

// maxLineLength bounds a single EDL line; comments and vendor metadata
// can run well past bufio's 64 KiB default.
const maxLineLength = 16 * 1024 * 1024

// ReadFile decodes the EDL at path. See SetStrict for strict.
func ReadFile(path string, rate int, strict bool) ([]Edit, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	decoder := NewDecoder(f)
	decoder.SetRate(rate)
	decoder.SetStrict(strict)

	edits, err := decoder.Decode()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return edits, nil
}

// Decode reads the EDL and returns its edits.
func (d *Decoder) Decode() ([]Edit, error) {
	if err := checkRate(d.rate); err != nil {
		return nil, err
	}

	scanner := bufio.NewScanner(d.r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	scanner.Split(scanLines)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	var edits []Edit
	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if !eventLineRegex.MatchString(line) {
			continue
		}

		// Short event lines are tolerated and skipped
		fields := strings.Fields(line)
		if len(fields) < 8 {
			continue
		}

		edit := Edit{
			EventNumber: fields[0],
			ReelName:    fields[1],
			TrackType:   TrackType(fields[2]),
			EditType:    EditType(fields[3]),
			SourceIn:    fields[4],
			SourceOut:   fields[5],
			RecordIn:    fields[6],
			RecordOut:   fields[7],
		}

		if d.strict {
			if err := d.validate(edit, i+1); err != nil {
				return nil, err
			}
		}

		// The clip name comment is looked up on the next line without consuming it
		if i+1 < len(lines) {
			next := strings.TrimSpace(lines[i+1])
			if matches := clipNameRegex.FindStringSubmatch(next); matches != nil {
				edit.ClipName = matches[1]
			}
		}

		edits = append(edits, edit)
	}

	return edits, nil
}

func (d *Decoder) validate(edit Edit, lineNum int) error {
	for _, tc := range []string{edit.SourceIn, edit.SourceOut, edit.RecordIn, edit.RecordOut} {
		if err := ValidateTimecode(tc, d.rate); err != nil {
			return &ParseError{
				Line:    lineNum,
				Message: fmt.Sprintf("event %s: %v", edit.EventNumber, err),
			}
		}
	}
	return nil
}

// scanLines is a bufio.SplitFunc that ends lines at "\r\n", "\n" or a lone "\r",
// so EDLs saved with classic Mac line endings split the same way.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		// Need the next byte to tell "\r\n" from a lone "\r"
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if atEOF {
			return i + 1, data[:i], nil
		}
		return 0, nil, nil
	}

	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
