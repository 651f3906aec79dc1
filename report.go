// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package cmx3600

import (
	"io"

	"github.com/fumiama/go-docx"
)

// Marker colors for the Word report, matching the change list color words.
var reportColors = map[ChangeType]string{
	ChangeNew:     "FF00FF",
	ChangeChanged: "FFC000",
}

// WriteDocxReport writes the reportable changes as a Word document,
// one paragraph per change.
func WriteDocxReport(w io.Writer, changes []Change, rate int, title string) error {
	if err := checkRate(rate); err != nil {
		return err
	}

	doc := docx.New().WithDefaultTheme()

	doc.AddParagraph().AddText(title).Bold().Size("32")

	written := 0
	for _, c := range changes {
		if !c.Reportable() {
			continue
		}
		edit := c.DisplayEdit()
		if edit == nil {
			continue
		}

		label, _ := changeStyle(c.Type)
		p := doc.AddParagraph()
		p.AddText(label).Bold().Color(reportColors[c.Type])
		p.AddText("  " + edit.RecordIn + "  ")
		p.AddText(Describe(c, rate))
		written++
	}

	if written == 0 {
		doc.AddParagraph().AddText("No changes")
	}

	_, err := doc.WriteTo(w)
	return err
}
