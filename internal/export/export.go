// Package export writes the whole growth animation to a flat text document.
package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/papapumpkin/sprout/internal/growth"
)

// DefaultPath is used when no output file is configured.
const DefaultPath = "potato_growth.txt"

// Title heads every exported document.
const Title = "Potato Growth Animation"

const (
	titleRuleWidth = 50
	stageRuleWidth = 30
)

// Document accumulates frames in memory and writes them to Path in a single
// write when the run finishes. It satisfies sequencer.Sink.
type Document struct {
	Path string

	buf    strings.Builder
	frames int
}

// NewDocument returns a Document bound to path, or DefaultPath when path is
// empty. The header is buffered immediately.
func NewDocument(path string) *Document {
	if path == "" {
		path = DefaultPath
	}
	d := &Document{Path: path}
	d.buf.WriteString(Title + "\n")
	d.buf.WriteString(strings.Repeat("=", titleRuleWidth) + "\n\n")
	return d
}

// WriteFrame appends one stage section.
func (d *Document) WriteFrame(stage growth.Stage, frame string) error {
	fmt.Fprintf(&d.buf, "Stage: %s\n", stage.Title())
	d.buf.WriteString(strings.Repeat("-", stageRuleWidth) + "\n")
	d.buf.WriteString(frame)
	d.buf.WriteString("\n\n")
	d.frames++
	return nil
}

// Finish writes the document, replacing any existing file at Path.
func (d *Document) Finish() error {
	if err := os.WriteFile(d.Path, []byte(d.buf.String()), 0o644); err != nil {
		return fmt.Errorf("export: write %s: %w", d.Path, err)
	}
	return nil
}

// String returns the document as it would be written.
func (d *Document) String() string {
	return d.buf.String()
}

// Len returns the document size in bytes.
func (d *Document) Len() int {
	return d.buf.Len()
}

// Frames returns the number of stage sections written so far.
func (d *Document) Frames() int {
	return d.frames
}
