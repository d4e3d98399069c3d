package ui

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/papapumpkin/sprout/internal/ansi"
	"github.com/papapumpkin/sprout/internal/growth"
)

var (
	colorLeaf = lipgloss.Color("#00E676")
	colorSoil = lipgloss.Color("#8D6E63")

	styleStageHeader = lipgloss.NewStyle().Foreground(colorLeaf).Bold(true)
	styleRule        = lipgloss.NewStyle().Foreground(colorSoil)
)

// Terminal displays frames one at a time: it clears the screen, then prints
// a stage header, a rule, the frame, and a closing rule. It satisfies
// sequencer.Sink.
type Terminal struct {
	out   io.Writer
	width int
	color bool

	// Clear wipes the display before each frame. Defaults to ansi.Clear.
	Clear func(io.Writer)
}

// NewTerminal returns a Terminal whose rules span width columns. With color
// set, the header and rules are styled; frames are always printed as-is.
func NewTerminal(out io.Writer, width int, color bool) *Terminal {
	return &Terminal{out: out, width: width, color: color, Clear: ansi.Clear}
}

// WriteFrame clears the display and prints one stage.
func (t *Terminal) WriteFrame(stage growth.Stage, frame string) error {
	if t.Clear != nil {
		t.Clear(t.out)
	}

	rule := t.style(styleRule, strings.Repeat("=", max(t.width, 0)))

	var b strings.Builder
	b.WriteString(t.style(styleStageHeader, "Growth Stage: "+stage.Title()))
	b.WriteByte('\n')
	b.WriteString(rule)
	b.WriteByte('\n')
	b.WriteString(frame)
	b.WriteByte('\n')
	b.WriteString(rule)
	b.WriteByte('\n')

	_, err := io.WriteString(t.out, b.String())
	return err
}

// Finish implements sequencer.Sink. The terminal needs no final flush.
func (t *Terminal) Finish() error {
	return nil
}

func (t *Terminal) style(s lipgloss.Style, text string) string {
	if !t.color {
		return text
	}
	return s.Render(text)
}
