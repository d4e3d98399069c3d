// Package ui provides terminal output for sprout: the animated frame display
// and the status lines printed by the subcommands.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/papapumpkin/sprout/internal/ansi"
	"github.com/papapumpkin/sprout/internal/catalog"
	"github.com/papapumpkin/sprout/internal/growth"
)

// Printer writes human-readable status output, optionally colored.
type Printer struct {
	w     io.Writer
	color bool
}

// New returns a Printer writing to w.
func New(w io.Writer, color bool) *Printer {
	return &Printer{w: w, color: color}
}

func (p *Printer) paint(code, s string) string {
	if !p.color {
		return s
	}
	return code + s + ansi.Reset
}

// Info prints a dimmed status line.
func (p *Printer) Info(msg string) {
	fmt.Fprintln(p.w, p.paint(ansi.Dim, msg))
}

// Varieties lists variety names, marking the one unknown names fall back to.
func (p *Printer) Varieties(names []string, fallback string) {
	for _, n := range names {
		if n == fallback {
			fmt.Fprintf(p.w, "%s %s\n", n, p.paint(ansi.Dim, "(default)"))
			continue
		}
		fmt.Fprintln(p.w, n)
	}
}

// VarietyPatterns prints every stage pattern of v, unplaced.
func (p *Printer) VarietyPatterns(v *catalog.Variety) {
	fmt.Fprintln(p.w, p.paint(ansi.Bold, v.Name))
	if v.Description != "" {
		fmt.Fprintln(p.w, p.paint(ansi.Dim, v.Description))
	}
	for _, s := range growth.Stages() {
		fmt.Fprintf(p.w, "  %s\n", p.paint(ansi.Yellow, s.Title()))
		for _, line := range v.Pattern(s) {
			fmt.Fprintf(p.w, "    %s\n", line)
		}
	}
	fmt.Fprintln(p.w)
}

// PackResult reports the outcome of validating a variety pack.
func (p *Printer) PackResult(source string, pack *catalog.Pack, err error) {
	if err != nil {
		fmt.Fprintf(p.w, "%s — %v\n", p.paint(ansi.Red+ansi.Bold, "✗ "+source), err)
		return
	}
	fmt.Fprintf(p.w, "%s — %d variety(ies)\n", p.paint(ansi.Green+ansi.Bold, "✓ "+source), len(pack.Varieties))
	for _, gap := range pack.Check() {
		names := make([]string, len(gap.Missing))
		for i, s := range gap.Missing {
			names[i] = s.String()
		}
		fmt.Fprintf(p.w, "  %s %s: no pattern for %s (drawn as %q)\n",
			p.paint(ansi.Yellow, "•"), gap.Variety, strings.Join(names, ", "), growth.Placeholder[0])
	}
}
