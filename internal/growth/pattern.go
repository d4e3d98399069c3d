package growth

import (
	"strings"
	"unicode/utf8"
)

// AboveGroundGlyphs is the fixed set of flower, stem, and leaf glyphs. A
// pattern line containing any of them is drawn above the soil. Glyphs outside
// this set are treated as underground.
const AboveGroundGlyphs = "❀✿❋✾\\|/─━┬┼╷│║┃┏┓╔╗╭╮"

// Placeholder is drawn for a stage that has no pattern.
var Placeholder = Pattern{"?"}

// Pattern is one frame's plant drawing, top line first. Lines may be ragged.
type Pattern []string

// Width returns the longest line length in runes.
func (p Pattern) Width() int {
	w := 0
	for _, line := range p {
		if n := utf8.RuneCountInString(line); n > w {
			w = n
		}
	}
	return w
}

// AboveGround counts the leading lines that contain at least one glyph from
// AboveGroundGlyphs. Counting stops at the first line without one.
func (p Pattern) AboveGround() int {
	n := 0
	for _, line := range p {
		if !strings.ContainsAny(line, AboveGroundGlyphs) {
			break
		}
		n++
	}
	return n
}

// Empty reports whether the pattern has no lines.
func (p Pattern) Empty() bool {
	return len(p) == 0
}

// Clone returns a copy that shares no backing array with p.
func (p Pattern) Clone() Pattern {
	if p == nil {
		return nil
	}
	out := make(Pattern, len(p))
	copy(out, p)
	return out
}
