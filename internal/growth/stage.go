// Package growth defines the potato growth stages and the glyph patterns
// drawn for each of them.
package growth

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrUnknownStage is returned by ParseStage for names outside the enumeration.
var ErrUnknownStage = errors.New("unknown growth stage")

// Stage is one named point in the growth sequence. Declaration order is the
// animation order.
type Stage int

const (
	Seed Stage = iota
	Germination
	Sprouting
	Vegetative
	Flowering
	TuberFormation
	Maturity
)

var stageNames = [...]string{
	Seed:           "seed",
	Germination:    "germination",
	Sprouting:      "sprouting",
	Vegetative:     "vegetative",
	Flowering:      "flowering",
	TuberFormation: "tuber_formation",
	Maturity:       "maturity",
}

// Stages returns every stage in animation order. The returned slice is a
// fresh copy and may be modified by the caller.
func Stages() []Stage {
	out := make([]Stage, len(stageNames))
	for i := range stageNames {
		out[i] = Stage(i)
	}
	return out
}

// Valid reports whether s is one of the declared stages.
func (s Stage) Valid() bool {
	return s >= 0 && int(s) < len(stageNames)
}

// String returns the snake_case stage name, e.g. "tuber_formation".
func (s Stage) String() string {
	if !s.Valid() {
		return fmt.Sprintf("stage(%d)", int(s))
	}
	return stageNames[s]
}

// Title returns the stage name with the first letter of every alphabetic run
// upper-cased: "tuber_formation" becomes "Tuber_Formation".
func (s Stage) Title() string {
	return titleCase(s.String())
}

// ParseStage resolves a stage by name, ignoring case and surrounding space.
func ParseStage(name string) (Stage, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, n := range stageNames {
		if n == key {
			return Stage(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStage, name)
}

func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
			continue
		}
		b.WriteRune(r)
		prevLetter = false
	}
	return b.String()
}
