// Package ansi provides ANSI escape code constants and helpers for terminal output.
package ansi

import (
	"fmt"
	"io"
)

// ANSI SGR (Select Graphic Rendition) codes.
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	Yellow = "\033[33m"
	Green  = "\033[32m"
	Red    = "\033[31m"
)

// ANSI screen and cursor control codes.
const (
	// ClearScreen erases the whole display.
	ClearScreen = "\033[2J"

	// CursorHome moves the cursor to the top-left cell.
	CursorHome = "\033[H"
)

// Clear wipes the display behind w and homes the cursor.
func Clear(w io.Writer) {
	fmt.Fprint(w, CursorHome+ClearScreen)
}
