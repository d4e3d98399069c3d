// Package compositor draws one animation frame: a soil background with a
// growth pattern overlaid on it.
package compositor

import (
	"strings"
	"unicode/utf8"

	"github.com/papapumpkin/sprout/internal/growth"
)

// SoilDepth is how far above the bottom edge the soil surface sits.
const SoilDepth = 8

// topsoilRows is the number of rows under the surface drawn with the topsoil
// palette before the subsoil palette takes over.
const topsoilRows = 2

var (
	topsoil = [3]rune{'▒', '░', '▓'}
	subsoil = [3]rune{'█', '▓', '▒'}
)

// Boundary returns the soil surface row for a canvas of the given height. It
// may be negative on very short canvases, in which case every row is soil.
func Boundary(height int) int {
	return height - SoilDepth
}

// Render composes p onto a width x height soil canvas and returns the rows
// joined by newlines. Every row is exactly width runes. Pattern cells that
// fall outside the canvas are dropped. Non-positive dimensions yield "".
func Render(p growth.Pattern, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	canvas := soil(width, height)
	overlay(canvas, p, width, Boundary(height))

	var sb strings.Builder
	sb.Grow(height * (width*3 + 1))
	for i, row := range canvas {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(row))
	}
	return sb.String()
}

// soil builds the background grid: blank sky, a surface row alternating
// between '~' and '-', then two dithered soil layers.
func soil(width, height int) [][]rune {
	boundary := Boundary(height)
	canvas := make([][]rune, height)
	for row := range canvas {
		line := make([]rune, width)
		for col := range line {
			switch {
			case row < boundary:
				line[col] = ' '
			case row == boundary:
				if col%2 == 0 {
					line[col] = '~'
				} else {
					line[col] = '-'
				}
			case row <= boundary+topsoilRows:
				line[col] = topsoil[(col+row)%3]
			default:
				line[col] = subsoil[(col+row*2)%3]
			}
		}
		canvas[row] = line
	}
	return canvas
}

// overlay writes the non-space runes of p onto canvas. The block is centered
// horizontally and each line is centered within the block. Above-ground lines
// end on the row just above the boundary, so the first underground line lands
// on the boundary itself.
func overlay(canvas [][]rune, p growth.Pattern, width, boundary int) {
	if p.Empty() {
		return
	}

	blockWidth := p.Width()
	startCol := width/2 - blockWidth/2
	startRow := boundary - p.AboveGround()

	for i, line := range p {
		row := startRow + i
		if row < 0 || row >= len(canvas) {
			continue
		}
		col := startCol + (blockWidth-utf8.RuneCountInString(line))/2
		for _, r := range line {
			if r != ' ' && col >= 0 && col < width {
				canvas[row][col] = r
			}
			col++
		}
	}
}
