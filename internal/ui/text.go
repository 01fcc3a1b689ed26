// Package ui renders the maze as text and drives the tcell terminal frontend.
package ui

import (
	"strings"

	"github.com/samdwyer/mazecrawl/internal/world"
)

// ColumnWidth returns how many characters column x occupies. Junction
// columns (odd) are two wide, wall columns one.
func ColumnWidth(x int) int {
	if x%2 == 1 {
		return 2
	}
	return 1
}

// CellText renders one tile at the given width. Walls fill the width with
// '#'; every other tile is its glyph padded with spaces.
func CellText(tile world.Tile, width int) string {
	if tile == world.TileWall {
		return strings.Repeat("#", width)
	}
	return string(tile.Rune()) + strings.Repeat(" ", width-1)
}

// Render returns the grid as a block of text, one line per row.
func Render(grid *world.Grid) string {
	var b strings.Builder
	for _, row := range grid.Tiles {
		for x, tile := range row {
			b.WriteString(CellText(tile, ColumnWidth(x)))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
