package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/mazecrawl/internal/gamedata"
	"github.com/samdwyer/mazecrawl/internal/world"
)

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen  *Screen
	palette gamedata.Palette
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, palette gamedata.Palette) *Renderer {
	return &Renderer{screen: screen, palette: palette}
}

// Render draws the maze with the status lines below it, using the same
// column layout as the text renderer.
func (r *Renderer) Render(grid *world.Grid, status ...string) {
	r.screen.Clear()

	for y, row := range grid.Tiles {
		sx := 0
		for x, tile := range row {
			def := r.palette.StyleFor(tile.String())
			style := def.Style()
			width := ColumnWidth(x)
			glyph := def.GlyphRune()
			for i := 0; i < width; i++ {
				ch := ' '
				if i == 0 || tile == world.TileWall {
					ch = glyph
				}
				r.screen.SetContent(sx+i, y, ch, style)
			}
			sx += width
		}
	}

	rows, _ := grid.Dimensions()
	for i, line := range status {
		r.RenderMessage(line, rows+1+i)
	}

	r.screen.Show()
}

// RenderMessage displays a message on line y.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range msg {
		r.screen.SetContent(i, y, ch, style)
	}
}
