package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/mazecrawl/internal/gamedata"
	"github.com/samdwyer/mazecrawl/internal/world"
)

// smallGrid returns a 2x1 maze with the player and a monster on the two
// junctions and an open connector between them.
func smallGrid() *world.Grid {
	grid := world.NewGrid(2, 1)
	rows, cols := grid.Dimensions()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			grid.Set(x, y, world.TileWall)
		}
	}
	grid.Set(1, 1, world.TilePlayer)
	grid.Set(2, 1, world.TilePath)
	grid.Set(3, 1, world.TileMonster)
	return grid
}

func TestRender(t *testing.T) {
	want := "#######\n" +
		"#@  M #\n" +
		"#######\n"
	if got := Render(smallGrid()); got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
}

func TestCellText(t *testing.T) {
	tests := []struct {
		tile  world.Tile
		width int
		want  string
	}{
		{world.TileWall, 1, "#"},
		{world.TileWall, 2, "##"},
		{world.TilePath, 2, "  "},
		{world.TilePlayer, 2, "@ "},
		{world.TileMonster, 1, "M"},
	}

	for _, tt := range tests {
		if got := CellText(tt.tile, tt.width); got != tt.want {
			t.Errorf("CellText(%v, %d) = %q, want %q", tt.tile, tt.width, got, tt.want)
		}
	}
}

func TestKeyToken(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		ch   rune
		want string
	}{
		{tcell.KeyUp, 0, "w"},
		{tcell.KeyDown, 0, "s"},
		{tcell.KeyLeft, 0, "a"},
		{tcell.KeyRight, 0, "d"},
		{tcell.KeyEscape, 0, "exit"},
		{tcell.KeyRune, 'd', "d"},
		{tcell.KeyRune, 'q', "exit"},
		{tcell.KeyRune, 'x', "x"},
		{tcell.KeyTab, 0, ""},
	}

	for _, tt := range tests {
		ev := tcell.NewEventKey(tt.key, tt.ch, tcell.ModNone)
		if got := KeyToken(ev); got != tt.want {
			t.Errorf("KeyToken(%v, %q) = %q, want %q", tt.key, tt.ch, got, tt.want)
		}
	}
}

func TestRendererDrawsGrid(t *testing.T) {
	sim := tcell.NewSimulationScreen("")
	screen, err := NewScreenFrom(sim)
	if err != nil {
		t.Fatalf("NewScreenFrom() failed: %v", err)
	}
	defer screen.Close()

	palette, err := gamedata.LoadPalette()
	if err != nil {
		t.Fatal(err)
	}

	NewRenderer(screen, palette).Render(smallGrid(), "Life: 3")

	line := ""
	for x := 0; x < 7; x++ {
		r, _, _, _ := sim.GetContent(x, 1)
		line += string(r)
	}
	if line != "#@  M #" {
		t.Errorf("row 1 = %q, want %q", line, "#@  M #")
	}

	status := ""
	for x := 0; x < 7; x++ {
		r, _, _, _ := sim.GetContent(x, 4)
		status += string(r)
	}
	if status != "Life: 3" {
		t.Errorf("status line = %q, want %q", status, "Life: 3")
	}
}
