package world

import "fmt"

// Grid is the tile matrix of a maze of Width x Height junctions.
// It holds 2*Height+1 rows of 2*Width+1 tiles, addressed as (x, y) with x
// the column and y the row.
type Grid struct {
	Width  int
	Height int
	Tiles  [][]Tile
}

// Point is a grid coordinate.
type Point struct {
	X, Y int
}

// NewGrid creates a grid for a width x height maze with every tile Undefined.
func NewGrid(width, height int) *Grid {
	rows, cols := 2*height+1, 2*width+1
	tiles := make([][]Tile, rows)
	for y := range tiles {
		tiles[y] = make([]Tile, cols)
	}
	return &Grid{
		Width:  width,
		Height: height,
		Tiles:  tiles,
	}
}

// Dimensions returns the number of rows and columns in the grid.
func (g *Grid) Dimensions() (rows, cols int) {
	return 2*g.Height + 1, 2*g.Width + 1
}

// InBounds returns true if (x, y) addresses a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	rows, cols := g.Dimensions()
	return x >= 0 && x <= cols-1 && y >= 0 && y <= rows-1
}

// Get returns the tile at (x, y). It panics if the cell is out of bounds.
func (g *Grid) Get(x, y int) Tile {
	g.mustBeInBounds(x, y)
	return g.Tiles[y][x]
}

// Set writes the tile at (x, y). It panics if the cell is out of bounds.
func (g *Grid) Set(x, y int, t Tile) {
	g.mustBeInBounds(x, y)
	g.Tiles[y][x] = t
}

func (g *Grid) mustBeInBounds(x, y int) {
	if !g.InBounds(x, y) {
		rows, cols := g.Dimensions()
		panic(fmt.Sprintf("world: cell (%d,%d) outside %dx%d grid", x, y, cols, rows))
	}
}

// Count returns how many cells hold the given tile.
func (g *Grid) Count(t Tile) int {
	n := 0
	for _, row := range g.Tiles {
		for _, tile := range row {
			if tile == t {
				n++
			}
		}
	}
	return n
}

// FreeCells returns every Path cell in row-major order.
func (g *Grid) FreeCells() []Point {
	var cells []Point
	for y, row := range g.Tiles {
		for x, tile := range row {
			if tile == TilePath {
				cells = append(cells, Point{X: x, Y: y})
			}
		}
	}
	return cells
}
