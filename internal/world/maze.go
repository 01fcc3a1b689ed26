package world

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/mazecrawl/internal/telemetry"
)

const (
	// Default maze dimensions, in junctions
	DefaultWidth  = 10
	DefaultHeight = 10

	// DefaultDensity is the default probability that a candidate cell is a wall.
	DefaultDensity = 0.5
)

var (
	// ErrInvalidDimensions is returned when width or height is below 1.
	ErrInvalidDimensions = errors.New("maze dimensions must be at least 1x1")
	// ErrInvalidDensity is returned when density lies outside [0,1].
	ErrInvalidDensity = errors.New("wall density must be within [0,1]")
)

// Generator builds mazes with the odd/even row scheme.
//
// Odd rows are junction rows: a Path at every odd column, with the even
// columns between them walled with probability Density. Even rows are
// connector rows: the odd columns are walled with probability Density and
// the even columns are always Wall. The outer ring is always Wall.
// Connectivity between junctions is not guaranteed.
type Generator struct {
	Width   int
	Height  int
	Density float64
	rng     *rand.Rand
}

// NewGenerator validates the parameters and returns a generator drawing from rng.
func NewGenerator(width, height int, density float64, rng *rand.Rand) (*Generator, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, width, height)
	}
	if math.IsNaN(density) || density < 0 || density > 1 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidDensity, density)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{
		Width:   width,
		Height:  height,
		Density: density,
		rng:     rng,
	}, nil
}

// Generate validates the parameters and builds a maze in one call.
func Generate(ctx context.Context, width, height int, density float64, rng *rand.Rand) (*Grid, error) {
	gen, err := NewGenerator(width, height, density, rng)
	if err != nil {
		return nil, err
	}
	return gen.Generate(ctx), nil
}

// Generate builds a new grid.
func (gen *Generator) Generate(ctx context.Context) *Grid {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "maze.generate")
	defer span.End()

	startTime := time.Now()

	grid := NewGrid(gen.Width, gen.Height)
	rows, _ := grid.Dimensions()

	grid.Tiles[0] = gen.fullRow()
	y := 1
	for i := 0; i < gen.Height-1; i++ {
		grid.Tiles[y] = gen.junctionRow()
		grid.Tiles[y+1] = gen.connectorRow()
		y += 2
	}
	grid.Tiles[y] = gen.junctionRow()
	grid.Tiles[rows-1] = gen.fullRow()

	span.SetAttributes(
		attribute.Int("maze.width", gen.Width),
		attribute.Int("maze.height", gen.Height),
		attribute.Float64("maze.density", gen.Density),
		attribute.Int("maze.wall_count", grid.Count(TileWall)),
		attribute.Int("maze.path_count", grid.Count(TilePath)),
		attribute.Int64("maze.generation_ms", time.Since(startTime).Milliseconds()),
	)

	return grid
}

// fullRow returns a row made entirely of walls.
func (gen *Generator) fullRow() []Tile {
	row := make([]Tile, 0, 2*gen.Width+1)
	for i := 0; i < 2*gen.Width+1; i++ {
		row = append(row, TileWall)
	}
	return row
}

// junctionRow returns an odd row: Wall, then Path/candidate pairs, closed by Path, Wall.
func (gen *Generator) junctionRow() []Tile {
	row := make([]Tile, 0, 2*gen.Width+1)
	row = append(row, TileWall)
	for i := 0; i < gen.Width-1; i++ {
		row = append(row, TilePath, gen.candidate())
	}
	return append(row, TilePath, TileWall)
}

// connectorRow returns an even row: Wall, then candidate/Wall pairs.
func (gen *Generator) connectorRow() []Tile {
	row := make([]Tile, 0, 2*gen.Width+1)
	row = append(row, TileWall)
	for i := 0; i < gen.Width; i++ {
		row = append(row, gen.candidate(), TileWall)
	}
	return row
}

// candidate draws one Bernoulli(Density) cell.
func (gen *Generator) candidate() Tile {
	if gen.rng.Float64() < gen.Density {
		return TileWall
	}
	return TilePath
}

// IsCandidate returns true if (x, y) is a density-randomized cell of a
// generated grid: an even interior column on a junction row, or an odd
// column on a connector row.
func (g *Grid) IsCandidate(x, y int) bool {
	rows, cols := g.Dimensions()
	if x <= 0 || y <= 0 || x >= cols-1 || y >= rows-1 {
		return false
	}
	if y%2 == 1 {
		return x%2 == 0
	}
	return x%2 == 1
}
