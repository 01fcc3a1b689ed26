package entity

import "github.com/samdwyer/mazecrawl/internal/world"

// MoveResult reports an attempted move.
type MoveResult struct {
	Dest  world.Point // Attempted destination
	Tile  world.Tile  // Destination tile before the move
	Moved bool        // True if the entity changed position
}

// MoveTo attempts to move the entity to (x, y).
//
// Only a Path destination is entered: the old cell becomes Path and the new
// cell takes the entity's kind. Any other destination is a collision and
// leaves the grid untouched. An out-of-bounds destination is a no-op whose
// reported Tile is the entity's own kind.
func (e *Entity) MoveTo(grid *world.Grid, x, y int) MoveResult {
	result := MoveResult{Dest: world.Point{X: x, Y: y}}

	if !grid.InBounds(x, y) {
		result.Tile = e.Kind
		return result
	}

	result.Tile = grid.Get(x, y)
	if !result.Tile.IsPassable() {
		return result
	}

	grid.Set(e.X, e.Y, world.TilePath)
	e.X = x
	e.Y = y
	grid.Set(x, y, e.Kind)
	result.Moved = true
	return result
}

// Move attempts to move the entity by the given delta.
func (e *Entity) Move(grid *world.Grid, dx, dy int) MoveResult {
	return e.MoveTo(grid, e.X+dx, e.Y+dy)
}

// MoveUp attempts to move one row up.
func (e *Entity) MoveUp(grid *world.Grid) MoveResult { return e.Move(grid, 0, -1) }

// MoveDown attempts to move one row down.
func (e *Entity) MoveDown(grid *world.Grid) MoveResult { return e.Move(grid, 0, 1) }

// MoveLeft attempts to move one column left.
func (e *Entity) MoveLeft(grid *world.Grid) MoveResult { return e.Move(grid, -1, 0) }

// MoveRight attempts to move one column right.
func (e *Entity) MoveRight(grid *world.Grid) MoveResult { return e.Move(grid, 1, 0) }
