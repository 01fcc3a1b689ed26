// Package entity provides the player and monsters that occupy the maze.
package entity

import (
	"github.com/google/uuid"

	"github.com/samdwyer/mazecrawl/internal/combat"
	"github.com/samdwyer/mazecrawl/internal/world"
)

// PlayerID identifies the single player entity.
const PlayerID = "player"

// Entity is a grid occupant. Player and monsters share this shape and differ
// only in Kind, the tile written to the grid under them.
type Entity struct {
	ID      string     // "player" or a generated monster ID
	Name    string     // Display name
	Kind    world.Tile // TilePlayer or TileMonster
	X, Y    int        // Position in grid coordinates (column, row)
	Life    int        // Current life, may drop below zero
	MaxLife int        // Starting life
}

// NewPlayer creates the player at the given position.
func NewPlayer(x, y, life int) *Entity {
	return &Entity{
		ID:      PlayerID,
		Name:    "Player",
		Kind:    world.TilePlayer,
		X:       x,
		Y:       y,
		Life:    life,
		MaxLife: life,
	}
}

// NewMonster creates a monster with a fresh identity at the given position.
func NewMonster(x, y, life int) *Entity {
	return &Entity{
		ID:      uuid.NewString(),
		Name:    "Monster",
		Kind:    world.TileMonster,
		X:       x,
		Y:       y,
		Life:    life,
		MaxLife: life,
	}
}

// Point returns the entity's position as a grid point.
func (e *Entity) Point() world.Point {
	return world.Point{X: e.X, Y: e.Y}
}

// Place puts the entity at (x, y) and marks the cell with its kind.
func (e *Entity) Place(grid *world.Grid, x, y int) {
	e.X = x
	e.Y = y
	grid.Set(x, y, e.Kind)
}

// =============================================================================
// Combatant interface implementation
// =============================================================================

// GetName returns the entity's name.
func (e *Entity) GetName() string { return e.Name }

// GetLife returns current life.
func (e *Entity) GetLife() int { return e.Life }

// IsAlive returns true if the entity has life remaining.
func (e *Entity) IsAlive() bool { return e.Life > 0 }

// GetsHit removes exactly one point of life. No lower bound is enforced.
func (e *Entity) GetsHit() { e.Life-- }

// Ensure Entity implements combat.Combatant
var _ combat.Combatant = (*Entity)(nil)
