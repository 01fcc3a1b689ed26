// Package world provides the maze grid and its generator.
package world

// Tile represents the contents of a single grid cell.
type Tile int

const (
	// TileUndefined is the zero value; a generated grid never contains it.
	TileUndefined Tile = iota
	// TilePath is a walkable corridor tile.
	TilePath
	// TileWall is an impassable wall tile.
	TileWall
	// TilePlayer marks the cell the player stands on.
	TilePlayer
	// TileMonster marks a cell held by a monster.
	TileMonster
)

// String returns a human-readable tile name.
func (t Tile) String() string {
	switch t {
	case TilePath:
		return "path"
	case TileWall:
		return "wall"
	case TilePlayer:
		return "player"
	case TileMonster:
		return "monster"
	default:
		return "undefined"
	}
}

// IsPassable returns true if an entity can move onto the tile.
func (t Tile) IsPassable() bool {
	return t == TilePath
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	switch t {
	case TilePath:
		return ' '
	case TileWall:
		return '#'
	case TilePlayer:
		return '@'
	case TileMonster:
		return 'M'
	default:
		return '?'
	}
}
