package entity

import (
	"testing"

	"github.com/samdwyer/mazecrawl/internal/world"
)

// corridor builds a 3x1 maze: a single open row between walls.
//
//	#######
//	#     #
//	#######
func corridor() *world.Grid {
	grid := world.NewGrid(3, 1)
	rows, cols := grid.Dimensions()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			tile := world.TileWall
			if y == 1 && x > 0 && x < cols-1 {
				tile = world.TilePath
			}
			grid.Set(x, y, tile)
		}
	}
	return grid
}

func snapshot(grid *world.Grid) [][]world.Tile {
	out := make([][]world.Tile, len(grid.Tiles))
	for y, row := range grid.Tiles {
		out[y] = append([]world.Tile(nil), row...)
	}
	return out
}

func sameGrid(t *testing.T, grid *world.Grid, before [][]world.Tile) {
	t.Helper()
	for y, row := range before {
		for x, tile := range row {
			if grid.Get(x, y) != tile {
				t.Errorf("cell (%d,%d) changed from %v to %v", x, y, tile, grid.Get(x, y))
			}
		}
	}
}

func TestMoveOntoPathAndBack(t *testing.T) {
	grid := corridor()
	player := NewPlayer(0, 0, 3)
	player.Place(grid, 1, 1)

	result := player.MoveRight(grid)
	if !result.Moved || result.Tile != world.TilePath {
		t.Fatalf("MoveRight() = %+v, want moved onto path", result)
	}
	if player.X != 2 || player.Y != 1 {
		t.Errorf("position = (%d,%d), want (2,1)", player.X, player.Y)
	}
	if grid.Get(1, 1) != world.TilePath || grid.Get(2, 1) != world.TilePlayer {
		t.Errorf("cells after move: (1,1)=%v (2,1)=%v", grid.Get(1, 1), grid.Get(2, 1))
	}

	result = player.MoveLeft(grid)
	if !result.Moved {
		t.Fatalf("MoveLeft() = %+v, want moved", result)
	}
	if player.X != 1 || player.Y != 1 {
		t.Errorf("position = (%d,%d), want (1,1)", player.X, player.Y)
	}
	if grid.Get(1, 1) != world.TilePlayer || grid.Get(2, 1) != world.TilePath {
		t.Errorf("cells after return: (1,1)=%v (2,1)=%v", grid.Get(1, 1), grid.Get(2, 1))
	}
	if got := grid.Count(world.TilePlayer); got != 1 {
		t.Errorf("player tiles = %d, want 1", got)
	}
}

func TestMoveIntoWallIsNoop(t *testing.T) {
	grid := corridor()
	player := NewPlayer(0, 0, 3)
	player.Place(grid, 1, 1)
	before := snapshot(grid)

	for name, move := range map[string]func(*world.Grid) MoveResult{
		"up":   player.MoveUp,
		"down": player.MoveDown,
		"left": player.MoveLeft,
	} {
		result := move(grid)
		if result.Moved {
			t.Errorf("%s: moved into wall", name)
		}
		if result.Tile != world.TileWall {
			t.Errorf("%s: Tile = %v, want wall", name, result.Tile)
		}
		if player.X != 1 || player.Y != 1 {
			t.Errorf("%s: position changed to (%d,%d)", name, player.X, player.Y)
		}
	}
	sameGrid(t, grid, before)
}

func TestMoveOutOfBoundsIsNoop(t *testing.T) {
	grid := corridor()
	monster := NewMonster(0, 0, 2)
	// Put the monster on the ring to reach outside the grid.
	monster.X, monster.Y = 0, 1
	before := snapshot(grid)

	result := monster.MoveLeft(grid)
	if result.Moved {
		t.Error("moved out of bounds")
	}
	if result.Tile != world.TileMonster {
		t.Errorf("Tile = %v, want the mover's own kind", result.Tile)
	}
	if result.Dest != (world.Point{X: -1, Y: 1}) {
		t.Errorf("Dest = %v, want (-1,1)", result.Dest)
	}
	if monster.X != 0 || monster.Y != 1 {
		t.Errorf("position changed to (%d,%d)", monster.X, monster.Y)
	}
	sameGrid(t, grid, before)
}

func TestMoveIntoOccupantReportsTile(t *testing.T) {
	grid := corridor()
	player := NewPlayer(0, 0, 3)
	player.Place(grid, 1, 1)
	monster := NewMonster(0, 0, 2)
	monster.Place(grid, 2, 1)
	before := snapshot(grid)

	result := player.MoveRight(grid)
	if result.Moved {
		t.Error("player moved onto monster")
	}
	if result.Tile != world.TileMonster || result.Dest != monster.Point() {
		t.Errorf("MoveRight() = %+v, want monster at %v", result, monster.Point())
	}
	sameGrid(t, grid, before)

	result = monster.MoveLeft(grid)
	if result.Moved || result.Tile != world.TilePlayer {
		t.Errorf("monster MoveLeft() = %+v, want blocked by player", result)
	}
}

func TestMoveIntoUndefinedIsBlocked(t *testing.T) {
	grid := world.NewGrid(1, 1)
	grid.Set(1, 1, world.TilePath)
	player := NewPlayer(0, 0, 1)
	player.Place(grid, 1, 1)

	if result := player.MoveUp(grid); result.Moved || result.Tile != world.TileUndefined {
		t.Errorf("MoveUp() = %+v, want blocked by undefined", result)
	}
}

func TestGetsHit(t *testing.T) {
	player := NewPlayer(1, 1, 1)
	if !player.IsAlive() {
		t.Fatal("new player should be alive")
	}
	player.GetsHit()
	if player.GetLife() != 0 || player.IsAlive() {
		t.Errorf("life = %d alive = %v, want 0 and dead", player.GetLife(), player.IsAlive())
	}
	player.GetsHit()
	if player.GetLife() != -1 {
		t.Errorf("life = %d, want -1", player.GetLife())
	}
}

func TestMonstersHaveDistinctIDs(t *testing.T) {
	a := NewMonster(1, 1, 1)
	b := NewMonster(1, 1, 1)
	if a.ID == "" || a.ID == b.ID {
		t.Errorf("monster IDs %q and %q should be distinct and non-empty", a.ID, b.ID)
	}
	if NewPlayer(1, 1, 1).ID != PlayerID {
		t.Error("player should use PlayerID")
	}
}
