package game

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/samdwyer/mazecrawl/internal/gamedata"
	"github.com/samdwyer/mazecrawl/internal/world"
)

// ErrInvalidConfig is returned when a Config fails validation.
var ErrInvalidConfig = errors.New("invalid game configuration")

// Config holds game configuration options.
type Config struct {
	Width        int     // Maze width in junctions
	Height       int     // Maze height in junctions
	Density      float64 // Probability a candidate cell becomes a wall
	PlayerLife   int     // Player starting life
	MonsterLife  int     // Starting life of each monster
	MonsterCount int     // Monsters placed at start

	// Seed for random number generation. Used for reproducible mazes and placement.
	// A seed of 0 means a random seed will be generated.
	Seed int64
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Width:        world.DefaultWidth,
		Height:       world.DefaultHeight,
		Density:      world.DefaultDensity,
		PlayerLife:   3,
		MonsterLife:  3,
		MonsterCount: 3,
	}
}

// ConfigFromPreset builds a configuration from a preset definition.
func ConfigFromPreset(p *gamedata.PresetDef) Config {
	return Config{
		Width:        p.Width,
		Height:       p.Height,
		Density:      p.Density,
		PlayerLife:   p.PlayerLife,
		MonsterLife:  p.MonsterLife,
		MonsterCount: p.MonsterCount,
	}
}

// Validate checks every field against its allowed range.
func (c Config) Validate() error {
	if c.Width < 1 || c.Height < 1 {
		return fmt.Errorf("%w: %w: got %dx%d", ErrInvalidConfig, world.ErrInvalidDimensions, c.Width, c.Height)
	}
	if math.IsNaN(c.Density) || c.Density < 0 || c.Density > 1 {
		return fmt.Errorf("%w: %w: got %v", ErrInvalidConfig, world.ErrInvalidDensity, c.Density)
	}
	if c.PlayerLife < 1 {
		return fmt.Errorf("%w: player life must be positive, got %d", ErrInvalidConfig, c.PlayerLife)
	}
	if c.MonsterLife < 1 {
		return fmt.Errorf("%w: monster life must be positive, got %d", ErrInvalidConfig, c.MonsterLife)
	}
	if c.MonsterCount < 1 {
		return fmt.Errorf("%w: monster count must be positive, got %d", ErrInvalidConfig, c.MonsterCount)
	}
	return nil
}

// NewRand returns the random source for this configuration.
func (c Config) NewRand() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
