package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/mazecrawl/internal/combat"
	"github.com/samdwyer/mazecrawl/internal/entity"
	"github.com/samdwyer/mazecrawl/internal/telemetry"
	"github.com/samdwyer/mazecrawl/internal/world"
)

// maxPlacementAttempts bounds random sampling before falling back to the
// explicit list of free cells.
const maxPlacementAttempts = 100

// ErrNoFreeCell is returned when the maze has no Path cell left for an entity.
var ErrNoFreeCell = errors.New("could not place entity: no free path cell")

// Session holds the state of one game from setup until it ends.
type Session struct {
	ID       string
	Config   Config
	Grid     *world.Grid
	Player   *entity.Entity
	Monsters *entity.Roster

	Turn        int    // Turns taken so far
	LastMessage string // Message from the last turn

	outcome Outcome
	rng     *rand.Rand
	logger  *log.Logger
}

// TurnResult describes what happened during one turn.
type TurnResult struct {
	Command Command
	Move    entity.MoveResult
	Hit     *combat.HitResult // Set when the move collided with a monster
	Message string
	Outcome Outcome
}

// NewSession generates a maze and places the player and monsters on it.
// A nil rng is replaced by cfg.NewRand(); a nil logger discards output.
func NewSession(ctx context.Context, cfg Config, rng *rand.Rand, logger *log.Logger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = cfg.NewRand()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.init")
	defer span.End()

	grid, err := world.Generate(ctx, cfg.Width, cfg.Height, cfg.Density, rng)
	if err != nil {
		return nil, fmt.Errorf("generate maze: %w", err)
	}

	s := &Session{
		ID:          uuid.NewString(),
		Config:      cfg,
		Grid:        grid,
		Monsters:    entity.NewRoster(),
		LastMessage: "Destroy every monster. Move with w/a/s/d, type exit to quit.",
		rng:         rng,
		logger:      logger,
	}

	start, err := s.findFreeCell()
	if err != nil {
		return nil, fmt.Errorf("player: %w", err)
	}
	s.Player = entity.NewPlayer(start.X, start.Y, cfg.PlayerLife)
	s.Player.Place(grid, start.X, start.Y)

	for i := 0; i < cfg.MonsterCount; i++ {
		p, err := s.findFreeCell()
		if err != nil {
			return nil, fmt.Errorf("monster %d: %w", i+1, err)
		}
		monster := entity.NewMonster(p.X, p.Y, cfg.MonsterLife)
		monster.Place(grid, p.X, p.Y)
		s.Monsters.Add(monster)
		logger.Debug("placed monster", "id", monster.ID, "x", p.X, "y", p.Y)
	}

	span.SetAttributes(
		attribute.String("session.id", s.ID),
		attribute.Int("player.start_x", start.X),
		attribute.Int("player.start_y", start.Y),
		attribute.Int("monster.count", s.Monsters.Len()),
	)
	logger.Info("session started",
		"session", s.ID,
		"width", cfg.Width,
		"height", cfg.Height,
		"density", cfg.Density,
		"monsters", s.Monsters.Len())

	return s, nil
}

// findFreeCell samples interior cells until one is Path. The grid's current
// state is checked, so cells already holding an entity are never chosen.
func (s *Session) findFreeCell() (world.Point, error) {
	rows, cols := s.Grid.Dimensions()
	for i := 0; i < maxPlacementAttempts; i++ {
		x := 1 + s.rng.Intn(cols-2)
		y := 1 + s.rng.Intn(rows-2)
		if s.Grid.Get(x, y) == world.TilePath {
			return world.Point{X: x, Y: y}, nil
		}
	}

	free := s.Grid.FreeCells()
	if len(free) == 0 {
		return world.Point{}, ErrNoFreeCell
	}
	return free[s.rng.Intn(len(free))], nil
}

// Outcome returns the current outcome without re-evaluating it.
func (s *Session) Outcome() Outcome {
	return s.outcome
}

// CheckOutcome evaluates the termination rules: the player at 0 life loses,
// an empty roster wins. A quit session stays quit.
func (s *Session) CheckOutcome() Outcome {
	if s.outcome.IsTerminal() {
		return s.outcome
	}
	switch {
	case s.Player.GetLife() <= 0:
		s.outcome = OutcomeLost
	case s.Monsters.IsEmpty():
		s.outcome = OutcomeWon
	}
	return s.outcome
}

// Apply parses an input token and plays it as one turn.
func (s *Session) Apply(ctx context.Context, token string) TurnResult {
	cmd := ParseCommand(token)
	result := s.Step(ctx, cmd)
	if cmd == CommandUnknown && !s.outcome.IsTerminal() {
		result.Message = fmt.Sprintf("Unknown command %q. Use w, a, s, d or exit.", token)
		s.LastMessage = result.Message
	}
	return result
}

// Step plays one turn.
func (s *Session) Step(ctx context.Context, cmd Command) TurnResult {
	result := TurnResult{Command: cmd}
	if s.outcome.IsTerminal() {
		result.Message = "The game is over."
		result.Outcome = s.outcome
		return result
	}

	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.turn")
	defer span.End()

	switch {
	case cmd == CommandExit:
		s.outcome = OutcomeQuit
		result.Message = "You leave the maze."
	case cmd.IsMove():
		result.Move = s.movePlayer(cmd)
		switch {
		case result.Move.Tile == world.TileMonster:
			result.Hit = s.attack(ctx, result.Move.Dest)
			if result.Hit != nil {
				result.Message = result.Hit.Message
			}
		case !result.Move.Moved:
			result.Message = "You bump into a wall."
		}
	default:
		result.Message = "Unknown command."
	}

	s.Turn++
	s.LastMessage = result.Message
	result.Outcome = s.CheckOutcome()

	span.SetAttributes(
		attribute.Int("turn", s.Turn),
		attribute.String("command", cmd.String()),
		attribute.Bool("moved", result.Move.Moved),
		attribute.String("outcome", result.Outcome.String()),
	)

	if result.Outcome.IsTerminal() {
		s.end(ctx, &result)
	}
	return result
}

// movePlayer dispatches a directional command to the player.
func (s *Session) movePlayer(cmd Command) entity.MoveResult {
	switch cmd {
	case CommandUp:
		return s.Player.MoveUp(s.Grid)
	case CommandDown:
		return s.Player.MoveDown(s.Grid)
	case CommandLeft:
		return s.Player.MoveLeft(s.Grid)
	default:
		return s.Player.MoveRight(s.Grid)
	}
}

// end records the final outcome.
func (s *Session) end(ctx context.Context, result *TurnResult) {
	switch result.Outcome {
	case OutcomeWon:
		result.Message += " All monsters are destroyed. You win!"
	case OutcomeLost:
		result.Message += " You have been slain."
	}
	s.LastMessage = result.Message

	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.end")
	span.SetAttributes(
		attribute.String("session.id", s.ID),
		attribute.String("outcome", result.Outcome.String()),
		attribute.Int("turns_taken", s.Turn),
		attribute.Int("player.life", s.Player.GetLife()),
		attribute.Int("monsters_left", s.Monsters.Len()),
	)
	span.End()

	s.logger.Info("session ended", "session", s.ID, "outcome", result.Outcome, "turns", s.Turn)
}
