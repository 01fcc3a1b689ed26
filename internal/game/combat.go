package game

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/mazecrawl/internal/combat"
	"github.com/samdwyer/mazecrawl/internal/telemetry"
	"github.com/samdwyer/mazecrawl/internal/world"
)

// attack strikes the monster standing at dest. A destroyed monster leaves
// the roster and its cell reverts to Path. The player never enters the cell
// during the attack.
func (s *Session) attack(ctx context.Context, dest world.Point) *combat.HitResult {
	monster := s.Monsters.At(dest.X, dest.Y)
	if monster == nil {
		s.logger.Warn("monster tile without roster entry", "x", dest.X, "y", dest.Y)
		return nil
	}

	tracer := telemetry.Tracer("combat")
	_, span := tracer.Start(ctx, "combat.hit")
	defer span.End()

	result := combat.Resolve(s.Player, monster)

	if result.Killed {
		s.Monsters.Remove(monster.ID)
		s.Grid.Set(monster.X, monster.Y, world.TilePath)
		s.logger.Debug("monster destroyed", "id", monster.ID, "left", s.Monsters.Len())
	}

	span.SetAttributes(
		attribute.String("monster.id", monster.ID),
		attribute.Int("monster.life", result.Remaining),
		attribute.Bool("killed", result.Killed),
	)
	return &result
}
