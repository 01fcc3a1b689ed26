// Package combat resolves collisions between the player and monsters.
package combat

import "fmt"

// Combatant is anything that can be struck in a collision.
type Combatant interface {
	GetName() string
	GetLife() int
	IsAlive() bool
	GetsHit()
}

// HitResult describes the outcome of one strike.
type HitResult struct {
	Target    string
	Remaining int  // Life left after the strike, may be negative
	Killed    bool // True if this strike took the target to 0 or below
	Message   string
}

// Resolve applies one point of damage from attacker to target.
// A strike always lands; there is no miss chance and no armor.
func Resolve(attacker, target Combatant) HitResult {
	wasAlive := target.IsAlive()
	target.GetsHit()

	result := HitResult{
		Target:    target.GetName(),
		Remaining: target.GetLife(),
		Killed:    wasAlive && !target.IsAlive(),
	}

	if result.Killed {
		result.Message = fmt.Sprintf("%s destroys the %s!", attacker.GetName(), target.GetName())
	} else {
		result.Message = fmt.Sprintf("%s hits the %s (%d life left).",
			attacker.GetName(), target.GetName(), result.Remaining)
	}
	return result
}
