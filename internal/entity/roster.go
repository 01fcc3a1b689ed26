package entity

// Roster holds the monsters that are still alive.
type Roster struct {
	monsters []*Entity
}

// NewRoster creates a roster holding the given monsters.
func NewRoster(monsters ...*Entity) *Roster {
	return &Roster{monsters: monsters}
}

// Add appends a monster to the roster.
func (r *Roster) Add(m *Entity) {
	r.monsters = append(r.monsters, m)
}

// At returns the monster standing at (x, y), or nil.
func (r *Roster) At(x, y int) *Entity {
	for _, m := range r.monsters {
		if m.X == x && m.Y == y {
			return m
		}
	}
	return nil
}

// Remove drops the monster with the given ID. It returns false if no such
// monster is on the roster.
func (r *Roster) Remove(id string) bool {
	for i, m := range r.monsters {
		if m.ID == id {
			r.monsters = append(r.monsters[:i], r.monsters[i+1:]...)
			return true
		}
	}
	return false
}

// All returns the monsters in roster order.
func (r *Roster) All() []*Entity {
	return r.monsters
}

// Len returns the number of monsters on the roster.
func (r *Roster) Len() int {
	return len(r.monsters)
}

// IsEmpty returns true when every monster has been removed.
func (r *Roster) IsEmpty() bool {
	return len(r.monsters) == 0
}
