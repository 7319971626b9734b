package zone

import "github.com/udisondev/lanewars/internal/model"

// GroundEffect is a stationary, timed area that deals periodic damage to units of the
// opposing faction standing inside it.
type GroundEffect struct {
	ID              uint64
	Center          model.Vec2
	Radius          float64
	Remaining       float64 // seconds
	DamagePerSecond float64
	Faction         model.Faction // owner; its own units are never hurt
	Source          model.Handle  // attribution only, may be gone
	Label           string

	// Cosmetic effects are drawn but deal no damage.
	Cosmetic bool
}

// Contains reports whether p is inside the effect area (border included).
func (g *GroundEffect) Contains(p model.Vec2) bool {
	return g.Center.Within(p, g.Radius)
}

// Affects reports whether the effect hurts u.
func (g *GroundEffect) Affects(u *model.Unit) bool {
	return !g.Cosmetic && u.Faction() != g.Faction && g.Contains(u.Position())
}

// Expired returns true once the duration has run out.
func (g *GroundEffect) Expired() bool {
	return g.Remaining <= 0
}
