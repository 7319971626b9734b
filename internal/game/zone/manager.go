package zone

import (
	"log/slog"

	"github.com/udisondev/lanewars/internal/game/skill"
	"github.com/udisondev/lanewars/internal/model"
	"github.com/udisondev/lanewars/internal/world"
)

// World is the unit query the ground effects need.
type World interface {
	InRadius(center model.Vec2, radius float64) []*model.Unit
}

// DamageFunc is the engine's direct damage path.
type DamageFunc func(target *model.Unit, amount float64, source model.Handle, label string)

// Manager owns all ground effects of one battle.
// Not safe for concurrent use: ticked by the simulation goroutine.
type Manager struct {
	world  World
	damage DamageFunc
	ids    *world.IDGenerator

	effects []*GroundEffect // spawn order
	byID    map[uint64]*GroundEffect
}

// NewManager creates an empty ground effect manager.
// Ids come from the battle's generator; nil creates a private one.
func NewManager(w World, damage DamageFunc, ids *world.IDGenerator) *Manager {
	if ids == nil {
		ids = world.NewIDGenerator()
	}
	return &Manager{
		world:   w,
		damage:  damage,
		ids:     ids,
		effects: make([]*GroundEffect, 0, 16),
		byID:    make(map[uint64]*GroundEffect),
	}
}

// Spawn registers a ground effect and assigns its id.
// Returns nil for effects that would never tick (no duration or no area).
func (m *Manager) Spawn(g GroundEffect) *GroundEffect {
	if g.Remaining <= 0 || g.Radius <= 0 {
		slog.Debug("ground effect ignored",
			"label", g.Label,
			"duration", g.Remaining,
			"radius", g.Radius)
		return nil
	}

	g.ID = m.ids.Next()
	e := &g
	m.effects = append(m.effects, e)
	m.byID[e.ID] = e
	return e
}

// SpawnGround creates a damaging ground effect from a passive trigger or a cast.
func (m *Manager) SpawnGround(spec skill.GroundSpec) {
	m.Spawn(GroundEffect{
		Center:          spec.Center,
		Radius:          spec.Radius,
		Remaining:       spec.Duration,
		DamagePerSecond: spec.DamagePerSecond,
		Faction:         spec.Faction,
		Source:          spec.Source,
		Label:           spec.Label,
	})
}

// Get returns the live effect with the given id.
func (m *Manager) Get(id uint64) (*GroundEffect, bool) {
	g, ok := m.byID[id]
	return g, ok
}

// Tick ages every effect by delta seconds. Damage for the elapsed part of the tick is
// dealt before the expiry check, so the last partial second still hurts, and an
// effect never survives the tick in which its duration crosses zero.
func (m *Manager) Tick(delta float64) {
	if delta <= 0 {
		return
	}

	n := 0
	for _, g := range m.effects {
		m.burn(g, min(delta, g.Remaining))

		g.Remaining -= delta
		if g.Expired() {
			delete(m.byID, g.ID)
			continue
		}
		m.effects[n] = g
		n++
	}
	clear(m.effects[n:])
	m.effects = m.effects[:n]
}

func (m *Manager) burn(g *GroundEffect, step float64) {
	if g.DamagePerSecond <= 0 || step <= 0 {
		return
	}
	dmg := g.DamagePerSecond * step
	for _, u := range m.world.InRadius(g.Center, g.Radius) {
		if !g.Affects(u) {
			continue
		}
		m.damage(u, dmg, g.Source, g.Label)
	}
}

// Active returns the live effects in spawn order. The slice is a copy.
func (m *Manager) Active() []*GroundEffect {
	out := make([]*GroundEffect, len(m.effects))
	copy(out, m.effects)
	return out
}

// Count returns the number of live effects.
func (m *Manager) Count() int {
	return len(m.effects)
}
