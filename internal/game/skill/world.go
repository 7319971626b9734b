package skill

import (
	"log/slog"

	"github.com/udisondev/lanewars/internal/model"
)

// World is the entity query surface used by effects, casts and autocast.
// Dead units and stale handles must be reported as not found.
type World interface {
	Unit(h model.Handle) (*model.Unit, bool)
	Units(faction model.Faction) []*model.Unit
	InRadius(center model.Vec2, radius float64) []*model.Unit
}

// Graveyard is the bounded dead-unit history used by resurrection.
type Graveyard interface {
	Nearest(pos model.Vec2, faction model.Faction, allowed []string, now, maxAge float64) (model.Corpse, bool)
	Remove(id uint64) bool
}

// Spawner creates a fresh unit of a roster type.
type Spawner interface {
	Spawn(unitType string, faction model.Faction, pos model.Vec2) (*model.Unit, error)
}

// Linker owns linked damage-sharing groups.
type Linker interface {
	Link(members []*model.Unit, shareFraction, duration float64, label string, source model.Handle) bool
	IsLinked(h model.Handle) bool
}

// GroundSpec describes a ground effect to spawn.
type GroundSpec struct {
	Center          model.Vec2
	Radius          float64
	Duration        float64
	DamagePerSecond float64
	Faction         model.Faction // owner; only opposing units are hurt
	Source          model.Handle
	Label           string
}

// GroundSpawner creates ground damage-over-time zones.
type GroundSpawner interface {
	SpawnGround(spec GroundSpec)
}

// Treasury holds per-faction currency.
type Treasury interface {
	AddGold(faction model.Faction, amount float64)
}

// Rand is the pseudorandom source for proc rolls.
type Rand interface {
	Float64() float64
}

// Clock is the simulation time source (seconds).
type Clock interface {
	Now() float64
}

// AutocastSettings is the player-settings collaborator: it may disable autocast per ability.
type AutocastSettings interface {
	AutocastEnabled(unit model.Handle, abilityID string) bool
}

// DamageFunc is the engine's direct damage path: no passives, no group sharing.
type DamageFunc func(target *model.Unit, amount float64, source model.Handle, label string)

// reportConfigError logs a data-authoring defect.
func reportConfigError(u *model.Unit, err error) {
	slog.Error("ability configuration error",
		"unit", u.Name(),
		"unitType", u.Type(),
		"error", err)
}

// reject logs an expected runtime rejection.
func reject(u *model.Unit, ability, reason string) {
	slog.Debug("cast rejected",
		"unit", u.Name(),
		"ability", ability,
		"reason", reason)
}
