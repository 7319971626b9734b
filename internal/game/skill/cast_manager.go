package skill

import (
	"fmt"
	"log/slog"

	"github.com/udisondev/lanewars/internal/data"
	"github.com/udisondev/lanewars/internal/model"
)

// DefaultMaxLinkMembers bounds linked group size when not configured.
const DefaultMaxLinkMembers = 4

// CastDeps are the collaborators of a CastManager. Nil optional collaborators make the
// effect kinds that need them fail their cast.
type CastDeps struct {
	Templates Templates
	World     World
	Effects   *EffectManager
	Graveyard Graveyard
	Spawner   Spawner
	Linker    Linker
	Clock     Clock
	Sink      model.EffectSink

	MaxLinkMembers int
}

// CastManager validates cast preconditions, commits mana and cooldown,
// and dispatches to the effect handler registered for the ability kind.
// Uses injected collaborators instead of reaching into the battle.
type CastManager struct {
	templates Templates
	world     World
	effects   *EffectManager
	graveyard Graveyard
	spawner   Spawner
	linker    Linker
	clock     Clock
	sink      model.EffectSink

	maxLinkMembers int
}

// NewCastManager creates a new CastManager with injected collaborators.
func NewCastManager(d CastDeps) *CastManager {
	if d.MaxLinkMembers < 2 {
		d.MaxLinkMembers = DefaultMaxLinkMembers
	}
	return &CastManager{
		templates:      d.Templates,
		world:          d.World,
		effects:        d.Effects,
		graveyard:      d.Graveyard,
		spawner:        d.Spawner,
		linker:         d.Linker,
		clock:          d.Clock,
		sink:           d.Sink,
		maxLinkMembers: d.MaxLinkMembers,
	}
}

// castContext is everything an effect handler needs for one cast.
type castContext struct {
	caster  *model.Unit
	ability Ability
	point   model.Vec2
	target  *model.Unit // optional
}

// Cast casts the named ability of caster at point, or at target if given: a target
// unit replaces point, so area effects land on the range-checked position.
// Returns false on any rejection; rejections change no state.
//
// Checks, in order: ability exists on the unit, not passive, enabled, off cooldown,
// target within range, enough mana, effect kind dispatchable.
// After the checks pass, mana and cooldown are committed unconditionally.
func (cm *CastManager) Cast(caster *model.Unit, name string, point model.Vec2, target *model.Unit) bool {
	if caster == nil || caster.IsDead() {
		return false
	}
	if caster.IsStunned() {
		reject(caster, name, "stunned")
		return false
	}

	// 1. Check unit has ability
	inst, ability, ok := findAbility(cm.templates, caster, name)
	if !ok {
		reject(caster, name, "unknown ability")
		return false
	}

	// 2. Passive abilities cannot be cast
	if ability.IsPassive() {
		reject(caster, name, "passive")
		return false
	}

	// 3. Check enabled (upgrade bought)
	if !ability.Enabled {
		reject(caster, name, "disabled")
		return false
	}

	// 4. Check cooldown
	if !inst.Ready() {
		reject(caster, name, "cooldown")
		return false
	}

	// 5. Check range
	aim := point
	if target != nil {
		if target.IsDead() {
			reject(caster, name, "target dead")
			return false
		}
		aim = target.Position()
	}
	if !caster.Position().Within(aim, ability.CastRange(caster)) {
		reject(caster, name, "out of range")
		return false
	}

	// 6. Check mana
	if ability.ManaCost > 0 && caster.Mana() < ability.ManaCost {
		reject(caster, name, "not enough mana")
		return false
	}

	// 7. Resolve handler before committing anything
	handler, ok := castHandlers[ability.Kind]
	if !ok {
		reportConfigError(caster, fmt.Errorf("ability %q: %w: %s", ability.ID, data.ErrUnknownEffectKind, ability.Kind))
		return false
	}

	// 8. Commit mana and cooldown
	if ability.ManaCost > 0 {
		caster.SetMana(caster.Mana() - ability.ManaCost)
	}
	inst.Cooldown = ability.Cooldown

	applied := handler(cm, castContext{
		caster:  caster,
		ability: ability,
		point:   aim,
		target:  target,
	})

	slog.Debug("ability cast",
		"caster", caster.Name(),
		"ability", ability.Name,
		"kind", ability.Kind,
		"applied", applied)

	return applied
}

func (cm *CastManager) emit(ev model.EffectEvent) {
	if cm.sink != nil {
		cm.sink(ev)
	}
}
