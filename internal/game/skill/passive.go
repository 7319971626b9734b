package skill

import (
	"slices"

	"github.com/udisondev/lanewars/internal/data"
	"github.com/udisondev/lanewars/internal/model"
)

// PassiveDeps are the collaborators of a PassiveHandler.
type PassiveDeps struct {
	Templates Templates
	World     World
	Effects   *EffectManager
	Ground    GroundSpawner
	Treasury  Treasury
	Rand      Rand
	Damage    DamageFunc
	Sink      model.EffectSink
}

// PassiveHandler runs passive abilities from the attack pipeline, bypassing cast validation.
type PassiveHandler struct {
	templates Templates
	world     World
	effects   *EffectManager
	ground    GroundSpawner
	treasury  Treasury
	rand      Rand
	damage    DamageFunc
	sink      model.EffectSink
}

// NewPassiveHandler creates a PassiveHandler.
func NewPassiveHandler(d PassiveDeps) *PassiveHandler {
	return &PassiveHandler{
		templates: d.Templates,
		world:     d.World,
		effects:   d.Effects,
		ground:    d.Ground,
		treasury:  d.Treasury,
		rand:      d.Rand,
		damage:    d.Damage,
		sink:      d.Sink,
	}
}

// attackRule is an attacker-side passive. Returns the (possibly changed) damage.
type attackRule func(p *PassiveHandler, a Ability, attacker, defender *model.Unit, damage float64) float64

// defendRule is a defender-side passive. Returns the (possibly changed) damage.
type defendRule func(p *PassiveHandler, a Ability, defender, attacker *model.Unit, damage float64, attackType model.AttackType) float64

var attackRules = map[data.EffectKind]attackRule{
	data.EffectPassiveCleave:        passiveCleave,
	data.EffectPassiveGroundFire:    passiveGroundFire,
	data.EffectPassiveBounty:        passiveBounty,
	data.EffectPassiveStructureStun: passiveStructureStun,
}

var defendRules = map[data.EffectKind]defendRule{
	data.EffectPassiveReduction: passiveReduction,
	data.EffectPassiveBlock:     passiveBlock,
}

// OnAttack applies the attacker's passives in ability order. Each sees the previous output.
func (p *PassiveHandler) OnAttack(attacker, defender *model.Unit, damage float64) float64 {
	for _, a := range p.passives(attacker) {
		rule, ok := attackRules[a.Kind]
		if !ok || !p.proc(a) {
			continue
		}
		damage = rule(p, a, attacker, defender, damage)
	}
	return damage
}

// OnDefend applies the defender's passives in ability order. Each sees the previous output.
func (p *PassiveHandler) OnDefend(defender, attacker *model.Unit, damage float64, attackType model.AttackType) float64 {
	for _, a := range p.passives(defender) {
		rule, ok := defendRules[a.Kind]
		if !ok || !p.proc(a) {
			continue
		}
		damage = rule(p, a, defender, attacker, damage, attackType)
	}
	return damage
}

// passives returns the enabled passive abilities of u, in instance order.
func (p *PassiveHandler) passives(u *model.Unit) []Ability {
	var result []Ability
	abilities := u.Abilities()
	for i := range abilities {
		if !abilities[i].Enabled {
			continue
		}
		a, err := Resolve(p.templates, &abilities[i])
		if err != nil {
			reportConfigError(u, err)
			continue
		}
		if a.IsPassive() {
			result = append(result, a)
		}
	}
	return result
}

// proc rolls the ability's proc chance. A missing chance means always.
func (p *PassiveHandler) proc(a Ability) bool {
	chance := a.ParamOr(model.ParamProcChance, 1)
	if chance >= 1 {
		return true
	}
	if chance <= 0 || p.rand == nil {
		return false
	}
	return p.rand.Float64() < chance
}

func (p *PassiveHandler) emit(ev model.EffectEvent) {
	if p.sink != nil {
		p.sink(ev)
	}
}

// passiveCleave deals Amount to every other enemy within Radius of the defender.
// The primary target gets no bonus.
func passiveCleave(p *PassiveHandler, a Ability, attacker, defender *model.Unit, damage float64) float64 {
	radius, amount := a.Param(model.ParamRadius), a.Param(model.ParamAmount)
	center := defender.Position()

	hit := 0
	for _, u := range p.world.InRadius(center, radius) {
		if u == defender || !attacker.IsEnemy(u) {
			continue
		}
		p.damage(u, amount, attacker.Handle(), a.Name)
		hit++
	}

	p.emit(model.EffectEvent{
		Kind:   model.EventCleave,
		Source: attacker.Handle(),
		Target: defender.Handle(),
		Pos:    center,
		Radius: radius,
		Amount: amount * float64(hit),
		Label:  a.Name,
	})
	return damage
}

// passiveGroundFire leaves a burning zone under the defender.
func passiveGroundFire(p *PassiveHandler, a Ability, attacker, defender *model.Unit, damage float64) float64 {
	if p.ground == nil {
		return damage
	}
	spec := GroundSpec{
		Center:          defender.Position(),
		Radius:          a.Param(model.ParamRadius),
		Duration:        a.Param(model.ParamDuration),
		DamagePerSecond: a.Param(model.ParamDamagePerSecond),
		Faction:         attacker.Faction(),
		Source:          attacker.Handle(),
		Label:           a.Name,
	}
	p.ground.SpawnGround(spec)

	p.emit(model.EffectEvent{
		Kind:   model.EventGroundFire,
		Source: attacker.Handle(),
		Pos:    spec.Center,
		Radius: spec.Radius,
		Amount: spec.DamagePerSecond,
		Label:  a.Name,
	})
	return damage
}

// passiveBounty grants the attacker's faction Amount gold.
func passiveBounty(p *PassiveHandler, a Ability, attacker, defender *model.Unit, damage float64) float64 {
	if p.treasury == nil {
		return damage
	}
	amount := a.Param(model.ParamAmount)
	p.treasury.AddGold(attacker.Faction(), amount)

	p.emit(model.EffectEvent{
		Kind:   model.EventGold,
		Source: attacker.Handle(),
		Target: defender.Handle(),
		Pos:    attacker.Position(),
		Amount: amount,
		Label:  a.Name,
	})
	return damage
}

// passiveStructureStun applies the ability's crowd-control status to a structure defender.
func passiveStructureStun(p *PassiveHandler, a Ability, attacker, defender *model.Unit, damage float64) float64 {
	if !defender.IsStructure() {
		return damage
	}
	if err := p.effects.Apply(defender, a.status(attacker.Handle())); err != nil {
		return damage
	}

	p.emit(model.EffectEvent{
		Kind:   model.EventStun,
		Source: attacker.Handle(),
		Target: defender.Handle(),
		Pos:    defender.Position(),
		Amount: a.Param(model.ParamDuration),
		Label:  a.Name,
	})
	return damage
}

// passiveReduction multiplies damage by (1 - Percent) for the listed attack types (empty = all).
func passiveReduction(_ *PassiveHandler, a Ability, _, _ *model.Unit, damage float64, attackType model.AttackType) float64 {
	if len(a.AttackTypes) > 0 && !slices.Contains(a.AttackTypes, attackType) {
		return damage
	}
	pct := min(max(a.Param(model.ParamPercent), 0), 1)
	return damage * (1 - pct)
}

// passiveBlock subtracts Amount but never goes below Floor. Damage already below the
// floor is left as is.
func passiveBlock(_ *PassiveHandler, a Ability, _, _ *model.Unit, damage float64, _ model.AttackType) float64 {
	blocked := max(damage-a.Param(model.ParamAmount), a.Param(model.ParamFloor))
	return min(damage, blocked)
}
