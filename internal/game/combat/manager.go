package combat

import (
	"log/slog"
	"math"

	"github.com/udisondev/lanewars/internal/model"
)

// rangeSlack makes a walking unit stop slightly inside its attack range.
const rangeSlack = 0.5

// World is the entity query surface the combat loop needs.
type World interface {
	Unit(h model.Handle) (*model.Unit, bool)
	Combatants() []*model.Unit
}

// Passives runs passive abilities of the attacker and the defender.
type Passives interface {
	OnAttack(attacker, defender *model.Unit, damage float64) float64
	OnDefend(defender, attacker *model.Unit, damage float64, attackType model.AttackType) float64
}

// Sharer splits mitigated damage across a linked group. Returns the part the defender keeps.
type Sharer interface {
	Share(defender *model.Unit, damage float64) float64
}

// Rand is the pseudorandom source for damage rolls.
type Rand interface {
	Float64() float64
}

// Clock is the simulation time source (seconds).
type Clock interface {
	Now() float64
}

// DamageFunc is the single damage-taking path of the engine (death handling included).
type DamageFunc func(target *model.Unit, amount float64, source model.Handle, label string)

// HitResult содержит результат одной атаки для наблюдения в тестах.
type HitResult struct {
	Attacker model.Handle
	Target   model.Handle
	Base     float64 // roll after attacker passives
	Damage   float64 // after armor formula and defender passives
	Retained float64 // what the defender took after group sharing
}

// Deps are the collaborators of a CombatManager.
type Deps struct {
	World    World
	Passives Passives
	Sharer   Sharer
	Rand     Rand
	Clock    Clock
	Damage   DamageFunc
	Sink     model.EffectSink
	Formula  Formula
}

// CombatManager runs the attack pipeline, target acquisition and movement.
// Not safe for concurrent use.
type CombatManager struct {
	world    World
	passives Passives
	sharer   Sharer
	rand     Rand
	clock    Clock
	damage   DamageFunc
	sink     model.EffectSink
	formula  Formula

	// hitObserver — callback для наблюдения за результатами атак (nil в production).
	hitObserver func(HitResult)
}

// NewCombatManager creates a combat manager. Nil Passives/Sharer/Sink are allowed.
func NewCombatManager(d Deps) *CombatManager {
	if d.Formula.ArmorFactor <= 0 {
		d.Formula.ArmorFactor = DefaultArmorFactor
	}
	return &CombatManager{
		world:    d.World,
		passives: d.Passives,
		sharer:   d.Sharer,
		rand:     d.Rand,
		clock:    d.Clock,
		damage:   d.Damage,
		sink:     d.Sink,
		formula:  d.Formula,
	}
}

// SetHitObserver sets a callback invoked after every resolved attack.
func (m *CombatManager) SetHitObserver(fn func(HitResult)) {
	m.hitObserver = fn
}

// RollBase rolls base damage in [AttackMin, AttackMax], rounded.
func (m *CombatManager) RollBase(attacker *model.Unit) float64 {
	lo, hi := attacker.AttackMin(), attacker.AttackMax()
	if hi <= lo || m.rand == nil {
		return math.Round(lo)
	}
	return math.Round(lo + m.rand.Float64()*(hi-lo))
}

// ResolveAttack resolves one attack of attacker on defender:
// base roll → attacker passives → armor formula → defender passives → group sharing → damage.
// Returns false if the attack cannot happen (dead or friendly units).
func (m *CombatManager) ResolveAttack(attacker, defender *model.Unit) bool {
	if err := ValidateAttack(attacker, defender); err != nil {
		slog.Debug("attack rejected", "error", err)
		return false
	}

	dmg := m.RollBase(attacker)
	if m.passives != nil {
		dmg = m.passives.OnAttack(attacker, defender, dmg)
	}
	base := dmg

	attackType := attacker.AttackType()
	dmg = float64(m.formula.Damage(dmg, attackType, defender.ArmorType(), defender.Armor()))

	if m.passives != nil {
		dmg = m.passives.OnDefend(defender, attacker, dmg, attackType)
	}

	retained := dmg
	if m.sharer != nil {
		retained = m.sharer.Share(defender, dmg)
	}

	m.damage(defender, retained, attacker.Handle(), "attack")

	if m.sink != nil {
		m.sink(model.EffectEvent{
			Kind:   model.EventAttack,
			Source: attacker.Handle(),
			Target: defender.Handle(),
			Pos:    defender.Position(),
			Amount: retained,
		})
	}
	if m.hitObserver != nil {
		m.hitObserver(HitResult{
			Attacker: attacker.Handle(),
			Target:   defender.Handle(),
			Base:     base,
			Damage:   dmg,
			Retained: retained,
		})
	}
	return true
}

// Update advances every combatant by delta seconds: pick a target, walk toward it,
// attack when the attack timer allows.
func (m *CombatManager) Update(delta float64) {
	now := m.clock.Now()
	units := m.world.Combatants()

	for _, u := range units {
		// Юнит мог погибнуть от атаки раньше в этом же цикле
		if u.IsDead() || u.IsStunned() {
			continue
		}

		target := m.acquireTarget(u, units)
		if target == nil {
			u.SetTarget(model.Handle{})
			continue
		}
		u.SetTarget(target.Handle())

		if err := ValidateRange(u, target); err != nil {
			if !u.IsStructure() && u.MoveSpeed() > 0 {
				dist := u.Position().Distance(target.Position())
				step := min(u.MoveSpeed()*delta, dist-u.AttackRange()+rangeSlack)
				u.SetPosition(u.Position().MoveToward(target.Position(), step))
			}
			continue
		}

		if now < u.NextAttackAt() {
			continue
		}
		if m.ResolveAttack(u, target) {
			u.SetNextAttackAt(now + u.AttackSpeed())
		}
	}
}

// acquireTarget returns the live forced target, or the nearest live enemy (structures included).
func (m *CombatManager) acquireTarget(u *model.Unit, units []*model.Unit) *model.Unit {
	if h := u.ForcedTarget(); !h.IsZero() {
		if t, ok := m.world.Unit(h); ok && u.IsEnemy(t) {
			return t
		}
	}

	var (
		best     *model.Unit
		bestDist float64
	)
	for _, o := range units {
		if o.IsDead() || !u.IsEnemy(o) {
			continue
		}
		d := u.Position().DistanceSquared(o.Position())
		if best == nil || d < bestDist {
			best, bestDist = o, d
		}
	}
	return best
}
