package skill

import (
	"github.com/udisondev/lanewars/internal/data"
	"github.com/udisondev/lanewars/internal/model"
)

// AutocastConfig holds the thresholds of the autocast heuristics.
type AutocastConfig struct {
	HealBelow          float64 // health fraction
	GroupBuffMinAllies int
	DebuffMinEnemies   int
	TauntMinEnemies    int
}

// DefaultAutocastConfig returns the default thresholds.
func DefaultAutocastConfig() AutocastConfig {
	return AutocastConfig{
		HealBelow:          0.70,
		GroupBuffMinAllies: 3,
		DebuffMinEnemies:   3,
		TauntMinEnemies:    2,
	}
}

// AutocastDeps are the collaborators of an Autocaster.
type AutocastDeps struct {
	Templates Templates
	World     World
	Casts     *CastManager
	Graveyard Graveyard
	Linker    Linker
	Clock     Clock
	Settings  AutocastSettings // nil = autocast everything
	Config    AutocastConfig
}

// Autocaster decides, per unit and tick, whether the tactical situation justifies
// casting one of the unit's abilities, and casts it through the CastManager.
type Autocaster struct {
	templates Templates
	world     World
	casts     *CastManager
	graveyard Graveyard
	linker    Linker
	clock     Clock
	settings  AutocastSettings
	cfg       AutocastConfig
}

// NewAutocaster creates an Autocaster.
func NewAutocaster(d AutocastDeps) *Autocaster {
	return &Autocaster{
		templates: d.Templates,
		world:     d.World,
		casts:     d.Casts,
		graveyard: d.Graveyard,
		linker:    d.Linker,
		clock:     d.Clock,
		settings:  d.Settings,
		cfg:       d.Config,
	}
}

// surroundings are the units within a caster's attack range.
type surroundings struct {
	caster  *model.Unit
	allies  []*model.Unit // caster included
	enemies []*model.Unit
}

// castPlan is where an autocast rule wants the ability to land.
type castPlan struct {
	point  model.Vec2
	target *model.Unit
}

// autocastRule decides whether to cast and where.
type autocastRule func(ac *Autocaster, s *surroundings, a Ability) (castPlan, bool)

var autocastRules = map[data.EffectKind]autocastRule{
	data.EffectHeal:      autoHeal,
	data.EffectDispel:    autoDispel,
	data.EffectGroupBuff: autoGroupBuff,
	data.EffectDebuff:    autoDebuff,
	data.EffectShield:    autoDebuff,
	data.EffectTaunt:     autoTaunt,
	data.EffectLink:      autoLink,
	data.EffectResurrect: autoResurrect,
}

// Update evaluates u's eligible abilities in order and casts the first one whose rule
// fires. At most one cast per unit per call. Returns true if a cast succeeded.
func (ac *Autocaster) Update(u *model.Unit) bool {
	if u.IsDead() || u.IsStunned() {
		return false
	}

	var s *surroundings
	abilities := u.Abilities()
	for i := range abilities {
		a, err := Resolve(ac.templates, &abilities[i])
		if err != nil {
			reportConfigError(u, err)
			continue
		}
		if !ac.eligible(u, a) {
			continue
		}
		rule, ok := autocastRules[a.Kind]
		if !ok {
			continue
		}

		if s == nil {
			s = ac.survey(u)
		}
		plan, ok := rule(ac, s, a)
		if !ok {
			continue
		}
		if ac.casts.Cast(u, a.Name, plan.point, plan.target) {
			return true
		}
	}
	return false
}

// eligible: non-passive, enabled, off cooldown, affordable, autocast not disabled.
func (ac *Autocaster) eligible(u *model.Unit, a Ability) bool {
	if a.IsPassive() || !a.Enabled || a.Remaining > 0 {
		return false
	}
	if a.ManaCost > 0 && u.Mana() < a.ManaCost {
		return false
	}
	if ac.settings != nil && !ac.settings.AutocastEnabled(u.Handle(), a.ID) {
		return false
	}
	return true
}

func (ac *Autocaster) survey(u *model.Unit) *surroundings {
	s := &surroundings{caster: u}
	for _, o := range ac.world.InRadius(u.Position(), u.AttackRange()) {
		if u.IsAlly(o) {
			s.allies = append(s.allies, o)
		} else {
			s.enemies = append(s.enemies, o)
		}
	}
	return s
}

func inCastRange(caster *model.Unit, a Ability, p model.Vec2) bool {
	return caster.Position().Within(p, a.CastRange(caster))
}

func positions(units []*model.Unit) []model.Vec2 {
	ps := make([]model.Vec2, len(units))
	for i, u := range units {
		ps[i] = u.Position()
	}
	return ps
}

// clusterPlan targets the centroid of units when there are at least minCount of them
// and the centroid is within cast range.
func clusterPlan(caster *model.Unit, a Ability, units []*model.Unit, minCount int) (castPlan, bool) {
	if len(units) == 0 || len(units) < minCount {
		return castPlan{}, false
	}
	c := model.Centroid(positions(units))
	if !inCastRange(caster, a, c) {
		return castPlan{}, false
	}
	return castPlan{point: c}, true
}

// autoHeal heals the most injured ally below the health threshold.
func autoHeal(ac *Autocaster, s *surroundings, a Ability) (castPlan, bool) {
	var best *model.Unit
	for _, u := range s.allies {
		if u.HealthFraction() >= ac.cfg.HealBelow {
			continue
		}
		if best == nil || u.HealthFraction() < best.HealthFraction() {
			best = u
		}
	}
	if best == nil || !inCastRange(s.caster, a, best.Position()) {
		return castPlan{}, false
	}
	return castPlan{point: best.Position(), target: best}, true
}

// autoGroupBuff buffs a cluster of allies that don't have the buff yet.
func autoGroupBuff(ac *Autocaster, s *surroundings, a Ability) (castPlan, bool) {
	var unbuffed []*model.Unit
	for _, u := range s.allies {
		if u.Buff(a.Name) == nil {
			unbuffed = append(unbuffed, u)
		}
	}
	return clusterPlan(s.caster, a, unbuffed, ac.cfg.GroupBuffMinAllies)
}

// autoDispel fires on a cluster of buffed enemies and debuffed allies.
func autoDispel(ac *Autocaster, s *surroundings, a Ability) (castPlan, bool) {
	var qualifying []*model.Unit
	for _, u := range s.enemies {
		if len(u.Buffs()) > 0 {
			qualifying = append(qualifying, u)
		}
	}
	for _, u := range s.allies {
		if len(u.Debuffs()) > 0 {
			qualifying = append(qualifying, u)
		}
	}
	return clusterPlan(s.caster, a, qualifying, ac.cfg.DebuffMinEnemies)
}

// autoDebuff targets the nearest enemy that doesn't carry the debuff yet.
func autoDebuff(_ *Autocaster, s *surroundings, a Ability) (castPlan, bool) {
	var (
		best     *model.Unit
		bestDist float64
	)
	for _, u := range s.enemies {
		if u.Debuff(a.Name) != nil {
			continue
		}
		d := s.caster.Position().DistanceSquared(u.Position())
		if best == nil || d < bestDist {
			best, bestDist = u, d
		}
	}
	if best == nil || !inCastRange(s.caster, a, best.Position()) {
		return castPlan{}, false
	}
	return castPlan{point: best.Position(), target: best}, true
}

// autoTaunt fires when enough untaunted enemies are inside the taunt radius.
func autoTaunt(ac *Autocaster, s *surroundings, a Ability) (castPlan, bool) {
	center := s.caster.Position()
	n := 0
	for _, u := range ac.world.InRadius(center, a.Param(model.ParamRadius)) {
		if s.caster.IsEnemy(u) && !u.HasStatusKind(model.StatusTaunt) {
			n++
		}
	}
	if n == 0 || n < ac.cfg.TauntMinEnemies {
		return castPlan{}, false
	}
	return castPlan{point: center}, true
}

// autoLink links unlinked allies when an enemy is near.
func autoLink(ac *Autocaster, s *surroundings, a Ability) (castPlan, bool) {
	if ac.linker == nil || len(s.enemies) == 0 {
		return castPlan{}, false
	}
	var unlinked []*model.Unit
	for _, u := range s.allies {
		if !ac.linker.IsLinked(u.Handle()) {
			unlinked = append(unlinked, u)
		}
	}
	minMembers := max(int(a.ParamOr(model.ParamMinMembers, 2)), 2)
	return clusterPlan(s.caster, a, unlinked, minMembers)
}

// autoResurrect targets the nearest eligible corpse within cast range.
func autoResurrect(ac *Autocaster, s *surroundings, a Ability) (castPlan, bool) {
	if ac.graveyard == nil {
		return castPlan{}, false
	}
	corpse, ok := ac.graveyard.Nearest(s.caster.Position(), s.caster.Faction(), a.AllowedTypes,
		ac.clock.Now(), a.Param(model.ParamMaxAge))
	if !ok || !inCastRange(s.caster, a, corpse.Pos) {
		return castPlan{}, false
	}
	return castPlan{point: corpse.Pos}, true
}
