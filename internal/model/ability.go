package model

import "strings"

// Param names an effect-specific numeric parameter of an ability.
// Templates carry defaults, ability instances may override any of them.
type Param uint8

const (
	ParamRadius          Param = iota // area radius around the cast point
	ParamDuration                     // seconds
	ParamPercent                      // fraction 0..1 (haste, slow, damage reduction)
	ParamAmount                       // flat amount (heal, armor, bonus damage, gold)
	ParamMaxTargets                   // 0 = unbounded
	ParamProcChance                   // 0..1, passives only; missing = always
	ParamDamagePerSecond              // periodic damage
	ParamSplashRadius                 // secondary radius of periodic damage
	ParamSplashFraction               // fraction of periodic damage dealt to splash targets
	ParamShareFraction                // linked group damage share
	ParamMinMembers                   // linked group minimum size
	ParamMaxMembers                   // linked group maximum size
	ParamMaxAge                       // seconds, resurrect corpse age limit
	ParamFloor                        // minimum damage left after a flat block

	ParamCount = 14
)

var paramNames = [ParamCount]string{
	"radius", "duration", "percent", "amount", "max_targets", "proc_chance",
	"damage_per_second", "splash_radius", "splash_fraction", "share_fraction",
	"min_members", "max_members", "max_age", "floor",
}

func (p Param) String() string {
	if int(p) >= ParamCount {
		return "unknown"
	}
	return paramNames[p]
}

// ParseParam parses a parameter name as used in data files.
func ParseParam(s string) (Param, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range paramNames {
		if name == s {
			return Param(i), true
		}
	}
	return 0, false
}

// AbilityOverrides holds per-unit overrides of template values.
// A nil pointer or a missing map key means "use the template value".
type AbilityOverrides struct {
	ManaCost *float64
	Cooldown *float64
	Range    *float64
	Params   map[Param]float64
}

// Clone returns a deep copy so two instances never share override storage.
func (o AbilityOverrides) Clone() AbilityOverrides {
	c := AbilityOverrides{
		ManaCost: clonePtr(o.ManaCost),
		Cooldown: clonePtr(o.Cooldown),
		Range:    clonePtr(o.Range),
	}
	if o.Params != nil {
		c.Params = make(map[Param]float64, len(o.Params))
		for k, v := range o.Params {
			c.Params[k] = v
		}
	}
	return c
}

func clonePtr(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// AbilityInstance is the per-unit state of one ability.
type AbilityInstance struct {
	AbilityID string
	Enabled   bool    // false until the required upgrade is bought
	Cooldown  float64 // seconds remaining, never negative
	Overrides AbilityOverrides
}

// TickCooldown decrements the remaining cooldown, flooring at zero.
func (a *AbilityInstance) TickCooldown(delta float64) {
	if a.Cooldown <= 0 {
		return
	}
	a.Cooldown -= delta
	if a.Cooldown < 0 {
		a.Cooldown = 0
	}
}

// Ready reports whether the ability is off cooldown.
func (a *AbilityInstance) Ready() bool {
	return a.Cooldown <= 0
}
