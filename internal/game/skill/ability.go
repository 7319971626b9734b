package skill

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/udisondev/lanewars/internal/data"
	"github.com/udisondev/lanewars/internal/model"
)

// ErrTemplateNotFound is a data-integrity error: an ability instance references an id
// with no template. Distinct from "ability not found by name", which is a normal rejection.
var ErrTemplateNotFound = errors.New("ability template not found")

// Templates is the read-only ability table the skill package resolves instances against.
type Templates interface {
	Ability(id string) (*data.AbilityTemplate, bool)
}

// Ability is the effective view of one unit's ability: template fields with the
// instance overrides written over them. Every other component reads only this view.
type Ability struct {
	ID       string
	Name     string
	Kind     data.EffectKind
	Status   model.StatusKind
	Enabled  bool
	ManaCost float64
	Cooldown float64 // full cooldown set on cast
	Range    float64 // 0 = caster's attack range

	// Remaining is the instance cooldown left, in seconds.
	Remaining float64

	AttackTypes  []model.AttackType
	AllowedTypes []string

	params map[model.Param]float64
}

// Merge builds the effective ability from a template and an instance. Instance values win.
// The result never shares storage with the template.
func Merge(t *data.AbilityTemplate, inst *model.AbilityInstance) Ability {
	a := Ability{
		ID:           t.ID,
		Name:         t.Name,
		Kind:         t.Kind,
		Status:       t.Status,
		Enabled:      inst.Enabled,
		ManaCost:     t.ManaCost,
		Cooldown:     t.Cooldown,
		Range:        t.Range,
		Remaining:    inst.Cooldown,
		AttackTypes:  slices.Clone(t.AttackTypes),
		AllowedTypes: slices.Clone(t.AllowedTypes),
		params:       make(map[model.Param]float64, len(t.Params)+len(inst.Overrides.Params)),
	}

	o := inst.Overrides
	if o.ManaCost != nil {
		a.ManaCost = *o.ManaCost
	}
	if o.Cooldown != nil {
		a.Cooldown = *o.Cooldown
	}
	if o.Range != nil {
		a.Range = *o.Range
	}

	maps.Copy(a.params, t.Params)
	maps.Copy(a.params, o.Params)
	return a
}

// Resolve looks up the template of inst and merges them.
// Returns ErrTemplateNotFound if the registry has no such ability.
func Resolve(reg Templates, inst *model.AbilityInstance) (Ability, error) {
	t, ok := reg.Ability(inst.AbilityID)
	if !ok {
		return Ability{}, fmt.Errorf("%w: %q", ErrTemplateNotFound, inst.AbilityID)
	}
	return Merge(t, inst), nil
}

// IsPassive returns true if the ability is never cast.
func (a Ability) IsPassive() bool { return a.Kind.IsPassive() }

// Param returns an effect parameter, 0 if absent.
func (a Ability) Param(p model.Param) float64 { return a.params[p] }

// ParamOr returns an effect parameter or def if absent.
func (a Ability) ParamOr(p model.Param, def float64) float64 {
	if v, ok := a.params[p]; ok {
		return v
	}
	return def
}

// HasParam reports whether the parameter is defined by the template or the instance.
func (a Ability) HasParam(p model.Param) bool {
	_, ok := a.params[p]
	return ok
}

// CastRange returns the effective cast range for a caster.
func (a Ability) CastRange(caster *model.Unit) float64 {
	if a.Range > 0 {
		return a.Range
	}
	return caster.AttackRange()
}

// status builds the buff/debuff this ability applies.
func (a Ability) status(source model.Handle) model.Status {
	return model.Status{
		Name:            a.Name,
		Kind:            a.Status,
		Debuff:          isDebuffKind(a.Status),
		Source:          source,
		Remaining:       a.Param(model.ParamDuration),
		Percent:         a.Param(model.ParamPercent),
		Amount:          a.Param(model.ParamAmount),
		DamagePerSecond: a.Param(model.ParamDamagePerSecond),
		SplashRadius:    a.Param(model.ParamSplashRadius),
		SplashFraction:  a.Param(model.ParamSplashFraction),
	}
}

// findAbility returns the instance and effective view of the unit's ability whose
// display name or id equals name. Instances with a missing template are reported as
// configuration errors and skipped.
func findAbility(reg Templates, u *model.Unit, name string) (*model.AbilityInstance, Ability, bool) {
	abilities := u.Abilities()
	for i := range abilities {
		inst := &abilities[i]
		a, err := Resolve(reg, inst)
		if err != nil {
			reportConfigError(u, err)
			continue
		}
		if a.Name == name || a.ID == name {
			return inst, a, true
		}
	}
	return nil, Ability{}, false
}
