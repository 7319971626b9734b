package data

import (
	"fmt"
	"strings"

	"github.com/udisondev/lanewars/internal/model"
)

// EffectKind is the closed set of ability effect handlers.
type EffectKind uint8

const (
	EffectUnknown EffectKind = iota
	EffectHeal
	EffectDispel
	EffectGroupBuff
	EffectDebuff
	EffectShield
	EffectTaunt
	EffectLink
	EffectResurrect

	// Passive variants: never cast, triggered by the attack pipeline.
	EffectPassiveCleave
	EffectPassiveGroundFire
	EffectPassiveBounty
	EffectPassiveStructureStun
	EffectPassiveReduction
	EffectPassiveBlock

	EffectKindCount
)

var effectKindNames = [EffectKindCount]string{
	"unknown",
	"heal", "dispel", "group_buff", "debuff", "shield", "taunt", "link", "resurrect",
	"passive_cleave", "passive_ground_fire", "passive_bounty", "passive_structure_stun",
	"passive_reduction", "passive_block",
}

func (k EffectKind) String() string {
	if k >= EffectKindCount {
		return fmt.Sprintf("EffectKind(%d)", uint8(k))
	}
	return effectKindNames[k]
}

// IsPassive reports whether the kind is handled by the passive trigger path.
func (k EffectKind) IsPassive() bool {
	return k >= EffectPassiveCleave && k < EffectKindCount
}

// IsValid reports whether the kind is a known, dispatchable tag.
func (k EffectKind) IsValid() bool {
	return k > EffectUnknown && k < EffectKindCount
}

// ParseEffectKind parses a kind name as written in data files.
func ParseEffectKind(s string) (EffectKind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range effectKindNames {
		if i > 0 && name == s {
			return EffectKind(i), nil
		}
	}
	return EffectUnknown, fmt.Errorf("%w: %q", ErrUnknownEffectKind, s)
}

// AbilityTemplate is the static, shared definition of an ability.
// Shared across all units: do NOT modify after the registry is built.
type AbilityTemplate struct {
	ID       string
	Name     string
	Kind     EffectKind
	ManaCost float64
	Cooldown float64 // seconds
	Range    float64 // 0 = caster's attack range
	Status   model.StatusKind

	// AttackTypes restricts defensive passives to the listed attack types (empty = all).
	AttackTypes []model.AttackType
	// AllowedTypes restricts resurrection to the listed unit types (empty = all).
	AllowedTypes []string

	Params map[model.Param]float64
}

// IsPassive returns true if this ability is never cast.
func (t *AbilityTemplate) IsPassive() bool {
	return t.Kind.IsPassive()
}

// UnitAbility is one ability entry of a unit template.
type UnitAbility struct {
	AbilityID       string
	RequiresUpgrade bool
	Overrides       model.AbilityOverrides
}

// UnitTemplate is the static definition a unit is spawned from.
type UnitTemplate struct {
	Type      string
	Name      string
	Structure bool

	MaxHealth float64
	MaxMana   float64
	ManaRegen float64

	AttackMin   float64
	AttackMax   float64
	AttackSpeed float64
	AttackRange float64
	AttackType  model.AttackType
	MoveSpeed   float64
	ArmorType   model.ArmorType
	Armor       float64

	Abilities []UnitAbility
}
