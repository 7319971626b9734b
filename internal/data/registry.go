package data

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/udisondev/lanewars/internal/model"
)

var (
	// ErrUnknownAbility is a data-integrity error: something references an ability id
	// that has no template.
	ErrUnknownAbility = errors.New("unknown ability")
	// ErrUnknownUnitType is returned when spawning a unit type with no template.
	ErrUnknownUnitType = errors.New("unknown unit type")
	// ErrUnknownEffectKind is returned for effect kinds outside the closed set.
	ErrUnknownEffectKind = errors.New("unknown effect kind")
	// ErrInvalidTemplate is returned for structurally broken templates.
	ErrInvalidTemplate = errors.New("invalid template")
)

// Registry holds the static ability and unit tables of a battle.
// Read-only after construction and injected into the engine, so tests can use fixture tables.
type Registry struct {
	abilities map[string]*AbilityTemplate
	byName    map[string]*AbilityTemplate
	units     map[string]*UnitTemplate
}

// NewRegistry builds and validates a registry from template slices.
// Templates are copied: later changes to the input slices do not leak in.
func NewRegistry(abilities []AbilityTemplate, units []UnitTemplate) (*Registry, error) {
	r := &Registry{
		abilities: make(map[string]*AbilityTemplate, len(abilities)),
		byName:    make(map[string]*AbilityTemplate, len(abilities)),
		units:     make(map[string]*UnitTemplate, len(units)),
	}

	for i := range abilities {
		t := abilities[i]
		t.Params = maps.Clone(t.Params)
		t.AttackTypes = slices.Clone(t.AttackTypes)
		t.AllowedTypes = slices.Clone(t.AllowedTypes)
		if t.ID == "" {
			return nil, fmt.Errorf("%w: ability #%d has empty id", ErrInvalidTemplate, i)
		}
		if _, dup := r.abilities[t.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate ability id %q", ErrInvalidTemplate, t.ID)
		}
		if t.Name == "" {
			t.Name = t.ID
		}
		r.abilities[t.ID] = &t
		r.byName[t.Name] = &t
	}

	for i := range units {
		t := units[i]
		t.Abilities = slices.Clone(t.Abilities)
		if t.Type == "" {
			return nil, fmt.Errorf("%w: unit #%d has empty type", ErrInvalidTemplate, i)
		}
		if _, dup := r.units[t.Type]; dup {
			return nil, fmt.Errorf("%w: duplicate unit type %q", ErrInvalidTemplate, t.Type)
		}
		r.units[t.Type] = &t
	}

	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// DefaultRegistry returns a registry built from the built-in tables.
func DefaultRegistry() (*Registry, error) {
	return NewRegistry(abilityDefs, unitDefs)
}

// MustDefaultRegistry is DefaultRegistry for tests and tools; panics on broken built-in data.
func MustDefaultRegistry() *Registry {
	r, err := DefaultRegistry()
	if err != nil {
		panic("default tables are invalid: " + err.Error())
	}
	return r
}

// Validate checks cross-table references and effect kinds.
func (r *Registry) Validate() error {
	var errs []error
	for _, id := range slices.Sorted(maps.Keys(r.abilities)) {
		t := r.abilities[id]
		if !t.Kind.IsValid() {
			errs = append(errs, fmt.Errorf("ability %q: %w: %s", id, ErrUnknownEffectKind, t.Kind))
			continue
		}
		switch t.Kind {
		case EffectGroupBuff, EffectDebuff, EffectShield, EffectTaunt, EffectLink, EffectPassiveStructureStun:
			if t.Status == model.StatusNone {
				errs = append(errs, fmt.Errorf("ability %q: %w: kind %s needs a status", id, ErrInvalidTemplate, t.Kind))
			}
		}
		if t.Cooldown < 0 || t.ManaCost < 0 {
			errs = append(errs, fmt.Errorf("ability %q: %w: negative cost or cooldown", id, ErrInvalidTemplate))
		}
	}
	for _, typ := range slices.Sorted(maps.Keys(r.units)) {
		for _, a := range r.units[typ].Abilities {
			if _, ok := r.abilities[a.AbilityID]; !ok {
				errs = append(errs, fmt.Errorf("unit %q: %w: %q", typ, ErrUnknownAbility, a.AbilityID))
			}
		}
	}
	return errors.Join(errs...)
}

// Ability returns the template for an ability id.
func (r *Registry) Ability(id string) (*AbilityTemplate, bool) {
	t, ok := r.abilities[id]
	return t, ok
}

// AbilityByName returns the template for a display name (e.g. "Cleanse").
func (r *Registry) AbilityByName(name string) (*AbilityTemplate, bool) {
	t, ok := r.byName[name]
	return t, ok
}

// Unit returns the template for a unit type.
func (r *Registry) Unit(unitType string) (*UnitTemplate, bool) {
	t, ok := r.units[unitType]
	return t, ok
}

// AbilityIDs returns all ability ids, sorted.
func (r *Registry) AbilityIDs() []string {
	return slices.Sorted(maps.Keys(r.abilities))
}

// UnitTypes returns all unit types, sorted.
func (r *Registry) UnitTypes() []string {
	return slices.Sorted(maps.Keys(r.units))
}

// NewUnitSpec builds the spawn spec of a unit type. Abilities that require an upgrade
// start disabled; everything else starts enabled and off cooldown.
func (r *Registry) NewUnitSpec(unitType string, faction model.Faction, pos model.Vec2) (model.UnitSpec, error) {
	t, ok := r.units[unitType]
	if !ok {
		return model.UnitSpec{}, fmt.Errorf("%w: %q", ErrUnknownUnitType, unitType)
	}

	abilities := make([]model.AbilityInstance, 0, len(t.Abilities))
	for _, a := range t.Abilities {
		if _, ok := r.abilities[a.AbilityID]; !ok {
			slog.Error("unit template references missing ability",
				"unit", unitType,
				"ability", a.AbilityID)
			return model.UnitSpec{}, fmt.Errorf("unit %q: %w: %q", unitType, ErrUnknownAbility, a.AbilityID)
		}
		abilities = append(abilities, model.AbilityInstance{
			AbilityID: a.AbilityID,
			Enabled:   !a.RequiresUpgrade,
			Overrides: a.Overrides.Clone(),
		})
	}

	return model.UnitSpec{
		Type:        t.Type,
		Name:        t.Name,
		Faction:     faction,
		Structure:   t.Structure,
		Pos:         pos,
		MaxHealth:   t.MaxHealth,
		MaxMana:     t.MaxMana,
		ManaRegen:   t.ManaRegen,
		AttackMin:   t.AttackMin,
		AttackMax:   t.AttackMax,
		AttackSpeed: t.AttackSpeed,
		AttackRange: t.AttackRange,
		AttackType:  t.AttackType,
		MoveSpeed:   t.MoveSpeed,
		ArmorType:   t.ArmorType,
		Armor:       t.Armor,
		Abilities:   abilities,
	}, nil
}
