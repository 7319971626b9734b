package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/udisondev/lanewars/internal/data"
	"github.com/udisondev/lanewars/internal/model"
	"github.com/udisondev/lanewars/internal/world"
)

// NewWorld creates an empty battle world with the default dead-unit history.
func NewWorld(t testing.TB) *world.World {
	t.Helper()
	return world.New(world.DefaultDeadHistoryCapacity)
}

// BasicSpec returns a plain melee unit: 1000 hp, no mana, no armor, 10 flat damage,
// no abilities. Tests tweak the fields they care about.
func BasicSpec(faction model.Faction, x, y float64) model.UnitSpec {
	return model.UnitSpec{
		Type:        "dummy",
		Name:        "Dummy",
		Faction:     faction,
		Pos:         model.NewVec2(x, y),
		MaxHealth:   1000,
		AttackMin:   10,
		AttackMax:   10,
		AttackSpeed: 1,
		AttackRange: 50,
		AttackType:  model.AttackNormal,
		MoveSpeed:   50,
		ArmorType:   model.ArmorUnarmored,
	}
}

// AddUnit creates a unit from spec and registers it in w.
func AddUnit(t testing.TB, w *world.World, spec model.UnitSpec) *model.Unit {
	t.Helper()
	u := model.NewUnit(spec)
	_, err := w.Add(u)
	require.NoError(t, err)
	return u
}

// SpawnUnit creates a unit of a roster type and registers it in w.
// Upgrade-gated abilities are enabled so tests can exercise them.
func SpawnUnit(t testing.TB, w *world.World, reg *data.Registry, unitType string, faction model.Faction, x, y float64) *model.Unit {
	t.Helper()
	spec, err := reg.NewUnitSpec(unitType, faction, model.NewVec2(x, y))
	require.NoError(t, err)
	for i := range spec.Abilities {
		spec.Abilities[i].Enabled = true
	}
	return AddUnit(t, w, spec)
}

// WithAbility returns spec with an enabled ability instance appended.
func WithAbility(spec model.UnitSpec, abilityID string, params map[model.Param]float64) model.UnitSpec {
	spec.Abilities = append(spec.Abilities, model.AbilityInstance{
		AbilityID: abilityID,
		Enabled:   true,
		Overrides: model.AbilityOverrides{Params: params},
	})
	return spec
}

// Registry returns the built-in ability/unit tables.
func Registry(t testing.TB) *data.Registry {
	t.Helper()
	r, err := data.DefaultRegistry()
	require.NoError(t, err)
	return r
}
