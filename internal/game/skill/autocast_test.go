package skill

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/lanewars/internal/model"
)

func TestAutocast_HealsMostInjuredAlly(t *testing.T) {
	env := newTestEnv(t)
	cleric := env.spawn(t, "cleric", model.FactionWest, 0, 0)
	scratched := env.dummy(t, model.FactionWest, 50, 0)
	wounded := env.dummy(t, model.FactionWest, 100, 0)
	scratched.SetHealth(650)
	wounded.SetHealth(300)

	require.True(t, env.auto.Update(cleric))

	assert.Equal(t, 420.0, wounded.Health())
	assert.Equal(t, 650.0, scratched.Health())
	assert.Equal(t, 4.0, cleric.Ability("mend").Cooldown)
	assert.Zero(t, cleric.Ability("battle_hymn").Cooldown, "one cast per update")
}

func TestAutocast_NoHealAboveThreshold(t *testing.T) {
	env := newTestEnv(t)
	cleric := env.spawn(t, "cleric", model.FactionWest, 0, 0)
	ally := env.dummy(t, model.FactionWest, 50, 0)
	ally.SetHealth(700)

	assert.False(t, env.auto.Update(cleric))
	assert.Equal(t, 250.0, cleric.Mana())
}

func TestAutocast_GroupBuffNeedsCluster(t *testing.T) {
	env := newTestEnv(t)
	cleric := env.spawn(t, "cleric", model.FactionWest, 0, 0)
	a := env.dummy(t, model.FactionWest, 50, 0)

	assert.False(t, env.auto.Update(cleric), "two allies are not enough")

	b := env.dummy(t, model.FactionWest, 100, 0)
	require.True(t, env.auto.Update(cleric))
	for _, u := range []*model.Unit{cleric, a, b} {
		assert.NotNil(t, u.Buff("Battle Hymn"), u.Name())
	}
}

func TestAutocast_SettingsDisableAbility(t *testing.T) {
	env := newTestEnv(t)
	env.auto.settings = stubSettings{disabled: map[string]bool{"mend": true}}
	cleric := env.spawn(t, "cleric", model.FactionWest, 0, 0)
	wounded := env.dummy(t, model.FactionWest, 50, 0)
	env.dummy(t, model.FactionWest, 100, 0)
	wounded.SetHealth(100)

	require.True(t, env.auto.Update(cleric))
	assert.Equal(t, 100.0, wounded.Health())
	assert.NotNil(t, wounded.Buff("Battle Hymn"))
}

func TestAutocast_DebuffNearestEnemy(t *testing.T) {
	env := newTestEnv(t)
	weaver := env.spawn(t, "weaver", model.FactionWest, 0, 0)
	weaver.Ability("unstable_shield").Enabled = false
	near := env.dummy(t, model.FactionEast, 120, 0)
	far := env.dummy(t, model.FactionEast, 180, 0)

	require.True(t, env.auto.Update(weaver))
	assert.NotNil(t, near.Debuff("Cripple"))
	assert.Nil(t, far.Debuff("Cripple"))

	// Cripple is on cooldown now; nothing else qualifies.
	assert.False(t, env.auto.Update(weaver))
}

func TestAutocast_DebuffSkipsAlreadyDebuffed(t *testing.T) {
	env := newTestEnv(t)
	weaver := env.spawn(t, "weaver", model.FactionWest, 0, 0)
	weaver.Ability("unstable_shield").Enabled = false
	near := env.dummy(t, model.FactionEast, 120, 0)
	far := env.dummy(t, model.FactionEast, 180, 0)
	require.NoError(t, env.effects.Apply(near, slow("Cripple", 0.4, 6)))

	require.True(t, env.auto.Update(weaver))
	assert.NotNil(t, far.Debuff("Cripple"))
}

func TestAutocast_DispelCluster(t *testing.T) {
	env := newTestEnv(t)
	weaver := env.spawn(t, "weaver", model.FactionWest, 0, 0)
	enemies := []*model.Unit{
		env.dummy(t, model.FactionEast, 100, 0),
		env.dummy(t, model.FactionEast, 110, 0),
		env.dummy(t, model.FactionEast, 120, 0),
	}
	for _, e := range enemies {
		require.NoError(t, env.effects.Apply(e, haste("Battle Hymn", 0.25, 8)))
	}

	require.True(t, env.auto.Update(weaver))
	assert.Equal(t, 5.0, weaver.Ability("cleanse").Cooldown)
	for _, e := range enemies {
		assert.Empty(t, e.Buffs())
	}
}

func TestAutocast_TauntUsesOwnRadius(t *testing.T) {
	env := newTestEnv(t)
	warden := env.spawn(t, "warden", model.FactionWest, 0, 0)
	e1 := env.dummy(t, model.FactionEast, 100, 0)

	assert.False(t, env.auto.Update(warden), "one enemy is not enough")

	e2 := env.dummy(t, model.FactionEast, 0, 120)
	require.True(t, env.auto.Update(warden))
	assert.Equal(t, warden.Handle(), e1.ForcedTarget())
	assert.Equal(t, warden.Handle(), e2.ForcedTarget())
}

func TestAutocast_LinkWhenEnemyNear(t *testing.T) {
	env := newTestEnv(t)
	shaman := env.spawn(t, "shaman", model.FactionWest, 0, 0)
	shaman.Ability("sunder").Enabled = false
	ally := env.dummy(t, model.FactionWest, 50, 0)

	assert.False(t, env.auto.Update(shaman), "no enemy in range")

	env.dummy(t, model.FactionEast, 150, 0)
	require.True(t, env.auto.Update(shaman))
	assert.True(t, env.linker.IsLinked(shaman.Handle()))
	assert.True(t, env.linker.IsLinked(ally.Handle()))
}

func TestAutocast_Resurrect(t *testing.T) {
	env := newTestEnv(t)
	necro := env.spawn(t, "necromancer", model.FactionWest, 0, 0)
	env.clock.now = 10
	env.w.DeadHistory().Record("archer", model.FactionWest, model.NewVec2(150, 0), 5)

	require.True(t, env.auto.Update(necro))
	assert.Zero(t, env.w.DeadHistory().Len())
	assert.Len(t, env.w.Units(model.FactionWest), 2)
}

func TestAutocast_IdleStates(t *testing.T) {
	env := newTestEnv(t)
	cleric := env.spawn(t, "cleric", model.FactionWest, 0, 0)
	wounded := env.dummy(t, model.FactionWest, 50, 0)
	wounded.SetHealth(100)

	cleric.SetMana(10)
	assert.False(t, env.auto.Update(cleric), "cannot afford anything")

	cleric.SetMana(250)
	require.NoError(t, env.effects.Apply(cleric, model.Status{Name: "stun", Kind: model.StatusStun, Remaining: 1}))
	assert.False(t, env.auto.Update(cleric), "stunned")

	env.effects.Tick(1)
	assert.True(t, env.auto.Update(cleric))
}
