package party

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/lanewars/internal/game/skill"
	"github.com/udisondev/lanewars/internal/model"
	"github.com/udisondev/lanewars/internal/testutil"
	"github.com/udisondev/lanewars/internal/world"
)

const linkLabel = "Spirit Link"

type fixture struct {
	w       *world.World
	effects *skill.EffectManager
	mgr     *Manager
	rec     *testutil.EffectRecorder
	dealt   map[model.Handle]float64
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		w:     testutil.NewWorld(t),
		rec:   &testutil.EffectRecorder{},
		dealt: make(map[model.Handle]float64),
	}
	damage := func(u *model.Unit, amount float64, _ model.Handle, _ string) {
		f.dealt[u.Handle()] += amount
		if u.TakeDamage(amount) {
			f.effects.DetachAll(u)
			f.mgr.Leave(u.Handle())
		}
	}
	f.effects = skill.NewEffectManager(f.w, damage, f.rec.Sink())
	f.mgr = NewManager(Deps{
		World:   f.w,
		Effects: f.effects,
		Damage:  damage,
		Sink:    f.rec.Sink(),
		IDs:     world.NewIDGenerator(),
	})
	return f
}

func (f *fixture) units(t *testing.T, n int) []*model.Unit {
	t.Helper()
	out := make([]*model.Unit, n)
	for i := range out {
		out[i] = testutil.AddUnit(t, f.w, testutil.BasicSpec(model.FactionWest, float64(i*10), 0))
	}
	return out
}

func TestManager_Link(t *testing.T) {
	f := newFixture(t)
	us := f.units(t, 3)

	require.True(t, f.mgr.Link(us, 0.5, 20, linkLabel, us[0].Handle()))
	assert.Equal(t, 1, f.mgr.Count())
	for _, u := range us {
		assert.True(t, f.mgr.IsLinked(u.Handle()))
		require.NotNil(t, u.Buff(linkLabel))
		assert.Equal(t, model.StatusLink, u.Buff(linkLabel).Kind)
	}

	g, ok := f.mgr.GroupOf(us[1].Handle())
	require.True(t, ok)
	assert.Equal(t, 3, g.MemberCount())
	assert.Equal(t, 0.5, g.ShareFraction)
}

func TestManager_LinkRejectsTooFewMembers(t *testing.T) {
	f := newFixture(t)
	us := f.units(t, 3)
	require.True(t, f.mgr.Link(us[:2], 0.5, 20, linkLabel, model.Handle{}))

	// Only us[2] is still unlinked.
	assert.False(t, f.mgr.Link(us, 0.5, 20, "Other Link", model.Handle{}))
	assert.Nil(t, us[2].Buff("Other Link"), "partial link must be rolled back")
	assert.Equal(t, 1, f.mgr.Count())
}

func TestManager_LinkCapsMembers(t *testing.T) {
	f := newFixture(t)
	us := f.units(t, 6)

	require.True(t, f.mgr.Link(us, 0.5, 20, linkLabel, model.Handle{}))
	g, _ := f.mgr.GroupOf(us[0].Handle())
	assert.Equal(t, 4, g.MemberCount())
	assert.False(t, f.mgr.IsLinked(us[4].Handle()))
}

func TestManager_ShareConservesDamage(t *testing.T) {
	tests := []struct {
		name    string
		members int
		frac    float64
		damage  float64
	}{
		{"pair", 2, 0.5, 37},
		{"four thirds", 4, 0.5, 100},
		{"odd fraction", 3, 0.33, 71.7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			us := f.units(t, tt.members)
			require.True(t, f.mgr.Link(us, tt.frac, 20, linkLabel, model.Handle{}))

			retained := f.mgr.Share(us[0], tt.damage)

			total := retained
			for _, u := range us[1:] {
				total += f.dealt[u.Handle()]
			}
			assert.InDelta(t, tt.damage, total, 1e-9)
			assert.InDelta(t, tt.damage*(1-tt.frac), retained, 1e-9)
			assert.Zero(t, f.dealt[us[0].Handle()], "defender takes its part through the caller")
		})
	}
}

func TestManager_ShareDoesNotRecurse(t *testing.T) {
	f := newFixture(t)
	us := f.units(t, 2)
	require.True(t, f.mgr.Link(us, 0.5, 20, linkLabel, model.Handle{}))

	calls := 0
	f.mgr.damage = func(u *model.Unit, amount float64, _ model.Handle, _ string) {
		calls++
		u.TakeDamage(f.mgr.Share(u, amount))
	}

	retained := f.mgr.Share(us[0], 40)
	assert.Equal(t, 20.0, retained)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 980.0, us[1].Health())
	assert.Equal(t, 1, f.rec.Count(model.EventLinkShare))
}

func TestManager_ShareUnlinked(t *testing.T) {
	f := newFixture(t)
	us := f.units(t, 1)

	assert.Equal(t, 50.0, f.mgr.Share(us[0], 50))
}

func TestManager_DropToOneMemberTearsDownSameTick(t *testing.T) {
	f := newFixture(t)
	us := f.units(t, 2)
	require.True(t, f.mgr.Link(us, 0.5, 20, linkLabel, model.Handle{}))

	// Dies without going through Leave: the tick must notice.
	us[1].TakeDamage(us[1].MaxHealth())
	f.mgr.Tick(0.05)

	assert.Zero(t, f.mgr.Count())
	assert.Nil(t, us[0].Buff(linkLabel))
	assert.False(t, f.mgr.IsLinked(us[0].Handle()))
}

func TestManager_LeaveOnDeathDisbands(t *testing.T) {
	f := newFixture(t)
	us := f.units(t, 2)
	require.True(t, f.mgr.Link(us, 0.5, 20, linkLabel, model.Handle{}))

	f.mgr.damage(us[1], us[1].MaxHealth(), model.Handle{}, "test")

	assert.Zero(t, f.mgr.Count())
	assert.Nil(t, us[0].Buff(linkLabel))
}

func TestManager_DispelledMemberDropped(t *testing.T) {
	f := newFixture(t)
	us := f.units(t, 3)
	require.True(t, f.mgr.Link(us, 0.5, 20, linkLabel, model.Handle{}))

	f.effects.StripBuffs(us[2])
	f.mgr.Tick(0.05)

	g, ok := f.mgr.GroupOf(us[0].Handle())
	require.True(t, ok)
	assert.Equal(t, 2, g.MemberCount())
	assert.False(t, f.mgr.IsLinked(us[2].Handle()))
}

func TestManager_Expiry(t *testing.T) {
	f := newFixture(t)
	us := f.units(t, 3)
	require.True(t, f.mgr.Link(us, 0.5, 2, linkLabel, model.Handle{}))

	f.mgr.Tick(1)
	assert.Equal(t, 1, f.mgr.Count())

	f.mgr.Tick(1)
	assert.Zero(t, f.mgr.Count())
	for _, u := range us {
		assert.Nil(t, u.Buff(linkLabel))
		assert.False(t, f.mgr.IsLinked(u.Handle()))
	}
	assert.Zero(t, f.effects.ActiveCount())
}
