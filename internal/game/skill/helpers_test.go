package skill

import (
	"testing"

	"github.com/udisondev/lanewars/internal/data"
	"github.com/udisondev/lanewars/internal/model"
	"github.com/udisondev/lanewars/internal/testutil"
	"github.com/udisondev/lanewars/internal/world"
)

type testClock struct{ now float64 }

func (c *testClock) Now() float64 { return c.now }

type stubTreasury struct{ gold map[model.Faction]float64 }

func (s *stubTreasury) AddGold(f model.Faction, amount float64) {
	if s.gold == nil {
		s.gold = make(map[model.Faction]float64)
	}
	s.gold[f] += amount
}

type stubGround struct{ spawned []GroundSpec }

func (s *stubGround) SpawnGround(spec GroundSpec) { s.spawned = append(s.spawned, spec) }

type stubLinker struct {
	linked map[model.Handle]bool
	groups [][]*model.Unit
}

func (s *stubLinker) Link(members []*model.Unit, _, _ float64, _ string, _ model.Handle) bool {
	if s.linked == nil {
		s.linked = make(map[model.Handle]bool)
	}
	for _, m := range members {
		s.linked[m.Handle()] = true
	}
	s.groups = append(s.groups, members)
	return true
}

func (s *stubLinker) IsLinked(h model.Handle) bool { return s.linked[h] }

type stubSettings struct{ disabled map[string]bool }

func (s stubSettings) AutocastEnabled(_ model.Handle, abilityID string) bool {
	return !s.disabled[abilityID]
}

// worldSpawner spawns roster units straight into the test world.
type worldSpawner struct {
	t   testing.TB
	w   *world.World
	reg *data.Registry
}

func (s worldSpawner) Spawn(unitType string, faction model.Faction, pos model.Vec2) (*model.Unit, error) {
	spec, err := s.reg.NewUnitSpec(unitType, faction, pos)
	if err != nil {
		return nil, err
	}
	u := model.NewUnit(spec)
	if _, err := s.w.Add(u); err != nil {
		return nil, err
	}
	return u, nil
}

// testEnv wires the skill package against a real world and the default tables.
type testEnv struct {
	w        *world.World
	reg      *data.Registry
	clock    *testClock
	rand     *testutil.FixedRand
	rec      *testutil.EffectRecorder
	treasury *stubTreasury
	ground   *stubGround
	linker   *stubLinker

	effects  *EffectManager
	casts    *CastManager
	passives *PassiveHandler
	auto     *Autocaster
}

func newTestEnv(t testing.TB) *testEnv {
	t.Helper()
	env := &testEnv{
		w:        testutil.NewWorld(t),
		reg:      testutil.Registry(t),
		clock:    &testClock{},
		rand:     testutil.NewFixedRand(0.5),
		rec:      &testutil.EffectRecorder{},
		treasury: &stubTreasury{},
		ground:   &stubGround{},
		linker:   &stubLinker{},
	}

	env.effects = NewEffectManager(env.w, env.damage, env.rec.Sink())
	env.casts = NewCastManager(CastDeps{
		Templates: env.reg,
		World:     env.w,
		Effects:   env.effects,
		Graveyard: env.w.DeadHistory(),
		Spawner:   worldSpawner{t: t, w: env.w, reg: env.reg},
		Linker:    env.linker,
		Clock:     env.clock,
		Sink:      env.rec.Sink(),
	})
	env.passives = NewPassiveHandler(PassiveDeps{
		Templates: env.reg,
		World:     env.w,
		Effects:   env.effects,
		Ground:    env.ground,
		Treasury:  env.treasury,
		Rand:      env.rand,
		Damage:    env.damage,
		Sink:      env.rec.Sink(),
	})
	env.auto = NewAutocaster(AutocastDeps{
		Templates: env.reg,
		World:     env.w,
		Casts:     env.casts,
		Graveyard: env.w.DeadHistory(),
		Linker:    env.linker,
		Clock:     env.clock,
		Config:    DefaultAutocastConfig(),
	})
	return env
}

// damage is the direct damage path with the death bookkeeping the engine does.
func (e *testEnv) damage(target *model.Unit, amount float64, _ model.Handle, _ string) {
	if !target.TakeDamage(amount) {
		return
	}
	e.effects.DetachAll(target)
	e.w.DeadHistory().Record(target.Type(), target.Faction(), target.Position(), e.clock.Now())
}

func (e *testEnv) spawn(t testing.TB, unitType string, faction model.Faction, x, y float64) *model.Unit {
	t.Helper()
	return testutil.SpawnUnit(t, e.w, e.reg, unitType, faction, x, y)
}

func (e *testEnv) dummy(t testing.TB, faction model.Faction, x, y float64) *model.Unit {
	t.Helper()
	return testutil.AddUnit(t, e.w, testutil.BasicSpec(faction, x, y))
}
