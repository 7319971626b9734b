package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/lanewars/internal/model"
	"github.com/udisondev/lanewars/internal/testutil"
	"github.com/udisondev/lanewars/internal/world"
)

type testClock struct{ now float64 }

func (c *testClock) Now() float64 { return c.now }

// recordingPassives records the pipeline stage order and applies fixed adjustments.
type recordingPassives struct {
	stages      []string
	attackBonus float64
	defendMul   float64
}

func (p *recordingPassives) OnAttack(_, _ *model.Unit, damage float64) float64 {
	p.stages = append(p.stages, "attack")
	return damage + p.attackBonus
}

func (p *recordingPassives) OnDefend(_, _ *model.Unit, damage float64, _ model.AttackType) float64 {
	p.stages = append(p.stages, "defend")
	return damage * p.defendMul
}

type halfSharer struct{ calls []float64 }

func (s *halfSharer) Share(_ *model.Unit, damage float64) float64 {
	s.calls = append(s.calls, damage)
	return damage / 2
}

func directDamage(target *model.Unit, amount float64, _ model.Handle, _ string) {
	target.TakeDamage(amount)
}

func newTestManager(w *world.World, clock *testClock, d Deps) *CombatManager {
	d.World = w
	d.Clock = clock
	if d.Damage == nil {
		d.Damage = directDamage
	}
	if d.Rand == nil {
		d.Rand = testutil.NewFixedRand(0)
	}
	return NewCombatManager(d)
}

func TestResolveAttack_PlainHit(t *testing.T) {
	w := testutil.NewWorld(t)
	spec := testutil.BasicSpec(model.FactionWest, 0, 0)
	spec.AttackMin, spec.AttackMax = 100, 100
	attacker := testutil.AddUnit(t, w, spec)
	defender := testutil.AddUnit(t, w, testutil.BasicSpec(model.FactionEast, 10, 0))

	rec := &testutil.EffectRecorder{}
	m := newTestManager(w, &testClock{}, Deps{Sink: rec.Sink()})

	require.True(t, m.ResolveAttack(attacker, defender))
	assert.Equal(t, 900.0, defender.Health())

	ev, ok := rec.Last(model.EventAttack)
	require.True(t, ok)
	assert.Equal(t, 100.0, ev.Amount)
	assert.Equal(t, defender.Handle(), ev.Target)
}

func TestResolveAttack_PipelineOrder(t *testing.T) {
	w := testutil.NewWorld(t)
	spec := testutil.BasicSpec(model.FactionWest, 0, 0)
	spec.AttackType = model.AttackPierce
	attacker := testutil.AddUnit(t, w, spec)

	dspec := testutil.BasicSpec(model.FactionEast, 10, 0)
	dspec.ArmorType = model.ArmorLight
	defender := testutil.AddUnit(t, w, dspec)

	passives := &recordingPassives{attackBonus: 10, defendMul: 0.5}
	sharer := &halfSharer{}
	m := newTestManager(w, &testClock{}, Deps{Passives: passives, Sharer: sharer})

	var hit HitResult
	m.SetHitObserver(func(r HitResult) { hit = r })

	require.True(t, m.ResolveAttack(attacker, defender))

	// (10 + 10) × 2.0 pierce-vs-light = 40 → ×0.5 defend = 20 → half shared = 10
	assert.Equal(t, []string{"attack", "defend"}, passives.stages)
	require.Len(t, sharer.calls, 1)
	assert.Equal(t, 20.0, sharer.calls[0], "sharing sees mitigated damage")
	assert.Equal(t, 20.0, hit.Base)
	assert.Equal(t, 20.0, hit.Damage)
	assert.Equal(t, 10.0, hit.Retained)
	assert.Equal(t, 990.0, defender.Health())
}

func TestResolveAttack_Rejections(t *testing.T) {
	w := testutil.NewWorld(t)
	a := testutil.AddUnit(t, w, testutil.BasicSpec(model.FactionWest, 0, 0))
	ally := testutil.AddUnit(t, w, testutil.BasicSpec(model.FactionWest, 5, 0))
	enemy := testutil.AddUnit(t, w, testutil.BasicSpec(model.FactionEast, 5, 0))

	m := newTestManager(w, &testClock{}, Deps{})

	assert.False(t, m.ResolveAttack(a, ally), "friendly fire")
	assert.False(t, m.ResolveAttack(a, nil))
	assert.Equal(t, 1000.0, ally.Health())

	enemy.TakeDamage(enemy.MaxHealth())
	assert.False(t, m.ResolveAttack(a, enemy), "dead target")
}

func TestRollBase_Range(t *testing.T) {
	w := testutil.NewWorld(t)
	spec := testutil.BasicSpec(model.FactionWest, 0, 0)
	spec.AttackMin, spec.AttackMax = 10, 20
	u := testutil.AddUnit(t, w, spec)

	m := newTestManager(w, &testClock{}, Deps{Rand: testutil.NewFixedRand(0, 0.5, 0.999)})

	assert.Equal(t, 10.0, m.RollBase(u))
	assert.Equal(t, 15.0, m.RollBase(u))
	assert.Equal(t, 20.0, m.RollBase(u))
}

func TestUpdate_WalksIntoRangeThenAttacks(t *testing.T) {
	w := testutil.NewWorld(t)
	spec := testutil.BasicSpec(model.FactionWest, 0, 0)
	spec.MoveSpeed = 100
	spec.AttackRange = 50
	spec.AttackSpeed = 1
	attacker := testutil.AddUnit(t, w, spec)

	tspec := testutil.BasicSpec(model.FactionEast, 200, 0)
	tspec.MoveSpeed = 0
	target := testutil.AddUnit(t, w, tspec)

	clock := &testClock{}
	m := newTestManager(w, clock, Deps{})

	// 150 units to walk at 100/s
	m.Update(1)
	assert.InDelta(t, 100.0, attacker.Position().X, 1e-9)
	assert.Equal(t, target.Handle(), attacker.Target())
	assert.Equal(t, 1000.0, target.Health())

	clock.now = 1
	m.Update(1)
	require.True(t, attacker.Position().Within(target.Position(), spec.AttackRange))

	clock.now = 2
	m.Update(1)
	assert.Equal(t, 990.0, target.Health())
	assert.Equal(t, 3.0, attacker.NextAttackAt())

	// Attack timer gates the next swing
	clock.now = 2.5
	m.Update(0.5)
	assert.Equal(t, 990.0, target.Health())

	clock.now = 3
	m.Update(0.5)
	assert.Equal(t, 980.0, target.Health())
}

func TestUpdate_ForcedTargetOverridesNearest(t *testing.T) {
	w := testutil.NewWorld(t)
	spec := testutil.BasicSpec(model.FactionWest, 0, 0)
	spec.AttackRange = 500
	u := testutil.AddUnit(t, w, spec)

	near := testutil.AddUnit(t, w, testutil.BasicSpec(model.FactionEast, 10, 0))
	taunter := testutil.AddUnit(t, w, testutil.BasicSpec(model.FactionEast, 300, 0))

	m := newTestManager(w, &testClock{}, Deps{})

	u.SetForcedTarget(taunter.Handle())
	m.Update(0.1)
	assert.Equal(t, taunter.Handle(), u.Target())
	assert.Equal(t, 990.0, taunter.Health())
	assert.Equal(t, 1000.0, near.Health())

	// Dead forced target falls back to nearest enemy
	taunter.TakeDamage(taunter.Health())
	u.SetNextAttackAt(0)
	m.Update(0.1)
	assert.Equal(t, near.Handle(), u.Target())
}

func TestUpdate_StunnedUnitIdles(t *testing.T) {
	w := testutil.NewWorld(t)
	u := testutil.AddUnit(t, w, testutil.BasicSpec(model.FactionWest, 0, 0))
	enemySpec := testutil.BasicSpec(model.FactionEast, 10, 0)
	enemySpec.MoveSpeed = 0
	enemySpec.AttackRange = 0
	enemy := testutil.AddUnit(t, w, enemySpec)

	u.SetStunned(true)
	m := newTestManager(w, &testClock{}, Deps{})
	m.Update(1)

	assert.Equal(t, 1000.0, enemy.Health())
	assert.Equal(t, model.NewVec2(0, 0), u.Position())
}

func TestUpdate_StructuresAttackButDoNotMove(t *testing.T) {
	w := testutil.NewWorld(t)
	spec := testutil.BasicSpec(model.FactionWest, 0, 0)
	spec.Structure = true
	spec.AttackRange = 100
	tower := testutil.AddUnit(t, w, spec)

	far := testutil.BasicSpec(model.FactionEast, 400, 0)
	far.MoveSpeed = 0
	testutil.AddUnit(t, w, far)

	m := newTestManager(w, &testClock{}, Deps{})
	m.Update(1)

	assert.Equal(t, model.NewVec2(0, 0), tower.Position())
}
