package battle

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/udisondev/lanewars/internal/config"
	"github.com/udisondev/lanewars/internal/data"
	"github.com/udisondev/lanewars/internal/game/combat"
	"github.com/udisondev/lanewars/internal/game/party"
	"github.com/udisondev/lanewars/internal/game/skill"
	"github.com/udisondev/lanewars/internal/game/zone"
	"github.com/udisondev/lanewars/internal/model"
	"github.com/udisondev/lanewars/internal/world"
)

// Rand is the pseudorandom source for damage and proc rolls.
type Rand interface {
	Float64() float64
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand sets the pseudorandom source (default: PCG seeded with 0).
func WithRand(r Rand) Option {
	return func(e *Engine) { e.rand = r }
}

// WithSeed seeds the default PCG source.
func WithSeed(seed uint64) Option {
	return func(e *Engine) { e.rand = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) }
}

// WithSink sets the effect event callback. See OnEffectCreated.
func WithSink(sink model.EffectSink) Option {
	return func(e *Engine) { e.sink = sink }
}

// WithAutocastSettings sets the player-settings collaborator of autocast.
func WithAutocastSettings(s skill.AutocastSettings) Option {
	return func(e *Engine) { e.settings = s }
}

// Engine is one battle: the combat-and-ability resolution engine over its own world.
// Every method must be called from the single goroutine simulating the battle.
type Engine struct {
	reg      *data.Registry
	cfg      config.Engine
	world    *world.World
	ids      *world.IDGenerator
	clock    *SimClock
	treasury *Treasury
	rand     Rand
	sink     model.EffectSink
	settings skill.AutocastSettings

	effects  *skill.EffectManager
	casts    *skill.CastManager
	passives *skill.PassiveHandler
	auto     *skill.Autocaster
	ground   *zone.Manager
	groups   *party.Manager
	combat   *combat.CombatManager

	// upgrades researched per faction, applied to every unit the faction spawns
	upgrades map[model.Faction]map[string]struct{}

	over   bool
	winner model.Faction
}

// New creates an empty battle over the given tables.
func New(reg *data.Registry, cfg config.Engine, opts ...Option) *Engine {
	e := &Engine{
		reg:      reg,
		cfg:      cfg,
		world:    world.New(cfg.DeadHistoryCapacity),
		ids:      world.NewIDGenerator(),
		clock:    &SimClock{},
		treasury: NewTreasury(),
		upgrades: make(map[model.Faction]map[string]struct{}, 2),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rand == nil {
		e.rand = rand.New(rand.NewPCG(0, 0x9e3779b97f4a7c15))
	}

	e.effects = skill.NewEffectManager(e.world, e.damage, e.emit)
	e.ground = zone.NewManager(e.world, e.damage, e.ids)
	e.groups = party.NewManager(party.Deps{
		World:      e.world,
		Effects:    e.effects,
		Damage:     e.damage,
		Sink:       e.emit,
		IDs:        e.ids,
		MaxMembers: cfg.MaxLinkMembers,
	})
	e.casts = skill.NewCastManager(skill.CastDeps{
		Templates:      reg,
		World:          e.world,
		Effects:        e.effects,
		Graveyard:      e.world.DeadHistory(),
		Spawner:        e,
		Linker:         e.groups,
		Clock:          e.clock,
		Sink:           e.emit,
		MaxLinkMembers: cfg.MaxLinkMembers,
	})
	e.passives = skill.NewPassiveHandler(skill.PassiveDeps{
		Templates: reg,
		World:     e.world,
		Effects:   e.effects,
		Ground:    e.ground,
		Treasury:  e.treasury,
		Rand:      e.rand,
		Damage:    e.damage,
		Sink:      e.emit,
	})
	e.auto = skill.NewAutocaster(skill.AutocastDeps{
		Templates: reg,
		World:     e.world,
		Casts:     e.casts,
		Graveyard: e.world.DeadHistory(),
		Linker:    e.groups,
		Clock:     e.clock,
		Settings:  e.settings,
		Config: skill.AutocastConfig{
			HealBelow:          cfg.Autocast.HealBelow,
			GroupBuffMinAllies: cfg.Autocast.GroupBuffMinAllies,
			DebuffMinEnemies:   cfg.Autocast.DebuffMinEnemies,
			TauntMinEnemies:    cfg.Autocast.TauntMinEnemies,
		},
	})
	e.combat = combat.NewCombatManager(combat.Deps{
		World:    e.world,
		Passives: e.passives,
		Sharer:   e.groups,
		Rand:     e.rand,
		Clock:    e.clock,
		Damage:   e.damage,
		Sink:     e.emit,
		Formula:  combat.Formula{ArmorFactor: cfg.ArmorFactor},
	})
	return e
}

// OnEffectCreated sets the fire-and-forget callback receiving every presentation-relevant
// event. The callback must not block; a panicking callback is logged and ignored.
func (e *Engine) OnEffectCreated(sink model.EffectSink) {
	e.sink = sink
}

// Spawn creates a unit of a roster type and adds it to the battle.
// Upgrade-gated abilities start disabled unless the faction has researched them.
func (e *Engine) Spawn(unitType string, faction model.Faction, pos model.Vec2) (*model.Unit, error) {
	spec, err := e.reg.NewUnitSpec(unitType, faction, pos)
	if err != nil {
		return nil, fmt.Errorf("spawning %s: %w", unitType, err)
	}
	u := model.NewUnit(spec)
	for id := range e.upgrades[faction] {
		if inst := u.Ability(id); inst != nil {
			inst.Enabled = true
		}
	}
	u.SetNextAttackAt(e.clock.Now())
	if _, err := e.world.Add(u); err != nil {
		return nil, fmt.Errorf("spawning %s: %w", unitType, err)
	}

	slog.Debug("unit spawned",
		"unit", u.Name(),
		"handle", u.Handle(),
		"faction", faction,
		"x", pos.X,
		"y", pos.Y)
	return u, nil
}

// EnableAbility marks an upgrade as bought for u and records it for u's faction, so
// units the faction spawns later (resurrected ones included) get it too.
// Returns false if u has no such ability.
func (e *Engine) EnableAbility(u *model.Unit, abilityID string) bool {
	inst := u.Ability(abilityID)
	if inst == nil {
		return false
	}
	inst.Enabled = true
	e.recordUpgrade(u.Faction(), abilityID)
	return true
}

// Research records abilityID as bought by faction and enables it on every live unit
// of the faction that has it. Returns the number of units changed.
func (e *Engine) Research(faction model.Faction, abilityID string) int {
	e.recordUpgrade(faction, abilityID)

	n := 0
	for _, u := range e.world.Combatants() {
		if u.Faction() != faction {
			continue
		}
		if inst := u.Ability(abilityID); inst != nil && !inst.Enabled {
			inst.Enabled = true
			n++
		}
	}
	return n
}

// Researched reports whether faction has bought abilityID.
func (e *Engine) Researched(faction model.Faction, abilityID string) bool {
	_, ok := e.upgrades[faction][abilityID]
	return ok
}

func (e *Engine) recordUpgrade(faction model.Faction, abilityID string) {
	set, ok := e.upgrades[faction]
	if !ok {
		set = make(map[string]struct{})
		e.upgrades[faction] = set
	}
	set[abilityID] = struct{}{}
}

// ResolveAttack runs one attack of attacker on defender through the full pipeline.
func (e *Engine) ResolveAttack(attacker, defender *model.Unit) bool {
	return e.combat.ResolveAttack(attacker, defender)
}

// Cast casts the named ability of u at (x, y), optionally at a target unit.
func (e *Engine) Cast(u *model.Unit, abilityName string, x, y float64, target *model.Unit) bool {
	return e.casts.Cast(u, abilityName, model.NewVec2(x, y), target)
}

// Tick advances the battle by delta seconds: cooldowns and mana, statuses, ground
// effects, linked groups, autocast, then movement and attacks.
func (e *Engine) Tick(delta float64) {
	if delta <= 0 {
		return
	}
	e.clock.Advance(delta)

	for _, u := range e.world.Combatants() {
		abilities := u.Abilities()
		for i := range abilities {
			abilities[i].TickCooldown(delta)
		}
		u.RegenMana(delta)
	}

	e.effects.Tick(delta)
	e.ground.Tick(delta)
	e.groups.Tick(delta)

	for _, u := range e.world.Units(model.AnyFaction) {
		if !u.IsDead() {
			e.auto.Update(u)
		}
	}

	e.combat.Update(delta)
	e.world.Sweep()
}

// damage is the single damage-taking path: no passives, no sharing.
func (e *Engine) damage(target *model.Unit, amount float64, source model.Handle, label string) {
	if target == nil || amount <= 0 {
		return
	}
	if target.TakeDamage(amount) {
		e.onDeath(target, source, label)
	}
}

func (e *Engine) onDeath(u *model.Unit, killer model.Handle, label string) {
	e.effects.DetachAll(u)
	e.groups.Leave(u.Handle())
	if !u.IsStructure() {
		e.world.DeadHistory().Record(u.Type(), u.Faction(), u.Position(), e.clock.Now())
	}

	e.emit(model.EffectEvent{
		Kind:   model.EventDeath,
		Source: killer,
		Target: u.Handle(),
		Pos:    u.Position(),
		Label:  label,
	})
	slog.Debug("unit died",
		"unit", u.Name(),
		"faction", u.Faction(),
		"cause", label,
		"at", e.clock.Now())

	if u.IsStructure() && !e.over && len(e.world.Structures(u.Faction())) == 0 {
		e.over = true
		e.winner = u.Faction().Opponent()
		slog.Info("stronghold destroyed",
			"loser", u.Faction(),
			"winner", e.winner,
			"at", e.clock.Now())
	}
}

// emit forwards an event to the presentation callback without depending on it.
func (e *Engine) emit(ev model.EffectEvent) {
	if e.sink == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			slog.Error("effect callback panicked", "event", ev.Kind, "panic", r)
		}
	}()
	e.sink(ev)
}

// Winner returns the winning faction once a side has lost all its strongholds.
func (e *Engine) Winner() (model.Faction, bool) {
	return e.winner, e.over
}

// Over reports whether the battle is decided.
func (e *Engine) Over() bool { return e.over }

// Now returns the simulated time in seconds.
func (e *Engine) Now() float64 { return e.clock.Now() }

// World returns the entity registry of the battle.
func (e *Engine) World() *world.World { return e.world }

// Treasury returns the per-faction gold balance.
func (e *Engine) Treasury() *Treasury { return e.treasury }

// ActiveEffects returns the number of live statuses, ground effects and linked groups.
func (e *Engine) ActiveEffects() (statuses, ground, groups int) {
	return e.effects.ActiveCount(), e.ground.Count(), e.groups.Count()
}
