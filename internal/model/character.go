package model

// UnitSpec carries the initial values a unit is created from.
// Built by the data layer from a static unit template.
type UnitSpec struct {
	Type      string
	Name      string
	Faction   Faction
	Structure bool
	Pos       Vec2

	MaxHealth float64
	MaxMana   float64
	ManaRegen float64 // per second

	AttackMin   float64
	AttackMax   float64
	AttackSpeed float64 // seconds between attacks
	AttackRange float64
	AttackType  AttackType
	MoveSpeed   float64
	ArmorType   ArmorType
	Armor       float64

	Abilities []AbilityInstance
}

// Unit is a combatant on the battlefield (mobile unit or structure).
// All state is owned by the simulation goroutine, no locking.
type Unit struct {
	handle    Handle
	unitType  string
	name      string
	faction   Faction
	structure bool

	pos Vec2

	health    float64
	maxHealth float64
	mana      float64
	maxMana   float64
	manaRegen float64

	attackMin   float64
	attackMax   float64
	attackSpeed float64
	attackRange float64
	attackType  AttackType
	moveSpeed   float64
	armorType   ArmorType
	armor       float64

	abilities []AbilityInstance
	buffs     map[string]*Status
	debuffs   map[string]*Status

	dead         bool
	stunned      bool
	forcedTarget Handle
	target       Handle
	nextAttackAt float64
}

// NewUnit creates a unit at full health and mana.
// Ability instances are copied so the spec slice can be reused.
func NewUnit(spec UnitSpec) *Unit {
	abilities := make([]AbilityInstance, len(spec.Abilities))
	for i, a := range spec.Abilities {
		abilities[i] = a
		abilities[i].Overrides = a.Overrides.Clone()
	}

	maxHealth := spec.MaxHealth
	if maxHealth < 1 {
		maxHealth = 1
	}

	return &Unit{
		unitType:    spec.Type,
		name:        spec.Name,
		faction:     spec.Faction,
		structure:   spec.Structure,
		pos:         spec.Pos,
		health:      maxHealth,
		maxHealth:   maxHealth,
		mana:        spec.MaxMana,
		maxMana:     spec.MaxMana,
		manaRegen:   spec.ManaRegen,
		attackMin:   spec.AttackMin,
		attackMax:   max(spec.AttackMax, spec.AttackMin),
		attackSpeed: spec.AttackSpeed,
		attackRange: spec.AttackRange,
		attackType:  spec.AttackType,
		moveSpeed:   spec.MoveSpeed,
		armorType:   spec.ArmorType,
		armor:       max(spec.Armor, 0),
		abilities:   abilities,
		buffs:       make(map[string]*Status),
		debuffs:     make(map[string]*Status),
	}
}

// Handle returns the registry handle (zero until added to the world).
func (u *Unit) Handle() Handle { return u.handle }

// SetHandle is called by the world registry when the unit is added.
func (u *Unit) SetHandle(h Handle) { u.handle = h }

func (u *Unit) Type() string       { return u.unitType }
func (u *Unit) Name() string       { return u.name }
func (u *Unit) Faction() Faction   { return u.faction }
func (u *Unit) IsStructure() bool  { return u.structure }
func (u *Unit) Position() Vec2     { return u.pos }
func (u *Unit) SetPosition(p Vec2) { u.pos = p }

// IsEnemy reports whether o belongs to the opposing faction.
func (u *Unit) IsEnemy(o *Unit) bool {
	return o != nil && u.faction != o.faction
}

// IsAlly reports whether o belongs to the same faction (u itself included).
func (u *Unit) IsAlly(o *Unit) bool {
	return o != nil && u.faction == o.faction
}

// Health returns current health.
func (u *Unit) Health() float64 { return u.health }

// MaxHealth returns maximum health.
func (u *Unit) MaxHealth() float64 { return u.maxHealth }

// HealthFraction returns health/maxHealth in 0..1.
func (u *Unit) HealthFraction() float64 { return u.health / u.maxHealth }

// SetHealth sets current health with validation (clamp 0..maxHealth).
func (u *Unit) SetHealth(hp float64) {
	if hp < 0 {
		hp = 0
	}
	if hp > u.maxHealth {
		hp = u.maxHealth
	}
	u.health = hp
}

// Heal adds health clamped to maximum. Returns the amount actually restored.
func (u *Unit) Heal(amount float64) float64 {
	if u.dead || amount <= 0 {
		return 0
	}
	before := u.health
	u.SetHealth(u.health + amount)
	return u.health - before
}

// TakeDamage reduces health. Returns true exactly once: on the hit that kills the unit.
func (u *Unit) TakeDamage(amount float64) bool {
	if u.dead || amount <= 0 {
		return false
	}
	u.SetHealth(u.health - amount)
	if u.health <= 0 {
		u.dead = true
		return true
	}
	return false
}

// IsDead reports whether the unit has been destroyed.
func (u *Unit) IsDead() bool { return u.dead }

// Mana returns current mana.
func (u *Unit) Mana() float64 { return u.mana }

// MaxMana returns maximum mana (0 for units without a mana pool).
func (u *Unit) MaxMana() float64 { return u.maxMana }

// SetMana sets current mana with validation (clamp 0..maxMana).
func (u *Unit) SetMana(mp float64) {
	if mp < 0 {
		mp = 0
	}
	if mp > u.maxMana {
		mp = u.maxMana
	}
	u.mana = mp
}

// RegenMana restores mana for the elapsed time.
func (u *Unit) RegenMana(delta float64) {
	if u.dead || u.manaRegen <= 0 {
		return
	}
	u.SetMana(u.mana + u.manaRegen*delta)
}

func (u *Unit) AttackMin() float64     { return u.attackMin }
func (u *Unit) AttackMax() float64     { return u.attackMax }
func (u *Unit) AttackSpeed() float64   { return u.attackSpeed }
func (u *Unit) AttackRange() float64   { return u.attackRange }
func (u *Unit) AttackType() AttackType { return u.attackType }
func (u *Unit) MoveSpeed() float64     { return u.moveSpeed }
func (u *Unit) ArmorType() ArmorType   { return u.armorType }
func (u *Unit) Armor() float64         { return u.armor }
func (u *Unit) IsStunned() bool        { return u.stunned }
func (u *Unit) ForcedTarget() Handle   { return u.forcedTarget }
func (u *Unit) Target() Handle         { return u.target }
func (u *Unit) SetTarget(h Handle)     { u.target = h }
func (u *Unit) NextAttackAt() float64  { return u.nextAttackAt }

// SetNextAttackAt sets the earliest simulated time of the next attack.
func (u *Unit) SetNextAttackAt(t float64) { u.nextAttackAt = t }

// SetAttackSpeed sets seconds between attacks (floored at a small positive value).
func (u *Unit) SetAttackSpeed(v float64) { u.attackSpeed = max(v, 0.05) }

// SetMoveSpeed sets movement speed (never negative).
func (u *Unit) SetMoveSpeed(v float64) { u.moveSpeed = max(v, 0) }

// SetArmor sets the armor value (never negative).
func (u *Unit) SetArmor(v float64) { u.armor = max(v, 0) }

// SetAttackPower sets the attack roll range.
func (u *Unit) SetAttackPower(minDmg, maxDmg float64) {
	u.attackMin = max(minDmg, 0)
	u.attackMax = max(maxDmg, u.attackMin)
}

// SetForcedTarget forces the unit to attack h (zero handle clears it).
func (u *Unit) SetForcedTarget(h Handle) {
	u.forcedTarget = h
	if !h.IsZero() {
		u.target = h
	}
}

// SetStunned toggles the stun flag.
func (u *Unit) SetStunned(v bool) { u.stunned = v }

// Abilities returns the unit's ability instances. Callers may mutate entries in place.
func (u *Unit) Abilities() []AbilityInstance { return u.abilities }

// Ability returns the instance with the given ability ID, or nil.
func (u *Unit) Ability(abilityID string) *AbilityInstance {
	for i := range u.abilities {
		if u.abilities[i].AbilityID == abilityID {
			return &u.abilities[i]
		}
	}
	return nil
}

// Buff returns the active buff with the given name, or nil.
func (u *Unit) Buff(name string) *Status { return u.buffs[name] }

// Debuff returns the active debuff with the given name, or nil.
func (u *Unit) Debuff(name string) *Status { return u.debuffs[name] }

// Buffs returns the live buff map keyed by name.
func (u *Unit) Buffs() map[string]*Status { return u.buffs }

// Debuffs returns the live debuff map keyed by name.
func (u *Unit) Debuffs() map[string]*Status { return u.debuffs }

// HasStatusKind reports whether any active buff or debuff has the given kind.
func (u *Unit) HasStatusKind(kind StatusKind) bool {
	for _, s := range u.buffs {
		if s.Kind == kind {
			return true
		}
	}
	for _, s := range u.debuffs {
		if s.Kind == kind {
			return true
		}
	}
	return false
}
