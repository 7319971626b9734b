package model

import "testing"

func newTestUnit() *Unit {
	return NewUnit(UnitSpec{
		Type:        "footman",
		Name:        "Footman",
		Faction:     FactionWest,
		MaxHealth:   400,
		MaxMana:     100,
		ManaRegen:   2,
		AttackMin:   12,
		AttackMax:   14,
		AttackSpeed: 1.35,
		AttackRange: 40,
		MoveSpeed:   60,
		Armor:       2,
		Abilities: []AbilityInstance{{
			AbilityID: "thick_hide",
			Overrides: AbilityOverrides{Params: map[Param]float64{ParamAmount: 6}},
		}},
	})
}

func TestUnit_TakeDamageReportsDeathOnce(t *testing.T) {
	u := newTestUnit()

	if u.TakeDamage(150) {
		t.Fatal("unit died from a non-lethal hit")
	}
	if u.Health() != 250 {
		t.Errorf("Health() = %v, want 250", u.Health())
	}
	if !u.TakeDamage(1000) {
		t.Fatal("lethal hit not reported")
	}
	if u.Health() != 0 || !u.IsDead() {
		t.Errorf("dead unit: health %v, dead %v", u.Health(), u.IsDead())
	}
	if u.TakeDamage(10) {
		t.Error("death reported twice")
	}
	if u.Heal(100) != 0 {
		t.Error("dead unit healed")
	}
}

func TestUnit_HealClamps(t *testing.T) {
	u := newTestUnit()
	u.SetHealth(350)

	if got := u.Heal(120); got != 50 {
		t.Errorf("Heal() = %v, want 50", got)
	}
	if u.Health() != u.MaxHealth() {
		t.Errorf("Health() = %v, want max", u.Health())
	}
}

func TestUnit_ManaClampsAndRegenerates(t *testing.T) {
	u := newTestUnit()

	u.SetMana(-5)
	if u.Mana() != 0 {
		t.Errorf("SetMana(-5) -> %v, want 0", u.Mana())
	}
	u.RegenMana(10)
	if u.Mana() != 20 {
		t.Errorf("Mana() = %v, want 20", u.Mana())
	}
	u.RegenMana(1000)
	if u.Mana() != u.MaxMana() {
		t.Errorf("Mana() = %v, want max", u.Mana())
	}
}

func TestNewUnit_CopiesAbilityOverrides(t *testing.T) {
	spec := UnitSpec{
		MaxHealth: 10,
		Abilities: []AbilityInstance{{
			AbilityID: "cleave",
			Overrides: AbilityOverrides{Params: map[Param]float64{ParamAmount: 60}},
		}},
	}
	a, b := NewUnit(spec), NewUnit(spec)

	a.Ability("cleave").Overrides.Params[ParamAmount] = 90

	if got := b.Ability("cleave").Overrides.Params[ParamAmount]; got != 60 {
		t.Errorf("second unit sees %v, want 60", got)
	}
	if got := spec.Abilities[0].Overrides.Params[ParamAmount]; got != 60 {
		t.Errorf("spec sees %v, want 60", got)
	}
}

func TestStatSnapshot_RestoresOnlyCapturedFields(t *testing.T) {
	u := newTestUnit()
	snap := CaptureStats(u, FieldAttackSpeed|FieldArmor)

	u.SetAttackSpeed(0.9)
	u.SetArmor(10)
	u.SetMoveSpeed(30)
	snap.Restore(u)

	if u.AttackSpeed() != 1.35 || u.Armor() != 2 {
		t.Errorf("restored attack speed %v armor %v, want 1.35 and 2", u.AttackSpeed(), u.Armor())
	}
	if u.MoveSpeed() != 30 {
		t.Errorf("MoveSpeed() = %v, uncaptured field must be left alone", u.MoveSpeed())
	}
}

func TestAbilityInstance_TickCooldown(t *testing.T) {
	a := AbilityInstance{Cooldown: 1}

	a.TickCooldown(0.4)
	if a.Ready() {
		t.Fatal("ready with cooldown left")
	}
	a.TickCooldown(5)
	if a.Cooldown != 0 || !a.Ready() {
		t.Errorf("Cooldown = %v, want 0 and ready", a.Cooldown)
	}
}

func TestFaction(t *testing.T) {
	if FactionWest.Opponent() != FactionEast || FactionEast.Opponent() != FactionWest {
		t.Error("Opponent() must swap west and east")
	}
	if f, ok := ParseFaction(" East "); !ok || f != FactionEast {
		t.Errorf("ParseFaction(\" East \") = %v, %v", f, ok)
	}
	if _, ok := ParseFaction("north"); ok {
		t.Error("ParseFaction accepted an unknown faction")
	}
	if !FactionWest.Matches(AnyFaction) || FactionWest.Matches(FactionEast) {
		t.Error("Matches() filter broken")
	}
}
