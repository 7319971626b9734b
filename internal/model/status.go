package model

import "strings"

// StatusKind determines which unit fields a buff/debuff mutates and how.
type StatusKind uint8

const (
	StatusNone       StatusKind = iota
	StatusHaste                 // attack speed + move speed
	StatusFortify               // armor + attack power
	StatusSlow                  // attack speed + move speed
	StatusArmorBreak            // armor
	StatusTaunt                 // forced target
	StatusLink                  // linked group marker
	StatusShield                // periodic damage with splash
	StatusStun                  // cannot move or attack

	StatusKindCount = 9
)

var statusKindNames = [StatusKindCount]string{
	"none", "haste", "fortify", "slow", "armor_break", "taunt", "link", "shield", "stun",
}

func (k StatusKind) String() string {
	if int(k) >= StatusKindCount {
		return "unknown"
	}
	return statusKindNames[k]
}

// ParseStatusKind parses a status kind name.
func ParseStatusKind(s string) (StatusKind, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range statusKindNames {
		if name == s {
			return StatusKind(i), true
		}
	}
	return StatusNone, false
}

// StatField is a bitmask of unit fields a status may mutate.
type StatField uint16

const (
	FieldAttackSpeed StatField = 1 << iota
	FieldMoveSpeed
	FieldArmor
	FieldAttackPower
	FieldForcedTarget
	FieldStunned
)

// StatSnapshot holds literal pre-mutation values of the fields in Fields.
// Restoring writes them back as-is instead of inverting the mutation formula.
type StatSnapshot struct {
	Fields       StatField
	AttackSpeed  float64
	MoveSpeed    float64
	Armor        float64
	AttackMin    float64
	AttackMax    float64
	ForcedTarget Handle
	Stunned      bool
}

// CaptureStats records the current values of the given fields of u.
func CaptureStats(u *Unit, fields StatField) StatSnapshot {
	s := StatSnapshot{Fields: fields}
	if fields&FieldAttackSpeed != 0 {
		s.AttackSpeed = u.attackSpeed
	}
	if fields&FieldMoveSpeed != 0 {
		s.MoveSpeed = u.moveSpeed
	}
	if fields&FieldArmor != 0 {
		s.Armor = u.armor
	}
	if fields&FieldAttackPower != 0 {
		s.AttackMin = u.attackMin
		s.AttackMax = u.attackMax
	}
	if fields&FieldForcedTarget != 0 {
		s.ForcedTarget = u.forcedTarget
	}
	if fields&FieldStunned != 0 {
		s.Stunned = u.stunned
	}
	return s
}

// Restore writes the snapshot back into u.
func (s StatSnapshot) Restore(u *Unit) {
	if s.Fields&FieldAttackSpeed != 0 {
		u.attackSpeed = s.AttackSpeed
	}
	if s.Fields&FieldMoveSpeed != 0 {
		u.moveSpeed = s.MoveSpeed
	}
	if s.Fields&FieldArmor != 0 {
		u.armor = s.Armor
	}
	if s.Fields&FieldAttackPower != 0 {
		u.attackMin = s.AttackMin
		u.attackMax = s.AttackMax
	}
	if s.Fields&FieldForcedTarget != 0 {
		u.forcedTarget = s.ForcedTarget
	}
	if s.Fields&FieldStunned != 0 {
		u.stunned = s.Stunned
	}
}

// Status is an active buff or debuff on a unit.
// Target owns the status; Source is attribution only and may be gone.
type Status struct {
	Name      string
	Kind      StatusKind
	Debuff    bool
	Target    Handle
	Source    Handle
	Remaining float64 // seconds

	Percent         float64
	Amount          float64
	DamagePerSecond float64
	SplashRadius    float64
	SplashFraction  float64

	Snapshot StatSnapshot
	Seq      uint64 // application order on the target, assigned by the effect manager
}
