package model

import "strings"

// Faction identifies one side of the battle.
type Faction int8

const (
	AnyFaction  Faction = 0 // query filter: all factions
	FactionWest Faction = 1
	FactionEast Faction = 2
)

// Opponent returns the opposing faction. AnyFaction has no opponent.
func (f Faction) Opponent() Faction {
	switch f {
	case FactionWest:
		return FactionEast
	case FactionEast:
		return FactionWest
	default:
		return AnyFaction
	}
}

// Matches reports whether f passes the filter (AnyFaction matches everything).
func (f Faction) Matches(filter Faction) bool {
	return filter == AnyFaction || f == filter
}

func (f Faction) String() string {
	switch f {
	case FactionWest:
		return "west"
	case FactionEast:
		return "east"
	default:
		return "any"
	}
}

// ParseFaction parses "west"/"east". Unknown values return AnyFaction, false.
func ParseFaction(s string) (Faction, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "west":
		return FactionWest, true
	case "east":
		return FactionEast, true
	default:
		return AnyFaction, false
	}
}

// AttackType is the damage category of an attack (column of the multiplier table).
type AttackType int8

const (
	AttackNormal AttackType = iota
	AttackPierce
	AttackSiege
	AttackMagic
	AttackChaos
	AttackHero

	AttackTypeCount = 6
)

var attackTypeNames = [AttackTypeCount]string{"normal", "pierce", "siege", "magic", "chaos", "hero"}

func (a AttackType) String() string {
	if a < 0 || int(a) >= AttackTypeCount {
		return "normal"
	}
	return attackTypeNames[a]
}

// ParseAttackType parses an attack type name. Unknown names degrade to AttackNormal.
func ParseAttackType(s string) AttackType {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range attackTypeNames {
		if name == s {
			return AttackType(i)
		}
	}
	return AttackNormal
}

// ArmorType is the defensive category of a unit (row of the multiplier table).
type ArmorType int8

const (
	ArmorUnarmored ArmorType = iota
	ArmorLight
	ArmorMedium
	ArmorHeavy
	ArmorFortified
	ArmorHero

	ArmorTypeCount = 6
)

var armorTypeNames = [ArmorTypeCount]string{"unarmored", "light", "medium", "heavy", "fortified", "hero"}

func (a ArmorType) String() string {
	if a < 0 || int(a) >= ArmorTypeCount {
		return "unarmored"
	}
	return armorTypeNames[a]
}

// ParseArmorType parses an armor type name. Unknown names degrade to ArmorUnarmored.
func ParseArmorType(s string) ArmorType {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range armorTypeNames {
		if name == s {
			return ArmorType(i)
		}
	}
	return ArmorUnarmored
}
