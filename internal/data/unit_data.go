package data

import "github.com/udisondev/lanewars/internal/model"

// unitDefs is the default unit roster.
var unitDefs = []UnitTemplate{
	{
		Type: "footman", Name: "Footman",
		MaxHealth: 420, AttackMin: 12, AttackMax: 14, AttackSpeed: 1.35, AttackRange: 40,
		AttackType: model.AttackNormal, MoveSpeed: 60, ArmorType: model.ArmorHeavy, Armor: 2,
		Abilities: []UnitAbility{{AbilityID: "thick_hide", RequiresUpgrade: true}},
	},
	{
		Type: "archer", Name: "Archer",
		MaxHealth: 300, AttackMin: 16, AttackMax: 20, AttackSpeed: 1.5, AttackRange: 220,
		AttackType: model.AttackPierce, MoveSpeed: 65, ArmorType: model.ArmorMedium,
		Abilities: []UnitAbility{{AbilityID: "plunder"}},
	},
	{
		Type: "weaver", Name: "Weaver",
		MaxHealth: 350, MaxMana: 200, ManaRegen: 1,
		AttackMin: 10, AttackMax: 12, AttackSpeed: 1.75, AttackRange: 200,
		AttackType: model.AttackMagic, MoveSpeed: 55, ArmorType: model.ArmorUnarmored,
		Abilities: []UnitAbility{
			{AbilityID: "cleanse"},
			{AbilityID: "cripple"},
			{AbilityID: "unstable_shield", RequiresUpgrade: true},
		},
	},
	{
		Type: "juggernaut", Name: "Juggernaut",
		MaxHealth: 900, AttackMin: 30, AttackMax: 36, AttackSpeed: 2, AttackRange: 50,
		AttackType: model.AttackNormal, MoveSpeed: 50, ArmorType: model.ArmorHeavy, Armor: 4,
		Abilities: []UnitAbility{
			{AbilityID: "cleave"},
			{AbilityID: "scorched_earth", RequiresUpgrade: true},
		},
	},
	{
		Type: "cleric", Name: "Cleric",
		MaxHealth: 320, MaxMana: 250, ManaRegen: 1.5,
		AttackMin: 8, AttackMax: 10, AttackSpeed: 1.8, AttackRange: 180,
		AttackType: model.AttackMagic, MoveSpeed: 55, ArmorType: model.ArmorUnarmored,
		Abilities: []UnitAbility{
			{AbilityID: "mend"},
			{AbilityID: "battle_hymn"},
			{AbilityID: "reanimate", RequiresUpgrade: true},
		},
	},
	{
		Type: "warden", Name: "Warden",
		MaxHealth: 700, MaxMana: 150, ManaRegen: 0.75,
		AttackMin: 18, AttackMax: 22, AttackSpeed: 1.5, AttackRange: 45,
		AttackType: model.AttackNormal, MoveSpeed: 55, ArmorType: model.ArmorHeavy, Armor: 5,
		Abilities: []UnitAbility{
			{AbilityID: "provoke"},
			{AbilityID: "stone_skin"},
			{AbilityID: "bulwark"},
		},
	},
	{
		Type: "shaman", Name: "Shaman",
		MaxHealth: 380, MaxMana: 220, ManaRegen: 1.25,
		AttackMin: 11, AttackMax: 14, AttackSpeed: 1.7, AttackRange: 190,
		AttackType: model.AttackMagic, MoveSpeed: 55, ArmorType: model.ArmorLight, Armor: 1,
		Abilities: []UnitAbility{
			{AbilityID: "spirit_link"},
			{AbilityID: "sunder"},
		},
	},
	{
		Type: "necromancer", Name: "Necromancer",
		MaxHealth: 330, MaxMana: 260, ManaRegen: 1.25,
		AttackMin: 9, AttackMax: 13, AttackSpeed: 1.8, AttackRange: 200,
		AttackType: model.AttackMagic, MoveSpeed: 50, ArmorType: model.ArmorUnarmored,
		Abilities: []UnitAbility{
			{AbilityID: "reanimate"},
			{AbilityID: "cripple"},
		},
	},
	{
		Type: "raider", Name: "Raider",
		MaxHealth: 480, AttackMin: 24, AttackMax: 30, AttackSpeed: 1.6, AttackRange: 45,
		AttackType: model.AttackSiege, MoveSpeed: 80, ArmorType: model.ArmorLight, Armor: 1,
		Abilities: []UnitAbility{
			{AbilityID: "siege_breaker"},
			{AbilityID: "plunder"},
		},
	},
	{
		Type: "stronghold", Name: "Stronghold", Structure: true,
		MaxHealth: 5000, AttackMin: 40, AttackMax: 50, AttackSpeed: 2, AttackRange: 250,
		AttackType: model.AttackPierce, ArmorType: model.ArmorFortified, Armor: 5,
	},
}
