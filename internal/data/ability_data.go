package data

import "github.com/udisondev/lanewars/internal/model"

// p is shorthand for building template parameter maps.
type p = map[model.Param]float64

// abilityDefs is the default ability roster.
var abilityDefs = []AbilityTemplate{
	{
		ID: "cleanse", Name: "Cleanse", Kind: EffectDispel,
		ManaCost: 75, Cooldown: 5, Range: 300,
		Params: p{model.ParamRadius: 120},
	},
	{
		ID: "mend", Name: "Mend", Kind: EffectHeal,
		ManaCost: 40, Cooldown: 4, Range: 250,
		Params: p{model.ParamAmount: 120},
	},
	{
		ID: "battle_hymn", Name: "Battle Hymn", Kind: EffectGroupBuff, Status: model.StatusHaste,
		ManaCost: 60, Cooldown: 12, Range: 250,
		Params: p{model.ParamRadius: 150, model.ParamDuration: 8, model.ParamPercent: 0.25, model.ParamMaxTargets: 6},
	},
	{
		ID: "stone_skin", Name: "Stone Skin", Kind: EffectGroupBuff, Status: model.StatusFortify,
		ManaCost: 70, Cooldown: 15, Range: 250,
		Params: p{model.ParamRadius: 140, model.ParamDuration: 10, model.ParamAmount: 4, model.ParamPercent: 0.1, model.ParamMaxTargets: 4},
	},
	{
		ID: "cripple", Name: "Cripple", Kind: EffectDebuff, Status: model.StatusSlow,
		ManaCost: 50, Cooldown: 8, Range: 300,
		Params: p{model.ParamDuration: 6, model.ParamPercent: 0.4},
	},
	{
		ID: "sunder", Name: "Sunder", Kind: EffectDebuff, Status: model.StatusArmorBreak,
		ManaCost: 45, Cooldown: 10, Range: 200,
		Params: p{model.ParamDuration: 8, model.ParamAmount: 5},
	},
	{
		ID: "unstable_shield", Name: "Unstable Shield", Kind: EffectShield, Status: model.StatusShield,
		ManaCost: 90, Cooldown: 14, Range: 300,
		Params: p{model.ParamDuration: 6, model.ParamDamagePerSecond: 20, model.ParamSplashRadius: 100, model.ParamSplashFraction: 0.5},
	},
	{
		ID: "provoke", Name: "Provoke", Kind: EffectTaunt, Status: model.StatusTaunt,
		ManaCost: 30, Cooldown: 10,
		Params: p{model.ParamRadius: 160, model.ParamDuration: 4},
	},
	{
		ID: "spirit_link", Name: "Spirit Link", Kind: EffectLink, Status: model.StatusLink,
		ManaCost: 80, Cooldown: 20, Range: 300,
		Params: p{model.ParamRadius: 200, model.ParamDuration: 20, model.ParamShareFraction: 0.5, model.ParamMinMembers: 2, model.ParamMaxMembers: 4},
	},
	{
		ID: "reanimate", Name: "Reanimate", Kind: EffectResurrect,
		ManaCost: 120, Cooldown: 30, Range: 400,
		AllowedTypes: []string{"footman", "archer", "raider"},
		Params:       p{model.ParamMaxAge: 30},
	},
	{
		ID: "cleave", Name: "Cleave", Kind: EffectPassiveCleave,
		Params: p{model.ParamRadius: 80, model.ParamAmount: 60, model.ParamProcChance: 0.25},
	},
	{
		ID: "scorched_earth", Name: "Scorched Earth", Kind: EffectPassiveGroundFire,
		Params: p{model.ParamRadius: 90, model.ParamDuration: 5, model.ParamDamagePerSecond: 15, model.ParamProcChance: 0.15},
	},
	{
		ID: "plunder", Name: "Plunder", Kind: EffectPassiveBounty,
		Params: p{model.ParamAmount: 5, model.ParamProcChance: 0.2},
	},
	{
		ID: "siege_breaker", Name: "Siege Breaker", Kind: EffectPassiveStructureStun, Status: model.StatusStun,
		Params: p{model.ParamDuration: 1.5, model.ParamProcChance: 0.1},
	},
	{
		ID: "bulwark", Name: "Bulwark", Kind: EffectPassiveReduction,
		AttackTypes: []model.AttackType{model.AttackPierce},
		Params:      p{model.ParamPercent: 0.3},
	},
	{
		ID: "thick_hide", Name: "Thick Hide", Kind: EffectPassiveBlock,
		Params: p{model.ParamAmount: 6, model.ParamFloor: 3},
	},
}
