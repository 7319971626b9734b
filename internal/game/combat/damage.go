package combat

import (
	"math"

	"github.com/udisondev/lanewars/internal/model"
)

// DefaultArmorFactor is k in the armor reduction curve a*k / (1 + a*k).
const DefaultArmorFactor = 0.06

// damageTable[armor][attack] is the type multiplier. All entries are positive.
var damageTable = [model.ArmorTypeCount][model.AttackTypeCount]float64{
	//                    normal pierce siege magic chaos hero
	model.ArmorUnarmored: {1.00, 1.50, 1.50, 1.00, 1.00, 1.00},
	model.ArmorLight:     {1.00, 2.00, 1.00, 1.25, 1.00, 1.00},
	model.ArmorMedium:    {1.50, 0.75, 0.50, 0.75, 1.00, 1.00},
	model.ArmorHeavy:     {1.00, 1.00, 1.00, 2.00, 1.00, 1.00},
	model.ArmorFortified: {0.70, 0.35, 1.50, 0.35, 1.00, 0.50},
	model.ArmorHero:      {1.00, 0.50, 0.50, 0.50, 1.00, 1.00},
}

// TypeMultiplier returns the attack-vs-armor multiplier.
// Unknown armor types use the unarmored row, unknown attack types the normal column.
func TypeMultiplier(armor model.ArmorType, attack model.AttackType) float64 {
	if armor < 0 || int(armor) >= model.ArmorTypeCount {
		armor = model.ArmorUnarmored
	}
	if attack < 0 || int(attack) >= model.AttackTypeCount {
		attack = model.AttackNormal
	}
	return damageTable[armor][attack]
}

// ArmorReduction returns the fraction of damage absorbed by armor with the default factor.
// Monotonically increasing in armor and strictly below 1.
func ArmorReduction(armor float64) float64 {
	return Formula{ArmorFactor: DefaultArmorFactor}.ArmorReduction(armor)
}

// CalcDamage applies the default formula. See Formula.Damage.
func CalcDamage(base float64, attack model.AttackType, armorType model.ArmorType, armor float64) int32 {
	return Formula{ArmorFactor: DefaultArmorFactor}.Damage(base, attack, armorType, armor)
}

// Formula is the damage formula with a configurable armor factor.
type Formula struct {
	ArmorFactor float64
}

// ArmorReduction returns a*k / (1 + a*k). Negative armor counts as zero.
func (f Formula) ArmorReduction(armor float64) float64 {
	if armor <= 0 || math.IsNaN(armor) {
		return 0
	}
	k := f.ArmorFactor
	if k <= 0 {
		k = DefaultArmorFactor
	}
	ak := armor * k
	return ak / (1 + ak)
}

// Damage returns round(base × multiplier × (1 − reduction)), minimum 1.
func (f Formula) Damage(base float64, attack model.AttackType, armorType model.ArmorType, armor float64) int32 {
	dmg := base * TypeMultiplier(armorType, attack) * (1 - f.ArmorReduction(armor))

	dmg = math.Round(dmg)
	if dmg < 1 || math.IsNaN(dmg) {
		return 1
	}
	if dmg > math.MaxInt32 {
		return math.MaxInt32
	}
	return int32(dmg)
}
