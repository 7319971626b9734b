package skill

import "github.com/udisondev/lanewars/internal/model"

// castDispel strips all buffs from enemies and all debuffs from allies within Radius of the point.
func castDispel(cm *CastManager, c castContext) bool {
	radius := c.ability.Param(model.ParamRadius)

	removed := 0
	for _, u := range cm.world.InRadius(c.point, radius) {
		if c.caster.IsEnemy(u) {
			removed += cm.effects.StripBuffs(u)
		} else {
			removed += cm.effects.StripDebuffs(u)
		}
	}

	cm.emit(model.EffectEvent{
		Kind:   model.EventDispel,
		Source: c.caster.Handle(),
		Pos:    c.point,
		Radius: radius,
		Amount: float64(removed),
		Label:  c.ability.Name,
	})
	return true
}
