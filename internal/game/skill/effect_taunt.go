package skill

import "github.com/udisondev/lanewars/internal/model"

// castTaunt forces every enemy within Radius of the caster to attack the caster
// for Duration seconds.
func castTaunt(cm *CastManager, c castContext) bool {
	radius := c.ability.Param(model.ParamRadius)
	center := c.caster.Position()

	taunted := 0
	for _, u := range cm.nearest(center, radius, c.caster.IsEnemy) {
		if cm.applyStatus(c, u) {
			taunted++
		}
	}

	cm.emit(model.EffectEvent{
		Kind:   model.EventTaunt,
		Source: c.caster.Handle(),
		Pos:    center,
		Radius: radius,
		Amount: float64(taunted),
		Label:  c.ability.Name,
	})
	return taunted > 0
}
