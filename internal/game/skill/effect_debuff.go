package skill

import "github.com/udisondev/lanewars/internal/model"

// castDebuff applies the ability's debuff to a single enemy target.
// Shield-type abilities go through here too: their status deals periodic damage.
func castDebuff(cm *CastManager, c castContext) bool {
	t := c.target
	if t == nil || !c.caster.IsEnemy(t) {
		reject(c.caster, c.ability.Name, "debuff needs an enemy target")
		return false
	}
	if !cm.applyStatus(c, t) {
		return false
	}

	cm.emit(model.EffectEvent{
		Kind:   model.EventDebuff,
		Source: c.caster.Handle(),
		Target: t.Handle(),
		Pos:    t.Position(),
		Radius: c.ability.Param(model.ParamSplashRadius),
		Label:  c.ability.Name,
	})
	return true
}
