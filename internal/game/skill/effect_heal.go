package skill

import "github.com/udisondev/lanewars/internal/model"

// castHeal restores Amount health to an allied target, clamped to max health.
func castHeal(cm *CastManager, c castContext) bool {
	t := c.target
	if t == nil || !c.caster.IsAlly(t) {
		reject(c.caster, c.ability.Name, "heal needs an allied target")
		return false
	}

	restored := t.Heal(c.ability.Param(model.ParamAmount))
	cm.emit(model.EffectEvent{
		Kind:   model.EventHeal,
		Source: c.caster.Handle(),
		Target: t.Handle(),
		Pos:    t.Position(),
		Amount: restored,
		Label:  c.ability.Name,
	})
	return true
}
