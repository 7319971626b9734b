package skill

import (
	"log/slog"

	"github.com/udisondev/lanewars/internal/model"
)

// castResurrect spawns a replacement for the nearest allied corpse around the point
// whose type is allowed and that died no more than MaxAge seconds ago.
func castResurrect(cm *CastManager, c castContext) bool {
	if cm.graveyard == nil || cm.spawner == nil {
		reject(c.caster, c.ability.Name, "no graveyard")
		return false
	}

	corpse, ok := cm.graveyard.Nearest(c.point, c.caster.Faction(), c.ability.AllowedTypes,
		cm.clock.Now(), c.ability.Param(model.ParamMaxAge))
	if !ok {
		reject(c.caster, c.ability.Name, "no eligible corpse")
		return false
	}

	u, err := cm.spawner.Spawn(corpse.UnitType, corpse.Faction, corpse.Pos)
	if err != nil {
		slog.Error("resurrect spawn failed",
			"ability", c.ability.Name,
			"unitType", corpse.UnitType,
			"error", err)
		return false
	}
	cm.graveyard.Remove(corpse.ID)

	cm.emit(model.EffectEvent{
		Kind:   model.EventResurrect,
		Source: c.caster.Handle(),
		Target: u.Handle(),
		Pos:    corpse.Pos,
		Label:  c.ability.Name,
	})
	return true
}
