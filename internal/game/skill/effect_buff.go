package skill

import (
	"cmp"
	"errors"
	"log/slog"
	"slices"

	"github.com/udisondev/lanewars/internal/model"
)

// castGroupBuff applies the ability's buff to allies within Radius of the point,
// nearest first, at most MaxTargets of them (0 = no limit).
func castGroupBuff(cm *CastManager, c castContext) bool {
	radius := c.ability.Param(model.ParamRadius)
	allies := cm.nearest(c.point, radius, c.caster.IsAlly)
	if n := int(c.ability.Param(model.ParamMaxTargets)); n > 0 && len(allies) > n {
		allies = allies[:n]
	}

	applied := 0
	for _, u := range allies {
		if cm.applyStatus(c, u) {
			applied++
		}
	}

	if applied > 0 {
		cm.emit(model.EffectEvent{
			Kind:   model.EventBuff,
			Source: c.caster.Handle(),
			Pos:    c.point,
			Radius: radius,
			Amount: float64(applied),
			Label:  c.ability.Name,
		})
	}
	return applied > 0
}

// applyStatus applies the ability's status to u. Conflicts are logged by the manager.
func (cm *CastManager) applyStatus(c castContext, u *model.Unit) bool {
	err := cm.effects.Apply(u, c.ability.status(c.caster.Handle()))
	if err == nil {
		return true
	}
	if !errors.Is(err, ErrConflictingEffect) {
		slog.Debug("status not applied",
			"ability", c.ability.Name,
			"target", u.Name(),
			"error", err)
	}
	return false
}

// nearest returns live units within radius of center accepted by keep, nearest first.
func (cm *CastManager) nearest(center model.Vec2, radius float64, keep func(*model.Unit) bool) []*model.Unit {
	var result []*model.Unit
	for _, u := range cm.world.InRadius(center, radius) {
		if keep(u) {
			result = append(result, u)
		}
	}
	slices.SortStableFunc(result, func(a, b *model.Unit) int {
		return cmp.Compare(center.DistanceSquared(a.Position()), center.DistanceSquared(b.Position()))
	})
	return result
}
