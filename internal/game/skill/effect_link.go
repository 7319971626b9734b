package skill

import "github.com/udisondev/lanewars/internal/model"

// castLink forms a linked damage-sharing group from unlinked allies within Radius of
// the point, nearest first, between MinMembers (at least 2) and MaxMembers of them.
func castLink(cm *CastManager, c castContext) bool {
	if cm.linker == nil {
		reject(c.caster, c.ability.Name, "no linker")
		return false
	}

	minMembers := max(int(c.ability.ParamOr(model.ParamMinMembers, 2)), 2)
	maxMembers := cm.maxLinkMembers
	if n := int(c.ability.Param(model.ParamMaxMembers)); n > 0 {
		maxMembers = min(n, maxMembers)
	}

	radius := c.ability.Param(model.ParamRadius)
	members := cm.nearest(c.point, radius, func(u *model.Unit) bool {
		return c.caster.IsAlly(u) && !cm.linker.IsLinked(u.Handle())
	})
	if len(members) < minMembers {
		reject(c.caster, c.ability.Name, "not enough members")
		return false
	}
	if len(members) > maxMembers {
		members = members[:maxMembers]
	}

	ok := cm.linker.Link(members,
		c.ability.Param(model.ParamShareFraction),
		c.ability.Param(model.ParamDuration),
		c.ability.Name,
		c.caster.Handle())
	if !ok {
		return false
	}

	cm.emit(model.EffectEvent{
		Kind:   model.EventLink,
		Source: c.caster.Handle(),
		Pos:    c.point,
		Radius: radius,
		Amount: float64(len(members)),
		Label:  c.ability.Name,
	})
	return true
}
