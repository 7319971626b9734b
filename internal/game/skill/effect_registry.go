package skill

import (
	"fmt"

	"github.com/udisondev/lanewars/internal/data"
)

// ErrUnknownEffectKind is reported when an ability kind has no registered handler.
var ErrUnknownEffectKind = data.ErrUnknownEffectKind

// castHandler executes one active effect kind after the cast has been committed.
// Returns whether the effect landed.
type castHandler func(cm *CastManager, c castContext) bool

// castHandlers maps effect kind → handler.
// Populated by init() below, one handler per effect file.
var castHandlers = map[data.EffectKind]castHandler{}

// registerCastHandler registers the handler of an active effect kind.
func registerCastHandler(kind data.EffectKind, h castHandler) {
	if kind.IsPassive() || !kind.IsValid() {
		panic(fmt.Sprintf("cannot register cast handler for %s", kind))
	}
	castHandlers[kind] = h
}

// CheckKind returns ErrUnknownEffectKind if nothing can dispatch the kind:
// active kinds need a cast handler, passive kinds an attack or defense rule.
func CheckKind(kind data.EffectKind) error {
	if kind.IsPassive() {
		if _, ok := attackRules[kind]; ok {
			return nil
		}
		if _, ok := defendRules[kind]; ok {
			return nil
		}
	} else if _, ok := castHandlers[kind]; ok {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrUnknownEffectKind, kind)
}

func init() {
	registerCastHandler(data.EffectHeal, castHeal)
	registerCastHandler(data.EffectDispel, castDispel)
	registerCastHandler(data.EffectGroupBuff, castGroupBuff)
	registerCastHandler(data.EffectDebuff, castDebuff)
	registerCastHandler(data.EffectShield, castDebuff)
	registerCastHandler(data.EffectTaunt, castTaunt)
	registerCastHandler(data.EffectLink, castLink)
	registerCastHandler(data.EffectResurrect, castResurrect)
}
