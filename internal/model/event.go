package model

// EffectEventKind tags a presentation-relevant event.
type EffectEventKind uint8

const (
	EventAttack EffectEventKind = iota
	EventHeal
	EventDispel
	EventBuff
	EventDebuff
	EventShieldTick
	EventGroundFire
	EventCleave
	EventTaunt
	EventLink
	EventLinkShare
	EventResurrect
	EventGold
	EventStun
	EventDeath
)

var eventNames = [...]string{
	"attack", "heal", "dispel", "buff", "debuff", "shield_tick", "ground_fire",
	"cleave", "taunt", "link", "link_share", "resurrect", "gold", "stun", "death",
}

func (k EffectEventKind) String() string {
	if int(k) >= len(eventNames) {
		return "unknown"
	}
	return eventNames[k]
}

// EffectEvent describes something the presentation layer may want to draw.
type EffectEvent struct {
	Kind   EffectEventKind
	Source Handle
	Target Handle
	Pos    Vec2
	Radius float64
	Amount float64
	Label  string // ability or status name
}

// EffectSink receives effect events. Implementations must not block.
type EffectSink func(EffectEvent)

// Corpse is a dead-unit history entry used by resurrection abilities.
type Corpse struct {
	ID       uint64
	UnitType string
	Faction  Faction
	Pos      Vec2
	DiedAt   float64 // simulation seconds
}
