package world

import (
	"fmt"

	"github.com/udisondev/lanewars/internal/model"
)

// slot is one arena cell. gen is bumped every time the slot is freed,
// which invalidates all outstanding handles to the previous occupant.
type slot struct {
	gen  uint32
	unit *model.Unit
}

// World is the entity registry of one battle.
// Not safe for concurrent use: a battle is simulated on a single goroutine.
type World struct {
	slots []slot
	free  []uint32
	dead  *DeadHistory
}

// New creates an empty world with a dead-unit history of the given capacity.
func New(deadHistoryCapacity int) *World {
	return &World{
		slots: make([]slot, 0, 64),
		dead:  NewDeadHistory(deadHistoryCapacity),
	}
}

// Add registers a unit and assigns its handle.
// Returns error if the unit already has a live handle in this world.
func (w *World) Add(u *model.Unit) (model.Handle, error) {
	if h := u.Handle(); !h.IsZero() {
		if cur, ok := w.lookup(h); ok && cur == u {
			return h, fmt.Errorf("unit %s already registered as %s", u.Name(), h)
		}
	}

	var idx uint32
	if n := len(w.free); n > 0 {
		idx = w.free[n-1]
		w.free = w.free[:n-1]
	} else {
		idx = uint32(len(w.slots))
		w.slots = append(w.slots, slot{})
	}

	s := &w.slots[idx]
	s.gen++
	s.unit = u
	h := model.Handle{Index: idx, Gen: s.gen}
	u.SetHandle(h)
	return h, nil
}

// lookup resolves h regardless of the unit's alive state.
func (w *World) lookup(h model.Handle) (*model.Unit, bool) {
	if h.IsZero() || int(h.Index) >= len(w.slots) {
		return nil, false
	}
	s := w.slots[h.Index]
	if s.gen != h.Gen || s.unit == nil {
		return nil, false
	}
	return s.unit, true
}

// Unit returns the live unit behind h.
// Dead units and stale handles are reported as not found.
func (w *World) Unit(h model.Handle) (*model.Unit, bool) {
	u, ok := w.lookup(h)
	if !ok || u.IsDead() {
		return nil, false
	}
	return u, true
}

// Units returns all live mobile units of the faction (AnyFaction = all), in slot order.
func (w *World) Units(faction model.Faction) []*model.Unit {
	return w.collect(func(u *model.Unit) bool {
		return !u.IsStructure() && u.Faction().Matches(faction)
	})
}

// Structures returns all live structures (strongholds) of the faction.
func (w *World) Structures(faction model.Faction) []*model.Unit {
	return w.collect(func(u *model.Unit) bool {
		return u.IsStructure() && u.Faction().Matches(faction)
	})
}

// Combatants returns all live units and structures, in slot order.
func (w *World) Combatants() []*model.Unit {
	return w.collect(func(*model.Unit) bool { return true })
}

// InRadius returns live mobile units within radius of center (inclusive).
func (w *World) InRadius(center model.Vec2, radius float64) []*model.Unit {
	return w.collect(func(u *model.Unit) bool {
		return !u.IsStructure() && center.Within(u.Position(), radius)
	})
}

func (w *World) collect(pred func(*model.Unit) bool) []*model.Unit {
	var result []*model.Unit
	for i := range w.slots {
		u := w.slots[i].unit
		if u == nil || u.IsDead() {
			continue
		}
		if pred(u) {
			result = append(result, u)
		}
	}
	return result
}

// Sweep frees slots of dead units. Their handles become stale.
// Returns number of slots freed.
func (w *World) Sweep() int {
	freed := 0
	for i := range w.slots {
		s := &w.slots[i]
		if s.unit == nil || !s.unit.IsDead() {
			continue
		}
		s.unit = nil
		s.gen++
		w.free = append(w.free, uint32(i))
		freed++
	}
	return freed
}

// Count returns the number of live units and structures.
func (w *World) Count() int {
	return len(w.Combatants())
}

// DeadHistory returns the bounded dead-unit history.
func (w *World) DeadHistory() *DeadHistory {
	return w.dead
}
