package world

import (
	"slices"

	"github.com/udisondev/lanewars/internal/model"
)

// DefaultDeadHistoryCapacity is the number of corpses remembered per battle.
const DefaultDeadHistoryCapacity = 20

// DeadHistory is a bounded, oldest-evicted-first record of fallen units.
type DeadHistory struct {
	capacity int
	entries  []model.Corpse // oldest first
	ids      *IDGenerator
}

// NewDeadHistory creates a history holding at most capacity entries.
func NewDeadHistory(capacity int) *DeadHistory {
	if capacity <= 0 {
		capacity = DefaultDeadHistoryCapacity
	}
	return &DeadHistory{
		capacity: capacity,
		entries:  make([]model.Corpse, 0, capacity),
		ids:      NewIDGenerator(),
	}
}

// Record appends a corpse, evicting the oldest entry when full.
func (d *DeadHistory) Record(unitType string, faction model.Faction, pos model.Vec2, now float64) model.Corpse {
	c := model.Corpse{
		ID:       d.ids.Next(),
		UnitType: unitType,
		Faction:  faction,
		Pos:      pos,
		DiedAt:   now,
	}
	if len(d.entries) >= d.capacity {
		d.entries = slices.Delete(d.entries, 0, 1)
	}
	d.entries = append(d.entries, c)
	return c
}

// Nearest returns the corpse closest to pos that belongs to faction, whose type is in
// allowed (empty = any type) and that died no more than maxAge seconds ago (0 = no limit).
func (d *DeadHistory) Nearest(pos model.Vec2, faction model.Faction, allowed []string, now, maxAge float64) (model.Corpse, bool) {
	var (
		best     model.Corpse
		bestDist float64
		found    bool
	)
	for _, c := range d.entries {
		if !c.Faction.Matches(faction) {
			continue
		}
		if len(allowed) > 0 && !slices.Contains(allowed, c.UnitType) {
			continue
		}
		if maxAge > 0 && now-c.DiedAt > maxAge {
			continue
		}
		dist := pos.DistanceSquared(c.Pos)
		if !found || dist < bestDist {
			best, bestDist, found = c, dist, true
		}
	}
	return best, found
}

// Remove deletes the corpse with the given id. Returns false if it is no longer recorded.
func (d *DeadHistory) Remove(id uint64) bool {
	i := slices.IndexFunc(d.entries, func(c model.Corpse) bool { return c.ID == id })
	if i < 0 {
		return false
	}
	d.entries = slices.Delete(d.entries, i, i+1)
	return true
}

// Len returns the number of recorded corpses.
func (d *DeadHistory) Len() int {
	return len(d.entries)
}

// Entries returns a copy of the history, oldest first.
func (d *DeadHistory) Entries() []model.Corpse {
	return slices.Clone(d.entries)
}
