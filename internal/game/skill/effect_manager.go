package skill

import (
	"cmp"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/udisondev/lanewars/internal/model"
)

var (
	// ErrConflictingEffect is returned when a status with the same name but a different
	// kind is already active on the target. The first application wins.
	ErrConflictingEffect = errors.New("conflicting effect")
	// ErrInvalidStatus is returned for statuses that cannot be applied at all.
	ErrInvalidStatus = errors.New("invalid status")
)

// EffectManager applies, refreshes, ticks and reverses buffs/debuffs of all units.
// The statuses themselves live in the target's buff/debuff maps; the manager keeps a
// global tracking list in application order and references targets by handle.
//
// Not safe for concurrent use: owned by the simulation goroutine.
type EffectManager struct {
	world  World
	damage DamageFunc
	sink   model.EffectSink

	active []*model.Status
	seq    uint64
}

// NewEffectManager creates an empty EffectManager.
func NewEffectManager(w World, damage DamageFunc, sink model.EffectSink) *EffectManager {
	return &EffectManager{
		world:  w,
		damage: damage,
		sink:   sink,
		active: make([]*model.Status, 0, 64),
	}
}

// Apply applies a status to target.
//
// Stacking rules (same name in the same buff/debuff map):
//   - same kind → refreshes duration only, stats are untouched
//   - different kind → rejected with ErrConflictingEffect
//
// Otherwise the fields the kind touches are snapshotted, then mutated.
func (m *EffectManager) Apply(target *model.Unit, s model.Status) error {
	if target == nil || target.IsDead() {
		return fmt.Errorf("%w: target is dead", ErrInvalidStatus)
	}
	h, ok := statusHandlers[s.Kind]
	if !ok || s.Kind == model.StatusNone {
		return fmt.Errorf("%w: kind %s", ErrInvalidStatus, s.Kind)
	}
	if s.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidStatus)
	}

	s.Debuff = h.debuff
	bucket := statusMap(target, s.Debuff)
	if existing, ok := bucket[s.Name]; ok {
		if existing.Kind != s.Kind {
			slog.Warn("conflicting effect rejected",
				"target", target.Name(),
				"effect", s.Name,
				"active", existing.Kind,
				"incoming", s.Kind)
			return fmt.Errorf("%w: %q is %s, got %s", ErrConflictingEffect, s.Name, existing.Kind, s.Kind)
		}
		existing.Remaining = s.Remaining
		return nil
	}

	m.seq++
	st := s
	st.Seq = m.seq
	st.Target = target.Handle()
	st.Snapshot = model.CaptureStats(target, h.fields)
	if h.mutate != nil {
		h.mutate(target, &st)
	}

	bucket[st.Name] = &st
	m.active = append(m.active, &st)
	return nil
}

// Remove removes the named buff (debuff=false) or debuff from u.
// Returns false if no such status is active.
func (m *EffectManager) Remove(u *model.Unit, name string, debuff bool) bool {
	s, ok := statusMap(u, debuff)[name]
	if !ok {
		return false
	}
	m.remove(u, s)
	return true
}

// remove restores the snapshot of s and detaches it.
// Statuses applied after s are unwound first and re-applied afterwards, so every
// snapshot keeps describing the state right before its own status was applied.
func (m *EffectManager) remove(u *model.Unit, s *model.Status) {
	if s.Snapshot.Fields != 0 {
		later := laterStatuses(u, s.Seq)
		for i := len(later) - 1; i >= 0; i-- {
			later[i].Snapshot.Restore(u)
		}
		s.Snapshot.Restore(u)
		for _, l := range later {
			h := statusHandlers[l.Kind]
			l.Snapshot = model.CaptureStats(u, h.fields)
			h.mutate(u, l)
		}
	}

	delete(statusMap(u, s.Debuff), s.Name)
	m.untrack(s)
}

// Tick ages every active status by delta seconds.
// Periodic damage is applied before the expiry check, so the last partial second
// still deals damage. A status whose target is gone is pruned from tracking.
func (m *EffectManager) Tick(delta float64) {
	for _, s := range slices.Clone(m.active) {
		u, ok := m.world.Unit(s.Target)
		if !ok {
			m.untrack(s)
			continue
		}
		// Мог быть снят раньше в этом же проходе (смерть, сплэш)
		if !isAttached(u, s) {
			continue
		}

		if statusHandlers[s.Kind].periodic {
			m.periodicDamage(u, s, min(delta, max(s.Remaining, 0)))
		}

		s.Remaining -= delta
		if s.Remaining <= 0 && isAttached(u, s) {
			m.remove(u, s)
		}
	}
}

// periodicDamage deals DamagePerSecond×step to the target and the splash fraction of it
// to same-faction units within SplashRadius.
func (m *EffectManager) periodicDamage(u *model.Unit, s *model.Status, step float64) {
	dmg := s.DamagePerSecond * step
	if dmg <= 0 {
		return
	}
	center, faction := u.Position(), u.Faction()

	m.damage(u, dmg, s.Source, s.Name)

	if s.SplashRadius > 0 && s.SplashFraction > 0 {
		for _, o := range m.world.InRadius(center, s.SplashRadius) {
			if o == u || o.Faction() != faction {
				continue
			}
			m.damage(o, dmg*s.SplashFraction, s.Source, s.Name)
		}
	}

	m.emit(model.EffectEvent{
		Kind:   model.EventShieldTick,
		Source: s.Source,
		Target: s.Target,
		Pos:    center,
		Radius: s.SplashRadius,
		Amount: dmg,
		Label:  s.Name,
	})
}

// DetachAll removes every status of a unit that is leaving the battle, newest first,
// plus taunts that force other units onto it. Returns the number of statuses removed.
func (m *EffectManager) DetachAll(u *model.Unit) int {
	n := m.strip(u, allStatuses(u))

	h := u.Handle()
	for _, s := range slices.Clone(m.active) {
		if s.Kind != model.StatusTaunt || s.Source != h {
			continue
		}
		if t, ok := m.world.Unit(s.Target); ok && isAttached(t, s) {
			m.remove(t, s)
			n++
		}
	}
	return n
}

// StripBuffs removes all buffs of u. Returns the number removed.
func (m *EffectManager) StripBuffs(u *model.Unit) int {
	return m.strip(u, slices.Collect(maps.Values(u.Buffs())))
}

// StripDebuffs removes all debuffs of u. Returns the number removed.
func (m *EffectManager) StripDebuffs(u *model.Unit) int {
	return m.strip(u, slices.Collect(maps.Values(u.Debuffs())))
}

// strip removes statuses newest first, so no unwinding of later statuses is needed
// among the removed set.
func (m *EffectManager) strip(u *model.Unit, statuses []*model.Status) int {
	slices.SortFunc(statuses, func(a, b *model.Status) int { return cmp.Compare(b.Seq, a.Seq) })
	for _, s := range statuses {
		m.remove(u, s)
	}
	return len(statuses)
}

// ActiveCount returns the number of tracked statuses across all units.
func (m *EffectManager) ActiveCount() int {
	return len(m.active)
}

func (m *EffectManager) untrack(s *model.Status) {
	if i := slices.Index(m.active, s); i >= 0 {
		m.active = slices.Delete(m.active, i, i+1)
	}
}

func (m *EffectManager) emit(ev model.EffectEvent) {
	if m.sink != nil {
		m.sink(ev)
	}
}

func statusMap(u *model.Unit, debuff bool) map[string]*model.Status {
	if debuff {
		return u.Debuffs()
	}
	return u.Buffs()
}

func isAttached(u *model.Unit, s *model.Status) bool {
	return statusMap(u, s.Debuff)[s.Name] == s
}

func allStatuses(u *model.Unit) []*model.Status {
	all := slices.Collect(maps.Values(u.Buffs()))
	return append(all, slices.Collect(maps.Values(u.Debuffs()))...)
}

// laterStatuses returns the stat-touching statuses of u applied after seq, oldest first.
func laterStatuses(u *model.Unit, seq uint64) []*model.Status {
	var later []*model.Status
	for _, s := range allStatuses(u) {
		if s.Seq > seq && s.Snapshot.Fields != 0 {
			later = append(later, s)
		}
	}
	slices.SortFunc(later, func(a, b *model.Status) int { return cmp.Compare(a.Seq, b.Seq) })
	return later
}
