package party

import (
	"log/slog"
	"maps"
	"slices"

	"github.com/udisondev/lanewars/internal/model"
	"github.com/udisondev/lanewars/internal/world"
)

// MinMembers is the smallest valid group. Smaller groups are torn down immediately.
const MinMembers = 2

// World resolves member handles. Dead units must be reported as not found.
type World interface {
	Unit(h model.Handle) (*model.Unit, bool)
}

// Effects applies and removes the link buff members carry.
type Effects interface {
	Apply(target *model.Unit, s model.Status) error
	Remove(u *model.Unit, name string, debuff bool) bool
}

// DamageFunc is the engine's direct damage path: no passives, no sharing.
type DamageFunc func(target *model.Unit, amount float64, source model.Handle, label string)

// Deps are the collaborators of a Manager.
type Deps struct {
	World      World
	Effects    Effects
	Damage     DamageFunc
	Sink       model.EffectSink
	IDs        *world.IDGenerator
	MaxMembers int
}

// Manager manages all linked groups of one battle.
// Not safe for concurrent use: owned by the simulation goroutine.
type Manager struct {
	world      World
	effects    Effects
	damage     DamageFunc
	sink       model.EffectSink
	ids        *world.IDGenerator
	maxMembers int

	groups   map[uint64]*Group
	byMember map[model.Handle]*Group

	// sharing is set while shared damage is being dealt, so it never fans out again.
	sharing bool
}

// NewManager creates a new linked group manager.
func NewManager(d Deps) *Manager {
	if d.IDs == nil {
		d.IDs = world.NewIDGenerator()
	}
	if d.MaxMembers < MinMembers {
		d.MaxMembers = 4
	}
	return &Manager{
		world:      d.World,
		effects:    d.Effects,
		damage:     d.Damage,
		sink:       d.Sink,
		ids:        d.IDs,
		maxMembers: d.MaxMembers,
		groups:     make(map[uint64]*Group),
		byMember:   make(map[model.Handle]*Group),
	}
}

// Link forms a group from members (at most MaxMembers of them, in the given order).
// Dead, duplicate and already linked units are skipped. Every member gets the link buff;
// members that cannot take it are left out. Returns false if fewer than two members remain.
func (m *Manager) Link(members []*model.Unit, shareFraction, duration float64, label string, source model.Handle) bool {
	if duration <= 0 {
		return false
	}

	g := &Group{
		Label:         label,
		Source:        source,
		ShareFraction: min(max(shareFraction, 0), 1),
		Remaining:     duration,
	}

	var linked []*model.Unit
	for _, u := range members {
		if len(linked) == m.maxMembers {
			break
		}
		if u == nil || u.IsDead() || m.IsLinked(u.Handle()) || slices.Contains(linked, u) {
			continue
		}
		st := model.Status{Name: label, Kind: model.StatusLink, Source: source, Remaining: duration}
		if err := m.effects.Apply(u, st); err != nil {
			slog.Debug("link member skipped", "unit", u.Name(), "error", err)
			continue
		}
		linked = append(linked, u)
	}

	if len(linked) < MinMembers {
		for _, u := range linked {
			m.effects.Remove(u, label, false)
		}
		return false
	}

	g.ID = m.ids.Next()
	for _, u := range linked {
		g.members = append(g.members, u.Handle())
		m.byMember[u.Handle()] = g
	}
	m.groups[g.ID] = g

	slog.Debug("group linked",
		"group", g.ID,
		"label", label,
		"members", len(linked))
	return true
}

// IsLinked reports whether h belongs to a group.
func (m *Manager) IsLinked(h model.Handle) bool {
	_, ok := m.byMember[h]
	return ok
}

// GroupOf returns the group of h.
func (m *Manager) GroupOf(h model.Handle) (*Group, bool) {
	g, ok := m.byMember[h]
	return g, ok
}

// Share splits already-mitigated damage dealt to defender across its group.
// ShareFraction of it goes to the other live members in equal parts, the last one
// absorbing the rounding remainder; the rest is returned for the defender to take.
// Damage dealt by Share itself is never shared again.
func (m *Manager) Share(defender *model.Unit, damage float64) float64 {
	if m.sharing || damage <= 0 || defender == nil {
		return damage
	}
	g, ok := m.byMember[defender.Handle()]
	if !ok || g.ShareFraction <= 0 {
		return damage
	}

	others := m.liveMembers(g, defender.Handle())
	if len(others) == 0 {
		return damage
	}

	shared := damage * g.ShareFraction
	each := shared / float64(len(others))

	m.sharing = true
	defer func() { m.sharing = false }()

	dealt := 0.0
	for i, u := range others {
		part := each
		if i == len(others)-1 {
			part = shared - dealt
		}
		m.damage(u, part, defender.Handle(), g.Label)
		dealt += part
	}

	m.emit(model.EffectEvent{
		Kind:   model.EventLinkShare,
		Source: defender.Handle(),
		Target: defender.Handle(),
		Pos:    defender.Position(),
		Amount: shared,
		Label:  g.Label,
	})
	return damage - shared
}

// Leave removes h from its group and strips its link buff if it is still alive.
// A group left with fewer than two members is disbanded right away.
func (m *Manager) Leave(h model.Handle) {
	g, ok := m.byMember[h]
	if !ok {
		return
	}
	g.removeMember(h)
	delete(m.byMember, h)
	if u, ok := m.world.Unit(h); ok {
		m.effects.Remove(u, g.Label, false)
	}
	if g.MemberCount() < MinMembers {
		m.disband(g)
	}
}

// Tick ages every group by delta seconds, drops members that are dead or lost their
// link buff, and disbands groups that expired or fell below two members.
func (m *Manager) Tick(delta float64) {
	for _, id := range slices.Sorted(maps.Keys(m.groups)) {
		g := m.groups[id]
		g.Remaining -= delta

		for _, h := range g.Members() {
			u, ok := m.world.Unit(h)
			if ok && hasLink(u, g.Label) {
				continue
			}
			g.removeMember(h)
			delete(m.byMember, h)
		}

		if g.Remaining <= 0 || g.MemberCount() < MinMembers {
			m.disband(g)
		}
	}
}

// Count returns the number of live groups.
func (m *Manager) Count() int {
	return len(m.groups)
}

// disband strips the link buff from all remaining members and deletes the group.
func (m *Manager) disband(g *Group) {
	for _, h := range g.members {
		if u, ok := m.world.Unit(h); ok {
			m.effects.Remove(u, g.Label, false)
		}
		delete(m.byMember, h)
	}
	g.members = nil
	delete(m.groups, g.ID)

	slog.Debug("group disbanded", "group", g.ID, "label", g.Label)
}

// liveMembers returns the live members of g except h, in link order.
func (m *Manager) liveMembers(g *Group, except model.Handle) []*model.Unit {
	var out []*model.Unit
	for _, h := range g.members {
		if h == except {
			continue
		}
		if u, ok := m.world.Unit(h); ok {
			out = append(out, u)
		}
	}
	return out
}

func (m *Manager) emit(ev model.EffectEvent) {
	if m.sink != nil {
		m.sink(ev)
	}
}

func hasLink(u *model.Unit, label string) bool {
	s := u.Buff(label)
	return s != nil && s.Kind == model.StatusLink
}
