package party

import (
	"slices"

	"github.com/udisondev/lanewars/internal/model"
)

// Group is a linked damage-sharing group.
// Members are referenced by handle; dead members resolve as "not found" and are pruned.
type Group struct {
	ID            uint64
	Label         string // name of the link buff every member carries
	Source        model.Handle
	ShareFraction float64
	Remaining     float64 // seconds

	members []model.Handle
}

// Members returns a copy of the member handles in link order.
func (g *Group) Members() []model.Handle {
	return slices.Clone(g.members)
}

// MemberCount returns the number of members still in the group.
func (g *Group) MemberCount() int {
	return len(g.members)
}

// IsMember reports whether h is in the group.
func (g *Group) IsMember(h model.Handle) bool {
	return slices.Contains(g.members, h)
}

func (g *Group) removeMember(h model.Handle) bool {
	i := slices.Index(g.members, h)
	if i < 0 {
		return false
	}
	g.members = slices.Delete(g.members, i, i+1)
	return true
}
