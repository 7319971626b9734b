package world

import (
	"testing"

	"github.com/udisondev/lanewars/internal/model"
)

func newUnit(name string, faction model.Faction, x, y float64) *model.Unit {
	return model.NewUnit(model.UnitSpec{
		Type:      name,
		Name:      name,
		Faction:   faction,
		Pos:       model.NewVec2(x, y),
		MaxHealth: 100,
	})
}

func TestWorld_AddAndLookup(t *testing.T) {
	w := New(DefaultDeadHistoryCapacity)
	u := newUnit("footman", model.FactionWest, 0, 0)

	h, err := w.Add(u)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if h.IsZero() {
		t.Fatal("Add returned zero handle")
	}
	if u.Handle() != h {
		t.Errorf("unit handle = %s, want %s", u.Handle(), h)
	}

	got, ok := w.Unit(h)
	if !ok || got != u {
		t.Fatalf("Unit(%s) = %v, %v", h, got, ok)
	}

	if _, err := w.Add(u); err == nil {
		t.Error("second Add of the same unit should fail")
	}
}

func TestWorld_DeadUnitIsNotFound(t *testing.T) {
	w := New(DefaultDeadHistoryCapacity)
	u := newUnit("footman", model.FactionWest, 0, 0)
	h, _ := w.Add(u)

	u.TakeDamage(1000)

	if _, ok := w.Unit(h); ok {
		t.Error("dead unit should resolve as not found")
	}
	if n := len(w.Units(model.AnyFaction)); n != 0 {
		t.Errorf("Units() returned %d dead units", n)
	}
}

func TestWorld_StaleHandleAfterSweep(t *testing.T) {
	w := New(DefaultDeadHistoryCapacity)
	old := newUnit("footman", model.FactionWest, 0, 0)
	oldH, _ := w.Add(old)

	old.TakeDamage(1000)
	if freed := w.Sweep(); freed != 1 {
		t.Fatalf("Sweep freed %d slots, want 1", freed)
	}

	// Slot is reused with a new generation
	fresh := newUnit("archer", model.FactionEast, 5, 5)
	newH, _ := w.Add(fresh)

	if newH.Index != oldH.Index {
		t.Fatalf("expected slot reuse: old %s new %s", oldH, newH)
	}
	if newH.Gen == oldH.Gen {
		t.Fatal("generation must change on reuse")
	}
	if _, ok := w.Unit(oldH); ok {
		t.Error("stale handle must not resolve to the new occupant")
	}
	if got, ok := w.Unit(newH); !ok || got != fresh {
		t.Error("new handle must resolve")
	}
}

func TestWorld_FactionAndRadiusQueries(t *testing.T) {
	w := New(DefaultDeadHistoryCapacity)
	west := newUnit("footman", model.FactionWest, 0, 0)
	east := newUnit("archer", model.FactionEast, 10, 0)
	far := newUnit("archer", model.FactionEast, 100, 0)
	keep := model.NewUnit(model.UnitSpec{Type: "stronghold", Faction: model.FactionEast, Structure: true, MaxHealth: 1000})
	for _, u := range []*model.Unit{west, east, far, keep} {
		if _, err := w.Add(u); err != nil {
			t.Fatal(err)
		}
	}

	if n := len(w.Units(model.FactionEast)); n != 2 {
		t.Errorf("east units = %d, want 2", n)
	}
	if n := len(w.Units(model.AnyFaction)); n != 3 {
		t.Errorf("all units = %d, want 3 (structures excluded)", n)
	}
	if s := w.Structures(model.FactionEast); len(s) != 1 || s[0] != keep {
		t.Errorf("east structures = %v", s)
	}
	if n := len(w.InRadius(model.NewVec2(0, 0), 10)); n != 2 {
		t.Errorf("InRadius(10) = %d, want 2 (boundary inclusive)", n)
	}
	if n := w.Count(); n != 4 {
		t.Errorf("Count = %d, want 4", n)
	}
}

func TestDeadHistory_EvictsOldest(t *testing.T) {
	d := NewDeadHistory(3)
	for i := range 5 {
		d.Record("footman", model.FactionWest, model.NewVec2(float64(i), 0), float64(i))
	}

	if d.Len() != 3 {
		t.Fatalf("Len = %d, want 3", d.Len())
	}
	entries := d.Entries()
	if entries[0].DiedAt != 2 || entries[2].DiedAt != 4 {
		t.Errorf("expected entries 2..4 to survive, got %+v", entries)
	}
}

func TestDeadHistory_NearestFilters(t *testing.T) {
	d := NewDeadHistory(DefaultDeadHistoryCapacity)
	d.Record("footman", model.FactionWest, model.NewVec2(50, 0), 0)   // too old at now=20
	d.Record("archer", model.FactionWest, model.NewVec2(5, 0), 15)    // wrong type
	d.Record("footman", model.FactionEast, model.NewVec2(1, 0), 15)   // wrong faction
	want := d.Record("footman", model.FactionWest, model.NewVec2(30, 0), 15)

	got, ok := d.Nearest(model.NewVec2(0, 0), model.FactionWest, []string{"footman"}, 20, 10)
	if !ok {
		t.Fatal("expected a corpse")
	}
	if got.ID != want.ID {
		t.Errorf("Nearest = %+v, want %+v", got, want)
	}

	if !d.Remove(want.ID) {
		t.Fatal("Remove should succeed")
	}
	if d.Remove(want.ID) {
		t.Error("second Remove should fail")
	}
	if _, ok := d.Nearest(model.NewVec2(0, 0), model.FactionWest, []string{"footman"}, 20, 10); ok {
		t.Error("no eligible corpse should remain")
	}
}
