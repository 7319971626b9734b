package battle

import "github.com/udisondev/lanewars/internal/model"

// Treasury is the in-memory per-faction gold balance of one battle.
type Treasury struct {
	gold map[model.Faction]float64
}

// NewTreasury creates an empty treasury.
func NewTreasury() *Treasury {
	return &Treasury{gold: make(map[model.Faction]float64, 2)}
}

// AddGold credits amount to faction. Non-positive amounts are ignored.
func (t *Treasury) AddGold(faction model.Faction, amount float64) {
	if amount <= 0 {
		return
	}
	t.gold[faction] += amount
}

// Gold returns the balance of faction.
func (t *Treasury) Gold(faction model.Faction) float64 {
	return t.gold[faction]
}
