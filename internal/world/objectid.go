package world

// IDGenerator hands out monotonically increasing ids for transient battle objects
// (corpses, ground effects, linked groups). One generator per battle: ids are
// never derived from wall-clock time or randomness, so replays are deterministic.
//
// ID 0 is reserved as invalid.
type IDGenerator struct {
	next uint64
}

// NewIDGenerator creates a generator whose first id is 1.
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{}
}

// Next returns the next id.
func (g *IDGenerator) Next() uint64 {
	g.next++
	return g.next
}
