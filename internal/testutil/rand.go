package testutil

// FixedRand is a deterministic pseudorandom source replaying a fixed sequence of values.
// After the last value the sequence starts over.
type FixedRand struct {
	values []float64
	i      int
}

// NewFixedRand creates a source returning values in order. No values means always 0.
func NewFixedRand(values ...float64) *FixedRand {
	return &FixedRand{values: values}
}

// Float64 returns the next value of the sequence.
func (r *FixedRand) Float64() float64 {
	if len(r.values) == 0 {
		return 0
	}
	v := r.values[r.i%len(r.values)]
	r.i++
	return v
}

// Calls returns how many values have been drawn.
func (r *FixedRand) Calls() int {
	return r.i
}
