package battle

// SimClock is the simulated time of one battle, in seconds since it started.
type SimClock struct {
	now float64
}

// Now returns the current simulated time.
func (c *SimClock) Now() float64 { return c.now }

// Advance moves the clock forward by delta seconds.
func (c *SimClock) Advance(delta float64) {
	if delta > 0 {
		c.now += delta
	}
}
