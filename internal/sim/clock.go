package sim

import (
	"math/rand"
	"time"
)

// Clock is the engine's simulated notion of "now". It is advanced explicitly
// by the journey driver and reset per journey by the run driver, so it never
// tracks real wall-clock time.
type Clock struct {
	now time.Time
}

func (c *Clock) Now() time.Time {
	return c.now
}

func (c *Clock) Set(t time.Time) {
	c.now = t
}

// Advance moves the clock forward by a uniform [30,120] second increment
// divided by loadFactor, so busier periods see a faster succession of
// actions. Returns the applied increment.
func (c *Clock) Advance(rng *rand.Rand, loadFactor float64) time.Duration {
	secs := (30 + rng.Float64()*90) / loadFactor
	d := time.Duration(secs * float64(time.Second))
	c.now = c.now.Add(d)
	return d
}
