// Package clock provides the time source used by the domain packages.
// Validation and expiry checks never read ambient time directly; they go
// through a Clock handed in by the caller, which keeps the domain
// deterministic under test.
package clock

import "time"

// Clock yields the current instant.
type Clock interface {
	Now() time.Time
}

// System returns a Clock backed by time.Now.
func System() Clock {
	return systemClock{}
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Fixed returns a Clock frozen at t. Intended for tests and for replaying
// validation at a known instant.
func Fixed(t time.Time) Clock {
	return fixedClock{t: t}
}

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time { return c.t }
