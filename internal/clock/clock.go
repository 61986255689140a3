// Package clock provides an injectable source of the current time so that
// validation and authorization logic stays deterministic under test.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// System returns a Clock backed by time.Now.
func System() Clock { return systemClock{} }

// Fixed is a Clock pinned to a single instant.
type Fixed struct {
	T time.Time
}

func (f Fixed) Now() time.Time { return f.T }

// At returns a Clock that always reports t.
func At(t time.Time) Clock { return Fixed{T: t} }
