// Package clock provides the current date for inputs that omit one.
package clock

import "time"

// Clock reports today's date.
// The returned value is a naive date: midnight, UTC location, with the
// calendar fields of the host's local day.
type Clock interface {
	Today() time.Time
}

// System reads the host clock.
type System struct{}

// Today implements Clock.
func (System) Today() time.Time {
	return dateOf(time.Now())
}

// Fixed always reports the same date (for tests).
type Fixed time.Time

// Today implements Clock.
func (f Fixed) Today() time.Time {
	return dateOf(time.Time(f))
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
