package services

import "time"

// Clock supplies the time stamped on reconciled and bulk-updated parcels.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a plain function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time {
	return f()
}

// SystemClock returns the wall clock in UTC.
func SystemClock() Clock {
	return ClockFunc(func() time.Time {
		return time.Now().UTC()
	})
}

// FixedClock always returns at.
func FixedClock(at time.Time) Clock {
	return ClockFunc(func() time.Time {
		return at
	})
}
