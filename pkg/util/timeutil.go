package util

import "time"

// NowUTC exposes time.Now for deterministic testing.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// Clock lets callers swap the time source in tests.
type Clock func() time.Time

// Now returns the clock's time, falling back to NowUTC for a nil clock.
func (c Clock) Now() time.Time {
	if c == nil {
		return NowUTC()
	}
	return c()
}
