package cache

import (
	"time"
)

// RefreshHour is the local hour at which providers have published the previous session.
const RefreshHour = 8

// TimeUntilNextRefresh returns the duration from now until the next hour:00 in loc.
// A nil loc means UTC.
func TimeUntilNextRefresh(now time.Time, hour int, loc *time.Location) time.Duration {
	if loc == nil {
		loc = time.UTC
	}
	now = now.In(loc)

	next := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, loc)
	// Already past today's refresh: use tomorrow's
	if !now.Before(next) {
		next = next.AddDate(0, 0, 1)
	}
	return next.Sub(now)
}

// UntilNextRefresh returns a TTLFunc expiring entries at the next hour:00 in loc,
// measured from now() at each write. A nil now means time.Now.
func UntilNextRefresh(hour int, loc *time.Location, now func() time.Time) TTLFunc {
	if now == nil {
		now = time.Now
	}
	return func() time.Duration {
		return TimeUntilNextRefresh(now(), hour, loc)
	}
}
