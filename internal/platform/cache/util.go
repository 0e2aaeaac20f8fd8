package cache

import "time"

// TimeUntilMidnight returns the duration until the next midnight in the given
// location. Cached day windows are keyed by date, so entries must not outlive
// the day rollover.
func TimeUntilMidnight(loc *time.Location) time.Duration {
	if loc == nil {
		loc = time.UTC
	}
	now := time.Now().In(loc)
	next := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc).AddDate(0, 0, 1)
	return next.Sub(now)
}
