package utils

import "time"

// OneMonthAgo is the lower bound used for "last month" counters.
func OneMonthAgo(now time.Time) time.Time {
	return now.UTC().AddDate(0, -1, 0)
}

// NormalizeRange defaults to the trailing 30 days and keeps start before end.
func NormalizeRange(start, end time.Time) (time.Time, time.Time) {
	if end.IsZero() {
		end = time.Now().UTC()
	}
	if start.IsZero() {
		start = end.AddDate(0, 0, -30)
	}
	if start.After(end) {
		start, end = end, start
	}
	return start, end
}
