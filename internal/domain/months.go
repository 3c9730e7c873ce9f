package domain

import "time"

// MonthsBetween counts whole calendar months from start to end.
// The last month is not counted when end's day of month is before start's.
// The result is never negative.
func MonthsBetween(start, end time.Time) int {
	months := (end.Year()-start.Year())*12 + int(end.Month()-start.Month())
	if end.Day() < start.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}

// CalendarDate returns t's calendar date, in t's own zone, as midnight UTC.
// Start dates are stored this way so storage never moves them to another day.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
