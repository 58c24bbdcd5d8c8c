package sales

import "time"

// DayStart truncates t to local midnight.
func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DayEnd returns the last representable instant of t's day.
func DayEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// Range bounds for report queries.
const (
	RangeWeekly  = "weekly"
	RangeMonthly = "monthly"
	RangeYearly  = "yearly"
)

// RangeBounds resolves a named range to [start, end] around now: weekly is
// the last 7 days, monthly the current calendar month, yearly the current
// year. ok is false for unknown names.
func RangeBounds(name string, now time.Time) (start, end time.Time, ok bool) {
	switch name {
	case RangeWeekly:
		start = DayStart(now.AddDate(0, 0, -7))
	case RangeMonthly:
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	case RangeYearly:
		start = time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
	default:
		return time.Time{}, time.Time{}, false
	}
	return start, DayEnd(now), true
}
