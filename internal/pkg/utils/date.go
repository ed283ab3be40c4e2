package utils

import (
	"math"
	"time"
)

// CalendarDateLayout is the wire format for all backend dates.
const CalendarDateLayout = "2006-01-02"

// ParseCalendarDate parses a YYYY-MM-DD string as midnight in the reference
// location. Availability is date arithmetic only; time-of-day never enters
// the comparison.
func ParseCalendarDate(value string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(CalendarDateLayout, value, loc)
}

func FormatCalendarDate(t time.Time) string {
	return t.Format(CalendarDateLayout)
}

// TruncateToDate drops the time-of-day of t in the reference location.
func TruncateToDate(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// WholeDaysBetween returns the number of calendar days from a to b, both
// truncated to their date in loc. Negative when b is before a.
func WholeDaysBetween(a, b time.Time, loc *time.Location) int {
	from := TruncateToDate(a, loc)
	to := TruncateToDate(b, loc)
	// Rounding absorbs the 23h/25h days around DST transitions.
	return int(math.Round(to.Sub(from).Hours() / 24))
}
