package schedule

import (
	"fmt"
	"time"

	"protrack-service/internal/pkg/utils"
)

// Availability is the computed window of one form occurrence.
type Availability struct {
	Available bool
	// AvailableDate is midnight of the first day the occurrence can be
	// completed, in the reference location.
	AvailableDate time.Time
	// DaysUntil is the number of whole calendar days until AvailableDate.
	// Zero when already available.
	DaysUntil int
}

// ComputeAvailability decides whether occurrence occurrenceIndex of a
// scheduled form is open at now. All comparisons are calendar-date only in
// loc; time-of-day never shifts a form in or out of its window. The
// occurrence's date is startDate + delayDays + occurrenceIndex*repeatIntervalDays
// calendar days.
func ComputeAvailability(startDate time.Time, delayDays, occurrenceIndex, repeatIntervalDays int, now time.Time, loc *time.Location) (Availability, error) {
	if delayDays < 0 {
		return Availability{}, fmt.Errorf("delayDays must be >= 0, got %d", delayDays)
	}
	if occurrenceIndex < 0 {
		return Availability{}, fmt.Errorf("occurrenceIndex must be >= 0, got %d", occurrenceIndex)
	}
	if repeatIntervalDays < 0 {
		return Availability{}, fmt.Errorf("repeatIntervalDays must be >= 0, got %d", repeatIntervalDays)
	}

	offsetDays := delayDays + occurrenceIndex*repeatIntervalDays
	availableDate := utils.TruncateToDate(startDate, loc).AddDate(0, 0, offsetDays)

	today := utils.TruncateToDate(now, loc)
	if !today.Before(availableDate) {
		return Availability{
			Available:     true,
			AvailableDate: availableDate,
		}, nil
	}

	return Availability{
		Available:     false,
		AvailableDate: availableDate,
		DaysUntil:     utils.WholeDaysBetween(today, availableDate, loc),
	}, nil
}
