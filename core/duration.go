package core

import "time"

// ResolveDuration derives the duration in hours for a time entry.
//
// When both start and end are present the range wins: the duration is the
// distance between them on the entry date, and any explicit value is
// ignored. Without a range the explicit value is used as-is. A non-positive
// range or explicit value fails with InvalidDuration; supplying neither
// fails with MissingDuration.
func ResolveDuration(date time.Time, start, end *time.Time, explicit *float64) (float64, error) {
	if start != nil && end != nil {
		delta := combine(date, *end).Sub(combine(date, *start))
		if delta <= 0 {
			return 0, newValidationError(InvalidDuration, "end time must be after start time")
		}
		return delta.Seconds() / 3600, nil
	}

	if explicit == nil {
		return 0, newValidationError(MissingDuration, "specify either a time range or an explicit duration")
	}
	if *explicit <= 0 {
		return 0, newValidationError(InvalidDuration, "duration must be positive")
	}
	return *explicit, nil
}

// combine anchors a clock value on the given calendar date.
func combine(date, clock time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), clock.Second(), 0, time.UTC)
}
