package core

import "time"

// OverlapValidator prevents a person from having two entries with
// intersecting time ranges on the same date.
//
// The check reads a snapshot of existing entries at validation time, so
// two concurrent submissions can each see "no conflict" and both commit.
// Authoritative enforcement belongs to the persistence layer (e.g. an
// exclusion constraint on person, date and time range).
type OverlapValidator struct {
	Entries EntryFinder
}

// Validate checks the candidate range against existing entries for the
// same person and date. Entries without a full time range never take part
// in overlap checking, neither as candidates nor as obstacles. The test is
// half-open: an entry ending exactly when another begins is not a
// conflict.
func (v *OverlapValidator) Validate(personID uint, date time.Time, start, end *time.Time, excludeID uint) error {
	if start == nil || end == nil {
		return nil
	}

	existing, err := v.Entries.FindForPersonOnDate(personID, date, excludeID)
	if err != nil {
		return err
	}

	newStart := minutesOfDay(*start)
	newEnd := minutesOfDay(*end)

	for _, entry := range existing {
		if entry.StartTime == nil || entry.EndTime == nil {
			continue
		}
		existingStart := minutesOfDay(*entry.StartTime)
		existingEnd := minutesOfDay(*entry.EndTime)
		if newStart < existingEnd && newEnd > existingStart {
			return newValidationError(OverlapConflict, "an overlapping entry already exists for this person")
		}
	}
	return nil
}

// minutesOfDay truncates to whole minutes; seconds never participate in
// the overlap test.
func minutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
