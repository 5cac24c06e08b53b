package core

import (
	"time"

	"worktime/models"
)

// Filters is the shared predicate set applied uniformly to listing,
// export and aggregation, so all three views agree on which entries
// count. Date bounds are inclusive; a zero project or person id means
// "all". Unless IncludeInactive is set, entries whose project or person
// is disabled are excluded.
type Filters struct {
	StartDate       *time.Time
	EndDate         *time.Time
	ProjectID       uint
	PersonID        uint
	IncludeInactive bool
}

// Match reports whether a single entry satisfies the predicate set. It
// is the reference semantics the persistence layer's query building
// mirrors predicate for predicate.
func (f Filters) Match(entry models.TimeEntry) bool {
	if f.StartDate != nil && entry.Date.Before(*f.StartDate) {
		return false
	}
	if f.EndDate != nil && entry.Date.After(*f.EndDate) {
		return false
	}
	if f.ProjectID != 0 && entry.ProjectID != f.ProjectID {
		return false
	}
	if f.PersonID != 0 && entry.PersonID != f.PersonID {
		return false
	}
	if !f.IncludeInactive && (!entry.Project.IsActive || !entry.Person.IsActive) {
		return false
	}
	return true
}

// DefaultPeriod returns the dashboard's default window: days calendar
// days ending today.
func DefaultPeriod(days int) (start, end time.Time) {
	if days < 1 {
		days = 1
	}
	now := time.Now().UTC()
	end = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	start = end.AddDate(0, 0, -(days - 1))
	return start, end
}
