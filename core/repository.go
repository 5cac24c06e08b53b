package core

import (
	"time"

	"worktime/models"
)

// EntryFinder is the slice of the repository the overlap validator needs:
// all entries for one person on one date, optionally excluding the entry
// being edited (excludeID 0 excludes nothing).
type EntryFinder interface {
	FindForPersonOnDate(personID uint, date time.Time, excludeID uint) ([]models.TimeEntry, error)
}

// Repository is the persistence capability the engine is driven by. The
// engine never talks to a database directly; the surrounding application
// injects an implementation of this port.
type Repository interface {
	EntryFinder

	// FindEntries returns the entries matching the filter specification,
	// ordered by date descending then start time ascending, with their
	// project and person loaded.
	FindEntries(filters Filters) ([]models.TimeEntry, error)

	GetProject(id uint) (*models.Project, error)
	GetPerson(id uint) (*models.Person, error)
}
