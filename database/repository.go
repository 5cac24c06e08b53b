package database

import (
	"time"

	"worktime/core"
	"worktime/models"

	"gorm.io/gorm"
)

// Repository is the GORM-backed implementation of the core repository
// port.
type Repository struct {
	db *gorm.DB
}

var _ core.Repository = (*Repository)(nil)

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindEntries applies the filter predicates and returns matching
// entries ordered by date descending, start time ascending, with their
// project and person loaded. The WHERE clauses mirror core.Filters.Match
// predicate for predicate.
func (r *Repository) FindEntries(filters core.Filters) ([]models.TimeEntry, error) {
	query := r.db.Model(&models.TimeEntry{}).
		Joins("JOIN projects ON projects.id = time_entries.project_id").
		Joins("JOIN people ON people.id = time_entries.person_id").
		Preload("Project").Preload("Person")

	if filters.StartDate != nil {
		query = query.Where("time_entries.date >= ?", *filters.StartDate)
	}
	if filters.EndDate != nil {
		query = query.Where("time_entries.date <= ?", *filters.EndDate)
	}
	if filters.ProjectID != 0 {
		query = query.Where("time_entries.project_id = ?", filters.ProjectID)
	}
	if filters.PersonID != 0 {
		query = query.Where("time_entries.person_id = ?", filters.PersonID)
	}
	if !filters.IncludeInactive {
		query = query.Where("projects.is_active = ? AND people.is_active = ?", true, true)
	}

	var entries []models.TimeEntry
	err := query.Order("time_entries.date desc, time_entries.start_time asc").Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *Repository) FindForPersonOnDate(personID uint, date time.Time, excludeID uint) ([]models.TimeEntry, error) {
	query := r.db.Where("person_id = ? AND date = ?", personID, date)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var entries []models.TimeEntry
	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *Repository) GetProject(id uint) (*models.Project, error) {
	var project models.Project
	if err := r.db.First(&project, id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *Repository) GetPerson(id uint) (*models.Person, error) {
	var person models.Person
	if err := r.db.First(&person, id).Error; err != nil {
		return nil, err
	}
	return &person, nil
}
