package models

import (
	"time"

	"gorm.io/gorm"
)

type TimeEntry struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	ProjectID uint           `gorm:"not null;index" json:"project_id"`
	Project   Project        `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	PersonID  uint           `gorm:"not null;index" json:"person_id"`
	Person    Person         `gorm:"foreignKey:PersonID" json:"person,omitempty"`
	Date      time.Time      `gorm:"not null;type:date;index" json:"date"`
	StartTime *time.Time     `gorm:"type:time" json:"start_time,omitempty"`
	EndTime   *time.Time     `gorm:"type:time" json:"end_time,omitempty"`
	// DurationHours is always positive; the check constraint backs the
	// invariant enforced by the duration resolver on every write path.
	DurationHours float64 `gorm:"not null;check:duration_hours > 0" json:"duration_hours"`
	Notes         string  `gorm:"size:500" json:"notes"`
}
