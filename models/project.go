package models

import (
	"time"

	"gorm.io/gorm"
)

type Project struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	Name      string         `gorm:"uniqueIndex;not null;size:120" json:"name"`
	Code      string         `gorm:"size:50" json:"code"`
	Client    string         `gorm:"size:120" json:"client"`
	IsActive  bool           `gorm:"not null;default:true" json:"is_active"`

	TimeEntries []TimeEntry `gorm:"foreignKey:ProjectID" json:"time_entries,omitempty"`
}
