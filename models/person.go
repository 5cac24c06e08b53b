package models

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

type Person struct {
	ID               uint           `gorm:"primaryKey" json:"id"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
	FullName         string         `gorm:"not null;size:120" json:"full_name"`
	Email            string         `gorm:"uniqueIndex;not null;size:255" json:"email"`
	PasswordHash     string         `gorm:"not null" json:"-"`
	HourlyRate       *float64       `gorm:"type:numeric(10,2)" json:"hourly_rate,omitempty"`
	IsActive         bool           `gorm:"not null;default:true" json:"is_active"`
	Role             Role           `gorm:"not null;size:20;default:user" json:"role"`
	ResetToken       *string        `gorm:"size:100" json:"-"`
	ResetTokenExpiry *time.Time     `json:"-"`

	TimeEntries []TimeEntry `gorm:"foreignKey:PersonID" json:"time_entries,omitempty"`
}

func (p *Person) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// CanManageEntriesFor reports whether this person may create, edit or
// delete entries owned by personID.
func (p *Person) CanManageEntriesFor(personID uint) bool {
	if p.IsAdmin() {
		return true
	}
	return p.ID == personID
}

func (p *Person) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	p.PasswordHash = string(hash)
	return nil
}

func (p *Person) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(password)) == nil
}

// GenerateResetToken sets a fresh password reset token valid for ttl.
func (p *Person) GenerateResetToken(ttl time.Duration) string {
	token := uuid.NewString()
	expiry := time.Now().Add(ttl)
	p.ResetToken = &token
	p.ResetTokenExpiry = &expiry
	return token
}

func (p *Person) VerifyResetToken(token string) bool {
	if p.ResetToken == nil || p.ResetTokenExpiry == nil {
		return false
	}
	if *p.ResetToken != token {
		return false
	}
	return time.Now().Before(*p.ResetTokenExpiry)
}

func (p *Person) ClearResetToken() {
	p.ResetToken = nil
	p.ResetTokenExpiry = nil
}
