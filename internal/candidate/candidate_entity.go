package candidate

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Candidate struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AgencyID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_candidates_agency_email"`

	// Reference is the human-facing code printed on reports and read
	// over the phone, e.g. ADY-000042. Assigned once at creation.
	Reference string `gorm:"size:16;not null;uniqueIndex"`

	FirstName   string `gorm:"size:100;not null"`
	LastName    string `gorm:"size:100;not null"`
	Email       string `gorm:"size:255;not null;uniqueIndex:idx_candidates_agency_email"`
	Phone       string `gorm:"size:32"`
	BirthYear   int
	Gender      string `gorm:"size:20"`
	Nationality string `gorm:"size:60"`

	City     string `gorm:"size:60"`
	District string `gorm:"size:60"`
	Address  string `gorm:"size:500"`

	DisabilityCategory string `gorm:"size:100"`
	DisabilityRate     int

	DriverLicense string `gorm:"size:10"`
	Summary       string `gorm:"type:text"`
	AvatarURL     string `gorm:"size:500"`

	IsActive  bool `gorm:"default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Candidate) TableName() string {
	return "candidates"
}

// Age derives from the birth year alone; day and month were never
// recorded in the legacy data.
func (c Candidate) Age(now time.Time) int {
	if c.BirthYear <= 0 {
		return 0
	}
	return now.Year() - c.BirthYear
}

func (c Candidate) FullName() string {
	return c.FirstName + " " + c.LastName
}
