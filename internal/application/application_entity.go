package application

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Application statuses. Consultants move applications between any two
// of these; the pipeline deliberately has no transition rules because
// real placements skip and revisit stages all the time.
const (
	StatusPending   = "pending"
	StatusReviewed  = "reviewed"
	StatusInterview = "interview"
	StatusOffered   = "offered"
	StatusAccepted  = "accepted"
	StatusStarted   = "started"
	StatusRejected  = "rejected"
)

func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusReviewed, StatusInterview,
		StatusOffered, StatusAccepted, StatusStarted, StatusRejected:
		return true
	}
	return false
}

type Application struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AgencyID    uuid.UUID `gorm:"type:uuid;not null;index"`
	CandidateID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_applications_candidate_job"`
	JobID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_applications_candidate_job"`

	Status string `gorm:"size:20;not null;default:pending"`
	Note   string `gorm:"size:1000"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Application) TableName() string {
	return "applications"
}
