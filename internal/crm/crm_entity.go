package crm

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Pool result statuses. These are the labels consultants actually use
// on the phone with employers, so they stay in Turkish.
const (
	ResultWaiting   = "BEKLEMEDE"
	ResultReviewed  = "İNCELENDİ"
	ResultInterview = "MÜLAKAT"
	ResultOffer     = "TEKLİF"
	ResultAccepted  = "KABUL"
	ResultRejected  = "RED"
)

func ValidResultStatus(s string) bool {
	switch s {
	case ResultWaiting, ResultReviewed, ResultInterview,
		ResultOffer, ResultAccepted, ResultRejected:
		return true
	}
	return false
}

type Company struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AgencyID uuid.UUID `gorm:"type:uuid;not null;index"`

	Name      string `gorm:"size:200;not null"`
	TaxNumber string `gorm:"size:20"`
	City      string `gorm:"size:60"`
	Phone     string `gorm:"size:32"`
	Email     string `gorm:"size:255"`
	Notes     string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Company) TableName() string { return "crm_companies" }

type CompanyContact struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AgencyID  uuid.UUID `gorm:"type:uuid;not null;index"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index"`

	FullName string `gorm:"size:200;not null"`
	Title    string `gorm:"size:100"`
	Phone    string `gorm:"size:32"`
	Email    string `gorm:"size:255"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (CompanyContact) TableName() string { return "crm_company_contacts" }

// JobPosition is an employer-side opening the agency works on. It is
// separate from the candidate-facing job board: positions are internal
// sales objects, postings are published adverts.
type JobPosition struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AgencyID  uuid.UUID `gorm:"type:uuid;not null;index"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index"`

	Title        string     `gorm:"size:200;not null"`
	Description  string     `gorm:"type:text"`
	Quota        int        `gorm:"default:1"`
	IsOpen       bool       `gorm:"default:true"`
	ConsultantID *uuid.UUID `gorm:"type:uuid;index"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (JobPosition) TableName() string { return "crm_positions" }

type PositionCandidate struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AgencyID    uuid.UUID `gorm:"type:uuid;not null;index"`
	PositionID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_crm_pool_position_candidate"`
	CandidateID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_crm_pool_position_candidate"`

	ResultStatus string `gorm:"size:20;not null;default:BEKLEMEDE"`
	Note         string `gorm:"size:1000"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (PositionCandidate) TableName() string { return "crm_position_candidates" }
