package job

import (
	"strings"
	"time"

	"go-recruit/internal/shared/turkish"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Job struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AgencyID uuid.UUID `gorm:"type:uuid;not null;index"`

	Title       string `gorm:"size:200;not null"`
	Description string `gorm:"type:text"`
	CompanyName string `gorm:"size:200"`
	City        string `gorm:"size:60"`
	District    string `gorm:"size:60"`
	WorkType    string `gorm:"size:40"` // Tam Zamanlı, Yarı Zamanlı, Uzaktan
	Quota       int    `gorm:"default:1"`

	// SuitableCategories is a comma separated list of disability
	// categories the employer can accommodate. Empty means all.
	SuitableCategories string `gorm:"size:500"`

	IsActive  bool      `gorm:"default:true;index"`
	CreatedBy uuid.UUID `gorm:"type:uuid"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Job) TableName() string {
	return "jobs"
}

// SuitableFor reports whether a candidate with the given disability
// category may see and apply to this posting.
func (j Job) SuitableFor(category string) bool {
	if strings.TrimSpace(j.SuitableCategories) == "" {
		return true
	}
	want := turkish.Fold(category)
	for _, c := range strings.Split(j.SuitableCategories, ",") {
		if turkish.Fold(c) == want {
			return true
		}
	}
	return false
}
