package resume

import (
	"time"

	"github.com/google/uuid"
)

// Every section type lives in two tables: the singular-named table from
// the predecessor system and the plural-named current one. The schema
// migration was never finished, so both are read and merged by id.
const (
	TableEducationLegacy     = "egitim"
	TableEducationCurrent    = "educations"
	TableExperienceLegacy    = "deneyim"
	TableExperienceCurrent   = "experiences"
	TableLanguageLegacy      = "dil"
	TableLanguageCurrent     = "languages"
	TableSkillLegacy         = "yetenek"
	TableSkillCurrent        = "skills"
	TableCertificateLegacy   = "sertifika"
	TableCertificateCurrent  = "certifications"
	TableReferenceLegacy     = "referans"
	TableReferenceCurrent    = "references_tbl"
)

type Education struct {
	ID          *uuid.UUID `gorm:"type:uuid"`
	CandidateID uuid.UUID  `gorm:"type:uuid;index"`
	School      string
	Department  string
	Level       string // e.g. Lise, Önlisans, Lisans, Yüksek Lisans
	StartYear   int
	EndYear     *int
}

type Experience struct {
	ID          *uuid.UUID `gorm:"type:uuid"`
	CandidateID uuid.UUID  `gorm:"type:uuid;index"`
	CompanyName string
	Position    string
	StartDate   time.Time
	EndDate     *time.Time
	IsCurrent   bool
	Description string
}

type Language struct {
	ID          *uuid.UUID `gorm:"type:uuid"`
	CandidateID uuid.UUID  `gorm:"type:uuid;index"`
	Name        string
	Level       string // Başlangıç, Orta, İleri, Anadil
}

type Skill struct {
	ID          *uuid.UUID `gorm:"type:uuid"`
	CandidateID uuid.UUID  `gorm:"type:uuid;index"`
	Name        string
}

type Certification struct {
	ID          *uuid.UUID `gorm:"type:uuid"`
	CandidateID uuid.UUID  `gorm:"type:uuid;index"`
	Name        string
	Issuer      string
	Year        int
}

type Reference struct {
	ID          *uuid.UUID `gorm:"type:uuid"`
	CandidateID uuid.UUID  `gorm:"type:uuid;index"`
	FullName    string
	Company     string
	Phone       string
	Email       string
}

// Bundle is the merged resume of one candidate: one slice per section,
// deduplicated across the legacy and current tables.
type Bundle struct {
	Educations     []Education
	Experiences    []Experience
	Languages      []Language
	Skills         []Skill
	Certifications []Certification
	References     []Reference
}

// TotalExperienceYears sums the span of every experience entry, using
// the clock argument as the open end of a current position.
func (b Bundle) TotalExperienceYears(now time.Time) int {
	var total float64
	for _, exp := range b.Experiences {
		end := now
		if exp.EndDate != nil && !exp.IsCurrent {
			end = *exp.EndDate
		}
		if end.After(exp.StartDate) {
			total += end.Sub(exp.StartDate).Hours() / 24 / 365
		}
	}
	return int(total)
}

// CurrentlyEmployed reports whether any experience entry is marked as
// ongoing.
func (b Bundle) CurrentlyEmployed() bool {
	for _, exp := range b.Experiences {
		if exp.IsCurrent {
			return true
		}
	}
	return false
}
