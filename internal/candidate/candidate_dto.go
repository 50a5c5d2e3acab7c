package candidate

import (
	"time"

	"github.com/google/uuid"

	"go-recruit/internal/resume"
)

type CreateCandidateRequest struct {
	FirstName          string `json:"first_name" binding:"required,min=2,max=100"`
	LastName           string `json:"last_name" binding:"required,min=2,max=100"`
	Email              string `json:"email" binding:"required,email"`
	Phone              string `json:"phone" binding:"omitempty,max=32"`
	BirthYear          int    `json:"birth_year" binding:"omitempty,gte=1920,lte=2020"`
	Gender             string `json:"gender" binding:"omitempty,max=20"`
	Nationality        string `json:"nationality" binding:"omitempty,max=60"`
	City               string `json:"city" binding:"omitempty,max=60"`
	District           string `json:"district" binding:"omitempty,max=60"`
	Address            string `json:"address" binding:"omitempty,max=500"`
	DisabilityCategory string `json:"disability_category" binding:"omitempty,max=100"`
	DisabilityRate     int    `json:"disability_rate" binding:"omitempty,gte=0,lte=100"`
	DriverLicense      string `json:"driver_license" binding:"omitempty,max=10"`
	Summary            string `json:"summary" binding:"omitempty,max=5000"`
}

type UpdateCandidateRequest struct {
	FirstName          *string `json:"first_name" binding:"omitempty,min=2,max=100"`
	LastName           *string `json:"last_name" binding:"omitempty,min=2,max=100"`
	Phone              *string `json:"phone" binding:"omitempty,max=32"`
	BirthYear          *int    `json:"birth_year" binding:"omitempty,gte=1920,lte=2020"`
	Gender             *string `json:"gender" binding:"omitempty,max=20"`
	Nationality        *string `json:"nationality" binding:"omitempty,max=60"`
	City               *string `json:"city" binding:"omitempty,max=60"`
	District           *string `json:"district" binding:"omitempty,max=60"`
	Address            *string `json:"address" binding:"omitempty,max=500"`
	DisabilityCategory *string `json:"disability_category" binding:"omitempty,max=100"`
	DisabilityRate     *int    `json:"disability_rate" binding:"omitempty,gte=0,lte=100"`
	DriverLicense      *string `json:"driver_license" binding:"omitempty,max=10"`
	Summary            *string `json:"summary" binding:"omitempty,max=5000"`
	IsActive           *bool   `json:"is_active"`
}

// FilterState carries every directory predicate. Zero values mean "not
// filtering on this field", so stacking parameters can only narrow the
// result set.
type FilterState struct {
	Keyword            string `form:"q"`
	Email              string `form:"email"`
	AgeMin             int    `form:"age_min" binding:"omitempty,gte=0"`
	AgeMax             int    `form:"age_max" binding:"omitempty,gte=0"`
	Gender             string `form:"gender"` // comma separated multi-select, OR across tokens
	Nationality        string `form:"nationality"`
	City               string `form:"city"`
	District           string `form:"district"`
	IstanbulSide       string `form:"istanbul_side"`
	EducationLevel     string `form:"education_level"`
	University         string `form:"university"`
	Department         string `form:"department"`
	Position           string `form:"position"`
	MinExperienceYears int    `form:"min_experience_years" binding:"omitempty,gte=0"`
	CurrentlyEmployed  *bool  `form:"currently_employed"`
	Skills             string `form:"skills"`
	Language           string `form:"language"`
	LanguageLevel      string `form:"language_level"`
	DisabilityCategory string `form:"disability_category"`
	DriverLicense      string `form:"driver_license"`
}

type CandidateResponse struct {
	ID                 uuid.UUID `json:"id"`
	Reference          string    `json:"reference"`
	FirstName          string    `json:"first_name"`
	LastName           string    `json:"last_name"`
	Email              string    `json:"email"`
	Phone              string    `json:"phone"`
	Age                int       `json:"age"`
	BirthYear          int       `json:"birth_year"`
	Gender             string    `json:"gender"`
	Nationality        string    `json:"nationality"`
	City               string    `json:"city"`
	District           string    `json:"district"`
	Address            string    `json:"address"`
	DisabilityCategory string    `json:"disability_category"`
	DisabilityRate     int       `json:"disability_rate"`
	DriverLicense      string    `json:"driver_license"`
	Summary            string    `json:"summary"`
	AvatarURL          string    `json:"avatar_url"`
	IsActive           bool      `json:"is_active"`
	CreatedAt          time.Time `json:"created_at"`
}

type DirectoryEntryResponse struct {
	CandidateResponse
	Educations     []resume.Education     `json:"educations"`
	Experiences    []resume.Experience    `json:"experiences"`
	Languages      []resume.Language      `json:"languages"`
	Skills         []resume.Skill         `json:"skills"`
	Certifications []resume.Certification `json:"certifications"`
	References     []resume.Reference     `json:"references"`
}

// FilterOptions feeds the directory sidebar: the distinct values that
// actually occur in this agency's data.
type FilterOptions struct {
	Cities               []string `json:"cities"`
	Districts            []string `json:"districts"`
	Nationalities        []string `json:"nationalities"`
	DisabilityCategories []string `json:"disability_categories"`
	EducationLevels      []string `json:"education_levels"`
}

func toCandidateResponse(c Candidate, now time.Time) CandidateResponse {
	return CandidateResponse{
		ID:                 c.ID,
		Reference:          c.Reference,
		FirstName:          c.FirstName,
		LastName:           c.LastName,
		Email:              c.Email,
		Phone:              c.Phone,
		Age:                c.Age(now),
		BirthYear:          c.BirthYear,
		Gender:             c.Gender,
		Nationality:        c.Nationality,
		City:               c.City,
		District:           c.District,
		Address:            c.Address,
		DisabilityCategory: c.DisabilityCategory,
		DisabilityRate:     c.DisabilityRate,
		DriverLicense:      c.DriverLicense,
		Summary:            c.Summary,
		AvatarURL:          c.AvatarURL,
		IsActive:           c.IsActive,
		CreatedAt:          c.CreatedAt,
	}
}
