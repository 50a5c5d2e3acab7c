package job

import (
	"time"

	"github.com/google/uuid"
)

type CreateJobRequest struct {
	Title              string `json:"title" binding:"required,min=3,max=200"`
	Description        string `json:"description" binding:"omitempty,max=10000"`
	CompanyName        string `json:"company_name" binding:"omitempty,max=200"`
	City               string `json:"city" binding:"omitempty,max=60"`
	District           string `json:"district" binding:"omitempty,max=60"`
	WorkType           string `json:"work_type" binding:"omitempty,max=40"`
	Quota              int    `json:"quota" binding:"omitempty,gte=1"`
	SuitableCategories string `json:"suitable_categories" binding:"omitempty,max=500"`
}

type UpdateJobRequest struct {
	Title              *string `json:"title" binding:"omitempty,min=3,max=200"`
	Description        *string `json:"description" binding:"omitempty,max=10000"`
	CompanyName        *string `json:"company_name" binding:"omitempty,max=200"`
	City               *string `json:"city" binding:"omitempty,max=60"`
	District           *string `json:"district" binding:"omitempty,max=60"`
	WorkType           *string `json:"work_type" binding:"omitempty,max=40"`
	Quota              *int    `json:"quota" binding:"omitempty,gte=1"`
	SuitableCategories *string `json:"suitable_categories" binding:"omitempty,max=500"`
	IsActive           *bool   `json:"is_active"`
}

type JobResponse struct {
	ID                 uuid.UUID `json:"id"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	CompanyName        string    `json:"company_name"`
	City               string    `json:"city"`
	District           string    `json:"district"`
	WorkType           string    `json:"work_type"`
	Quota              int       `json:"quota"`
	SuitableCategories string    `json:"suitable_categories"`
	IsActive           bool      `json:"is_active"`
	CreatedAt          time.Time `json:"created_at"`
}

func toJobResponse(j Job) JobResponse {
	return JobResponse{
		ID:                 j.ID,
		Title:              j.Title,
		Description:        j.Description,
		CompanyName:        j.CompanyName,
		City:               j.City,
		District:           j.District,
		WorkType:           j.WorkType,
		Quota:              j.Quota,
		SuitableCategories: j.SuitableCategories,
		IsActive:           j.IsActive,
		CreatedAt:          j.CreatedAt,
	}
}
