package crm

import (
	"time"

	"github.com/google/uuid"
)

type CreateCompanyRequest struct {
	Name      string `json:"name" binding:"required,min=2,max=200"`
	TaxNumber string `json:"tax_number" binding:"omitempty,max=20"`
	City      string `json:"city" binding:"omitempty,max=60"`
	Phone     string `json:"phone" binding:"omitempty,max=32"`
	Email     string `json:"email" binding:"omitempty,email"`
	Notes     string `json:"notes" binding:"omitempty,max=10000"`
}

type UpdateCompanyRequest struct {
	Name      *string `json:"name" binding:"omitempty,min=2,max=200"`
	TaxNumber *string `json:"tax_number" binding:"omitempty,max=20"`
	City      *string `json:"city" binding:"omitempty,max=60"`
	Phone     *string `json:"phone" binding:"omitempty,max=32"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Notes     *string `json:"notes" binding:"omitempty,max=10000"`
}

type CreateContactRequest struct {
	FullName string `json:"full_name" binding:"required,min=2,max=200"`
	Title    string `json:"title" binding:"omitempty,max=100"`
	Phone    string `json:"phone" binding:"omitempty,max=32"`
	Email    string `json:"email" binding:"omitempty,email"`
}

type CreatePositionRequest struct {
	CompanyID   string `json:"company_id" binding:"required,uuid"`
	Title       string `json:"title" binding:"required,min=3,max=200"`
	Description string `json:"description" binding:"omitempty,max=10000"`
	Quota       int    `json:"quota" binding:"omitempty,gte=1"`
}

type UpdatePositionRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=3,max=200"`
	Description *string `json:"description" binding:"omitempty,max=10000"`
	Quota       *int    `json:"quota" binding:"omitempty,gte=1"`
	IsOpen      *bool   `json:"is_open"`
}

type AssignConsultantRequest struct {
	ConsultantID string `json:"consultant_id" binding:"required,uuid"`
}

type AddPoolCandidateRequest struct {
	CandidateID string `json:"candidate_id" binding:"required,uuid"`
	Note        string `json:"note" binding:"omitempty,max=1000"`
}

type UpdatePoolResultRequest struct {
	ResultStatus string `json:"result_status" binding:"required"`
	Note         string `json:"note" binding:"omitempty,max=1000"`
}

type CompanyResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	TaxNumber string    `json:"tax_number"`
	City      string    `json:"city"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

type ContactResponse struct {
	ID        uuid.UUID `json:"id"`
	CompanyID uuid.UUID `json:"company_id"`
	FullName  string    `json:"full_name"`
	Title     string    `json:"title"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
}

type PositionResponse struct {
	ID           uuid.UUID  `json:"id"`
	CompanyID    uuid.UUID  `json:"company_id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Quota        int        `json:"quota"`
	IsOpen       bool       `json:"is_open"`
	ConsultantID *uuid.UUID `json:"consultant_id,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

type PoolEntryResponse struct {
	ID           uuid.UUID `json:"id"`
	PositionID   uuid.UUID `json:"position_id"`
	CandidateID  uuid.UUID `json:"candidate_id"`
	ResultStatus string    `json:"result_status"`
	Note         string    `json:"note"`
	CreatedAt    time.Time `json:"created_at"`
}

func toCompanyResponse(c Company) CompanyResponse {
	return CompanyResponse{
		ID: c.ID, Name: c.Name, TaxNumber: c.TaxNumber,
		City: c.City, Phone: c.Phone, Email: c.Email,
		Notes: c.Notes, CreatedAt: c.CreatedAt,
	}
}

func toContactResponse(c CompanyContact) ContactResponse {
	return ContactResponse{
		ID: c.ID, CompanyID: c.CompanyID, FullName: c.FullName,
		Title: c.Title, Phone: c.Phone, Email: c.Email,
	}
}

func toPositionResponse(p JobPosition) PositionResponse {
	return PositionResponse{
		ID: p.ID, CompanyID: p.CompanyID, Title: p.Title,
		Description: p.Description, Quota: p.Quota, IsOpen: p.IsOpen,
		ConsultantID: p.ConsultantID, CreatedAt: p.CreatedAt,
	}
}

func toPoolEntryResponse(e PositionCandidate) PoolEntryResponse {
	return PoolEntryResponse{
		ID: e.ID, PositionID: e.PositionID, CandidateID: e.CandidateID,
		ResultStatus: e.ResultStatus, Note: e.Note, CreatedAt: e.CreatedAt,
	}
}
