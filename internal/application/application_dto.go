package application

import (
	"time"

	"github.com/google/uuid"
)

type ApplyRequest struct {
	JobID string `json:"job_id" binding:"required,uuid"`
	Note  string `json:"note" binding:"omitempty,max=1000"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Note   string `json:"note" binding:"omitempty,max=1000"`
}

type ApplicationResponse struct {
	ID          uuid.UUID `json:"id"`
	CandidateID uuid.UUID `json:"candidate_id"`
	JobID       uuid.UUID `json:"job_id"`
	Status      string    `json:"status"`
	Note        string    `json:"note"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toApplicationResponse(a Application) ApplicationResponse {
	return ApplicationResponse{
		ID:          a.ID,
		CandidateID: a.CandidateID,
		JobID:       a.JobID,
		Status:      a.Status,
		Note:        a.Note,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}
