package events

import "time"

const ApplicationStatusChangedTopic = "recruit.application.status.v1"

type ApplicationStatusChangedEvent struct {
	EventType     string    `json:"event_type"`
	RequestID     string    `json:"request_id,omitempty"`
	ApplicationID string    `json:"application_id"`
	CandidateID   string    `json:"candidate_id"`
	JobID         string    `json:"job_id"`
	AgencyID      string    `json:"agency_id"`
	OldStatus     string    `json:"old_status"`
	NewStatus     string    `json:"new_status"`
	OccurredAt    time.Time `json:"occurred_at"`
}
