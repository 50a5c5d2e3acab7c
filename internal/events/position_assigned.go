package events

import "time"

const PositionAssignedTopic = "recruit.position.assigned.v1"

type PositionAssignedEvent struct {
	EventType     string    `json:"event_type"`
	RequestID     string    `json:"request_id,omitempty"`
	PositionID    string    `json:"position_id"`
	PositionTitle string    `json:"position_title"`
	CompanyName   string    `json:"company_name"`
	ConsultantID  string    `json:"consultant_id"`
	AgencyID      string    `json:"agency_id"`
	OccurredAt    time.Time `json:"occurred_at"`
}
