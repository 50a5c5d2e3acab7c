package events

import "time"

const JobChangedTopic = "recruit.job.changed.v1"

// JobChangedEvent is keyed by JobID on the wire, so consumers see the
// changes for one posting in order and converge without flicker.
type JobChangedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	JobID      string    `json:"job_id"`
	AgencyID   string    `json:"agency_id"`
	Change     string    `json:"change"` // created | updated | deleted | toggled
	IsActive   bool      `json:"is_active"`
	OccurredAt time.Time `json:"occurred_at"`
}
