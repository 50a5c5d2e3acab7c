package mailer

import (
	"time"

	"github.com/google/uuid"
)

const (
	MailStatusSent   = "sent"
	MailStatusFailed = "failed"
)

// MailLog records every outbound mail attempt. Logging is best effort:
// a mail that went out is never reported as failed because the log row
// could not be written.
type MailLog struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AgencyID uuid.UUID `gorm:"type:uuid;index"`

	Recipient string `gorm:"size:255;not null"`
	CC        string `gorm:"size:1000"`
	Subject   string `gorm:"size:255"`
	Template  string `gorm:"size:40"`
	Status    string `gorm:"size:10;not null"`
	Error     string `gorm:"size:500"`

	CreatedAt time.Time
}

func (MailLog) TableName() string { return "mail_logs" }
