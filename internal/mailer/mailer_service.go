package mailer

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
	"gorm.io/gorm"
)

// Dialer is the slice of gomail the service needs; tests drop in a
// recorder instead of a live SMTP connection.
type Dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// NewDialerFromEnv builds the SMTP dialer from SMTP_HOST, SMTP_PORT,
// SMTP_USERNAME, SMTP_PASSWORD and SMTP_USE_SSL.
func NewDialerFromEnv() Dialer {
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		port = 587
	}
	d := gomail.NewDialer(
		os.Getenv("SMTP_HOST"),
		port,
		os.Getenv("SMTP_USERNAME"),
		os.Getenv("SMTP_PASSWORD"),
	)
	d.SSL = os.Getenv("SMTP_USE_SSL") == "true"
	return d
}

//go:generate mockgen -source=mailer_service.go -destination=mock/mailer_service_mock.go -package=mock
type Service interface {
	// SendInvite delivers the account-created mail with the temporary
	// password.
	SendInvite(ctx context.Context, recipient, name, tempPassword string) error
	// SendCandidateResult delivers an interview result to a candidate,
	// with optional CC list and attachment.
	SendCandidateResult(ctx context.Context, agencyID string, req CandidateResultMailRequest, attachment *Attachment) error
	// SendPositionAssigned notifies a consultant that a position landed
	// on their desk.
	SendPositionAssigned(ctx context.Context, recipient, positionTitle, companyName string) error
	// SendApplicationStatus notifies a candidate that their application
	// moved to a new status.
	SendApplicationStatus(ctx context.Context, recipient, candidateName, newStatus string) error
}

type service struct {
	dialer Dialer
	db     *gorm.DB
	from   string
	logger *zap.Logger
}

// NewService wires the SMTP dialer and the mail log store. db may be
// nil in contexts without a database (tests, one-off tools); logging
// is skipped then.
func NewService(dialer Dialer, db *gorm.DB, logger ...*zap.Logger) Service {
	l := zap.L().Named("mailer.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("mailer.service")
	}
	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = os.Getenv("SMTP_USERNAME")
	}
	return &service{dialer: dialer, db: db, from: from, logger: l}
}

func (s *service) SendInvite(ctx context.Context, recipient, name, tempPassword string) error {
	body, err := renderTemplate(TemplateInvite, inviteParams{Name: name, TempPassword: tempPassword})
	if err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", recipient)
	m.SetHeader("Subject", "Hesabınız oluşturuldu")
	m.SetBody("text/html", body)

	return s.send(ctx, "", m, TemplateInvite, recipient, "")
}

func (s *service) SendCandidateResult(ctx context.Context, agencyID string, req CandidateResultMailRequest, attachment *Attachment) error {
	body, err := renderTemplate(req.Result, resultParams{
		CandidateName: req.CandidateName,
		PositionTitle: req.PositionTitle,
		CompanyName:   req.CompanyName,
		Note:          req.Note,
	})
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("%s - %s pozisyonu hakkında", req.CompanyName, req.PositionTitle)

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", req.To)
	if req.CC != "" {
		var ccList []string
		for _, addr := range strings.Split(req.CC, ",") {
			if addr = strings.TrimSpace(addr); addr != "" {
				ccList = append(ccList, addr)
			}
		}
		if len(ccList) > 0 {
			m.SetHeader("Cc", ccList...)
		}
	}
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	if attachment != nil {
		content := attachment.Content
		m.Attach(attachment.Filename, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(content)
			return err
		}))
	}

	return s.send(ctx, agencyID, m, req.Result, req.To, req.CC)
}

func (s *service) SendPositionAssigned(ctx context.Context, recipient, positionTitle, companyName string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", recipient)
	m.SetHeader("Subject", "Yeni pozisyon ataması")
	m.SetBody("text/html", fmt.Sprintf(
		"<p>%s firmasının <strong>%s</strong> pozisyonu size atandı.</p>",
		companyName, positionTitle,
	))

	return s.send(ctx, "", m, "position_assigned", recipient, "")
}

func (s *service) SendApplicationStatus(ctx context.Context, recipient, candidateName, newStatus string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", recipient)
	m.SetHeader("Subject", "Başvuru durumunuz güncellendi")
	m.SetBody("text/html", fmt.Sprintf(
		"<p>Sayın %s,</p><p>Başvurunuzun durumu <strong>%s</strong> olarak güncellendi.</p>",
		candidateName, newStatus,
	))

	return s.send(ctx, "", m, "application_status", recipient, "")
}

func (s *service) send(ctx context.Context, agencyID string, m *gomail.Message, tmpl, recipient, cc string) error {
	sendErr := s.dialer.DialAndSend(m)

	status := MailStatusSent
	errText := ""
	if sendErr != nil {
		status = MailStatusFailed
		errText = sendErr.Error()
		s.logger.Error("mail send failed",
			zap.String("template", tmpl),
			zap.String("recipient", recipient),
			zap.Error(sendErr),
		)
	}

	s.writeLog(ctx, agencyID, m, tmpl, recipient, cc, status, errText)
	return sendErr
}

func (s *service) writeLog(ctx context.Context, agencyID string, m *gomail.Message, tmpl, recipient, cc, status, errText string) {
	if s.db == nil {
		return
	}

	entry := MailLog{
		ID:        uuid.New(),
		Recipient: recipient,
		CC:        cc,
		Template:  tmpl,
		Status:    status,
		Error:     errText,
	}
	if subj := m.GetHeader("Subject"); len(subj) > 0 {
		entry.Subject = subj[0]
	}
	if parsed, err := uuid.Parse(agencyID); err == nil {
		entry.AgencyID = parsed
	}

	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		s.logger.Warn("mail log write failed", zap.Error(err))
	}
}
