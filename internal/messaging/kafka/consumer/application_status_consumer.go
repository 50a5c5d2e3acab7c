package consumer

import (
	"context"
	"encoding/json"

	"go-recruit/internal/events"
	"go-recruit/internal/mailer"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// CandidateDirectory resolves the contact details the notification
// mails need. Implemented by an adapter over the candidate repository.
type CandidateDirectory interface {
	ContactInfo(ctx context.Context, agencyID, candidateID string) (name, email string, err error)
}

func ConsumeApplicationStatusChanged(
	ctx context.Context,
	reader *kafkago.Reader,
	directory CandidateDirectory,
	mailService mailer.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.application_status")
	log.Info("application status consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("application status consumer stopped")
				return
			}
			log.Error("fetch application status message failed", zap.Error(err))
			continue
		}

		var event events.ApplicationStatusChangedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode application status event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		name, email, err := directory.ContactInfo(ctx, event.AgencyID, event.CandidateID)
		if err != nil {
			// Candidate may have been removed since the event was queued;
			// nothing to notify, drop the message.
			log.Warn("candidate lookup for status mail failed, skipping",
				zap.String("candidate_id", event.CandidateID),
				zap.Error(err),
			)
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if err := mailService.SendApplicationStatus(ctx, email, name, event.NewStatus); err != nil {
			log.Error("send application status mail failed",
				zap.String("application_id", event.ApplicationID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit application status message failed", zap.Error(err))
			continue
		}

		log.Info("application status mail sent",
			zap.String("application_id", event.ApplicationID),
			zap.String("new_status", event.NewStatus),
		)
	}
}
