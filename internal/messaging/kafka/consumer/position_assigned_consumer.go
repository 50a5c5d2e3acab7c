package consumer

import (
	"context"
	"encoding/json"

	"go-recruit/internal/events"
	"go-recruit/internal/mailer"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsultantDirectory resolves a consultant's mail address from the
// user id carried in the event.
type ConsultantDirectory interface {
	Email(ctx context.Context, userID string) (string, error)
}

func ConsumePositionAssigned(
	ctx context.Context,
	reader *kafkago.Reader,
	directory ConsultantDirectory,
	mailService mailer.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.position_assigned")
	log.Info("position assigned consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("position assigned consumer stopped")
				return
			}
			log.Error("fetch position assigned message failed", zap.Error(err))
			continue
		}

		var event events.PositionAssignedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode position assigned event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		email, err := directory.Email(ctx, event.ConsultantID)
		if err != nil {
			log.Warn("consultant lookup for assignment mail failed, skipping",
				zap.String("consultant_id", event.ConsultantID),
				zap.Error(err),
			)
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if err := mailService.SendPositionAssigned(ctx, email, event.PositionTitle, event.CompanyName); err != nil {
			log.Error("send position assigned mail failed",
				zap.String("position_id", event.PositionID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit position assigned message failed", zap.Error(err))
			continue
		}

		log.Info("position assigned mail sent",
			zap.String("position_id", event.PositionID),
			zap.String("consultant_id", event.ConsultantID),
		)
	}
}
