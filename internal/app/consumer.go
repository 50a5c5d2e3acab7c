package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go-recruit/internal/auth"
	"go-recruit/internal/candidate"
	"go-recruit/internal/events"
	"go-recruit/internal/mailer"
	"go-recruit/internal/messaging/kafka/consumer"
	"go-recruit/internal/shared/connection"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

func RunConsumer() error {
	logger := zap.L().Named("app.consumer")

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	kafkaBroker := os.Getenv("KAFKA_BROKER")
	if kafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	mailService := mailer.NewService(mailer.NewDialerFromEnv(), gormDB)
	candidates := &candidateDirectory{repo: candidate.NewRepository(gormDB)}
	consultants := &consultantDirectory{repo: auth.NewRepository(gormDB)}

	statusReader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{kafkaBroker},
		Topic:          events.ApplicationStatusChangedTopic,
		GroupID:        "go-recruit-status-mail",
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer statusReader.Close()

	assignedReader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{kafkaBroker},
		Topic:          events.PositionAssignedTopic,
		GroupID:        "go-recruit-assignment-mail",
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer assignedReader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeApplicationStatusChanged(ctx, statusReader, candidates, mailService, logger)
	go consumer.ConsumePositionAssigned(ctx, assignedReader, consultants, mailService, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}

type candidateDirectory struct {
	repo candidate.Repository
}

func (d *candidateDirectory) ContactInfo(ctx context.Context, agencyID, candidateID string) (string, string, error) {
	id, err := uuid.Parse(candidateID)
	if err != nil {
		return "", "", err
	}
	c, err := d.repo.GetByID(ctx, agencyID, id)
	if err != nil {
		return "", "", err
	}
	return c.FullName(), c.Email, nil
}

type consultantDirectory struct {
	repo auth.Repository
}

func (d *consultantDirectory) Email(ctx context.Context, userID string) (string, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return "", err
	}
	u, err := d.repo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	return u.Email, nil
}
