package application

import (
	"context"
	"encoding/json"
	"time"

	apperrors "go-recruit/internal/application/errors"
	"go-recruit/internal/events"
	"go-recruit/internal/messaging/kafka"
	"go-recruit/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// JobGate answers whether a candidate may apply to a posting. Kept
// local so application does not import the job module.
type JobGate interface {
	CanApply(ctx context.Context, agencyID string, jobID, candidateID uuid.UUID) error
}

//go:generate mockgen -source=application_service.go -destination=mock/application_service_mock.go -package=mock
type Service interface {
	Apply(ctx context.Context, agencyID string, candidateID uuid.UUID, req ApplyRequest) (ApplicationResponse, error)
	ListMine(ctx context.Context, agencyID string, candidateID uuid.UUID) ([]ApplicationResponse, error)
	ListByJob(ctx context.Context, agencyID string, jobID uuid.UUID, status string, page, size int) ([]ApplicationResponse, int64, error)
	UpdateStatus(ctx context.Context, agencyID string, id uuid.UUID, req UpdateStatusRequest) (ApplicationResponse, error)
}

type service struct {
	db     *gorm.DB
	repo   Repository
	outbox kafka.OutboxRepository
	jobs   JobGate
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, outbox kafka.OutboxRepository, jobs JobGate, logger ...*zap.Logger) Service {
	l := zap.L().Named("application.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("application.service")
	}
	return &service{db: db, repo: repo, outbox: outbox, jobs: jobs, logger: l}
}

func (s *service) Apply(ctx context.Context, agencyID string, candidateID uuid.UUID, req ApplyRequest) (ApplicationResponse, error) {
	agencyUUID, err := uuid.Parse(agencyID)
	if err != nil {
		return ApplicationResponse{}, apperrors.ErrInvalidApplicationID
	}
	jobID, err := uuid.Parse(req.JobID)
	if err != nil {
		return ApplicationResponse{}, apperrors.ErrInvalidApplicationID
	}

	if err := s.jobs.CanApply(ctx, agencyID, jobID, candidateID); err != nil {
		return ApplicationResponse{}, err
	}

	a := &Application{
		ID:          uuid.New(),
		AgencyID:    agencyUUID,
		CandidateID: candidateID,
		JobID:       jobID,
		Status:      StatusPending,
		Note:        req.Note,
	}

	// The unique index on (candidate_id, job_id) is the real guard
	// against double submits; a prior existence check would race.
	if err := s.repo.Create(ctx, a); err != nil {
		return ApplicationResponse{}, mapRepoError(err)
	}

	s.logger.Info("application submitted",
		zap.String("application_id", a.ID.String()),
		zap.String("job_id", jobID.String()),
	)
	return toApplicationResponse(*a), nil
}

func (s *service) ListMine(ctx context.Context, agencyID string, candidateID uuid.UUID) ([]ApplicationResponse, error) {
	rows, err := s.repo.ListByCandidate(ctx, agencyID, candidateID)
	if err != nil {
		return nil, mapRepoError(err)
	}
	out := make([]ApplicationResponse, len(rows))
	for i, a := range rows {
		out[i] = toApplicationResponse(a)
	}
	return out, nil
}

func (s *service) ListByJob(ctx context.Context, agencyID string, jobID uuid.UUID, status string, page, size int) ([]ApplicationResponse, int64, error) {
	if status != "" && !ValidStatus(status) {
		return nil, 0, apperrors.ErrUnknownStatus
	}

	rows, total, err := s.repo.ListByJob(ctx, agencyID, jobID, status, page, size)
	if err != nil {
		return nil, 0, mapRepoError(err)
	}
	out := make([]ApplicationResponse, len(rows))
	for i, a := range rows {
		out[i] = toApplicationResponse(a)
	}
	return out, total, nil
}

// UpdateStatus moves an application to any valid status and records
// the change as an outbox event in the same transaction.
func (s *service) UpdateStatus(ctx context.Context, agencyID string, id uuid.UUID, req UpdateStatusRequest) (ApplicationResponse, error) {
	if !ValidStatus(req.Status) {
		return ApplicationResponse{}, apperrors.ErrUnknownStatus
	}

	a, err := s.repo.GetByID(ctx, agencyID, id)
	if err != nil {
		return ApplicationResponse{}, mapRepoError(err)
	}

	oldStatus := a.Status
	a.Status = req.Status
	if req.Note != "" {
		a.Note = req.Note
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Update(ctx, a); err != nil {
			return err
		}
		return s.enqueueStatusChanged(ctx, tx, a, oldStatus)
	})
	if err != nil {
		return ApplicationResponse{}, mapRepoError(err)
	}

	s.logger.Info("application status changed",
		zap.String("application_id", a.ID.String()),
		zap.String("old_status", oldStatus),
		zap.String("new_status", a.Status),
	)
	return toApplicationResponse(*a), nil
}

func (s *service) enqueueStatusChanged(ctx context.Context, tx *gorm.DB, a *Application, oldStatus string) error {
	payload, err := json.Marshal(events.ApplicationStatusChangedEvent{
		EventType:     "application.status_changed",
		RequestID:     contextutil.GetRequestID(ctx),
		ApplicationID: a.ID.String(),
		CandidateID:   a.CandidateID.String(),
		JobID:         a.JobID.String(),
		AgencyID:      a.AgencyID.String(),
		OldStatus:     oldStatus,
		NewStatus:     a.Status,
		OccurredAt:    time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	return kafka.BindGormTx(s.outbox, tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "application",
		AggregateID:   a.ID.String(),
		EventType:     "application.status_changed",
		Topic:         events.ApplicationStatusChangedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}
