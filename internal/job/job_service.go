package job

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go-recruit/internal/events"
	joberrors "go-recruit/internal/job/errors"
	"go-recruit/internal/messaging/kafka"
	"go-recruit/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CandidateProfile is the one lookup the board needs from the
// candidate module, kept local so job does not import it.
type CandidateProfile interface {
	DisabilityCategory(ctx context.Context, agencyID string, candidateID uuid.UUID) (string, error)
}

//go:generate mockgen -source=job_service.go -destination=mock/job_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, agencyID, userID string, req CreateJobRequest) (JobResponse, error)
	GetByID(ctx context.Context, agencyID string, id uuid.UUID) (JobResponse, error)
	Update(ctx context.Context, agencyID string, id uuid.UUID, req UpdateJobRequest) (JobResponse, error)
	Delete(ctx context.Context, agencyID string, id uuid.UUID) error
	List(ctx context.Context, agencyID, q string, page, size int) ([]JobResponse, int64, error)
	ListOpenFor(ctx context.Context, agencyID string, candidateID uuid.UUID) ([]JobResponse, error)
}

type service struct {
	db       *gorm.DB
	repo     Repository
	outbox   kafka.OutboxRepository
	profiles CandidateProfile
	logger   *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, outbox kafka.OutboxRepository, profiles CandidateProfile, logger ...*zap.Logger) Service {
	l := zap.L().Named("job.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("job.service")
	}
	return &service{db: db, repo: repo, outbox: outbox, profiles: profiles, logger: l}
}

func (s *service) Create(ctx context.Context, agencyID, userID string, req CreateJobRequest) (JobResponse, error) {
	agencyUUID, err := uuid.Parse(agencyID)
	if err != nil {
		return JobResponse{}, joberrors.ErrInvalidJobID
	}

	j := &Job{
		ID:                 uuid.New(),
		AgencyID:           agencyUUID,
		Title:              req.Title,
		Description:        req.Description,
		CompanyName:        req.CompanyName,
		City:               req.City,
		District:           req.District,
		WorkType:           req.WorkType,
		Quota:              req.Quota,
		SuitableCategories: req.SuitableCategories,
		IsActive:           true,
	}
	if j.Quota == 0 {
		j.Quota = 1
	}
	if creator, err := uuid.Parse(userID); err == nil {
		j.CreatedBy = creator
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Create(ctx, j); err != nil {
			return err
		}
		return s.enqueueChanged(ctx, tx, j, "created")
	})
	if err != nil {
		return JobResponse{}, err
	}

	s.logger.Info("job created", zap.String("job_id", j.ID.String()), zap.String("title", j.Title))
	return toJobResponse(*j), nil
}

func (s *service) GetByID(ctx context.Context, agencyID string, id uuid.UUID) (JobResponse, error) {
	j, err := s.repo.GetByID(ctx, agencyID, id)
	if err != nil {
		return JobResponse{}, mapNotFound(err)
	}
	return toJobResponse(*j), nil
}

func (s *service) Update(ctx context.Context, agencyID string, id uuid.UUID, req UpdateJobRequest) (JobResponse, error) {
	j, err := s.repo.GetByID(ctx, agencyID, id)
	if err != nil {
		return JobResponse{}, mapNotFound(err)
	}

	change := "updated"
	if req.IsActive != nil && *req.IsActive != j.IsActive {
		change = "toggled"
	}
	applyUpdate(j, req)

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Update(ctx, j); err != nil {
			return err
		}
		return s.enqueueChanged(ctx, tx, j, change)
	})
	if err != nil {
		return JobResponse{}, err
	}
	return toJobResponse(*j), nil
}

func (s *service) Delete(ctx context.Context, agencyID string, id uuid.UUID) error {
	j, err := s.repo.GetByID(ctx, agencyID, id)
	if err != nil {
		return mapNotFound(err)
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Delete(ctx, agencyID, id); err != nil {
			return err
		}
		j.IsActive = false
		return s.enqueueChanged(ctx, tx, j, "deleted")
	})
	if err != nil {
		return err
	}

	s.logger.Info("job deleted", zap.String("job_id", id.String()))
	return nil
}

func (s *service) List(ctx context.Context, agencyID, q string, page, size int) ([]JobResponse, int64, error) {
	rows, total, err := s.repo.List(ctx, agencyID, q, page, size)
	if err != nil {
		return nil, 0, err
	}
	out := make([]JobResponse, len(rows))
	for i, j := range rows {
		out[i] = toJobResponse(j)
	}
	return out, total, nil
}

// ListOpenFor returns the postings a candidate may browse: active ones
// whose category allow-list covers the candidate's disability category.
func (s *service) ListOpenFor(ctx context.Context, agencyID string, candidateID uuid.UUID) ([]JobResponse, error) {
	disabilityCategory, err := s.profiles.DisabilityCategory(ctx, agencyID, candidateID)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.ListActive(ctx, agencyID)
	if err != nil {
		return nil, err
	}

	out := make([]JobResponse, 0, len(rows))
	for _, j := range rows {
		if j.SuitableFor(disabilityCategory) {
			out = append(out, toJobResponse(j))
		}
	}
	return out, nil
}

func (s *service) enqueueChanged(ctx context.Context, tx *gorm.DB, j *Job, change string) error {
	payload, err := json.Marshal(events.JobChangedEvent{
		EventType:  "job.changed",
		RequestID:  contextutil.GetRequestID(ctx),
		JobID:      j.ID.String(),
		AgencyID:   j.AgencyID.String(),
		Change:     change,
		IsActive:   j.IsActive,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	return kafka.BindGormTx(s.outbox, tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "job",
		AggregateID:   j.ID.String(),
		EventType:     "job.changed",
		Topic:         events.JobChangedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func applyUpdate(j *Job, req UpdateJobRequest) {
	if req.Title != nil {
		j.Title = *req.Title
	}
	if req.Description != nil {
		j.Description = *req.Description
	}
	if req.CompanyName != nil {
		j.CompanyName = *req.CompanyName
	}
	if req.City != nil {
		j.City = *req.City
	}
	if req.District != nil {
		j.District = *req.District
	}
	if req.WorkType != nil {
		j.WorkType = *req.WorkType
	}
	if req.Quota != nil {
		j.Quota = *req.Quota
	}
	if req.SuitableCategories != nil {
		j.SuitableCategories = *req.SuitableCategories
	}
	if req.IsActive != nil {
		j.IsActive = *req.IsActive
	}
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return joberrors.ErrJobNotFound
	}
	return err
}
