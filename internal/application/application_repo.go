package application

import (
	"context"

	"go-recruit/internal/tenant"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=application_repo.go -destination=mock/application_repo_mock.go -package=mock

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, a *Application) error
	GetByID(ctx context.Context, agencyID string, id uuid.UUID) (*Application, error)
	Update(ctx context.Context, a *Application) error
	ListByCandidate(ctx context.Context, agencyID string, candidateID uuid.UUID) ([]Application, error)
	ListByJob(ctx context.Context, agencyID string, jobID uuid.UUID, status string, page, size int) ([]Application, int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, a *Application) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) GetByID(ctx context.Context, agencyID string, id uuid.UUID) (*Application, error) {
	var a Application
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(agencyID)).
		First(&a, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) Update(ctx context.Context, a *Application) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *repository) ListByCandidate(ctx context.Context, agencyID string, candidateID uuid.UUID) ([]Application, error) {
	var rows []Application
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(agencyID)).
		Where("candidate_id = ?", candidateID).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) ListByJob(ctx context.Context, agencyID string, jobID uuid.UUID, status string, page, size int) ([]Application, int64, error) {
	base := r.db.WithContext(ctx).
		Model(&Application{}).
		Scopes(tenant.Scope(agencyID)).
		Where("job_id = ?", jobID)

	if status != "" {
		base = base.Where("status = ?", status)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []Application
	err := base.
		Order("created_at ASC").
		Offset((page - 1) * size).
		Limit(size).
		Find(&rows).Error
	return rows, total, err
}
