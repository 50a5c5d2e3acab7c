package job

import (
	"context"

	"go-recruit/internal/tenant"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=job_repo.go -destination=mock/job_repo_mock.go -package=mock

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, j *Job) error
	GetByID(ctx context.Context, agencyID string, id uuid.UUID) (*Job, error)
	Update(ctx context.Context, j *Job) error
	Delete(ctx context.Context, agencyID string, id uuid.UUID) error
	List(ctx context.Context, agencyID string, q string, page, size int) ([]Job, int64, error)
	ListActive(ctx context.Context, agencyID string) ([]Job, error)
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

func (r *repository) Create(ctx context.Context, j *Job) error {
	return r.db.WithContext(ctx).Create(j).Error
}

func (r *repository) GetByID(ctx context.Context, agencyID string, id uuid.UUID) (*Job, error) {
	var j Job
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(agencyID)).
		First(&j, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &j, nil
}

func (r *repository) Update(ctx context.Context, j *Job) error {
	return r.db.WithContext(ctx).Save(j).Error
}

func (r *repository) Delete(ctx context.Context, agencyID string, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Scopes(tenant.Scope(agencyID)).
		Delete(&Job{}, "id = ?", id).Error
}

func (r *repository) List(ctx context.Context, agencyID string, q string, page, size int) ([]Job, int64, error) {
	base := r.db.WithContext(ctx).
		Model(&Job{}).
		Scopes(tenant.Scope(agencyID))

	if q != "" {
		like := "%" + q + "%"
		base = base.Where("title ILIKE ? OR company_name ILIKE ?", like, like)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []Job
	err := base.
		Order("created_at DESC").
		Offset((page - 1) * size).
		Limit(size).
		Find(&rows).Error
	return rows, total, err
}

func (r *repository) ListActive(ctx context.Context, agencyID string) ([]Job, error) {
	var rows []Job
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(agencyID)).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}
