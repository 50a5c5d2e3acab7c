package candidate

import (
	"context"

	"go-recruit/internal/tenant"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=candidate_repo.go -destination=mock/candidate_repo_mock.go -package=mock

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, c *Candidate) error
	GetByID(ctx context.Context, agencyID string, id uuid.UUID) (*Candidate, error)
	Update(ctx context.Context, c *Candidate) error
	Delete(ctx context.Context, agencyID string, id uuid.UUID) error
	ListActive(ctx context.Context, agencyID string) ([]Candidate, error)
	ListByIDs(ctx context.Context, agencyID string, ids []uuid.UUID) ([]Candidate, error)
	DistinctValues(ctx context.Context, agencyID string, column string) ([]string, error)
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

func (r *repository) Create(ctx context.Context, c *Candidate) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *repository) GetByID(ctx context.Context, agencyID string, id uuid.UUID) (*Candidate, error) {
	var c Candidate
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(agencyID)).
		First(&c, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) Update(ctx context.Context, c *Candidate) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *repository) Delete(ctx context.Context, agencyID string, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Scopes(tenant.Scope(agencyID)).
		Delete(&Candidate{}, "id = ?", id).Error
}

// ListActive returns the full active pool of one agency ordered for
// the directory: last name, then first name.
func (r *repository) ListActive(ctx context.Context, agencyID string) ([]Candidate, error) {
	var rows []Candidate
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(agencyID)).
		Where("is_active = ?", true).
		Order("last_name ASC, first_name ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) ListByIDs(ctx context.Context, agencyID string, ids []uuid.UUID) ([]Candidate, error) {
	var rows []Candidate
	if len(ids) == 0 {
		return rows, nil
	}
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(agencyID)).
		Where("id IN ?", ids).
		Find(&rows).Error
	return rows, err
}

// Column names come from a fixed allow-list in the service layer; this
// method never sees user input directly.
func (r *repository) DistinctValues(ctx context.Context, agencyID string, column string) ([]string, error) {
	var values []string
	err := r.db.WithContext(ctx).
		Model(&Candidate{}).
		Scopes(tenant.Scope(agencyID)).
		Where(column+" <> ''").
		Distinct(column).
		Order(column + " ASC").
		Pluck(column, &values).Error
	return values, err
}
