package crm

import (
	"context"

	"go-recruit/internal/tenant"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=crm_repo.go -destination=mock/crm_repo_mock.go -package=mock

type Repository interface {
	WithTx(tx *gorm.DB) Repository

	CreateCompany(ctx context.Context, c *Company) error
	GetCompany(ctx context.Context, agencyID string, id uuid.UUID) (*Company, error)
	UpdateCompany(ctx context.Context, c *Company) error
	DeleteCompany(ctx context.Context, agencyID string, id uuid.UUID) error
	ListCompanies(ctx context.Context, agencyID string, q string, page, size int) ([]Company, int64, error)

	CreateContact(ctx context.Context, c *CompanyContact) error
	ListContacts(ctx context.Context, agencyID string, companyID uuid.UUID) ([]CompanyContact, error)
	DeleteContact(ctx context.Context, agencyID string, id uuid.UUID) error

	CreatePosition(ctx context.Context, p *JobPosition) error
	GetPosition(ctx context.Context, agencyID string, id uuid.UUID) (*JobPosition, error)
	UpdatePosition(ctx context.Context, p *JobPosition) error
	DeletePosition(ctx context.Context, agencyID string, id uuid.UUID) error
	ListPositions(ctx context.Context, agencyID string, companyID *uuid.UUID, page, size int) ([]JobPosition, int64, error)

	AddPoolCandidate(ctx context.Context, e *PositionCandidate) error
	GetPoolEntry(ctx context.Context, agencyID string, id uuid.UUID) (*PositionCandidate, error)
	UpdatePoolEntry(ctx context.Context, e *PositionCandidate) error
	ListPool(ctx context.Context, agencyID string, positionID uuid.UUID) ([]PositionCandidate, error)
	DeletePoolByPosition(ctx context.Context, agencyID string, positionID uuid.UUID) error
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

func (r *repository) CreateCompany(ctx context.Context, c *Company) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *repository) GetCompany(ctx context.Context, agencyID string, id uuid.UUID) (*Company, error) {
	var c Company
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(agencyID)).
		First(&c, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) UpdateCompany(ctx context.Context, c *Company) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *repository) DeleteCompany(ctx context.Context, agencyID string, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Scopes(tenant.Scope(agencyID)).
		Delete(&Company{}, "id = ?", id).Error
}

func (r *repository) ListCompanies(ctx context.Context, agencyID string, q string, page, size int) ([]Company, int64, error) {
	base := r.db.WithContext(ctx).
		Model(&Company{}).
		Scopes(tenant.Scope(agencyID))

	if q != "" {
		base = base.Where("name ILIKE ?", "%"+q+"%")
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []Company
	err := base.
		Order("name ASC").
		Offset((page - 1) * size).
		Limit(size).
		Find(&rows).Error
	return rows, total, err
}

func (r *repository) CreateContact(ctx context.Context, c *CompanyContact) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *repository) ListContacts(ctx context.Context, agencyID string, companyID uuid.UUID) ([]CompanyContact, error) {
	var rows []CompanyContact
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(agencyID)).
		Where("company_id = ?", companyID).
		Order("full_name ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) DeleteContact(ctx context.Context, agencyID string, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Scopes(tenant.Scope(agencyID)).
		Delete(&CompanyContact{}, "id = ?", id).Error
}

func (r *repository) CreatePosition(ctx context.Context, p *JobPosition) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) GetPosition(ctx context.Context, agencyID string, id uuid.UUID) (*JobPosition, error) {
	var p JobPosition
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(agencyID)).
		First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) UpdatePosition(ctx context.Context, p *JobPosition) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *repository) DeletePosition(ctx context.Context, agencyID string, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Scopes(tenant.Scope(agencyID)).
		Delete(&JobPosition{}, "id = ?", id).Error
}

func (r *repository) ListPositions(ctx context.Context, agencyID string, companyID *uuid.UUID, page, size int) ([]JobPosition, int64, error) {
	base := r.db.WithContext(ctx).
		Model(&JobPosition{}).
		Scopes(tenant.Scope(agencyID))

	if companyID != nil {
		base = base.Where("company_id = ?", *companyID)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []JobPosition
	err := base.
		Order("created_at DESC").
		Offset((page - 1) * size).
		Limit(size).
		Find(&rows).Error
	return rows, total, err
}

func (r *repository) AddPoolCandidate(ctx context.Context, e *PositionCandidate) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) GetPoolEntry(ctx context.Context, agencyID string, id uuid.UUID) (*PositionCandidate, error) {
	var e PositionCandidate
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(agencyID)).
		First(&e, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) UpdatePoolEntry(ctx context.Context, e *PositionCandidate) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *repository) ListPool(ctx context.Context, agencyID string, positionID uuid.UUID) ([]PositionCandidate, error) {
	var rows []PositionCandidate
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(agencyID)).
		Where("position_id = ?", positionID).
		Order("created_at ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) DeletePoolByPosition(ctx context.Context, agencyID string, positionID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Scopes(tenant.Scope(agencyID)).
		Where("position_id = ?", positionID).
		Delete(&PositionCandidate{}).Error
}
