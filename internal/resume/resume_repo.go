package resume

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=resume_repo.go -destination=mock_resume_repo.go -package=resume

// Repository reads resume sections from a named table. The reconciler
// calls each method twice, once per table generation.
type Repository interface {
	Educations(ctx context.Context, table string, candidateIDs []uuid.UUID) ([]Education, error)
	Experiences(ctx context.Context, table string, candidateIDs []uuid.UUID) ([]Experience, error)
	Languages(ctx context.Context, table string, candidateIDs []uuid.UUID) ([]Language, error)
	Skills(ctx context.Context, table string, candidateIDs []uuid.UUID) ([]Skill, error)
	Certifications(ctx context.Context, table string, candidateIDs []uuid.UUID) ([]Certification, error)
	References(ctx context.Context, table string, candidateIDs []uuid.UUID) ([]Reference, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func fetchSection[T any](ctx context.Context, db *gorm.DB, table string, candidateIDs []uuid.UUID) ([]T, error) {
	var rows []T
	if len(candidateIDs) == 0 {
		return rows, nil
	}
	err := db.WithContext(ctx).
		Table(table).
		Where("candidate_id IN ?", candidateIDs).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) Educations(ctx context.Context, table string, candidateIDs []uuid.UUID) ([]Education, error) {
	return fetchSection[Education](ctx, r.db, table, candidateIDs)
}

func (r *repository) Experiences(ctx context.Context, table string, candidateIDs []uuid.UUID) ([]Experience, error) {
	return fetchSection[Experience](ctx, r.db, table, candidateIDs)
}

func (r *repository) Languages(ctx context.Context, table string, candidateIDs []uuid.UUID) ([]Language, error) {
	return fetchSection[Language](ctx, r.db, table, candidateIDs)
}

func (r *repository) Skills(ctx context.Context, table string, candidateIDs []uuid.UUID) ([]Skill, error) {
	return fetchSection[Skill](ctx, r.db, table, candidateIDs)
}

func (r *repository) Certifications(ctx context.Context, table string, candidateIDs []uuid.UUID) ([]Certification, error) {
	return fetchSection[Certification](ctx, r.db, table, candidateIDs)
}

func (r *repository) References(ctx context.Context, table string, candidateIDs []uuid.UUID) ([]Reference, error) {
	return fetchSection[Reference](ctx, r.db, table, candidateIDs)
}
