package cvbank

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

//go:generate mockgen -source=cvbank_repo.go -destination=mock/cvbank_repo_mock.go -package=mock

type Repository interface {
	CountA(ctx context.Context) (int64, error)
	CountB(ctx context.Context) (int64, error)
	PageA(ctx context.Context, offset, limit int) ([]LegacyEntryA, error)
	PageB(ctx context.Context, offset, limit int) ([]LegacyEntryB, error)
	SearchA(ctx context.Context, term string) ([]LegacyEntryA, error)
	SearchB(ctx context.Context, term string) ([]LegacyEntryB, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CountA(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&LegacyEntryA{}).Count(&n).Error
	return n, err
}

func (r *repository) CountB(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&LegacyEntryB{}).Count(&n).Error
	return n, err
}

func (r *repository) PageA(ctx context.Context, offset, limit int) ([]LegacyEntryA, error) {
	var rows []LegacyEntryA
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

func (r *repository) PageB(ctx context.Context, offset, limit int) ([]LegacyEntryB, error) {
	var rows []LegacyEntryB
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

// escapeLike neutralizes LIKE metacharacters in the user's term so a
// typed % or _ matches literally. Backslash is Postgres' default
// ESCAPE character.
func escapeLike(term string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(term)
}

// Search scans every text column. The tables are frozen imports with
// no indexes worth speaking of, so this is a sequential scan either
// way; the result set is small enough to page in memory.
func (r *repository) SearchA(ctx context.Context, term string) ([]LegacyEntryA, error) {
	like := "%" + escapeLike(term) + "%"
	var rows []LegacyEntryA
	err := r.db.WithContext(ctx).
		Where(
			"isim ILIKE ? OR soyisim ILIKE ? OR e_posta ILIKE ? OR sehir ILIKE ? OR ilce ILIKE ? OR pozisyon ILIKE ?",
			like, like, like, like, like, like,
		).
		Order("id ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) SearchB(ctx context.Context, term string) ([]LegacyEntryB, error) {
	like := "%" + escapeLike(term) + "%"
	var rows []LegacyEntryB
	err := r.db.WithContext(ctx).
		Where(
			"tam_isim ILIKE ? OR email ILIKE ? OR il ILIKE ? OR ilce ILIKE ? OR meslek ILIKE ?",
			like, like, like, like, like,
		).
		Order("id ASC").
		Find(&rows).Error
	return rows, err
}
