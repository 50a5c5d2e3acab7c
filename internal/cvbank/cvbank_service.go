package cvbank

import (
	"context"

	"go-recruit/internal/shared/istanbul"
	"go-recruit/internal/shared/paging"
	"go-recruit/internal/shared/turkish"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=cvbank_service.go -destination=mock/cvbank_service_mock.go -package=mock
type Service interface {
	// Browse pages through the whole bank: table A first, then table B,
	// both in id order.
	Browse(ctx context.Context, page, size int) ([]BankEntry, int, error)
	// Search runs a term over both tables and pages the merged result
	// in memory, optionally narrowed to one Istanbul side.
	Search(ctx context.Context, term, side string, page, size int) ([]BankEntry, int, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("cvbank.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("cvbank.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Browse(ctx context.Context, page, size int) ([]BankEntry, int, error) {
	var countA, countB int64
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { countA, err = s.repo.CountA(gctx); return })
	g.Go(func() (err error) { countB, err = s.repo.CountB(gctx); return })
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	total := int(countA + countB)
	if size < 1 {
		size = 20
	}
	page = paging.Clamp(page, size, total)
	offset := (page - 1) * size

	entries := make([]BankEntry, 0, size)

	// The page window may straddle the table boundary.
	if offset < int(countA) {
		rowsA, err := s.repo.PageA(ctx, offset, size)
		if err != nil {
			return nil, 0, err
		}
		entries = append(entries, adaptAllA(rowsA)...)
	}
	if remaining := size - len(entries); remaining > 0 && offset+size > int(countA) {
		offsetB := offset - int(countA)
		if offsetB < 0 {
			offsetB = 0
		}
		rowsB, err := s.repo.PageB(ctx, offsetB, remaining)
		if err != nil {
			return nil, 0, err
		}
		entries = append(entries, adaptAllB(rowsB)...)
	}

	return entries, total, nil
}

func (s *service) Search(ctx context.Context, term, side string, page, size int) ([]BankEntry, int, error) {
	var rowsA []LegacyEntryA
	var rowsB []LegacyEntryB

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { rowsA, err = s.repo.SearchA(gctx, term); return })
	g.Go(func() (err error) { rowsB, err = s.repo.SearchB(gctx, term); return })
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	merged := append(adaptAllA(rowsA), adaptAllB(rowsB)...)
	if side != "" {
		merged = filterBySide(merged, side)
	}

	total := len(merged)
	return paging.Slice(merged, page, size), total, nil
}

func filterBySide(entries []BankEntry, side string) []BankEntry {
	out := make([]BankEntry, 0, len(entries))
	for _, e := range entries {
		if turkish.Equal(e.City, "İstanbul") && istanbul.OnSide(e.District, side) {
			out = append(out, e)
		}
	}
	return out
}
