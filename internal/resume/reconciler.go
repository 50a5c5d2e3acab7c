package resume

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Reconciler produces one merged Bundle per candidate out of the two
// table generations. All twelve section reads run concurrently; a
// single failed read fails the whole reconciliation so callers never
// see a half-merged resume.
type Reconciler struct {
	repo   Repository
	logger *zap.Logger
}

func NewReconciler(repo Repository, logger ...*zap.Logger) *Reconciler {
	l := zap.L().Named("resume.reconciler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	return &Reconciler{repo: repo, logger: l}
}

// mergeKey identifies one row across both tables. Rows without a
// primary key get a synthetic key so they survive the merge instead of
// collapsing onto each other.
func mergeKey(id *uuid.UUID, table string, ordinal int) string {
	if id != nil {
		return id.String()
	}
	return fmt.Sprintf("merge:%s:%d", table, ordinal)
}

func mergeByID[T any](current, legacy []T, currentTable, legacyTable string, idOf func(T) *uuid.UUID) []T {
	merged := make([]T, 0, len(current)+len(legacy))
	seen := make(map[string]struct{}, len(current)+len(legacy))

	appendRows := func(rows []T, table string) {
		for i, row := range rows {
			key := mergeKey(idOf(row), table, i)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			merged = append(merged, row)
		}
	}

	// Current rows take precedence on shared ids.
	appendRows(current, currentTable)
	appendRows(legacy, legacyTable)
	return merged
}

type sectionRows struct {
	eduCur, eduLeg   []Education
	expCur, expLeg   []Experience
	langCur, langLeg []Language
	sklCur, sklLeg   []Skill
	crtCur, crtLeg   []Certification
	refCur, refLeg   []Reference
}

func (r *Reconciler) fetchAll(ctx context.Context, candidateIDs []uuid.UUID) (*sectionRows, error) {
	rows := &sectionRows{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) { rows.eduCur, err = r.repo.Educations(gctx, TableEducationCurrent, candidateIDs); return })
	g.Go(func() (err error) { rows.eduLeg, err = r.repo.Educations(gctx, TableEducationLegacy, candidateIDs); return })
	g.Go(func() (err error) { rows.expCur, err = r.repo.Experiences(gctx, TableExperienceCurrent, candidateIDs); return })
	g.Go(func() (err error) { rows.expLeg, err = r.repo.Experiences(gctx, TableExperienceLegacy, candidateIDs); return })
	g.Go(func() (err error) { rows.langCur, err = r.repo.Languages(gctx, TableLanguageCurrent, candidateIDs); return })
	g.Go(func() (err error) { rows.langLeg, err = r.repo.Languages(gctx, TableLanguageLegacy, candidateIDs); return })
	g.Go(func() (err error) { rows.sklCur, err = r.repo.Skills(gctx, TableSkillCurrent, candidateIDs); return })
	g.Go(func() (err error) { rows.sklLeg, err = r.repo.Skills(gctx, TableSkillLegacy, candidateIDs); return })
	g.Go(func() (err error) { rows.crtCur, err = r.repo.Certifications(gctx, TableCertificateCurrent, candidateIDs); return })
	g.Go(func() (err error) { rows.crtLeg, err = r.repo.Certifications(gctx, TableCertificateLegacy, candidateIDs); return })
	g.Go(func() (err error) { rows.refCur, err = r.repo.References(gctx, TableReferenceCurrent, candidateIDs); return })
	g.Go(func() (err error) { rows.refLeg, err = r.repo.References(gctx, TableReferenceLegacy, candidateIDs); return })

	if err := g.Wait(); err != nil {
		r.logger.Error("resume section fetch failed", zap.Error(err))
		return nil, err
	}
	return rows, nil
}

// Reconcile merges the resume of a single candidate.
func (r *Reconciler) Reconcile(ctx context.Context, candidateID uuid.UUID) (Bundle, error) {
	bundles, err := r.ReconcileBulk(ctx, []uuid.UUID{candidateID})
	if err != nil {
		return Bundle{}, err
	}
	return bundles[candidateID], nil
}

// ReconcileBulk merges resumes for a batch of candidates in one round
// of section reads. Candidates without any resume rows map to an empty
// Bundle.
func (r *Reconciler) ReconcileBulk(ctx context.Context, candidateIDs []uuid.UUID) (map[uuid.UUID]Bundle, error) {
	bundles := make(map[uuid.UUID]Bundle, len(candidateIDs))
	for _, id := range candidateIDs {
		bundles[id] = Bundle{}
	}
	if len(candidateIDs) == 0 {
		return bundles, nil
	}

	rows, err := r.fetchAll(ctx, candidateIDs)
	if err != nil {
		return nil, err
	}

	edu := partition(mergeByID(rows.eduCur, rows.eduLeg, TableEducationCurrent, TableEducationLegacy,
		func(e Education) *uuid.UUID { return e.ID }),
		func(e Education) uuid.UUID { return e.CandidateID })
	exp := partition(mergeByID(rows.expCur, rows.expLeg, TableExperienceCurrent, TableExperienceLegacy,
		func(e Experience) *uuid.UUID { return e.ID }),
		func(e Experience) uuid.UUID { return e.CandidateID })
	lang := partition(mergeByID(rows.langCur, rows.langLeg, TableLanguageCurrent, TableLanguageLegacy,
		func(l Language) *uuid.UUID { return l.ID }),
		func(l Language) uuid.UUID { return l.CandidateID })
	skl := partition(mergeByID(rows.sklCur, rows.sklLeg, TableSkillCurrent, TableSkillLegacy,
		func(s Skill) *uuid.UUID { return s.ID }),
		func(s Skill) uuid.UUID { return s.CandidateID })
	crt := partition(mergeByID(rows.crtCur, rows.crtLeg, TableCertificateCurrent, TableCertificateLegacy,
		func(c Certification) *uuid.UUID { return c.ID }),
		func(c Certification) uuid.UUID { return c.CandidateID })
	ref := partition(mergeByID(rows.refCur, rows.refLeg, TableReferenceCurrent, TableReferenceLegacy,
		func(rf Reference) *uuid.UUID { return rf.ID }),
		func(rf Reference) uuid.UUID { return rf.CandidateID })

	for id := range bundles {
		bundles[id] = Bundle{
			Educations:     edu[id],
			Experiences:    exp[id],
			Languages:      lang[id],
			Skills:         skl[id],
			Certifications: crt[id],
			References:     ref[id],
		}
	}
	return bundles, nil
}

func partition[T any](rows []T, ownerOf func(T) uuid.UUID) map[uuid.UUID][]T {
	out := make(map[uuid.UUID][]T)
	for _, row := range rows {
		owner := ownerOf(row)
		out[owner] = append(out[owner], row)
	}
	return out
}
